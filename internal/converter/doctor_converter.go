package converter

import (
	"hospital-dashboard/internal/delivery/dto"
	"hospital-dashboard/internal/domain/entity"
	"hospital-dashboard/pkg/currency"
)

// DoctorToResponse converts a Doctor entity to DoctorResponse DTO
func DoctorToResponse(doctor *entity.Doctor, money *currency.Formatter) *dto.DoctorResponse {
	if doctor == nil {
		return nil
	}

	schedule := make([]dto.ScheduleEntryResponse, len(doctor.Schedule))
	for i, s := range doctor.Schedule {
		schedule[i] = dto.ScheduleEntryResponse{
			Day:       s.Day,
			StartTime: s.StartTime,
			EndTime:   s.EndTime,
			IsActive:  s.IsActive,
		}
	}

	return &dto.DoctorResponse{
		ID:                     doctor.ID,
		Name:                   doctor.Name,
		NameBn:                 doctor.NameBn,
		Specialization:         doctor.Specialization,
		Department:             doctor.Department,
		Qualification:          doctor.Qualification,
		Experience:             doctor.Experience,
		Rating:                 doctor.Rating,
		TotalPatients:          doctor.TotalPatients,
		Avatar:                 doctor.Avatar,
		Available:              doctor.Available,
		ConsultationFee:        doctor.ConsultationFee,
		ConsultationFeeDisplay: money.Format(doctor.ConsultationFee),
		EmergencyFee:           doctor.EmergencyFee,
		NextAvailable:          doctor.NextAvailable,
		TodayAppointments:      doctor.TodayAppointments,
		MaxAppointments:        doctor.MaxAppointments,
		LoadPercent:            doctor.LoadPercent(),
		Schedule:               schedule,
	}
}

// DoctorsToResponses converts a slice of Doctor entities to slice of DoctorResponse DTOs
func DoctorsToResponses(doctors []entity.Doctor, money *currency.Formatter) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(doctors))
	for i := range doctors {
		responses[i] = *DoctorToResponse(&doctors[i], money)
	}
	return responses
}
