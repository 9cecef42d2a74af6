package converter

import (
	"hospital-dashboard/internal/delivery/dto"
	"hospital-dashboard/internal/domain/entity"
	"hospital-dashboard/pkg/currency"
)

// AppointmentToResponse converts an Appointment entity to AppointmentResponse DTO
func AppointmentToResponse(appointment *entity.Appointment, money *currency.Formatter) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	return &dto.AppointmentResponse{
		ID:            appointment.ID,
		PatientName:   appointment.PatientName,
		PatientID:     appointment.PatientID,
		DoctorID:      appointment.DoctorID,
		DoctorName:    appointment.DoctorName,
		Department:    appointment.Department,
		Date:          appointment.Date,
		Time:          appointment.Time,
		Status:        string(appointment.Status),
		Type:          string(appointment.Type),
		TokenNumber:   appointment.TokenNumber,
		PaymentStatus: string(appointment.PaymentStatus),
		Paid:          appointment.IsPaid(),
		Fee:           appointment.Fee,
		FeeDisplay:    money.Format(appointment.Fee),
	}
}

// AppointmentsToResponses converts a slice of Appointment entities to slice of AppointmentResponse DTOs
func AppointmentsToResponses(appointments []entity.Appointment, money *currency.Formatter) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i := range appointments {
		responses[i] = *AppointmentToResponse(&appointments[i], money)
	}
	return responses
}
