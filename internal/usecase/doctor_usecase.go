package usecase

import (
	"context"
	"errors"
	"slices"

	"hospital-dashboard/internal/converter"
	"hospital-dashboard/internal/delivery/dto"
	"hospital-dashboard/internal/domain/entity"
	"hospital-dashboard/internal/domain/repository"
	"hospital-dashboard/internal/service"
	"hospital-dashboard/pkg/currency"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrDoctorNotFound    = errors.New("doctor not found")
	ErrDoctorUnavailable = errors.New("doctor is not accepting appointments")
	ErrInvalidTimeSlot   = errors.New("invalid time slot")
)

// BookingTimeSlots are the slots offered by the booking form.
var BookingTimeSlots = []string{
	"09:00 AM", "09:30 AM", "10:00 AM", "10:30 AM", "11:00 AM", "11:30 AM",
	"02:00 PM", "02:30 PM", "03:00 PM",
}

type DoctorUsecase interface {
	ListDoctors(ctx context.Context, req *dto.DoctorListRequest) (*dto.DoctorListResponse, error)
	GetDoctor(ctx context.Context, doctorID string) (*dto.DoctorDetailResponse, error)
	GetSummary(ctx context.Context) (*dto.DoctorSummaryResponse, error)
	GetDepartments(ctx context.Context) ([]string, error)
	GetQueue(ctx context.Context) (*dto.QueueResponse, error)
	DraftBooking(ctx context.Context, req *dto.CreateBookingRequest) (*dto.BookingDraftResponse, error)
}

type doctorUsecase struct {
	log             *logrus.Logger
	doctorRepo      repository.DoctorRepository
	appointmentRepo repository.AppointmentRepository
	money           *currency.Formatter
}

func NewDoctorUsecase(
	log *logrus.Logger,
	doctorRepo repository.DoctorRepository,
	appointmentRepo repository.AppointmentRepository,
	money *currency.Formatter,
) DoctorUsecase {
	return &doctorUsecase{
		log:             log,
		doctorRepo:      doctorRepo,
		appointmentRepo: appointmentRepo,
		money:           money,
	}
}

func (u *doctorUsecase) ListDoctors(ctx context.Context, req *dto.DoctorListRequest) (*dto.DoctorListResponse, error) {
	doctors, err := u.doctorRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to find doctors: %+v", err)
		return nil, err
	}

	filter := entity.DoctorFilter{
		Query:        req.Search,
		Department:   req.Department,
		Availability: entity.Availability(req.Availability),
	}
	visible := service.FilterDoctors(doctors, filter)

	return &dto.DoctorListResponse{
		Doctors:     converter.DoctorsToResponses(visible, u.money),
		Total:       len(visible),
		StoreTotal:  len(doctors),
		Departments: service.Departments(doctors),
	}, nil
}

func (u *doctorUsecase) GetDoctor(ctx context.Context, doctorID string) (*dto.DoctorDetailResponse, error) {
	doctor, err := u.doctorRepo.FindByID(ctx, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	appointments, err := u.appointmentRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to find appointments: %+v", err)
		return nil, err
	}
	own := service.AppointmentsForDoctor(appointments, doctor.ID)

	return &dto.DoctorDetailResponse{
		Doctor:           *converter.DoctorToResponse(doctor, u.money),
		Appointments:     converter.AppointmentsToResponses(own, u.money),
		AppointmentCount: len(own),
	}, nil
}

func (u *doctorUsecase) GetSummary(ctx context.Context) (*dto.DoctorSummaryResponse, error) {
	doctors, err := u.doctorRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to find doctors: %+v", err)
		return nil, err
	}

	appointments, err := u.appointmentRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to find appointments: %+v", err)
		return nil, err
	}

	summary := service.SummarizeDoctors(doctors, appointments)
	return &dto.DoctorSummaryResponse{
		Total:             summary.Total,
		Available:         summary.Available,
		FullyBooked:       summary.FullyBooked,
		TodayAppointments: summary.TodayAppointments,
		InQueue:           summary.InQueue,
	}, nil
}

func (u *doctorUsecase) GetDepartments(ctx context.Context) ([]string, error) {
	doctors, err := u.doctorRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to find doctors: %+v", err)
		return nil, err
	}
	return service.Departments(doctors), nil
}

func (u *doctorUsecase) GetQueue(ctx context.Context) (*dto.QueueResponse, error) {
	appointments, err := u.appointmentRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to find appointments: %+v", err)
		return nil, err
	}

	queue := service.QueueAppointments(appointments)
	counts := make(map[string]int)
	for status, n := range service.AppointmentStatusCounts(appointments) {
		counts[string(status)] = n
	}

	return &dto.QueueResponse{
		Appointments: converter.AppointmentsToResponses(queue, u.money),
		InQueue:      len(queue),
		StatusCounts: counts,
	}, nil
}

// DraftBooking prices a booking against an available doctor. Nothing is stored.
func (u *doctorUsecase) DraftBooking(ctx context.Context, req *dto.CreateBookingRequest) (*dto.BookingDraftResponse, error) {
	if !slices.Contains(BookingTimeSlots, req.Time) {
		return nil, ErrInvalidTimeSlot
	}

	doctor, err := u.doctorRepo.FindByID(ctx, req.DoctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}
	if !doctor.Available {
		return nil, ErrDoctorUnavailable
	}

	fee := doctor.ConsultationFee
	if entity.AppointmentType(req.Type) == entity.AppointmentTypeEmergency {
		fee = doctor.EmergencyFee
	}

	draft := &dto.BookingDraftResponse{
		DraftID:       uuid.New(),
		PatientName:   req.PatientName,
		Phone:         req.Phone,
		DoctorID:      doctor.ID,
		DoctorName:    doctor.Name,
		Department:    doctor.Department,
		Date:          req.Date,
		Time:          req.Time,
		Type:          req.Type,
		PaymentMethod: req.PaymentMethod,
		Status:        string(entity.AppointmentStatusScheduled),
		Fee:           fee,
		FeeDisplay:    u.money.Format(fee),
	}

	u.log.Infof("Drafted %s booking %s with doctor %s", req.Type, draft.DraftID, doctor.ID)
	return draft, nil
}
