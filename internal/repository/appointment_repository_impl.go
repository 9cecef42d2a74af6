package repository

import (
	"context"
	"slices"

	"hospital-dashboard/internal/domain/entity"
	domainRepo "hospital-dashboard/internal/domain/repository"
)

type appointmentRepository struct {
	appointments []entity.Appointment
}

func NewAppointmentRepository(appointments []entity.Appointment) domainRepo.AppointmentRepository {
	return &appointmentRepository{appointments: slices.Clone(appointments)}
}

func (r *appointmentRepository) FindAll(ctx context.Context) ([]entity.Appointment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return slices.Clone(r.appointments), nil
}
