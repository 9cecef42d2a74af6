package repository

import (
	"context"

	"hospital-dashboard/internal/domain/entity"
)

type AppointmentRepository interface {
	FindAll(ctx context.Context) ([]entity.Appointment, error)
}
