package repository

import (
	"context"

	"hospital-dashboard/internal/domain/entity"
)

type DashboardRepository interface {
	GetStats(ctx context.Context) (*entity.DashboardStats, error)
}
