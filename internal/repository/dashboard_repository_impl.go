package repository

import (
	"context"

	"hospital-dashboard/internal/domain/entity"
	domainRepo "hospital-dashboard/internal/domain/repository"
)

type dashboardRepository struct {
	stats entity.DashboardStats
}

func NewDashboardRepository(stats entity.DashboardStats) domainRepo.DashboardRepository {
	return &dashboardRepository{stats: stats}
}

func (r *dashboardRepository) GetStats(ctx context.Context) (*entity.DashboardStats, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	stats := r.stats
	return &stats, nil
}
