package handler

import (
	"context"
	"io"

	"hospital-dashboard/internal/usecase"
	"hospital-dashboard/pkg/response"
)

type DashboardHandler struct {
	dashboardUsecase usecase.DashboardUsecase
}

func NewDashboardHandler(dashboardUsecase usecase.DashboardUsecase) *DashboardHandler {
	return &DashboardHandler{dashboardUsecase: dashboardUsecase}
}

func (h *DashboardHandler) GetOverview(ctx context.Context, w io.Writer, args []string) {
	overview, err := h.dashboardUsecase.GetOverview(ctx)
	if err != nil {
		if err == usecase.ErrStatsNotFound {
			response.NotFound(w, "Dashboard stats not found")
			return
		}
		response.InternalError(w, "Failed to get dashboard overview")
		return
	}

	response.Success(w, "Dashboard retrieved successfully", overview)
}
