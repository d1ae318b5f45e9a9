package handler

import (
	"net/http"

	"clinic-management-api/internal/usecase"
	"clinic-management-api/pkg/response"
)

type DashboardHandler struct {
	dashboardUsecase usecase.DashboardUsecase
}

func NewDashboardHandler(dashboardUsecase usecase.DashboardUsecase) *DashboardHandler {
	return &DashboardHandler{dashboardUsecase: dashboardUsecase}
}

func (h *DashboardHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats := h.dashboardUsecase.GetStats(r.Context())
	response.Success(w, http.StatusOK, "Dashboard stats retrieved successfully", stats)
}
