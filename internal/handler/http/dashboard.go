package http

import (
	"net/http"

	"github.com/corestack-app/corestack-backend-go/internal/domain/dashboard"
	"github.com/corestack-app/corestack-backend-go/internal/handler/http/response"
)

type DashboardHandler interface {
	Summary(w http.ResponseWriter, r *http.Request)
	AttendanceStats(w http.ResponseWriter, r *http.Request)
	ProjectStats(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &dashboardHandlerImpl{dashboardService: dashboardService}
}

// Summary implements DashboardHandler.
func (h *dashboardHandlerImpl) Summary(w http.ResponseWriter, r *http.Request) {
	result, err := h.dashboardService.Summary(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// AttendanceStats implements DashboardHandler.
func (h *dashboardHandlerImpl) AttendanceStats(w http.ResponseWriter, r *http.Request) {
	result, err := h.dashboardService.AttendanceStats(r.Context(), r.URL.Query().Get("period"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ProjectStats implements DashboardHandler.
func (h *dashboardHandlerImpl) ProjectStats(w http.ResponseWriter, r *http.Request) {
	result, err := h.dashboardService.ProjectStats(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
