package handlers

import (
	"net/http"
	"time"

	services "rental-server/service"
)

type DashboardHandler struct {
	dashboardService *services.DashboardService
	now              func() time.Time
}

func NewDashboardHandler(dashboardService *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService, now: time.Now}
}

// GetDashboard handles GET /v1/dashboard
func (h *DashboardHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	d, err := h.dashboardService.Dashboard(h.now())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, d)
}
