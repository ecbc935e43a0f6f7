package get_dashboard

import (
	"net/http"

	"github.com/m04kA/WebMTour-Service/internal/api/handlers"
	"github.com/m04kA/WebMTour-Service/internal/api/middleware"
)

const msgUnauthorized = "Unauthorized"

type Handler struct {
	service DashboardService
	logger  Logger
}

func NewHandler(service DashboardService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/dashboard
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	admin, ok := middleware.GetAdmin(r.Context())
	if !ok {
		h.logger.Warn("GET /admin/dashboard - Missing admin in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	dashboard, err := h.service.Dashboard(r.Context(), admin)
	if err != nil {
		h.logger.Error("GET /admin/dashboard - Failed to build dashboard: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/dashboard - admin=%s, tours=%d, bookings=%d",
		admin.ID, dashboard.TotalTours, dashboard.TotalBookings)
	handlers.RespondJSON(w, http.StatusOK, dashboard)
}
