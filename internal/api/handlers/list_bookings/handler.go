package list_bookings

import (
	"errors"
	"net/http"

	"github.com/m04kA/WebMTour-Service/internal/api/handlers"
	"github.com/m04kA/WebMTour-Service/internal/api/middleware"
	"github.com/m04kA/WebMTour-Service/internal/service/bookings"
	"github.com/m04kA/WebMTour-Service/pkg/ptr"
)

const (
	msgInvalidStatus = "Invalid booking status"
	msgUnauthorized  = "Unauthorized"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/bookings
// Query params: status (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	admin, ok := middleware.GetAdmin(r.Context())
	if !ok {
		h.logger.Warn("GET /admin/bookings - Missing admin in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	status := handlers.QueryString(r, "status")

	result, err := h.service.List(r.Context(), admin, status)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidStatus):
			h.logger.Warn("GET /admin/bookings - Invalid status filter: %s", ptr.Value(status))
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /admin/bookings - Failed to list bookings: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/bookings - admin=%s, found %d bookings", admin.ID, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
