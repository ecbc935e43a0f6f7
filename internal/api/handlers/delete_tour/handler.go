package delete_tour

import (
	"errors"
	"net/http"

	"github.com/m04kA/WebMTour-Service/internal/api/handlers"
	"github.com/m04kA/WebMTour-Service/internal/api/middleware"
	"github.com/m04kA/WebMTour-Service/internal/service/tours"
)

const (
	msgDeleted      = "Tour deleted successfully"
	msgNotFound     = "Tour not found"
	msgHasBookings  = "Tour has bookings and cannot be deleted"
	msgUnauthorized = "Unauthorized"
)

type Handler struct {
	service TourService
	logger  Logger
}

func NewHandler(service TourService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/admin/tours/{tourId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	admin, ok := middleware.GetAdmin(r.Context())
	if !ok {
		h.logger.Warn("DELETE /admin/tours/{id} - Missing admin in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	tourID, err := handlers.PathUUID(r, "tourId")
	if err != nil {
		h.logger.Warn("DELETE /admin/tours/{id} - Invalid tour ID: %v", err)
		handlers.RespondNotFound(w, msgNotFound)
		return
	}

	if err := h.service.Delete(r.Context(), admin, tourID); err != nil {
		switch {
		case errors.Is(err, tours.ErrTourNotFound):
			h.logger.Warn("DELETE /admin/tours/{id} - Tour not found: tour_id=%s", tourID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, tours.ErrTourInUse):
			h.logger.Warn("DELETE /admin/tours/{id} - Tour has bookings: tour_id=%s", tourID)
			handlers.RespondError(w, http.StatusConflict, msgHasBookings)

		default:
			h.logger.Error("DELETE /admin/tours/{id} - Failed to delete tour: tour_id=%s, error=%v", tourID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/tours/{id} - Tour deleted: tour_id=%s, admin=%s", tourID, admin.ID)
	handlers.RespondMessage(w, http.StatusOK, msgDeleted)
}
