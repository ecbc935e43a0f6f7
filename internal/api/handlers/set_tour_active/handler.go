package set_tour_active

import (
	"errors"
	"net/http"

	"github.com/m04kA/WebMTour-Service/internal/api/handlers"
	"github.com/m04kA/WebMTour-Service/internal/api/handlers/tourform"
	"github.com/m04kA/WebMTour-Service/internal/api/middleware"
	"github.com/m04kA/WebMTour-Service/internal/service/tours"
)

const (
	msgInvalidBody  = "is_active is required"
	msgNotFound     = "Tour not found"
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

// Handle PATCH /api/v1/admin/tours/{tourId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	admin, ok := middleware.GetAdmin(r.Context())
	if !ok {
		h.logger.Warn("PATCH /admin/tours/{id} - Missing admin in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	tourID, err := handlers.PathUUID(r, "tourId")
	if err != nil {
		h.logger.Warn("PATCH /admin/tours/{id} - Invalid tour ID: %v", err)
		handlers.RespondNotFound(w, msgNotFound)
		return
	}

	var req SetActiveRequest
	if err := handlers.DecodeAndValidate(r, &req); err != nil {
		h.logger.Warn("PATCH /admin/tours/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	tour, err := h.service.SetActive(r.Context(), admin, tourID, *req.IsActive)
	if err != nil {
		switch {
		case errors.Is(err, tours.ErrTourNotFound):
			h.logger.Warn("PATCH /admin/tours/{id} - Tour not found: tour_id=%s", tourID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("PATCH /admin/tours/{id} - Failed to update status: tour_id=%s, error=%v", tourID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /admin/tours/{id} - Tour status updated: tour_id=%s, is_active=%t", tourID, tour.IsActive)
	handlers.RespondJSON(w, http.StatusOK, tourform.TourEnvelope{Tour: tour})
}
