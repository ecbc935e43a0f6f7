package get_tour

import (
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/m04kA/WebMTour-Service/internal/api/handlers"
	"github.com/m04kA/WebMTour-Service/internal/api/middleware"
	"github.com/m04kA/WebMTour-Service/internal/service/tours"
	"github.com/m04kA/WebMTour-Service/internal/service/tours/models"
)

const (
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

// Handle GET /api/v1/tours/{tourId}
// Неактивный тур для витрины не существует
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tourID, err := handlers.PathUUID(r, "tourId")
	if err != nil {
		h.logger.Warn("GET /tours/{id} - Invalid tour ID: %v", err)
		handlers.RespondNotFound(w, msgNotFound)
		return
	}

	tour, err := h.service.GetPublic(r.Context(), tourID)
	h.respond(w, "GET /tours/{id}", tourID, tour, err)
}

// HandleAdmin GET /api/v1/admin/tours/{tourId}
func (h *Handler) HandleAdmin(w http.ResponseWriter, r *http.Request) {
	admin, ok := middleware.GetAdmin(r.Context())
	if !ok {
		h.logger.Warn("GET /admin/tours/{id} - Missing admin in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	tourID, err := handlers.PathUUID(r, "tourId")
	if err != nil {
		h.logger.Warn("GET /admin/tours/{id} - Invalid tour ID: %v", err)
		handlers.RespondNotFound(w, msgNotFound)
		return
	}

	tour, err := h.service.GetByID(r.Context(), admin, tourID)
	h.respond(w, "GET /admin/tours/{id}", tourID, tour, err)
}

func (h *Handler) respond(w http.ResponseWriter, route string, tourID uuid.UUID, tour *models.TourResponse, err error) {
	if err != nil {
		switch {
		case errors.Is(err, tours.ErrTourNotFound):
			h.logger.Warn("%s - Tour not found: tour_id=%s", route, tourID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("%s - Failed to get tour: tour_id=%s, error=%v", route, tourID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("%s - Tour retrieved: tour_id=%s, rounds=%d", route, tourID, len(tour.TourDates))
	handlers.RespondJSON(w, http.StatusOK, tour)
}
