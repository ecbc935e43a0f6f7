package update_tour

import (
	"errors"
	"net/http"

	"github.com/m04kA/WebMTour-Service/internal/api/handlers"
	"github.com/m04kA/WebMTour-Service/internal/api/handlers/tourform"
	"github.com/m04kA/WebMTour-Service/internal/api/middleware"
	"github.com/m04kA/WebMTour-Service/internal/service/tours/models"
	updateTour "github.com/m04kA/WebMTour-Service/internal/usecase/update_tour"
)

const (
	msgMissingFields = "Missing required fields"
	msgNotFound      = "Tour not found"
	msgUnauthorized  = "Unauthorized"
)

type Handler struct {
	useCase UpdateTourUseCase
	logger  Logger
}

func NewHandler(useCase UpdateTourUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/admin/tours/{tourId}
// Полная замена полей тура; tour_dates, если переданы, заменяют все рейсы
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	admin, ok := middleware.GetAdmin(r.Context())
	if !ok {
		h.logger.Warn("PUT /admin/tours/{id} - Missing admin in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	tourID, err := handlers.PathUUID(r, "tourId")
	if err != nil {
		h.logger.Warn("PUT /admin/tours/{id} - Invalid tour ID: %v", err)
		handlers.RespondNotFound(w, msgNotFound)
		return
	}

	var form tourform.TourForm
	if err := handlers.DecodeAndValidate(r, &form); err != nil {
		h.logger.Warn("PUT /admin/tours/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgMissingFields)
		return
	}

	draft, err := form.ToDraft()
	if err != nil {
		h.logger.Warn("PUT /admin/tours/{id} - Invalid rounds: %v", err)
		handlers.RespondBadRequest(w, msgMissingFields)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &updateTour.Request{Admin: admin, TourID: tourID, Draft: draft})
	if err != nil {
		switch {
		case errors.Is(err, updateTour.ErrInvalidInput):
			h.logger.Warn("PUT /admin/tours/{id} - Invalid input: tour_id=%s, error=%v", tourID, err)
			handlers.RespondBadRequest(w, msgMissingFields)

		case errors.Is(err, updateTour.ErrTourNotFound):
			h.logger.Warn("PUT /admin/tours/{id} - Tour not found: tour_id=%s", tourID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, updateTour.ErrAccessDenied):
			h.logger.Warn("PUT /admin/tours/{id} - Access denied")
			handlers.RespondUnauthorized(w, msgUnauthorized)

		default:
			h.logger.Error("PUT /admin/tours/{id} - Failed to update tour: tour_id=%s, error=%v", tourID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/tours/{id} - Tour updated: tour_id=%s, admin=%s, rounds=%d",
		tourID, admin.ID, len(result.Tour.Dates))
	handlers.RespondJSON(w, http.StatusOK, tourform.TourEnvelope{Tour: models.FromDomainTour(result.Tour)})
}
