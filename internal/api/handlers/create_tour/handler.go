package create_tour

import (
	"errors"
	"net/http"

	"github.com/m04kA/WebMTour-Service/internal/api/handlers"
	"github.com/m04kA/WebMTour-Service/internal/api/handlers/tourform"
	"github.com/m04kA/WebMTour-Service/internal/api/middleware"
	createTour "github.com/m04kA/WebMTour-Service/internal/usecase/create_tour"
)

const (
	msgMissingFields = "Missing required fields"
	msgUnauthorized  = "Unauthorized"
)

type Handler struct {
	useCase CreateTourUseCase
	logger  Logger
}

func NewHandler(useCase CreateTourUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/admin/tours
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	admin, ok := middleware.GetAdmin(r.Context())
	if !ok {
		h.logger.Warn("POST /admin/tours - Missing admin in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var form tourform.TourForm
	if err := handlers.DecodeAndValidate(r, &form); err != nil {
		h.logger.Warn("POST /admin/tours - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgMissingFields)
		return
	}

	draft, err := form.ToDraft()
	if err != nil {
		h.logger.Warn("POST /admin/tours - Invalid rounds: %v", err)
		handlers.RespondBadRequest(w, msgMissingFields)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &createTour.Request{Admin: admin, Draft: draft})
	if err != nil {
		switch {
		case errors.Is(err, createTour.ErrInvalidInput):
			h.logger.Warn("POST /admin/tours - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgMissingFields)

		case errors.Is(err, createTour.ErrAccessDenied):
			h.logger.Warn("POST /admin/tours - Access denied")
			handlers.RespondUnauthorized(w, msgUnauthorized)

		default:
			h.logger.Error("POST /admin/tours - Failed to create tour: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	if !result.DatesSaved {
		h.logger.Warn("POST /admin/tours - Tour created without rounds: tour_id=%s", result.Tour.ID)
	}
	h.logger.Info("POST /admin/tours - Tour created: tour_id=%s, admin=%s", result.Tour.ID, admin.ID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
