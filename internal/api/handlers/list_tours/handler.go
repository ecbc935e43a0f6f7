package list_tours

import (
	"errors"
	"net/http"

	"github.com/m04kA/WebMTour-Service/internal/api/handlers"
	"github.com/m04kA/WebMTour-Service/internal/api/middleware"
	"github.com/m04kA/WebMTour-Service/internal/service/tours"
	"github.com/m04kA/WebMTour-Service/internal/service/tours/models"
)

const (
	msgInvalidParams = "ตัวกรองไม่ถูกต้อง"
	msgUnauthorized  = "Unauthorized"
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

// Handle GET /api/v1/tours
// Query params: location, min_days, max_days (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	minDays, err := handlers.QueryInt(r, "min_days")
	if err != nil {
		h.logger.Warn("GET /tours - Invalid min_days: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}
	maxDays, err := handlers.QueryInt(r, "max_days")
	if err != nil {
		h.logger.Warn("GET /tours - Invalid max_days: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	req := &models.ListToursRequest{
		Location: handlers.QueryString(r, "location"),
		MinDays:  minDays,
		MaxDays:  maxDays,
	}

	result, err := h.service.ListPublic(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, tours.ErrInvalidInput):
			h.logger.Warn("GET /tours - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /tours - Failed to list tours: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /tours - Found %d tours", len(result.Tours))
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleAdmin GET /api/v1/admin/tours
func (h *Handler) HandleAdmin(w http.ResponseWriter, r *http.Request) {
	admin, ok := middleware.GetAdmin(r.Context())
	if !ok {
		h.logger.Warn("GET /admin/tours - Missing admin in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	result, err := h.service.ListAll(r.Context(), admin)
	if err != nil {
		h.logger.Error("GET /admin/tours - Failed to list tours: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/tours - admin=%s, found %d tours", admin.ID, len(result.Tours))
	handlers.RespondJSON(w, http.StatusOK, result)
}
