package set_tour_active

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/WebMTour-Service/internal/domain"
	"github.com/m04kA/WebMTour-Service/internal/service/tours/models"
)

type TourService interface {
	SetActive(ctx context.Context, admin *domain.Admin, id uuid.UUID, active bool) (*models.TourResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
