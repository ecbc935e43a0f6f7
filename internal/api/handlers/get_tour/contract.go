package get_tour

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/WebMTour-Service/internal/domain"
	"github.com/m04kA/WebMTour-Service/internal/service/tours/models"
)

type TourService interface {
	GetPublic(ctx context.Context, id uuid.UUID) (*models.TourResponse, error)
	GetByID(ctx context.Context, admin *domain.Admin, id uuid.UUID) (*models.TourResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
