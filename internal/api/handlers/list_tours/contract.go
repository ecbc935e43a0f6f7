package list_tours

import (
	"context"

	"github.com/m04kA/WebMTour-Service/internal/domain"
	"github.com/m04kA/WebMTour-Service/internal/service/tours/models"
)

type TourService interface {
	ListPublic(ctx context.Context, req *models.ListToursRequest) (*models.TourListResponse, error)
	ListAll(ctx context.Context, admin *domain.Admin) (*models.TourListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
