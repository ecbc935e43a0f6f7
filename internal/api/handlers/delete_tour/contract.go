package delete_tour

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/WebMTour-Service/internal/domain"
)

type TourService interface {
	Delete(ctx context.Context, admin *domain.Admin, id uuid.UUID) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
