package create_tour

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/WebMTour-Service/internal/domain"
)

// TourRepository интерфейс репозитория туров
type TourRepository interface {
	Create(ctx context.Context, tour *domain.Tour) (*domain.Tour, error)
}

// TourDateRepository интерфейс репозитория рейсов
type TourDateRepository interface {
	CreateBatch(ctx context.Context, tourID uuid.UUID, dates []domain.TourDate) ([]domain.TourDate, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
