package tours

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/WebMTour-Service/internal/domain"
)

// TourRepository интерфейс репозитория туров
type TourRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Tour, error)
	GetActiveByID(ctx context.Context, id uuid.UUID) (*domain.Tour, error)
	List(ctx context.Context, filter domain.TourFilter) ([]*domain.Tour, error)
	SetActive(ctx context.Context, id uuid.UUID, active bool) (*domain.Tour, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// TourDateRepository интерфейс репозитория рейсов
type TourDateRepository interface {
	GetByTourID(ctx context.Context, tourID uuid.UUID) ([]domain.TourDate, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
