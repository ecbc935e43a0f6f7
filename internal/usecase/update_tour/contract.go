package update_tour

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/WebMTour-Service/internal/domain"
)

// TourRepository интерфейс репозитория туров
type TourRepository interface {
	Update(ctx context.Context, tour *domain.Tour) (*domain.Tour, error)
}

// TourDateRepository интерфейс репозитория рейсов
type TourDateRepository interface {
	CreateBatch(ctx context.Context, tourID uuid.UUID, dates []domain.TourDate) ([]domain.TourDate, error)
	GetByTourID(ctx context.Context, tourID uuid.UUID) ([]domain.TourDate, error)
	DeleteByTourID(ctx context.Context, tourID uuid.UUID) (int64, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
