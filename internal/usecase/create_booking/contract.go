package create_booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/WebMTour-Service/internal/domain"
)

// TourRepository интерфейс репозитория туров
type TourRepository interface {
	GetActiveByID(ctx context.Context, id uuid.UUID) (*domain.Tour, error)
}

// TourDateRepository интерфейс репозитория рейсов
type TourDateRepository interface {
	GetByTourAndStartDate(ctx context.Context, tourID uuid.UUID, startDate time.Time) (*domain.TourDate, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// MetricsRecorder фиксирует исход заявки на бронирование
type MetricsRecorder interface {
	RecordBookingAdmission(outcome string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
