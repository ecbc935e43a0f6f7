package bookings

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/WebMTour-Service/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.BookingWithTour, error)
	List(ctx context.Context, filter domain.BookingFilter) ([]*domain.BookingWithTour, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.BookingStatus) error
	Count(ctx context.Context, status *domain.BookingStatus) (int, error)
}

// TourCounter считает туры для сводки
type TourCounter interface {
	Count(ctx context.Context) (int, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
