package update_booking_status

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/WebMTour-Service/internal/domain"
	"github.com/m04kA/WebMTour-Service/internal/service/bookings/models"
)

type BookingService interface {
	UpdateStatus(ctx context.Context, admin *domain.Admin, id uuid.UUID, status string) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
