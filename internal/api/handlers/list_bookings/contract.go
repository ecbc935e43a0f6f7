package list_bookings

import (
	"context"

	"github.com/m04kA/WebMTour-Service/internal/domain"
	"github.com/m04kA/WebMTour-Service/internal/service/bookings/models"
)

type BookingService interface {
	List(ctx context.Context, admin *domain.Admin, status *string) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
