package update_booking_status

import "github.com/m04kA/WebMTour-Service/internal/service/bookings/models"

// UpdateStatusRequest тело PATCH запроса
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed cancelled completed"`
}

// BookingEnvelope ответ {"booking": ...}
type BookingEnvelope struct {
	Booking *models.BookingResponse `json:"booking"`
}
