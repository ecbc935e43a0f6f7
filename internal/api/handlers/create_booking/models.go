package create_booking

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/WebMTour-Service/internal/domain"
	createBooking "github.com/m04kA/WebMTour-Service/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
// status из тела игнорируется: новое бронирование всегда pending
type CreateBookingRequest struct {
	TourID            string   `json:"tour_id" validate:"required,uuid"`
	UserName          string   `json:"user_name" validate:"required"`
	UserEmail         string   `json:"user_email" validate:"required"`
	UserPhone         string   `json:"user_phone" validate:"required"`
	BookingDate       string   `json:"booking_date" validate:"required"` // "2025-06-01"
	ParticipantsCount *int     `json:"participants_count" validate:"required"`
	TotalPrice        *float64 `json:"total_price" validate:"required"`
	SpecialRequests   *string  `json:"special_requests,omitempty"`
	Status            *string  `json:"status,omitempty"`
}

// CreateBookingResponse HTTP response model
type CreateBookingResponse struct {
	Message    string    `json:"message"`
	BookingID  uuid.UUID `json:"booking_id"`
	Status     string    `json:"status"`
	TotalPrice float64   `json:"total_price"`
	CreatedAt  string    `json:"created_at"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	tourID, err := uuid.Parse(r.TourID)
	if err != nil {
		return nil, err
	}

	bookingDate, err := time.Parse(domain.DateFormat, r.BookingDate)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		TourID:            tourID,
		UserName:          r.UserName,
		UserEmail:         r.UserEmail,
		UserPhone:         r.UserPhone,
		BookingDate:       bookingDate,
		ParticipantsCount: *r.ParticipantsCount,
		TotalPrice:        *r.TotalPrice,
		SpecialRequests:   r.SpecialRequests,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *CreateBookingResponse {
	return &CreateBookingResponse{
		Message:    msgBookingCreated,
		BookingID:  resp.BookingID,
		Status:     string(resp.Status),
		TotalPrice: resp.TotalPrice,
		CreatedAt:  resp.CreatedAt.Format(time.RFC3339),
	}
}
