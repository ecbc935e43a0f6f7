package create_booking

import (
	"fmt"
	"math"
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/WebMTour-Service/internal/domain"
)

// validateRequest проверяет наличие всех обязательных полей до обращения к БД
func validateRequest(req *Request) error {
	if req.TourID == uuid.Nil {
		return fmt.Errorf("%w: tour_id is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.UserName) == "" {
		return fmt.Errorf("%w: user_name is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.UserEmail) == "" {
		return fmt.Errorf("%w: user_email is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.UserPhone) == "" {
		return fmt.Errorf("%w: user_phone is required", ErrInvalidInput)
	}

	if req.BookingDate.IsZero() {
		return fmt.Errorf("%w: booking_date is required", ErrInvalidInput)
	}

	if req.ParticipantsCount < domain.MinParticipants {
		return fmt.Errorf("%w: participants_count must be at least %d", ErrInvalidInput, domain.MinParticipants)
	}

	if req.TotalPrice <= 0 {
		return fmt.Errorf("%w: total_price is required", ErrInvalidInput)
	}

	return nil
}

// checkRoundAvailable рейс должен быть в статусе available
func checkRoundAvailable(round *domain.TourDate) error {
	switch round.Status {
	case domain.RoundAvailable:
		return nil
	case domain.RoundFull:
		return ErrRoundFull
	default:
		return ErrRoundClosed
	}
}

// checkCapacity количество участников не превышает вместимость тура
func checkCapacity(tour *domain.Tour, participants int) error {
	if !tour.AcceptsParticipants(participants) {
		return &CapacityError{Max: tour.MaxParticipants}
	}
	return nil
}

// checkPrice сверяет цену клиента с ценой рейса × участники
func checkPrice(round *domain.TourDate, participants int, total float64) error {
	expected := round.Price * float64(participants)
	if math.Abs(expected-total) > domain.PriceTolerance {
		return fmt.Errorf("%w: expected %.2f, got %.2f", ErrPriceMismatch, expected, total)
	}
	return nil
}
