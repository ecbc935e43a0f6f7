package create_booking

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput возвращается при некорректных или неполных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrTourNotFound возвращается, когда тур не найден или неактивен
	ErrTourNotFound = errors.New("create_booking: tour not found or inactive")

	// ErrRoundNotFound возвращается, когда у тура нет рейса на запрошенную дату
	ErrRoundNotFound = errors.New("create_booking: no travel round on requested date")

	// ErrRoundNotAvailable возвращается, когда рейс не принимает бронирования
	ErrRoundNotAvailable = errors.New("create_booking: travel round is not available")

	// ErrRoundFull рейс заполнен
	ErrRoundFull = fmt.Errorf("%w: round is full", ErrRoundNotAvailable)

	// ErrRoundClosed рейс закрыт для бронирования
	ErrRoundClosed = fmt.Errorf("%w: round is closed", ErrRoundNotAvailable)

	// ErrTooManyParticipants количество участников превышает вместимость тура
	ErrTooManyParticipants = fmt.Errorf("%w: too many participants", ErrInvalidInput)

	// ErrPriceMismatch итоговая цена не совпадает с рассчитанной (режим recompute)
	ErrPriceMismatch = fmt.Errorf("%w: total price mismatch", ErrInvalidInput)

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)

// CapacityError несет максимальное количество участников тура
type CapacityError struct {
	Max int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("%v (max %d)", ErrTooManyParticipants, e.Max)
}

func (e *CapacityError) Unwrap() error {
	return ErrTooManyParticipants
}
