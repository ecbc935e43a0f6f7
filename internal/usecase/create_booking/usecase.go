package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/WebMTour-Service/internal/domain"
	tourRepo "github.com/m04kA/WebMTour-Service/internal/infra/storage/tour"
	tourDateRepo "github.com/m04kA/WebMTour-Service/internal/infra/storage/tourdate"
)

// UseCase use case приема заявки на бронирование
type UseCase struct {
	tourRepo     TourRepository
	tourDateRepo TourDateRepository
	bookingRepo  BookingRepository
	txManager    TransactionManager
	metrics      MetricsRecorder
	logger       Logger
	opts         Options
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	tourRepo TourRepository,
	tourDateRepo TourDateRepository,
	bookingRepo BookingRepository,
	txManager TransactionManager,
	metrics MetricsRecorder,
	logger Logger,
	opts Options,
) *UseCase {
	if opts.PriceMode == "" {
		opts.PriceMode = PriceModeTrust
	}

	return &UseCase{
		tourRepo:     tourRepo,
		tourDateRepo: tourDateRepo,
		bookingRepo:  bookingRepo,
		txManager:    txManager,
		metrics:      metrics,
		logger:       logger,
		opts:         opts,
	}
}

// Execute проверяет заявку и создает бронирование в статусе pending
// В режиме по умолчанию между проверкой доступности рейса и вставкой нет блокировки:
// две параллельные заявки на один рейс могут пройти обе
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: tour=%s, date=%s, participants=%d, strict=%t, price_mode=%s",
		req.TourID, req.BookingDate.Format(domain.DateFormat), req.ParticipantsCount,
		uc.opts.StrictAdmission, uc.opts.PriceMode)

	// 1. Валидация входных данных (до обращения к БД)
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		uc.record(outcomeRejectedValidation)
		return nil, err
	}

	var result *domain.Booking

	admit := func(ctx context.Context) error {
		created, err := uc.admit(ctx, req)
		if err != nil {
			return err
		}
		result = created
		return nil
	}

	var err error
	if uc.opts.StrictAdmission {
		err = uc.txManager.DoSerializable(ctx, admit)
	} else {
		err = admit(ctx)
	}

	if err != nil {
		uc.record(outcomeFor(err))
		return nil, err
	}

	uc.record(outcomeAdmitted)
	uc.logger.Info("CreateBooking: successfully created booking id=%s", result.ID)

	return &Response{
		BookingID:  result.ID,
		Status:     result.Status,
		TotalPrice: result.TotalPrice,
		CreatedAt:  result.CreatedAt,
	}, nil
}

func (uc *UseCase) admit(ctx context.Context, req *Request) (*domain.Booking, error) {
	// 2. Тур должен существовать и быть активным
	tour, err := uc.tourRepo.GetActiveByID(ctx, req.TourID)
	if err != nil {
		if errors.Is(err, tourRepo.ErrTourNotFound) {
			uc.logger.Warn("CreateBooking: tour id=%s not found or inactive", req.TourID)
			return nil, ErrTourNotFound
		}
		uc.logger.Error("CreateBooking: failed to get tour id=%s: %v", req.TourID, err)
		return nil, fmt.Errorf("%w: failed to get tour: %v", ErrInternal, err)
	}

	// 3. Рейс ищется по совпадению даты начала
	round, err := uc.tourDateRepo.GetByTourAndStartDate(ctx, tour.ID, req.BookingDate)
	if err != nil {
		if errors.Is(err, tourDateRepo.ErrTourDateNotFound) {
			uc.logger.Warn("CreateBooking: no round for tour id=%s on %s",
				tour.ID, req.BookingDate.Format(domain.DateFormat))
			return nil, ErrRoundNotFound
		}
		uc.logger.Error("CreateBooking: failed to get round: %v", err)
		return nil, fmt.Errorf("%w: failed to get round: %v", ErrInternal, err)
	}

	// 4. Проверка статуса рейса
	if err := checkRoundAvailable(round); err != nil {
		uc.logger.Warn("CreateBooking: round id=%s status=%s", round.ID, round.Status)
		return nil, err
	}

	// 5. Проверка вместимости
	if err := checkCapacity(tour, req.ParticipantsCount); err != nil {
		uc.logger.Warn("CreateBooking: %d participants exceed max %d for tour id=%s",
			req.ParticipantsCount, tour.MaxParticipants, tour.ID)
		return nil, err
	}

	// 6. В режиме recompute цена клиента сверяется с ценой рейса
	if uc.opts.PriceMode == PriceModeRecompute {
		if err := checkPrice(round, req.ParticipantsCount, req.TotalPrice); err != nil {
			uc.logger.Warn("CreateBooking: %v", err)
			return nil, err
		}
	}

	// 7. Создаем бронирование, статус всегда pending
	booking := &domain.Booking{
		TourID:            tour.ID,
		UserName:          req.UserName,
		UserEmail:         req.UserEmail,
		UserPhone:         req.UserPhone,
		BookingDate:       round.StartDate,
		ParticipantsCount: req.ParticipantsCount,
		TotalPrice:        req.TotalPrice,
		SpecialRequests:   req.SpecialRequests,
		Status:            domain.StatusPending,
	}

	created, err := uc.bookingRepo.Create(ctx, booking)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to create booking: %v", err)
		return nil, fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
	}

	return created, nil
}

func (uc *UseCase) record(outcome string) {
	if uc.metrics != nil {
		uc.metrics.RecordBookingAdmission(outcome)
	}
}

func outcomeFor(err error) string {
	switch {
	case errors.Is(err, ErrInvalidInput):
		return outcomeRejectedValidation
	case errors.Is(err, ErrTourNotFound), errors.Is(err, ErrRoundNotFound):
		return outcomeRejectedNotFound
	case errors.Is(err, ErrRoundNotAvailable):
		return outcomeRejectedUnavailable
	default:
		return outcomeFailed
	}
}
