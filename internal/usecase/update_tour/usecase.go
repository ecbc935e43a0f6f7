package update_tour

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/WebMTour-Service/internal/domain"
	tourRepo "github.com/m04kA/WebMTour-Service/internal/infra/storage/tour"
)

// UseCase use case редактирования тура
type UseCase struct {
	tourRepo     TourRepository
	tourDateRepo TourDateRepository
	txManager    TransactionManager
	logger       Logger
	opts         Options
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	tourRepo TourRepository,
	tourDateRepo TourDateRepository,
	txManager TransactionManager,
	logger Logger,
	opts Options,
) *UseCase {
	return &UseCase{
		tourRepo:     tourRepo,
		tourDateRepo: tourDateRepo,
		txManager:    txManager,
		logger:       logger,
		opts:         opts,
	}
}

// Execute обновляет поля тура и, если форма содержит рейсы, заменяет их целиком
// Рейсы заменяются в два шага: удаление всех рейсов тура, затем вставка переданных
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Только для администратора
	if req.Admin == nil {
		return nil, ErrAccessDenied
	}

	uc.logger.Info("UpdateTour: admin=%s, tour=%s, replace_dates=%t, atomic=%t",
		req.Admin.ID, req.TourID, req.Draft.HasDates(), uc.opts.AtomicDateReplace)

	// 2. Валидация формы и всех рейсов до любой записи
	if err := req.Draft.Validate(); err != nil {
		uc.logger.Warn("UpdateTour: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	var result *domain.Tour

	update := func(ctx context.Context) error {
		updated, err := uc.update(ctx, req)
		if err != nil {
			return err
		}
		result = updated
		return nil
	}

	var err error
	if uc.opts.AtomicDateReplace {
		err = uc.txManager.Do(ctx, update)
	} else {
		err = update(ctx)
	}

	if err != nil {
		return nil, err
	}

	uc.logger.Info("UpdateTour: successfully updated tour id=%s, rounds=%d", result.ID, len(result.Dates))

	return &Response{Tour: result}, nil
}

func (uc *UseCase) update(ctx context.Context, req *Request) (*domain.Tour, error) {
	// 3. Обновляем поля тура, is_active по умолчанию true
	tour, err := uc.tourRepo.Update(ctx, req.Draft.Tour(req.TourID, true))
	if err != nil {
		if errors.Is(err, tourRepo.ErrTourNotFound) {
			uc.logger.Warn("UpdateTour: tour id=%s not found", req.TourID)
			return nil, ErrTourNotFound
		}
		uc.logger.Error("UpdateTour: failed to update tour id=%s: %v", req.TourID, err)
		return nil, fmt.Errorf("%w: failed to update tour: %v", ErrInternal, err)
	}

	// 4. Поле рейсов не передано - рейсы остаются как есть
	if !req.Draft.HasDates() {
		dates, err := uc.tourDateRepo.GetByTourID(ctx, tour.ID)
		if err != nil {
			uc.logger.Error("UpdateTour: failed to load rounds of tour id=%s: %v", tour.ID, err)
			return nil, fmt.Errorf("%w: failed to load rounds: %v", ErrInternal, err)
		}
		tour.Dates = dates
		return tour, nil
	}

	// 5. Шаг 1 замены: удаляем все рейсы тура
	deleted, err := uc.tourDateRepo.DeleteByTourID(ctx, tour.ID)
	if err != nil {
		uc.logger.Error("UpdateTour: failed to delete rounds of tour id=%s: %v", tour.ID, err)
		return nil, fmt.Errorf("%w: failed to delete rounds: %v", ErrInternal, err)
	}

	// 6. Шаг 2 замены: вставляем переданные рейсы
	dates, err := uc.tourDateRepo.CreateBatch(ctx, tour.ID, req.Draft.Rounds(tour.Price))
	if err != nil {
		if !uc.opts.AtomicDateReplace {
			uc.logger.Error("UpdateTour: %d rounds of tour id=%s deleted, insert failed, tour left without rounds: %v",
				deleted, tour.ID, err)
		}
		return nil, fmt.Errorf("%w: failed to insert rounds: %v", ErrInternal, err)
	}

	tour.Dates = dates
	return tour, nil
}
