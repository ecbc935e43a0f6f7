package create_tour

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/WebMTour-Service/internal/domain"
)

// UseCase use case создания тура
type UseCase struct {
	tourRepo     TourRepository
	tourDateRepo TourDateRepository
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(tourRepo TourRepository, tourDateRepo TourDateRepository, logger Logger) *UseCase {
	return &UseCase{
		tourRepo:     tourRepo,
		tourDateRepo: tourDateRepo,
		logger:       logger,
	}
}

// Execute создает тур (всегда активным) и его рейсы
// Ошибка вставки рейсов не откатывает тур: тур возвращается с DatesSaved = false
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Только для администратора
	if req.Admin == nil {
		return nil, ErrAccessDenied
	}

	uc.logger.Info("CreateTour: admin=%s, title=%q, rounds=%d", req.Admin.ID, req.Draft.Title, len(req.Draft.Dates))

	// 2. Валидация формы и всех рейсов
	if err := req.Draft.Validate(); err != nil {
		uc.logger.Warn("CreateTour: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// 3. Создаем тур, is_active из формы игнорируется
	draft := req.Draft
	draft.IsActive = nil

	tour, err := uc.tourRepo.Create(ctx, draft.Tour(uuid.Nil, true))
	if err != nil {
		uc.logger.Error("CreateTour: failed to create tour: %v", err)
		return nil, fmt.Errorf("%w: failed to create tour: %v", ErrInternal, err)
	}

	resp := &Response{Tour: tour, DatesSaved: true}
	tour.Dates = []domain.TourDate{}

	if len(req.Draft.Dates) == 0 {
		return resp, nil
	}

	// 4. Рейсы сохраняются отдельно от тура
	dates, err := uc.tourDateRepo.CreateBatch(ctx, tour.ID, req.Draft.Rounds(tour.Price))
	if err != nil {
		uc.logger.Error("CreateTour: tour id=%s created, but failed to insert %d rounds: %v",
			tour.ID, len(req.Draft.Dates), err)
		resp.DatesSaved = false
		return resp, nil
	}

	tour.Dates = dates
	uc.logger.Info("CreateTour: successfully created tour id=%s with %d rounds", tour.ID, len(dates))

	return resp, nil
}
