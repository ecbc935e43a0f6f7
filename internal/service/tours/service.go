package tours

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/WebMTour-Service/internal/domain"
	tourRepo "github.com/m04kA/WebMTour-Service/internal/infra/storage/tour"
	"github.com/m04kA/WebMTour-Service/internal/service/tours/models"
)

// Service сервис чтения и управления турами
type Service struct {
	tourRepo     TourRepository
	tourDateRepo TourDateRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса туров
func NewService(tourRepo TourRepository, tourDateRepo TourDateRepository, logger Logger) *Service {
	return &Service{
		tourRepo:     tourRepo,
		tourDateRepo: tourDateRepo,
		logger:       logger,
	}
}

// GetPublic возвращает активный тур с рейсами по возрастанию даты начала
func (s *Service) GetPublic(ctx context.Context, id uuid.UUID) (*models.TourResponse, error) {
	s.logger.Info("GetPublic: fetching tour id=%s", id)

	tour, err := s.tourRepo.GetActiveByID(ctx, id)
	if err != nil {
		return nil, s.mapGetError("GetPublic", id, err)
	}

	return s.withDates(ctx, "GetPublic", tour)
}

// GetByID возвращает тур независимо от активности (админ-панель)
func (s *Service) GetByID(ctx context.Context, admin *domain.Admin, id uuid.UUID) (*models.TourResponse, error) {
	if admin == nil {
		return nil, ErrAccessDenied
	}

	s.logger.Info("GetByID: admin=%s fetching tour id=%s", admin.ID, id)

	tour, err := s.tourRepo.GetByID(ctx, id)
	if err != nil {
		return nil, s.mapGetError("GetByID", id, err)
	}

	return s.withDates(ctx, "GetByID", tour)
}

// ListPublic возвращает активные туры витрины
// location - подстрока, min_days/max_days - включительные границы длительности
func (s *Service) ListPublic(ctx context.Context, req *models.ListToursRequest) (*models.TourListResponse, error) {
	if req.MinDays != nil && req.MaxDays != nil && *req.MinDays > *req.MaxDays {
		s.logger.Warn("ListPublic: min_days=%d > max_days=%d", *req.MinDays, *req.MaxDays)
		return nil, fmt.Errorf("%w: min_days is greater than max_days", ErrInvalidInput)
	}

	filter := domain.TourFilter{
		ActiveOnly: true,
		Location:   req.Location,
		MinDays:    req.MinDays,
		MaxDays:    req.MaxDays,
	}

	tours, err := s.tourRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("ListPublic: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListPublic - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListPublic: found %d tours", len(tours))
	return models.FromDomainTourList(tours), nil
}

// ListAll возвращает все туры, включая неактивные
func (s *Service) ListAll(ctx context.Context, admin *domain.Admin) (*models.TourListResponse, error) {
	if admin == nil {
		return nil, ErrAccessDenied
	}

	tours, err := s.tourRepo.List(ctx, domain.TourFilter{})
	if err != nil {
		s.logger.Error("ListAll: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListAll - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListAll: admin=%s, found %d tours", admin.ID, len(tours))
	return models.FromDomainTourList(tours), nil
}

// SetActive включает или выключает тур
// Повторный вызов с тем же значением завершается успешно
func (s *Service) SetActive(ctx context.Context, admin *domain.Admin, id uuid.UUID, active bool) (*models.TourResponse, error) {
	if admin == nil {
		return nil, ErrAccessDenied
	}

	s.logger.Info("SetActive: admin=%s, tour=%s, active=%t", admin.ID, id, active)

	tour, err := s.tourRepo.SetActive(ctx, id, active)
	if err != nil {
		if errors.Is(err, tourRepo.ErrTourNotFound) {
			s.logger.Warn("SetActive: tour id=%s not found", id)
			return nil, ErrTourNotFound
		}
		s.logger.Error("SetActive: repository error for tour id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: SetActive - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainTour(tour), nil
}

// Delete удаляет тур вместе с рейсами
func (s *Service) Delete(ctx context.Context, admin *domain.Admin, id uuid.UUID) error {
	if admin == nil {
		return ErrAccessDenied
	}

	s.logger.Info("Delete: admin=%s, tour=%s", admin.ID, id)

	if err := s.tourRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, tourRepo.ErrTourNotFound) {
			s.logger.Warn("Delete: tour id=%s not found", id)
			return ErrTourNotFound
		}
		if errors.Is(err, tourRepo.ErrTourHasBookings) {
			s.logger.Warn("Delete: tour id=%s has bookings", id)
			return ErrTourInUse
		}
		s.logger.Error("Delete: repository error for tour id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	return nil
}

func (s *Service) withDates(ctx context.Context, op string, tour *domain.Tour) (*models.TourResponse, error) {
	dates, err := s.tourDateRepo.GetByTourID(ctx, tour.ID)
	if err != nil {
		s.logger.Error("%s: failed to load rounds of tour id=%s: %v", op, tour.ID, err)
		return nil, fmt.Errorf("%w: %s - load rounds: %v", ErrInternal, op, err)
	}

	if dates == nil {
		dates = []domain.TourDate{}
	}

	tour.Dates = dates
	return models.FromDomainTour(tour), nil
}

func (s *Service) mapGetError(op string, id uuid.UUID, err error) error {
	if errors.Is(err, tourRepo.ErrTourNotFound) {
		s.logger.Warn("%s: tour id=%s not found", op, id)
		return ErrTourNotFound
	}
	s.logger.Error("%s: repository error for tour id=%s: %v", op, id, err)
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
}
