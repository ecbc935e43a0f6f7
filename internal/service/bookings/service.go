package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/WebMTour-Service/internal/domain"
	bookingRepo "github.com/m04kA/WebMTour-Service/internal/infra/storage/booking"
	"github.com/m04kA/WebMTour-Service/internal/service/bookings/models"
	"github.com/m04kA/WebMTour-Service/pkg/ptr"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo BookingRepository
	tourCounter TourCounter
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, tourCounter TourCounter, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		tourCounter: tourCounter,
		logger:      logger,
	}
}

// GetByID получает бронирование для страницы подтверждения
// Идентификатор бронирования выдается клиенту после создания, отдельной проверки доступа нет
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%s", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%s not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// List возвращает бронирования для админ-панели, новые первыми
// status == nil - все статусы
func (s *Service) List(ctx context.Context, admin *domain.Admin, status *string) (*models.BookingListResponse, error) {
	if admin == nil {
		return nil, ErrAccessDenied
	}

	s.logger.Info("List: admin=%s fetching bookings, status=%v", admin.ID, ptr.Value(status))

	filter := domain.BookingFilter{}
	if status != nil && *status != "" {
		domainStatus, err := models.ToDomainBookingStatus(*status)
		if err != nil {
			s.logger.Warn("List: invalid status filter %q", *status)
			return nil, fmt.Errorf("%w: %v", ErrInvalidStatus, err)
		}
		filter.Status = &domainStatus
	}

	bookings, err := s.bookingRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d bookings", len(bookings))
	return &models.BookingListResponse{Bookings: models.FromDomainBookingList(bookings)}, nil
}

// UpdateStatus меняет статус бронирования (действие администратора)
func (s *Service) UpdateStatus(ctx context.Context, admin *domain.Admin, id uuid.UUID, status string) (*models.BookingResponse, error) {
	if admin == nil {
		return nil, ErrAccessDenied
	}

	s.logger.Info("UpdateStatus: admin=%s, booking=%s, status=%s", admin.ID, id, status)

	domainStatus, err := models.ToDomainBookingStatus(status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status %q for booking id=%s", status, id)
		return nil, fmt.Errorf("%w: %v", ErrInvalidStatus, err)
	}

	if err := s.bookingRepo.UpdateStatus(ctx, id, domainStatus); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("UpdateStatus: booking id=%s not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("UpdateStatus: failed to reload booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateStatus - reload booking: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: booking id=%s is now %s", id, domainStatus)
	return models.FromDomainBooking(booking), nil
}

// Dashboard собирает сводку для админ-панели
func (s *Service) Dashboard(ctx context.Context, admin *domain.Admin) (*models.DashboardResponse, error) {
	if admin == nil {
		return nil, ErrAccessDenied
	}

	s.logger.Info("Dashboard: admin=%s", admin.ID)

	var stats domain.DashboardStats
	var err error

	// 1. Количество туров
	if stats.TotalTours, err = s.tourCounter.Count(ctx); err != nil {
		s.logger.Error("Dashboard: failed to count tours: %v", err)
		return nil, fmt.Errorf("%w: Dashboard - count tours: %v", ErrInternal, err)
	}

	// 2. Количество бронирований: всего, ожидающих, подтвержденных
	counters := []struct {
		status *domain.BookingStatus
		target *int
	}{
		{nil, &stats.TotalBookings},
		{ptr.Ptr(domain.StatusPending), &stats.PendingBookings},
		{ptr.Ptr(domain.StatusConfirmed), &stats.ConfirmedBookings},
	}
	for _, c := range counters {
		if *c.target, err = s.bookingRepo.Count(ctx, c.status); err != nil {
			s.logger.Error("Dashboard: failed to count bookings: %v", err)
			return nil, fmt.Errorf("%w: Dashboard - count bookings: %v", ErrInternal, err)
		}
	}

	// 3. Последние бронирования
	stats.RecentBookings, err = s.bookingRepo.List(ctx, domain.BookingFilter{Limit: domain.RecentBookingsLimit})
	if err != nil {
		s.logger.Error("Dashboard: failed to list recent bookings: %v", err)
		return nil, fmt.Errorf("%w: Dashboard - recent bookings: %v", ErrInternal, err)
	}

	return models.FromDomainDashboard(&stats), nil
}
