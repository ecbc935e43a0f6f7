package tours

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/WebMTour-Service/internal/domain"
	tourRepo "github.com/m04kA/WebMTour-Service/internal/infra/storage/tour"
	"github.com/m04kA/WebMTour-Service/internal/service/tours/models"
	"github.com/m04kA/WebMTour-Service/pkg/logger"
	"github.com/m04kA/WebMTour-Service/pkg/ptr"
)

type memoryTours struct {
	tours      map[uuid.UUID]*domain.Tour
	dates      map[uuid.UUID][]domain.TourDate
	booked     map[uuid.UUID]bool
	lastFilter domain.TourFilter
}

func newMemoryTours() *memoryTours {
	return &memoryTours{
		tours:  make(map[uuid.UUID]*domain.Tour),
		dates:  make(map[uuid.UUID][]domain.TourDate),
		booked: make(map[uuid.UUID]bool),
	}
}

func (m *memoryTours) add(active bool) *domain.Tour {
	t := &domain.Tour{ID: uuid.New(), Title: "ภูเก็ต", Location: "ภูเก็ต", DurationDays: 3, MaxParticipants: 10, IsActive: active}
	m.tours[t.ID] = t
	return t
}

func (m *memoryTours) GetByID(_ context.Context, id uuid.UUID) (*domain.Tour, error) {
	t, ok := m.tours[id]
	if !ok {
		return nil, tourRepo.ErrTourNotFound
	}
	copied := *t
	return &copied, nil
}

func (m *memoryTours) GetActiveByID(ctx context.Context, id uuid.UUID) (*domain.Tour, error) {
	t, err := m.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !t.IsActive {
		return nil, tourRepo.ErrTourNotFound
	}
	return t, nil
}

func (m *memoryTours) List(_ context.Context, filter domain.TourFilter) ([]*domain.Tour, error) {
	m.lastFilter = filter
	result := make([]*domain.Tour, 0)
	for _, t := range m.tours {
		if filter.ActiveOnly && !t.IsActive {
			continue
		}
		result = append(result, t)
	}
	return result, nil
}

func (m *memoryTours) SetActive(_ context.Context, id uuid.UUID, active bool) (*domain.Tour, error) {
	t, ok := m.tours[id]
	if !ok {
		return nil, tourRepo.ErrTourNotFound
	}
	t.IsActive = active
	t.UpdatedAt = time.Now()
	copied := *t
	return &copied, nil
}

func (m *memoryTours) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := m.tours[id]; !ok {
		return tourRepo.ErrTourNotFound
	}
	if m.booked[id] {
		return tourRepo.ErrTourHasBookings
	}
	delete(m.tours, id)
	delete(m.dates, id)
	return nil
}

func (m *memoryTours) GetByTourID(_ context.Context, tourID uuid.UUID) ([]domain.TourDate, error) {
	return m.dates[tourID], nil
}

func newService(store *memoryTours) *Service {
	return NewService(store, store, logger.NewWithWriter(io.Discard, logrus.InfoLevel))
}

var admin = &domain.Admin{ID: uuid.New(), Role: "admin", IsActive: true}

func TestService_SetActive_Idempotent(t *testing.T) {
	store := newMemoryTours()
	tour := store.add(false)
	svc := newService(store)

	first, err := svc.SetActive(context.Background(), admin, tour.ID, true)
	require.NoError(t, err)

	second, err := svc.SetActive(context.Background(), admin, tour.ID, true)
	require.NoError(t, err)

	assert.True(t, first.IsActive)
	assert.True(t, second.IsActive)
	assert.True(t, store.tours[tour.ID].IsActive)
}

func TestService_SetActive_NotFound(t *testing.T) {
	svc := newService(newMemoryTours())

	_, err := svc.SetActive(context.Background(), admin, uuid.New(), false)

	assert.ErrorIs(t, err, ErrTourNotFound)
}

func TestService_GetPublic(t *testing.T) {
	store := newMemoryTours()
	active := store.add(true)
	inactive := store.add(false)
	store.dates[active.ID] = []domain.TourDate{
		{ID: uuid.New(), TourID: active.ID, StartDate: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), EndDate: time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC), Status: domain.RoundAvailable},
	}
	svc := newService(store)

	resp, err := svc.GetPublic(context.Background(), active.ID)
	require.NoError(t, err)
	require.Len(t, resp.TourDates, 1)
	assert.Equal(t, "2025-06-01", resp.TourDates[0].StartDate)

	_, err = svc.GetPublic(context.Background(), inactive.ID)
	assert.ErrorIs(t, err, ErrTourNotFound)

	adminView, err := svc.GetByID(context.Background(), admin, inactive.ID)
	require.NoError(t, err)
	assert.False(t, adminView.IsActive)
	assert.NotNil(t, adminView.TourDates)
}

func TestService_ListPublic(t *testing.T) {
	store := newMemoryTours()
	store.add(true)
	store.add(false)
	svc := newService(store)

	resp, err := svc.ListPublic(context.Background(), &models.ListToursRequest{Location: ptr.Ptr("ภูเก็ต"), MinDays: ptr.Ptr(2)})

	require.NoError(t, err)
	assert.Len(t, resp.Tours, 1)
	assert.True(t, store.lastFilter.ActiveOnly)
	assert.Equal(t, "ภูเก็ต", ptr.Value(store.lastFilter.Location))

	_, err = svc.ListPublic(context.Background(), &models.ListToursRequest{MinDays: ptr.Ptr(5), MaxDays: ptr.Ptr(2)})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_AdminOperationsRequireAdmin(t *testing.T) {
	store := newMemoryTours()
	tour := store.add(true)
	svc := newService(store)
	ctx := context.Background()

	_, err := svc.ListAll(ctx, nil)
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = svc.SetActive(ctx, nil, tour.ID, false)
	assert.ErrorIs(t, err, ErrAccessDenied)

	err = svc.Delete(ctx, nil, tour.ID)
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Contains(t, store.tours, tour.ID)

	all, err := svc.ListAll(ctx, admin)
	require.NoError(t, err)
	assert.Len(t, all.Tours, 1)
}

func TestService_Delete(t *testing.T) {
	store := newMemoryTours()
	tour := store.add(true)
	svc := newService(store)

	require.NoError(t, svc.Delete(context.Background(), admin, tour.ID))
	assert.ErrorIs(t, svc.Delete(context.Background(), admin, tour.ID), ErrTourNotFound)
}

func TestService_Delete_WithBookings(t *testing.T) {
	store := newMemoryTours()
	tour := store.add(true)
	store.booked[tour.ID] = true
	svc := newService(store)

	err := svc.Delete(context.Background(), admin, tour.ID)

	assert.ErrorIs(t, err, ErrTourInUse)
	assert.Contains(t, store.tours, tour.ID)
}
