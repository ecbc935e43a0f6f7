package get_booking

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/WebMTour-Service/internal/service/bookings"
	"github.com/m04kA/WebMTour-Service/internal/service/bookings/models"
	"github.com/m04kA/WebMTour-Service/pkg/logger"
)

type stubService struct {
	bookings map[uuid.UUID]*models.BookingResponse
}

func (s *stubService) GetByID(_ context.Context, id uuid.UUID) (*models.BookingResponse, error) {
	b, ok := s.bookings[id]
	if !ok {
		return nil, bookings.ErrBookingNotFound
	}
	return b, nil
}

func get(svc BookingService, id string) *httptest.ResponseRecorder {
	h := NewHandler(svc, logger.NewWithWriter(io.Discard, logrus.InfoLevel))
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/bookings/{bookingId}", h.Handle).Methods(http.MethodGet)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/bookings/"+id, nil))
	return rec
}

func TestHandler(t *testing.T) {
	id := uuid.New()
	svc := &stubService{bookings: map[uuid.UUID]*models.BookingResponse{
		id: {ID: id, BookingDate: "2025-06-01", Status: "pending", Tours: models.TourSummaryResponse{Title: "เชียงใหม่ 5 วัน"}},
	}}

	t.Run("Found", func(t *testing.T) {
		rec := get(svc, id.String())

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"booking_date":"2025-06-01"`)
		assert.Contains(t, rec.Body.String(), `"title":"เชียงใหม่ 5 วัน"`)
	})

	t.Run("Unknown", func(t *testing.T) {
		rec := get(svc, uuid.NewString())

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"message":"ไม่พบข้อมูลการจอง"}`, rec.Body.String())
	})

	t.Run("Malformed", func(t *testing.T) {
		rec := get(svc, "12345")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
