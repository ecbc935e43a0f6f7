package delete_tour

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/WebMTour-Service/internal/api/middleware"
	"github.com/m04kA/WebMTour-Service/internal/domain"
	"github.com/m04kA/WebMTour-Service/internal/service/tours"
	"github.com/m04kA/WebMTour-Service/pkg/logger"
)

type stubService struct {
	err     error
	deleted []uuid.UUID
}

func (s *stubService) Delete(_ context.Context, _ *domain.Admin, id uuid.UUID) error {
	if s.err != nil {
		return s.err
	}
	s.deleted = append(s.deleted, id)
	return nil
}

func del(svc TourService, id string) *httptest.ResponseRecorder {
	h := NewHandler(svc, logger.NewWithWriter(io.Discard, logrus.InfoLevel))
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/admin/tours/{tourId}", h.Handle).Methods(http.MethodDelete)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/admin/tours/"+id, nil)
	req = req.WithContext(middleware.WithAdmin(req.Context(), &domain.Admin{ID: uuid.New(), IsActive: true}))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandler(t *testing.T) {
	t.Run("Deleted", func(t *testing.T) {
		svc := &stubService{}
		id := uuid.New()

		rec := del(svc, id.String())

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"message":"Tour deleted successfully"}`, rec.Body.String())
		assert.Equal(t, []uuid.UUID{id}, svc.deleted)
	})

	t.Run("Unknown tour", func(t *testing.T) {
		rec := del(&stubService{err: tours.ErrTourNotFound}, uuid.NewString())

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("Has bookings", func(t *testing.T) {
		rec := del(&stubService{err: tours.ErrTourInUse}, uuid.NewString())

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("Store failure", func(t *testing.T) {
		rec := del(&stubService{err: errors.Join(tours.ErrInternal, errors.New("fk violation"))}, uuid.NewString())

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
