package create_tour

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/WebMTour-Service/internal/api/middleware"
	"github.com/m04kA/WebMTour-Service/internal/domain"
	createTour "github.com/m04kA/WebMTour-Service/internal/usecase/create_tour"
	"github.com/m04kA/WebMTour-Service/pkg/logger"
)

type stubUseCase struct {
	got        *createTour.Request
	err        error
	datesSaved bool
}

func (s *stubUseCase) Execute(_ context.Context, req *createTour.Request) (*createTour.Response, error) {
	s.got = req
	if s.err != nil {
		return nil, s.err
	}
	tour := req.Draft.Tour(uuid.New(), true)
	tour.Dates = req.Draft.Rounds(tour.Price)
	return &createTour.Response{Tour: tour, DatesSaved: s.datesSaved}, nil
}

const body = `{"title":"เชียงใหม่ 5 วัน","description":"ดอยอินทนนท์","location":"เชียงใหม่","price":12000,"duration_days":5,"max_participants":10,"OwnerTour":"บริษัท ก","tour_dates":[{"start_date":"2025-06-01","end_date":"2025-06-05"}]}`

var admin = &domain.Admin{ID: uuid.New(), IsActive: true}

func serve(uc CreateTourUseCase, payload string, withAdmin bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/tours", strings.NewReader(payload))
	if withAdmin {
		req = req.WithContext(middleware.WithAdmin(req.Context(), admin))
	}
	rec := httptest.NewRecorder()
	NewHandler(uc, logger.NewWithWriter(io.Discard, logrus.InfoLevel)).Handle(rec, req)
	return rec
}

func TestHandler_Created(t *testing.T) {
	uc := &stubUseCase{datesSaved: true}

	rec := serve(uc, body, true)

	require.Equal(t, http.StatusCreated, rec.Code)
	var resp struct {
		Tour struct {
			OwnerTour string `json:"OwnerTour"`
			TourDates []struct {
				Price float64 `json:"price"`
			} `json:"tour_dates"`
		} `json:"tour"`
		DatesSaved bool `json:"dates_saved"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.DatesSaved)
	assert.Equal(t, "บริษัท ก", resp.Tour.OwnerTour)
	require.Len(t, resp.Tour.TourDates, 1)
	assert.Equal(t, 12000.0, resp.Tour.TourDates[0].Price)
	assert.Equal(t, admin, uc.got.Admin)
}

func TestHandler_Rejected(t *testing.T) {
	t.Run("Missing fields", func(t *testing.T) {
		uc := &stubUseCase{}

		rec := serve(uc, `{"title":"x"}`, true)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"message":"Missing required fields"}`, rec.Body.String())
		assert.Nil(t, uc.got)
	})

	t.Run("Unknown round status", func(t *testing.T) {
		uc := &stubUseCase{}

		rec := serve(uc, strings.Replace(body, `"end_date":"2025-06-05"`, `"end_date":"2025-06-05","status":"sold"`, 1), true)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Nil(t, uc.got)
	})

	t.Run("Round ends before start", func(t *testing.T) {
		rec := serve(&stubUseCase{err: createTour.ErrInvalidInput}, body, true)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("No admin", func(t *testing.T) {
		rec := serve(&stubUseCase{}, body, false)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Store failure", func(t *testing.T) {
		rec := serve(&stubUseCase{err: errors.Join(createTour.ErrInternal, errors.New("pq: timeout"))}, body, true)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), "pq")
	})
}
