package booking

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/WebMTour-Service/internal/domain"
)

var bookingRowColumns = []string{
	"id", "tour_id", "user_name", "user_email", "user_phone", "booking_date", "participants_count",
	"total_price", "special_requests", "status", "created_at", "title", "location", "duration_days",
}

func TestRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	tourID := uuid.New()
	bookingID := uuid.New()
	bookingDate := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`INSERT INTO bookings \(tour_id,user_name,user_email,user_phone,booking_date,participants_count,total_price,special_requests,status\) VALUES .+ RETURNING id, created_at`).
		WithArgs(tourID, "สมชาย", "somchai@example.com", "0812345678", "2025-03-01", 2, 9000.0, nil, "pending").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(bookingID.String(), time.Now()))

	repo := NewRepository(db)
	booking, err := repo.Create(context.Background(), &domain.Booking{
		TourID:            tourID,
		UserName:          "สมชาย",
		UserEmail:         "somchai@example.com",
		UserPhone:         "0812345678",
		BookingDate:       bookingDate,
		ParticipantsCount: 2,
		TotalPrice:        9000,
		Status:            domain.StatusPending,
	})

	require.NoError(t, err)
	assert.Equal(t, bookingID, booking.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByID(t *testing.T) {
	t.Run("Joined with tour", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		id := uuid.New()
		mock.ExpectQuery(`SELECT .+ FROM bookings b LEFT JOIN tours t ON t.id = b.tour_id WHERE b.id = \$1`).
			WithArgs(id).
			WillReturnRows(sqlmock.NewRows(bookingRowColumns).AddRow(
				id.String(), uuid.NewString(), "สมชาย", "somchai@example.com", "0812345678",
				time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), 2, 9000.0, "มังสวิรัติ", "confirmed", time.Now(),
				"เชียงใหม่ 3 วัน", "เชียงใหม่", 3,
			))

		repo := NewRepository(db)
		booking, err := repo.GetByID(context.Background(), id)

		require.NoError(t, err)
		assert.Equal(t, domain.StatusConfirmed, booking.Status)
		assert.Equal(t, "เชียงใหม่", booking.Tour.Location)
		assert.Equal(t, 3, booking.Tour.DurationDays)
		require.NotNil(t, booking.SpecialRequests)
		assert.Equal(t, "มังสวิรัติ", *booking.SpecialRequests)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT .+ FROM bookings b`).WillReturnRows(sqlmock.NewRows(bookingRowColumns))

		repo := NewRepository(db)
		_, err = repo.GetByID(context.Background(), uuid.New())

		assert.ErrorIs(t, err, ErrBookingNotFound)
	})
}

func TestRepository_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	status := domain.StatusPending
	mock.ExpectQuery(`SELECT .+ FROM bookings b LEFT JOIN tours t ON t.id = b.tour_id WHERE b.status = \$1 ORDER BY b.created_at DESC LIMIT 5`).
		WithArgs("pending").
		WillReturnRows(sqlmock.NewRows(bookingRowColumns).AddRow(
			uuid.NewString(), uuid.NewString(), "สมหญิง", "somying@example.com", "0899999999",
			time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC), 1, 4500.0, nil, "pending", time.Now(),
			"", "", 0,
		))

	repo := NewRepository(db)
	bookings, err := repo.List(context.Background(), domain.BookingFilter{Status: &status, Limit: 5})

	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Nil(t, bookings[0].SpecialRequests)
	assert.Empty(t, bookings[0].Tour.Title)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdateStatus(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		id := uuid.New()
		mock.ExpectExec(`UPDATE bookings SET status = \$1 WHERE id = \$2`).
			WithArgs("confirmed", id).
			WillReturnResult(sqlmock.NewResult(0, 1))

		repo := NewRepository(db)
		err = repo.UpdateStatus(context.Background(), id, domain.StatusConfirmed)

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec(`UPDATE bookings`).WillReturnResult(sqlmock.NewResult(0, 0))

		repo := NewRepository(db)
		err = repo.UpdateStatus(context.Background(), uuid.New(), domain.StatusCancelled)

		assert.ErrorIs(t, err, ErrBookingNotFound)
	})
}

func TestRepository_Count(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM bookings$`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM bookings WHERE status = \$1`).
		WithArgs("confirmed").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))

	repo := NewRepository(db)

	total, err := repo.Count(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, 12, total)

	confirmed := domain.StatusConfirmed
	count, err := repo.Count(context.Background(), &confirmed)
	require.NoError(t, err)
	assert.Equal(t, 4, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}
