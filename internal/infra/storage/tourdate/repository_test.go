package tourdate

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/WebMTour-Service/internal/domain"
	"github.com/m04kA/WebMTour-Service/pkg/simpletxmanager"
)

var dateRowColumns = []string{"id", "tour_id", "start_date", "end_date", "price", "status", "created_at"}

func day(s string) time.Time {
	d, _ := time.Parse(domain.DateFormat, s)
	return d
}

func TestRepository_CreateBatch(t *testing.T) {
	t.Run("Inserts all rounds in one statement", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		tourID := uuid.New()
		mock.ExpectQuery(`INSERT INTO tour_dates \(tour_id,start_date,end_date,price,status\) VALUES \(\$1,\$2,\$3,\$4,\$5\),\(\$6,\$7,\$8,\$9,\$10\) RETURNING`).
			WithArgs(
				tourID, "2025-03-01", "2025-03-03", 4500.0, "available",
				tourID, "2025-04-01", "2025-04-03", 5000.0, "closed",
			).
			WillReturnRows(sqlmock.NewRows(dateRowColumns).
				AddRow(uuid.NewString(), tourID.String(), day("2025-03-01"), day("2025-03-03"), 4500.0, "available", time.Now()).
				AddRow(uuid.NewString(), tourID.String(), day("2025-04-01"), day("2025-04-03"), 5000.0, "closed", time.Now()))

		repo := NewRepository(db)
		created, err := repo.CreateBatch(context.Background(), tourID, []domain.TourDate{
			{StartDate: day("2025-03-01"), EndDate: day("2025-03-03"), Price: 4500, Status: domain.RoundAvailable},
			{StartDate: day("2025-04-01"), EndDate: day("2025-04-03"), Price: 5000, Status: domain.RoundClosed},
		})

		require.NoError(t, err)
		require.Len(t, created, 2)
		assert.Equal(t, domain.RoundClosed, created[1].Status)
		assert.Equal(t, tourID, created[0].TourID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Empty list does not hit the database", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		repo := NewRepository(db)
		created, err := repo.CreateBatch(context.Background(), uuid.New(), nil)

		require.NoError(t, err)
		assert.Empty(t, created)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_GetByTourID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	tourID := uuid.New()
	mock.ExpectQuery(`SELECT .+ FROM tour_dates WHERE tour_id = \$1 ORDER BY start_date ASC`).
		WithArgs(tourID).
		WillReturnRows(sqlmock.NewRows(dateRowColumns).
			AddRow(uuid.NewString(), tourID.String(), day("2025-03-01"), day("2025-03-03"), 4500.0, "available", time.Now()))

	repo := NewRepository(db)
	dates, err := repo.GetByTourID(context.Background(), tourID)

	require.NoError(t, err)
	require.Len(t, dates, 1)
	assert.True(t, dates[0].StartDate.Equal(day("2025-03-01")))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByTourAndStartDate(t *testing.T) {
	t.Run("Not found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		tourID := uuid.New()
		mock.ExpectQuery(`SELECT .+ FROM tour_dates WHERE start_date = \$1 AND tour_id = \$2 ORDER BY created_at ASC LIMIT 1$`).
			WithArgs("2025-03-01", tourID).
			WillReturnRows(sqlmock.NewRows(dateRowColumns))

		repo := NewRepository(db)
		_, err = repo.GetByTourAndStartDate(context.Background(), tourID, day("2025-03-01"))

		assert.ErrorIs(t, err, ErrTourDateNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Locks row inside transaction", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		tourID := uuid.New()
		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT .+ FROM tour_dates .+ LIMIT 1 FOR UPDATE`).
			WillReturnRows(sqlmock.NewRows(dateRowColumns).
				AddRow(uuid.NewString(), tourID.String(), day("2025-03-01"), day("2025-03-03"), 4500.0, "full", time.Now()))
		mock.ExpectCommit()

		repo := NewRepository(db)
		var round *domain.TourDate
		err = simpletxmanager.NewTransactionManager(db).Do(context.Background(), func(ctx context.Context) error {
			var err error
			round, err = repo.GetByTourAndStartDate(ctx, tourID, day("2025-03-01"))
			return err
		})

		require.NoError(t, err)
		assert.Equal(t, domain.RoundFull, round.Status)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_DeleteByTourID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`DELETE FROM tour_dates WHERE tour_id = \$1`).WillReturnResult(sqlmock.NewResult(0, 3))

	repo := NewRepository(db)
	deleted, err := repo.DeleteByTourID(context.Background(), uuid.New())

	require.NoError(t, err)
	assert.Equal(t, int64(3), deleted)
}
