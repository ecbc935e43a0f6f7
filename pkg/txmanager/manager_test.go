package txmanager_test

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/WebMTour-Service/pkg/dbmetrics"
	"github.com/m04kA/WebMTour-Service/pkg/simpletxmanager"
)

func TestManager_Do(t *testing.T) {
	t.Run("Commit on success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectExec(`DELETE FROM tour_dates`).WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectCommit()

		tm := simpletxmanager.NewTransactionManager(db)
		err = tm.Do(context.Background(), func(ctx context.Context) error {
			assert.True(t, dbmetrics.IsInTransaction(ctx))
			_, err := dbmetrics.GetExecutor(ctx, db).ExecContext(ctx, "DELETE FROM tour_dates WHERE tour_id = $1", "x")
			return err
		})

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Rollback on error", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectRollback()

		fnErr := errors.New("insert rounds failed")
		tm := simpletxmanager.NewTransactionManager(db)
		err = tm.Do(context.Background(), func(ctx context.Context) error {
			return fnErr
		})

		assert.ErrorIs(t, err, fnErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Nested call reuses transaction", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectCommit()

		tm := simpletxmanager.NewTransactionManager(db)
		err = tm.DoSerializable(context.Background(), func(ctx context.Context) error {
			return tm.Do(ctx, func(inner context.Context) error {
				assert.True(t, dbmetrics.IsInTransaction(inner))
				return nil
			})
		})

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
