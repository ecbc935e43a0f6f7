package admin

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_GetActiveByID(t *testing.T) {
	t.Run("Active admin", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		id := uuid.New()
		mock.ExpectQuery(`SELECT .+ FROM admin_users WHERE id = \$1 AND is_active = \$2`).
			WithArgs(id, true).
			WillReturnRows(sqlmock.NewRows([]string{"id", "email", "full_name", "role", "is_active", "created_at"}).
				AddRow(id.String(), "admin@webmtour.co", "ผู้ดูแล", "admin", true, time.Now()))

		repo := NewRepository(db)
		admin, err := repo.GetActiveByID(context.Background(), id)

		require.NoError(t, err)
		assert.Equal(t, "admin", admin.Role)
		assert.True(t, admin.IsActive)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Unknown or deactivated", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT .+ FROM admin_users`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "email", "full_name", "role", "is_active", "created_at"}))

		repo := NewRepository(db)
		_, err = repo.GetActiveByID(context.Background(), uuid.New())

		assert.ErrorIs(t, err, ErrAdminNotFound)
	})
}
