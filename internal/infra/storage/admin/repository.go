package admin

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/WebMTour-Service/internal/domain"
	"github.com/m04kA/WebMTour-Service/pkg/dbmetrics"
	"github.com/m04kA/WebMTour-Service/pkg/psqlbuilder"
)

// Repository репозиторий администраторов
type Repository struct {
	db DBExecutor
}

func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetActiveByID возвращает администратора, только если запись существует и is_active = true
func (r *Repository) GetActiveByID(ctx context.Context, id uuid.UUID) (*domain.Admin, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"COALESCE(email, '')",
		"COALESCE(full_name, '')",
		"role",
		"is_active",
		"created_at",
	).
		From("admin_users").
		Where(squirrel.Eq{"id": id, "is_active": true}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByID - build select query: %v", ErrBuildQuery, err)
	}

	var admin domain.Admin
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&admin.ID,
		&admin.Email,
		&admin.FullName,
		&admin.Role,
		&admin.IsActive,
		&createdAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAdminNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByID - scan admin: %v", ErrScanRow, err)
	}

	admin.CreatedAt = createdAt.Time

	return &admin, nil
}
