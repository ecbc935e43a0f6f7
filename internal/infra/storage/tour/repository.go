package tour

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/m04kA/WebMTour-Service/internal/domain"
	"github.com/m04kA/WebMTour-Service/pkg/dbmetrics"
	"github.com/m04kA/WebMTour-Service/pkg/psqlbuilder"
)

const tableTours = "tours"

// tourColumns порядок колонок совпадает с scanTour
// Колонки владельца тура в схеме созданы с кавычками и регистром
var tourColumns = []string{
	"id",
	"title",
	"description",
	"location",
	"price",
	"duration_days",
	"max_participants",
	"is_active",
	"image_url",
	"pdf_url",
	`"OwnerTour"`,
	`"Code_Tour_owner"`,
	`"Link_Owner"`,
	"highlights",
	"included_services",
	"created_at",
	"updated_at",
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// Repository репозиторий для работы с турами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория туров
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает тур
// highlights/included_services сохраняются пустыми массивами, если не переданы
func (r *Repository) Create(ctx context.Context, tour *domain.Tour) (*domain.Tour, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(tableTours).
		Columns(
			"title",
			"description",
			"location",
			"price",
			"duration_days",
			"max_participants",
			"is_active",
			"image_url",
			"pdf_url",
			`"OwnerTour"`,
			`"Code_Tour_owner"`,
			`"Link_Owner"`,
			"highlights",
			"included_services",
		).
		Values(
			tour.Title,
			tour.Description,
			tour.Location,
			tour.Price,
			tour.DurationDays,
			tour.MaxParticipants,
			tour.IsActive,
			tour.ImageURL,
			tour.PDFURL,
			tour.OwnerTour,
			tour.CodeTourOwner,
			tour.LinkOwner,
			stringArray(tour.Highlights),
			stringArray(tour.IncludedServices),
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&tour.ID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	tour.CreatedAt = createdAt.Time
	tour.UpdatedAt = updatedAt.Time
	tour.Highlights = nonNil(tour.Highlights)
	tour.IncludedServices = nonNil(tour.IncludedServices)

	return tour, nil
}

// GetByID получает тур по ID независимо от статуса активности
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Tour, error) {
	return r.getOne(ctx, "GetByID", squirrel.Eq{"id": id})
}

// GetActiveByID получает тур по ID только если он активен
func (r *Repository) GetActiveByID(ctx context.Context, id uuid.UUID) (*domain.Tour, error) {
	return r.getOne(ctx, "GetActiveByID", squirrel.Eq{"id": id, "is_active": true})
}

func (r *Repository) getOne(ctx context.Context, op string, where squirrel.Sqlizer) (*domain.Tour, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(tourColumns...).
		From(tableTours).
		Where(where).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	tour, err := scanTour(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrTourNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan tour: %v", ErrScanRow, op, err)
	}

	return tour, nil
}

// List получает список туров, новые первыми
// Фильтр по location - подстрока (как на витрине), по длительности - включительные границы
func (r *Repository) List(ctx context.Context, filter domain.TourFilter) ([]*domain.Tour, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(tourColumns...).
		From(tableTours).
		OrderBy("created_at DESC")

	if filter.ActiveOnly {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"is_active": true})
	}
	if filter.Location != nil && *filter.Location != "" {
		selectBuilder = selectBuilder.Where(squirrel.Like{"location": "%" + *filter.Location + "%"})
	}
	if filter.MinDays != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"duration_days": *filter.MinDays})
	}
	if filter.MaxDays != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"duration_days": *filter.MaxDays})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	tours := make([]*domain.Tour, 0)
	for rows.Next() {
		tour, err := scanTour(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		tours = append(tours, tour)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return tours, nil
}

// Update обновляет все скалярные поля тура и заменяет массивы highlights/included_services
// Рейсы тура не затрагиваются
func (r *Repository) Update(ctx context.Context, tour *domain.Tour) (*domain.Tour, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(tableTours).
		Set("title", tour.Title).
		Set("description", tour.Description).
		Set("location", tour.Location).
		Set("price", tour.Price).
		Set("duration_days", tour.DurationDays).
		Set("max_participants", tour.MaxParticipants).
		Set("is_active", tour.IsActive).
		Set("image_url", tour.ImageURL).
		Set("pdf_url", tour.PDFURL).
		Set(`"OwnerTour"`, tour.OwnerTour).
		Set(`"Code_Tour_owner"`, tour.CodeTourOwner).
		Set(`"Link_Owner"`, tour.LinkOwner).
		Set("highlights", stringArray(tour.Highlights)).
		Set("included_services", stringArray(tour.IncludedServices)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": tour.ID}).
		Suffix("RETURNING " + strings.Join(tourColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	updated, err := scanTour(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrTourNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	return updated, nil
}

// SetActive обновляет только флаг активности и updated_at
// Повторный вызов с тем же значением не является ошибкой
func (r *Repository) SetActive(ctx context.Context, id uuid.UUID, active bool) (*domain.Tour, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(tableTours).
		Set("is_active", active).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(tourColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: SetActive - build update query: %v", ErrBuildQuery, err)
	}

	updated, err := scanTour(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrTourNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: SetActive - execute update: %v", ErrExecQuery, err)
	}

	return updated, nil
}

// foreignKeyViolation код ошибки PostgreSQL 23503
const foreignKeyViolation = "foreign_key_violation"

// Delete удаляет тур (рейсы удаляются каскадно на уровне БД)
// Бронирования тура удаление блокируют
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(tableTours).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == foreignKeyViolation {
			return ErrTourHasBookings
		}
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrTourNotFound
	}

	return nil
}

// Count возвращает общее количество туров
func (r *Repository) Count(ctx context.Context) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").From(tableTours).ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: Count - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: Count - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

func scanTour(row rowScanner) (*domain.Tour, error) {
	var tour domain.Tour
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&tour.ID,
		&tour.Title,
		&tour.Description,
		&tour.Location,
		&tour.Price,
		&tour.DurationDays,
		&tour.MaxParticipants,
		&tour.IsActive,
		&tour.ImageURL,
		&tour.PDFURL,
		&tour.OwnerTour,
		&tour.CodeTourOwner,
		&tour.LinkOwner,
		pq.Array(&tour.Highlights),
		pq.Array(&tour.IncludedServices),
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	tour.CreatedAt = createdAt.Time
	tour.UpdatedAt = updatedAt.Time
	tour.Highlights = nonNil(tour.Highlights)
	tour.IncludedServices = nonNil(tour.IncludedServices)

	return &tour, nil
}

func stringArray(values []string) pq.StringArray {
	return pq.StringArray(nonNil(values))
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}

