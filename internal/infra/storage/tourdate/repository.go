package tourdate

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/WebMTour-Service/internal/domain"
	"github.com/m04kA/WebMTour-Service/pkg/dbmetrics"
	"github.com/m04kA/WebMTour-Service/pkg/psqlbuilder"
)

const tableTourDates = "tour_dates"

var tourDateColumns = []string{
	"id",
	"tour_id",
	"start_date",
	"end_date",
	"price",
	"status",
	"created_at",
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// Repository репозиторий для работы с рейсами туров
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория рейсов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// CreateBatch вставляет рейсы тура одним запросом
// Пустой список - не ошибка, запрос не выполняется
func (r *Repository) CreateBatch(ctx context.Context, tourID uuid.UUID, dates []domain.TourDate) ([]domain.TourDate, error) {
	if len(dates) == 0 {
		return []domain.TourDate{}, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	insertBuilder := psqlbuilder.Insert(tableTourDates).
		Columns("tour_id", "start_date", "end_date", "price", "status")

	for _, d := range dates {
		insertBuilder = insertBuilder.Values(
			tourID,
			d.StartDate.Format(domain.DateFormat),
			d.EndDate.Format(domain.DateFormat),
			d.Price,
			d.Status,
		)
	}

	query, args, err := insertBuilder.
		Suffix("RETURNING id, tour_id, start_date, end_date, price, status, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CreateBatch - build insert query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: CreateBatch - execute insert: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	created := make([]domain.TourDate, 0, len(dates))
	for rows.Next() {
		d, err := scanTourDate(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: CreateBatch - scan row: %v", ErrScanRow, err)
		}
		created = append(created, *d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: CreateBatch - rows error: %v", ErrScanRow, err)
	}

	return created, nil
}

// GetByTourID возвращает рейсы тура по возрастанию даты начала
func (r *Repository) GetByTourID(ctx context.Context, tourID uuid.UUID) ([]domain.TourDate, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(tourDateColumns...).
		From(tableTourDates).
		Where(squirrel.Eq{"tour_id": tourID}).
		OrderBy("start_date ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByTourID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByTourID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	dates := make([]domain.TourDate, 0)
	for rows.Next() {
		d, err := scanTourDate(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByTourID - scan row: %v", ErrScanRow, err)
		}
		dates = append(dates, *d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByTourID - rows error: %v", ErrScanRow, err)
	}

	return dates, nil
}

// GetByTourAndStartDate находит рейс тура, начинающийся в указанный день
// Если таких рейсов несколько, берется созданный первым
// Внутри транзакции строка блокируется (FOR UPDATE)
func (r *Repository) GetByTourAndStartDate(ctx context.Context, tourID uuid.UUID, startDate time.Time) (*domain.TourDate, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(tourDateColumns...).
		From(tableTourDates).
		Where(squirrel.Eq{
			"tour_id":    tourID,
			"start_date": startDate.Format(domain.DateFormat),
		}).
		OrderBy("created_at ASC").
		Limit(1)

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByTourAndStartDate - build select query: %v", ErrBuildQuery, err)
	}

	d, err := scanTourDate(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrTourDateNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByTourAndStartDate - scan row: %v", ErrScanRow, err)
	}

	return d, nil
}

// DeleteByTourID удаляет все рейсы тура, возвращает количество удаленных
func (r *Repository) DeleteByTourID(ctx context.Context, tourID uuid.UUID) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(tableTourDates).
		Where(squirrel.Eq{"tour_id": tourID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByTourID - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByTourID - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByTourID - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected, nil
}

func scanTourDate(row rowScanner) (*domain.TourDate, error) {
	var d domain.TourDate
	var status string
	var createdAt sql.NullTime

	err := row.Scan(
		&d.ID,
		&d.TourID,
		&d.StartDate,
		&d.EndDate,
		&d.Price,
		&status,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	d.Status = domain.RoundStatus(status)
	d.CreatedAt = createdAt.Time

	return &d, nil
}
