package booking

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

const tableBookings = "bookings"

// bookingWithTourColumns бронирование + поля тура для отображения
// LEFT JOIN: без строки тура бронирование возвращается с пустыми полями тура
var bookingWithTourColumns = []string{
	"b.id",
	"b.tour_id",
	"b.user_name",
	"b.user_email",
	"b.user_phone",
	"b.booking_date",
	"b.participants_count",
	"b.total_price",
	"b.special_requests",
	"b.status",
	"b.created_at",
	"COALESCE(t.title, '')",
	"COALESCE(t.location, '')",
	"COALESCE(t.duration_days, 0)",
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование
// Если в контексте передана активная транзакция, использует её
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(tableBookings).
		Columns(
			"tour_id",
			"user_name",
			"user_email",
			"user_phone",
			"booking_date",
			"participants_count",
			"total_price",
			"special_requests",
			"status",
		).
		Values(
			booking.TourID,
			booking.UserName,
			booking.UserEmail,
			booking.UserPhone,
			booking.BookingDate.Format(domain.DateFormat),
			booking.ParticipantsCount,
			booking.TotalPrice,
			booking.SpecialRequests,
			booking.Status,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time

	return booking, nil
}

// GetByID получает бронирование по ID вместе с данными тура
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.BookingWithTour, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectWithTour().
		Where(squirrel.Eq{"b.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBookingWithTour(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// List получает бронирования вместе с данными тура, новые первыми
// Опционально фильтрует по статусу и ограничивает количество
func (r *Repository) List(ctx context.Context, filter domain.BookingFilter) ([]*domain.BookingWithTour, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := selectWithTour().OrderBy("b.created_at DESC")

	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"b.status": *filter.Status})
	}
	if filter.Limit > 0 {
		selectBuilder = selectBuilder.Limit(filter.Limit)
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

	bookings := make([]*domain.BookingWithTour, 0)
	for rows.Next() {
		booking, err := scanBookingWithTour(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

// UpdateStatus обновляет статус бронирования
func (r *Repository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.BookingStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(tableBookings).
		Set("status", status).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// Count возвращает количество бронирований, при status != nil только с этим статусом
func (r *Repository) Count(ctx context.Context, status *domain.BookingStatus) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("COUNT(*)").From(tableBookings)
	if status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *status})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: Count - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: Count - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

func selectWithTour() squirrel.SelectBuilder {
	return psqlbuilder.Select(bookingWithTourColumns...).
		From(tableBookings + " b").
		LeftJoin("tours t ON t.id = b.tour_id")
}

func scanBookingWithTour(row rowScanner) (*domain.BookingWithTour, error) {
	var booking domain.BookingWithTour
	var status string
	var createdAt sql.NullTime

	err := row.Scan(
		&booking.ID,
		&booking.TourID,
		&booking.UserName,
		&booking.UserEmail,
		&booking.UserPhone,
		&booking.BookingDate,
		&booking.ParticipantsCount,
		&booking.TotalPrice,
		&booking.SpecialRequests,
		&status,
		&createdAt,
		&booking.Tour.Title,
		&booking.Tour.Location,
		&booking.Tour.DurationDays,
	)
	if err != nil {
		return nil, err
	}

	booking.Status = domain.BookingStatus(status)
	booking.CreatedAt = createdAt.Time

	return &booking, nil
}
