package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-StayPlanner/internal/domain"
	"github.com/m04kA/SMC-StayPlanner/pkg/dbmetrics"
	"github.com/m04kA/SMC-StayPlanner/pkg/psqlbuilder"
)

// Коды ошибок postgres
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

var bookingColumns = []string{
	"id",
	"room_id",
	"check_in",
	"check_out",
	"cancelled",
	"guest_name",
	"guest_contact",
	"notes",
	"external_ref",
	"cancellation_reason",
	"cancelled_at",
	"created_by",
	"created_at",
	"updated_at",
}

var rawBookingColumns = []string{
	"id",
	"room_id",
	"check_in",
	"check_out",
	"cancelled",
	"guest_name",
	"guest_contact",
	"notes",
	"external_ref",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет новое бронирование. ID генерирует вызывающий код.
// Если в контексте есть транзакция, запрос выполняется в ней.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"id",
			"room_id",
			"check_in",
			"check_out",
			"cancelled",
			"guest_name",
			"guest_contact",
			"notes",
			"external_ref",
			"created_by",
		).
		Values(
			booking.ID,
			booking.RoomID,
			booking.CheckIn,
			booking.CheckOut,
			booking.Cancelled,
			booking.Payload.GuestName,
			booking.Payload.GuestContact,
			booking.Payload.Notes,
			booking.Payload.ExternalRef,
			booking.CreatedBy,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err != nil {
		if mapped := mapConstraintError(err); mapped != nil {
			return nil, mapped
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// Update переносит бронирование: меняет номер и даты проживания
func (r *Repository) Update(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("room_id", booking.RoomID).
		Set("check_in", booking.CheckIn).
		Set("check_out", booking.CheckOut).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": booking.ID}).
		Suffix("RETURNING updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		if mapped := mapConstraintError(err); mapped != nil {
			return nil, mapped
		}
		return nil, fmt.Errorf("%w: Update - execute update: %w", ErrExecQuery, err)
	}

	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// GetByID получает бронирование по ID.
// Внутри транзакции строка блокируется (FOR UPDATE).
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var booking domain.Booking
	var cancelledAt, createdAt, updatedAt sql.NullTime
	var createdBy sql.NullInt64
	var roomID sql.NullInt64

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&roomID,
		&booking.CheckIn,
		&booking.CheckOut,
		&booking.Cancelled,
		&booking.Payload.GuestName,
		&booking.Payload.GuestContact,
		&booking.Payload.Notes,
		&booking.Payload.ExternalRef,
		&booking.CancellationReason,
		&cancelledAt,
		&createdBy,
		&createdAt,
		&updatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %w", ErrScanRow, err)
	}

	if roomID.Valid {
		booking.RoomID = &roomID.Int64
	}
	if createdBy.Valid {
		booking.CreatedBy = &createdBy.Int64
	}
	if cancelledAt.Valid {
		booking.CancelledAt = &cancelledAt.Time
	}
	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return &booking, nil
}

// GetInPeriod получает бронирования, пересекающиеся с периодом [filter.From, filter.To).
// Записи без дат (ручной ввод) возвращаются всегда, их разбор и отсев выполняет planning.Normalize.
// Даты возвращаются строками: бронирования с неразборчивыми датами не должны ронять выборку.
//
// Внутри транзакции строки блокируются (FOR UPDATE), чтобы параллельное бронирование
// того же номера дождалось завершения текущей проверки.
func (r *Repository) GetInPeriod(ctx context.Context, filter domain.BookingsFilter) ([]domain.RawBooking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(rawBookingColumns...).
		From("bookings").
		Where(squirrel.Or{
			squirrel.And{
				squirrel.Lt{"check_in": filter.To},
				squirrel.Gt{"check_out": filter.From},
			},
			squirrel.Eq{"check_in": nil},
			squirrel.Eq{"check_out": nil},
		}).
		OrderBy("check_in ASC NULLS LAST", "id ASC")

	// Фильтрация по номеру (если указан)
	if filter.RoomID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"room_id": *filter.RoomID})
	}

	if !filter.IncludeCancelled {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"cancelled": false})
	}

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetInPeriod - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetInPeriod - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanRawBookings(rows)
}

// Cancel отменяет бронирование с указанием причины
func (r *Repository) Cancel(ctx context.Context, id string, reason *string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("cancelled", true).
		Set("cancellation_reason", reason).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Cancel - get rows affected: %w", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// scanRawBookings сканирует результаты запроса, даты читаются как строки.
// database/sql приводит значения DATE к строке в формате RFC3339.
func scanRawBookings(rows *sql.Rows) ([]domain.RawBooking, error) {
	bookings := make([]domain.RawBooking, 0)

	for rows.Next() {
		var booking domain.RawBooking
		var roomID sql.NullInt64
		var checkIn, checkOut sql.NullString

		err := rows.Scan(
			&booking.ID,
			&roomID,
			&checkIn,
			&checkOut,
			&booking.Cancelled,
			&booking.Payload.GuestName,
			&booking.Payload.GuestContact,
			&booking.Payload.Notes,
			&booking.Payload.ExternalRef,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanRawBookings - scan row: %w", ErrScanRow, err)
		}

		if roomID.Valid {
			id := roomID.Int64
			booking.RoomID = &id
		}
		booking.CheckIn = checkIn.String
		booking.CheckOut = checkOut.String

		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanRawBookings - rows error: %w", ErrScanRow, err)
	}

	return bookings, nil
}

// mapConstraintError переводит нарушения ограничений postgres в ошибки репозитория
func mapConstraintError(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return nil
	}

	switch pqErr.Code {
	case codeUniqueViolation:
		return fmt.Errorf("%w: %s", ErrBookingExists, pqErr.Constraint)
	case codeForeignKeyViolation:
		return fmt.Errorf("%w: %s", ErrRoomNotFound, pqErr.Constraint)
	default:
		return nil
	}
}
