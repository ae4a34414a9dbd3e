package room

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-StayPlanner/internal/domain"
	"github.com/m04kA/SMC-StayPlanner/pkg/dbmetrics"
	"github.com/m04kA/SMC-StayPlanner/pkg/psqlbuilder"
)

// Repository репозиторий номеров
type Repository struct {
	db dbmetrics.DBExecutor
}

func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// List возвращает все номера, упорядоченные по номеру
func (r *Repository) List(ctx context.Context) ([]domain.Room, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("number", "title", "created_at", "updated_at").
		From("rooms").
		OrderBy("number ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	rooms := make([]domain.Room, 0)
	for rows.Next() {
		var room domain.Room
		if err := rows.Scan(&room.Number, &room.Title, &room.CreatedAt, &room.UpdatedAt); err != nil {
			return nil, fmt.Errorf("%w: List - scan room: %w", ErrScanRow, err)
		}
		rooms = append(rooms, room)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %w", ErrScanRow, err)
	}

	return rooms, nil
}

// GetByNumber получает номер по его номеру
func (r *Repository) GetByNumber(ctx context.Context, number int64) (*domain.Room, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("number", "title", "created_at", "updated_at").
		From("rooms").
		Where(squirrel.Eq{"number": number}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByNumber - build select query: %v", ErrBuildQuery, err)
	}

	var room domain.Room
	err = executor.QueryRowContext(ctx, query, args...).Scan(&room.Number, &room.Title, &room.CreatedAt, &room.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRoomNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByNumber - scan room: %w", ErrScanRow, err)
	}

	return &room, nil
}
