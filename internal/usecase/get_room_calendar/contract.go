package get_room_calendar

import (
	"context"

	"github.com/m04kA/SMC-StayPlanner/internal/domain"
)

// RoomRepository интерфейс репозитория номеров
type RoomRepository interface {
	GetByNumber(ctx context.Context, number int64) (*domain.Room, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetInPeriod(ctx context.Context, filter domain.BookingsFilter) ([]domain.RawBooking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
