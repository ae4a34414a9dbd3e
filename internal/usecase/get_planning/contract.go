package get_planning

import (
	"context"
	"time"

	"github.com/m04kA/SMC-StayPlanner/internal/domain"
)

// RoomRepository интерфейс репозитория номеров
type RoomRepository interface {
	List(ctx context.Context) ([]domain.Room, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetInPeriod(ctx context.Context, filter domain.BookingsFilter) ([]domain.RawBooking, error)
}

// Metrics метрики построения сетки
type Metrics interface {
	ObserveGrid(started time.Time, malformed, conflicts int)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
