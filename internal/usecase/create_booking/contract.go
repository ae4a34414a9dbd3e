package create_booking

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-StayPlanner/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetInPeriod(ctx context.Context, filter domain.BookingsFilter) ([]domain.RawBooking, error)
}

// RoomRepository интерфейс репозитория номеров
type RoomRepository interface {
	GetByNumber(ctx context.Context, number int64) (*domain.Room, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Metrics метрики отклонённых размещений
type Metrics interface {
	ObservePlacementRejection(reason string)
}

// IDGenerator генератор ID бронирований (для тестирования)
type IDGenerator interface {
	NewID() string
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// UUIDGenerator генератор UUID v4 для production
type UUIDGenerator struct{}

// NewID возвращает новый UUID
func (UUIDGenerator) NewID() string {
	return uuid.NewString()
}
