package update_booking

import (
	"github.com/m04kA/SMC-StayPlanner/internal/domain"
	"github.com/m04kA/SMC-StayPlanner/pkg/types"
)

// Request перенос бронирования в другой номер и/или на другие даты
type Request struct {
	BookingID string
	RoomID    int64
	CheckIn   types.Date
	CheckOut  types.Date
}

// Response модель ответа с обновлённым бронированием
type Response struct {
	Booking domain.Booking
}
