package domain

import (
	"time"

	"github.com/m04kA/SMC-StayPlanner/pkg/types"
)

// Payload opaque guest data carried through for rendering.
// The planning engine never interprets it.
type Payload struct {
	GuestName    string
	GuestContact *string
	Notes        *string
	ExternalRef  *string // Номер брони во внешней системе (OTA, телефонная бронь и т.п.)
}

// Booking represents a stay booked against a room.
// The stay is the half-open interval [CheckIn, CheckOut).
type Booking struct {
	ID        string
	RoomID    *int64 // nil = номер ещё не назначен, в сетку не попадает
	CheckIn   types.Date
	CheckOut  types.Date
	Cancelled bool
	Payload   Payload

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedBy *int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking takes part in occupancy computations
func (b *Booking) IsActive() bool {
	return !b.Cancelled
}

// HasRoom returns true if the booking is assigned to a room
func (b *Booking) HasRoom() bool {
	return b.RoomID != nil
}

// InRoom returns true if the booking is assigned to the given room
func (b *Booking) InRoom(roomID int64) bool {
	return b.RoomID != nil && *b.RoomID == roomID
}

// HasValidRange returns true if check-out is strictly after check-in
func (b *Booking) HasValidRange() bool {
	return b.CheckIn.Before(b.CheckOut)
}

// Nights returns the number of nights of the stay
func (b *Booking) Nights() int {
	return b.CheckIn.DaysUntil(b.CheckOut)
}

// Overlaps returns true if [checkIn, checkOut) intersects the booking stay.
// Back-to-back stays (checkOut == b.CheckIn) do not overlap.
func (b *Booking) Overlaps(checkIn, checkOut types.Date) bool {
	return checkIn.Before(b.CheckOut) && b.CheckIn.Before(checkOut)
}

// BookingsFilter фильтр для выборки бронирований за период
type BookingsFilter struct {
	RoomID           *int64     // Фильтр по номеру (опционально, если nil - все номера)
	From             types.Date // Начало периода (включительно)
	To               types.Date // Конец периода (не включительно)
	IncludeCancelled bool       // Включать ли отменённые бронирования
}

// RawBooking booking record as delivered by storage or transport, dates not yet parsed.
// Dates may carry a time suffix ("2025-09-02T00:00:00Z") or be empty for manual entries.
type RawBooking struct {
	ID        string
	RoomID    *int64
	CheckIn   string
	CheckOut  string
	Cancelled bool
	Payload   Payload
}
