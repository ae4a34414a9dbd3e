package planning

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-StayPlanner/pkg/types"
)

var (
	// ErrInvalidRange возвращается, когда дата выезда не позже даты заезда
	ErrInvalidRange = errors.New("planning: check-out must be after check-in")

	// ErrConflict возвращается, когда номер уже занят на пересекающиеся даты
	ErrConflict = errors.New("planning: room is already booked for these dates")

	// ErrMalformedDate возвращается, когда дату бронирования не удалось разобрать
	ErrMalformedDate = errors.New("planning: malformed booking date")
)

// InvalidRangeError check-out is not strictly after check-in
type InvalidRangeError struct {
	CheckIn  types.Date
	CheckOut types.Date
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("%v: check-in=%s, check-out=%s", ErrInvalidRange, e.CheckIn, e.CheckOut)
}

func (e *InvalidRangeError) Is(target error) bool {
	return target == ErrInvalidRange
}

// ConflictError an active booking of the same room overlaps the requested stay.
// BookingID identifies the blocking reservation.
type ConflictError struct {
	RoomID    int64
	BookingID string
	CheckIn   types.Date
	CheckOut  types.Date
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%v: room=%d, booking=%s (%s - %s)",
		ErrConflict, e.RoomID, e.BookingID, e.CheckIn, e.CheckOut)
}

func (e *ConflictError) Is(target error) bool {
	return target == ErrConflict
}

// MalformedDateError a booking date failed to parse; the booking is left out of computations
type MalformedDateError struct {
	BookingID string
	Field     string
	Value     string
	Err       error
}

func (e *MalformedDateError) Error() string {
	return fmt.Sprintf("%v: booking=%s, %s=%q: %v", ErrMalformedDate, e.BookingID, e.Field, e.Value, e.Err)
}

func (e *MalformedDateError) Is(target error) bool {
	return target == ErrMalformedDate
}

func (e *MalformedDateError) Unwrap() error {
	return e.Err
}
