package planning

import (
	"github.com/m04kA/SMC-StayPlanner/internal/domain"
	"github.com/m04kA/SMC-StayPlanner/pkg/types"
)

// ValidatePlacement checks that a stay can be placed in the room.
// Returns *InvalidRangeError if checkOut is not after checkIn and *ConflictError
// naming the blocking booking if the room is taken. Must run before a booking
// is created or edited.
func ValidatePlacement(
	roomID int64,
	checkIn, checkOut types.Date,
	bookings []domain.Booking,
	excludeBookingID string,
) error {
	if !checkIn.Before(checkOut) {
		return &InvalidRangeError{CheckIn: checkIn, CheckOut: checkOut}
	}

	blocker, found := BuildIndex(bookings).FindOverlap(roomID, checkIn, checkOut, excludeBookingID)
	if found {
		return &ConflictError{
			RoomID:    roomID,
			BookingID: blocker.ID,
			CheckIn:   blocker.CheckIn,
			CheckOut:  blocker.CheckOut,
		}
	}

	return nil
}

// FreeRoomsForRange returns the rooms with no active booking overlapping
// [checkIn, checkOut), ordered by number. An empty or inverted range yields no rooms.
func FreeRoomsForRange(rooms []domain.Room, bookings []domain.Booking, checkIn, checkOut types.Date) []domain.Room {
	free := make([]domain.Room, 0, len(rooms))
	if !checkIn.Before(checkOut) {
		return free
	}

	idx := BuildIndex(bookings)
	for _, room := range rooms {
		if !idx.HasOverlap(room.Number, checkIn, checkOut, "") {
			free = append(free, room)
		}
	}

	domain.SortRooms(free)
	return free
}
