package planning

import (
	"github.com/m04kA/SMC-StayPlanner/internal/domain"
	"github.com/m04kA/SMC-StayPlanner/pkg/types"
)

const (
	fieldCheckIn  = "checkIn"
	fieldCheckOut = "checkOut"
)

// Normalize parses raw booking dates.
// A record with an unparseable date is reported as *MalformedDateError and left out,
// so one corrupt record does not break the rest of the view.
func Normalize(raw []domain.RawBooking) ([]domain.Booking, []error) {
	bookings := make([]domain.Booking, 0, len(raw))
	var diagnostics []error

	for _, r := range raw {
		checkIn, err := types.ParseDate(r.CheckIn)
		if err != nil {
			diagnostics = append(diagnostics, &MalformedDateError{
				BookingID: r.ID, Field: fieldCheckIn, Value: r.CheckIn, Err: err,
			})
			continue
		}

		checkOut, err := types.ParseDate(r.CheckOut)
		if err != nil {
			diagnostics = append(diagnostics, &MalformedDateError{
				BookingID: r.ID, Field: fieldCheckOut, Value: r.CheckOut, Err: err,
			})
			continue
		}

		bookings = append(bookings, domain.Booking{
			ID:        r.ID,
			RoomID:    r.RoomID,
			CheckIn:   checkIn,
			CheckOut:  checkOut,
			Cancelled: r.Cancelled,
			Payload:   r.Payload,
		})
	}

	return bookings, diagnostics
}
