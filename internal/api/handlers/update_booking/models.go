package update_booking

import (
	updateBooking "github.com/m04kA/SMC-StayPlanner/internal/usecase/update_booking"
	"github.com/m04kA/SMC-StayPlanner/pkg/types"
)

// UpdateBookingRequest HTTP request model
type UpdateBookingRequest struct {
	RoomID   int64  `json:"roomId"`
	CheckIn  string `json:"checkIn"`
	CheckOut string `json:"checkOut"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UpdateBookingRequest) ToUseCaseRequest(bookingID string) (*updateBooking.Request, error) {
	checkIn, err := types.ParseDate(r.CheckIn)
	if err != nil {
		return nil, err
	}

	checkOut, err := types.ParseDate(r.CheckOut)
	if err != nil {
		return nil, err
	}

	return &updateBooking.Request{
		BookingID: bookingID,
		RoomID:    r.RoomID,
		CheckIn:   checkIn,
		CheckOut:  checkOut,
	}, nil
}
