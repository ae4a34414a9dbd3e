package create_booking

import (
	"github.com/m04kA/SMC-StayPlanner/internal/service/bookings/models"
	createBooking "github.com/m04kA/SMC-StayPlanner/internal/usecase/create_booking"
	"github.com/m04kA/SMC-StayPlanner/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	RoomID       int64   `json:"roomId"`
	CheckIn      string  `json:"checkIn"`  // "2025-09-02"
	CheckOut     string  `json:"checkOut"` // "2025-09-05"
	GuestName    string  `json:"guestName"`
	GuestContact *string `json:"guestContact,omitempty"`
	Notes        *string `json:"notes,omitempty"`
	ExternalRef  *string `json:"externalRef,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(userID int64) (*createBooking.Request, error) {
	checkIn, err := types.ParseDate(r.CheckIn)
	if err != nil {
		return nil, err
	}

	checkOut, err := types.ParseDate(r.CheckOut)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		RoomID:       r.RoomID,
		CheckIn:      checkIn,
		CheckOut:     checkOut,
		GuestName:    r.GuestName,
		GuestContact: r.GuestContact,
		Notes:        r.Notes,
		ExternalRef:  r.ExternalRef,
		CreatedBy:    userID,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *models.BookingResponse {
	return models.FromDomainBooking(&resp.Booking)
}
