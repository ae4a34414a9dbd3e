package search_availability

import (
	"github.com/m04kA/SMC-StayPlanner/internal/service/bookings/models"
	searchAvailability "github.com/m04kA/SMC-StayPlanner/internal/usecase/search_availability"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	CheckIn  string                `json:"checkIn"`
	CheckOut string                `json:"checkOut"`
	Nights   int                   `json:"nights"`
	Rooms    []models.RoomResponse `json:"rooms"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *searchAvailability.Response) *AvailabilityResponse {
	return &AvailabilityResponse{
		CheckIn:  resp.CheckIn.String(),
		CheckOut: resp.CheckOut.String(),
		Nights:   resp.Nights,
		Rooms:    models.FromDomainRooms(resp.Rooms).Rooms,
	}
}
