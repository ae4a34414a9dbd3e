package models

import (
	"time"

	"github.com/m04kA/SMC-StayPlanner/internal/domain"
)

// Request модели

// CancelBookingRequest запрос на отмену бронирования
type CancelBookingRequest struct {
	CancellationReason *string `json:"cancellationReason,omitempty"`
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID        string `json:"id"`
	RoomID    *int64 `json:"roomId"`
	CheckIn   string `json:"checkIn"`  // "2025-09-02"
	CheckOut  string `json:"checkOut"` // "2025-09-05"
	Nights    int    `json:"nights"`
	Cancelled bool   `json:"cancelled"`

	GuestName    string  `json:"guestName"`
	GuestContact *string `json:"guestContact,omitempty"`
	Notes        *string `json:"notes,omitempty"`
	ExternalRef  *string `json:"externalRef,omitempty"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"` // ISO 8601 format

	CreatedBy *int64    `json:"createdBy,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// RoomResponse ответ с данными номера
type RoomResponse struct {
	Number int64  `json:"number"`
	Title  string `json:"title"`
}

// RoomListResponse ответ со списком номеров
type RoomListResponse struct {
	Rooms []RoomResponse `json:"rooms"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:                 b.ID,
		RoomID:             b.RoomID,
		CheckIn:            b.CheckIn.String(),
		CheckOut:           b.CheckOut.String(),
		Cancelled:          b.Cancelled,
		GuestName:          b.Payload.GuestName,
		GuestContact:       b.Payload.GuestContact,
		Notes:              b.Payload.Notes,
		ExternalRef:        b.Payload.ExternalRef,
		CancellationReason: b.CancellationReason,
		CreatedBy:          b.CreatedBy,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}

	if b.HasValidRange() {
		resp.Nights = b.Nights()
	}

	// Конвертируем CancelledAt в строку ISO 8601
	if b.CancelledAt != nil {
		cancelledStr := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainRooms конвертирует список номеров в DTO
func FromDomainRooms(rooms []domain.Room) *RoomListResponse {
	resp := &RoomListResponse{
		Rooms: make([]RoomResponse, 0, len(rooms)),
	}

	for _, room := range rooms {
		resp.Rooms = append(resp.Rooms, RoomResponse{
			Number: room.Number,
			Title:  room.Title,
		})
	}

	return resp
}
