package get_planning

import (
	"github.com/m04kA/SMC-StayPlanner/internal/domain"
	"github.com/m04kA/SMC-StayPlanner/internal/service/bookings/models"
)

// PlanningResponse HTTP response model
type PlanningResponse struct {
	Start       string          `json:"start"`
	Days        []string        `json:"days"`
	TotalSlots  int             `json:"totalSlots"`
	Months      []MonthResponse `json:"months"`
	Rows        []RowResponse   `json:"rows"`
	Conflicts   []ConflictDTO   `json:"conflicts"`
	Diagnostics []string        `json:"diagnostics"`
}

// MonthResponse заголовок группы дней одного месяца
type MonthResponse struct {
	Label    string `json:"label"`
	Year     int    `json:"year"`
	Month    int    `json:"month"`
	DayCount int    `json:"dayCount"`
}

// RowResponse строка сетки одного номера
type RowResponse struct {
	Room  models.RoomResponse `json:"room"`
	Cells []CellResponse      `json:"cells"`
}

// CellResponse ячейка строки: бронирование или пустой полудневный слот
type CellResponse struct {
	Type      string  `json:"type"`
	Start     int     `json:"start"`
	Span      int     `json:"span"`
	BookingID string  `json:"bookingId,omitempty"`
	GuestName string  `json:"guestName,omitempty"`
	CheckIn   string  `json:"checkIn,omitempty"`
	CheckOut  string  `json:"checkOut,omitempty"`
	Notes     *string `json:"notes,omitempty"`
}

// ConflictDTO пересечение двух активных бронирований одного номера
type ConflictDTO struct {
	RoomID         int64  `json:"roomId"`
	BookingID      string `json:"bookingId"`
	OtherBookingID string `json:"otherBookingId"`
}

// FromDomainGrid конвертирует сетку в HTTP response
func FromDomainGrid(grid *domain.Grid) *PlanningResponse {
	resp := &PlanningResponse{
		Start:       grid.Window.Start.String(),
		TotalSlots:  grid.Window.TotalSlots(),
		Days:        make([]string, 0, grid.Window.DayCount),
		Months:      make([]MonthResponse, 0, len(grid.Months)),
		Rows:        make([]RowResponse, 0, len(grid.Rows)),
		Conflicts:   make([]ConflictDTO, 0, len(grid.Conflicts)),
		Diagnostics: make([]string, 0, len(grid.Diagnostics)),
	}

	for _, day := range grid.Window.Days() {
		resp.Days = append(resp.Days, day.String())
	}

	for _, m := range grid.Months {
		resp.Months = append(resp.Months, MonthResponse{
			Label:    m.Label,
			Year:     m.Year,
			Month:    m.Month,
			DayCount: m.DayCount,
		})
	}

	for _, row := range grid.Rows {
		cells := make([]CellResponse, 0, len(row.Cells))
		for _, cell := range row.Cells {
			cells = append(cells, fromDomainCell(cell))
		}
		resp.Rows = append(resp.Rows, RowResponse{
			Room:  models.RoomResponse{Number: row.Room.Number, Title: row.Room.Title},
			Cells: cells,
		})
	}

	for _, c := range grid.Conflicts {
		resp.Conflicts = append(resp.Conflicts, ConflictDTO{
			RoomID:         c.RoomID,
			BookingID:      c.BookingID,
			OtherBookingID: c.OtherBookingID,
		})
	}

	for _, d := range grid.Diagnostics {
		resp.Diagnostics = append(resp.Diagnostics, d.Error())
	}

	return resp
}

func fromDomainCell(cell domain.Cell) CellResponse {
	resp := CellResponse{
		Type:      string(cell.Type),
		Start:     cell.Start,
		Span:      cell.Span,
		BookingID: cell.BookingID,
	}

	if cell.Booking != nil {
		resp.GuestName = cell.Booking.Payload.GuestName
		resp.Notes = cell.Booking.Payload.Notes
		resp.CheckIn = cell.Booking.CheckIn.String()
		resp.CheckOut = cell.Booking.CheckOut.String()
	}

	return resp
}
