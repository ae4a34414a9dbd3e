package get_room_calendar

import (
	"github.com/m04kA/SMC-StayPlanner/internal/service/bookings/models"
	getRoomCalendar "github.com/m04kA/SMC-StayPlanner/internal/usecase/get_room_calendar"
)

// CalendarResponse HTTP response model.
// Публичный ответ: данные гостя не раскрываются, только занятость.
type CalendarResponse struct {
	Room       models.RoomResponse `json:"room"`
	Start      string              `json:"start"`
	Days       []string            `json:"days"`
	TotalSlots int                 `json:"totalSlots"`
	Months     []MonthResponse     `json:"months"`
	Cells      []CellResponse      `json:"cells"`
}

// MonthResponse заголовок группы дней одного месяца
type MonthResponse struct {
	Label    string `json:"label"`
	DayCount int    `json:"dayCount"`
}

// CellResponse занятый отрезок или свободный полудневный слот
type CellResponse struct {
	Type  string `json:"type"`
	Start int    `json:"start"`
	Span  int    `json:"span"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getRoomCalendar.Response) *CalendarResponse {
	result := &CalendarResponse{
		Room:       models.RoomResponse{Number: resp.Room.Number, Title: resp.Room.Title},
		Start:      resp.Window.Start.String(),
		TotalSlots: resp.Window.TotalSlots(),
		Days:       make([]string, 0, resp.Window.DayCount),
		Months:     make([]MonthResponse, 0, len(resp.Months)),
		Cells:      make([]CellResponse, 0, len(resp.Cells)),
	}

	for _, day := range resp.Window.Days() {
		result.Days = append(result.Days, day.String())
	}

	for _, m := range resp.Months {
		result.Months = append(result.Months, MonthResponse{Label: m.Label, DayCount: m.DayCount})
	}

	for _, cell := range resp.Cells {
		result.Cells = append(result.Cells, CellResponse{
			Type:  string(cell.Type),
			Start: cell.Start,
			Span:  cell.Span,
		})
	}

	return result
}
