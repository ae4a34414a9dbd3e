package domain

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-StayPlanner/pkg/types"
)

// ErrInvalidWindow возвращается при некорректном окне просмотра
var ErrInvalidWindow = errors.New("domain: invalid view window")

// HalfDay half of a calendar day in the planning timeline
type HalfDay int

const (
	Morning HalfDay = iota
	Afternoon
)

func (h HalfDay) String() string {
	if h == Morning {
		return "morning"
	}
	return "afternoon"
}

// ViewWindow a contiguous range of calendar days being displayed or queried.
// Slot 2k is the morning of day k, slot 2k+1 is its afternoon.
type ViewWindow struct {
	Start    types.Date
	DayCount int
}

// NewViewWindow создает окно и проверяет его параметры
func NewViewWindow(start types.Date, dayCount int) (ViewWindow, error) {
	if start.IsZero() {
		return ViewWindow{}, fmt.Errorf("%w: start date is required", ErrInvalidWindow)
	}
	if dayCount <= 0 {
		return ViewWindow{}, fmt.Errorf("%w: day count must be positive, got %d", ErrInvalidWindow, dayCount)
	}
	return ViewWindow{Start: start, DayCount: dayCount}, nil
}

// Days returns the consecutive calendar dates of the window
func (w ViewWindow) Days() []types.Date {
	if w.DayCount <= 0 {
		return []types.Date{}
	}
	days := make([]types.Date, w.DayCount)
	for i := range days {
		days[i] = w.Start.AddDays(i)
	}
	return days
}

// End returns the first date after the window (exclusive bound)
func (w ViewWindow) End() types.Date {
	return w.Start.AddDays(w.DayCount)
}

// TotalSlots returns the number of half-day slots in the window
func (w ViewWindow) TotalSlots() int {
	if w.DayCount <= 0 {
		return 0
	}
	return w.DayCount * SlotsPerDay
}

// SlotIndex returns the window slot of the given date half, unclipped
func (w ViewWindow) SlotIndex(date types.Date, half HalfDay) int {
	return w.Start.DaysUntil(date)*SlotsPerDay + int(half)
}

// SlotDate returns the calendar date and the half of the day for a slot index
func (w ViewWindow) SlotDate(slot int) (types.Date, HalfDay) {
	return w.Start.AddDays(slot / SlotsPerDay), HalfDay(slot % SlotsPerDay)
}

// MonthGroup consecutive window days sharing the same month and year
type MonthGroup struct {
	Label    string
	Year     int
	Month    int
	DayCount int
}

// OccupancyFilter returns the booking filter for everything rendered in the window.
// A stay checking out on Start still holds the morning of Start, so the lower bound
// is the day before Start.
func (w ViewWindow) OccupancyFilter(roomID *int64) BookingsFilter {
	return BookingsFilter{
		RoomID: roomID,
		From:   w.Start.AddDays(-1),
		To:     w.End(),
	}
}
