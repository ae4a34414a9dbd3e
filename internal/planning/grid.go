package planning

import (
	"github.com/m04kA/SMC-StayPlanner/internal/domain"
)

// BuildRow renders the room's bookings over the window.
// The cells cover exactly window.TotalSlots() slots with no gaps and no overlaps.
func BuildRow(roomID int64, bookings []domain.Booking, window domain.ViewWindow) []domain.Cell {
	return BuildIndex(bookings).Row(roomID, window)
}

// Row renders one room of the index over the window.
//
// The scan walks the slots from 0; at each slot the first booking in index order
// (earliest check-in, then ID) covering it wins and emits one cell up to the booking's
// last slot in the window. Free slots emit single-slot empty cells. Overlapping upstream
// data is rendered partially, never rejected here.
func (idx *IntervalIndex) Row(roomID int64, window domain.ViewWindow) []domain.Cell {
	total := window.TotalSlots()
	list := idx.rooms[roomID]

	type span struct {
		first, last int
		booking     *domain.Booking
	}
	spans := make([]span, 0, len(list))
	for i := range list {
		if first, last, ok := SlotRange(&list[i], window); ok {
			spans = append(spans, span{first: first, last: last, booking: &list[i]})
		}
	}

	cells := make([]domain.Cell, 0, total)
	for cursor := 0; cursor < total; {
		var winner *span
		for i := range spans {
			if spans[i].first <= cursor && cursor <= spans[i].last {
				winner = &spans[i]
				break
			}
		}

		if winner == nil {
			cells = append(cells, domain.Cell{Type: domain.CellEmpty, Start: cursor, Span: 1})
			cursor++
			continue
		}

		length := winner.last - cursor + 1
		cells = append(cells, domain.Cell{
			Type:      domain.CellBooking,
			Start:     cursor,
			Span:      length,
			BookingID: winner.booking.ID,
			Booking:   winner.booking,
		})
		cursor += length
	}

	return cells
}

// BuildGrid renders every room over the window.
// Raw bookings are normalized first; malformed ones end up in Grid.Diagnostics
// and are left out of the rows. Rows are ordered by room number.
func BuildGrid(rooms []domain.Room, raw []domain.RawBooking, window domain.ViewWindow) domain.Grid {
	bookings, diagnostics := Normalize(raw)
	idx := BuildIndex(bookings)

	ordered := make([]domain.Room, len(rooms))
	copy(ordered, rooms)
	domain.SortRooms(ordered)

	grid := domain.Grid{
		Window:      window,
		Months:      MonthHeaderGroups(window),
		Rows:        make([]domain.Row, 0, len(ordered)),
		Diagnostics: diagnostics,
	}

	for _, room := range ordered {
		grid.Rows = append(grid.Rows, domain.Row{
			Room:  room,
			Cells: idx.Row(room.Number, window),
		})
		grid.Conflicts = append(grid.Conflicts, idx.Conflicts(room.Number)...)
	}

	return grid
}

// MonthHeaderGroups groups consecutive window days sharing month and year
func MonthHeaderGroups(window domain.ViewWindow) []domain.MonthGroup {
	groups := make([]domain.MonthGroup, 0)

	for _, day := range window.Days() {
		if n := len(groups); n > 0 && groups[n-1].Year == day.Year() && groups[n-1].Month == int(day.Month()) {
			groups[n-1].DayCount++
			continue
		}
		groups = append(groups, domain.MonthGroup{
			Label:    day.Time().Format(domain.MonthLabelFormat),
			Year:     day.Year(),
			Month:    int(day.Month()),
			DayCount: 1,
		})
	}

	return groups
}
