package domain

// CellType type of a rendered cell
type CellType string

const (
	CellBooking CellType = "booking"
	CellEmpty   CellType = "empty"
)

// Cell a run of slots in a room row. Empty cells always span exactly one slot.
type Cell struct {
	Type      CellType
	Start     int // Первый слот ячейки
	Span      int // Количество слотов
	BookingID string
	Booking   *Booking // nil для пустых ячеек
}

// IsBooking returns true if the cell renders a booking
func (c Cell) IsBooking() bool {
	return c.Type == CellBooking
}

// End returns the last slot covered by the cell
func (c Cell) End() int {
	return c.Start + c.Span - 1
}

// Row cells of one room over the window
type Row struct {
	Room  Room
	Cells []Cell
}

// Conflict two active bookings of one room whose stays overlap.
// Such data can only come from outside the validated booking flow.
type Conflict struct {
	RoomID         int64
	BookingID      string
	OtherBookingID string
}

// Grid render-ready planning view
type Grid struct {
	Window      ViewWindow
	Months      []MonthGroup
	Rows        []Row
	Conflicts   []Conflict
	Diagnostics []error // Ошибки нормализации входных данных (битые записи исключены из сетки)
}
