package planning

import (
	"sort"

	"github.com/m04kA/SMC-StayPlanner/internal/domain"
	"github.com/m04kA/SMC-StayPlanner/pkg/types"
)

// IntervalIndex occupancy of rooms built from a booking list.
// Each room keeps its active bookings sorted by check-in, then by ID.
// The index is immutable once built; rebuild it whenever the input changes.
type IntervalIndex struct {
	rooms map[int64][]domain.Booking
}

// BuildIndex groups bookings by room.
// Cancelled bookings, bookings without a room and empty stays (checkIn >= checkOut)
// occupy nothing and are left out.
func BuildIndex(bookings []domain.Booking) *IntervalIndex {
	idx := &IntervalIndex{rooms: make(map[int64][]domain.Booking)}

	for _, b := range bookings {
		if !b.IsActive() || !b.HasRoom() || !b.HasValidRange() {
			continue
		}
		roomID := *b.RoomID
		idx.rooms[roomID] = append(idx.rooms[roomID], b)
	}

	for _, list := range idx.rooms {
		sortBookings(list)
	}

	return idx
}

// Bookings returns a copy of the room's bookings in index order
func (idx *IntervalIndex) Bookings(roomID int64) []domain.Booking {
	list := idx.rooms[roomID]
	out := make([]domain.Booking, len(list))
	copy(out, list)
	return out
}

// RoomIDs returns the rooms that have at least one booking, ascending
func (idx *IntervalIndex) RoomIDs() []int64 {
	ids := make([]int64, 0, len(idx.rooms))
	for id := range idx.rooms {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// OccupiedSlots returns the window slots occupied in the room.
// Bookings outside the window contribute nothing, partial ones are clipped.
func (idx *IntervalIndex) OccupiedSlots(roomID int64, window domain.ViewWindow) map[int]struct{} {
	occupied := make(map[int]struct{})

	for i := range idx.rooms[roomID] {
		first, last, ok := SlotRange(&idx.rooms[roomID][i], window)
		if !ok {
			continue
		}
		for slot := first; slot <= last; slot++ {
			occupied[slot] = struct{}{}
		}
	}

	return occupied
}

// IsOccupied returns true if the given half of the date is occupied in the room
func (idx *IntervalIndex) IsOccupied(roomID int64, date types.Date, half domain.HalfDay) bool {
	window := domain.ViewWindow{Start: date, DayCount: 1}
	_, ok := idx.OccupiedSlots(roomID, window)[int(half)]
	return ok
}

// HasOverlap reports whether an active booking of the room intersects [checkIn, checkOut).
// excludeBookingID (may be empty) is skipped, so an edit does not collide with itself.
// Back-to-back stays (checkOut == other check-in) are not an overlap.
func (idx *IntervalIndex) HasOverlap(roomID int64, checkIn, checkOut types.Date, excludeBookingID string) bool {
	_, found := idx.FindOverlap(roomID, checkIn, checkOut, excludeBookingID)
	return found
}

// FindOverlap returns the earliest booking that HasOverlap would report
func (idx *IntervalIndex) FindOverlap(roomID int64, checkIn, checkOut types.Date, excludeBookingID string) (domain.Booking, bool) {
	if !checkIn.Before(checkOut) {
		return domain.Booking{}, false
	}

	for _, b := range idx.rooms[roomID] {
		if excludeBookingID != "" && b.ID == excludeBookingID {
			continue
		}
		// Список отсортирован по заезду: дальше пересечений быть не может
		if !b.CheckIn.Before(checkOut) {
			break
		}
		if b.Overlaps(checkIn, checkOut) {
			return b, true
		}
	}

	return domain.Booking{}, false
}

// Conflicts returns every pair of overlapping bookings of the room
func (idx *IntervalIndex) Conflicts(roomID int64) []domain.Conflict {
	list := idx.rooms[roomID]
	var conflicts []domain.Conflict

	for i := range list {
		for j := i + 1; j < len(list); j++ {
			if !list[j].CheckIn.Before(list[i].CheckOut) {
				break
			}
			conflicts = append(conflicts, domain.Conflict{
				RoomID:         roomID,
				BookingID:      list[i].ID,
				OtherBookingID: list[j].ID,
			})
		}
	}

	return conflicts
}

// SlotRange returns the first and last window slot occupied by the booking.
//
// The stay occupies the afternoon of the check-in day through the morning of the
// check-out day: the outgoing guest leaves before noon, the next one arrives after.
// ok is false when the stay is empty or lies outside the window.
func SlotRange(b *domain.Booking, window domain.ViewWindow) (first, last int, ok bool) {
	total := window.TotalSlots()
	if total == 0 || !b.HasValidRange() {
		return 0, 0, false
	}

	first = window.SlotIndex(b.CheckIn, domain.Afternoon)
	last = window.SlotIndex(b.CheckOut, domain.Morning)

	if last < 0 || first > total-1 {
		return 0, 0, false
	}

	return max(first, 0), min(last, total-1), true
}

func sortBookings(list []domain.Booking) {
	sort.SliceStable(list, func(i, j int) bool {
		if c := list[i].CheckIn.Compare(list[j].CheckIn); c != 0 {
			return c < 0
		}
		return list[i].ID < list[j].ID
	})
}
