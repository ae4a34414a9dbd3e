package domain

import (
	"sort"
	"time"
)

// Room represents a bookable room. Number is the room identifier bookings refer to.
type Room struct {
	Number    int64
	Title     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SortRooms orders rooms by number ascending, in place
func SortRooms(rooms []Room) {
	sort.SliceStable(rooms, func(i, j int) bool {
		return rooms[i].Number < rooms[j].Number
	})
}
