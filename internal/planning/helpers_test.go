package planning

import (
	"github.com/m04kA/SMC-StayPlanner/internal/domain"
	"github.com/m04kA/SMC-StayPlanner/pkg/ptr"
	"github.com/m04kA/SMC-StayPlanner/pkg/types"
)

func date(s string) types.Date {
	return types.MustParseDate(s)
}

func booking(id string, room int64, checkIn, checkOut string) domain.Booking {
	return domain.Booking{
		ID:       id,
		RoomID:   ptr.Ptr(room),
		CheckIn:  date(checkIn),
		CheckOut: date(checkOut),
	}
}

func window(start string, days int) domain.ViewWindow {
	return domain.ViewWindow{Start: date(start), DayCount: days}
}

func rooms(numbers ...int64) []domain.Room {
	out := make([]domain.Room, 0, len(numbers))
	for _, n := range numbers {
		out = append(out, domain.Room{Number: n})
	}
	return out
}

// coverage раскладывает строку ячеек в посимвольную карту слотов ("-" пусто, иначе ID)
func coverage(cells []domain.Cell) []string {
	var out []string
	for _, c := range cells {
		for i := 0; i < c.Span; i++ {
			if c.IsBooking() {
				out = append(out, c.BookingID)
			} else {
				out = append(out, "-")
			}
		}
	}
	return out
}
