package get_room_calendar

import (
	"github.com/m04kA/SMC-StayPlanner/internal/domain"
	"github.com/m04kA/SMC-StayPlanner/pkg/types"
)

// Request модель запроса календаря занятости номера
type Request struct {
	RoomID int64
	Start  types.Date
	Days   int // 0 - значение по умолчанию
}

// Response календарь одного номера: строка ячеек и заголовки месяцев
type Response struct {
	Room   domain.Room
	Window domain.ViewWindow
	Months []domain.MonthGroup
	Cells  []domain.Cell
}
