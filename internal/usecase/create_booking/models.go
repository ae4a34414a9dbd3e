package create_booking

import (
	"github.com/m04kA/SMC-StayPlanner/internal/domain"
	"github.com/m04kA/SMC-StayPlanner/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	RoomID       int64      // Номер комнаты
	CheckIn      types.Date // Дата заезда
	CheckOut     types.Date // Дата выезда (не включительно)
	GuestName    string     // Имя гостя
	GuestContact *string    // Телефон или email (опционально)
	Notes        *string    // Заметки (опционально)
	ExternalRef  *string    // Номер брони во внешней системе (опционально)
	CreatedBy    int64      // ID администратора
}

// Response модель ответа с созданным бронированием
type Response struct {
	Booking domain.Booking
}
