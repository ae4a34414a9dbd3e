package get_room_calendar

import "errors"

var (
	// ErrRoomNotFound возвращается, когда номер не найден
	ErrRoomNotFound = errors.New("get_room_calendar: room not found")

	// ErrInvalidWindow возвращается при некорректном окне календаря
	ErrInvalidWindow = errors.New("get_room_calendar: invalid calendar window")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_room_calendar: internal error")
)
