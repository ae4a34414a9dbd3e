package update_booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("update_booking: booking not found")

	// ErrBookingCancelled возвращается при попытке перенести отменённое бронирование
	ErrBookingCancelled = errors.New("update_booking: booking is cancelled")

	// ErrRoomNotFound возвращается, когда номер не найден
	ErrRoomNotFound = errors.New("update_booking: room not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_booking: invalid input data")

	// ErrStayTooLong возвращается, когда срок проживания превышает допустимый
	ErrStayTooLong = errors.New("update_booking: stay is too long")

	// ErrConcurrentBooking возвращается, когда номер одновременно бронируют несколько запросов
	ErrConcurrentBooking = errors.New("update_booking: room is being booked concurrently, retry")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_booking: internal error")
)

const (
	rejectInvalidRange = "invalid_range"
	rejectConflict     = "conflict"
)
