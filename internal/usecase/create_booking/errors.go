package create_booking

import "errors"

var (
	// ErrRoomNotFound возвращается, когда номер не найден
	ErrRoomNotFound = errors.New("create_booking: room not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrStayTooLong возвращается, когда проживание длиннее допустимого
	ErrStayTooLong = errors.New("create_booking: stay is too long")

	// ErrConcurrentBooking возвращается, когда номер одновременно бронируют несколько запросов
	ErrConcurrentBooking = errors.New("create_booking: room is being booked concurrently, retry")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)

// Причины отклонения размещения для метрик
const (
	rejectInvalidRange = "invalid_range"
	rejectConflict     = "conflict"
)
