package search_availability

import "errors"

var (
	// ErrInvalidInput возвращается, когда даты не указаны
	ErrInvalidInput = errors.New("search_availability: invalid input data")

	// ErrRangeTooLong возвращается, когда запрошено слишком много ночей
	ErrRangeTooLong = errors.New("search_availability: stay is too long")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("search_availability: internal error")
)
