package get_planning

import "errors"

var (
	// ErrInvalidWindow возвращается при некорректном окне планирования
	ErrInvalidWindow = errors.New("get_planning: invalid planning window")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_planning: internal error")
)
