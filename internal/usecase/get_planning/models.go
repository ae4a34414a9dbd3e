package get_planning

import (
	"github.com/m04kA/SMC-StayPlanner/internal/domain"
	"github.com/m04kA/SMC-StayPlanner/pkg/types"
)

// Request модель запроса сетки планирования
type Request struct {
	Start types.Date // Первый день окна
	Days  int        // Количество дней, 0 - значение по умолчанию
}

// Response модель ответа с сеткой
type Response struct {
	Grid domain.Grid
}
