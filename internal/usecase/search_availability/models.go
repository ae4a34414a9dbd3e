package search_availability

import (
	"github.com/m04kA/SMC-StayPlanner/internal/domain"
	"github.com/m04kA/SMC-StayPlanner/pkg/types"
)

// Request модель запроса поиска свободных номеров
type Request struct {
	CheckIn  types.Date
	CheckOut types.Date
}

// Response свободные номера, упорядоченные по номеру
type Response struct {
	CheckIn  types.Date
	CheckOut types.Date
	Nights   int
	Rooms    []domain.Room
}
