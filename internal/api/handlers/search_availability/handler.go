package search_availability

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-StayPlanner/internal/api/handlers"
	"github.com/m04kA/SMC-StayPlanner/internal/planning"
	searchAvailability "github.com/m04kA/SMC-StayPlanner/internal/usecase/search_availability"
)

const (
	msgInvalidDate  = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidRange = "дата выезда должна быть позже даты заезда"
	msgRangeTooLong = "слишком длинный период поиска"
)

type Handler struct {
	useCase SearchAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase SearchAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability?checkIn=2025-09-02&checkOut=2025-09-05
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	checkIn, err := handlers.QueryDate(r, "checkIn")
	if err != nil {
		h.logger.Warn("GET /availability - Invalid checkIn: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	checkOut, err := handlers.QueryDate(r, "checkOut")
	if err != nil {
		h.logger.Warn("GET /availability - Invalid checkOut: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &searchAvailability.Request{
		CheckIn:  checkIn,
		CheckOut: checkOut,
	})
	if err != nil {
		switch {
		case errors.Is(err, planning.ErrInvalidRange), errors.Is(err, searchAvailability.ErrInvalidInput):
			h.logger.Warn("GET /availability - Invalid range: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, searchAvailability.ErrRangeTooLong):
			h.logger.Warn("GET /availability - Range too long: %v", err)
			handlers.RespondBadRequest(w, msgRangeTooLong)

		default:
			h.logger.Error("GET /availability - Failed to search rooms: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /availability - Free rooms found: checkIn=%s, checkOut=%s, count=%d",
		checkIn, checkOut, len(result.Rooms))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
