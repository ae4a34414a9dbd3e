package get_room_calendar

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-StayPlanner/internal/api/handlers"
	getRoomCalendar "github.com/m04kA/SMC-StayPlanner/internal/usecase/get_room_calendar"
)

const (
	msgInvalidRoomID = "некорректный номер комнаты"
	msgInvalidStart  = "некорректная дата начала, ожидается YYYY-MM-DD"
	msgInvalidDays   = "некорректное количество дней"
	msgInvalidWindow = "некорректное окно календаря"
	msgRoomNotFound  = "номер не найден"
)

type Handler struct {
	useCase GetRoomCalendarUseCase
	logger  Logger
}

func NewHandler(useCase GetRoomCalendarUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/rooms/{roomId}/calendar?start=2025-09-01&days=30
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	roomID, err := strconv.ParseInt(mux.Vars(r)["roomId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /rooms/{id}/calendar - Invalid room ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	start, err := handlers.QueryDate(r, "start")
	if err != nil {
		h.logger.Warn("GET /rooms/{id}/calendar - Invalid start: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStart)
		return
	}

	days, err := handlers.QueryInt(r, "days", 0)
	if err != nil {
		h.logger.Warn("GET /rooms/{id}/calendar - Invalid days: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDays)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getRoomCalendar.Request{
		RoomID: roomID,
		Start:  start,
		Days:   days,
	})
	if err != nil {
		switch {
		case errors.Is(err, getRoomCalendar.ErrRoomNotFound):
			h.logger.Warn("GET /rooms/{id}/calendar - Room not found: room_id=%d", roomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, getRoomCalendar.ErrInvalidWindow):
			h.logger.Warn("GET /rooms/{id}/calendar - Invalid window: %v", err)
			handlers.RespondBadRequest(w, msgInvalidWindow)

		default:
			h.logger.Error("GET /rooms/{id}/calendar - Failed to build calendar: room_id=%d, error=%v", roomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /rooms/{id}/calendar - Calendar built: room_id=%d, start=%s", roomID, start)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
