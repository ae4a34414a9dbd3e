package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-StayPlanner/internal/api/handlers"
	"github.com/m04kA/SMC-StayPlanner/internal/api/middleware"
	"github.com/m04kA/SMC-StayPlanner/internal/planning"
	createBooking "github.com/m04kA/SMC-StayPlanner/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidInput       = "некорректные данные бронирования"
	msgInvalidRange       = "дата выезда должна быть позже даты заезда"
	msgStayTooLong        = "слишком длинное проживание"
	msgRoomNotFound       = "номер не найден"
	msgRoomTaken          = "номер уже забронирован на эти даты"
	msgConcurrentBooking  = "номер бронируется параллельно, повторите запрос"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом дат)
	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse dates: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var conflict *planning.ConflictError
		switch {
		case errors.As(err, &conflict):
			h.logger.Warn("POST /bookings - Room taken: room_id=%d, blocking_booking=%s", req.RoomID, conflict.BookingID)
			handlers.RespondConflict(w, msgRoomTaken, conflict.BookingID)

		case errors.Is(err, planning.ErrInvalidRange):
			h.logger.Warn("POST /bookings - Invalid range: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createBooking.ErrStayTooLong):
			h.logger.Warn("POST /bookings - Stay too long: %v", err)
			handlers.RespondBadRequest(w, msgStayTooLong)

		case errors.Is(err, createBooking.ErrRoomNotFound):
			h.logger.Warn("POST /bookings - Room not found: room_id=%d", req.RoomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, createBooking.ErrConcurrentBooking):
			h.logger.Warn("POST /bookings - Concurrent booking: room_id=%d", req.RoomID)
			handlers.RespondError(w, http.StatusConflict, msgConcurrentBooking)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: room_id=%d, error=%v", req.RoomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%s, room_id=%d, user_id=%d",
		result.Booking.ID, req.RoomID, userID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
