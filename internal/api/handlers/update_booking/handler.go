package update_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-StayPlanner/internal/api/handlers"
	"github.com/m04kA/SMC-StayPlanner/internal/planning"
	"github.com/m04kA/SMC-StayPlanner/internal/service/bookings/models"
	updateBooking "github.com/m04kA/SMC-StayPlanner/internal/usecase/update_booking"
)

const (
	msgInvalidBookingID   = "некорректный ID бронирования"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidInput       = "некорректные данные бронирования"
	msgInvalidRange       = "дата выезда должна быть позже даты заезда"
	msgStayTooLong        = "слишком длинное проживание"
	msgNotFound           = "бронирование не найдено"
	msgRoomNotFound       = "номер не найден"
	msgCancelled          = "бронирование отменено и не может быть изменено"
	msgRoomTaken          = "номер уже забронирован на эти даты"
	msgConcurrentBooking  = "номер бронируется параллельно, повторите запрос"
)

type Handler struct {
	useCase UpdateBookingUseCase
	logger  Logger
}

func NewHandler(useCase UpdateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID := mux.Vars(r)["bookingId"]
	if bookingID == "" {
		h.logger.Warn("PUT /bookings/{id} - Empty booking ID")
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req UpdateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /bookings/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(bookingID)
	if err != nil {
		h.logger.Warn("PUT /bookings/{id} - Failed to parse dates: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var conflict *planning.ConflictError
		switch {
		case errors.As(err, &conflict):
			h.logger.Warn("PUT /bookings/{id} - Room taken: booking_id=%s, blocking_booking=%s", bookingID, conflict.BookingID)
			handlers.RespondConflict(w, msgRoomTaken, conflict.BookingID)

		case errors.Is(err, planning.ErrInvalidRange):
			h.logger.Warn("PUT /bookings/{id} - Invalid range: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, updateBooking.ErrInvalidInput):
			h.logger.Warn("PUT /bookings/{id} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, updateBooking.ErrStayTooLong):
			h.logger.Warn("PUT /bookings/{id} - Stay too long: %v", err)
			handlers.RespondBadRequest(w, msgStayTooLong)

		case errors.Is(err, updateBooking.ErrBookingNotFound):
			h.logger.Warn("PUT /bookings/{id} - Booking not found: booking_id=%s", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, updateBooking.ErrRoomNotFound):
			h.logger.Warn("PUT /bookings/{id} - Room not found: room_id=%d", req.RoomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, updateBooking.ErrBookingCancelled):
			h.logger.Warn("PUT /bookings/{id} - Booking cancelled: booking_id=%s", bookingID)
			handlers.RespondError(w, http.StatusConflict, msgCancelled)

		case errors.Is(err, updateBooking.ErrConcurrentBooking):
			h.logger.Warn("PUT /bookings/{id} - Concurrent booking: booking_id=%s", bookingID)
			handlers.RespondError(w, http.StatusConflict, msgConcurrentBooking)

		default:
			h.logger.Error("PUT /bookings/{id} - Failed to update booking: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /bookings/{id} - Booking updated successfully: booking_id=%s, room_id=%d", bookingID, req.RoomID)
	handlers.RespondJSON(w, http.StatusOK, models.FromDomainBooking(&result.Booking))
}
