package update_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-StayPlanner/internal/domain"
	bookingRepo "github.com/m04kA/SMC-StayPlanner/internal/infra/storage/booking"
	roomRepo "github.com/m04kA/SMC-StayPlanner/internal/infra/storage/room"
	"github.com/m04kA/SMC-StayPlanner/internal/planning"
	"github.com/m04kA/SMC-StayPlanner/pkg/txmanager"
)

// UseCase use case переноса бронирования
type UseCase struct {
	bookingRepo BookingRepository
	roomRepo    RoomRepository
	txManager   TransactionManager
	metrics     Metrics
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	roomRepo RoomRepository,
	txManager TransactionManager,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		roomRepo:    roomRepo,
		txManager:   txManager,
		metrics:     metrics,
		logger:      logger,
	}
}

// Execute переносит бронирование.
// Само бронирование исключается из проверки пересечений, поэтому сдвиг дат
// внутри собственного интервала разрешён.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateBooking: booking=%s, room=%d, checkIn=%s, checkOut=%s",
		req.BookingID, req.RoomID, req.CheckIn, req.CheckOut)

	// 1. Валидация входных данных
	if req.BookingID == "" || req.RoomID <= 0 || req.CheckIn.IsZero() || req.CheckOut.IsZero() {
		return nil, fmt.Errorf("%w: bookingId, roomId, checkIn and checkOut are required", ErrInvalidInput)
	}

	if !req.CheckIn.Before(req.CheckOut) {
		uc.metrics.ObservePlacementRejection(rejectInvalidRange)
		uc.logger.Warn("UpdateBooking: invalid range %s - %s", req.CheckIn, req.CheckOut)
		return nil, &planning.InvalidRangeError{CheckIn: req.CheckIn, CheckOut: req.CheckOut}
	}

	if nights := req.CheckIn.DaysUntil(req.CheckOut); nights > domain.MaxSearchNights {
		uc.logger.Warn("UpdateBooking: stay of %d nights exceeds limit %d", nights, domain.MaxSearchNights)
		return nil, fmt.Errorf("%w: %d nights, at most %d allowed", ErrStayTooLong, nights, domain.MaxSearchNights)
	}

	var result *domain.Booking

	// 2. Выполняем операции с БД в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Получаем бронирование с блокировкой
		booking, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("UpdateBooking: booking=%s not found", req.BookingID)
				return ErrBookingNotFound
			}
			uc.logger.Error("UpdateBooking: failed to get booking=%s: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to get booking: %w", ErrInternal, err)
		}

		if booking.Cancelled {
			uc.logger.Warn("UpdateBooking: booking=%s is cancelled", req.BookingID)
			return ErrBookingCancelled
		}

		// 2.2. Проверяем целевой номер
		if _, err := uc.roomRepo.GetByNumber(txCtx, req.RoomID); err != nil {
			if errors.Is(err, roomRepo.ErrRoomNotFound) {
				uc.logger.Warn("UpdateBooking: room=%d not found", req.RoomID)
				return ErrRoomNotFound
			}
			uc.logger.Error("UpdateBooking: failed to get room=%d: %v", req.RoomID, err)
			return fmt.Errorf("%w: failed to get room: %w", ErrInternal, err)
		}

		// 2.3. Получаем бронирования целевого номера на новые даты с блокировкой
		raw, err := uc.bookingRepo.GetInPeriod(txCtx, domain.BookingsFilter{
			RoomID: &req.RoomID,
			From:   req.CheckIn,
			To:     req.CheckOut,
		})
		if err != nil {
			uc.logger.Error("UpdateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %w", ErrInternal, err)
		}

		existing, diagnostics := planning.Normalize(raw)
		for _, diag := range diagnostics {
			uc.logger.Warn("UpdateBooking: booking ignored during validation: %v", diag)
		}

		// 2.4. Проверяем пересечения, исключая само бронирование
		if err := planning.ValidatePlacement(req.RoomID, req.CheckIn, req.CheckOut, existing, booking.ID); err != nil {
			var conflict *planning.ConflictError
			if errors.As(err, &conflict) {
				uc.metrics.ObservePlacementRejection(rejectConflict)
				uc.logger.Warn("UpdateBooking: room=%d is taken by booking=%s", req.RoomID, conflict.BookingID)
			}
			return err
		}

		// 2.5. Сохраняем новые номер и даты
		booking.RoomID = &req.RoomID
		booking.CheckIn = req.CheckIn
		booking.CheckOut = req.CheckOut

		updated, err := uc.bookingRepo.Update(txCtx, booking)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			if errors.Is(err, bookingRepo.ErrRoomNotFound) {
				return ErrRoomNotFound
			}
			uc.logger.Error("UpdateBooking: failed to update booking=%s: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to update booking: %w", ErrInternal, err)
		}

		result = updated
		return nil
	})

	if err != nil {
		if txmanager.IsRetryable(err) {
			uc.logger.Warn("UpdateBooking: concurrent booking of room=%d: %v", req.RoomID, err)
			return nil, fmt.Errorf("%w: %v", ErrConcurrentBooking, err)
		}
		return nil, err
	}

	uc.logger.Info("UpdateBooking: booking=%s moved to room=%d (%s - %s)",
		result.ID, req.RoomID, result.CheckIn, result.CheckOut)

	return &Response{Booking: *result}, nil
}
