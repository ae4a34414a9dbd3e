package search_availability

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-StayPlanner/internal/domain"
	"github.com/m04kA/SMC-StayPlanner/internal/planning"
)

// UseCase use case поиска номеров, свободных на весь период проживания
type UseCase struct {
	roomRepo    RoomRepository
	bookingRepo BookingRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(roomRepo RoomRepository, bookingRepo BookingRepository, logger Logger) *UseCase {
	return &UseCase{
		roomRepo:    roomRepo,
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// Execute возвращает номера без активных бронирований, пересекающихся с [CheckIn, CheckOut).
// Выезд одного гостя в день заезда другого пересечением не считается.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SearchAvailability: checkIn=%s, checkOut=%s", req.CheckIn, req.CheckOut)

	// 1. Валидация диапазона
	if req.CheckIn.IsZero() || req.CheckOut.IsZero() {
		return nil, fmt.Errorf("%w: checkIn and checkOut are required", ErrInvalidInput)
	}

	if !req.CheckIn.Before(req.CheckOut) {
		uc.logger.Warn("SearchAvailability: invalid range %s - %s", req.CheckIn, req.CheckOut)
		return nil, &planning.InvalidRangeError{CheckIn: req.CheckIn, CheckOut: req.CheckOut}
	}

	nights := req.CheckIn.DaysUntil(req.CheckOut)
	if nights > domain.MaxSearchNights {
		return nil, fmt.Errorf("%w: %d nights, at most %d allowed", ErrRangeTooLong, nights, domain.MaxSearchNights)
	}

	// 2. Получаем номера
	rooms, err := uc.roomRepo.List(ctx)
	if err != nil {
		uc.logger.Error("SearchAvailability: failed to list rooms: %v", err)
		return nil, fmt.Errorf("%w: failed to list rooms: %v", ErrInternal, err)
	}

	// 3. Получаем бронирования, пересекающиеся с периодом
	raw, err := uc.bookingRepo.GetInPeriod(ctx, domain.BookingsFilter{
		From: req.CheckIn,
		To:   req.CheckOut,
	})
	if err != nil {
		uc.logger.Error("SearchAvailability: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	bookings, diagnostics := planning.Normalize(raw)
	for _, diag := range diagnostics {
		uc.logger.Warn("SearchAvailability: booking skipped: %v", diag)
	}

	// 4. Отбираем свободные номера
	free := planning.FreeRoomsForRange(rooms, bookings, req.CheckIn, req.CheckOut)

	uc.logger.Info("SearchAvailability: %d of %d rooms free", len(free), len(rooms))

	return &Response{
		CheckIn:  req.CheckIn,
		CheckOut: req.CheckOut,
		Nights:   nights,
		Rooms:    free,
	}, nil
}
