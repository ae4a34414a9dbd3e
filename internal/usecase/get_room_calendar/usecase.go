package get_room_calendar

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-StayPlanner/internal/domain"
	roomRepo "github.com/m04kA/SMC-StayPlanner/internal/infra/storage/room"
	"github.com/m04kA/SMC-StayPlanner/internal/planning"
)

// UseCase use case календаря занятости одного номера
type UseCase struct {
	roomRepo    RoomRepository
	bookingRepo BookingRepository
	defaultDays int
	maxDays     int
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	roomRepo RoomRepository,
	bookingRepo BookingRepository,
	defaultDays int,
	maxDays int,
	logger Logger,
) *UseCase {
	return &UseCase{
		roomRepo:    roomRepo,
		bookingRepo: bookingRepo,
		defaultDays: defaultDays,
		maxDays:     maxDays,
		logger:      logger,
	}
}

// Execute строит календарь номера
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	days := req.Days
	if days == 0 {
		days = uc.defaultDays
	}

	uc.logger.Info("GetRoomCalendar: room=%d, start=%s, days=%d", req.RoomID, req.Start, days)

	// 1. Валидация окна
	if days > uc.maxDays {
		return nil, fmt.Errorf("%w: at most %d days allowed", ErrInvalidWindow, uc.maxDays)
	}

	window, err := domain.NewViewWindow(req.Start, days)
	if err != nil {
		uc.logger.Warn("GetRoomCalendar: invalid window: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidWindow, err)
	}

	// 2. Проверяем номер
	room, err := uc.roomRepo.GetByNumber(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			uc.logger.Warn("GetRoomCalendar: room=%d not found", req.RoomID)
			return nil, ErrRoomNotFound
		}
		uc.logger.Error("GetRoomCalendar: failed to get room=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
	}

	// 3. Получаем бронирования номера, занимающие слоты окна (включая выезд утром первого дня)
	raw, err := uc.bookingRepo.GetInPeriod(ctx, window.OccupancyFilter(&room.Number))
	if err != nil {
		uc.logger.Error("GetRoomCalendar: failed to get bookings for room=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	bookings, diagnostics := planning.Normalize(raw)
	for _, diag := range diagnostics {
		uc.logger.Warn("GetRoomCalendar: booking skipped: %v", diag)
	}

	// 4. Строим строку календаря
	return &Response{
		Room:   *room,
		Window: window,
		Months: planning.MonthHeaderGroups(window),
		Cells:  planning.BuildRow(room.Number, bookings, window),
	}, nil
}
