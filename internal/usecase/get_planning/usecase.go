package get_planning

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-StayPlanner/internal/domain"
	"github.com/m04kA/SMC-StayPlanner/internal/planning"
)

// UseCase use case построения сетки планирования по всем номерам
type UseCase struct {
	roomRepo    RoomRepository
	bookingRepo BookingRepository
	metrics     Metrics
	defaultDays int
	maxDays     int
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	roomRepo RoomRepository,
	bookingRepo BookingRepository,
	metrics Metrics,
	defaultDays int,
	maxDays int,
	logger Logger,
) *UseCase {
	return &UseCase{
		roomRepo:    roomRepo,
		bookingRepo: bookingRepo,
		metrics:     metrics,
		defaultDays: defaultDays,
		maxDays:     maxDays,
		logger:      logger,
	}
}

// Execute строит сетку планирования.
// Битые записи и пересечения в данных не прерывают построение, они попадают в Grid.Diagnostics и Grid.Conflicts.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	days := req.Days
	if days == 0 {
		days = uc.defaultDays
	}

	uc.logger.Info("GetPlanning: start=%s, days=%d", req.Start, days)

	// 1. Валидация окна
	if days > uc.maxDays {
		uc.logger.Warn("GetPlanning: window of %d days exceeds limit %d", days, uc.maxDays)
		return nil, fmt.Errorf("%w: at most %d days allowed", ErrInvalidWindow, uc.maxDays)
	}

	window, err := domain.NewViewWindow(req.Start, days)
	if err != nil {
		uc.logger.Warn("GetPlanning: invalid window: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidWindow, err)
	}

	// 2. Получаем номера
	rooms, err := uc.roomRepo.List(ctx)
	if err != nil {
		uc.logger.Error("GetPlanning: failed to list rooms: %v", err)
		return nil, fmt.Errorf("%w: failed to list rooms: %v", ErrInternal, err)
	}

	// 3. Получаем бронирования, занимающие слоты окна (включая выезд утром первого дня)
	raw, err := uc.bookingRepo.GetInPeriod(ctx, window.OccupancyFilter(nil))
	if err != nil {
		uc.logger.Error("GetPlanning: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 4. Строим сетку
	started := time.Now()
	grid := planning.BuildGrid(rooms, raw, window)
	uc.metrics.ObserveGrid(started, len(grid.Diagnostics), len(grid.Conflicts))

	for _, diag := range grid.Diagnostics {
		uc.logger.Warn("GetPlanning: booking skipped: %v", diag)
	}
	for _, c := range grid.Conflicts {
		uc.logger.Warn("GetPlanning: overlapping bookings in room=%d: %s and %s", c.RoomID, c.BookingID, c.OtherBookingID)
	}

	uc.logger.Info("GetPlanning: built grid for %d rooms from %d bookings", len(grid.Rows), len(raw))

	return &Response{Grid: grid}, nil
}
