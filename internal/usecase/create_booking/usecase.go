package create_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-StayPlanner/internal/domain"
	bookingRepo "github.com/m04kA/SMC-StayPlanner/internal/infra/storage/booking"
	roomRepo "github.com/m04kA/SMC-StayPlanner/internal/infra/storage/room"
	"github.com/m04kA/SMC-StayPlanner/internal/planning"
	"github.com/m04kA/SMC-StayPlanner/pkg/txmanager"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo BookingRepository
	roomRepo    RoomRepository
	txManager   TransactionManager
	metrics     Metrics
	idGenerator IDGenerator
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
		idGenerator: UUIDGenerator{},
		logger:      logger,
	}
}

// Execute выполняет use case создания бронирования.
// Проверка пересечений и вставка выполняются в одной сериализуемой транзакции.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: room=%d, checkIn=%s, checkOut=%s, by=%d",
		req.RoomID, req.CheckIn, req.CheckOut, req.CreatedBy)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Валидация диапазона дат
	if err := validateRange(req); err != nil {
		if errors.Is(err, planning.ErrInvalidRange) {
			uc.metrics.ObservePlacementRejection(rejectInvalidRange)
		}
		uc.logger.Warn("CreateBooking: invalid range: %v", err)
		return nil, err
	}

	var result *domain.Booking

	// 3. Выполняем операции с БД в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Проверяем, что номер существует
		if _, err := uc.roomRepo.GetByNumber(txCtx, req.RoomID); err != nil {
			if errors.Is(err, roomRepo.ErrRoomNotFound) {
				uc.logger.Warn("CreateBooking: room=%d not found", req.RoomID)
				return ErrRoomNotFound
			}
			uc.logger.Error("CreateBooking: failed to get room=%d: %v", req.RoomID, err)
			return fmt.Errorf("%w: failed to get room: %w", ErrInternal, err)
		}

		// 3.2. Получаем бронирования номера на эти даты с блокировкой (FOR UPDATE)
		raw, err := uc.bookingRepo.GetInPeriod(txCtx, domain.BookingsFilter{
			RoomID: &req.RoomID,
			From:   req.CheckIn,
			To:     req.CheckOut,
		})
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %w", ErrInternal, err)
		}

		existing, diagnostics := planning.Normalize(raw)
		for _, diag := range diagnostics {
			uc.logger.Warn("CreateBooking: booking ignored during validation: %v", diag)
		}

		// 3.3. Проверяем пересечения
		if err := planning.ValidatePlacement(req.RoomID, req.CheckIn, req.CheckOut, existing, ""); err != nil {
			var conflict *planning.ConflictError
			if errors.As(err, &conflict) {
				uc.metrics.ObservePlacementRejection(rejectConflict)
				uc.logger.Warn("CreateBooking: room=%d is taken by booking=%s (%s - %s)",
					req.RoomID, conflict.BookingID, conflict.CheckIn, conflict.CheckOut)
			}
			return err
		}

		// 3.4. Сохраняем бронирование
		createdBy := req.CreatedBy
		booking := &domain.Booking{
			ID:       uc.idGenerator.NewID(),
			RoomID:   &req.RoomID,
			CheckIn:  req.CheckIn,
			CheckOut: req.CheckOut,
			Payload: domain.Payload{
				GuestName:    strings.TrimSpace(req.GuestName),
				GuestContact: req.GuestContact,
				Notes:        req.Notes,
				ExternalRef:  req.ExternalRef,
			},
			CreatedBy: &createdBy,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrRoomNotFound) {
				return ErrRoomNotFound
			}
			if errors.Is(err, bookingRepo.ErrBookingExists) {
				uc.logger.Warn("CreateBooking: duplicate booking: %v", err)
				return fmt.Errorf("%w: booking with this id or externalRef already exists", ErrInvalidInput)
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %w", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		if txmanager.IsRetryable(err) {
			uc.logger.Warn("CreateBooking: concurrent booking of room=%d: %v", req.RoomID, err)
			return nil, fmt.Errorf("%w: %v", ErrConcurrentBooking, err)
		}
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%s in room=%d", result.ID, req.RoomID)

	return &Response{Booking: *result}, nil
}
