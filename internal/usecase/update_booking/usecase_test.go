package update_booking

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StayPlanner/internal/domain"
	bookingRepo "github.com/m04kA/SMC-StayPlanner/internal/infra/storage/booking"
	roomRepo "github.com/m04kA/SMC-StayPlanner/internal/infra/storage/room"
	"github.com/m04kA/SMC-StayPlanner/internal/planning"
	"github.com/m04kA/SMC-StayPlanner/pkg/logger"
	"github.com/m04kA/SMC-StayPlanner/pkg/ptr"
	"github.com/m04kA/SMC-StayPlanner/pkg/types"
)

type fakeBookingRepo struct {
	booking   *domain.Booking
	raw       []domain.RawBooking
	getErr    error
	updateErr error
	updated   *domain.Booking
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id string) (*domain.Booking, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if f.booking == nil || f.booking.ID != id {
		return nil, bookingRepo.ErrBookingNotFound
	}
	b := *f.booking
	return &b, nil
}

func (f *fakeBookingRepo) GetInPeriod(context.Context, domain.BookingsFilter) ([]domain.RawBooking, error) {
	return f.raw, nil
}

func (f *fakeBookingRepo) Update(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	f.updated = b
	return b, nil
}

type fakeRoomRepo struct {
	err error
}

func (f *fakeRoomRepo) GetByNumber(_ context.Context, number int64) (*domain.Room, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &domain.Room{Number: number}, nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeMetrics struct {
	reasons []string
}

func (f *fakeMetrics) ObservePlacementRejection(reason string) {
	f.reasons = append(f.reasons, reason)
}

func existingBooking() *domain.Booking {
	return &domain.Booking{
		ID:       "self",
		RoomID:   ptr.Ptr(int64(101)),
		CheckIn:  types.MustParseDate("2025-09-02"),
		CheckOut: types.MustParseDate("2025-09-05"),
		Payload:  domain.Payload{GuestName: "Сидоров"},
	}
}

func TestExecute_ExtendsWithinOwnInterval(t *testing.T) {
	bookings := &fakeBookingRepo{
		booking: existingBooking(),
		raw: []domain.RawBooking{
			{ID: "self", RoomID: ptr.Ptr(int64(101)), CheckIn: "2025-09-02", CheckOut: "2025-09-05"},
			{ID: "next", RoomID: ptr.Ptr(int64(101)), CheckIn: "2025-09-06", CheckOut: "2025-09-08"},
		},
	}
	uc := NewUseCase(bookings, &fakeRoomRepo{}, fakeTxManager{}, &fakeMetrics{}, logger.NewNop())

	resp, err := uc.Execute(context.Background(), &Request{
		BookingID: "self",
		RoomID:    101,
		CheckIn:   types.MustParseDate("2025-09-02"),
		CheckOut:  types.MustParseDate("2025-09-06"),
	})
	require.NoError(t, err)

	assert.Equal(t, types.MustParseDate("2025-09-06"), resp.Booking.CheckOut)
	assert.Equal(t, "Сидоров", resp.Booking.Payload.GuestName)
	require.NotNil(t, bookings.updated)
}

func TestExecute_Conflict(t *testing.T) {
	bookings := &fakeBookingRepo{
		booking: existingBooking(),
		raw: []domain.RawBooking{
			{ID: "other", RoomID: ptr.Ptr(int64(102)), CheckIn: "2025-09-01", CheckOut: "2025-09-03"},
		},
	}
	m := &fakeMetrics{}
	uc := NewUseCase(bookings, &fakeRoomRepo{}, fakeTxManager{}, m, logger.NewNop())

	_, err := uc.Execute(context.Background(), &Request{
		BookingID: "self",
		RoomID:    102,
		CheckIn:   types.MustParseDate("2025-09-02"),
		CheckOut:  types.MustParseDate("2025-09-05"),
	})

	var conflict *planning.ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "other", conflict.BookingID)
	assert.Nil(t, bookings.updated)
	assert.Equal(t, []string{rejectConflict}, m.reasons)
}

func TestExecute_Errors(t *testing.T) {
	cancelled := existingBooking()
	cancelled.Cancelled = true

	valid := &Request{
		BookingID: "self",
		RoomID:    101,
		CheckIn:   types.MustParseDate("2025-09-02"),
		CheckOut:  types.MustParseDate("2025-09-04"),
	}

	tests := []struct {
		name     string
		bookings *fakeBookingRepo
		rooms    *fakeRoomRepo
		req      *Request
		wantErr  error
	}{
		{"missing id", &fakeBookingRepo{}, &fakeRoomRepo{}, &Request{RoomID: 101, CheckIn: valid.CheckIn, CheckOut: valid.CheckOut}, ErrInvalidInput},
		{"inverted range", &fakeBookingRepo{}, &fakeRoomRepo{}, &Request{BookingID: "self", RoomID: 101, CheckIn: valid.CheckOut, CheckOut: valid.CheckIn}, planning.ErrInvalidRange},
		{"not found", &fakeBookingRepo{}, &fakeRoomRepo{}, valid, ErrBookingNotFound},
		{"cancelled", &fakeBookingRepo{booking: cancelled}, &fakeRoomRepo{}, valid, ErrBookingCancelled},
		{"unknown room", &fakeBookingRepo{booking: existingBooking()}, &fakeRoomRepo{err: roomRepo.ErrRoomNotFound}, valid, ErrRoomNotFound},
		{"lookup failed", &fakeBookingRepo{getErr: errors.New("db down")}, &fakeRoomRepo{}, valid, ErrInternal},
		{"update failed", &fakeBookingRepo{booking: existingBooking(), updateErr: errors.New("db down")}, &fakeRoomRepo{}, valid, ErrInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewUseCase(tt.bookings, tt.rooms, fakeTxManager{}, &fakeMetrics{}, logger.NewNop())
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestExecute_StayTooLong(t *testing.T) {
	bookings := &fakeBookingRepo{booking: existingBooking()}
	uc := NewUseCase(bookings, &fakeRoomRepo{}, fakeTxManager{}, &fakeMetrics{}, logger.NewNop())

	checkIn := types.MustParseDate("2025-09-02")
	_, err := uc.Execute(context.Background(), &Request{
		BookingID: "self",
		RoomID:    101,
		CheckIn:   checkIn,
		CheckOut:  checkIn.AddDays(domain.MaxSearchNights + 1),
	})

	assert.ErrorIs(t, err, ErrStayTooLong)
	assert.Nil(t, bookings.updated)

	// Ровно на пределе перенос разрешён
	_, err = uc.Execute(context.Background(), &Request{
		BookingID: "self",
		RoomID:    101,
		CheckIn:   checkIn,
		CheckOut:  checkIn.AddDays(domain.MaxSearchNights),
	})
	assert.NoError(t, err)
}
