package create_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/lib/pq"
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
	raw       []domain.RawBooking
	getErr    error
	createErr error
	created   []*domain.Booking
	filter    domain.BookingsFilter
	inTx      bool
}

func (f *fakeBookingRepo) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = append(f.created, b)
	return b, nil
}

func (f *fakeBookingRepo) GetInPeriod(ctx context.Context, filter domain.BookingsFilter) ([]domain.RawBooking, error) {
	f.filter = filter
	f.inTx = ctx.Value(txMarker{}) != nil
	return f.raw, f.getErr
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

type txMarker struct{}

type fakeTxManager struct {
	calls int
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(context.WithValue(ctx, txMarker{}, true))
}

type fakeMetrics struct {
	reasons []string
}

func (f *fakeMetrics) ObservePlacementRejection(reason string) {
	f.reasons = append(f.reasons, reason)
}

type fixedID string

func (f fixedID) NewID() string { return string(f) }

type testDeps struct {
	bookings *fakeBookingRepo
	rooms    *fakeRoomRepo
	tx       *fakeTxManager
	metrics  *fakeMetrics
}

func newUseCase(deps testDeps) *UseCase {
	uc := NewUseCase(deps.bookings, deps.rooms, deps.tx, deps.metrics, logger.NewNop())
	uc.idGenerator = fixedID("new-booking")
	return uc
}

func defaultDeps() testDeps {
	return testDeps{
		bookings: &fakeBookingRepo{},
		rooms:    &fakeRoomRepo{},
		tx:       &fakeTxManager{},
		metrics:  &fakeMetrics{},
	}
}

func validRequest() *Request {
	return &Request{
		RoomID:    101,
		CheckIn:   types.MustParseDate("2025-09-05"),
		CheckOut:  types.MustParseDate("2025-09-08"),
		GuestName: "  Петров ",
		Notes:     ptr.Ptr("поздний заезд"),
		CreatedBy: 7,
	}
}

func TestExecute_Created(t *testing.T) {
	deps := defaultDeps()
	// Выезд в день заезда нового гостя не мешает бронированию
	deps.bookings.raw = []domain.RawBooking{
		{ID: "before", RoomID: ptr.Ptr(int64(101)), CheckIn: "2025-09-02", CheckOut: "2025-09-05"},
	}
	uc := newUseCase(deps)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, 1, deps.tx.calls)
	assert.True(t, deps.bookings.inTx)
	assert.Equal(t, int64(101), *deps.bookings.filter.RoomID)
	assert.Equal(t, types.MustParseDate("2025-09-05"), deps.bookings.filter.From)
	assert.Equal(t, types.MustParseDate("2025-09-08"), deps.bookings.filter.To)

	b := resp.Booking
	assert.Equal(t, "new-booking", b.ID)
	assert.Equal(t, int64(101), *b.RoomID)
	assert.Equal(t, "Петров", b.Payload.GuestName)
	assert.Equal(t, "поздний заезд", *b.Payload.Notes)
	assert.Equal(t, int64(7), *b.CreatedBy)
	assert.False(t, b.Cancelled)
	assert.Empty(t, deps.metrics.reasons)
}

func TestExecute_Conflict(t *testing.T) {
	deps := defaultDeps()
	deps.bookings.raw = []domain.RawBooking{
		{ID: "existing", RoomID: ptr.Ptr(int64(101)), CheckIn: "2025-09-06", CheckOut: "2025-09-10"},
	}
	uc := newUseCase(deps)

	_, err := uc.Execute(context.Background(), validRequest())

	var conflict *planning.ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "existing", conflict.BookingID)
	assert.Empty(t, deps.bookings.created)
	assert.Equal(t, []string{rejectConflict}, deps.metrics.reasons)
}

func TestExecute_MalformedExistingBookingIgnored(t *testing.T) {
	deps := defaultDeps()
	deps.bookings.raw = []domain.RawBooking{
		{ID: "manual", RoomID: ptr.Ptr(int64(101)), CheckIn: "", CheckOut: ""},
	}
	uc := newUseCase(deps)

	_, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Len(t, deps.bookings.created, 1)
}

func TestExecute_InvalidRange(t *testing.T) {
	deps := defaultDeps()
	uc := newUseCase(deps)

	req := validRequest()
	req.CheckOut = req.CheckIn

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, planning.ErrInvalidRange)
	assert.Equal(t, 0, deps.tx.calls)
	assert.Equal(t, []string{rejectInvalidRange}, deps.metrics.reasons)
}

func TestExecute_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(r *Request)
		wantErr error
	}{
		{"no room", func(r *Request) { r.RoomID = 0 }, ErrInvalidInput},
		{"no check-in", func(r *Request) { r.CheckIn = types.Date{} }, ErrInvalidInput},
		{"blank guest", func(r *Request) { r.GuestName = "   " }, ErrInvalidInput},
		{"long guest", func(r *Request) { r.GuestName = strings.Repeat("я", domain.MaxGuestNameLength+1) }, ErrInvalidInput},
		{"long notes", func(r *Request) { r.Notes = ptr.Ptr(strings.Repeat("x", domain.MaxNotesLength+1)) }, ErrInvalidInput},
		{"too long stay", func(r *Request) { r.CheckOut = r.CheckIn.AddDays(domain.MaxSearchNights + 1) }, ErrStayTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deps := defaultDeps()
			req := validRequest()
			tt.modify(req)

			_, err := newUseCase(deps).Execute(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, 0, deps.tx.calls)
		})
	}
}

func TestExecute_RepositoryErrors(t *testing.T) {
	tests := []struct {
		name    string
		deps    func(d *testDeps)
		wantErr error
	}{
		{"room not found", func(d *testDeps) { d.rooms.err = roomRepo.ErrRoomNotFound }, ErrRoomNotFound},
		{"room lookup failed", func(d *testDeps) { d.rooms.err = errors.New("db down") }, ErrInternal},
		{"bookings failed", func(d *testDeps) { d.bookings.getErr = errors.New("db down") }, ErrInternal},
		{"room deleted meanwhile", func(d *testDeps) { d.bookings.createErr = bookingRepo.ErrRoomNotFound }, ErrRoomNotFound},
		{"duplicate externalRef", func(d *testDeps) { d.bookings.createErr = bookingRepo.ErrBookingExists }, ErrInvalidInput},
		{"insert failed", func(d *testDeps) { d.bookings.createErr = errors.New("disk full") }, ErrInternal},
		{
			"serialization failure",
			func(d *testDeps) {
				d.bookings.createErr = fmt.Errorf("%w: insert: %w", bookingRepo.ErrExecQuery, &pq.Error{Code: "40001"})
			},
			ErrConcurrentBooking,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deps := defaultDeps()
			tt.deps(&deps)

			_, err := newUseCase(deps).Execute(context.Background(), validRequest())
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
