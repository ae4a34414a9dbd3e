package get_room_calendar

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StayPlanner/internal/domain"
	roomRepo "github.com/m04kA/SMC-StayPlanner/internal/infra/storage/room"
	"github.com/m04kA/SMC-StayPlanner/pkg/logger"
	"github.com/m04kA/SMC-StayPlanner/pkg/ptr"
	"github.com/m04kA/SMC-StayPlanner/pkg/types"
)

type fakeRoomRepo struct {
	rooms map[int64]domain.Room
	err   error
}

func (f *fakeRoomRepo) GetByNumber(_ context.Context, number int64) (*domain.Room, error) {
	if f.err != nil {
		return nil, f.err
	}
	room, ok := f.rooms[number]
	if !ok {
		return nil, roomRepo.ErrRoomNotFound
	}
	return &room, nil
}

type fakeBookingRepo struct {
	raw    []domain.RawBooking
	err    error
	filter domain.BookingsFilter
}

func (f *fakeBookingRepo) GetInPeriod(_ context.Context, filter domain.BookingsFilter) ([]domain.RawBooking, error) {
	f.filter = filter
	if f.err != nil {
		return nil, f.err
	}
	var result []domain.RawBooking
	for _, b := range f.raw {
		if matches(b, filter) {
			result = append(result, b)
		}
	}
	return result, nil
}

// matches применяет к записи тот же предикат, что и репозиторий:
// check_in < To AND check_out > From, записи без дат проходят фильтр
func matches(b domain.RawBooking, filter domain.BookingsFilter) bool {
	if filter.RoomID != nil && (b.RoomID == nil || *b.RoomID != *filter.RoomID) {
		return false
	}
	if b.Cancelled && !filter.IncludeCancelled {
		return false
	}
	if b.CheckIn == "" || b.CheckOut == "" {
		return true
	}
	checkIn, errIn := types.ParseDate(b.CheckIn)
	checkOut, errOut := types.ParseDate(b.CheckOut)
	if errIn != nil || errOut != nil {
		return true
	}
	return checkIn.Before(filter.To) && checkOut.After(filter.From)
}

func TestExecute(t *testing.T) {
	rooms := &fakeRoomRepo{rooms: map[int64]domain.Room{101: {Number: 101, Title: "Стандарт"}}}
	bookings := &fakeBookingRepo{raw: []domain.RawBooking{
		{ID: "a", RoomID: ptr.Ptr(int64(101)), CheckIn: "2025-09-30", CheckOut: "2025-10-02"},
		{ID: "bad", RoomID: ptr.Ptr(int64(101)), CheckIn: "30/09/2025", CheckOut: "2025-10-02"},
	}}
	uc := NewUseCase(rooms, bookings, 30, 90, logger.NewNop())

	resp, err := uc.Execute(context.Background(), &Request{RoomID: 101, Start: types.MustParseDate("2025-09-29"), Days: 4})
	require.NoError(t, err)

	require.NotNil(t, bookings.filter.RoomID)
	assert.Equal(t, int64(101), *bookings.filter.RoomID)
	assert.Equal(t, "Стандарт", resp.Room.Title)

	require.Len(t, resp.Months, 2)
	assert.Equal(t, 2, resp.Months[0].DayCount)
	assert.Equal(t, 2, resp.Months[1].DayCount)

	// Заезд 30.09 после полудня (слот 3), выезд 02.10 до полудня (слот 6)
	var booked []domain.Cell
	for _, c := range resp.Cells {
		if c.IsBooking() {
			booked = append(booked, c)
		}
	}
	require.Len(t, booked, 1)
	assert.Equal(t, "a", booked[0].BookingID)
	assert.Equal(t, 3, booked[0].Start)
	assert.Equal(t, 4, booked[0].Span)
}

func TestExecute_Errors(t *testing.T) {
	start := types.MustParseDate("2025-09-01")
	rooms := &fakeRoomRepo{rooms: map[int64]domain.Room{101: {Number: 101}}}

	tests := []struct {
		name     string
		rooms    *fakeRoomRepo
		bookings *fakeBookingRepo
		req      *Request
		wantErr  error
	}{
		{"unknown room", rooms, &fakeBookingRepo{}, &Request{RoomID: 999, Start: start, Days: 7}, ErrRoomNotFound},
		{"window too long", rooms, &fakeBookingRepo{}, &Request{RoomID: 101, Start: start, Days: 100}, ErrInvalidWindow},
		{"no start", rooms, &fakeBookingRepo{}, &Request{RoomID: 101, Days: 7}, ErrInvalidWindow},
		{"room repo failure", &fakeRoomRepo{err: errors.New("db down")}, &fakeBookingRepo{}, &Request{RoomID: 101, Start: start}, ErrInternal},
		{"booking repo failure", rooms, &fakeBookingRepo{err: errors.New("db down")}, &Request{RoomID: 101, Start: start}, ErrInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewUseCase(tt.rooms, tt.bookings, 30, 90, logger.NewNop())
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestExecute_CheckoutOnWindowStart(t *testing.T) {
	rooms := &fakeRoomRepo{rooms: map[int64]domain.Room{101: {Number: 101}}}
	bookings := &fakeBookingRepo{raw: []domain.RawBooking{
		{ID: "prev", RoomID: ptr.Ptr(int64(101)), CheckIn: "2025-09-08", CheckOut: "2025-09-10"},
		{ID: "gone", RoomID: ptr.Ptr(int64(101)), CheckIn: "2025-09-07", CheckOut: "2025-09-09"},
		{ID: "other-room", RoomID: ptr.Ptr(int64(102)), CheckIn: "2025-09-08", CheckOut: "2025-09-10"},
	}}
	uc := NewUseCase(rooms, bookings, 30, 90, logger.NewNop())

	resp, err := uc.Execute(context.Background(), &Request{RoomID: 101, Start: types.MustParseDate("2025-09-10"), Days: 2})
	require.NoError(t, err)

	assert.Equal(t, types.MustParseDate("2025-09-09"), bookings.filter.From)
	assert.Equal(t, types.MustParseDate("2025-09-12"), bookings.filter.To)

	require.Len(t, resp.Cells, 4)
	assert.Equal(t, domain.Cell{Type: domain.CellBooking, Start: 0, Span: 1, BookingID: "prev", Booking: resp.Cells[0].Booking}, resp.Cells[0])
	for _, c := range resp.Cells[1:] {
		assert.Equal(t, domain.CellEmpty, c.Type)
	}
}
