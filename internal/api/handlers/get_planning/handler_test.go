package get_planning

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StayPlanner/internal/domain"
	"github.com/m04kA/SMC-StayPlanner/internal/planning"
	getPlanning "github.com/m04kA/SMC-StayPlanner/internal/usecase/get_planning"
	"github.com/m04kA/SMC-StayPlanner/pkg/logger"
	"github.com/m04kA/SMC-StayPlanner/pkg/ptr"
	"github.com/m04kA/SMC-StayPlanner/pkg/types"
)

type fakeUseCase struct {
	req  *getPlanning.Request
	resp *getPlanning.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, req *getPlanning.Request) (*getPlanning.Response, error) {
	f.req = req
	return f.resp, f.err
}

func doRequest(uc *fakeUseCase, query string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	NewHandler(uc, logger.NewNop()).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/planning?"+query, nil))
	return rec
}

func sampleGrid() domain.Grid {
	start := types.MustParseDate("2025-09-01")
	booking := &domain.Booking{
		ID:       "b1",
		RoomID:   ptr.Ptr(int64(101)),
		CheckIn:  types.MustParseDate("2025-09-02"),
		CheckOut: types.MustParseDate("2025-09-03"),
		Payload:  domain.Payload{GuestName: "Иванов"},
	}

	return domain.Grid{
		Window: domain.ViewWindow{Start: start, DayCount: 2},
		Months: []domain.MonthGroup{{Label: "September 2025", Year: 2025, Month: 9, DayCount: 2}},
		Rows: []domain.Row{{
			Room: domain.Room{Number: 101, Title: "Стандарт"},
			Cells: []domain.Cell{
				{Type: domain.CellEmpty, Start: 0, Span: 1},
				{Type: domain.CellEmpty, Start: 1, Span: 1},
				{Type: domain.CellEmpty, Start: 2, Span: 1},
				{Type: domain.CellBooking, Start: 3, Span: 1, BookingID: "b1", Booking: booking},
			},
		}},
		Conflicts:   []domain.Conflict{{RoomID: 101, BookingID: "b1", OtherBookingID: "b2"}},
		Diagnostics: []error{&planning.MalformedDateError{BookingID: "b3", Field: "check_in", Value: "xx"}},
	}
}

func TestHandle_Grid(t *testing.T) {
	uc := &fakeUseCase{resp: &getPlanning.Response{Grid: sampleGrid()}}

	rec := doRequest(uc, "start=2025-09-01&days=2")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 2, uc.req.Days)
	assert.Equal(t, "2025-09-01", uc.req.Start.String())

	var body PlanningResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, []string{"2025-09-01", "2025-09-02"}, body.Days)
	assert.Equal(t, 4, body.TotalSlots)
	require.Len(t, body.Rows, 1)
	require.Len(t, body.Rows[0].Cells, 4)

	cell := body.Rows[0].Cells[3]
	assert.Equal(t, "booking", cell.Type)
	assert.Equal(t, "Иванов", cell.GuestName)
	assert.Equal(t, "2025-09-02", cell.CheckIn)
	assert.Empty(t, body.Rows[0].Cells[0].BookingID)

	assert.Equal(t, []ConflictDTO{{RoomID: 101, BookingID: "b1", OtherBookingID: "b2"}}, body.Conflicts)
	require.Len(t, body.Diagnostics, 1)
	assert.Contains(t, body.Diagnostics[0], "b3")
}

func TestHandle_DefaultDays(t *testing.T) {
	uc := &fakeUseCase{resp: &getPlanning.Response{Grid: sampleGrid()}}

	rec := doRequest(uc, "start=2025-09-01")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 0, uc.req.Days)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		err        error
		wantStatus int
	}{
		{"missing start", "days=30", nil, http.StatusBadRequest},
		{"bad days", "start=2025-09-01&days=month", nil, http.StatusBadRequest},
		{"invalid window", "start=2025-09-01&days=-1", getPlanning.ErrInvalidWindow, http.StatusBadRequest},
		{"internal", "start=2025-09-01", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(&fakeUseCase{err: tt.err}, tt.query)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
