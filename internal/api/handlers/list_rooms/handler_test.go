package list_rooms

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-StayPlanner/internal/service/bookings/models"
	"github.com/m04kA/SMC-StayPlanner/pkg/logger"
)

type fakeService struct {
	resp *models.RoomListResponse
	err  error
}

func (f *fakeService) ListRooms(_ context.Context) (*models.RoomListResponse, error) {
	return f.resp, f.err
}

func TestHandle(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		svc := &fakeService{resp: &models.RoomListResponse{Rooms: []models.RoomResponse{
			{Number: 101, Title: "Стандарт"},
			{Number: 102, Title: "Люкс"},
		}}}
		rec := httptest.NewRecorder()

		NewHandler(svc, logger.NewNop()).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/rooms", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"rooms":[{"number":101,"title":"Стандарт"},{"number":102,"title":"Люкс"}]}`, rec.Body.String())
	})

	t.Run("internal", func(t *testing.T) {
		rec := httptest.NewRecorder()

		NewHandler(&fakeService{err: errors.New("boom")}, logger.NewNop()).
			Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/rooms", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
