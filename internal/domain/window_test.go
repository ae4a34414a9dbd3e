package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StayPlanner/pkg/types"
)

func TestViewWindow_OccupancyFilter(t *testing.T) {
	w, err := NewViewWindow(types.MustParseDate("2025-09-10"), 3)
	require.NoError(t, err)

	roomID := int64(101)
	filter := w.OccupancyFilter(&roomID)

	assert.Equal(t, &roomID, filter.RoomID)
	assert.Equal(t, types.MustParseDate("2025-09-09"), filter.From)
	assert.Equal(t, types.MustParseDate("2025-09-13"), filter.To)
	assert.False(t, filter.IncludeCancelled)

	// check_out > From: выезд утром первого дня окна попадает в выборку, выезд накануне нет
	checkoutOnStart := Booking{CheckIn: types.MustParseDate("2025-09-08"), CheckOut: types.MustParseDate("2025-09-10")}
	checkoutBefore := Booking{CheckIn: types.MustParseDate("2025-09-07"), CheckOut: types.MustParseDate("2025-09-09")}
	assert.True(t, checkoutOnStart.Overlaps(filter.From, filter.To))
	assert.False(t, checkoutBefore.Overlaps(filter.From, filter.To))

	assert.Nil(t, w.OccupancyFilter(nil).RoomID)
}
