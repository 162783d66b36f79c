//go:build unit

package lot_test

import (
	"strings"
	"testing"

	"parkbuddy/internal/domain/lot"
	"parkbuddy/internal/domain/reservation"
	"parkbuddy/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(n int) *int       { return &n }
func strPtr(s string) *string { return &s }

func TestNewLot(t *testing.T) {
	testCases := []struct {
		name    string
		lotName string
		pin     string
		spots   int
		errIs   error
	}{
		{name: "success: basic", lotName: "Main St", pin: "560001", spots: 2},
		{name: "success: zero spots", lotName: "Main St", pin: "560001", spots: 0},
		{name: "success: name is trimmed", lotName: "  Main St  ", pin: "560001", spots: 1},
		{name: "error: blank name", lotName: "   ", pin: "560001", spots: 1, errIs: lot.ErrInvalidName},
		{name: "error: long name", lotName: strings.Repeat("a", 101), pin: "560001", spots: 1, errIs: lot.ErrInvalidName},
		{name: "error: short pin", lotName: "Main St", pin: "123", spots: 1, errIs: lot.ErrInvalidPinCode},
		{name: "error: too many spots", lotName: "Main St", pin: "560001", spots: lot.MaxSpotCount + 1, errIs: lot.ErrInvalidSpotCount},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			l, err := lot.NewLot(tc.lotName, "1 Main St", tc.pin, reservation.MustMoney(1000), tc.spots)
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				assert.Nil(t, l)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "Main St", l.Name().Value())
			assert.Equal(t, tc.spots, l.SpotCount())
		})
	}

	t.Run("success: rate at the cap", func(t *testing.T) {
		l, err := lot.NewLot("Main St", "1 Main St", "560001", lot.MaxHourlyRate, 1)
		require.NoError(t, err)
		assert.Equal(t, lot.MaxHourlyRate, l.HourlyRate())
	})

	t.Run("error: rate above the cap", func(t *testing.T) {
		rate, err := reservation.ParseMoney("30000000000")
		require.NoError(t, err)

		l, err := lot.NewLot("Main St", "1 Main St", "560001", rate, 1)
		require.ErrorIs(t, err, lot.ErrInvalidRate)
		assert.Nil(t, l)
	})
}

func TestApply(t *testing.T) {
	newLot := func(t *testing.T, spots int) *lot.Lot {
		t.Helper()
		l, err := builder.NewLotBuilder().WithSpotCount(spots).BuildDomain()
		require.NoError(t, err)
		return l
	}

	t.Run("success: grow", func(t *testing.T) {
		l := newLot(t, 2)
		plan, err := l.Apply(lot.Patch{SpotCount: intPtr(5)}, 1)
		require.NoError(t, err)
		assert.Equal(t, lot.ResizePlan{Add: 3}, plan)
		assert.Equal(t, 5, l.SpotCount())
	})

	t.Run("success: shrink to the occupied count", func(t *testing.T) {
		l := newLot(t, 4)
		plan, err := l.Apply(lot.Patch{SpotCount: intPtr(2)}, 2)
		require.NoError(t, err)
		assert.Equal(t, lot.ResizePlan{Retire: 2}, plan)
	})

	t.Run("success: fields without a resize", func(t *testing.T) {
		l := newLot(t, 2)
		rate := reservation.MustMoney(1550)
		plan, err := l.Apply(lot.Patch{Name: strPtr("Elm"), HourlyRate: &rate}, 0)
		require.NoError(t, err)
		assert.Equal(t, lot.ResizePlan{}, plan)
		assert.Equal(t, "Elm", l.Name().Value())
		assert.Equal(t, int64(1550), l.HourlyRate().Cents())
		assert.Equal(t, 2, l.SpotCount())
	})

	t.Run("error: below occupied leaves the lot untouched", func(t *testing.T) {
		l := newLot(t, 3)
		_, err := l.Apply(lot.Patch{Name: strPtr("Elm"), SpotCount: intPtr(1)}, 2)
		require.ErrorIs(t, err, lot.ErrBelowOccupied)
		assert.Equal(t, 3, l.SpotCount())
		assert.Equal(t, "Main St", l.Name().Value())
	})

	t.Run("error: invalid pin leaves the lot untouched", func(t *testing.T) {
		l := newLot(t, 3)
		_, err := l.Apply(lot.Patch{PinCode: strPtr("abc"), SpotCount: intPtr(5)}, 0)
		require.ErrorIs(t, err, lot.ErrInvalidPinCode)
		assert.Equal(t, 3, l.SpotCount())
	})

	t.Run("error: rate above the cap leaves the lot untouched", func(t *testing.T) {
		l := newLot(t, 3)
		before := l.HourlyRate()
		rate := reservation.MustMoney(lot.MaxHourlyRate.Cents() + 1)
		_, err := l.Apply(lot.Patch{HourlyRate: &rate, SpotCount: intPtr(5)}, 0)
		require.ErrorIs(t, err, lot.ErrInvalidRate)
		assert.Equal(t, before, l.HourlyRate())
		assert.Equal(t, 3, l.SpotCount())
	})
}

func TestDropSpot(t *testing.T) {
	l, err := builder.NewLotBuilder().WithSpotCount(1).BuildDomain()
	require.NoError(t, err)

	require.NoError(t, l.DropSpot())
	assert.Equal(t, 0, l.SpotCount())
	assert.ErrorIs(t, l.DropSpot(), lot.ErrInvalidSpotCount)
}
