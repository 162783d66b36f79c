//go:build unit

package spot_test

import (
	"testing"
	"time"

	"parkbuddy/internal/domain/spot"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpotTransitions(t *testing.T) {
	t.Run("空き→使用中→空き", func(t *testing.T) {
		s := spot.ReconstructSpot(1, 1, spot.StatusAvailable, nil)
		require.True(t, s.IsAvailable())

		require.NoError(t, s.Occupy())
		assert.Equal(t, spot.StatusOccupied, s.Status())
		require.ErrorIs(t, s.Occupy(), spot.ErrNotAvailable)

		require.NoError(t, s.Vacate())
		assert.Equal(t, spot.StatusAvailable, s.Status())
		require.ErrorIs(t, s.Vacate(), spot.ErrNotOccupied)
	})

	t.Run("廃止済みは割当不可", func(t *testing.T) {
		s := spot.ReconstructSpot(1, 1, spot.StatusAvailable, nil)
		require.NoError(t, s.Retire(time.Now()))
		assert.False(t, s.IsAvailable())
		require.ErrorIs(t, s.Occupy(), spot.ErrRetired)
		require.ErrorIs(t, s.Retire(time.Now()), spot.ErrRetired)
	})

	t.Run("使用中は廃止不可", func(t *testing.T) {
		s := spot.ReconstructSpot(1, 1, spot.StatusOccupied, nil)
		require.ErrorIs(t, s.Retire(time.Now()), spot.ErrNotAvailable)
		assert.Nil(t, s.RetiredAt())
	})
}

func TestNewStatus(t *testing.T) {
	st, err := spot.NewStatus("A")
	require.NoError(t, err)
	assert.Equal(t, "available", st.Label())

	st, err = spot.NewStatus("O")
	require.NoError(t, err)
	assert.Equal(t, "occupied", st.Label())

	_, err = spot.NewStatus("X")
	require.ErrorIs(t, err, spot.ErrInvalidStatus)
}
