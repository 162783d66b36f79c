//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"parkbuddy/internal/domain/reservation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var base = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

func TestMinimumHourPolicy(t *testing.T) {
	policy := reservation.MinimumHourPolicy{}

	cases := []struct {
		name      string
		elapsed   time.Duration
		rateCents int64
		want      string
	}{
		{name: "10分は1時間分課金", elapsed: 10 * time.Minute, rateCents: 2000, want: "20.00"},
		{name: "45分は1時間分課金", elapsed: 45 * time.Minute, rateCents: 1500, want: "15.00"},
		{name: "ちょうど1時間", elapsed: time.Hour, rateCents: 1500, want: "15.00"},
		{name: "2.5時間は比例課金", elapsed: 150 * time.Minute, rateCents: 1000, want: "25.00"},
		{name: "0秒でも最低1時間", elapsed: 0, rateCents: 1234, want: "12.34"},
		{name: "料金0なら0", elapsed: 5 * time.Hour, rateCents: 0, want: "0.00"},
		{name: "端数は四捨五入(切り上げ)", elapsed: 90*time.Minute + 18*time.Second, rateCents: 1, want: "0.02"},
		{name: "端数は四捨五入(切り捨て)", elapsed: 61 * time.Minute, rateCents: 333, want: "3.39"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := policy.Charge(base, base.Add(c.elapsed), reservation.MustMoney(c.rateCents))
			require.NoError(t, err)
			assert.Equal(t, c.want, got.String())
		})
	}
}

func TestProportionalPolicy(t *testing.T) {
	policy := reservation.ProportionalPolicy{}

	t.Run("最低課金なし", func(t *testing.T) {
		got, err := policy.Charge(base, base.Add(10*time.Minute), reservation.MustMoney(2000))
		require.NoError(t, err)
		assert.Equal(t, int64(333), got.Cents())
	})

	t.Run("2.5時間", func(t *testing.T) {
		got, err := policy.Charge(base, base.Add(150*time.Minute), reservation.MustMoney(1000))
		require.NoError(t, err)
		assert.Equal(t, "25.00", got.String())
	})

	t.Run("終了が開始より前なら0", func(t *testing.T) {
		got, err := policy.Charge(base, base.Add(-time.Minute), reservation.MustMoney(1000))
		require.NoError(t, err)
		assert.True(t, got.IsZero())
	})
}

func TestChargeIsDeterministic(t *testing.T) {
	policy := reservation.MinimumHourPolicy{}
	end := base.Add(3*time.Hour + 17*time.Minute + 3*time.Second)
	rate := reservation.MustMoney(1999)

	first, err := policy.Charge(base, end, rate)
	require.NoError(t, err)
	for range 100 {
		again, err := policy.Charge(base, end, rate)
		require.NoError(t, err)
		require.Equal(t, first, again)
	}
}

func TestChargeLargeProducts(t *testing.T) {
	t.Run("積が int64 を超えても正しい金額", func(t *testing.T) {
		rate, err := reservation.ParseMoney("30000000000")
		require.NoError(t, err)

		got, err := reservation.MinimumHourPolicy{}.Charge(base, base.Add(10*time.Minute), rate)

		require.NoError(t, err)
		assert.Equal(t, rate.Cents(), got.Cents())
		assert.Equal(t, "30000000000.00", got.String())
	})

	t.Run("金額が表現できなければエラー", func(t *testing.T) {
		rate := reservation.MustMoney(1 << 60)

		got, err := reservation.ProportionalPolicy{}.Charge(base, base.Add(24*time.Hour), rate)

		require.ErrorIs(t, err, reservation.ErrCostOverflow)
		assert.True(t, got.IsZero())
	})

	t.Run("負の金額にはならない", func(t *testing.T) {
		for _, hours := range []int{1, 100, 10000} {
			got, err := reservation.MinimumHourPolicy{}.Charge(base, base.Add(time.Duration(hours)*time.Hour), reservation.MustMoney(10_000_000))
			require.NoError(t, err)
			assert.GreaterOrEqual(t, got.Cents(), int64(0))
			assert.Equal(t, int64(hours)*10_000_000, got.Cents())
		}
	})
}

func TestPolicyByName(t *testing.T) {
	p, err := reservation.PolicyByName("")
	require.NoError(t, err)
	assert.Equal(t, reservation.PolicyMinimumHour, p.Name())

	p, err = reservation.PolicyByName("proportional")
	require.NoError(t, err)
	assert.Equal(t, reservation.PolicyProportional, p.Name())

	_, err = reservation.PolicyByName("per_minute")
	require.ErrorIs(t, err, reservation.ErrUnknownPolicy)
}
