//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"parkbuddy/internal/infra"
	sqlc "parkbuddy/internal/infra/sqlc/generated"
	"parkbuddy/internal/pkg/clock"
	"parkbuddy/internal/usecase/queries"
	"parkbuddy/tests/common/memstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockStatsReadStore struct {
	mock.Mock
}

func (m *MockStatsReadStore) Occupancy(ctx context.Context, db sqlc.DBTX, lotID int64) (*queries.OccupancyView, error) {
	args := m.Called(ctx, db, lotID)
	return args.Get(0).(*queries.OccupancyView), args.Error(1)
}

func (m *MockStatsReadStore) ListOccupancy(ctx context.Context, db sqlc.DBTX) ([]*queries.LotOccupancyView, error) {
	args := m.Called(ctx, db)
	return args.Get(0).([]*queries.LotOccupancyView), args.Error(1)
}

func (m *MockStatsReadStore) RevenueSince(ctx context.Context, db sqlc.DBTX, since time.Time) (int64, error) {
	args := m.Called(ctx, db, since)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStatsReadStore) RevenueBetween(ctx context.Context, db sqlc.DBTX, from, to time.Time) (int64, error) {
	args := m.Called(ctx, db, from, to)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStatsReadStore) PopularLots(ctx context.Context, db sqlc.DBTX, limit int32) ([]*queries.PopularLotView, error) {
	args := m.Called(ctx, db, limit)
	return args.Get(0).([]*queries.PopularLotView), args.Error(1)
}

func (m *MockStatsReadStore) DashboardTotals(ctx context.Context, db sqlc.DBTX, windowStart, dayStart time.Time) (*queries.DashboardView, error) {
	args := m.Called(ctx, db, windowStart, dayStart)
	return args.Get(0).(*queries.DashboardView), args.Error(1)
}

type MockLotReadStore struct {
	mock.Mock
}

func (m *MockLotReadStore) FindLot(ctx context.Context, db sqlc.DBTX, id int64) (*queries.LotView, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(*queries.LotView), args.Error(1)
}

func (m *MockLotReadStore) ListLots(ctx context.Context, db sqlc.DBTX) ([]*queries.LotView, error) {
	args := m.Called(ctx, db)
	return args.Get(0).([]*queries.LotView), args.Error(1)
}

func (m *MockLotReadStore) FindSpot(ctx context.Context, db sqlc.DBTX, id int64) (*queries.SpotView, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(*queries.SpotView), args.Error(1)
}

func (m *MockLotReadStore) ListSpots(ctx context.Context, db sqlc.DBTX, lotID int64) ([]*queries.SpotView, error) {
	args := m.Called(ctx, db, lotID)
	return args.Get(0).([]*queries.SpotView), args.Error(1)
}

func (m *MockLotReadStore) ListSpotDetails(ctx context.Context, db sqlc.DBTX, lotID int64) ([]*queries.SpotDetailView, error) {
	args := m.Called(ctx, db, lotID)
	return args.Get(0).([]*queries.SpotDetailView), args.Error(1)
}

var now = time.Date(2025, 3, 10, 15, 30, 0, 0, time.UTC)

func newStats(stats *MockStatsReadStore, lots *MockLotReadStore) queries.StatsQueries {
	return queries.NewStatsQueries(memstore.New(), stats, lots, clock.NewMockClock(now))
}

func TestStats_Dashboard(t *testing.T) {
	stats := new(MockStatsReadStore)
	dayStart := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	stats.On("DashboardTotals", mock.Anything, mock.Anything, now.Add(-24*time.Hour), dayStart).
		Return(&queries.DashboardView{TotalLots: 2, TotalSpots: 4, OccupiedSpots: 1, AvailableSpots: 3}, nil)
	stats.On("PopularLots", mock.Anything, mock.Anything, int32(1)).
		Return([]*queries.PopularLotView{{LotID: 1, Name: "Main St", ReservationCount: 3}}, nil)

	view, err := newStats(stats, new(MockLotReadStore)).Dashboard(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(3), view.AvailableSpots)
	require.NotNil(t, view.MostPopularLot)
	assert.Equal(t, "Main St", view.MostPopularLot.Name)
	assert.True(t, view.GeneratedAt.Equal(now))
	stats.AssertExpectations(t)
}

func TestStats_DashboardWithoutLots(t *testing.T) {
	stats := new(MockStatsReadStore)
	stats.On("DashboardTotals", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(&queries.DashboardView{}, nil)
	stats.On("PopularLots", mock.Anything, mock.Anything, int32(1)).
		Return([]*queries.PopularLotView{}, nil)

	view, err := newStats(stats, new(MockLotReadStore)).Dashboard(context.Background())

	require.NoError(t, err)
	assert.Nil(t, view.MostPopularLot)
}

func TestStats_PopularLotsLimit(t *testing.T) {
	testCases := []struct {
		name     string
		limit    int
		expected int32
	}{
		{name: "success: zero means default", limit: 0, expected: queries.DefaultPopularLimit},
		{name: "success: explicit limit", limit: 3, expected: 3},
		{name: "success: capped", limit: 1000, expected: queries.MaxPopularLimit},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			stats := new(MockStatsReadStore)
			stats.On("PopularLots", mock.Anything, mock.Anything, tc.expected).Return([]*queries.PopularLotView{}, nil)

			_, err := newStats(stats, new(MockLotReadStore)).PopularLots(context.Background(), tc.limit)

			require.NoError(t, err)
			stats.AssertExpectations(t)
		})
	}

	t.Run("error: negative limit", func(t *testing.T) {
		_, err := newStats(new(MockStatsReadStore), new(MockLotReadStore)).PopularLots(context.Background(), -1)
		assert.ErrorIs(t, err, queries.ErrInvalidPopularLimit)
	})
}

func TestStats_Revenue(t *testing.T) {
	from := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	to := from.Add(48 * time.Hour)

	t.Run("success: window", func(t *testing.T) {
		stats := new(MockStatsReadStore)
		stats.On("RevenueBetween", mock.Anything, mock.Anything, from, to).Return(int64(2500), nil)

		view, err := newStats(stats, new(MockLotReadStore)).RevenueBetween(context.Background(), from, to)

		require.NoError(t, err)
		assert.Equal(t, int64(2500), view.RevenueCents)
		require.NotNil(t, view.To)
		assert.True(t, view.To.Equal(to))
	})

	t.Run("error: empty window", func(t *testing.T) {
		_, err := newStats(new(MockStatsReadStore), new(MockLotReadStore)).RevenueBetween(context.Background(), to, from)
		assert.ErrorIs(t, err, queries.ErrInvalidWindow)
	})

	t.Run("success: since", func(t *testing.T) {
		stats := new(MockStatsReadStore)
		stats.On("RevenueSince", mock.Anything, mock.Anything, from).Return(int64(0), nil)

		view, err := newStats(stats, new(MockLotReadStore)).RevenueSince(context.Background(), from)

		require.NoError(t, err)
		assert.Zero(t, view.RevenueCents)
		assert.Nil(t, view.To)
	})
}

func TestStats_Occupancy(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		stats := new(MockStatsReadStore)
		lots := new(MockLotReadStore)
		lots.On("FindLot", mock.Anything, mock.Anything, int64(1)).Return(&queries.LotView{ID: 1}, nil)
		stats.On("Occupancy", mock.Anything, mock.Anything, int64(1)).Return(&queries.OccupancyView{LotID: 1, Available: 1, Occupied: 1}, nil)

		view, err := newStats(stats, lots).Occupancy(context.Background(), 1)

		require.NoError(t, err)
		assert.Equal(t, 2, view.Available+view.Occupied)
	})

	t.Run("error: unknown lot", func(t *testing.T) {
		lots := new(MockLotReadStore)
		lots.On("FindLot", mock.Anything, mock.Anything, int64(9)).
			Return((*queries.LotView)(nil), infra.WrapRepoErr("lot not found", nil, infra.KindNotFound))

		_, err := newStats(new(MockStatsReadStore), lots).Occupancy(context.Background(), 9)

		assert.ErrorIs(t, err, queries.ErrLotNotFound)
	})
}
