package queries

import (
	"context"
	"log/slog"
	"strconv"
	"time"
)

// StatsCache stores JSON-encodable views under a key with a fixed TTL.
type StatsCache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, value any) error
}

const (
	cacheKeyDashboard    = "dashboard"
	cacheKeyOccupancyAll = "occupancy:all"
	cacheKeyPopularLots  = "popular:"
)

// cachedStatsQueries serves dashboard, popular lots and lot occupancy
// listings from the cache. Any cache failure falls through to the store.
type cachedStatsQueries struct {
	StatsQueries
	cache StatsCache
}

func NewCachedStatsQueries(inner StatsQueries, cache StatsCache) StatsQueries {
	return &cachedStatsQueries{StatsQueries: inner, cache: cache}
}

func (q *cachedStatsQueries) Dashboard(ctx context.Context) (*DashboardView, error) {
	return readThrough(ctx, q.cache, cacheKeyDashboard, func() (*DashboardView, error) {
		return q.StatsQueries.Dashboard(ctx)
	})
}

func (q *cachedStatsQueries) OccupancyAll(ctx context.Context) ([]*LotOccupancyView, error) {
	views, err := readThrough(ctx, q.cache, cacheKeyOccupancyAll, func() (*[]*LotOccupancyView, error) {
		v, err := q.StatsQueries.OccupancyAll(ctx)
		return &v, err
	})
	if err != nil {
		return nil, err
	}
	return *views, nil
}

func (q *cachedStatsQueries) PopularLots(ctx context.Context, limit int) ([]*PopularLotView, error) {
	if limit < 0 {
		return nil, ErrInvalidPopularLimit
	}
	limit = validatePopularLimit(limit)
	views, err := readThrough(ctx, q.cache, cacheKeyPopularLots+strconv.Itoa(limit), func() (*[]*PopularLotView, error) {
		v, err := q.StatsQueries.PopularLots(ctx, limit)
		return &v, err
	})
	if err != nil {
		return nil, err
	}
	return *views, nil
}

func readThrough[T any](ctx context.Context, cache StatsCache, key string, load func() (*T, error)) (*T, error) {
	var cached T
	hit, err := cache.Get(ctx, key, &cached)
	if err != nil {
		slog.WarnContext(ctx, "stats cache read failed", "key", key, "error", err.Error())
	}
	if hit {
		return &cached, nil
	}

	began := time.Now()
	v, err := load()
	if err != nil {
		return nil, err
	}
	if err := cache.Set(ctx, key, v); err != nil {
		slog.WarnContext(ctx, "stats cache write failed", "key", key, "error", err.Error())
	}
	slog.DebugContext(ctx, "stats cache filled", "key", key, "load_ms", time.Since(began).Milliseconds())
	return v, nil
}
