package queries

import (
	"context"
	"time"

	sqlc "parkbuddy/internal/infra/sqlc/generated"
	"parkbuddy/internal/pkg/clock"
	"parkbuddy/internal/usecase/shared"
)

const (
	DefaultPopularLimit = 5
	MaxPopularLimit     = 100
	recentWindow        = 24 * time.Hour
)

type StatsReadStore interface {
	Occupancy(ctx context.Context, db sqlc.DBTX, lotID int64) (*OccupancyView, error)
	ListOccupancy(ctx context.Context, db sqlc.DBTX) ([]*LotOccupancyView, error)
	RevenueSince(ctx context.Context, db sqlc.DBTX, since time.Time) (int64, error)
	RevenueBetween(ctx context.Context, db sqlc.DBTX, from, to time.Time) (int64, error)
	PopularLots(ctx context.Context, db sqlc.DBTX, limit int32) ([]*PopularLotView, error)
	DashboardTotals(ctx context.Context, db sqlc.DBTX, windowStart, dayStart time.Time) (*DashboardView, error)
}

// StatsQueries is the aggregation reader. Every method is read-only and
// multi-statement reads share one snapshot.
type StatsQueries interface {
	Occupancy(ctx context.Context, lotID int64) (*OccupancyView, error)
	OccupancyAll(ctx context.Context) ([]*LotOccupancyView, error)
	RevenueSince(ctx context.Context, since time.Time) (*RevenueView, error)
	RevenueBetween(ctx context.Context, from, to time.Time) (*RevenueView, error)
	PopularLots(ctx context.Context, limit int) ([]*PopularLotView, error)
	Dashboard(ctx context.Context) (*DashboardView, error)
}

type statsQueriesImpl struct {
	uow   shared.UnitOfWork
	stats StatsReadStore
	lots  LotReadStore
	clock clock.Clock
}

func NewStatsQueries(uow shared.UnitOfWork, stats StatsReadStore, lots LotReadStore, clk clock.Clock) StatsQueries {
	return &statsQueriesImpl{
		uow:   uow,
		stats: stats,
		lots:  lots,
		clock: clk,
	}
}

func (q *statsQueriesImpl) Occupancy(ctx context.Context, lotID int64) (*OccupancyView, error) {
	var view *OccupancyView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		if _, err := q.lots.FindLot(ctx, db, lotID); err != nil {
			return err
		}
		var err error
		view, err = q.stats.Occupancy(ctx, db, lotID)
		return err
	})
	if err != nil {
		return nil, mapNotFound(err, ErrLotNotFound)
	}
	return view, nil
}

func (q *statsQueriesImpl) OccupancyAll(ctx context.Context) ([]*LotOccupancyView, error) {
	var views []*LotOccupancyView
	err := q.uow.WithDB(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		var err error
		views, err = q.stats.ListOccupancy(ctx, db)
		return err
	})
	return views, err
}

func (q *statsQueriesImpl) RevenueSince(ctx context.Context, since time.Time) (*RevenueView, error) {
	var cents int64
	err := q.uow.WithDB(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		var err error
		cents, err = q.stats.RevenueSince(ctx, db, since)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &RevenueView{From: since, RevenueCents: cents}, nil
}

func (q *statsQueriesImpl) RevenueBetween(ctx context.Context, from, to time.Time) (*RevenueView, error) {
	if !from.Before(to) {
		return nil, ErrInvalidWindow
	}
	var cents int64
	err := q.uow.WithDB(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		var err error
		cents, err = q.stats.RevenueBetween(ctx, db, from, to)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &RevenueView{From: from, To: &to, RevenueCents: cents}, nil
}

func (q *statsQueriesImpl) PopularLots(ctx context.Context, limit int) ([]*PopularLotView, error) {
	if limit < 0 {
		return nil, ErrInvalidPopularLimit
	}
	limit = validatePopularLimit(limit)

	var views []*PopularLotView
	err := q.uow.WithDB(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		var err error
		views, err = q.stats.PopularLots(ctx, db, int32(limit)) // #nosec G115 -- capped at MaxPopularLimit
		return err
	})
	return views, err
}

// Dashboard reads every figure from one snapshot. "Today" starts at UTC midnight.
func (q *statsQueriesImpl) Dashboard(ctx context.Context) (*DashboardView, error) {
	now := q.clock.Now().UTC()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	var view *DashboardView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		totals, err := q.stats.DashboardTotals(ctx, db, now.Add(-recentWindow), dayStart)
		if err != nil {
			return err
		}
		top, err := q.stats.PopularLots(ctx, db, 1)
		if err != nil {
			return err
		}
		if len(top) > 0 {
			totals.MostPopularLot = top[0]
		}
		view = totals
		return nil
	})
	if err != nil {
		return nil, err
	}
	view.GeneratedAt = now
	return view, nil
}

func validatePopularLimit(limit int) int {
	if limit == 0 {
		return DefaultPopularLimit
	}
	if limit > MaxPopularLimit {
		return MaxPopularLimit
	}
	return limit
}
