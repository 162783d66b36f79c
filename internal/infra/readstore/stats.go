package readstore

import (
	"context"
	"time"

	"parkbuddy/internal/infra"
	sqlc "parkbuddy/internal/infra/sqlc/generated"
	"parkbuddy/internal/pkg/pgconv"
	"parkbuddy/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

type StatsReadQueries interface {
	GetLotOccupancy(ctx context.Context, db sqlc.DBTX, lotID int64) (sqlc.GetLotOccupancyRow, error)
	ListLotOccupancy(ctx context.Context, db sqlc.DBTX) ([]sqlc.ListLotOccupancyRow, error)
	SumRevenueSince(ctx context.Context, db sqlc.DBTX, endedAt pgtype.Timestamptz) (int64, error)
	SumRevenueBetween(ctx context.Context, db sqlc.DBTX, arg sqlc.SumRevenueBetweenParams) (int64, error)
	ListPopularLots(ctx context.Context, db sqlc.DBTX, limit int32) ([]sqlc.ListPopularLotsRow, error)
	GetDashboardTotals(ctx context.Context, db sqlc.DBTX, arg sqlc.GetDashboardTotalsParams) (sqlc.GetDashboardTotalsRow, error)
}

type StatsReadStore struct {
	queries StatsReadQueries
}

func NewStatsReadStore(queries StatsReadQueries) *StatsReadStore {
	return &StatsReadStore{
		queries: queries,
	}
}

func (r *StatsReadStore) Occupancy(ctx context.Context, db sqlc.DBTX, lotID int64) (*queries.OccupancyView, error) {
	row, err := r.queries.GetLotOccupancy(ctx, db, lotID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get lot occupancy", err)
	}
	return &queries.OccupancyView{
		LotID:     lotID,
		Available: int(row.Available),
		Occupied:  int(row.Occupied),
	}, nil
}

func (r *StatsReadStore) ListOccupancy(ctx context.Context, db sqlc.DBTX) ([]*queries.LotOccupancyView, error) {
	rows, err := r.queries.ListLotOccupancy(ctx, db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list lot occupancy", err)
	}
	views := make([]*queries.LotOccupancyView, len(rows))
	for i, row := range rows {
		views[i] = &queries.LotOccupancyView{
			ID:              row.ID,
			Name:            row.Name,
			Address:         row.Address,
			HourlyRateCents: row.HourlyRateCents,
			Available:       int(row.Available),
			Occupied:        int(row.Occupied),
		}
	}
	return views, nil
}

func (r *StatsReadStore) RevenueSince(ctx context.Context, db sqlc.DBTX, since time.Time) (int64, error) {
	cents, err := r.queries.SumRevenueSince(ctx, db, pgconv.TimeToPgtype(since))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to sum revenue", err)
	}
	return cents, nil
}

func (r *StatsReadStore) RevenueBetween(ctx context.Context, db sqlc.DBTX, from, to time.Time) (int64, error) {
	cents, err := r.queries.SumRevenueBetween(ctx, db, sqlc.SumRevenueBetweenParams{
		FromTs: pgconv.TimeToPgtype(from),
		ToTs:   pgconv.TimeToPgtype(to),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to sum revenue in window", err)
	}
	return cents, nil
}

func (r *StatsReadStore) PopularLots(ctx context.Context, db sqlc.DBTX, limit int32) ([]*queries.PopularLotView, error) {
	rows, err := r.queries.ListPopularLots(ctx, db, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list popular lots", err)
	}
	views := make([]*queries.PopularLotView, len(rows))
	for i, row := range rows {
		views[i] = &queries.PopularLotView{
			LotID:            row.LotID,
			Name:             row.Name,
			ReservationCount: row.ReservationCount,
		}
	}
	return views, nil
}

func (r *StatsReadStore) DashboardTotals(ctx context.Context, db sqlc.DBTX, windowStart, dayStart time.Time) (*queries.DashboardView, error) {
	row, err := r.queries.GetDashboardTotals(ctx, db, sqlc.GetDashboardTotalsParams{
		WindowStart: pgconv.TimeToPgtype(windowStart),
		DayStart:    pgconv.TimeToPgtype(dayStart),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get dashboard totals", err)
	}
	return &queries.DashboardView{
		TotalLots:          row.TotalLots,
		TotalSpots:         row.TotalSpots,
		OccupiedSpots:      row.OccupiedSpots,
		AvailableSpots:     row.TotalSpots - row.OccupiedSpots,
		TotalUsers:         row.TotalUsers,
		RecentReservations: row.RecentReservations,
		RevenueTodayCents:  row.RevenueTodayCents,
	}, nil
}
