package repository

import (
	"context"
	"time"

	"parkbuddy/internal/domain/spot"
	"parkbuddy/internal/infra"
	"parkbuddy/internal/infra/repository/converter"
	sqlc "parkbuddy/internal/infra/sqlc/generated"
	"parkbuddy/internal/pkg/errs"
	"parkbuddy/internal/pkg/pgconv"
	"parkbuddy/internal/usecase/shared"
)

type SpotWriteQueries interface {
	ClaimAvailableSpot(ctx context.Context, db sqlc.DBTX, arg sqlc.ClaimAvailableSpotParams) (sqlc.Spots, error)
	ReleaseSpot(ctx context.Context, db sqlc.DBTX, arg sqlc.ReleaseSpotParams) (int64, error)
	GetSpotForUpdate(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Spots, error)
	CountOccupiedSpotsByLot(ctx context.Context, db sqlc.DBTX, lotID int64) (int64, error)
	CreateSpots(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateSpotsParams) (int64, error)
	RetireFreeSpots(ctx context.Context, db sqlc.DBTX, arg sqlc.RetireFreeSpotsParams) (int64, error)
	RetireSpot(ctx context.Context, db sqlc.DBTX, arg sqlc.RetireSpotParams) (int64, error)
}

type SpotRepository struct {
	queries SpotWriteQueries
	db      sqlc.DBTX
}

func NewSpotRepository(queries SpotWriteQueries, db sqlc.DBTX) *SpotRepository {
	return &SpotRepository{
		queries: queries,
		db:      db,
	}
}

// ClaimAvailable is the compare-and-swap of the allocation protocol: one
// statement selects the lowest-id available spot, skipping rows another
// transaction is claiming, and flips it to Occupied.
func (r *SpotRepository) ClaimAvailable(ctx context.Context, lotID int64, now time.Time) (*spot.Spot, error) {
	row, err := r.queries.ClaimAvailableSpot(ctx, r.db, sqlc.ClaimAvailableSpotParams{
		LotID:     lotID,
		UpdatedAt: pgconv.TimeToPgtype(now),
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("no available spot", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to claim spot", err)
	}
	return toSpot(row)
}

func (r *SpotRepository) Vacate(ctx context.Context, spotID int64, now time.Time) error {
	affected, err := r.queries.ReleaseSpot(ctx, r.db, sqlc.ReleaseSpotParams{
		ID:        spotID,
		UpdatedAt: pgconv.TimeToPgtype(now),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to release spot", err)
	}
	if affected == 0 {
		return errs.Mark(infra.WrapRepoErr("spot is not occupied", nil, infra.KindConflict), shared.ErrSpotNotOccupied)
	}
	return nil
}

func (r *SpotRepository) FindForUpdate(ctx context.Context, id int64) (*spot.Spot, error) {
	row, err := r.queries.GetSpotForUpdate(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("spot not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock spot", err)
	}
	return toSpot(row)
}

func (r *SpotRepository) CountOccupied(ctx context.Context, lotID int64) (int, error) {
	n, err := r.queries.CountOccupiedSpotsByLot(ctx, r.db, lotID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count occupied spots", err)
	}
	return int(n), nil
}

func (r *SpotRepository) Add(ctx context.Context, lotID int64, n int, now time.Time) error {
	if n <= 0 {
		return nil
	}
	_, err := r.queries.CreateSpots(ctx, r.db, sqlc.CreateSpotsParams{
		LotID: lotID,
		Now:   pgconv.TimeToPgtype(now),
		Count: int32(n), // #nosec G115 -- bounded by lot.MaxSpotCount
	})
	if err != nil {
		return infra.WrapRepoErr("failed to create spots", err)
	}
	return nil
}

func (r *SpotRepository) RetireFree(ctx context.Context, lotID int64, n int, now time.Time) (int, error) {
	if n <= 0 {
		return 0, nil
	}
	affected, err := r.queries.RetireFreeSpots(ctx, r.db, sqlc.RetireFreeSpotsParams{
		Now:   pgconv.TimeToPgtype(now),
		LotID: lotID,
		Count: int32(n), // #nosec G115 -- bounded by lot.MaxSpotCount
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to retire spots", err)
	}
	return int(affected), nil
}

func (r *SpotRepository) Retire(ctx context.Context, spotID int64, now time.Time) error {
	affected, err := r.queries.RetireSpot(ctx, r.db, sqlc.RetireSpotParams{
		ID:        spotID,
		RetiredAt: pgconv.TimeToPgtype(now),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to retire spot", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("spot is in use", nil, infra.KindConflict)
	}
	return nil
}

func toSpot(row sqlc.Spots) (*spot.Spot, error) {
	s, err := converter.SpotFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("stored spot is invalid", err, infra.KindDBFailure)
	}
	return s, nil
}
