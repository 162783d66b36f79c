package repository

import (
	"context"
	"time"

	"parkbuddy/internal/domain/lot"
	"parkbuddy/internal/infra"
	"parkbuddy/internal/infra/repository/converter"
	sqlc "parkbuddy/internal/infra/sqlc/generated"
	"parkbuddy/internal/pkg/pgconv"
)

type LotWriteQueries interface {
	CreateLot(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateLotParams) (sqlc.Lots, error)
	GetLotForShare(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Lots, error)
	GetLotForUpdate(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Lots, error)
	UpdateLot(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateLotParams) (int64, error)
	DeleteLot(ctx context.Context, db sqlc.DBTX, id int64) (int64, error)
}

type LotRepository struct {
	queries LotWriteQueries
	db      sqlc.DBTX
}

func NewLotRepository(queries LotWriteQueries, db sqlc.DBTX) *LotRepository {
	return &LotRepository{
		queries: queries,
		db:      db,
	}
}

func (r *LotRepository) Create(ctx context.Context, l *lot.Lot, now time.Time) (int64, error) {
	row, err := r.queries.CreateLot(ctx, r.db, converter.LotToCreateParams(l, now))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create lot", err)
	}
	return row.ID, nil
}

// FindForShare blocks concurrent resize and delete of the lot until commit.
func (r *LotRepository) FindForShare(ctx context.Context, id int64) (*lot.Lot, error) {
	row, err := r.queries.GetLotForShare(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("lot not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock lot for share", err)
	}
	return toLot(row)
}

func (r *LotRepository) FindForUpdate(ctx context.Context, id int64) (*lot.Lot, error) {
	row, err := r.queries.GetLotForUpdate(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("lot not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock lot for update", err)
	}
	return toLot(row)
}

func (r *LotRepository) Update(ctx context.Context, l *lot.Lot, now time.Time) error {
	affected, err := r.queries.UpdateLot(ctx, r.db, converter.LotToUpdateParams(l, now))
	if err != nil {
		return infra.WrapRepoErr("failed to update lot", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("lot not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *LotRepository) Delete(ctx context.Context, id int64) error {
	affected, err := r.queries.DeleteLot(ctx, r.db, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete lot", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("lot not found", nil, infra.KindNotFound)
	}
	return nil
}

func toLot(row sqlc.Lots) (*lot.Lot, error) {
	l, err := converter.LotFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("stored lot is invalid", err, infra.KindDBFailure)
	}
	return l, nil
}
