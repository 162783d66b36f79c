package queries

import (
	"context"

	"parkbuddy/internal/infra"
	sqlc "parkbuddy/internal/infra/sqlc/generated"
	"parkbuddy/internal/usecase/shared"
)

type LotReadStore interface {
	FindLot(ctx context.Context, db sqlc.DBTX, id int64) (*LotView, error)
	ListLots(ctx context.Context, db sqlc.DBTX) ([]*LotView, error)
	FindSpot(ctx context.Context, db sqlc.DBTX, id int64) (*SpotView, error)
	ListSpots(ctx context.Context, db sqlc.DBTX, lotID int64) ([]*SpotView, error)
	ListSpotDetails(ctx context.Context, db sqlc.DBTX, lotID int64) ([]*SpotDetailView, error)
}

// LotQueries is the read side of the spot registry.
type LotQueries interface {
	GetLot(ctx context.Context, lotID int64) (*LotView, error)
	ListLots(ctx context.Context) ([]*LotView, error)
	SpotStatus(ctx context.Context, spotID int64) (*SpotView, error)
	SpotsOf(ctx context.Context, lotID int64) ([]*SpotView, error)
	LotDetails(ctx context.Context, lotID int64) (*LotDetailsView, error)
}

type lotQueriesImpl struct {
	uow   shared.UnitOfWork
	store LotReadStore
}

func NewLotQueries(uow shared.UnitOfWork, store LotReadStore) LotQueries {
	return &lotQueriesImpl{uow: uow, store: store}
}

func (q *lotQueriesImpl) GetLot(ctx context.Context, lotID int64) (*LotView, error) {
	var view *LotView
	err := q.uow.WithDB(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		var err error
		view, err = q.store.FindLot(ctx, db, lotID)
		return err
	})
	if err != nil {
		return nil, mapNotFound(err, ErrLotNotFound)
	}
	return view, nil
}

func (q *lotQueriesImpl) ListLots(ctx context.Context) ([]*LotView, error) {
	var views []*LotView
	err := q.uow.WithDB(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		var err error
		views, err = q.store.ListLots(ctx, db)
		return err
	})
	return views, err
}

func (q *lotQueriesImpl) SpotStatus(ctx context.Context, spotID int64) (*SpotView, error) {
	var view *SpotView
	err := q.uow.WithDB(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		var err error
		view, err = q.store.FindSpot(ctx, db, spotID)
		return err
	})
	if err != nil {
		return nil, mapNotFound(err, ErrSpotNotFound)
	}
	return view, nil
}

func (q *lotQueriesImpl) SpotsOf(ctx context.Context, lotID int64) ([]*SpotView, error) {
	var spots []*SpotView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		if _, err := q.store.FindLot(ctx, db, lotID); err != nil {
			return err
		}
		var err error
		spots, err = q.store.ListSpots(ctx, db, lotID)
		return err
	})
	if err != nil {
		return nil, mapNotFound(err, ErrLotNotFound)
	}
	return spots, nil
}

func (q *lotQueriesImpl) LotDetails(ctx context.Context, lotID int64) (*LotDetailsView, error) {
	var details LotDetailsView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		l, err := q.store.FindLot(ctx, db, lotID)
		if err != nil {
			return err
		}
		spots, err := q.store.ListSpotDetails(ctx, db, lotID)
		if err != nil {
			return err
		}
		details = LotDetailsView{Lot: *l, Spots: spots}
		return nil
	})
	if err != nil {
		return nil, mapNotFound(err, ErrLotNotFound)
	}
	return &details, nil
}

func mapNotFound(err, sentinel error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return sentinel
	}
	return err
}
