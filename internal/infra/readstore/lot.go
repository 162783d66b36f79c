package readstore

import (
	"context"

	"parkbuddy/internal/domain/spot"
	"parkbuddy/internal/infra"
	sqlc "parkbuddy/internal/infra/sqlc/generated"
	"parkbuddy/internal/pkg/pgconv"
	"parkbuddy/internal/usecase/queries"
)

type LotReadQueries interface {
	GetLotByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Lots, error)
	ListLots(ctx context.Context, db sqlc.DBTX) ([]sqlc.Lots, error)
	GetSpotByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Spots, error)
	ListSpotsByLot(ctx context.Context, db sqlc.DBTX, lotID int64) ([]sqlc.Spots, error)
	ListLotSpotDetails(ctx context.Context, db sqlc.DBTX, lotID int64) ([]sqlc.ListLotSpotDetailsRow, error)
}

type LotReadStore struct {
	queries LotReadQueries
}

func NewLotReadStore(queries LotReadQueries) *LotReadStore {
	return &LotReadStore{
		queries: queries,
	}
}

func (r *LotReadStore) FindLot(ctx context.Context, db sqlc.DBTX, id int64) (*queries.LotView, error) {
	row, err := r.queries.GetLotByID(ctx, db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("lot not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find lot by ID", err)
	}
	return toLotView(row), nil
}

func (r *LotReadStore) ListLots(ctx context.Context, db sqlc.DBTX) ([]*queries.LotView, error) {
	rows, err := r.queries.ListLots(ctx, db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list lots", err)
	}
	views := make([]*queries.LotView, len(rows))
	for i, row := range rows {
		views[i] = toLotView(row)
	}
	return views, nil
}

func (r *LotReadStore) FindSpot(ctx context.Context, db sqlc.DBTX, id int64) (*queries.SpotView, error) {
	row, err := r.queries.GetSpotByID(ctx, db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("spot not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find spot by ID", err)
	}
	return toSpotView(row), nil
}

func (r *LotReadStore) ListSpots(ctx context.Context, db sqlc.DBTX, lotID int64) ([]*queries.SpotView, error) {
	rows, err := r.queries.ListSpotsByLot(ctx, db, lotID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list spots by lot", err)
	}
	views := make([]*queries.SpotView, len(rows))
	for i, row := range rows {
		views[i] = toSpotView(row)
	}
	return views, nil
}

func (r *LotReadStore) ListSpotDetails(ctx context.Context, db sqlc.DBTX, lotID int64) ([]*queries.SpotDetailView, error) {
	rows, err := r.queries.ListLotSpotDetails(ctx, db, lotID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list spot details by lot", err)
	}
	views := make([]*queries.SpotDetailView, len(rows))
	for i, row := range rows {
		views[i] = &queries.SpotDetailView{
			SpotID:        row.SpotID,
			Status:        statusLabel(row.Status),
			ReservationID: pgconv.Int64PtrFromPgtype(row.ReservationID),
			OccupantEmail: pgconv.StringPtrFromPgtype(row.UserEmail),
			OccupiedSince: pgconv.TimePtrFromPgtype(row.StartedAt),
		}
	}
	return views, nil
}

func toLotView(row sqlc.Lots) *queries.LotView {
	return &queries.LotView{
		ID:              row.ID,
		Name:            row.Name,
		Address:         row.Address,
		PinCode:         row.PinCode,
		HourlyRateCents: row.HourlyRateCents,
		SpotCount:       int(row.SpotCount),
		CreatedAt:       pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:       pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}

func toSpotView(row sqlc.Spots) *queries.SpotView {
	return &queries.SpotView{
		ID:     row.ID,
		LotID:  row.LotID,
		Status: statusLabel(row.Status),
	}
}

// statusLabel maps the stored one-letter code to its API label. Unknown
// codes pass through untouched.
func statusLabel(code string) string {
	s, err := spot.NewStatus(code)
	if err != nil {
		return code
	}
	return s.Label()
}
