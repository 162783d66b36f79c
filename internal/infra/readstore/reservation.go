package readstore

import (
	"context"
	"time"

	"parkbuddy/internal/infra"
	sqlc "parkbuddy/internal/infra/sqlc/generated"
	"parkbuddy/internal/pkg/pgconv"
	"parkbuddy/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ReservationViewQueries interface {
	ListReservationsByUserFirstPage(ctx context.Context, db sqlc.DBTX, arg sqlc.ListReservationsByUserFirstPageParams) ([]sqlc.ListReservationsByUserFirstPageRow, error)
	ListReservationsByUserKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.ListReservationsByUserKeysetParams) ([]sqlc.ListReservationsByUserKeysetRow, error)
	ListAllReservationsByUser(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) ([]sqlc.ListAllReservationsByUserRow, error)
	ListActiveReservationsByUser(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) ([]sqlc.ListActiveReservationsByUserRow, error)
}

type ReservationReadStore struct {
	queries ReservationViewQueries
	db      sqlc.DBTX
}

func NewReservationReadStore(queries ReservationViewQueries, db sqlc.DBTX) *ReservationReadStore {
	return &ReservationReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationReadStore) FindByUserFirstPage(ctx context.Context, userID uuid.UUID, limit int32) ([]*queries.ReservationListItem, error) {
	rows, err := r.queries.ListReservationsByUserFirstPage(ctx, r.db, sqlc.ListReservationsByUserFirstPageParams{
		UserID: userID,
		Limit:  limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get reservations first page by user", err)
	}
	items := make([]*queries.ReservationListItem, len(rows))
	for i, row := range rows {
		items[i] = toReservationListItem(row.ID, row.SpotID, row.LotID, row.LotName, row.StartedAt, row.EndedAt, row.CostCents)
	}
	return items, nil
}

func (r *ReservationReadStore) FindByUserKeyset(ctx context.Context, userID uuid.UUID, lastStartedAt time.Time, lastID int64, limit int32) ([]*queries.ReservationListItem, error) {
	rows, err := r.queries.ListReservationsByUserKeyset(ctx, r.db, sqlc.ListReservationsByUserKeysetParams{
		UserID:        userID,
		LastStartedAt: pgconv.TimeToPgtype(lastStartedAt),
		LastID:        lastID,
		RowLimit:      limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get reservations keyset by user", err)
	}
	items := make([]*queries.ReservationListItem, len(rows))
	for i, row := range rows {
		items[i] = toReservationListItem(row.ID, row.SpotID, row.LotID, row.LotName, row.StartedAt, row.EndedAt, row.CostCents)
	}
	return items, nil
}

func (r *ReservationReadStore) FindAllByUser(ctx context.Context, userID uuid.UUID) ([]*queries.ReservationListItem, error) {
	rows, err := r.queries.ListAllReservationsByUser(ctx, r.db, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations by user", err)
	}
	items := make([]*queries.ReservationListItem, len(rows))
	for i, row := range rows {
		items[i] = toReservationListItem(row.ID, row.SpotID, row.LotID, row.LotName, row.StartedAt, row.EndedAt, row.CostCents)
	}
	return items, nil
}

func (r *ReservationReadStore) FindActiveByUser(ctx context.Context, userID uuid.UUID) ([]*queries.ActiveReservationView, error) {
	rows, err := r.queries.ListActiveReservationsByUser(ctx, r.db, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list active reservations by user", err)
	}
	views := make([]*queries.ActiveReservationView, len(rows))
	for i, row := range rows {
		views[i] = &queries.ActiveReservationView{
			ID:              row.ID,
			SpotID:          row.SpotID,
			LotID:           row.LotID,
			LotName:         row.LotName,
			HourlyRateCents: row.HourlyRateCents,
			StartedAt:       pgconv.TimeFromPgtype(row.StartedAt),
		}
	}
	return views, nil
}

func toReservationListItem(id, spotID, lotID int64, lotName string, startedAt, endedAt pgtype.Timestamptz, cost pgtype.Int8) *queries.ReservationListItem {
	return &queries.ReservationListItem{
		ID:        id,
		SpotID:    spotID,
		LotID:     lotID,
		LotName:   lotName,
		StartedAt: pgconv.TimeFromPgtype(startedAt),
		EndedAt:   pgconv.TimePtrFromPgtype(endedAt),
		CostCents: pgconv.Int64PtrFromPgtype(cost),
	}
}
