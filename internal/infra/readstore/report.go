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

type ReportReadQueries interface {
	ListInactiveUsers(ctx context.Context, db sqlc.DBTX, startedAt pgtype.Timestamptz) ([]sqlc.ListInactiveUsersRow, error)
	ListReservationsInPeriod(ctx context.Context, db sqlc.DBTX, arg sqlc.ListReservationsInPeriodParams) ([]sqlc.ListReservationsInPeriodRow, error)
}

// ReportReadStore backs the notifier process. It only issues SELECTs.
type ReportReadStore struct {
	queries ReportReadQueries
	db      sqlc.DBTX
}

func NewReportReadStore(queries ReportReadQueries, db sqlc.DBTX) *ReportReadStore {
	return &ReportReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ReportReadStore) InactiveUsers(ctx context.Context, since time.Time) ([]*queries.InactiveUserView, error) {
	rows, err := r.queries.ListInactiveUsers(ctx, r.db, pgconv.TimeToPgtype(since))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list inactive users", err)
	}
	views := make([]*queries.InactiveUserView, len(rows))
	for i, row := range rows {
		views[i] = &queries.InactiveUserView{
			ID:       row.ID,
			Email:    row.Email,
			FullName: row.FullName,
			Phone:    pgconv.StringPtrFromPgtype(row.Phone),
		}
	}
	return views, nil
}

func (r *ReportReadStore) ReservationsInPeriod(ctx context.Context, from, to time.Time) ([]*queries.PeriodReservationView, error) {
	rows, err := r.queries.ListReservationsInPeriod(ctx, r.db, sqlc.ListReservationsInPeriodParams{
		FromTs: pgconv.TimeToPgtype(from),
		ToTs:   pgconv.TimeToPgtype(to),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations in period", err)
	}
	views := make([]*queries.PeriodReservationView, len(rows))
	for i, row := range rows {
		views[i] = &queries.PeriodReservationView{
			ID:           row.ID,
			UserID:       row.UserID,
			UserEmail:    row.UserEmail,
			UserFullName: row.UserFullName,
			LotID:        row.LotID,
			LotName:      row.LotName,
			StartedAt:    pgconv.TimeFromPgtype(row.StartedAt),
			EndedAt:      pgconv.TimePtrFromPgtype(row.EndedAt),
			CostCents:    pgconv.Int64PtrFromPgtype(row.CostCents),
		}
	}
	return views, nil
}
