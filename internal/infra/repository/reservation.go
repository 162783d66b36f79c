package repository

import (
	"context"

	"parkbuddy/internal/domain/reservation"
	"parkbuddy/internal/infra"
	"parkbuddy/internal/infra/repository/converter"
	sqlc "parkbuddy/internal/infra/sqlc/generated"
	"parkbuddy/internal/pkg/errs"
	"parkbuddy/internal/pkg/pgconv"
	"parkbuddy/internal/usecase/shared"
)

type ReservationWriteQueries interface {
	CreateReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateReservationParams) (sqlc.Reservations, error)
	GetReservationForUpdate(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.GetReservationForUpdateRow, error)
	CloseReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.CloseReservationParams) (int64, error)
	CountOpenReservationsByLot(ctx context.Context, db sqlc.DBTX, lotID int64) (int64, error)
	HasOpenReservationOnSpot(ctx context.Context, db sqlc.DBTX, spotID int64) (bool, error)
}

type ReservationRepository struct {
	queries ReservationWriteQueries
	db      sqlc.DBTX
}

func NewReservationRepository(queries ReservationWriteQueries, db sqlc.DBTX) *ReservationRepository {
	return &ReservationRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationRepository) Create(ctx context.Context, res *reservation.Reservation) (*reservation.Reservation, error) {
	row, err := r.queries.CreateReservation(ctx, r.db, sqlc.CreateReservationParams{
		SpotID:    res.SpotID(),
		UserID:    res.UserID(),
		StartedAt: converter.StartedAt(res),
	})
	if err != nil {
		if pgconv.ErrorCode(err) == pgconv.CodeUniqueViolation {
			return nil, infra.WrapRepoErr("spot already has an open reservation", err, infra.KindConflict)
		}
		return nil, infra.WrapRepoErr("failed to create reservation", err)
	}

	created, err := converter.ReservationFromColumns(row.ID, row.SpotID, row.UserID, row.StartedAt, row.EndedAt, row.CostCents)
	if err != nil {
		return nil, infra.WrapRepoErr("stored reservation is invalid", err, infra.KindDBFailure)
	}
	return created, nil
}

// FindForRelease locks the reservation row, serialising concurrent releases.
func (r *ReservationRepository) FindForRelease(ctx context.Context, id int64) (*shared.ReleaseTarget, error) {
	row, err := r.queries.GetReservationForUpdate(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock reservation", err)
	}

	res, err := converter.ReservationFromColumns(row.ID, row.SpotID, row.UserID, row.StartedAt, row.EndedAt, row.CostCents)
	if err != nil {
		return nil, infra.WrapRepoErr("stored reservation is invalid", err, infra.KindDBFailure)
	}
	rate, err := reservation.NewMoney(row.HourlyRateCents)
	if err != nil {
		return nil, infra.WrapRepoErr("stored hourly rate is invalid", err, infra.KindDBFailure)
	}

	return &shared.ReleaseTarget{
		Reservation: res,
		LotID:       row.LotID,
		HourlyRate:  rate,
	}, nil
}

// Close persists end and cost. Zero affected rows means another transaction
// closed it first.
func (r *ReservationRepository) Close(ctx context.Context, res *reservation.Reservation) error {
	affected, err := r.queries.CloseReservation(ctx, r.db, sqlc.CloseReservationParams{
		ID:        res.ID(),
		EndedAt:   converter.ClosedAt(res),
		CostCents: converter.CostCents(res),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to close reservation", err)
	}
	if affected == 0 {
		return errs.Mark(infra.WrapRepoErr("reservation already closed", nil, infra.KindConflict), shared.ErrReservationAlreadyClosed)
	}
	return nil
}

func (r *ReservationRepository) CountOpenByLot(ctx context.Context, lotID int64) (int, error) {
	n, err := r.queries.CountOpenReservationsByLot(ctx, r.db, lotID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count open reservations", err)
	}
	return int(n), nil
}

func (r *ReservationRepository) HasOpenOnSpot(ctx context.Context, spotID int64) (bool, error) {
	ok, err := r.queries.HasOpenReservationOnSpot(ctx, r.db, spotID)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check open reservation", err)
	}
	return ok, nil
}
