package converter

import (
	"parkbuddy/internal/domain/reservation"
	"parkbuddy/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

func ReservationFromColumns(
	id, spotID int64,
	userID uuid.UUID,
	startedAt, endedAt pgtype.Timestamptz,
	costCents pgtype.Int8,
) (*reservation.Reservation, error) {
	var cost *reservation.Money
	if costCents.Valid {
		m, err := reservation.NewMoney(costCents.Int64)
		if err != nil {
			return nil, err
		}
		cost = &m
	}
	return reservation.ReconstructReservation(
		id,
		spotID,
		userID,
		pgconv.TimeFromPgtype(startedAt),
		pgconv.TimePtrFromPgtype(endedAt),
		cost,
	)
}

func ClosedAt(r *reservation.Reservation) pgtype.Timestamptz {
	if r.EndedAt() == nil {
		return pgtype.Timestamptz{}
	}
	return pgconv.TimeToPgtype(*r.EndedAt())
}

func CostCents(r *reservation.Reservation) pgtype.Int8 {
	if r.Cost() == nil {
		return pgtype.Int8{}
	}
	return pgconv.Int64ToPgtype(r.Cost().Cents())
}

func StartedAt(r *reservation.Reservation) pgtype.Timestamptz {
	return pgconv.TimeToPgtype(r.StartedAt())
}
