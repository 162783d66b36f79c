//go:build unit || e2e

package builder

import (
	"time"

	"parkbuddy/internal/domain/reservation"
	sqlc "parkbuddy/internal/infra/sqlc/generated"
	"parkbuddy/internal/usecase/queries"
	"parkbuddy/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ReservationBuilder struct {
	ID              int64
	SpotID          int64
	LotID           int64
	LotName         string
	UserID          uuid.UUID
	HourlyRateCents int64
	StartedAt       time.Time
	EndedAt         *time.Time
	CostCents       *int64
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		ID:              1,
		SpotID:          1,
		LotID:           1,
		LotName:         "Main St",
		UserID:          uuid.New(),
		HourlyRateCents: 1000,
		StartedAt:       time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (r *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(r)
	return r
}

// Build methods
func (r *ReservationBuilder) BuildDomain() (*reservation.Reservation, error) {
	var cost *reservation.Money
	if r.CostCents != nil {
		m, err := reservation.NewMoney(*r.CostCents)
		if err != nil {
			return nil, err
		}
		cost = &m
	}
	return reservation.ReconstructReservation(r.ID, r.SpotID, r.UserID, r.StartedAt, r.EndedAt, cost)
}

func (r *ReservationBuilder) BuildReleaseTarget() (*shared.ReleaseTarget, error) {
	res, err := r.BuildDomain()
	if err != nil {
		return nil, err
	}
	return &shared.ReleaseTarget{
		Reservation: res,
		LotID:       r.LotID,
		HourlyRate:  reservation.MustMoney(r.HourlyRateCents),
	}, nil
}

func (r *ReservationBuilder) BuildInfra() sqlc.Reservations {
	return sqlc.Reservations{
		ID:        r.ID,
		SpotID:    r.SpotID,
		UserID:    r.UserID,
		StartedAt: pgtype.Timestamptz{Time: r.StartedAt, Valid: true},
		EndedAt:   r.endedAt(),
		CostCents: r.costCents(),
		CreatedAt: pgtype.Timestamptz{Time: r.StartedAt, Valid: true},
	}
}

func (r *ReservationBuilder) BuildForUpdateRow() sqlc.GetReservationForUpdateRow {
	return sqlc.GetReservationForUpdateRow{
		ID:              r.ID,
		SpotID:          r.SpotID,
		UserID:          r.UserID,
		StartedAt:       pgtype.Timestamptz{Time: r.StartedAt, Valid: true},
		EndedAt:         r.endedAt(),
		CostCents:       r.costCents(),
		LotID:           r.LotID,
		HourlyRateCents: r.HourlyRateCents,
	}
}

func (r *ReservationBuilder) BuildListItem() *queries.ReservationListItem {
	return &queries.ReservationListItem{
		ID:        r.ID,
		SpotID:    r.SpotID,
		LotID:     r.LotID,
		LotName:   r.LotName,
		StartedAt: r.StartedAt,
		EndedAt:   r.EndedAt,
		CostCents: r.CostCents,
	}
}

func (r *ReservationBuilder) BuildActiveView() *queries.ActiveReservationView {
	return &queries.ActiveReservationView{
		ID:              r.ID,
		SpotID:          r.SpotID,
		LotID:           r.LotID,
		LotName:         r.LotName,
		HourlyRateCents: r.HourlyRateCents,
		StartedAt:       r.StartedAt,
	}
}

// Fluent builder methods
func (r *ReservationBuilder) WithID(id int64) *ReservationBuilder {
	r.ID = id
	return r
}

func (r *ReservationBuilder) WithUser(id uuid.UUID) *ReservationBuilder {
	r.UserID = id
	return r
}

func (r *ReservationBuilder) WithSpot(lotID, spotID int64) *ReservationBuilder {
	r.LotID = lotID
	r.SpotID = spotID
	return r
}

func (r *ReservationBuilder) StartedAtTime(t time.Time) *ReservationBuilder {
	r.StartedAt = t
	return r
}

func (r *ReservationBuilder) Closed(end time.Time, costCents int64) *ReservationBuilder {
	r.EndedAt = &end
	r.CostCents = &costCents
	return r
}

func (r *ReservationBuilder) endedAt() pgtype.Timestamptz {
	if r.EndedAt == nil {
		return pgtype.Timestamptz{}
	}
	return pgtype.Timestamptz{Time: *r.EndedAt, Valid: true}
}

func (r *ReservationBuilder) costCents() pgtype.Int8 {
	if r.CostCents == nil {
		return pgtype.Int8{}
	}
	return pgtype.Int8{Int64: *r.CostCents, Valid: true}
}
