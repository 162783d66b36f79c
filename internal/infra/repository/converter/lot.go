package converter

import (
	"time"

	"parkbuddy/internal/domain/lot"
	"parkbuddy/internal/domain/reservation"
	sqlc "parkbuddy/internal/infra/sqlc/generated"
	"parkbuddy/internal/pkg/pgconv"
)

func LotToCreateParams(l *lot.Lot, now time.Time) sqlc.CreateLotParams {
	return sqlc.CreateLotParams{
		Name:            l.Name().Value(),
		Address:         l.Address().Value(),
		PinCode:         l.PinCode().Value(),
		HourlyRateCents: l.HourlyRate().Cents(),
		SpotCount:       int32(l.SpotCount()), // #nosec G115 -- bounded by lot.MaxSpotCount
		CreatedAt:       pgconv.TimeToPgtype(now),
	}
}

func LotToUpdateParams(l *lot.Lot, now time.Time) sqlc.UpdateLotParams {
	return sqlc.UpdateLotParams{
		ID:              l.ID(),
		Name:            l.Name().Value(),
		Address:         l.Address().Value(),
		PinCode:         l.PinCode().Value(),
		HourlyRateCents: l.HourlyRate().Cents(),
		SpotCount:       int32(l.SpotCount()), // #nosec G115 -- bounded by lot.MaxSpotCount
		UpdatedAt:       pgconv.TimeToPgtype(now),
	}
}

// LotFromRow trusts stored values; they were validated on the way in.
func LotFromRow(row sqlc.Lots) (*lot.Lot, error) {
	name, err := lot.NewName(row.Name)
	if err != nil {
		return nil, err
	}
	address, err := lot.NewAddress(row.Address)
	if err != nil {
		return nil, err
	}
	pin, err := lot.NewPinCode(row.PinCode)
	if err != nil {
		return nil, err
	}
	rate, err := reservation.NewMoney(row.HourlyRateCents)
	if err != nil {
		return nil, err
	}
	return lot.ReconstructLot(
		row.ID,
		name,
		address,
		pin,
		rate,
		int(row.SpotCount),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}
