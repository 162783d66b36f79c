package converter

import (
	"parkbuddy/internal/domain/spot"
	sqlc "parkbuddy/internal/infra/sqlc/generated"
	"parkbuddy/internal/pkg/pgconv"
)

func SpotFromRow(row sqlc.Spots) (*spot.Spot, error) {
	status, err := spot.NewStatus(row.Status)
	if err != nil {
		return nil, err
	}
	return spot.ReconstructSpot(row.ID, row.LotID, status, pgconv.TimePtrFromPgtype(row.RetiredAt)), nil
}
