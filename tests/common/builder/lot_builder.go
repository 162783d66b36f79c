//go:build unit || e2e

package builder

import (
	"time"

	"parkbuddy/internal/domain/lot"
	"parkbuddy/internal/domain/reservation"
	reqdto "parkbuddy/internal/handler/dto/request"
	sqlc "parkbuddy/internal/infra/sqlc/generated"
	"parkbuddy/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

type LotBuilder struct {
	ID              int64
	Name            string
	Address         string
	PinCode         string
	HourlyRateCents int64
	SpotCount       int
	CreatedAt       time.Time
}

func NewLotBuilder() *LotBuilder {
	return &LotBuilder{
		ID:              1,
		Name:            "Main St",
		Address:         "1 Main St",
		PinCode:         "560001",
		HourlyRateCents: 1000,
		SpotCount:       2,
		CreatedAt:       time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (l *LotBuilder) With(mutate func(*LotBuilder)) *LotBuilder {
	mutate(l)
	return l
}

// Build methods
func (l *LotBuilder) BuildDomain() (*lot.Lot, error) {
	name, err := lot.NewName(l.Name)
	if err != nil {
		return nil, err
	}
	address, err := lot.NewAddress(l.Address)
	if err != nil {
		return nil, err
	}
	pin, err := lot.NewPinCode(l.PinCode)
	if err != nil {
		return nil, err
	}
	rate, err := reservation.NewMoney(l.HourlyRateCents)
	if err != nil {
		return nil, err
	}
	return lot.ReconstructLot(l.ID, name, address, pin, rate, l.SpotCount, l.CreatedAt, l.CreatedAt), nil
}

func (l *LotBuilder) BuildInfra() sqlc.Lots {
	return sqlc.Lots{
		ID:              l.ID,
		Name:            l.Name,
		Address:         l.Address,
		PinCode:         l.PinCode,
		HourlyRateCents: l.HourlyRateCents,
		SpotCount:       int32(l.SpotCount), // #nosec G115 -- test fixture
		CreatedAt:       pgtype.Timestamptz{Time: l.CreatedAt, Valid: true},
		UpdatedAt:       pgtype.Timestamptz{Time: l.CreatedAt, Valid: true},
	}
}

func (l *LotBuilder) BuildView() *queries.LotView {
	return &queries.LotView{
		ID:              l.ID,
		Name:            l.Name,
		Address:         l.Address,
		PinCode:         l.PinCode,
		HourlyRateCents: l.HourlyRateCents,
		SpotCount:       l.SpotCount,
		CreatedAt:       l.CreatedAt,
		UpdatedAt:       l.CreatedAt,
	}
}

func (l *LotBuilder) BuildOccupancyView(occupied int) *queries.LotOccupancyView {
	return &queries.LotOccupancyView{
		ID:              l.ID,
		Name:            l.Name,
		Address:         l.Address,
		HourlyRateCents: l.HourlyRateCents,
		Available:       l.SpotCount - occupied,
		Occupied:        occupied,
	}
}

func (l *LotBuilder) BuildCreateDTO() reqdto.CreateLotRequest {
	count := l.SpotCount
	return reqdto.CreateLotRequest{
		Name:       l.Name,
		Address:    l.Address,
		PinCode:    l.PinCode,
		HourlyRate: reservation.MustMoney(l.HourlyRateCents).String(),
		SpotCount:  &count,
	}
}

// Fluent builder methods
func (l *LotBuilder) WithID(id int64) *LotBuilder {
	l.ID = id
	return l
}

func (l *LotBuilder) WithName(name string) *LotBuilder {
	l.Name = name
	return l
}

func (l *LotBuilder) WithRate(cents int64) *LotBuilder {
	l.HourlyRateCents = cents
	return l
}

func (l *LotBuilder) WithSpotCount(n int) *LotBuilder {
	l.SpotCount = n
	return l
}
