package lot

import (
	"time"

	"parkbuddy/internal/domain/reservation"
	"parkbuddy/internal/pkg/errs"
	"parkbuddy/internal/pkg/patch"
)

var ErrBelowOccupied = errs.New("spot count cannot go below the number of occupied spots")

type Lot struct {
	id         int64
	name       Name
	address    Address
	pinCode    PinCode
	hourlyRate reservation.Money
	spotCount  int
	createdAt  time.Time
	updatedAt  time.Time
}

func NewLot(name, address, pinCode string, hourlyRate reservation.Money, spotCount int) (*Lot, error) {
	n, err := NewName(name)
	if err != nil {
		return nil, err
	}
	a, err := NewAddress(address)
	if err != nil {
		return nil, err
	}
	p, err := NewPinCode(pinCode)
	if err != nil {
		return nil, err
	}
	if err := ValidateSpotCount(spotCount); err != nil {
		return nil, err
	}
	if err := ValidateHourlyRate(hourlyRate); err != nil {
		return nil, err
	}

	return &Lot{
		name:       n,
		address:    a,
		pinCode:    p,
		hourlyRate: hourlyRate,
		spotCount:  spotCount,
	}, nil
}

func ReconstructLot(
	id int64,
	name Name,
	address Address,
	pinCode PinCode,
	hourlyRate reservation.Money,
	spotCount int,
	createdAt, updatedAt time.Time,
) *Lot {
	return &Lot{
		id:         id,
		name:       name,
		address:    address,
		pinCode:    pinCode,
		hourlyRate: hourlyRate,
		spotCount:  spotCount,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

// Patch carries the optional fields of an admin edit. Nil means unchanged.
type Patch struct {
	Name       *string
	Address    *string
	PinCode    *string
	HourlyRate *reservation.Money
	SpotCount  *int
}

// ResizePlan is the spot delta an edit needs: Add new available spots or
// Retire that many free ones.
type ResizePlan struct {
	Add    int
	Retire int
}

// Apply validates the patch against the occupied count and mutates the lot.
func (l *Lot) Apply(p Patch, occupied int) (ResizePlan, error) {
	name, address, pin := l.name, l.address, l.pinCode
	var err error
	if p.Name != nil {
		if name, err = NewName(*p.Name); err != nil {
			return ResizePlan{}, err
		}
	}
	if p.Address != nil {
		if address, err = NewAddress(*p.Address); err != nil {
			return ResizePlan{}, err
		}
	}
	if p.PinCode != nil {
		if pin, err = NewPinCode(*p.PinCode); err != nil {
			return ResizePlan{}, err
		}
	}

	if p.HourlyRate != nil {
		if err := ValidateHourlyRate(*p.HourlyRate); err != nil {
			return ResizePlan{}, err
		}
	}

	var plan ResizePlan
	count := patch.Coalesce(p.SpotCount, l.spotCount)
	if patch.Changed(p.SpotCount, l.spotCount) {
		if err := ValidateSpotCount(count); err != nil {
			return ResizePlan{}, err
		}
		if count < occupied {
			return ResizePlan{}, ErrBelowOccupied
		}
		switch {
		case count > l.spotCount:
			plan.Add = count - l.spotCount
		case count < l.spotCount:
			plan.Retire = l.spotCount - count
		}
	}

	l.name, l.address, l.pinCode = name, address, pin
	l.hourlyRate = patch.Coalesce(p.HourlyRate, l.hourlyRate)
	l.spotCount = count
	return plan, nil
}

func (l *Lot) ID() int64                     { return l.id }
func (l *Lot) Name() Name                    { return l.name }
func (l *Lot) Address() Address              { return l.address }
func (l *Lot) PinCode() PinCode              { return l.pinCode }
func (l *Lot) HourlyRate() reservation.Money { return l.hourlyRate }
func (l *Lot) SpotCount() int                { return l.spotCount }
func (l *Lot) CreatedAt() time.Time          { return l.createdAt }
func (l *Lot) UpdatedAt() time.Time          { return l.updatedAt }

// DropSpot accounts for one spot retired outside a resize.
func (l *Lot) DropSpot() error {
	if l.spotCount == 0 {
		return ErrInvalidSpotCount
	}
	l.spotCount--
	return nil
}
