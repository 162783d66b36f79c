package request

import (
	"strings"

	"parkbuddy/internal/domain/lot"
	"parkbuddy/internal/domain/reservation"
	"parkbuddy/internal/usecase/commands"
)

// Hourly rates travel as decimal strings ("15.00") so no float rounding
// reaches the billing path.
type CreateLotRequest struct {
	Name       string `json:"name" binding:"required,max=100"`
	Address    string `json:"address" binding:"required,max=255"`
	PinCode    string `json:"pin_code" binding:"required,numeric,min=4,max=10"`
	HourlyRate string `json:"hourly_rate" binding:"required"`
	SpotCount  *int   `json:"spot_count" binding:"required,min=0,max=10000"`
}

func (r *CreateLotRequest) ToInput() (commands.CreateLotInput, error) {
	rate, err := reservation.ParseMoney(r.HourlyRate)
	if err != nil {
		return commands.CreateLotInput{}, err
	}
	return commands.CreateLotInput{
		Name:       strings.TrimSpace(r.Name),
		Address:    strings.TrimSpace(r.Address),
		PinCode:    r.PinCode,
		HourlyRate: rate,
		SpotCount:  *r.SpotCount,
	}, nil
}

type UpdateLotRequest struct {
	Name       *string `json:"name" binding:"omitempty,max=100"`
	Address    *string `json:"address" binding:"omitempty,max=255"`
	PinCode    *string `json:"pin_code" binding:"omitempty,numeric,min=4,max=10"`
	HourlyRate *string `json:"hourly_rate"`
	SpotCount  *int    `json:"spot_count" binding:"omitempty,min=0,max=10000"`
}

func (r *UpdateLotRequest) ToPatch() (lot.Patch, error) {
	p := lot.Patch{
		Name:      r.Name,
		Address:   r.Address,
		PinCode:   r.PinCode,
		SpotCount: r.SpotCount,
	}
	if r.HourlyRate != nil {
		rate, err := reservation.ParseMoney(*r.HourlyRate)
		if err != nil {
			return lot.Patch{}, err
		}
		p.HourlyRate = &rate
	}
	return p, nil
}
