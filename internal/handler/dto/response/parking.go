package response

import (
	"time"

	"parkbuddy/internal/usecase/commands"
	"parkbuddy/internal/usecase/queries"
)

type AllocationResponse struct {
	ReservationID int64     `json:"reservation_id"`
	SpotID        int64     `json:"spot_id"`
	LotID         int64     `json:"lot_id"`
	StartedAt     time.Time `json:"started_at"`
}

func FromAllocateResult(r *commands.AllocateResult) *AllocationResponse {
	return &AllocationResponse{
		ReservationID: r.ReservationID,
		SpotID:        r.SpotID,
		LotID:         r.LotID,
		StartedAt:     r.StartedAt,
	}
}

type ReleaseResponse struct {
	ReservationID int64     `json:"reservation_id"`
	SpotID        int64     `json:"spot_id"`
	StartedAt     time.Time `json:"started_at"`
	EndedAt       time.Time `json:"ended_at"`
	Cost          Amount    `json:"cost"`
}

func FromReleaseResult(r *commands.ReleaseResult) *ReleaseResponse {
	return &ReleaseResponse{
		ReservationID: r.ReservationID,
		SpotID:        r.SpotID,
		StartedAt:     r.StartedAt,
		EndedAt:       r.EndedAt,
		Cost:          NewAmount(r.Cost.Cents()),
	}
}

type ReservationListResponse struct {
	ID        int64      `json:"id"`
	SpotID    int64      `json:"spot_id"`
	LotID     int64      `json:"lot_id"`
	LotName   string     `json:"lot_name"`
	StartedAt time.Time  `json:"started_at"`
	EndedAt   *time.Time `json:"ended_at,omitempty"`
	Cost      *Amount    `json:"cost,omitempty"`
	Active    bool       `json:"active"`
}

func FromReservationList(items []*queries.ReservationListItem) []*ReservationListResponse {
	res := make([]*ReservationListResponse, len(items))
	for i, it := range items {
		res[i] = &ReservationListResponse{
			ID:        it.ID,
			SpotID:    it.SpotID,
			LotID:     it.LotID,
			LotName:   it.LotName,
			StartedAt: it.StartedAt,
			EndedAt:   it.EndedAt,
			Cost:      NewAmountPtr(it.CostCents),
			Active:    it.IsActive(),
		}
	}
	return res
}

type ActiveReservationResponse struct {
	ID         int64     `json:"id"`
	SpotID     int64     `json:"spot_id"`
	LotID      int64     `json:"lot_id"`
	LotName    string    `json:"lot_name"`
	HourlyRate Amount    `json:"hourly_rate"`
	StartedAt  time.Time `json:"started_at"`
}

func FromActiveReservations(views []*queries.ActiveReservationView) []*ActiveReservationResponse {
	res := make([]*ActiveReservationResponse, len(views))
	for i, v := range views {
		res[i] = &ActiveReservationResponse{
			ID:         v.ID,
			SpotID:     v.SpotID,
			LotID:      v.LotID,
			LotName:    v.LotName,
			HourlyRate: NewAmount(v.HourlyRateCents),
			StartedAt:  v.StartedAt,
		}
	}
	return res
}
