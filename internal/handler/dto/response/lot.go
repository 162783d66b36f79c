package response

import (
	"time"

	"parkbuddy/internal/usecase/commands"
	"parkbuddy/internal/usecase/queries"
)

type LotResponse struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Address    string `json:"address"`
	PinCode    string `json:"pin_code"`
	HourlyRate Amount `json:"hourly_rate"`
	SpotCount  int    `json:"spot_count"`
	CreatedAt  int64  `json:"created_at"`
	UpdatedAt  int64  `json:"updated_at"`
}

func FromLotView(v *queries.LotView) *LotResponse {
	return &LotResponse{
		ID:         v.ID,
		Name:       v.Name,
		Address:    v.Address,
		PinCode:    v.PinCode,
		HourlyRate: NewAmount(v.HourlyRateCents),
		SpotCount:  v.SpotCount,
		CreatedAt:  v.CreatedAt.Unix(),
		UpdatedAt:  v.UpdatedAt.Unix(),
	}
}

type SpotResponse struct {
	ID     int64  `json:"id"`
	LotID  int64  `json:"lot_id"`
	Status string `json:"status"`
}

func FromSpotView(v *queries.SpotView) *SpotResponse {
	return &SpotResponse{ID: v.ID, LotID: v.LotID, Status: v.Status}
}

func FromSpotList(views []*queries.SpotView) []*SpotResponse {
	res := make([]*SpotResponse, len(views))
	for i, v := range views {
		res[i] = FromSpotView(v)
	}
	return res
}

type SpotDetailResponse struct {
	SpotID        int64   `json:"spot_id"`
	Status        string  `json:"status"`
	ReservationID *int64  `json:"reservation_id,omitempty"`
	OccupantEmail *string `json:"occupant_email,omitempty"`
	OccupiedSince *int64  `json:"occupied_since,omitempty"`
}

type LotDetailsResponse struct {
	Lot   *LotResponse          `json:"lot"`
	Spots []*SpotDetailResponse `json:"spots"`
}

func FromLotDetails(v *queries.LotDetailsView) *LotDetailsResponse {
	spots := make([]*SpotDetailResponse, len(v.Spots))
	for i, s := range v.Spots {
		spots[i] = &SpotDetailResponse{
			SpotID:        s.SpotID,
			Status:        s.Status,
			ReservationID: s.ReservationID,
			OccupantEmail: s.OccupantEmail,
			OccupiedSince: unixPtr(s.OccupiedSince),
		}
	}
	return &LotDetailsResponse{Lot: FromLotView(&v.Lot), Spots: spots}
}

type CreateLotResponse struct {
	ID int64 `json:"id"`
}

type ResizeLotResponse struct {
	LotID     int64 `json:"lot_id"`
	SpotCount int   `json:"spot_count"`
	Added     int   `json:"added"`
	Retired   int   `json:"retired"`
}

func FromResizeLotResult(r *commands.ResizeLotResult) *ResizeLotResponse {
	return &ResizeLotResponse{
		LotID:     r.LotID,
		SpotCount: r.SpotCount,
		Added:     r.Added,
		Retired:   r.Retired,
	}
}

type OccupancyResponse struct {
	LotID     int64 `json:"lot_id"`
	Available int   `json:"available"`
	Occupied  int   `json:"occupied"`
}

func FromOccupancyView(v *queries.OccupancyView) *OccupancyResponse {
	return &OccupancyResponse{LotID: v.LotID, Available: v.Available, Occupied: v.Occupied}
}

type LotOccupancyResponse struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Address    string `json:"address"`
	HourlyRate Amount `json:"hourly_rate"`
	Available  int    `json:"available"`
	Occupied   int    `json:"occupied"`
}

func FromLotOccupancyList(views []*queries.LotOccupancyView) []*LotOccupancyResponse {
	res := make([]*LotOccupancyResponse, len(views))
	for i, v := range views {
		res[i] = &LotOccupancyResponse{
			ID:         v.ID,
			Name:       v.Name,
			Address:    v.Address,
			HourlyRate: NewAmount(v.HourlyRateCents),
			Available:  v.Available,
			Occupied:   v.Occupied,
		}
	}
	return res
}

func unixPtr(t *time.Time) *int64 {
	if t == nil {
		return nil
	}
	ts := t.Unix()
	return &ts
}
