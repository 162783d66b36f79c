package response

import (
	"time"

	"parkbuddy/internal/usecase/queries"
)

type RevenueResponse struct {
	From    time.Time  `json:"from"`
	To      *time.Time `json:"to,omitempty"`
	Revenue Amount     `json:"revenue"`
}

func FromRevenueView(v *queries.RevenueView) *RevenueResponse {
	return &RevenueResponse{From: v.From, To: v.To, Revenue: NewAmount(v.RevenueCents)}
}

type PopularLotResponse struct {
	LotID            int64  `json:"lot_id"`
	Name             string `json:"name"`
	ReservationCount int64  `json:"reservation_count"`
}

func FromPopularLot(v *queries.PopularLotView) *PopularLotResponse {
	if v == nil {
		return nil
	}
	return &PopularLotResponse{LotID: v.LotID, Name: v.Name, ReservationCount: v.ReservationCount}
}

func FromPopularLots(views []*queries.PopularLotView) []*PopularLotResponse {
	res := make([]*PopularLotResponse, len(views))
	for i, v := range views {
		res[i] = FromPopularLot(v)
	}
	return res
}

type DashboardResponse struct {
	TotalLots          int64               `json:"total_lots"`
	TotalSpots         int64               `json:"total_spots"`
	OccupiedSpots      int64               `json:"occupied_spots"`
	AvailableSpots     int64               `json:"available_spots"`
	TotalUsers         int64               `json:"total_users"`
	RecentReservations int64               `json:"recent_reservations"`
	RevenueToday       Amount              `json:"revenue_today"`
	MostPopularLot     *PopularLotResponse `json:"most_popular_lot,omitempty"`
	GeneratedAt        time.Time           `json:"generated_at"`
}

func FromDashboardView(v *queries.DashboardView) *DashboardResponse {
	return &DashboardResponse{
		TotalLots:          v.TotalLots,
		TotalSpots:         v.TotalSpots,
		OccupiedSpots:      v.OccupiedSpots,
		AvailableSpots:     v.AvailableSpots,
		TotalUsers:         v.TotalUsers,
		RecentReservations: v.RecentReservations,
		RevenueToday:       NewAmount(v.RevenueTodayCents),
		MostPopularLot:     FromPopularLot(v.MostPopularLot),
		GeneratedAt:        v.GeneratedAt,
	}
}
