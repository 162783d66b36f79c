package queries

import (
	"time"

	"github.com/google/uuid"
)

// AuthorizedUserView is the identity a request runs as.
type AuthorizedUserView struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	IsActive bool      `json:"is_active"`
}

type UserView struct {
	ID        uuid.UUID  `json:"id"`
	Email     string     `json:"email"`
	FullName  string     `json:"full_name"`
	Phone     *string    `json:"phone,omitempty"`
	Role      string     `json:"role"`
	IsActive  bool       `json:"is_active"`
	LastLogin *time.Time `json:"last_login,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

type SpotView struct {
	ID     int64  `json:"id"`
	LotID  int64  `json:"lot_id"`
	Status string `json:"status"`
}

type SpotDetailView struct {
	SpotID        int64      `json:"spot_id"`
	Status        string     `json:"status"`
	ReservationID *int64     `json:"reservation_id,omitempty"`
	OccupantEmail *string    `json:"occupant_email,omitempty"`
	OccupiedSince *time.Time `json:"occupied_since,omitempty"`
}

type LotView struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	Address         string    `json:"address"`
	PinCode         string    `json:"pin_code"`
	HourlyRateCents int64     `json:"hourly_rate_cents"`
	SpotCount       int       `json:"spot_count"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type LotDetailsView struct {
	Lot   LotView           `json:"lot"`
	Spots []*SpotDetailView `json:"spots"`
}

type OccupancyView struct {
	LotID     int64 `json:"lot_id"`
	Available int   `json:"available"`
	Occupied  int   `json:"occupied"`
}

type LotOccupancyView struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	Address         string `json:"address"`
	HourlyRateCents int64  `json:"hourly_rate_cents"`
	Available       int    `json:"available"`
	Occupied        int    `json:"occupied"`
}

type ReservationListItem struct {
	ID        int64      `json:"id"`
	SpotID    int64      `json:"spot_id"`
	LotID     int64      `json:"lot_id"`
	LotName   string     `json:"lot_name"`
	StartedAt time.Time  `json:"started_at"`
	EndedAt   *time.Time `json:"ended_at,omitempty"`
	CostCents *int64     `json:"cost_cents,omitempty"`
}

func (r *ReservationListItem) IsActive() bool {
	return r.EndedAt == nil
}

type ActiveReservationView struct {
	ID              int64     `json:"id"`
	SpotID          int64     `json:"spot_id"`
	LotID           int64     `json:"lot_id"`
	LotName         string    `json:"lot_name"`
	HourlyRateCents int64     `json:"hourly_rate_cents"`
	StartedAt       time.Time `json:"started_at"`
}

type RevenueView struct {
	From         time.Time  `json:"from"`
	To           *time.Time `json:"to,omitempty"`
	RevenueCents int64      `json:"revenue_cents"`
}

type PopularLotView struct {
	LotID            int64  `json:"lot_id"`
	Name             string `json:"name"`
	ReservationCount int64  `json:"reservation_count"`
}

type DashboardView struct {
	TotalLots          int64           `json:"total_lots"`
	TotalSpots         int64           `json:"total_spots"`
	OccupiedSpots      int64           `json:"occupied_spots"`
	AvailableSpots     int64           `json:"available_spots"`
	TotalUsers         int64           `json:"total_users"`
	RecentReservations int64           `json:"recent_reservations"`
	RevenueTodayCents  int64           `json:"revenue_today_cents"`
	MostPopularLot     *PopularLotView `json:"most_popular_lot,omitempty"`
	GeneratedAt        time.Time       `json:"generated_at"`
}

type InactiveUserView struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	FullName string    `json:"full_name"`
	Phone    *string   `json:"phone,omitempty"`
}

type PeriodReservationView struct {
	ID           int64      `json:"id"`
	UserID       uuid.UUID  `json:"user_id"`
	UserEmail    string     `json:"user_email"`
	UserFullName string     `json:"user_full_name"`
	LotID        int64      `json:"lot_id"`
	LotName      string     `json:"lot_name"`
	StartedAt    time.Time  `json:"started_at"`
	EndedAt      *time.Time `json:"ended_at,omitempty"`
	CostCents    *int64     `json:"cost_cents,omitempty"`
}
