//go:build e2e

package admin_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"parkbuddy/internal/domain/user"
	"parkbuddy/internal/handler/dto/request"
	"parkbuddy/internal/handler/dto/response"
	"parkbuddy/tests/common/authtest"
	"parkbuddy/tests/common/dbtest"
	"parkbuddy/tests/common/httptest"
	"parkbuddy/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type adminSuite struct {
	e2e.SharedSuite
	jwtHelper  *authtest.JWTHelper
	adminToken string
}

func TestAdminSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(adminSuite))
}

func (s *adminSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwtHelper = authtest.NewJWTHelper(s.Config.JWT)
}

func (s *adminSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	adminID := dbtest.CreateTestUser(s.T(), s.DB, "admin@example.com", string(user.RoleAdmin))
	s.adminToken = s.jwtHelper.GenerateToken(s.T(), adminID, user.RoleAdmin)
}

func (s *adminSuite) driver(email string) (uuid.UUID, string) {
	id := dbtest.CreateTestUser(s.T(), s.DB, email, string(user.RoleUser))
	return id, s.jwtHelper.GenerateToken(s.T(), id, user.RoleUser)
}

func (s *adminSuite) allocate(token string, lotID int64) response.AllocationResponse {
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, fmt.Sprintf("/api/lots/%d/allocations", lotID), nil, token)
	require.Equal(s.T(), http.StatusCreated, w.Code, w.Body.String())

	var res response.AllocationResponse
	httptest.DecodeResponseBody(s.T(), w.Body, &res)
	return res
}

func (s *adminSuite) get(path string, target any) {
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, path, nil, s.adminToken)
	require.Equal(s.T(), http.StatusOK, w.Code, w.Body.String())
	if target != nil {
		httptest.DecodeResponseBody(s.T(), w.Body, target)
	}
}

// seedMainSt builds two lots with finished January reservations:
// Main St 10.00/h (10.00 + 15.00) and Elm 15.50/h (15.50), plus an unused lot.
func (s *adminSuite) seedMainSt() (mainSt, elm, empty int64) {
	t := s.T()
	mainSt, mainSpots := dbtest.CreateTestLot(t, s.DB, "Main St", 1000, 3)
	elm, elmSpots := dbtest.CreateTestLot(t, s.DB, "Elm", 1550, 2)
	empty, _ = dbtest.CreateTestLot(t, s.DB, "Quiet Lane", 500, 1)

	alice, _ := s.driver("alice@example.com")
	bob, _ := s.driver("bob@example.com")

	jan := time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC)
	dbtest.CreateClosedReservation(t, s.DB, mainSpots[0], alice, jan, jan.Add(time.Hour), 1000)
	dbtest.CreateClosedReservation(t, s.DB, mainSpots[1], alice, jan.Add(24*time.Hour), jan.Add(24*time.Hour+90*time.Minute), 1500)
	dbtest.CreateClosedReservation(t, s.DB, elmSpots[0], bob, jan.Add(48*time.Hour), jan.Add(49*time.Hour), 1550)

	return mainSt, elm, empty
}

func (s *adminSuite) TestStats() {
	s.Run("期間内の売上が集計される", func() {
		s.seedMainSt()

		var revenue response.RevenueResponse
		s.get("/api/admin/stats/revenue?from=2025-01-01T00:00:00Z&to=2025-02-01T00:00:00Z", &revenue)
		require.Equal(s.T(), "40.50", revenue.Revenue.Value)

		s.get("/api/admin/stats/revenue?from=2025-01-11T00:00:00Z", &revenue)
		require.Equal(s.T(), "30.50", revenue.Revenue.Value)

		s.get("/api/admin/stats/revenue?from=2025-02-01T00:00:00Z&to=2025-03-01T00:00:00Z", &revenue)
		require.Equal(s.T(), "0.00", revenue.Revenue.Value)
	})

	s.Run("逆転した期間は400を返す", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet,
			"/api/admin/stats/revenue?from=2025-02-01T00:00:00Z&to=2025-01-01T00:00:00Z", nil, s.adminToken)
		require.Equal(s.T(), http.StatusBadRequest, w.Code, w.Body.String())
	})

	s.Run("人気駐車場は利用回数順で未使用の駐車場も含む", func() {
		mainSt, elm, empty := s.seedMainSt()

		var popular struct {
			Lots []response.PopularLotResponse `json:"lots"`
		}
		s.get("/api/admin/stats/popular-lots", &popular)

		require.Len(s.T(), popular.Lots, 3)
		require.Equal(s.T(), mainSt, popular.Lots[0].LotID)
		require.Equal(s.T(), int64(2), popular.Lots[0].ReservationCount)
		require.Equal(s.T(), elm, popular.Lots[1].LotID)
		require.Equal(s.T(), empty, popular.Lots[2].LotID)
		require.Equal(s.T(), int64(0), popular.Lots[2].ReservationCount)
	})

	s.Run("ダッシュボードはキャッシュされTTL内は同じ値を返す", func() {
		t := s.T()
		mainSt, _, _ := s.seedMainSt()
		_, token := s.driver("carol@example.com")
		s.allocate(token, mainSt)

		var first response.DashboardResponse
		s.get("/api/admin/stats/dashboard", &first)
		require.Equal(t, int64(3), first.TotalLots)
		require.Equal(t, int64(6), first.TotalSpots)
		require.Equal(t, int64(1), first.OccupiedSpots)
		require.Equal(t, int64(5), first.AvailableSpots)
		require.Equal(t, int64(3), first.TotalUsers)
		require.NotNil(t, first.MostPopularLot)
		require.Equal(t, "Main St", first.MostPopularLot.Name)

		exists, err := s.Redis.Exists(t.Context(), s.Config.Cache.Prefix+":dashboard").Result()
		require.NoError(t, err)
		require.Equal(t, int64(1), exists)

		_, other := s.driver("dave@example.com")
		s.allocate(other, mainSt)

		var cached response.DashboardResponse
		s.get("/api/admin/stats/dashboard", &cached)
		require.Equal(t, int64(1), cached.OccupiedSpots)

		require.NoError(t, s.Redis.Del(t.Context(), s.Config.Cache.Prefix+":dashboard").Err())

		var fresh response.DashboardResponse
		s.get("/api/admin/stats/dashboard", &fresh)
		require.Equal(t, int64(2), fresh.OccupiedSpots)
	})

	s.Run("駐車場の詳細に利用者が表示される", func() {
		t := s.T()
		lotID, spots := dbtest.CreateTestLot(t, s.DB, "Main St", 1000, 2)
		_, token := s.driver("erin@example.com")
		res := s.allocate(token, lotID)

		var details response.LotDetailsResponse
		s.get(fmt.Sprintf("/api/admin/lots/%d", lotID), &details)

		require.Equal(t, "Main St", details.Lot.Name)
		require.Len(t, details.Spots, 2)
		require.Equal(t, spots[0], details.Spots[0].SpotID)
		require.NotNil(t, details.Spots[0].ReservationID)
		require.Equal(t, res.ReservationID, *details.Spots[0].ReservationID)
		require.Equal(t, "erin@example.com", *details.Spots[0].OccupantEmail)
		require.Nil(t, details.Spots[1].ReservationID)
	})
}

func (s *adminSuite) TestLotLifecycle() {
	s.Run("駐車場を作成すると指定数のスポットが用意される", func() {
		t := s.T()
		spotCount := 4
		body := request.CreateLotRequest{
			Name:       "Harbor",
			Address:    "1 Harbor Road",
			PinCode:    "560001",
			HourlyRate: "12.50",
			SpotCount:  &spotCount,
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/admin/lots", body, s.adminToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var created response.CreateLotResponse
		httptest.DecodeResponseBody(t, w.Body, &created)
		require.Equal(t, fmt.Sprintf("/api/admin/lots/%d", created.ID), w.Header().Get("Location"))

		var occupancy response.OccupancyResponse
		s.get(fmt.Sprintf("/api/lots/%d/occupancy", created.ID), &occupancy)
		require.Equal(t, 4, occupancy.Available)
		require.Equal(t, 0, occupancy.Occupied)
	})

	s.Run("利用中スポット数を下回る縮小は422を返す", func() {
		t := s.T()
		lotID, _ := dbtest.CreateTestLot(t, s.DB, "Main St", 1000, 3)
		_, a := s.driver("a@example.com")
		_, b := s.driver("b@example.com")
		s.allocate(a, lotID)
		s.allocate(b, lotID)

		one := 1
		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, fmt.Sprintf("/api/admin/lots/%d", lotID),
			request.UpdateLotRequest{SpotCount: &one}, s.adminToken)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code, w.Body.String())

		two := 2
		w = httptest.PerformRequest(t, s.Router, http.MethodPatch, fmt.Sprintf("/api/admin/lots/%d", lotID),
			request.UpdateLotRequest{SpotCount: &two}, s.adminToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var resized response.ResizeLotResponse
		httptest.DecodeResponseBody(t, w.Body, &resized)
		require.Equal(t, 2, resized.SpotCount)
		require.Equal(t, 1, resized.Retired)

		var occupancy response.OccupancyResponse
		s.get(fmt.Sprintf("/api/lots/%d/occupancy", lotID), &occupancy)
		require.Equal(t, 0, occupancy.Available)
		require.Equal(t, 2, occupancy.Occupied)
	})

	s.Run("利用中の駐車場は削除できず解放後に削除できる", func() {
		t := s.T()
		lotID, _ := dbtest.CreateTestLot(t, s.DB, "Main St", 1000, 1)
		_, token := s.driver("a@example.com")
		res := s.allocate(token, lotID)

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, fmt.Sprintf("/api/admin/lots/%d", lotID), nil, s.adminToken)
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf("/api/reservations/%d/release", res.ReservationID), nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodDelete, fmt.Sprintf("/api/admin/lots/%d", lotID), nil, s.adminToken)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf("/api/admin/lots/%d", lotID), nil, s.adminToken)
		require.Equal(t, http.StatusNotFound, w.Code, w.Body.String())
	})

	s.Run("利用中のスポットは削除できない", func() {
		t := s.T()
		lotID, spots := dbtest.CreateTestLot(t, s.DB, "Main St", 1000, 2)
		_, token := s.driver("a@example.com")
		s.allocate(token, lotID)

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, fmt.Sprintf("/api/admin/spots/%d", spots[0]), nil, s.adminToken)
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodDelete, fmt.Sprintf("/api/admin/spots/%d", spots[1]), nil, s.adminToken)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		var lot response.LotDetailsResponse
		s.get(fmt.Sprintf("/api/admin/lots/%d", lotID), &lot)
		require.Equal(t, 1, lot.Lot.SpotCount)
		require.Len(t, lot.Spots, 1)
	})
}
