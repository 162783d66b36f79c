//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"parkbuddy/internal/domain/lot"
	"parkbuddy/internal/domain/reservation"
	"parkbuddy/internal/handler/api"
	resdto "parkbuddy/internal/handler/dto/response"
	"parkbuddy/internal/usecase/commands"
	"parkbuddy/internal/usecase/queries"
	"parkbuddy/tests/common/builder"
	"parkbuddy/tests/common/httptest"
	"parkbuddy/tests/common/testutil"
	commandsmock "parkbuddy/tests/mock/commands"
	queriesmock "parkbuddy/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AdminHandlerTestSuite struct {
	suite.Suite
	router   *gin.Engine
	mockCtrl *gomock.Controller
	lotCmds  *commandsmock.MockLotCommands
	lots     *queriesmock.MockLotQueries
	stats    *queriesmock.MockStatsQueries
	users    *queriesmock.MockUserQueries
}

func (s *AdminHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.lotCmds = commandsmock.NewMockLotCommands(s.mockCtrl)
	s.lots = queriesmock.NewMockLotQueries(s.mockCtrl)
	s.stats = queriesmock.NewMockStatsQueries(s.mockCtrl)
	s.users = queriesmock.NewMockUserQueries(s.mockCtrl)
	h := api.NewAdminHandler(s.lotCmds, s.lots, s.stats, s.users)

	s.router.GET("/admin/stats/dashboard", h.Dashboard)
	s.router.GET("/admin/stats/revenue", h.Revenue)
	s.router.GET("/admin/stats/popular-lots", h.PopularLots)
	s.router.GET("/admin/lots/:id", h.LotDetails)
	s.router.POST("/admin/lots", h.CreateLot)
	s.router.PATCH("/admin/lots/:id", h.UpdateLot)
	s.router.DELETE("/admin/lots/:id", h.DeleteLot)
	s.router.DELETE("/admin/spots/:id", h.RemoveSpot)
	s.router.GET("/admin/users", h.ListUsers)
}

func (s *AdminHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAdminHandlerSuite(t *testing.T) {
	suite.Run(t, new(AdminHandlerTestSuite))
}

func (s *AdminHandlerTestSuite) TestCreateLot() {
	url := "/admin/lots"
	reqBody := builder.NewLotBuilder().BuildCreateDTO()

	s.Run("success: returns 201 with the new id", func() {
		s.lotCmds.EXPECT().CreateLot(gomock.Any(), commands.CreateLotInput{
			Name:       "Main St",
			Address:    "1 Main St",
			PinCode:    "560001",
			HourlyRate: reservation.MustMoney(1000),
			SpotCount:  2,
		}).Return(int64(7), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.CreateLotResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(int64(7), response.ID)
		s.Equal("/api/admin/lots/7", rec.Header().Get("Location"))
	})

	s.Run("success: zero spots is allowed", func() {
		s.lotCmds.EXPECT().CreateLot(gomock.Any(), gomock.Any()).Return(int64(8), nil).Times(1)

		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("spot_count", 0))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []struct {
			name   string
			mutate func(map[string]any)
			msg    string
		}{
			{name: "missing name", mutate: testutil.Field("name", nil), msg: "Invalid request"},
			{name: "missing spot count", mutate: testutil.Field("spot_count", nil), msg: "Invalid request"},
			{name: "negative spot count", mutate: testutil.Field("spot_count", -1), msg: "Invalid request"},
			{name: "pin code with letters", mutate: testutil.Field("pin_code", "56A001"), msg: "Invalid request"},
			{name: "rate with three decimals", mutate: testutil.Field("hourly_rate", "10.005"), msg: "Invalid amount"},
			{name: "negative rate", mutate: testutil.Field("hourly_rate", "-1.00"), msg: ""},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, tc.msg)
			})
		}
	})
}

func (s *AdminHandlerTestSuite) TestUpdateLot() {
	url := "/admin/lots/1"

	s.Run("success: resize reports added and retired spots", func() {
		count := 5
		s.lotCmds.EXPECT().ResizeLot(gomock.Any(), int64(1), lot.Patch{SpotCount: &count}).
			Return(&commands.ResizeLotResult{LotID: 1, SpotCount: 5, Added: 3}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"spot_count": 5}, "")

		var response resdto.ResizeLotResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(3, response.Added)
		s.Equal(5, response.SpotCount)
	})

	s.Run("success: rate patch is parsed to cents", func() {
		rate := reservation.MustMoney(1550)
		s.lotCmds.EXPECT().ResizeLot(gomock.Any(), int64(1), lot.Patch{HourlyRate: &rate}).
			Return(&commands.ResizeLotResult{LotID: 1, SpotCount: 2}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"hourly_rate": "15.50"}, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			err            error
			expectedStatus int
		}{
			{name: "below occupied", err: lot.ErrBelowOccupied, expectedStatus: http.StatusUnprocessableEntity},
			{name: "unknown lot", err: commands.ErrLotNotFound, expectedStatus: http.StatusNotFound},
			{name: "occupied spot in the way", err: commands.ErrSpotInUse, expectedStatus: http.StatusConflict},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.lotCmds.EXPECT().ResizeLot(gomock.Any(), int64(1), gomock.Any()).Return(nil, tc.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"spot_count": 1}, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, "")
			})
		}
	})
}

func (s *AdminHandlerTestSuite) TestDeleteLot() {
	s.Run("success: returns 204", func() {
		s.lotCmds.EXPECT().DeleteLot(gomock.Any(), int64(1)).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/admin/lots/1", nil, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 409 while reservations are open", func() {
		s.lotCmds.EXPECT().DeleteLot(gomock.Any(), int64(1)).Return(commands.ErrLotInUse).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/admin/lots/1", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Lot has open reservations")
	})
}

func (s *AdminHandlerTestSuite) TestRemoveSpot() {
	s.Run("success: returns 204", func() {
		s.lotCmds.EXPECT().RemoveSpot(gomock.Any(), int64(4)).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/admin/spots/4", nil, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 409 on an occupied spot", func() {
		s.lotCmds.EXPECT().RemoveSpot(gomock.Any(), int64(4)).Return(commands.ErrSpotInUse).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/admin/spots/4", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Spot has an open reservation")
	})
}

func (s *AdminHandlerTestSuite) TestRevenue() {
	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	to := from.Add(24 * time.Hour)

	s.Run("success: since a timestamp", func() {
		s.stats.EXPECT().RevenueSince(gomock.Any(), from).
			Return(&queries.RevenueView{From: from, RevenueCents: 2508}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/stats/revenue?from=2025-01-01T00:00:00Z", nil, "")

		var response resdto.RevenueResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("25.08", response.Revenue.Value)
		s.Nil(response.To)
	})

	s.Run("success: within a window", func() {
		s.stats.EXPECT().RevenueBetween(gomock.Any(), from, to).
			Return(&queries.RevenueView{From: from, To: &to, RevenueCents: 0}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/admin/stats/revenue?from=2025-01-01T00:00:00Z&to=2025-01-02T00:00:00Z", nil, "")

		var response resdto.RevenueResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("0.00", response.Revenue.Value)
	})

	s.Run("error: 400 on missing from", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/stats/revenue", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid from")
	})

	s.Run("error: 400 on an empty window", func() {
		s.stats.EXPECT().RevenueBetween(gomock.Any(), to, from).Return(nil, queries.ErrInvalidWindow).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/admin/stats/revenue?from=2025-01-02T00:00:00Z&to=2025-01-01T00:00:00Z", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid time window")
	})
}

func (s *AdminHandlerTestSuite) TestPopularLots() {
	s.Run("success: default limit", func() {
		s.stats.EXPECT().PopularLots(gomock.Any(), queries.DefaultPopularLimit).
			Return([]*queries.PopularLotView{{LotID: 1, Name: "Main St", ReservationCount: 4}, {LotID: 2, Name: "Elm"}}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/stats/popular-lots", nil, "")

		var response struct {
			Lots []resdto.PopularLotResponse `json:"lots"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response.Lots, 2)
		s.Equal(int64(0), response.Lots[1].ReservationCount)
	})

	s.Run("error: 400 on negative limit", func() {
		s.stats.EXPECT().PopularLots(gomock.Any(), -1).Return(nil, queries.ErrInvalidPopularLimit).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/stats/popular-lots?limit=-1", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid limit")
	})
}

func (s *AdminHandlerTestSuite) TestDashboard() {
	s.stats.EXPECT().Dashboard(gomock.Any()).Return(&queries.DashboardView{
		TotalLots:         1,
		TotalSpots:        2,
		OccupiedSpots:     1,
		AvailableSpots:    1,
		RevenueTodayCents: 1008,
		MostPopularLot:    &queries.PopularLotView{LotID: 1, Name: "Main St", ReservationCount: 3},
	}, nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/stats/dashboard", nil, "")

	var response resdto.DashboardResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
	s.Equal("10.08", response.RevenueToday.Value)
	s.Require().NotNil(response.MostPopularLot)
	s.Equal("Main St", response.MostPopularLot.Name)
}

func (s *AdminHandlerTestSuite) TestLotDetails() {
	view := builder.NewLotBuilder().BuildView()
	since := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)
	email := "driver@example.com"
	resID := int64(5)

	s.lots.EXPECT().LotDetails(gomock.Any(), int64(1)).Return(&queries.LotDetailsView{
		Lot: *view,
		Spots: []*queries.SpotDetailView{
			{SpotID: 1, Status: "occupied", ReservationID: &resID, OccupantEmail: &email, OccupiedSince: &since},
			{SpotID: 2, Status: "available"},
		},
	}, nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/lots/1", nil, "")

	var response resdto.LotDetailsResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
	s.Equal("10.00", response.Lot.HourlyRate.Value)
	s.Require().Len(response.Spots, 2)
	s.Equal(email, *response.Spots[0].OccupantEmail)
	s.Equal(since.Unix(), *response.Spots[0].OccupiedSince)
	s.Nil(response.Spots[1].OccupantEmail)
}

func (s *AdminHandlerTestSuite) TestListUsers() {
	blocked := builder.NewUserBuilder().AsInactive().BuildView()
	s.users.EXPECT().ListUsers(gomock.Any()).Return([]*queries.UserView{blocked}, nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/users", nil, "")

	var response struct {
		Users []resdto.UserResponse `json:"users"`
	}
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
	s.Require().Len(response.Users, 1)
	s.False(response.Users[0].IsActive)
}
