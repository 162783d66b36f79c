//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"parkbuddy/internal/handler/api"
	resdto "parkbuddy/internal/handler/dto/response"
	"parkbuddy/internal/pkg/errs"
	"parkbuddy/internal/usecase/queries"
	"parkbuddy/internal/usecase/shared"
	"parkbuddy/tests/common/builder"
	"parkbuddy/tests/common/httptest"
	queriesmock "parkbuddy/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type LotHandlerTestSuite struct {
	suite.Suite
	router   *gin.Engine
	mockCtrl *gomock.Controller
	lots     *queriesmock.MockLotQueries
	stats    *queriesmock.MockStatsQueries
}

func (s *LotHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.lots = queriesmock.NewMockLotQueries(s.mockCtrl)
	s.stats = queriesmock.NewMockStatsQueries(s.mockCtrl)
	h := api.NewLotHandler(s.lots, s.stats)

	s.router.GET("/lots", h.List)
	s.router.GET("/lots/:id/occupancy", h.Occupancy)
	s.router.GET("/lots/:id/spots", h.Spots)
	s.router.GET("/spots/:id", h.Spot)
}

func (s *LotHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestLotHandlerSuite(t *testing.T) {
	suite.Run(t, new(LotHandlerTestSuite))
}

func (s *LotHandlerTestSuite) TestList() {
	s.Run("success: lots with occupancy", func() {
		s.stats.EXPECT().OccupancyAll(gomock.Any()).Return([]*queries.LotOccupancyView{
			builder.NewLotBuilder().WithSpotCount(3).BuildOccupancyView(1),
			builder.NewLotBuilder().WithID(2).WithName("Elm").WithRate(1550).BuildOccupancyView(0),
		}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/lots", nil, "")

		var response struct {
			Lots []resdto.LotOccupancyResponse `json:"lots"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response.Lots, 2)
		s.Equal(2, response.Lots[0].Available)
		s.Equal(1, response.Lots[0].Occupied)
		s.Equal("15.50", response.Lots[1].HourlyRate.Value)
	})

	s.Run("error: 503 on transient store failure", func() {
		s.stats.EXPECT().OccupancyAll(gomock.Any()).
			Return(nil, errs.Mark(errors.New("canceling statement due to statement timeout"), shared.ErrTransient)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/lots", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusServiceUnavailable, "")
		s.NotEmpty(rec.Header().Get("Retry-After"))
	})
}

func (s *LotHandlerTestSuite) TestOccupancy() {
	s.Run("success", func() {
		s.stats.EXPECT().Occupancy(gomock.Any(), int64(1)).
			Return(&queries.OccupancyView{LotID: 1, Available: 4, Occupied: 1}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/lots/1/occupancy", nil, "")

		var response resdto.OccupancyResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(4, response.Available)
	})

	s.Run("error: 404 on unknown lot", func() {
		s.stats.EXPECT().Occupancy(gomock.Any(), int64(9)).Return(nil, queries.ErrLotNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/lots/9/occupancy", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Lot not found")
	})
}

func (s *LotHandlerTestSuite) TestSpots() {
	s.lots.EXPECT().SpotsOf(gomock.Any(), int64(1)).Return([]*queries.SpotView{
		{ID: 1, LotID: 1, Status: "occupied"},
		{ID: 2, LotID: 1, Status: "available"},
	}, nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/lots/1/spots", nil, "")

	var response struct {
		Spots []resdto.SpotResponse `json:"spots"`
	}
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
	s.Require().Len(response.Spots, 2)
	s.Equal("occupied", response.Spots[0].Status)
}

func (s *LotHandlerTestSuite) TestSpot() {
	s.Run("error: 404 on unknown spot", func() {
		s.lots.EXPECT().SpotStatus(gomock.Any(), int64(3)).Return(nil, queries.ErrSpotNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/spots/3", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Spot not found")
	})

	s.Run("error: 400 on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/spots/x1", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})
}
