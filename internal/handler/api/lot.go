package api

import (
	"net/http"

	resdto "parkbuddy/internal/handler/dto/response"
	"parkbuddy/internal/handler/httperr"
	"parkbuddy/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type LotHandler struct {
	lots  queries.LotQueries
	stats queries.StatsQueries
}

func NewLotHandler(lots queries.LotQueries, stats queries.StatsQueries) *LotHandler {
	return &LotHandler{lots: lots, stats: stats}
}

// @Summary List lots
// @Description List every lot with its rate and current occupancy
// @Tags lots
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.LotOccupancyResponse
// @Failure 401 {object} httperr.Response
// @Router /api/lots [get]
func (h *LotHandler) List(c *gin.Context) {
	views, err := h.stats.OccupancyAll(c.Request.Context())
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"lots": resdto.FromLotOccupancyList(views)})
}

// @Summary Lot occupancy
// @Tags lots
// @Produce json
// @Security BearerAuth
// @Param id path int true "Lot ID"
// @Success 200 {object} resdto.OccupancyResponse
// @Failure 404 {object} httperr.Response
// @Router /api/lots/{id}/occupancy [get]
func (h *LotHandler) Occupancy(c *gin.Context) {
	lotID, ok := pathID(c, "id")
	if !ok {
		return
	}
	view, err := h.stats.Occupancy(c.Request.Context(), lotID)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOccupancyView(view))
}

// @Summary Lot spots
// @Description List the spots of a lot in allocation order
// @Tags lots
// @Produce json
// @Security BearerAuth
// @Param id path int true "Lot ID"
// @Success 200 {array} resdto.SpotResponse
// @Failure 404 {object} httperr.Response
// @Router /api/lots/{id}/spots [get]
func (h *LotHandler) Spots(c *gin.Context) {
	lotID, ok := pathID(c, "id")
	if !ok {
		return
	}
	views, err := h.lots.SpotsOf(c.Request.Context(), lotID)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"spots": resdto.FromSpotList(views)})
}

// @Summary Spot status
// @Tags lots
// @Produce json
// @Security BearerAuth
// @Param id path int true "Spot ID"
// @Success 200 {object} resdto.SpotResponse
// @Failure 404 {object} httperr.Response
// @Router /api/spots/{id} [get]
func (h *LotHandler) Spot(c *gin.Context) {
	spotID, ok := pathID(c, "id")
	if !ok {
		return
	}
	view, err := h.lots.SpotStatus(c.Request.Context(), spotID)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSpotView(view))
}
