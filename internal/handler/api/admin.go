package api

import (
	"net/http"
	"strconv"
	"time"

	reqdto "parkbuddy/internal/handler/dto/request"
	resdto "parkbuddy/internal/handler/dto/response"
	"parkbuddy/internal/handler/httperr"
	"parkbuddy/internal/pkg/errs"
	"parkbuddy/internal/usecase/commands"
	"parkbuddy/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	lotCmds commands.LotCommands
	lots    queries.LotQueries
	stats   queries.StatsQueries
	users   queries.UserQueries
}

func NewAdminHandler(
	lotCmds commands.LotCommands,
	lots queries.LotQueries,
	stats queries.StatsQueries,
	users queries.UserQueries,
) *AdminHandler {
	return &AdminHandler{lotCmds: lotCmds, lots: lots, stats: stats, users: users}
}

// @Summary Dashboard
// @Description Totals, last-24h reservations, today's revenue and the most popular lot
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.DashboardResponse
// @Failure 403 {object} httperr.Response
// @Router /api/admin/stats/dashboard [get]
func (h *AdminHandler) Dashboard(c *gin.Context) {
	view, err := h.stats.Dashboard(c.Request.Context())
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDashboardView(view))
}

// @Summary Revenue
// @Description Sum of billed cost since a timestamp, or within [from, to)
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param from query string true "RFC3339 start"
// @Param to query string false "RFC3339 end (exclusive)"
// @Success 200 {object} resdto.RevenueResponse
// @Failure 400 {object} httperr.Response
// @Router /api/admin/stats/revenue [get]
func (h *AdminHandler) Revenue(c *gin.Context) {
	from, err := time.Parse(time.RFC3339, c.Query("from"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid from", nil)
		return
	}

	var view *queries.RevenueView
	if rawTo := c.Query("to"); rawTo != "" {
		to, parseErr := time.Parse(time.RFC3339, rawTo)
		if parseErr != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, parseErr, "Invalid to", nil)
			return
		}
		view, err = h.stats.RevenueBetween(c.Request.Context(), from, to)
	} else {
		view, err = h.stats.RevenueSince(c.Request.Context(), from)
	}
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRevenueView(view))
}

// @Summary Popular lots
// @Description Lots ordered by reservation count, including lots never used
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Max items (default 5)"
// @Success 200 {array} resdto.PopularLotResponse
// @Failure 400 {object} httperr.Response
// @Router /api/admin/stats/popular-lots [get]
func (h *AdminHandler) PopularLots(c *gin.Context) {
	limit, ok := queryInt(c, "limit", queries.DefaultPopularLimit)
	if !ok {
		return
	}
	views, err := h.stats.PopularLots(c.Request.Context(), limit)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"lots": resdto.FromPopularLots(views)})
}

// @Summary Lot details
// @Description A lot with each spot's occupant and start time
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Lot ID"
// @Success 200 {object} resdto.LotDetailsResponse
// @Failure 404 {object} httperr.Response
// @Router /api/admin/lots/{id} [get]
func (h *AdminHandler) LotDetails(c *gin.Context) {
	lotID, ok := pathID(c, "id")
	if !ok {
		return
	}
	view, err := h.lots.LotDetails(c.Request.Context(), lotID)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromLotDetails(view))
}

// @Summary Create lot
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateLotRequest true "Create lot request"
// @Success 201 {object} resdto.CreateLotResponse
// @Failure 400 {object} httperr.Response
// @Router /api/admin/lots [post]
func (h *AdminHandler) CreateLot(c *gin.Context) {
	var req reqdto.CreateLotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	in, err := req.ToInput()
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}

	id, err := h.lotCmds.CreateLot(c.Request.Context(), in)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.Header("Location", "/api/admin/lots/"+strconv.FormatInt(id, 10))
	c.JSON(http.StatusCreated, resdto.CreateLotResponse{ID: id})
}

// @Summary Update lot
// @Description Patch lot fields; a new spot count grows or shrinks the lot
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Lot ID"
// @Param request body reqdto.UpdateLotRequest true "Update lot request"
// @Success 200 {object} resdto.ResizeLotResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/admin/lots/{id} [patch]
func (h *AdminHandler) UpdateLot(c *gin.Context) {
	lotID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.UpdateLotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	patch, err := req.ToPatch()
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}

	result, err := h.lotCmds.ResizeLot(c.Request.Context(), lotID, patch)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromResizeLotResult(result))
}

// @Summary Delete lot
// @Tags admin
// @Security BearerAuth
// @Param id path int true "Lot ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/admin/lots/{id} [delete]
func (h *AdminHandler) DeleteLot(c *gin.Context) {
	lotID, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.lotCmds.DeleteLot(c.Request.Context(), lotID); err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Remove spot
// @Description Retire one spot; refused while a reservation on it is open
// @Tags admin
// @Security BearerAuth
// @Param id path int true "Spot ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/admin/spots/{id} [delete]
func (h *AdminHandler) RemoveSpot(c *gin.Context) {
	spotID, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.lotCmds.RemoveSpot(c.Request.Context(), spotID); err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List users
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.UserResponse
// @Router /api/admin/users [get]
func (h *AdminHandler) ListUsers(c *gin.Context) {
	views, err := h.users.ListUsers(c.Request.Context())
	if err != nil {
		httperr.AbortWithUseCaseError(c, errs.Wrap(err, "list users"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": resdto.FromUserList(views)})
}
