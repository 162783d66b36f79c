package api

import (
	"bytes"
	"net/http"
	"strconv"
	"time"

	resdto "parkbuddy/internal/handler/dto/response"
	"parkbuddy/internal/handler/httperr"
	"parkbuddy/internal/usecase/commands"
	"parkbuddy/internal/usecase/queries"
	"parkbuddy/internal/usecase/report"

	"github.com/gin-gonic/gin"
)

type ParkingHandler struct {
	cmds         commands.ParkingCommands
	reservations queries.ReservationQueries
}

func NewParkingHandler(cmds commands.ParkingCommands, reservations queries.ReservationQueries) *ParkingHandler {
	return &ParkingHandler{cmds: cmds, reservations: reservations}
}

// @Summary Allocate a spot
// @Description Claim the lowest-id available spot of a lot for the caller
// @Tags parking
// @Produce json
// @Security BearerAuth
// @Param id path int true "Lot ID"
// @Success 201 {object} resdto.AllocationResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 429 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/lots/{id}/allocations [post]
func (h *ParkingHandler) Allocate(c *gin.Context) {
	lotID, ok := pathID(c, "id")
	if !ok {
		return
	}
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	result, err := h.cmds.Allocate(c.Request.Context(), lotID, actor)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.Header("Location", "/api/me/reservations/active")
	c.JSON(http.StatusCreated, resdto.FromAllocateResult(result))
}

// @Summary Release a reservation
// @Description End a reservation, bill it and free its spot
// @Tags parking
// @Produce json
// @Security BearerAuth
// @Param id path int true "Reservation ID"
// @Success 200 {object} resdto.ReleaseResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 429 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/reservations/{id}/release [post]
func (h *ParkingHandler) Release(c *gin.Context) {
	reservationID, ok := pathID(c, "id")
	if !ok {
		return
	}
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	result, err := h.cmds.Release(c.Request.Context(), reservationID, actor)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReleaseResult(result))
}

// @Summary Reservation history
// @Description List the caller's reservations, most recent first, with keyset pagination
// @Tags parking
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {array} resdto.ReservationListResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /api/me/reservations [get]
func (h *ParkingHandler) History(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	limit, ok := queryInt(c, "limit", queries.DefaultListLimit)
	if !ok {
		return
	}
	var cursor *queries.Cursor
	if after := c.Query("after"); after != "" {
		cursor = &queries.Cursor{After: after}
	}

	items, next, err := h.reservations.History(c.Request.Context(), actor.UserID, cursor, queries.ValidateLimit(limit))
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	resp := gin.H{"reservations": resdto.FromReservationList(items)}
	if next != nil {
		resp["next_cursor"] = next.After
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Active reservations
// @Description List the caller's open reservations
// @Tags parking
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.ActiveReservationResponse
// @Failure 401 {object} httperr.Response
// @Router /api/me/reservations/active [get]
func (h *ParkingHandler) Active(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	views, err := h.reservations.Active(c.Request.Context(), actor.UserID)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reservations": resdto.FromActiveReservations(views)})
}

// @Summary Export reservation history
// @Description Download the caller's full reservation history as CSV
// @Tags parking
// @Produce text/csv
// @Security BearerAuth
// @Success 200 {string} string "CSV file"
// @Failure 401 {object} httperr.Response
// @Router /api/me/reservations/export [get]
func (h *ParkingHandler) ExportHistory(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	items, err := h.reservations.FullHistory(c.Request.Context(), actor.UserID)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}

	var buf bytes.Buffer
	if err := report.WriteHistoryCSV(&buf, items, time.UTC); err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to render export", nil)
		return
	}
	c.Header("Content-Disposition", "attachment; filename="+strconv.Quote(report.HistoryFilename))
	c.Data(http.StatusOK, report.HistoryContentType, buf.Bytes())
}
