package httperr

import (
	"net/http"
	"strconv"
	"time"

	"parkbuddy/internal/domain/lot"
	"parkbuddy/internal/domain/reservation"
	"parkbuddy/internal/domain/user"
	"parkbuddy/internal/pkg/errs"
	"parkbuddy/internal/usecase/commands"
	"parkbuddy/internal/usecase/queries"
	"parkbuddy/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

// TransientRetryAfter is advertised on 503 responses for retryable store failures.
const TransientRetryAfter = time.Second

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

type rule struct {
	target error
	status int
	msg    string
}

// Order matters: the first matching sentinel wins.
var rules = []rule{
	{shared.ErrTransient, http.StatusServiceUnavailable, "Temporarily unavailable, retry later"},

	{commands.ErrLotNotFound, http.StatusNotFound, "Lot not found"},
	{queries.ErrLotNotFound, http.StatusNotFound, "Lot not found"},
	{commands.ErrSpotNotFound, http.StatusNotFound, "Spot not found"},
	{queries.ErrSpotNotFound, http.StatusNotFound, "Spot not found"},
	{commands.ErrReservationNotFound, http.StatusNotFound, "Reservation not found"},
	{commands.ErrUserNotFound, http.StatusNotFound, "User not found"},
	{queries.ErrUserNotFound, http.StatusNotFound, "User not found"},

	{commands.ErrNoAvailableSpot, http.StatusConflict, "No available spot"},
	{commands.ErrAlreadyReleased, http.StatusConflict, "Reservation already released"},
	{commands.ErrSpotInUse, http.StatusConflict, "Spot has an open reservation"},
	{commands.ErrLotInUse, http.StatusConflict, "Lot has open reservations"},
	{commands.ErrEmailTaken, http.StatusConflict, "Email already registered"},

	{commands.ErrUserBlocked, http.StatusForbidden, "User is blocked"},
	{commands.ErrReservationNotOwned, http.StatusForbidden, "Reservation not owned by user"},
	{commands.ErrUserInactive, http.StatusForbidden, "Account is inactive"},
	{queries.ErrUserInactive, http.StatusForbidden, "Account is inactive"},

	{commands.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid email or password"},

	{lot.ErrBelowOccupied, http.StatusUnprocessableEntity, "Spot count below occupied spots"},

	{lot.ErrInvalidName, http.StatusBadRequest, "Invalid lot name"},
	{lot.ErrInvalidAddress, http.StatusBadRequest, "Invalid lot address"},
	{lot.ErrInvalidPinCode, http.StatusBadRequest, "Invalid pin code"},
	{lot.ErrInvalidSpotCount, http.StatusBadRequest, "Invalid spot count"},
	{lot.ErrInvalidRate, http.StatusBadRequest, "Invalid hourly rate"},
	{reservation.ErrNegativeAmount, http.StatusBadRequest, "Amount cannot be negative"},
	{reservation.ErrInvalidAmount, http.StatusBadRequest, "Invalid amount"},
	{user.ErrInvalidEmail, http.StatusBadRequest, "Invalid email"},
	{user.ErrInvalidFullName, http.StatusBadRequest, "Invalid full name"},
	{user.ErrInvalidPhone, http.StatusBadRequest, "Invalid phone"},
	{user.ErrPasswordTooWeak, http.StatusBadRequest, "Password too weak"},
	{queries.ErrInvalidWindow, http.StatusBadRequest, "Invalid time window"},
	{queries.ErrInvalidPopularLimit, http.StatusBadRequest, "Invalid limit"},
	{queries.ErrInvalidCursor, http.StatusBadRequest, "Invalid cursor"},
}

// Classify maps a use case error onto an HTTP status and public message.
func Classify(err error) (int, string) {
	for _, r := range rules {
		if errs.Is(err, r.target) {
			return r.status, r.msg
		}
	}
	return http.StatusInternalServerError, "Internal server error"
}

// AbortWithUseCaseError classifies err and aborts with the mapped status.
func AbortWithUseCaseError(c *gin.Context, err error) {
	status, msg := Classify(err)
	if status == http.StatusServiceUnavailable {
		c.Header("Retry-After", RetryAfterSeconds(TransientRetryAfter))
	}
	AbortWithError(c, status, err, msg, nil)
}

func RetryAfterSeconds(d time.Duration) string {
	secs := int64((d + time.Second - 1) / time.Second)
	if secs < 1 {
		secs = 1
	}
	return strconv.FormatInt(secs, 10)
}
