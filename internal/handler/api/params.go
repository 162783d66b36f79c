package api

import (
	"net/http"
	"strconv"

	"parkbuddy/internal/handler/httperr"
	"parkbuddy/internal/handler/middleware"
	"parkbuddy/internal/pkg/errs"
	"parkbuddy/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidID       = errs.New("invalid id")
	errUnauthenticated = errs.New("request is not authenticated")
)

// pathID parses a positive int64 path parameter, aborting with 400 otherwise.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err == nil && id <= 0 {
		err = errs.Newf("%s must be positive", name)
	}
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.Mark(errs.Wrapf(err, "parse %s", name), errInvalidID), "Invalid id", nil)
		return 0, false
	}
	return id, true
}

func requireActor(c *gin.Context) (shared.Actor, bool) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return shared.Actor{}, false
	}
	return actor, true
}

func queryInt(c *gin.Context, key string, fallback int) (int, bool) {
	v := c.Query(key)
	if v == "" {
		return fallback, true
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.Wrapf(err, "parse %s", key), "Invalid "+key, nil)
		return 0, false
	}
	return n, true
}
