package api

import (
	"net/http"

	"tripdesk/internal/handler/httperr"
	"tripdesk/internal/infra/upstream"

	"github.com/gin-gonic/gin"
)

// abortGatewayError maps upstream failures to console responses. A 401 is
// deferred to the error middleware, which owns the session teardown; every
// screen funnels through here so the teardown happens exactly once.
func abortGatewayError(c *gin.Context, err error, msg string) {
	switch {
	case upstream.IsUnauthorized(err):
		httperr.Defer(c, err)
	case upstream.IsNotFound(err):
		httperr.AbortWithError(c, http.StatusNotFound, err, msg, nil)
	case upstream.IsKind(err, upstream.KindRejected):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, msg, nil)
	default:
		httperr.AbortWithError(c, http.StatusBadGateway, err, msg, nil)
	}
}
