//go:build unit

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"tripdesk/internal/handler/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func performFrom(router *gin.Engine, ip string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/loginPage", nil)
	req.RemoteAddr = ip + ":12345"
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestLoginRateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/loginPage", middleware.LoginRateLimit(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	for i := 0; i < 5; i++ {
		rec := performFrom(router, "198.51.100.7")
		assert.Equal(t, http.StatusOK, rec.Code, "attempt %d should pass", i+1)
	}

	rec := performFrom(router, "198.51.100.7")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)

	// Another client is unaffected by the first one's burst.
	rec = performFrom(router, "203.0.113.9")
	assert.Equal(t, http.StatusOK, rec.Code)
}
