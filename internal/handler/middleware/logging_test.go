//go:build unit

package middleware_test

import (
	"net/http"
	"testing"

	"grab-service/internal/handler/middleware"
	"grab-service/internal/pkg/config"
	"grab-service/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestLoggerMiddleware_RequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger := middleware.NewLogger(config.NewTestConfig().Log)

	r := gin.New()
	r.Use(logger.Middleware())
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, middleware.GetRequestID(c))
	})

	t.Run("caller id is echoed", func(t *testing.T) {
		rec := httptest.PerformRequestWithHeaders(t, r, http.MethodGet, "/ping", nil, "",
			map[string]string{middleware.HeaderRequestID: "req-123"})

		assert.Equal(t, "req-123", rec.Header().Get(middleware.HeaderRequestID))
		assert.Equal(t, "req-123", rec.Body.String())
	})

	t.Run("malformed id is replaced", func(t *testing.T) {
		rec := httptest.PerformRequestWithHeaders(t, r, http.MethodGet, "/ping", nil, "",
			map[string]string{middleware.HeaderRequestID: "bad id with spaces"})

		got := rec.Header().Get(middleware.HeaderRequestID)
		assert.NotEqual(t, "bad id with spaces", got)
		assert.Regexp(t, `^\d{14}-[0-9a-f]{8}$`, got)
		assert.Equal(t, got, rec.Body.String())
	})
}
