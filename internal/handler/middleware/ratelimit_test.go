//go:build unit

package middleware_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"grab-service/internal/handler/middleware"
	"grab-service/internal/infra/ratelimit"
	"grab-service/tests/common/httptest"
	middlewaremock "grab-service/tests/mock/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newLimitedRouter(t *testing.T, userID uuid.UUID) (*gin.Engine, *middlewaremock.MockLimiter) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	limiter := middlewaremock.NewMockLimiter(gomock.NewController(t))
	r := gin.New()
	authed := func(c *gin.Context) {
		if userID != uuid.Nil {
			c.Set("user_id", userID)
		}
	}
	r.POST("/claims", authed, middleware.RateLimit(limiter, "claim"), func(c *gin.Context) {
		c.Status(http.StatusCreated)
	})
	return r, limiter
}

func TestRateLimit(t *testing.T) {
	userID := uuid.New()

	t.Run("allowed request reaches the handler", func(t *testing.T) {
		r, limiter := newLimitedRouter(t, userID)
		limiter.EXPECT().Consume(gomock.Any(), "claim", userID.String()).
			Return(ratelimit.Decision{Allowed: true, Count: 1}, nil)

		rec := httptest.PerformRequest(t, r, http.MethodPost, "/claims", nil, "")
		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("denied request gets 429 with Retry-After", func(t *testing.T) {
		r, limiter := newLimitedRouter(t, userID)
		limiter.EXPECT().Consume(gomock.Any(), "claim", userID.String()).
			Return(ratelimit.Decision{Allowed: false, Count: 11, RetryAfter: 42 * time.Second}, nil)

		rec := httptest.PerformRequest(t, r, http.MethodPost, "/claims", nil, "")
		httptest.AssertReason(t, rec, http.StatusTooManyRequests, "rate_limited", "")
		httptest.AssertHeaders(t, rec, map[string]string{"Retry-After": "42"})
	})

	t.Run("limiter failure lets the request through", func(t *testing.T) {
		r, limiter := newLimitedRouter(t, userID)
		limiter.EXPECT().Consume(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(ratelimit.Decision{}, errors.New("connection refused"))

		rec := httptest.PerformRequest(t, r, http.MethodPost, "/claims", nil, "")
		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("anonymous request is not counted", func(t *testing.T) {
		r, _ := newLimitedRouter(t, uuid.Nil)

		rec := httptest.PerformRequest(t, r, http.MethodPost, "/claims", nil, "")
		assert.Equal(t, http.StatusCreated, rec.Code)
	})
}
