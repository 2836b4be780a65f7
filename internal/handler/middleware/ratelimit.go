package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"grab-service/internal/handler/httperr"
	"grab-service/internal/infra/ratelimit"

	"github.com/gin-gonic/gin"
)

type Limiter interface {
	Consume(ctx context.Context, scope, subject string) (ratelimit.Decision, error)
}

// RateLimit throttles authenticated callers per scope. The store being down
// lets requests through.
func RateLimit(limiter Limiter, scope string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := GetUserID(c)
		if !ok {
			return
		}

		d, err := limiter.Consume(c.Request.Context(), scope, userID.String())
		if err != nil {
			slog.WarnContext(c.Request.Context(), "rate limiter unavailable", "scope", scope, "error", err.Error())
			return
		}
		if !d.Allowed {
			c.Header("Retry-After", strconv.Itoa(int(d.RetryAfter.Seconds())))
			httperr.AbortWithError(c, http.StatusTooManyRequests, nil, "Too many requests",
				httperr.Reason{Reason: "rate_limited"})
		}
	}
}
