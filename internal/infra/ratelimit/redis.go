package ratelimit

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"grab-service/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

const defaultPrefix = "grab:rate_limit"

// fixedWindowScript counts hits in a window that starts with the first hit.
var fixedWindowScript = redis.NewScript(`
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
local ttl = redis.call("PTTL", KEYS[1])
if ttl < 0 then
  ttl = tonumber(ARGV[1])
end
return {current, ttl}
`)

type Decision struct {
	Allowed    bool
	Count      int
	RetryAfter time.Duration
}

type RedisLimiter struct {
	client redis.UniversalClient
	prefix string
	limit  int
	window time.Duration
}

func NewRedisLimiter(client redis.UniversalClient, prefix string, limit int, window time.Duration) *RedisLimiter {
	prefix = strings.TrimSuffix(strings.TrimSpace(prefix), ":")
	if prefix == "" {
		prefix = defaultPrefix
	}
	return &RedisLimiter{client: client, prefix: prefix, limit: limit, window: window}
}

// Consume records one hit for subject in scope. A limiter without a client or
// with a non-positive limit allows everything.
func (r *RedisLimiter) Consume(ctx context.Context, scope, subject string) (Decision, error) {
	if r == nil || r.client == nil || r.limit <= 0 || r.window <= 0 {
		return Decision{Allowed: true}, nil
	}

	scope = strings.TrimSpace(scope)
	subject = strings.TrimSpace(subject)
	if scope == "" || subject == "" {
		return Decision{Allowed: true}, nil
	}

	windowMs := r.window.Milliseconds()
	if windowMs < 1000 {
		windowMs = 1000
	}

	key := fmt.Sprintf("%s:%s:%s", r.prefix, scope, subject)
	raw, err := fixedWindowScript.Run(ctx, r.client, []string{key}, windowMs).Result()
	if err != nil {
		return Decision{}, errs.Wrap(err, "rate limit script failed")
	}

	values, ok := raw.([]any)
	if !ok || len(values) != 2 {
		return Decision{}, errs.New(fmt.Sprintf("unexpected rate limiter response shape: %T", raw))
	}
	count, ok := values[0].(int64)
	if !ok {
		return Decision{}, errs.New(fmt.Sprintf("unexpected rate limiter count type: %T", values[0]))
	}
	ttlMs, ok := values[1].(int64)
	if !ok || ttlMs < 0 {
		ttlMs = windowMs
	}

	d := Decision{Allowed: int(count) <= r.limit, Count: int(count)}
	if !d.Allowed {
		seconds := int64(math.Ceil(float64(ttlMs) / 1000.0))
		d.RetryAfter = time.Duration(max(seconds, 1)) * time.Second
	}
	return d, nil
}
