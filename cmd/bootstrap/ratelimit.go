package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"grab-service/internal/handler/middleware"
	"grab-service/internal/infra/ratelimit"
	"grab-service/internal/pkg/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const redisPingTimeout = 3 * time.Second

var RateLimitModule = fx.Module("ratelimit",
	fx.Provide(
		NewRedisClient,
		fx.Annotate(
			NewClaimLimiter,
			fx.As(new(middleware.Limiter)),
		),
	),
)

// NewRedisClient returns nil when REDIS_ADDR is empty, which disables throttling.
func NewRedisClient(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (redis.UniversalClient, error) {
	if cfg.Redis.Addr == "" {
		logger.Info("REDIS_ADDRが未設定のためレート制限は無効です")
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), redisPingTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		// the limiter fails open, so an unreachable Redis must not block startup
		logger.Warn("Redisに接続できません", "addr", cfg.Redis.Addr, "error", err.Error())
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})
	return client, nil
}

func NewClaimLimiter(client redis.UniversalClient, cfg config.Config) *ratelimit.RedisLimiter {
	return ratelimit.NewRedisLimiter(client, "", cfg.Engine.ClaimRateLimit, cfg.Engine.ClaimRateWindow)
}
