package bootstrap

import (
	"context"
	"log/slog"

	"grab-service/internal/infra/notify"
	"grab-service/internal/infra/repository"
	"grab-service/internal/pkg/clock"
	"grab-service/internal/pkg/config"
	"grab-service/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var NotifierModule = fx.Module("notifier",
	fx.Provide(
		NewNotifier,
	),
)

// NewNotifier publishes to the broker when AMQP_URL is set. Without a broker,
// or when it cannot be reached at startup, notifications are queued as jobs.
func NewNotifier(lc fx.Lifecycle, cfg config.Config, pool *pgxpool.Pool, jobs *repository.NotificationRepository, clk clock.Clock, logger *slog.Logger) shared.Notifier {
	fallback := notify.NewJobQueue(jobs, pool, clk)
	if cfg.AMQP.URL == "" {
		logger.Info("AMQPが未設定のため通知はジョブキューに保存します")
		return fallback
	}

	publisher, err := notify.NewPublisher(cfg.AMQP.URL, cfg.AMQP.Exchange)
	if err != nil {
		logger.Warn("AMQPに接続できないためジョブキューを使用します", "error", err.Error())
		return fallback
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			publisher.Close()
			return nil
		},
	})
	logger.Info("通知をAMQPへ送信します", "exchange", cfg.AMQP.Exchange)
	return publisher
}
