package bootstrap

import (
	"time"

	"grab-service/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		NewEngineLocation,
	),
)

// NewEngineLocation fails startup on an unknown ENGINE_TIMEZONE rather than
// silently counting days in UTC.
func NewEngineLocation(cfg config.Config) (*time.Location, error) {
	return cfg.Engine.Location()
}
