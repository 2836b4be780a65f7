package bootstrap

import (
	"grab-service/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	JWTModule,
	RateLimitModule,
	NotifierModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)
