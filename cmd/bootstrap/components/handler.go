package components

import (
	"grab-service/internal/handler"
	"grab-service/internal/handler/api"
	"grab-service/internal/handler/middleware"
	"grab-service/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewClaimHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(registerRoutes),
)

func registerRoutes(
	engine *gin.Engine,
	cfg config.Config,
	logger *middleware.Logger,
	auth *middleware.AuthMiddleware,
	limiter middleware.Limiter,
	claims *api.ClaimHandler,
) {
	handler.NewRouter(engine, handler.RouterDeps{
		Config:         cfg,
		Logger:         logger,
		AuthMiddleware: auth,
		Limiter:        limiter,
		ClaimHandler:   claims,
	})
}
