package handler

import (
	"net/http"

	"grab-service/internal/handler/api"
	"grab-service/internal/handler/middleware"
	"grab-service/internal/pkg/config"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const claimRateScope = "claim"

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type RouterDeps struct {
	Config         config.Config
	Logger         *middleware.Logger
	AuthMiddleware *middleware.AuthMiddleware
	Limiter        middleware.Limiter
	ClaimHandler   *api.ClaimHandler
}

func NewRouter(engine *gin.Engine, d RouterDeps) {
	setupMiddleware(engine, d)
	setupRoutes(engine, d)
}

func setupMiddleware(engine *gin.Engine, d RouterDeps) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.Recovery())
	engine.Use(middleware.NewCORSMiddleware(d.Config.CORS))
	engine.Use(d.Logger.Middleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, d RouterDeps) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		claims := apiGroup.Group("/claims")
		claims.Use(d.AuthMiddleware.RequireAuth())
		{
			addRoutes(claims, []route{
				{
					Method:  http.MethodPost,
					Path:    "",
					Handler: d.ClaimHandler.Claim,
					Mw:      []gin.HandlerFunc{middleware.RateLimit(d.Limiter, claimRateScope)},
				},
				{Method: http.MethodPost, Path: "/validate", Handler: d.ClaimHandler.Validate},
				{Method: http.MethodGet, Path: "", Handler: d.ClaimHandler.List},
				{Method: http.MethodGet, Path: "/:code", Handler: d.ClaimHandler.Get},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		g.Handle(r.Method, r.Path, h)
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
