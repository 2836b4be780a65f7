package middleware

import (
	"log/slog"
	"strings"

	"grab-service/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// exposedHeaders are always readable by browsers on top of the configured set.
var exposedHeaders = []string{"Retry-After", "Idempotent-Replayed", HeaderRequestID}

func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	expose := append([]string{}, cfg.ExposeHeaders...)
	for _, h := range exposedHeaders {
		if !containsFold(expose, h) {
			expose = append(expose, h)
		}
	}

	slog.Info("CORS middleware initialized", "allow_origins", cfg.AllowOrigins, "expose_headers", expose)
	return cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     cfg.AllowHeaders,
		ExposeHeaders:    expose,
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	})
}

func containsFold(list []string, v string) bool {
	for _, s := range list {
		if strings.EqualFold(s, v) {
			return true
		}
	}
	return false
}
