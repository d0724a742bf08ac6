package middleware

import (
	"log/slog"
	"slices"

	"golden-key-funnel/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewCORSMiddleware lets the funnel pages, served from another origin, call the API with
// their session and visitor cookies.
func NewCORSMiddleware(cfg config.CORSConfig, logger *slog.Logger) gin.HandlerFunc {
	origins := cfg.AllowOrigins
	if cfg.AllowCredentials && slices.Contains(origins, "*") {
		// Browsers reject credentialed responses for a wildcard origin.
		logger.Warn("CORS wildcard origin ignored while credentials are allowed")
		origins = slices.DeleteFunc(slices.Clone(origins), func(o string) bool { return o == "*" })
	}

	corsCfg := cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     cfg.AllowHeaders,
		ExposeHeaders:    cfg.ExposeHeaders,
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}
	logger.Info("CORS middleware initialized", slog.Any("allow_origins", origins))
	return cors.New(corsCfg)
}
