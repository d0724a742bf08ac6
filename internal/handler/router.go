package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"

	"golden-key-funnel/internal/handler/api"
	"golden-key-funnel/internal/handler/middleware"
	"golden-key-funnel/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

type Handlers struct {
	fx.In

	Activation   *api.ActivationHandler
	Webinar      *api.WebinarHandler
	Confirmation *api.ConfirmationHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, handlers Handlers, sessions *middleware.SessionMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, handlers, sessions)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	slogger := logger.GetSlogLogger()
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery(slogger))
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS, slogger))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler(slogger))
}

func setupRoutes(engine *gin.Engine, h Handlers, sessions *middleware.SessionMiddleware) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	apiGroup.Use(sessions.Ensure())
	{
		addRoutes(apiGroup.Group("/activation"), []route{
			{Method: http.MethodPost, Path: "/lead", Handler: h.Activation.SubmitLead},
			{Method: http.MethodPut, Path: "/key", Handler: h.Activation.KeyInput},
			{Method: http.MethodPost, Path: "/submit", Handler: h.Activation.SubmitKey},
			{Method: http.MethodGet, Path: "/status", Handler: h.Activation.Status},
			{Method: http.MethodGet, Path: "/console", Handler: h.Activation.Console},
		})

		addRoutes(apiGroup.Group("/webinar"), []route{
			{Method: http.MethodPost, Path: "/registrations", Handler: h.Webinar.Register},
		})

		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/confirmation", Handler: h.Confirmation.Get},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}
