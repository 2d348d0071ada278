package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"restaurant-page/internal/handler/api"
	"restaurant-page/internal/handler/middleware"
	"restaurant-page/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, pageHandler *api.PageHandler) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, pageHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, pageHandler *api.PageHandler) {
	engine.GET("/health", healthCheck)

	apiGroup := engine.Group("/api")
	{
		restaurants := apiGroup.Group("/restaurants")
		{
			addRoutes(restaurants, []route{
				{Method: http.MethodGet, Path: "/:id", Handler: pageHandler.GetPage},
				{Method: http.MethodGet, Path: "/:id/events", Handler: pageHandler.Events},
				{Method: http.MethodPost, Path: "/:id/reviews", Handler: pageHandler.SubmitReview},
			})
		}
	}
}

func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, r.Handler)
		case http.MethodPost:
			g.POST(r.Path, r.Handler)
		default:
			g.Any(r.Path, r.Handler)
		}
	}
}
