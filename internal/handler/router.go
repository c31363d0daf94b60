package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"sinistro-sync/internal/domain/user"
	"sinistro-sync/internal/handler/api"
	"sinistro-sync/internal/handler/middleware"
	"sinistro-sync/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Webhook      *api.WebhookHandler
	Sinistro     *api.SinistroHandler
	WebhookEvent *api.WebhookEventHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// Authenticated by the shared webhook secret, not by JWT.
	webhooks := engine.Group("/webhooks")
	addRoutes(webhooks, []route{
		{Method: http.MethodPost, Path: "/rdstation", Handler: h.Webhook.RDStation},
	})

	apiGroup := engine.Group("/api")
	apiGroup.Use(authMiddleware.RequireAuth())
	{
		operator := authMiddleware.RequireRoleAtLeast(user.RoleOperator)

		sinistros := apiGroup.Group("/sinistros")
		addRoutes(sinistros, []route{
			{Method: http.MethodGet, Path: "/:id", Handler: h.Sinistro.Get},
			{Method: http.MethodGet, Path: "/:id/timeline", Handler: h.Sinistro.Timeline},
			{Method: http.MethodPost, Path: "/:id/sync", Handler: h.Sinistro.Sync, Mw: []gin.HandlerFunc{operator}},
			{Method: http.MethodPatch, Path: "/:id/status", Handler: h.Sinistro.ChangeStatus, Mw: []gin.HandlerFunc{operator}},
		})

		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/webhook-events", Handler: h.WebhookEvent.List, Mw: []gin.HandlerFunc{operator}},
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
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
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
