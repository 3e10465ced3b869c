package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"coworking-admin/internal/handler/api"
	"coworking-admin/internal/handler/middleware"
	"coworking-admin/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	deskHandler *api.PanelHandler,
	standHandler *api.PanelHandler,
	wsHandler *api.WSHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, deskHandler, standHandler, wsHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	deskHandler *api.PanelHandler,
	standHandler *api.PanelHandler,
	wsHandler *api.WSHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		apiGroup.GET("/ws", wsHandler.Subscribe)

		addPanelRoutes(apiGroup.Group("/desks"), deskHandler, authMiddleware)
		addPanelRoutes(apiGroup.Group("/stands"), standHandler, authMiddleware)
	}
}

func addPanelRoutes(g *gin.RouterGroup, h *api.PanelHandler, authMiddleware *middleware.AuthMiddleware) {
	addRoutes(g, []route{
		{Method: http.MethodGet, Path: "", Handler: h.List},
		{Method: http.MethodGet, Path: "/catalog", Handler: h.Catalog},
		{Method: http.MethodGet, Path: "/quote", Handler: h.Quote},
		{Method: http.MethodGet, Path: "/calendar/:id", Handler: h.Calendar},
		{Method: http.MethodGet, Path: "/notifications", Handler: h.Notifications},
		{Method: http.MethodPost, Path: "/notifications/:id/dismiss", Handler: h.DismissNotification},
	})

	mutations := g.Group("")
	mutations.Use(authMiddleware.RequireAuth())
	addRoutes(mutations, []route{
		{Method: http.MethodPost, Path: "", Handler: h.Create},
		{Method: http.MethodPut, Path: "/:id", Handler: h.Update},
		{Method: http.MethodDelete, Path: "/:id", Handler: h.Delete},
		{Method: http.MethodPost, Path: "/rentals", Handler: h.CreateRental},
	})
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
