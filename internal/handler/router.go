package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"playhall/internal/handler/api"
	"playhall/internal/handler/middleware"
	"playhall/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, floorHandler *api.FloorHandler, sessionHandler *api.SessionHandler) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, floorHandler, sessionHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, floorHandler *api.FloorHandler, sessionHandler *api.SessionHandler) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/pricing", Handler: floorHandler.GetPricing},
			{Method: http.MethodGet, Path: "/revenue", Handler: floorHandler.GetRevenue},
		})

		stations := apiGroup.Group("/stations")
		{
			addRoutes(stations, []route{
				{Method: http.MethodGet, Path: "", Handler: floorHandler.ListStations},
				{Method: http.MethodGet, Path: "/:id", Handler: floorHandler.GetStation},
				{Method: http.MethodPost, Path: "/:id/session", Handler: sessionHandler.Start},
				{Method: http.MethodPost, Path: "/:id/session/pause", Handler: sessionHandler.Pause},
				{Method: http.MethodPost, Path: "/:id/session/resume", Handler: sessionHandler.Resume},
				{Method: http.MethodPost, Path: "/:id/session/extend", Handler: sessionHandler.Extend},
				{Method: http.MethodPost, Path: "/:id/session/orders", Handler: sessionHandler.AddOrder},
				{Method: http.MethodPost, Path: "/:id/session/finish", Handler: sessionHandler.Finish},
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
