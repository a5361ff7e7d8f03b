package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"

	"shelter-scheduler/internal/handler/api"
	"shelter-scheduler/internal/handler/middleware"
	"shelter-scheduler/internal/infra/metrics"
	"shelter-scheduler/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

type RouterParams struct {
	fx.In

	Engine             *gin.Engine
	Config             config.Config
	Logger             *middleware.Logger
	Metrics            *metrics.Recorder
	AuthHandler        *api.AuthHandler
	SlotHandler        *api.SlotHandler
	ReservationHandler *api.ReservationHandler
	AuthMiddleware     *middleware.AuthMiddleware
}

func NewRouter(p RouterParams) {
	setupMiddleware(p)
	setupRoutes(p)
}

func setupMiddleware(p RouterParams) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	p.Engine.Use(middleware.CustomRecovery())
	p.Engine.Use(middleware.NewCORSMiddleware(p.Config.CORS))
	p.Engine.Use(p.Logger.LoggingMiddleware())
	if p.Config.Metrics.Enabled {
		p.Engine.Use(p.Metrics.Middleware())
	}
	p.Engine.Use(middleware.ErrorHandler())
}

func setupRoutes(p RouterParams) {
	engine := p.Engine
	engine.GET("/health", healthCheck)

	if p.Config.Metrics.Enabled {
		engine.GET(p.Config.Metrics.Path, gin.WrapH(p.Metrics.Handler()))
	}

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	requireAuth := p.AuthMiddleware.RequireAuth()

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: p.AuthHandler.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(requireAuth)
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: p.AuthHandler.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: p.AuthHandler.Me},
			})
		}

		slots := apiGroup.Group("/slots")
		slots.Use(requireAuth)
		{
			addRoutes(slots, []route{
				{Method: http.MethodGet, Path: "", Handler: p.SlotHandler.List},
				{Method: http.MethodPost, Path: "", Handler: p.SlotHandler.Create},
				{Method: http.MethodPost, Path: "/recurring", Handler: p.SlotHandler.CreateRecurring},
				{Method: http.MethodGet, Path: "/:id", Handler: p.SlotHandler.Get},
				{Method: http.MethodPut, Path: "/:id", Handler: p.SlotHandler.Update},
				{Method: http.MethodDelete, Path: "/:id", Handler: p.SlotHandler.Delete},
			})
		}

		reservations := apiGroup.Group("/reservations")
		reservations.Use(requireAuth)
		{
			addRoutes(reservations, []route{
				{Method: http.MethodPost, Path: "", Handler: p.ReservationHandler.Create},
				{Method: http.MethodGet, Path: "", Handler: p.ReservationHandler.List},
				{Method: http.MethodGet, Path: "/overview", Handler: p.ReservationHandler.Overview},
				{Method: http.MethodGet, Path: "/ongoing", Handler: p.ReservationHandler.Ongoing},
				{Method: http.MethodGet, Path: "/concluded", Handler: p.ReservationHandler.Concluded},
				{Method: http.MethodGet, Path: "/:id", Handler: p.ReservationHandler.Get},
				{Method: http.MethodPut, Path: "/:id", Handler: p.ReservationHandler.UpdateStatus},
				{Method: http.MethodDelete, Path: "/:id", Handler: p.ReservationHandler.Delete},
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
