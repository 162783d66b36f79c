package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"parkbuddy/internal/handler/api"
	"parkbuddy/internal/handler/middleware"
	"parkbuddy/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth    *api.AuthHandler
	Parking *api.ParkingHandler
	Lot     *api.LotHandler
	Admin   *api.AdminHandler
}

// MetricsHandler serves the Prometheus scrape endpoint.
type MetricsHandler interface {
	Handler() http.Handler
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	logger *middleware.Logger,
	h Handlers,
	authMiddleware *middleware.AuthMiddleware,
	limiter *middleware.RateLimiter,
	metrics MetricsHandler,
) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, authMiddleware, limiter, metrics)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware, limiter *middleware.RateLimiter, metrics MetricsHandler) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(metrics.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	throttled := []gin.HandlerFunc{limiter.Limit()}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/register", Handler: h.Auth.Register},
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		user := apiGroup.Group("")
		user.Use(authMiddleware.RequireAuth())
		{
			addRoutes(user, []route{
				{Method: http.MethodGet, Path: "/lots", Handler: h.Lot.List},
				{Method: http.MethodGet, Path: "/lots/:id/occupancy", Handler: h.Lot.Occupancy},
				{Method: http.MethodGet, Path: "/lots/:id/spots", Handler: h.Lot.Spots},
				{Method: http.MethodGet, Path: "/spots/:id", Handler: h.Lot.Spot},
				{Method: http.MethodPost, Path: "/lots/:id/allocations", Handler: h.Parking.Allocate, Mw: throttled},
				{Method: http.MethodPost, Path: "/reservations/:id/release", Handler: h.Parking.Release, Mw: throttled},
				{Method: http.MethodGet, Path: "/me/reservations", Handler: h.Parking.History},
				{Method: http.MethodGet, Path: "/me/reservations/active", Handler: h.Parking.Active},
				{Method: http.MethodGet, Path: "/me/reservations/export", Handler: h.Parking.ExportHistory},
			})
		}

		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireAuth(), authMiddleware.RequireAdmin())
		{
			addRoutes(admin, []route{
				{Method: http.MethodGet, Path: "/stats/dashboard", Handler: h.Admin.Dashboard},
				{Method: http.MethodGet, Path: "/stats/revenue", Handler: h.Admin.Revenue},
				{Method: http.MethodGet, Path: "/stats/popular-lots", Handler: h.Admin.PopularLots},
				{Method: http.MethodGet, Path: "/lots/:id", Handler: h.Admin.LotDetails},
				{Method: http.MethodPost, Path: "/lots", Handler: h.Admin.CreateLot},
				{Method: http.MethodPatch, Path: "/lots/:id", Handler: h.Admin.UpdateLot},
				{Method: http.MethodDelete, Path: "/lots/:id", Handler: h.Admin.DeleteLot},
				{Method: http.MethodDelete, Path: "/spots/:id", Handler: h.Admin.RemoveSpot},
				{Method: http.MethodGet, Path: "/users", Handler: h.Admin.ListUsers},
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
