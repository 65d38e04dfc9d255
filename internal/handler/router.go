package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"tripdesk/internal/handler/api"
	"tripdesk/internal/handler/middleware"
	"tripdesk/internal/pkg/config"
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
	authHandler *api.AuthHandler,
	dashboardHandler *api.DashboardHandler,
	userHandler *api.UserHandler,
	packageHandler *api.PackageHandler,
	catalogHandler *api.CatalogHandler,
	sessionMiddleware *middleware.SessionMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, authHandler, dashboardHandler, userHandler, packageHandler, catalogHandler, sessionMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.NewLogger(cfg.Log).LoggingMiddleware())
	engine.Use(middleware.ErrorHandler(cfg.Session))
}

func setupRoutes(
	engine *gin.Engine,
	authHandler *api.AuthHandler,
	dashboardHandler *api.DashboardHandler,
	userHandler *api.UserHandler,
	packageHandler *api.PackageHandler,
	catalogHandler *api.CatalogHandler,
	sessionMiddleware *middleware.SessionMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	addRoutes(engine.Group(""), []route{
		{
			Method:  http.MethodGet,
			Path:    middleware.LoginPath,
			Handler: authHandler.LoginPage,
			Mw:      []gin.HandlerFunc{sessionMiddleware.RedirectIfAuthenticated()},
		},
		{
			Method:  http.MethodPost,
			Path:    middleware.LoginPath,
			Handler: authHandler.Login,
			Mw:      []gin.HandlerFunc{middleware.LoginRateLimit(), sessionMiddleware.RedirectIfAuthenticated()},
		},
	})

	console := engine.Group("")
	console.Use(sessionMiddleware.RequireSession())
	{
		addRoutes(console, []route{
			{Method: http.MethodGet, Path: "/", Handler: dashboardHandler.Show},
			{Method: http.MethodPost, Path: "/auth/logout", Handler: authHandler.Logout},
			{Method: http.MethodGet, Path: "/auth/me", Handler: authHandler.Me},
		})

		users := console.Group("/users")
		{
			addRoutes(users, []route{
				{Method: http.MethodGet, Path: "", Handler: userHandler.List},
				{Method: http.MethodPost, Path: "/:id/status", Handler: userHandler.SetStatus},
			})
		}

		packages := console.Group("/package")
		{
			addRoutes(packages, []route{
				{Method: http.MethodGet, Path: "", Handler: packageHandler.List},
				{Method: http.MethodPost, Path: "", Handler: packageHandler.Create},
				{Method: http.MethodGet, Path: "/new", Handler: packageHandler.FormData},
				{Method: http.MethodGet, Path: "/:id", Handler: packageHandler.GetDetail},
				{Method: http.MethodPost, Path: "/:id", Handler: packageHandler.Update},
				{Method: http.MethodDelete, Path: "/:id", Handler: packageHandler.Delete},
			})
		}

		addRoutes(console, []route{
			{Method: http.MethodGet, Path: "/offer", Handler: catalogHandler.ListOffers},
			{Method: http.MethodGet, Path: "/booking", Handler: catalogHandler.ListBookings},
			{Method: http.MethodGet, Path: "/agency", Handler: catalogHandler.ListAgencies},
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

func addRoutes(group *gin.RouterGroup, routes []route) {
	for _, r := range routes {
		handlers := make([]gin.HandlerFunc, 0, len(r.Mw)+1)
		handlers = append(handlers, r.Mw...)
		handlers = append(handlers, r.Handler)
		group.Handle(r.Method, r.Path, handlers...)
	}
}
