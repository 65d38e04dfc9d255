package components

import (
	"tripdesk/internal/handler"
	"tripdesk/internal/handler/api"
	"tripdesk/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewDashboardHandler,
		api.NewUserHandler,
		api.NewPackageHandler,
		api.NewCatalogHandler,
		middleware.NewSessionMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
