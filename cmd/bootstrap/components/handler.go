package components

import (
	"coworking-admin/internal/handler"
	"coworking-admin/internal/handler/api"
	"coworking-admin/internal/handler/middleware"
	"coworking-admin/internal/usecase"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		fx.Annotate(
			func(panels *usecase.Panels) *api.PanelHandler { return api.NewPanelHandler(panels.Desks) },
			fx.ResultTags(`name:"desks"`),
		),
		fx.Annotate(
			func(panels *usecase.Panels) *api.PanelHandler { return api.NewPanelHandler(panels.Stands) },
			fx.ResultTags(`name:"stands"`),
		),
		api.NewWSHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(
		fx.Annotate(
			handler.NewRouter,
			fx.ParamTags(``, ``, `name:"desks"`, `name:"stands"`, ``, ``),
		),
	),
)
