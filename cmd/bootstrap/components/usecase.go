package components

import (
	"log/slog"

	"coworking-admin/internal/infra/backend"
	"coworking-admin/internal/infra/ws"
	"coworking-admin/internal/pkg/clock"
	"coworking-admin/internal/pkg/config"
	"coworking-admin/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.New,
		ws.NewHub,
		fx.Annotate(
			ws.NewPanelPublisher,
			fx.As(new(usecase.Publisher)),
		),
		NewPanels,
	),
)

func NewPanels(
	desks *backend.DeskGateway,
	stands *backend.StandGateway,
	cfg config.Config,
	clk clock.Clock,
	publisher usecase.Publisher,
	log *slog.Logger,
) *usecase.Panels {
	return &usecase.Panels{
		Desks:  usecase.NewPanel("desks", usecase.DeskMessages(), desks, cfg, clk, publisher, log),
		Stands: usecase.NewPanel("stands", usecase.StandMessages(), stands, cfg, clk, publisher, log),
	}
}
