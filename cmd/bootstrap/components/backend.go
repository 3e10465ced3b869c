package components

import (
	"coworking-admin/internal/infra/backend"
	"coworking-admin/internal/pkg/config"

	"go.uber.org/fx"
)

var BackendModule = fx.Module("backend",
	fx.Provide(
		NewBackendClient,
		backend.NewDeskGateway,
		backend.NewStandGateway,
	),
)

func NewBackendClient(cfg config.Config) *backend.Client {
	return backend.NewClient(cfg.Backend)
}
