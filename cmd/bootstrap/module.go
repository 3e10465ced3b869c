package bootstrap

import (
	"coworking-admin/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	JWTModule,
	components.BackendModule,
	components.UseCaseModule,
	components.HandlerModule,
	SchedulerModule,
)
