package bootstrap

import (
	"tripdesk/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	SessionModule,
	UpstreamModule,
	components.GatewayModule,
	components.UseCaseModule,
	components.HandlerModule,
)
