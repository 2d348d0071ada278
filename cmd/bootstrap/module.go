package bootstrap

import (
	"restaurant-page/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	GatewayModule,
	components.UseCaseModule,
	components.HandlerModule,
)
