package components

import (
	"restaurant-page/internal/handler"
	"restaurant-page/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewPageHandler,
	),
	fx.Invoke(handler.NewRouter),
)
