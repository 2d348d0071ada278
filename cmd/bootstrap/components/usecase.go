package components

import (
	"log/slog"

	"restaurant-page/internal/connectivity"
	"restaurant-page/internal/gateway"
	"restaurant-page/internal/pkg/clock"
	"restaurant-page/internal/pkg/config"
	"restaurant-page/internal/usecase"
	"restaurant-page/internal/view"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		view.NewBroadcaster,
		func(b *view.Broadcaster) usecase.Renderer { return b },
		NewSessionRegistry,
		usecase.NewPageService,
	),
)

func NewSessionRegistry(lc fx.Lifecycle, cfg config.Config, gw gateway.RemoteData, sig connectivity.Signal, clk clock.Clock, renderer usecase.Renderer, logger *slog.Logger) *usecase.Registry {
	registry := usecase.NewRegistry(gw, sig, clk, renderer, logger, cfg.Submission)

	lc.Append(fx.StopHook(func() {
		registry.CloseAll()
	}))

	return registry
}
