package bootstrap

import (
	"log/slog"

	"restaurant-page/internal/connectivity"
	"restaurant-page/internal/gateway"
	"restaurant-page/internal/pkg/config"

	"go.uber.org/fx"
)

var GatewayModule = fx.Module("gateway",
	fx.Provide(
		NewGateway,
		func(g *gateway.HTTPGateway) gateway.RemoteData { return g },
		NewConnectivityMonitor,
		func(m *connectivity.Monitor) connectivity.Signal { return m },
	),
)

func NewGateway(cfg config.Config) *gateway.HTTPGateway {
	return gateway.NewHTTPGateway(cfg.Upstream)
}

func NewConnectivityMonitor(lc fx.Lifecycle, cfg config.Config, gw *gateway.HTTPGateway, logger *slog.Logger) *connectivity.Monitor {
	monitor := connectivity.NewMonitor(gw.Ping, cfg.Probe, logger)

	lc.Append(fx.Hook{
		OnStart: monitor.Start,
		OnStop:  monitor.Stop,
	})

	return monitor
}
