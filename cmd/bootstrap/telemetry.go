package bootstrap

import (
	"context"

	"parkbuddy/internal/handler"
	"parkbuddy/internal/infra/telemetry"
	"parkbuddy/internal/pkg/config"
	"parkbuddy/internal/usecase/commands"

	"go.uber.org/fx"
)

var TelemetryModule = fx.Module("telemetry",
	fx.Provide(
		NewTelemetryProvider,
		func(p *telemetry.Provider) handler.MetricsHandler { return p },
		func(p *telemetry.Provider) commands.ParkingRecorder {
			return telemetry.NewParkingMetrics(p.MeterProvider())
		},
	),
)

func NewTelemetryProvider(lc fx.Lifecycle, cfg config.Config) (*telemetry.Provider, error) {
	p, err := telemetry.NewProvider(context.Background(), cfg.Telemetry)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: p.Shutdown,
	})
	return p, nil
}
