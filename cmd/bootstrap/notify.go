package bootstrap

import (
	"log/slog"

	"parkbuddy/internal/infra/notify"
	"parkbuddy/internal/pkg/config"
	"parkbuddy/internal/usecase/notifier"

	"go.uber.org/fx"
)

var NotifyModule = fx.Module("notify",
	fx.Provide(
		NewDispatcher,
	),
)

func NewDispatcher(cfg config.Config, logger *slog.Logger) notifier.Dispatcher {
	return notify.NewFromConfig(cfg.SendGrid, cfg.Twilio, logger)
}
