package components

import (
	"context"
	"log/slog"
	"time"

	"parkbuddy/internal/pkg/clock"
	"parkbuddy/internal/pkg/config"
	"parkbuddy/internal/pkg/errs"
	"parkbuddy/internal/usecase/notifier"
	"parkbuddy/internal/usecase/queries"

	"go.uber.org/fx"
)

// NotifierModule provides the notifier jobs on top of the read side only.
var NotifierModule = fx.Module("notifier",
	usecaseBaseOption,
	usecaseReadModule,
	fx.Provide(
		NewNotifierJobs,
	),
)

func NewNotifierJobs(
	cfg config.Config,
	reports queries.ReportQueries,
	reservations queries.ReservationQueries,
	users queries.UserQueries,
	dispatcher notifier.Dispatcher,
	clk clock.Clock,
) (*notifier.Jobs, error) {
	loc, err := time.LoadLocation(cfg.Notifier.Location)
	if err != nil {
		return nil, errs.Wrapf(err, "load notifier timezone %q", cfg.Notifier.Location)
	}
	return notifier.NewJobs(reports, reservations, users, dispatcher, clk, cfg.Notifier.InactiveAfter, loc), nil
}

// StartScheduler runs the cron jobs for the life of the app.
func StartScheduler(lc fx.Lifecycle, jobs *notifier.Jobs, cfg config.Config) error {
	ctx, cancel := context.WithCancel(context.Background())
	c, err := notifier.NewScheduler(ctx, jobs, cfg.Notifier)
	if err != nil {
		cancel()
		return err
	}

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			c.Start()
			slog.Info("notifier scheduler started",
				"reminders", cfg.Notifier.ReminderSpec,
				"monthly_reports", cfg.Notifier.ReportSpec,
				"timezone", cfg.Notifier.Location,
			)
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-c.Stop().Done():
			case <-stopCtx.Done():
			}
			slog.Info("notifier scheduler stopped")
			return nil
		},
	})
	return nil
}
