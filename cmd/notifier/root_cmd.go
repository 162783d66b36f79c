package main

import (
	"context"
	"log/slog"
	"time"

	"parkbuddy/cmd/bootstrap"
	"parkbuddy/cmd/bootstrap/components"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

const schedulerStopTimeout = 30 * time.Second

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "notifier",
		Short:         "Run the parkbuddy reminder and monthly report schedule",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Example: `
  # run the cron schedule (NOTIFIER_REMINDER_SPEC / NOTIFIER_REPORT_SPEC)
  notifier

  # email one user's reservation history as CSV
  notifier export --user 6f1c1f1e-9a7b-4c1e-8d0e-2a3b4c5d6e7f`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScheduler(cmd.Context())
		},
	}
	cmd.AddCommand(newExportCommand())
	return cmd
}

func runScheduler(ctx context.Context) error {
	app := fx.New(
		bootstrap.NotifierProcessModule,
		fx.Invoke(components.StartScheduler),
	)

	if err := app.Start(ctx); err != nil {
		return errors.Wrap(err, "notifier failed to start")
	}

	<-app.Done()
	slog.Info("notifier shutting down")

	stopCtx, cancel := context.WithTimeout(context.Background(), schedulerStopTimeout)
	defer cancel()
	if err := app.Stop(stopCtx); err != nil {
		return errors.Wrap(err, "notifier failed to stop")
	}
	return nil
}
