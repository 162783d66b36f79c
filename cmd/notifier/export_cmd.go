package main

import (
	"context"
	"log/slog"
	"time"

	"parkbuddy/cmd/bootstrap"
	"parkbuddy/internal/usecase/notifier"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

// exportRunner performs the export for an already validated user.
type exportRunner func(ctx context.Context, userID uuid.UUID, timeout time.Duration) error

func newExportCommand() *cobra.Command {
	return newExportCommandWith(runExport)
}

func newExportCommandWith(run exportRunner) *cobra.Command {
	var rawUser string
	var timeout time.Duration
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Email one user's reservation history as a CSV attachment",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := uuid.Parse(rawUser)
			if err != nil {
				return errors.Newf("invalid --user %q: %v", rawUser, err)
			}
			if timeout <= 0 {
				return errors.Newf("invalid --timeout %s: must be positive", timeout)
			}
			return run(cmd.Context(), userID, timeout)
		},
	}
	cmd.Flags().StringVarP(&rawUser, "user", "u", "", "user id (uuid)")
	cmd.Flags().DurationVar(&timeout, "timeout", time.Minute, "export timeout")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}

func runExport(ctx context.Context, userID uuid.UUID, timeout time.Duration) error {
	var jobs *notifier.Jobs
	app := fx.New(
		bootstrap.NotifierProcessModule,
		fx.Populate(&jobs),
		fx.NopLogger,
	)
	if err := app.Start(ctx); err != nil {
		return errors.Wrap(err, "notifier failed to start")
	}
	defer func() {
		if err := app.Stop(context.Background()); err != nil {
			slog.Error("notifier failed to stop", "error", err)
		}
	}()

	runCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := jobs.ExportHistory(runCtx, userID); err != nil {
		return errors.Wrapf(err, "history export for %s", userID)
	}
	slog.Info("history export sent", "user_id", userID.String())
	return nil
}
