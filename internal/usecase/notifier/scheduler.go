package notifier

import (
	"context"
	"time"

	"parkbuddy/internal/pkg/config"
	"parkbuddy/internal/pkg/errs"

	"github.com/robfig/cron/v3"
)

const (
	JobReminders      = "daily_reminders"
	JobMonthlyReports = "monthly_reports"
)

// NewScheduler registers the reminder and monthly report jobs. The caller
// starts and stops the returned cron.
func NewScheduler(ctx context.Context, jobs *Jobs, cfg config.NotifierConfig) (*cron.Cron, error) {
	loc, err := time.LoadLocation(cfg.Location)
	if err != nil {
		return nil, errs.Wrapf(err, "load notifier timezone %q", cfg.Location)
	}

	c := cron.New(cron.WithLocation(loc), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)))

	if _, err := c.AddFunc(cfg.ReminderSpec, func() {
		Run(ctx, JobReminders, cfg.JobTimeout, jobs.SendReminders)
	}); err != nil {
		return nil, errs.Wrapf(err, "schedule %s with %q", JobReminders, cfg.ReminderSpec)
	}

	if _, err := c.AddFunc(cfg.ReportSpec, func() {
		Run(ctx, JobMonthlyReports, cfg.JobTimeout, jobs.SendMonthlyReports)
	}); err != nil {
		return nil, errs.Wrapf(err, "schedule %s with %q", JobMonthlyReports, cfg.ReportSpec)
	}

	return c, nil
}
