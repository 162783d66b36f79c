package notifier

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"parkbuddy/internal/pkg/clock"
	"parkbuddy/internal/pkg/errs"
	"parkbuddy/internal/usecase/queries"
	"parkbuddy/internal/usecase/report"

	"github.com/google/uuid"
)

// Jobs are the scheduled notifications. They only read.
type Jobs struct {
	reports       queries.ReportQueries
	reservations  queries.ReservationQueries
	users         queries.UserQueries
	dispatcher    Dispatcher
	clock         clock.Clock
	inactiveAfter time.Duration
	loc           *time.Location
}

func NewJobs(
	reports queries.ReportQueries,
	reservations queries.ReservationQueries,
	users queries.UserQueries,
	dispatcher Dispatcher,
	clk clock.Clock,
	inactiveAfter time.Duration,
	loc *time.Location,
) *Jobs {
	if loc == nil {
		loc = time.UTC
	}
	return &Jobs{
		reports:       reports,
		reservations:  reservations,
		users:         users,
		dispatcher:    dispatcher,
		clock:         clk,
		inactiveAfter: inactiveAfter,
		loc:           loc,
	}
}

// SendReminders nudges active users with no reservation started within the
// inactivity window. One failed recipient does not stop the rest.
func (j *Jobs) SendReminders(ctx context.Context) (int, error) {
	since := j.clock.Now().Add(-j.inactiveAfter)
	users, err := j.reports.InactiveUsers(ctx, since)
	if err != nil {
		return 0, err
	}

	var sent int
	var failures []error
	for _, u := range users {
		msg := Message{
			Recipient: recipientOf(u.FullName, u.Email, u.Phone),
			Subject:   "ParkBuddy - Daily Reminder",
			Text: fmt.Sprintf("Hi %s,\n\nWe noticed you haven't used ParkBuddy in a while.\n"+
				"Don't forget to book your parking spot when needed!\n\nBest regards,\nParkBuddy Team\n", u.FullName),
			SMS: "ParkBuddy: we miss you! Book your next parking spot any time.",
		}
		if err := j.dispatcher.Dispatch(ctx, msg); err != nil {
			failures = append(failures, errs.Wrapf(err, "reminder to %s", u.Email))
			continue
		}
		sent++
	}
	return sent, errors.Join(failures...)
}

// SendMonthlyReports mails each user with activity in the previous calendar
// month an HTML summary of it.
func (j *Jobs) SendMonthlyReports(ctx context.Context) (int, error) {
	from, to := report.PreviousMonth(j.clock.Now(), j.loc)
	rows, err := j.reports.ReservationsInPeriod(ctx, from, to)
	if err != nil {
		return 0, err
	}

	var sent int
	var failures []error
	for _, s := range report.Summarize(rows, from.Format("January 2006")) {
		html, err := report.RenderMonthlyHTML(s)
		if err != nil {
			failures = append(failures, err)
			continue
		}
		msg := Message{
			Recipient: Recipient{Name: s.FullName, Email: s.Email},
			Subject:   "ParkBuddy - Monthly Activity Report",
			HTML:      html,
		}
		if err := j.dispatcher.Dispatch(ctx, msg); err != nil {
			failures = append(failures, errs.Wrapf(err, "monthly report to %s", s.Email))
			continue
		}
		sent++
	}
	return sent, errors.Join(failures...)
}

// ExportHistory mails a user their full history as a CSV attachment.
func (j *Jobs) ExportHistory(ctx context.Context, userID uuid.UUID) error {
	u, err := j.users.GetCurrentUser(ctx, userID)
	if err != nil {
		return err
	}
	items, err := j.reservations.FullHistory(ctx, userID)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := report.WriteHistoryCSV(&buf, items, j.loc); err != nil {
		return err
	}

	return j.dispatcher.Dispatch(ctx, Message{
		Recipient: Recipient{Name: u.FullName, Email: u.Email},
		Subject:   "ParkBuddy - Your Parking History Export",
		Text: fmt.Sprintf("Hi %s,\n\nPlease find your parking history export attached.\n\n"+
			"Best regards,\nParkBuddy Team\n", u.FullName),
		Attachments: []Attachment{{
			Filename:    report.HistoryFilename,
			ContentType: report.HistoryContentType,
			Content:     buf.Bytes(),
		}},
	})
}

// Run executes one job under a timeout and logs its outcome. Errors never
// propagate: the engine does not depend on notifications.
func Run(ctx context.Context, name string, timeout time.Duration, job func(ctx context.Context) (int, error)) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	began := time.Now()
	sent, err := job(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "notifier job failed",
			"job", name,
			"sent", sent,
			"duration_ms", time.Since(began).Milliseconds(),
			"error", err.Error())
		return
	}
	slog.InfoContext(ctx, "notifier job completed",
		"job", name,
		"sent", sent,
		"duration_ms", time.Since(began).Milliseconds())
}

func recipientOf(name, email string, phone *string) Recipient {
	r := Recipient{Name: name, Email: email}
	if phone != nil {
		r.Phone = *phone
	}
	return r
}
