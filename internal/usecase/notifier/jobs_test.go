//go:build unit

package notifier_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"parkbuddy/internal/pkg/clock"
	"parkbuddy/internal/usecase/notifier"
	"parkbuddy/internal/usecase/queries"
	"parkbuddy/tests/common/builder"
	queriesmock "parkbuddy/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fakeReports struct {
	inactive []*queries.InactiveUserView
	period   []*queries.PeriodReservationView
	gotSince time.Time
	gotFrom  time.Time
	gotTo    time.Time
}

func (f *fakeReports) InactiveUsers(_ context.Context, since time.Time) ([]*queries.InactiveUserView, error) {
	f.gotSince = since
	return f.inactive, nil
}

func (f *fakeReports) ReservationsInPeriod(_ context.Context, from, to time.Time) ([]*queries.PeriodReservationView, error) {
	f.gotFrom, f.gotTo = from, to
	return f.period, nil
}

type recordingDispatcher struct {
	mu     sync.Mutex
	sent   []notifier.Message
	failTo string
}

func (d *recordingDispatcher) Dispatch(_ context.Context, msg notifier.Message) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.failTo != "" && msg.Recipient.Email == d.failTo {
		return errors.New("mailbox unavailable")
	}
	d.sent = append(d.sent, msg)
	return nil
}

var now = time.Date(2025, 3, 15, 8, 0, 0, 0, time.UTC)

func strPtr(s string) *string { return &s }

func TestSendReminders(t *testing.T) {
	ctx := context.Background()
	reports := &fakeReports{inactive: []*queries.InactiveUserView{
		{ID: uuid.New(), Email: "a@example.com", FullName: "Ann", Phone: strPtr("+15550000001")},
		{ID: uuid.New(), Email: "b@example.com", FullName: "Ben"},
		{ID: uuid.New(), Email: "c@example.com", FullName: "Cy"},
	}}

	t.Run("success: every inactive user is reminded", func(t *testing.T) {
		dispatcher := &recordingDispatcher{}
		jobs := notifier.NewJobs(reports, nil, nil, dispatcher, clock.NewMockClock(now), 7*24*time.Hour, nil)

		sent, err := jobs.SendReminders(ctx)

		require.NoError(t, err)
		assert.Equal(t, 3, sent)
		assert.True(t, reports.gotSince.Equal(now.Add(-7*24*time.Hour)))
		assert.Equal(t, "+15550000001", dispatcher.sent[0].Recipient.Phone)
		assert.Empty(t, dispatcher.sent[1].Recipient.Phone)
		assert.Contains(t, dispatcher.sent[1].Text, "Hi Ben")
	})

	t.Run("error: one failed recipient does not stop the rest", func(t *testing.T) {
		dispatcher := &recordingDispatcher{failTo: "b@example.com"}
		jobs := notifier.NewJobs(reports, nil, nil, dispatcher, clock.NewMockClock(now), time.Hour, nil)

		sent, err := jobs.SendReminders(ctx)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "b@example.com")
		assert.Equal(t, 2, sent)
		assert.Len(t, dispatcher.sent, 2)
	})
}

func TestSendMonthlyReports(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	start := time.Date(2025, 2, 10, 9, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)
	cost := int64(1000)
	reports := &fakeReports{period: []*queries.PeriodReservationView{{
		ID: 1, UserID: userID, UserEmail: "a@example.com", UserFullName: "Ann",
		LotID: 1, LotName: "Main St", StartedAt: start, EndedAt: &end, CostCents: &cost,
	}}}
	dispatcher := &recordingDispatcher{}
	jobs := notifier.NewJobs(reports, nil, nil, dispatcher, clock.NewMockClock(now), time.Hour, time.UTC)

	sent, err := jobs.SendMonthlyReports(ctx)

	require.NoError(t, err)
	assert.Equal(t, 1, sent)
	assert.True(t, reports.gotFrom.Equal(time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, reports.gotTo.Equal(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)))
	require.Len(t, dispatcher.sent, 1)
	assert.Contains(t, dispatcher.sent[0].HTML, "February 2025")
	assert.Contains(t, dispatcher.sent[0].HTML, "Main St")
}

func TestExportHistory(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	users := queriesmock.NewMockUserQueries(ctrl)
	reservations := queriesmock.NewMockReservationQueries(ctrl)
	view := builder.NewUserBuilder().BuildView()

	t.Run("success: csv attached", func(t *testing.T) {
		users.EXPECT().GetCurrentUser(gomock.Any(), view.ID).Return(view, nil).Times(1)
		reservations.EXPECT().FullHistory(gomock.Any(), view.ID).Return([]*queries.ReservationListItem{
			builder.NewReservationBuilder().WithUser(view.ID).BuildListItem(),
		}, nil).Times(1)
		dispatcher := &recordingDispatcher{}
		jobs := notifier.NewJobs(&fakeReports{}, reservations, users, dispatcher, clock.NewMockClock(now), time.Hour, nil)

		require.NoError(t, jobs.ExportHistory(ctx, view.ID))

		require.Len(t, dispatcher.sent, 1)
		require.Len(t, dispatcher.sent[0].Attachments, 1)
		att := dispatcher.sent[0].Attachments[0]
		assert.Equal(t, "parking_history.csv", att.Filename)
		assert.True(t, strings.HasPrefix(string(att.Content), "Reservation ID,"))
	})

	t.Run("error: unknown user sends nothing", func(t *testing.T) {
		id := uuid.New()
		users.EXPECT().GetCurrentUser(gomock.Any(), id).Return(nil, queries.ErrUserNotFound).Times(1)
		dispatcher := &recordingDispatcher{}
		jobs := notifier.NewJobs(&fakeReports{}, reservations, users, dispatcher, clock.NewMockClock(now), time.Hour, nil)

		err := jobs.ExportHistory(ctx, id)

		assert.ErrorIs(t, err, queries.ErrUserNotFound)
		assert.Empty(t, dispatcher.sent)
	})
}

func TestRun_HonoursTimeout(t *testing.T) {
	var deadlineSet bool
	notifier.Run(context.Background(), "deadline-check", time.Minute, func(ctx context.Context) (int, error) {
		_, deadlineSet = ctx.Deadline()
		return 0, errors.New("logged, not returned")
	})
	assert.True(t, deadlineSet)
}
