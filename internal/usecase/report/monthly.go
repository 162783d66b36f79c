package report

import (
	"bytes"
	"html/template"
	"sort"
	"time"

	"parkbuddy/internal/pkg/errs"
	"parkbuddy/internal/usecase/queries"

	"github.com/google/uuid"
)

// MonthlySummary is one user's activity over a reporting period.
type MonthlySummary struct {
	UserID         uuid.UUID
	Email          string
	FullName       string
	Period         string
	Reservations   int
	TotalCents     int64
	ClosedDuration time.Duration
	MostUsedLot    string
}

func (s MonthlySummary) TotalCost() string  { return formatCents(s.TotalCents) }
func (s MonthlySummary) TotalHours() string { return FormatHours(s.ClosedDuration) }

// PreviousMonth returns [first of last month, first of this month) in loc.
func PreviousMonth(now time.Time, loc *time.Location) (time.Time, time.Time) {
	if loc == nil {
		loc = time.UTC
	}
	local := now.In(loc)
	to := time.Date(local.Year(), local.Month(), 1, 0, 0, 0, 0, loc)
	return to.AddDate(0, -1, 0), to
}

type lotUse struct {
	name  string
	count int
}

// Summarize groups period rows per user, ordered by email. The most used lot
// is the one with the most reservations, lower lot id on ties.
func Summarize(rows []*queries.PeriodReservationView, period string) []MonthlySummary {
	byUser := make(map[uuid.UUID]*MonthlySummary)
	lots := make(map[uuid.UUID]map[int64]*lotUse)

	for _, r := range rows {
		s, ok := byUser[r.UserID]
		if !ok {
			s = &MonthlySummary{
				UserID:   r.UserID,
				Email:    r.UserEmail,
				FullName: r.UserFullName,
				Period:   period,
			}
			byUser[r.UserID] = s
			lots[r.UserID] = make(map[int64]*lotUse)
		}
		s.Reservations++
		if r.CostCents != nil {
			s.TotalCents += *r.CostCents
		}
		if r.EndedAt != nil {
			s.ClosedDuration += r.EndedAt.Sub(r.StartedAt)
		}

		use, ok := lots[r.UserID][r.LotID]
		if !ok {
			use = &lotUse{name: r.LotName}
			lots[r.UserID][r.LotID] = use
		}
		use.count++
	}

	out := make([]MonthlySummary, 0, len(byUser))
	for id, s := range byUser {
		s.MostUsedLot = mostUsed(lots[id])
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Email < out[j].Email })
	return out
}

func mostUsed(uses map[int64]*lotUse) string {
	var bestID int64
	var best *lotUse
	for id, u := range uses {
		if best == nil || u.count > best.count || (u.count == best.count && id < bestID) {
			bestID, best = id, u
		}
	}
	if best == nil {
		return "None"
	}
	return best.name
}

var monthlyTemplate = template.Must(template.New("monthly").Parse(`<html>
<body>
  <h2>ParkBuddy Monthly Report</h2>
  <p>Hi {{.FullName}},</p>
  <p>Here's your parking activity for {{.Period}}:</p>
  <ul>
    <li>Total Reservations: {{.Reservations}}</li>
    <li>Total Cost: {{.TotalCost}}</li>
    <li>Total Duration: {{.TotalHours}} hours</li>
    <li>Most Used Parking Lot: {{.MostUsedLot}}</li>
  </ul>
  <p>Thank you for using ParkBuddy!</p>
</body>
</html>
`))

func RenderMonthlyHTML(s MonthlySummary) (string, error) {
	var buf bytes.Buffer
	if err := monthlyTemplate.Execute(&buf, s); err != nil {
		return "", errs.Wrap(err, "render monthly report")
	}
	return buf.String(), nil
}
