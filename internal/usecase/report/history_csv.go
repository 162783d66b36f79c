package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"parkbuddy/internal/domain/reservation"
	"parkbuddy/internal/pkg/errs"
	"parkbuddy/internal/usecase/queries"
)

const (
	HistoryFilename    = "parking_history.csv"
	HistoryContentType = "text/csv"
	timestampLayout    = "2006-01-02 15:04"
)

var historyHeader = []string{
	"Reservation ID",
	"Spot ID",
	"Lot Name",
	"Parking Time",
	"Leaving Time",
	"Cost",
	"Duration (hours)",
}

// WriteHistoryCSV renders a user's reservations. Open rows read "Active"
// with zero cost and zero duration.
func WriteHistoryCSV(w io.Writer, items []*queries.ReservationListItem, loc *time.Location) error {
	if loc == nil {
		loc = time.UTC
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(historyHeader); err != nil {
		return errs.Wrap(err, "write csv header")
	}

	for _, it := range items {
		leaving := "Active"
		var elapsed time.Duration
		if it.EndedAt != nil {
			leaving = it.EndedAt.In(loc).Format(timestampLayout)
			elapsed = it.EndedAt.Sub(it.StartedAt)
		}
		var cents int64
		if it.CostCents != nil {
			cents = *it.CostCents
		}

		record := []string{
			strconv.FormatInt(it.ID, 10),
			strconv.FormatInt(it.SpotID, 10),
			it.LotName,
			it.StartedAt.In(loc).Format(timestampLayout),
			leaving,
			formatCents(cents),
			FormatHours(elapsed),
		}
		if err := cw.Write(record); err != nil {
			return errs.Wrapf(err, "write csv row %d", it.ID)
		}
	}

	cw.Flush()
	return errs.Wrap(cw.Error(), "flush csv")
}

// FormatHours renders d in hours with two decimals, rounding half up.
func FormatHours(d time.Duration) string {
	if d <= 0 {
		return "0.00"
	}
	ms := d.Milliseconds()
	hundredths := (ms*100 + 1_800_000) / 3_600_000
	return fmt.Sprintf("%d.%02d", hundredths/100, hundredths%100)
}

func formatCents(cents int64) string {
	m, err := reservation.NewMoney(cents)
	if err != nil {
		return "0.00"
	}
	return m.String()
}
