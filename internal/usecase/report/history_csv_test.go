//go:build unit

package report_test

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"parkbuddy/internal/usecase/queries"
	"parkbuddy/internal/usecase/report"
	"parkbuddy/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteHistoryCSV(t *testing.T) {
	start := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)
	items := []*queries.ReservationListItem{
		builder.NewReservationBuilder().WithID(2).StartedAtTime(start.Add(2 * time.Hour)).BuildListItem(),
		builder.NewReservationBuilder().WithID(1).StartedAtTime(start).Closed(start.Add(90*time.Minute), 1500).BuildListItem(),
	}

	var buf bytes.Buffer
	require.NoError(t, report.WriteHistoryCSV(&buf, items, nil))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, []string{"Reservation ID", "Spot ID", "Lot Name", "Parking Time", "Leaving Time", "Cost", "Duration (hours)"}, records[0])
	assert.Equal(t, []string{"2", "1", "Main St", "2025-01-01 11:00", "Active", "0.00", "0.00"}, records[1])
	assert.Equal(t, []string{"1", "1", "Main St", "2025-01-01 09:00", "2025-01-01 10:30", "15.00", "1.50"}, records[2])
}

func TestWriteHistoryCSV_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.WriteHistoryCSV(&buf, nil, time.UTC))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestFormatHours(t *testing.T) {
	testCases := []struct {
		name     string
		d        time.Duration
		expected string
	}{
		{name: "success: zero", d: 0, expected: "0.00"},
		{name: "success: negative clamps", d: -time.Minute, expected: "0.00"},
		{name: "success: ninety minutes", d: 90 * time.Minute, expected: "1.50"},
		{name: "success: half hundredth rounds up", d: 18 * time.Second, expected: "0.01"},
		{name: "success: just below half rounds down", d: 17 * time.Second, expected: "0.00"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, report.FormatHours(tc.d))
		})
	}
}
