package insights_test

import (
	"testing"
	"time"

	"github.com/pennywiseapp/pennywise_backend/internal/core/insights"
	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestStartOfWeek(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		want time.Time
	}{
		{
			name: "wednesday steps back two days",
			now:  time.Date(2024, time.June, 12, 15, 30, 0, 0, time.UTC), // Wed
			want: date(2024, time.June, 10),
		},
		{
			name: "sunday steps back six days",
			now:  time.Date(2024, time.June, 16, 9, 0, 0, 0, time.UTC), // Sun
			want: date(2024, time.June, 10),
		},
		{
			name: "monday is its own week start",
			now:  time.Date(2024, time.June, 10, 23, 59, 0, 0, time.UTC),
			want: date(2024, time.June, 10),
		},
		{
			name: "crosses a month boundary",
			now:  time.Date(2024, time.March, 2, 12, 0, 0, 0, time.UTC), // Sat
			want: date(2024, time.February, 26),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := insights.StartOfWeek(tt.now)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, time.Monday, got.Weekday())
			assert.False(t, got.After(tt.now), "week start must not be in the future")
			assert.Less(t, tt.now.Sub(got), 7*24*time.Hour)
		})
	}
}

func TestSameMonth(t *testing.T) {
	now := date(2024, time.June, 15)

	assert.True(t, insights.SameMonth(date(2024, time.June, 1), now))
	assert.True(t, insights.SameMonth(date(2024, time.June, 30), now))
	assert.False(t, insights.SameMonth(date(2024, time.May, 31), now))
	assert.False(t, insights.SameMonth(date(2023, time.June, 15), now), "same month of a different year does not match")
}

func TestDaysUntil(t *testing.T) {
	today := time.Date(2024, time.June, 12, 14, 45, 0, 0, time.UTC)

	tests := []struct {
		name string
		due  time.Time
		want int
	}{
		{"due today despite time of day", time.Date(2024, time.June, 12, 23, 0, 0, 0, time.UTC), 0},
		{"tomorrow", date(2024, time.June, 13), 1},
		{"yesterday is overdue", date(2024, time.June, 11), -1},
		{"next week", date(2024, time.June, 19), 7},
		{"across a month boundary", date(2024, time.July, 2), 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, insights.DaysUntil(tt.due, today))
		})
	}
}

func TestWeekWindowUsesMondayAnchor(t *testing.T) {
	// Sunday: the window still opens on the previous Monday.
	now := time.Date(2024, time.June, 16, 12, 0, 0, 0, time.UTC)
	within := insights.WeekWindow(now)

	assert.True(t, within(date(2024, time.June, 10)), "Monday itself is in the window")
	assert.True(t, within(date(2024, time.June, 16)))
	assert.False(t, within(date(2024, time.June, 9)), "previous Sunday is out")
}
