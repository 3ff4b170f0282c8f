// Package insights derives summaries, statuses, and recommendations from a
// user's financial records. Every function is pure: it consumes a snapshot
// slice plus an explicit reference time and performs no I/O, so callers can
// recompute on every storage change and tests can pin the clock.
package insights

import (
	"math"
	"time"
)

// Window selects the transaction dates that count toward an aggregate.
type Window func(date time.Time) bool

// StartOfWeek returns the Monday at 00:00:00 (in now's location) on or before
// now. Sunday counts as the tail of the previous Monday's week, so a Sunday
// input steps back six days.
func StartOfWeek(now time.Time) time.Time {
	day := int(now.Weekday()) // Sunday == 0
	diff := 1 - day
	if day == 0 {
		diff = -6
	}
	monday := now.AddDate(0, 0, diff)
	return time.Date(monday.Year(), monday.Month(), monday.Day(), 0, 0, 0, 0, now.Location())
}

// SameMonth reports whether date falls in the same calendar month and year as now.
func SameMonth(date, now time.Time) bool {
	return date.Month() == now.Month() && date.Year() == now.Year()
}

// DaysUntil returns the signed whole-day difference between due and today,
// with both normalized to midnight in today's location. Negative means the
// due date has passed.
func DaysUntil(due, today time.Time) int {
	loc := today.Location()
	d := time.Date(due.Year(), due.Month(), due.Day(), 0, 0, 0, 0, loc)
	t := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, loc)
	// Round so a DST transition inside the span cannot skew the count.
	return int(math.Round(d.Sub(t).Hours() / 24))
}

// WeekWindow matches dates from the Monday of now's week onward.
func WeekWindow(now time.Time) Window {
	monday := StartOfWeek(now)
	return func(date time.Time) bool {
		return !date.Before(monday)
	}
}

// MonthWindow matches dates in now's calendar month.
func MonthWindow(now time.Time) Window {
	return func(date time.Time) bool {
		return SameMonth(date, now)
	}
}

// AllTime matches every date.
func AllTime() Window {
	return func(time.Time) bool {
		return true
	}
}
