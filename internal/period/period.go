// Package period maps points in time to the calendar keys used by completion ledgers.
package period

import (
	"fmt"
	"time"
)

const dayLayout = "2006-01-02"

// DayKey returns the local calendar day of t as YYYY-MM-DD.
func DayKey(t time.Time) string {
	return t.In(time.Local).Format(dayLayout)
}

// WeekKey returns the ISO-8601 week of t's local calendar day as YYYY-W<n>.
// The year is the ISO week-numbering year, so 2024-12-30 is 2025-W1.
func WeekKey(t time.Time) string {
	year, week := t.In(time.Local).ISOWeek()
	return fmt.Sprintf("%d-W%d", year, week)
}

// Day returns t's local calendar day anchored at noon. Midnight does not exist
// on days where DST starts at 00:00; noon exists on every day.
func Day(t time.Time) time.Time {
	return AddDays(t, 0)
}

// AddDays moves t by n calendar days and returns that day anchored at noon.
func AddDays(t time.Time, n int) time.Time {
	y, m, d := t.In(time.Local).Date()
	return time.Date(y, m, d+n, 12, 0, 0, 0, time.Local)
}

// ParseDay parses a YYYY-MM-DD string as a local calendar day, anchored at noon.
func ParseDay(s string) (time.Time, error) {
	t, err := time.Parse(dayLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD): %w", s, err)
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 12, 0, 0, 0, time.Local), nil
}
