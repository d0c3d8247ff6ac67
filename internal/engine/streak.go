package engine

import (
	"time"

	"routine/internal/period"
)

// CurrentStreak counts consecutive completed days ending today.
//
// If today is not yet completed the streak is still alive when yesterday was
// completed, and counting starts from yesterday instead. The walk stops at the
// first gap, so it costs O(streak) lookups regardless of ledger size.
func CurrentStreak(completed Ledger, today time.Time) int {
	day := period.Day(today)
	if !completed.Done(period.DayKey(day)) {
		day = period.AddDays(day, -1)
		if !completed.Done(period.DayKey(day)) {
			return 0
		}
	}

	streak := 0
	for completed.Done(period.DayKey(day)) {
		streak++
		day = period.AddDays(day, -1)
	}
	return streak
}
