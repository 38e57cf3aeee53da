// Package daily holds the deterministic date-driven content: poll of the day
// and the zodiac sign lookup.
package daily

import "time"

// DayOfYear returns the 0-based day of the year of t in t's own location.
// Time of day never changes the result.
func DayOfYear(t time.Time) int {
	return t.YearDay() - 1
}

// IndexFor maps a day of the year onto a pool of the given size. The result
// is always within [0, size); size must be positive.
func IndexFor(dayOfYear, size int) int {
	idx := dayOfYear % size
	if idx < 0 {
		idx += size
	}

	return idx
}

// Pick returns the pool entry for t's day. ok is false for an empty pool.
func Pick[T any](pool []T, t time.Time) (item T, ok bool) {
	if len(pool) == 0 {
		return item, false
	}

	return pool[IndexFor(DayOfYear(t), len(pool))], true
}

// DateKey formats t as the calendar date used to scope per-day state.
func DateKey(t time.Time) string {
	return t.Format(time.DateOnly)
}
