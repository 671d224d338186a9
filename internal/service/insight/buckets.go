package insight

import "time"

// wallClockHour returns the first instant at which the clock in loc reads
// y-m-d h:00 or later. Consecutive hours therefore tile the timeline: an hour skipped
// by a DST jump yields an empty bucket and a repeated hour yields one bucket covering
// both occurrences.
func wallClockHour(y int, m time.Month, d, h int, loc *time.Location) time.Time {
	naive := time.Date(y, m, d, h, 0, 0, 0, time.UTC)

	_, before := naive.Add(-24 * time.Hour).In(loc).Zone()
	_, after := naive.Add(24 * time.Hour).In(loc).Zone()

	earlier := naive.Add(-time.Duration(before) * time.Second)
	later := naive.Add(-time.Duration(after) * time.Second)
	if later.Before(earlier) {
		earlier, later = later, earlier
	}

	if hasOffset(earlier, loc, naive) {
		return earlier.In(loc)
	}
	if hasOffset(later, loc, naive) {
		return later.In(loc)
	}

	// the wall time falls in a gap, the hour starts at the transition
	_, end := earlier.In(loc).ZoneBounds()
	if end.IsZero() {
		return earlier.In(loc)
	}
	return end.In(loc)
}

// hasOffset reports whether t reads the same wall time in loc as naive does in UTC
func hasOffset(t time.Time, loc *time.Location, naive time.Time) bool {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), local.Hour(), local.Minute(), local.Second(), 0, time.UTC).Equal(naive)
}
