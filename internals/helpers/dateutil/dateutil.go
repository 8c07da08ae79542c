// Package dateutil owns the calendar math shared by attendance and
// scheduling: a "day" is the [midnight, next midnight) interval in the
// configured reference timezone.
package dateutil

import (
	"math"
	"time"
)

// DayStart truncates t to midnight in loc.
func DayStart(t time.Time, loc *time.Location) time.Time {
	lt := t.In(loc)
	return time.Date(lt.Year(), lt.Month(), lt.Day(), 0, 0, 0, 0, loc)
}

// DayBounds returns the [start, end) interval of the calendar day
// containing t.
func DayBounds(t time.Time, loc *time.Location) (time.Time, time.Time) {
	start := DayStart(t, loc)
	return start, start.AddDate(0, 0, 1)
}

// WeekSpanDays counts whole calendar days between two midnight-truncated
// dates. A valid schedule week spans exactly 6 (Mon..Sun inclusive).
func WeekSpanDays(start, end time.Time) int {
	return int(math.Round(end.Sub(start).Hours() / 24))
}

// RoundHours2 converts a duration to hours rounded to 2 decimal places.
func RoundHours2(d time.Duration) float64 {
	return math.Round(d.Hours()*100) / 100
}
