package utils

import "time"

// DateString formats a moment as the calendar date used for delivery
// bookkeeping.
func DateString(t time.Time) string {
	return t.Format("2006-01-02")
}

func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func DatesEqual(t1, t2 time.Time) bool {
	return StartOfDay(t1).Equal(StartOfDay(t2))
}
