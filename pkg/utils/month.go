package utils

import "time"

// ParseMonth parses a YYYY-MM string to the first instant of that month, UTC.
func ParseMonth(s string) (time.Time, error) {
	return time.Parse("2006-01", s)
}

// MonthWindow returns the half-open [start, start+1month) interval containing t.
func MonthWindow(t time.Time) (start, end time.Time) {
	start = time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0)
}
