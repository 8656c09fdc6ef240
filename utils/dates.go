// utils/dates.go
package utils

import "time"

func BeginningOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// ParseDate accepts the date-only format the admin forms submit.
func ParseDate(value string) (time.Time, error) {
	return time.Parse("2006-01-02", value)
}
