// Package dateutils provides common date operations used throughout the application.
package dateutils

import (
	"fmt"
	"time"
)

// Common date format constants used throughout the application
const (
	DateLayoutISO        = "2006-01-02"
	DateLayoutIndonesian = "02-01-2006"
)

// Truncate drops the time-of-day component, keeping the date in UTC.
// Pipeline dates are calendar dates; comparing them with a time component
// attached gives wrong answers around midnight.
func Truncate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysAgo returns the date n days before t, truncated to a calendar date.
func DaysAgo(t time.Time, n int) time.Time {
	return Truncate(t).AddDate(0, 0, -n)
}

// ToISODate formats a time.Time value as an ISO date (YYYY-MM-DD)
func ToISODate(date time.Time) string {
	return date.Format(DateLayoutISO)
}

// ParseISODate parses a YYYY-MM-DD string into a truncated calendar date.
func ParseISODate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayoutISO, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("unable to parse date: %s", s)
	}
	return Truncate(t), nil
}

// CompareDates compares two dates ignoring any time component and returns:
//
//	-1 if date1 is before date2
//	 0 if date1 is equal to date2
//	 1 if date1 is after date2
func CompareDates(date1, date2 time.Time) int {
	date1 = Truncate(date1)
	date2 = Truncate(date2)

	if date1.Before(date2) {
		return -1
	} else if date1.After(date2) {
		return 1
	}
	return 0
}
