// Package timeutil normalizes wire dates to inclusive calendar-day windows.
package timeutil

import (
	"fmt"
	"time"
)

// Wire accepts full RFC 3339 timestamps or bare calendar dates.
var wireLayouts = []string{
	time.RFC3339,
	"2006-01-02",
}

// ParseDate parses an ISO-8601 date string as sent by the client.
func ParseDate(s string) (time.Time, error) {
	for _, layout := range wireLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q", s)
}

// DayStart returns 00:00:00.000 of t's calendar day.
func DayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DayEnd returns 23:59:59.999 of t's calendar day.
func DayEnd(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999_000_000, t.Location())
}

// DayWindow returns the inclusive bounds of t's calendar day.
func DayWindow(t time.Time) (time.Time, time.Time) {
	return DayStart(t), DayEnd(t)
}
