package domain

import (
	"fmt"
	"time"
)

// Layouts for the calendar-date and wall-clock strings stored on sessions
// and goals. Dates are local calendar dates, never instants.
const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04"
)

// ParseDate parses a YYYY-MM-DD calendar date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date %q must be YYYY-MM-DD", ErrInvalid, s)
	}
	return t, nil
}

// ParseClock parses a HH:MM 24-hour wall-clock time.
func ParseClock(s string) (time.Time, error) {
	t, err := time.Parse(ClockLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: time %q must be HH:MM", ErrInvalid, s)
	}
	return t, nil
}

// DateOf formats t as a calendar date in t's location.
func DateOf(t time.Time) string {
	return t.Format(DateLayout)
}

// ClockOf formats t as a HH:MM wall-clock string in t's location.
func ClockOf(t time.Time) string {
	return t.Format(ClockLayout)
}
