package util

import (
	"fmt"
	"time"
)

const DateLayout = "2006-01-02"

// Date drops the clock and location of t, keeping
// only the calendar day it falls on
func Date(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func NewDate(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse date %q, expected YYYY-MM-DD: %w", s, err)
	}
	return t, nil
}

// DaysBetween counts whole calendar days from start to end.
// negative when end is before start
func DaysBetween(start, end time.Time) int {
	// both at UTC midnight, so no DST hours can leak in
	return int(Date(end).Sub(Date(start)).Hours() / 24)
}
