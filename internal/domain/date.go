package domain

import (
	"fmt"
	"math"
	"time"
)

// DateLayout is the ISO calendar date format used for input and labels.
const DateLayout = "2006-01-02"

// Date returns the calendar day as a time.Time at UTC midnight.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// TruncateDay drops the time-of-day part and normalizes to UTC.
func TruncateDay(t time.Time) time.Time {
	return Date(t.Year(), t.Month(), t.Day())
}

// ParseDate parses a YYYY-MM-DD string into a calendar day.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return t, nil
}

// FormatDate formats a calendar day as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// DaysBetween returns the number of whole days from a to b (negative if b is before a).
func DaysBetween(a, b time.Time) int {
	return int(math.Round(TruncateDay(b).Sub(TruncateDay(a)).Hours() / 24))
}

// AddDays shifts a calendar day by n days.
func AddDays(t time.Time, n int) time.Time {
	return TruncateDay(t).AddDate(0, 0, n)
}

// FirstOfMonth returns the 1st of the month containing t.
func FirstOfMonth(t time.Time) time.Time {
	return Date(t.Year(), t.Month(), 1)
}
