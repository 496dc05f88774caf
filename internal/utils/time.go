package utils

import (
	"fmt"
	"time"

	"github.com/quilljot/quill/internal/constants"
)

// LoadLocation loads a timezone location from an IANA timezone name.
// If the timezone is "Local" or empty, it returns the system's local timezone.
func LoadLocation(timezone string) (*time.Location, error) {
	if timezone == "" || timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(timezone)
}

// NowInTimezone returns the current time in the specified timezone.
func NowInTimezone(timezone string) (time.Time, error) {
	loc, err := LoadLocation(timezone)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return time.Now().In(loc), nil
}

// TodayInTimezone returns today's date string (YYYY-MM-DD) in the specified
// timezone. "Today" is determined by the user's configured timezone, not the
// system timezone.
func TodayInTimezone(timezone string) (string, error) {
	now, err := NowInTimezone(timezone)
	if err != nil {
		return "", err
	}
	return now.Format(constants.DateFormat), nil
}

// ParseDay parses a calendar-date string (YYYY-MM-DD).
func ParseDay(day string) (time.Time, error) {
	return time.Parse(constants.DateFormat, day)
}

// DaysBetween returns the whole calendar-day difference b - a for two
// YYYY-MM-DD date strings. The comparison is pure calendar arithmetic,
// independent of time-of-day or timezone.
func DaysBetween(a, b string) (int, error) {
	ta, err := ParseDay(a)
	if err != nil {
		return 0, fmt.Errorf("invalid date %q: %w", a, err)
	}
	tb, err := ParseDay(b)
	if err != nil {
		return 0, fmt.Errorf("invalid date %q: %w", b, err)
	}
	return int(tb.Sub(ta).Hours() / 24), nil
}

// ValidateTimezone checks if the timezone name is valid.
func ValidateTimezone(timezone string) bool {
	if timezone == "" || timezone == "Local" {
		return true
	}
	_, err := time.LoadLocation(timezone)
	return err == nil
}
