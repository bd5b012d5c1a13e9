package utils

import (
	"fmt"
	"time"

	"github.com/duolog/duolog/internal/constants"
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
// timezone. This ensures that "today" is determined by the user's configured
// timezone, not the system timezone.
func TodayInTimezone(timezone string) (string, error) {
	now, err := NowInTimezone(timezone)
	if err != nil {
		return "", err
	}
	return now.Format(constants.DateFormat), nil
}

// ParseDate parses a date string in the standard format (YYYY-MM-DD).
func ParseDate(dateStr string) (time.Time, error) {
	return time.Parse(constants.DateFormat, dateStr)
}

// ValidateDateFormat checks if the string matches the standard date format.
func ValidateDateFormat(dateStr string) bool {
	_, err := ParseDate(dateStr)
	return err == nil
}

// DiffDays returns the number of whole calendar days from one date string to
// another. Both arguments are YYYY-MM-DD; the result is to minus from and may
// be negative. The subtraction is calendar-date arithmetic, never wall-clock
// deltas, so hour boundaries and DST shifts cannot skew it.
func DiffDays(from, to string) (int, error) {
	f, err := ParseDate(from)
	if err != nil {
		return 0, fmt.Errorf("invalid date %q: %w", from, err)
	}
	t, err := ParseDate(to)
	if err != nil {
		return 0, fmt.Errorf("invalid date %q: %w", to, err)
	}
	// Both dates parse to midnight UTC, so the hour division is exact.
	return int(t.Sub(f).Hours() / 24), nil
}

// ValidateTimezone checks if the timezone name is valid.
func ValidateTimezone(timezone string) bool {
	if timezone == "" || timezone == "Local" {
		return true
	}
	_, err := time.LoadLocation(timezone)
	return err == nil
}
