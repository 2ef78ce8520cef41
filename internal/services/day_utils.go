package services

import (
	"strings"
	"time"
)

const (
	DayLayout           = "2006-01-02"
	localDateTimeLayout = "2006-01-02T15:04:05"
)

// DateAtLocation returns the calendar day of value as seen in location. Day
// keys are UTC midnights so every driver stores and compares them unshifted.
func DateAtLocation(value time.Time, location *time.Location) time.Time {
	if location == nil {
		location = time.UTC
	}
	return CalendarDay(value.In(location))
}

// CalendarDay keeps the date components of value and drops its clock and zone.
func CalendarDay(value time.Time) time.Time {
	year, month, day := value.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func DayRange(day time.Time) (time.Time, time.Time) {
	start := CalendarDay(day)
	return start, start.AddDate(0, 0, 1)
}

// ParseDay accepts YYYY-MM-DD, a zoneless datetime read in location, or an
// RFC 3339 timestamp, and returns the matching day key.
func ParseDay(raw string, location *time.Location) (time.Time, error) {
	if location == nil {
		location = time.UTC
	}
	value := strings.TrimSpace(raw)
	if value == "" {
		return time.Time{}, newValidationError("date", "date is required")
	}
	if parsed, err := time.Parse(DayLayout, value); err == nil {
		return parsed, nil
	}
	if parsed, err := time.ParseInLocation(localDateTimeLayout, value, location); err == nil {
		return DateAtLocation(parsed, location), nil
	}
	if parsed, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return DateAtLocation(parsed, location), nil
	}
	return time.Time{}, newValidationError("date", "date must be a valid ISO-8601 date")
}

// ParseMonth accepts YYYY-MM and returns the day key of the month's first day.
func ParseMonth(raw string) (time.Time, error) {
	parsed, err := time.Parse("2006-01", strings.TrimSpace(raw))
	if err != nil {
		return time.Time{}, newValidationError("month", "month must use YYYY-MM format")
	}
	return parsed, nil
}

// stampUpdatedAt returns a timestamp strictly after previous, at millisecond precision.
func stampUpdatedAt(previous time.Time, now time.Time) time.Time {
	stamped := now.Truncate(time.Millisecond)
	if !stamped.After(previous) {
		stamped = previous.Truncate(time.Millisecond).Add(time.Millisecond)
	}
	return stamped
}

func totalPages(total int64, limit int) int {
	if limit <= 0 || total <= 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}
