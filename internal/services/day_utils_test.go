package services

import (
	"errors"
	"testing"
	"time"
)

func TestDateAtLocationKeysTheLocalCalendarDay(t *testing.T) {
	location, err := time.LoadLocation("Europe/Moscow")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}

	raw := time.Date(2026, 1, 31, 22, 35, 10, 0, time.UTC)
	start, end := DayRange(DateAtLocation(raw, location))

	if got := start.Format(time.RFC3339); got != "2026-02-01T00:00:00Z" {
		t.Fatalf("expected Feb 1 key, got %s", got)
	}
	if !end.Equal(start.AddDate(0, 0, 1)) {
		t.Fatalf("expected next day end, got %s", end.Format(time.RFC3339))
	}
}

func TestCalendarDayIgnoresZoneOffset(t *testing.T) {
	location, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}

	stored := time.Date(2024, 3, 10, 0, 0, 0, 0, location)
	if got := CalendarDay(stored).Format(time.RFC3339); got != "2024-03-10T00:00:00Z" {
		t.Fatalf("CalendarDay = %s, want 2024-03-10T00:00:00Z", got)
	}
}

func TestParseDay(t *testing.T) {
	location, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}

	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "plain day", raw: "2024-01-01", want: "2024-01-01T00:00:00Z"},
		{name: "rfc3339 shifts into location", raw: "2024-01-02T03:00:00Z", want: "2024-01-01T00:00:00Z"},
		{name: "zoneless datetime read in location", raw: "2024-01-01T23:30:00", want: "2024-01-01T00:00:00Z"},
		{name: "zoneless datetime with fraction", raw: "2024-07-04T10:00:00.250", want: "2024-07-04T00:00:00Z"},
		{name: "trims spaces", raw: " 2024-07-04 ", want: "2024-07-04T00:00:00Z"},
		{name: "empty", raw: "  ", wantErr: true},
		{name: "garbage", raw: "yesterday", wantErr: true},
		{name: "impossible day", raw: "2024-02-30", wantErr: true},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			got, err := ParseDay(testCase.raw, location)
			if testCase.wantErr {
				var validationErr *ValidationError
				if !errors.As(err, &validationErr) || validationErr.Field != "date" {
					t.Fatalf("expected date validation error, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDay(%q) error: %v", testCase.raw, err)
			}
			if got.Format(time.RFC3339) != testCase.want {
				t.Fatalf("ParseDay(%q) = %s, want %s", testCase.raw, got.Format(time.RFC3339), testCase.want)
			}
		})
	}
}

func TestParseMonth(t *testing.T) {
	got, err := ParseMonth("2024-02")
	if err != nil {
		t.Fatalf("parse month: %v", err)
	}
	if got.Format(time.RFC3339) != "2024-02-01T00:00:00Z" {
		t.Fatalf("expected first of February, got %s", got)
	}

	if _, err := ParseMonth("2024-13"); err == nil {
		t.Fatal("expected invalid month to fail")
	}
}

func TestStampUpdatedAtAlwaysMovesForward(t *testing.T) {
	previous := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

	if got := stampUpdatedAt(previous, previous.Add(time.Second)); !got.Equal(previous.Add(time.Second)) {
		t.Fatalf("expected clock time when it advanced, got %s", got)
	}
	if got := stampUpdatedAt(previous, previous); !got.After(previous) {
		t.Fatalf("expected stamp after previous for a frozen clock, got %s", got)
	}
	if got := stampUpdatedAt(previous, previous.Add(-time.Hour)); !got.After(previous) {
		t.Fatalf("expected stamp after previous for a clock moving backwards, got %s", got)
	}
}

func TestTotalPages(t *testing.T) {
	cases := []struct {
		total int64
		limit int
		want  int
	}{
		{total: 0, limit: 10, want: 0},
		{total: 1, limit: 10, want: 1},
		{total: 10, limit: 10, want: 1},
		{total: 11, limit: 10, want: 2},
	}
	for _, testCase := range cases {
		if got := totalPages(testCase.total, testCase.limit); got != testCase.want {
			t.Fatalf("totalPages(%d, %d) = %d, want %d", testCase.total, testCase.limit, got, testCase.want)
		}
	}
}
