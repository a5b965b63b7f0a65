package util

import (
	"testing"
	"time"
)

func TestFormatBytes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		bytes    int64
		expected string
	}{
		{name: "zero bytes", bytes: 0, expected: "0 B"},
		{name: "bytes under kilobyte", bytes: 512, expected: "512 B"},
		{name: "exact kilobyte", bytes: 1024, expected: "1.0 KB"},
		{name: "fractional kilobyte", bytes: 1536, expected: "1.5 KB"},
		{name: "megabyte", bytes: 1024 * 1024, expected: "1.0 MB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FormatBytes(tt.bytes); got != tt.expected {
				t.Fatalf("FormatBytes(%d) = %s, want %s", tt.bytes, got, tt.expected)
			}
		})
	}
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDaysUntilBirthday(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		today    time.Time
		birth    time.Time
		expected int
	}{
		{name: "today", today: date(2026, time.May, 10), birth: date(1990, time.May, 10), expected: 0},
		{name: "tomorrow", today: date(2026, time.May, 10), birth: date(1990, time.May, 11), expected: 1},
		{name: "one week", today: date(2026, time.May, 10), birth: date(1985, time.May, 17), expected: 7},
		{name: "already passed this year", today: date(2026, time.May, 10), birth: date(1990, time.May, 9), expected: 364},
		{name: "across new year", today: date(2026, time.December, 30), birth: date(2000, time.January, 2), expected: 3},
		{name: "leap day in common year", today: date(2026, time.February, 25), birth: date(2000, time.February, 29), expected: 3},
		{name: "leap day in leap year", today: date(2028, time.February, 25), birth: date(2000, time.February, 29), expected: 4},
		{name: "clock part ignored", today: time.Date(2026, time.May, 10, 23, 59, 0, 0, time.UTC), birth: date(1990, time.May, 11), expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := DaysUntilBirthday(tt.today, tt.birth); got != tt.expected {
				t.Fatalf("DaysUntilBirthday(%s, %s) = %d, want %d", tt.today, tt.birth, got, tt.expected)
			}
		})
	}
}

func TestDateOnly(t *testing.T) {
	t.Parallel()

	got := DateOnly(time.Date(2026, time.March, 14, 15, 9, 26, 0, time.FixedZone("X", 3*3600)))
	if want := date(2026, time.March, 14); !got.Equal(want) {
		t.Fatalf("DateOnly = %s, want %s", got, want)
	}

	if !DateOnly(time.Time{}).IsZero() {
		t.Fatal("DateOnly of zero time must stay zero")
	}
}
