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
		{name: "empty body", bytes: 0, expected: "0 B"},
		{name: "small form", bytes: 734, expected: "734 B"},
		{name: "thumbnail", bytes: 48 * 1024, expected: "48.0 KB"},
		{name: "image limit", bytes: 5 * 1024 * 1024, expected: "5.0 MB"},
		{name: "catalog limit", bytes: 20 * 1024 * 1024, expected: "20.0 MB"},
		{name: "partial megabyte", bytes: 2560 * 1024, expected: "2.5 MB"},
		{name: "bucket export", bytes: 3 * 1024 * 1024 * 1024, expected: "3.0 GB"},
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

func TestFormatDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		duration time.Duration
		expected string
	}{
		{name: "instant migration", duration: 300 * time.Millisecond, expected: "0s"},
		{name: "seconds", duration: 12 * time.Second, expected: "12s"},
		{name: "rounds up to a minute", duration: 59*time.Second + 600*time.Millisecond, expected: "1m0s"},
		{name: "minutes", duration: 4*time.Minute + 5*time.Second, expected: "4m5s"},
		{name: "hours", duration: 2*time.Hour + 15*time.Minute, expected: "2h15m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FormatDuration(tt.duration); got != tt.expected {
				t.Fatalf("FormatDuration(%s) = %s, want %s", tt.duration, got, tt.expected)
			}
		})
	}
}
