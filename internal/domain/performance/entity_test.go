package performance

import (
	"testing"
	"time"
)

func TestTrend(t *testing.T) {
	tests := []struct {
		name     string
		current  float64
		previous float64
		expected int
	}{
		{"no previous period", 42, 0, 0},
		{"negative previous", 42, -5, 0},
		{"increase", 22, 20, 10},
		{"decrease", 18, 20, -10},
		{"rounded", 21, 20, 5},
		{"rounded up", 20.5, 20, 3},
		{"unchanged", 20, 20, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Trend(tt.current, tt.previous); got != tt.expected {
				t.Errorf("Trend(%v, %v) = %v, want %v", tt.current, tt.previous, got, tt.expected)
			}
		})
	}
}

func TestPosition(t *testing.T) {
	tests := []struct {
		name        string
		userValue   float64
		teamAverage float64
		expected    float64
	}{
		{"at average", 20, 20, 100},
		{"above average", 30, 20, 150},
		{"below average", 10, 20, 50},
		{"clamped high", 100, 20, 200},
		{"zero average with value", 5, 0, 200},
		{"zero average without value", 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Position(tt.userValue, tt.teamAverage); got != tt.expected {
				t.Errorf("Position(%v, %v) = %v, want %v", tt.userValue, tt.teamAverage, got, tt.expected)
			}
		})
	}
}

func TestZone(t *testing.T) {
	tests := []struct {
		position float64
		expected string
	}{
		{50, ZoneUnderAverage},
		{89.9, ZoneUnderAverage},
		{90, ZoneNearAverage},
		{100, ZoneNearAverage},
		{110, ZoneNearAverage},
		{110.1, ZoneOverAverage},
		{200, ZoneOverAverage},
	}

	for _, tt := range tests {
		if got := Zone(tt.position); got != tt.expected {
			t.Errorf("Zone(%v) = %v, want %v", tt.position, got, tt.expected)
		}
	}
}

func TestStartOfWeek(t *testing.T) {
	// Wednesday 2025-03-12 -> Sunday 2025-03-09
	wednesday := time.Date(2025, 3, 12, 15, 30, 0, 0, time.UTC)
	got := StartOfWeek(wednesday)
	want := time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("StartOfWeek() = %v, want %v", got, want)
	}

	// Sunday maps to itself
	sunday := time.Date(2025, 3, 9, 8, 0, 0, 0, time.UTC)
	if got := StartOfWeek(sunday); !got.Equal(want) {
		t.Errorf("StartOfWeek(sunday) = %v, want %v", got, want)
	}
}

func TestStartOfMonth(t *testing.T) {
	now := time.Date(2025, 3, 12, 15, 30, 0, 0, time.UTC)
	want := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	if got := StartOfMonth(now); !got.Equal(want) {
		t.Errorf("StartOfMonth() = %v, want %v", got, want)
	}
}
