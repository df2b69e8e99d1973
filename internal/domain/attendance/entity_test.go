package attendance

import (
	"testing"
	"time"
)

func TestCalculateHours(t *testing.T) {
	base := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		clockIn  time.Time
		clockOut time.Time
		expected float64
	}{
		{"full day", base, base.Add(8 * time.Hour), 8},
		{"half hour rounding", base, base.Add(8*time.Hour + 30*time.Minute), 8.5},
		{"two decimals", base, base.Add(7*time.Hour + 20*time.Minute), 7.33},
		{"zero duration", base, base, 0},
		{"clock skew clamped", base, base.Add(-15 * time.Minute), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CalculateHours(tt.clockIn, tt.clockOut); got != tt.expected {
				t.Errorf("CalculateHours() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestDayBounds(t *testing.T) {
	now := time.Date(2025, 3, 10, 14, 35, 12, 0, time.UTC)
	start, end := DayBounds(now)

	if !start.Equal(time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("start = %v", start)
	}
	if !end.Equal(time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("end = %v", end)
	}
}

func TestIsOpen(t *testing.T) {
	now := time.Now()
	record := Record{ClockInTime: now}
	if !record.IsOpen() {
		t.Error("record without clock-out should be open")
	}

	record.ClockOutTime = &now
	if record.IsOpen() {
		t.Error("record with clock-out should be closed")
	}
}
