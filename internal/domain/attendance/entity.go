package attendance

import (
	"math"
	"time"
)

type Status string

const (
	StatusPresent Status = "present"
	StatusAbsent  Status = "absent"
)

// Location is an optional geolocation snapshot captured at clock-in/out.
// Capture is best-effort on the client; records without one are valid.
type Location struct {
	Latitude  float64 `bson:"latitude" json:"latitude"`
	Longitude float64 `bson:"longitude" json:"longitude"`
}

type Record struct {
	ID           string     `bson:"_id,omitempty"`
	UserID       string     `bson:"user_id"`
	UserName     string     `bson:"user_name"`
	Date         time.Time  `bson:"date"` // midnight of the calendar day
	ClockInTime  time.Time  `bson:"clock_in_time"`
	ClockOutTime *time.Time `bson:"clock_out_time,omitempty"`
	TotalHours   *float64   `bson:"total_hours,omitempty"`
	Status       Status     `bson:"status"`
	Location     *Location  `bson:"location,omitempty"`
	CreatedAt    time.Time  `bson:"created_at"`
	UpdatedAt    time.Time  `bson:"updated_at"`
}

// IsOpen reports whether the record has a clock-in but no clock-out yet.
func (r *Record) IsOpen() bool {
	return !r.ClockInTime.IsZero() && r.ClockOutTime == nil
}

// CalculateHours returns the worked hours between clockIn and clockOut,
// rounded to 2 decimals and clamped at 0 so clock skew never yields a
// negative duration.
func CalculateHours(clockIn, clockOut time.Time) float64 {
	hours := clockOut.Sub(clockIn).Hours()
	if hours < 0 {
		return 0
	}
	return math.Round(hours*100) / 100
}

// DayBounds returns midnight of the day containing t and midnight of the
// following day, in t's location.
func DayBounds(t time.Time) (start, end time.Time) {
	start = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	end = start.AddDate(0, 0, 1)
	return start, end
}
