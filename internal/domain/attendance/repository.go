package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access methods for attendance records.
type AttendanceRepository interface {
	// Create inserts a new record. The store enforces a unique (user_id, date)
	// constraint so concurrent clock-ins cannot produce duplicate day records.
	Create(ctx context.Context, record Record) (Record, error)

	// GetTodayByUser returns the user's record with date in [dayStart, dayEnd),
	// or nil when the user has not clocked in that day.
	GetTodayByUser(ctx context.Context, userID string, dayStart, dayEnd time.Time) (*Record, error)

	// SetClockOut closes an open record.
	SetClockOut(ctx context.Context, id string, clockOutTime time.Time, totalHours float64, location *Location) error

	// ListByUserSince returns the user's records with date >= since, newest first.
	ListByUserSince(ctx context.Context, userID string, since time.Time) ([]Record, error)

	// ListByDateRange returns all records with date in [dayStart, dayEnd).
	ListByDateRange(ctx context.Context, dayStart, dayEnd time.Time) ([]Record, error)
}
