package attendance

import "errors"

// Attendance domain errors
var (
	ErrAlreadyClockedIn   = errors.New("you are already clocked in")
	ErrAlreadyClockedOut  = errors.New("you have already clocked out")
	ErrNotClockedIn       = errors.New("you have not clocked in today")
	ErrAttendanceNotFound = errors.New("attendance record not found")
)
