package attendance

import "time"

type ClockInRequest struct {
	Location *Location `json:"location,omitempty"`
}

type ClockOutRequest struct {
	Location *Location `json:"location,omitempty"`
}

type RecordResponse struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	UserName     string    `json:"user_name"`
	Date         string    `json:"date"`
	ClockInTime  string    `json:"clock_in_time"`
	ClockOutTime *string   `json:"clock_out_time,omitempty"`
	TotalHours   *float64  `json:"total_hours,omitempty"`
	Status       string    `json:"status"`
	Location     *Location `json:"location,omitempty"`
}

// TodayResponse wraps the optional today-record: absence of a record is the
// valid "not clocked in" state, not an error.
type TodayResponse struct {
	Record    *RecordResponse `json:"record"`
	ClockedIn bool            `json:"clocked_in"`
}

type HistoryEntry struct {
	RecordResponse
	HoursWorked float64 `json:"hours_worked"`
}

// TeamMemberAttendance is one row of the today-join across all users; users
// with no record for the day are reported absent with zero hours.
type TeamMemberAttendance struct {
	UserID       string  `json:"user_id"`
	Name         string  `json:"name"`
	Role         string  `json:"role"`
	Status       string  `json:"status"`
	ClockInTime  *string `json:"clock_in_time,omitempty"`
	ClockOutTime *string `json:"clock_out_time,omitempty"`
	HoursWorked  float64 `json:"hours_worked"`
}

func ToResponse(r Record) RecordResponse {
	resp := RecordResponse{
		ID:          r.ID,
		UserID:      r.UserID,
		UserName:    r.UserName,
		Date:        r.Date.Format("2006-01-02"),
		ClockInTime: r.ClockInTime.Format(time.RFC3339),
		TotalHours:  r.TotalHours,
		Status:      string(r.Status),
		Location:    r.Location,
	}
	if r.ClockOutTime != nil {
		out := r.ClockOutTime.Format(time.RFC3339)
		resp.ClockOutTime = &out
	}
	return resp
}
