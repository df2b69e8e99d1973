package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/calldesk/callcenter-backend-go/internal/domain/attendance"
	"github.com/calldesk/callcenter-backend-go/internal/domain/user"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	user.UserRepository
	now func() time.Time
}

func NewAttendanceService(attendanceRepository attendance.AttendanceRepository, userRepository user.UserRepository) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepository,
		UserRepository:       userRepository,
		now:                  time.Now,
	}
}

// ClockIn implements attendance.AttendanceService. One record per user per
// day: a second clock-in fails whether or not the first one was closed.
func (s *AttendanceServiceImpl) ClockIn(ctx context.Context, actor user.Identity, req attendance.ClockInRequest) (attendance.RecordResponse, error) {
	now := s.now()
	dayStart, dayEnd := attendance.DayBounds(now)

	existing, err := s.AttendanceRepository.GetTodayByUser(ctx, actor.ID, dayStart, dayEnd)
	if err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to get today's attendance: %w", err)
	}
	if existing != nil {
		return attendance.RecordResponse{}, attendance.ErrAlreadyClockedIn
	}

	record, err := s.AttendanceRepository.Create(ctx, attendance.Record{
		UserID:      actor.ID,
		UserName:    actor.Name,
		Date:        dayStart,
		ClockInTime: now,
		Status:      attendance.StatusPresent,
		Location:    req.Location,
	})
	if err != nil {
		if err == attendance.ErrAlreadyClockedIn {
			return attendance.RecordResponse{}, err
		}
		return attendance.RecordResponse{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return attendance.ToResponse(record), nil
}

// ClockOut implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ClockOut(ctx context.Context, actor user.Identity, req attendance.ClockOutRequest) (attendance.RecordResponse, error) {
	now := s.now()
	dayStart, dayEnd := attendance.DayBounds(now)

	record, err := s.AttendanceRepository.GetTodayByUser(ctx, actor.ID, dayStart, dayEnd)
	if err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to get today's attendance: %w", err)
	}
	if record == nil {
		return attendance.RecordResponse{}, attendance.ErrNotClockedIn
	}
	if !record.IsOpen() {
		return attendance.RecordResponse{}, attendance.ErrAlreadyClockedOut
	}

	hours := attendance.CalculateHours(record.ClockInTime, now)
	if err := s.AttendanceRepository.SetClockOut(ctx, record.ID, now, hours, req.Location); err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to close attendance record: %w", err)
	}

	record.ClockOutTime = &now
	record.TotalHours = &hours
	if req.Location != nil {
		record.Location = req.Location
	}
	return attendance.ToResponse(*record), nil
}

// Today implements attendance.AttendanceService. No record is the valid
// "not clocked in yet" state.
func (s *AttendanceServiceImpl) Today(ctx context.Context, actor user.Identity) (attendance.TodayResponse, error) {
	dayStart, dayEnd := attendance.DayBounds(s.now())

	record, err := s.AttendanceRepository.GetTodayByUser(ctx, actor.ID, dayStart, dayEnd)
	if err != nil {
		return attendance.TodayResponse{}, fmt.Errorf("failed to get today's attendance: %w", err)
	}
	if record == nil {
		return attendance.TodayResponse{ClockedIn: false}, nil
	}

	resp := attendance.ToResponse(*record)
	return attendance.TodayResponse{Record: &resp, ClockedIn: true}, nil
}

// History implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) History(ctx context.Context, actor user.Identity, days int) ([]attendance.HistoryEntry, error) {
	if days <= 0 {
		days = 30
	}
	dayStart, _ := attendance.DayBounds(s.now())
	since := dayStart.AddDate(0, 0, -(days - 1))

	records, err := s.AttendanceRepository.ListByUserSince(ctx, actor.ID, since)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance history: %w", err)
	}

	entries := make([]attendance.HistoryEntry, 0, len(records))
	for _, record := range records {
		entry := attendance.HistoryEntry{RecordResponse: attendance.ToResponse(record)}
		if record.TotalHours != nil {
			entry.HoursWorked = *record.TotalHours
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// Team implements attendance.AttendanceService. Every user appears exactly
// once; users without a record today are reported absent with zero hours.
func (s *AttendanceServiceImpl) Team(ctx context.Context, actor user.Identity) ([]attendance.TeamMemberAttendance, error) {
	if !actor.Can(user.PermissionAttendanceViewAll) {
		return nil, user.ErrInsufficientPermissions
	}

	dayStart, dayEnd := attendance.DayBounds(s.now())

	users, err := s.UserRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	records, err := s.AttendanceRepository.ListByDateRange(ctx, dayStart, dayEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to list today's attendance: %w", err)
	}

	byUser := make(map[string]attendance.Record, len(records))
	for _, record := range records {
		byUser[record.UserID] = record
	}

	team := make([]attendance.TeamMemberAttendance, 0, len(users))
	for _, u := range users {
		member := attendance.TeamMemberAttendance{
			UserID: u.ID,
			Name:   u.Name(),
			Role:   string(u.Role),
			Status: string(attendance.StatusAbsent),
		}
		if record, ok := byUser[u.ID]; ok {
			member.Status = string(record.Status)
			clockIn := record.ClockInTime.Format(time.RFC3339)
			member.ClockInTime = &clockIn
			if record.ClockOutTime != nil {
				clockOut := record.ClockOutTime.Format(time.RFC3339)
				member.ClockOutTime = &clockOut
			}
			if record.TotalHours != nil {
				member.HoursWorked = *record.TotalHours
			}
		}
		team = append(team, member)
	}
	return team, nil
}
