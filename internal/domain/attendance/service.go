package attendance

import (
	"context"

	"github.com/calldesk/callcenter-backend-go/internal/domain/user"
)

type AttendanceService interface {
	ClockIn(ctx context.Context, actor user.Identity, req ClockInRequest) (RecordResponse, error)
	ClockOut(ctx context.Context, actor user.Identity, req ClockOutRequest) (RecordResponse, error)
	Today(ctx context.Context, actor user.Identity) (TodayResponse, error)
	History(ctx context.Context, actor user.Identity, days int) ([]HistoryEntry, error)
	Team(ctx context.Context, actor user.Identity) ([]TeamMemberAttendance, error)
}
