package performance

import (
	"context"
	"time"
)

type PerformanceRepository interface {
	// GetDaily returns the newest snapshot with date in [start, end), or nil.
	GetDaily(ctx context.Context, userID string, start, end time.Time) (*DailyMetrics, error)

	// GetLatestDaily returns the user's most recent daily snapshot, or nil.
	GetLatestDaily(ctx context.Context, userID string) (*DailyMetrics, error)

	// GetWeekly returns the snapshot with week_start in [start, end), or nil.
	GetWeekly(ctx context.Context, userID string, start, end time.Time) (*WeeklyMetrics, error)

	// GetMonthly returns the snapshot with month_start in [start, end), or nil.
	GetMonthly(ctx context.Context, userID string, start, end time.Time) (*MonthlyMetrics, error)

	ListActiveGoals(ctx context.Context, userID string) ([]Goal, error)

	// GetTeamStats returns the team averages document, or nil.
	GetTeamStats(ctx context.Context, teamID string) (*TeamStats, error)
}
