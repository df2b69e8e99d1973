package performance

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calldesk/callcenter-backend-go/internal/domain/performance"
	"github.com/calldesk/callcenter-backend-go/internal/domain/user"
)

type fakePerformanceRepo struct {
	daily     []performance.DailyMetrics
	weekly    []performance.WeeklyMetrics
	monthly   []performance.MonthlyMetrics
	goals     []performance.Goal
	teamStats map[string]performance.TeamStats
}

func (f *fakePerformanceRepo) GetDaily(_ context.Context, userID string, start, end time.Time) (*performance.DailyMetrics, error) {
	var latest *performance.DailyMetrics
	for i := range f.daily {
		m := f.daily[i]
		if m.UserID == userID && !m.Date.Before(start) && m.Date.Before(end) {
			if latest == nil || m.Date.After(latest.Date) {
				latest = &f.daily[i]
			}
		}
	}
	return latest, nil
}

func (f *fakePerformanceRepo) GetLatestDaily(_ context.Context, userID string) (*performance.DailyMetrics, error) {
	var latest *performance.DailyMetrics
	for i := range f.daily {
		m := f.daily[i]
		if m.UserID == userID {
			if latest == nil || m.Date.After(latest.Date) {
				latest = &f.daily[i]
			}
		}
	}
	return latest, nil
}

func (f *fakePerformanceRepo) GetWeekly(_ context.Context, userID string, start, end time.Time) (*performance.WeeklyMetrics, error) {
	for i := range f.weekly {
		m := f.weekly[i]
		if m.UserID == userID && !m.WeekStart.Before(start) && m.WeekStart.Before(end) {
			return &f.weekly[i], nil
		}
	}
	return nil, nil
}

func (f *fakePerformanceRepo) GetMonthly(_ context.Context, userID string, start, end time.Time) (*performance.MonthlyMetrics, error) {
	for i := range f.monthly {
		m := f.monthly[i]
		if m.UserID == userID && !m.MonthStart.Before(start) && m.MonthStart.Before(end) {
			return &f.monthly[i], nil
		}
	}
	return nil, nil
}

func (f *fakePerformanceRepo) ListActiveGoals(_ context.Context, userID string) ([]performance.Goal, error) {
	var out []performance.Goal
	for _, g := range f.goals {
		if g.UserID == userID && g.IsActive {
			out = append(out, g)
		}
	}
	return out, nil
}

func (f *fakePerformanceRepo) GetTeamStats(_ context.Context, teamID string) (*performance.TeamStats, error) {
	if stats, ok := f.teamStats[teamID]; ok {
		return &stats, nil
	}
	return nil, nil
}

type fakeUserRepo struct {
	users []user.User
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*user.User, error) {
	return nil, nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*user.User, error) {
	for i := range f.users {
		if f.users[i].ID == id {
			return &f.users[i], nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetByIDs(_ context.Context, ids []string) ([]user.User, error) {
	return nil, nil
}

func (f *fakeUserRepo) Create(_ context.Context, newUser user.User) (user.User, error) {
	return newUser, nil
}

func (f *fakeUserRepo) List(_ context.Context) ([]user.User, error) {
	return f.users, nil
}

var testClock = time.Date(2025, 3, 12, 14, 0, 0, 0, time.UTC) // Wednesday

func newTestService(repo *fakePerformanceRepo, users *fakeUserRepo) *PerformanceServiceImpl {
	return &PerformanceServiceImpl{
		PerformanceRepository: repo,
		UserRepository:        users,
		now:                   func() time.Time { return testClock },
	}
}

func actor() user.Identity {
	return user.Identity{ID: "u1", Name: "Kim", Role: user.RoleMember}
}

func day(offset int) time.Time {
	return time.Date(2025, 3, 12+offset, 0, 0, 0, 0, time.UTC)
}

func TestDailyDerivesTrends(t *testing.T) {
	repo := &fakePerformanceRepo{
		daily: []performance.DailyMetrics{
			{UserID: "u1", Date: day(0), Metrics: performance.Metrics{
				CallsHandled: 22, ResolutionRate: 88, AvgCallDuration: 180, SatisfactionScore: 92,
			}},
			{UserID: "u1", Date: day(-1), Metrics: performance.Metrics{
				CallsHandled: 20, ResolutionRate: 80, AvgCallDuration: 200, SatisfactionScore: 92,
			}},
		},
	}
	svc := newTestService(repo, &fakeUserRepo{})

	result, err := svc.Daily(context.Background(), actor())
	require.NoError(t, err)
	require.Len(t, result.KPIs, 4)

	byID := map[string]performance.KPI{}
	for _, k := range result.KPIs {
		byID[k.ID] = k
	}

	assert.Equal(t, 10, byID["calls_handled"].Trend)
	assert.Equal(t, float64(20), byID["calls_handled"].Target)
	assert.Equal(t, 10, byID["resolution_rate"].Trend)
	// Shorter calls are an improvement, so the trend flips sign.
	assert.Equal(t, 10, byID["avg_call_duration"].Trend)
	assert.Equal(t, 0, byID["satisfaction_score"].Trend)
}

func TestDailyWithoutPreviousPeriodReportsZeroTrend(t *testing.T) {
	repo := &fakePerformanceRepo{
		daily: []performance.DailyMetrics{
			{UserID: "u1", Date: day(0), Metrics: performance.Metrics{CallsHandled: 22}},
		},
	}
	svc := newTestService(repo, &fakeUserRepo{})

	result, err := svc.Daily(context.Background(), actor())
	require.NoError(t, err)
	for _, kpi := range result.KPIs {
		assert.Equal(t, 0, kpi.Trend)
	}
}

func TestDailyWithoutSnapshotReturnsEmptyDashboard(t *testing.T) {
	svc := newTestService(&fakePerformanceRepo{}, &fakeUserRepo{})

	result, err := svc.Daily(context.Background(), actor())
	require.NoError(t, err)
	assert.Empty(t, result.KPIs)
	assert.Empty(t, result.Charts)
	assert.Equal(t, "2025-03-12", result.PeriodStart)
}

func TestWeeklyUsesSundayWeekStart(t *testing.T) {
	weekStart := time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC)
	repo := &fakePerformanceRepo{
		weekly: []performance.WeeklyMetrics{
			{UserID: "u1", WeekStart: weekStart, Metrics: performance.Metrics{CallsHandled: 110}},
		},
	}
	svc := newTestService(repo, &fakeUserRepo{})

	result, err := svc.Weekly(context.Background(), actor())
	require.NoError(t, err)
	assert.Equal(t, "2025-03-09", result.PeriodStart)
	require.Len(t, result.KPIs, 4)
	assert.Equal(t, float64(110), result.KPIs[0].Value)
}

func TestGoalsReturnsOnlyActive(t *testing.T) {
	repo := &fakePerformanceRepo{
		goals: []performance.Goal{
			{ID: "g1", UserID: "u1", Title: "More calls", IsActive: true},
			{ID: "g2", UserID: "u1", Title: "Old goal", IsActive: false},
			{ID: "g3", UserID: "u2", Title: "Someone else", IsActive: true},
		},
	}
	svc := newTestService(repo, &fakeUserRepo{})

	result, err := svc.Goals(context.Background(), actor())
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "g1", result[0].ID)
}

func TestTeamComparisonPositionsAndZones(t *testing.T) {
	teamID := "team-1"
	repo := &fakePerformanceRepo{
		daily: []performance.DailyMetrics{
			{UserID: "u1", Date: day(0), Metrics: performance.Metrics{
				CallsHandled: 30, ResolutionRate: 80, AvgCallDuration: 100, SatisfactionScore: 90,
			}},
		},
		teamStats: map[string]performance.TeamStats{
			teamID: {
				AvgCallsHandled:      20,
				AvgResolutionRate:    80,
				AvgCallDuration:      200,
				AvgSatisfactionScore: 0,
			},
		},
	}
	users := &fakeUserRepo{users: []user.User{{ID: "u1", TeamID: &teamID}}}
	svc := newTestService(repo, users)

	result, err := svc.TeamComparison(context.Background(), actor())
	require.NoError(t, err)
	require.Len(t, result.Metrics, 4)

	byID := map[string]performance.ComparisonMetric{}
	for _, m := range result.Metrics {
		byID[m.ID] = m
	}

	assert.Equal(t, float64(150), byID["calls_handled"].Position)
	assert.Equal(t, performance.ZoneOverAverage, byID["calls_handled"].Zone)
	assert.True(t, byID["calls_handled"].HigherIsBetter)

	assert.Equal(t, float64(100), byID["resolution_rate"].Position)
	assert.Equal(t, performance.ZoneNearAverage, byID["resolution_rate"].Zone)

	assert.Equal(t, float64(50), byID["avg_call_duration"].Position)
	assert.Equal(t, performance.ZoneUnderAverage, byID["avg_call_duration"].Zone)
	assert.False(t, byID["avg_call_duration"].HigherIsBetter)

	// Zero team average with a non-zero user value pins to the top of the scale.
	assert.Equal(t, float64(200), byID["satisfaction_score"].Position)
}

func TestTeamComparisonWithoutTeamFails(t *testing.T) {
	users := &fakeUserRepo{users: []user.User{{ID: "u1"}}}
	svc := newTestService(&fakePerformanceRepo{}, users)

	_, err := svc.TeamComparison(context.Background(), actor())
	assert.ErrorIs(t, err, performance.ErrNoTeamAssigned)
}

func TestTeamComparisonWithoutStatsFails(t *testing.T) {
	teamID := "team-1"
	users := &fakeUserRepo{users: []user.User{{ID: "u1", TeamID: &teamID}}}
	svc := newTestService(&fakePerformanceRepo{teamStats: map[string]performance.TeamStats{}}, users)

	_, err := svc.TeamComparison(context.Background(), actor())
	assert.ErrorIs(t, err, performance.ErrNoTeamStats)
}
