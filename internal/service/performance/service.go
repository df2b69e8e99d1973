package performance

import (
	"context"
	"fmt"
	"time"

	"github.com/calldesk/callcenter-backend-go/internal/domain/performance"
	"github.com/calldesk/callcenter-backend-go/internal/domain/user"
)

// Default KPI targets used when a snapshot carries none of its own.
const (
	defaultCallsTarget        = 20
	defaultResolutionTarget   = 85
	defaultCallTimeTarget     = 180
	defaultSatisfactionTarget = 90
)

type PerformanceServiceImpl struct {
	performance.PerformanceRepository
	user.UserRepository
	now func() time.Time
}

func NewPerformanceService(performanceRepository performance.PerformanceRepository, userRepository user.UserRepository) performance.PerformanceService {
	return &PerformanceServiceImpl{
		PerformanceRepository: performanceRepository,
		UserRepository:        userRepository,
		now:                   time.Now,
	}
}

// Daily implements performance.PerformanceService.
func (s *PerformanceServiceImpl) Daily(ctx context.Context, actor user.Identity) (performance.StatsResponse, error) {
	now := s.now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)
	prevStart := dayStart.AddDate(0, 0, -1)

	current, err := s.PerformanceRepository.GetDaily(ctx, actor.ID, dayStart, dayEnd)
	if err != nil {
		return performance.StatsResponse{}, fmt.Errorf("failed to get daily metrics: %w", err)
	}
	if current == nil {
		return emptyStats(dayStart), nil
	}

	previous, err := s.PerformanceRepository.GetDaily(ctx, actor.ID, prevStart, dayStart)
	if err != nil {
		return performance.StatsResponse{}, fmt.Errorf("failed to get previous daily metrics: %w", err)
	}

	resp := performance.StatsResponse{
		PeriodStart: dayStart.Format("2006-01-02"),
		KPIs:        buildKPIs(current.Metrics, previousMetrics(previous != nil, func() performance.Metrics { return previous.Metrics })),
		Charts:      []performance.Chart{},
	}
	if current.CallsTimeline != nil {
		resp.Charts = append(resp.Charts, performance.Chart{
			ID: "calls", Title: "Calls Handled", Type: "bar", Data: current.CallsTimeline,
		})
	}
	if current.ResolutionTimeline != nil {
		resp.Charts = append(resp.Charts, performance.Chart{
			ID: "resolution", Title: "Resolution Rate", Type: "line", Data: current.ResolutionTimeline,
		})
	}
	return resp, nil
}

// Weekly implements performance.PerformanceService. Weeks start on Sunday.
func (s *PerformanceServiceImpl) Weekly(ctx context.Context, actor user.Identity) (performance.StatsResponse, error) {
	weekStart := performance.StartOfWeek(s.now())
	weekEnd := weekStart.AddDate(0, 0, 7)
	prevStart := weekStart.AddDate(0, 0, -7)

	current, err := s.PerformanceRepository.GetWeekly(ctx, actor.ID, weekStart, weekEnd)
	if err != nil {
		return performance.StatsResponse{}, fmt.Errorf("failed to get weekly metrics: %w", err)
	}
	if current == nil {
		return emptyStats(weekStart), nil
	}

	previous, err := s.PerformanceRepository.GetWeekly(ctx, actor.ID, prevStart, weekStart)
	if err != nil {
		return performance.StatsResponse{}, fmt.Errorf("failed to get previous weekly metrics: %w", err)
	}

	return performance.StatsResponse{
		PeriodStart: weekStart.Format("2006-01-02"),
		KPIs:        buildKPIs(current.Metrics, previousMetrics(previous != nil, func() performance.Metrics { return previous.Metrics })),
		Charts:      []performance.Chart{},
	}, nil
}

// Monthly implements performance.PerformanceService.
func (s *PerformanceServiceImpl) Monthly(ctx context.Context, actor user.Identity) (performance.StatsResponse, error) {
	monthStart := performance.StartOfMonth(s.now())
	monthEnd := monthStart.AddDate(0, 1, 0)
	prevStart := monthStart.AddDate(0, -1, 0)

	current, err := s.PerformanceRepository.GetMonthly(ctx, actor.ID, monthStart, monthEnd)
	if err != nil {
		return performance.StatsResponse{}, fmt.Errorf("failed to get monthly metrics: %w", err)
	}
	if current == nil {
		return emptyStats(monthStart), nil
	}

	previous, err := s.PerformanceRepository.GetMonthly(ctx, actor.ID, prevStart, monthStart)
	if err != nil {
		return performance.StatsResponse{}, fmt.Errorf("failed to get previous monthly metrics: %w", err)
	}

	return performance.StatsResponse{
		PeriodStart: monthStart.Format("2006-01-02"),
		KPIs:        buildKPIs(current.Metrics, previousMetrics(previous != nil, func() performance.Metrics { return previous.Metrics })),
		Charts:      []performance.Chart{},
	}, nil
}

// Goals implements performance.PerformanceService.
func (s *PerformanceServiceImpl) Goals(ctx context.Context, actor user.Identity) ([]performance.GoalResponse, error) {
	goals, err := s.PerformanceRepository.ListActiveGoals(ctx, actor.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}

	responses := make([]performance.GoalResponse, 0, len(goals))
	for _, g := range goals {
		resp := performance.GoalResponse{
			ID:           g.ID,
			Title:        g.Title,
			Metric:       g.Metric,
			TargetValue:  g.TargetValue,
			CurrentValue: g.CurrentValue,
		}
		if g.StartDate != nil {
			d := g.StartDate.Format("2006-01-02")
			resp.StartDate = &d
		}
		if g.EndDate != nil {
			d := g.EndDate.Format("2006-01-02")
			resp.EndDate = &d
		}
		responses = append(responses, resp)
	}
	return responses, nil
}

// TeamComparison implements performance.PerformanceService.
func (s *PerformanceServiceImpl) TeamComparison(ctx context.Context, actor user.Identity) (performance.TeamComparisonResponse, error) {
	u, err := s.UserRepository.GetByID(ctx, actor.ID)
	if err != nil {
		return performance.TeamComparisonResponse{}, fmt.Errorf("failed to get user: %w", err)
	}
	if u == nil {
		return performance.TeamComparisonResponse{}, user.ErrUserNotFound
	}
	if u.TeamID == nil {
		return performance.TeamComparisonResponse{}, performance.ErrNoTeamAssigned
	}

	stats, err := s.PerformanceRepository.GetTeamStats(ctx, *u.TeamID)
	if err != nil {
		return performance.TeamComparisonResponse{}, fmt.Errorf("failed to get team stats: %w", err)
	}
	if stats == nil {
		return performance.TeamComparisonResponse{}, performance.ErrNoTeamStats
	}

	latest, err := s.PerformanceRepository.GetLatestDaily(ctx, actor.ID)
	if err != nil {
		return performance.TeamComparisonResponse{}, fmt.Errorf("failed to get latest metrics: %w", err)
	}
	if latest == nil {
		return performance.TeamComparisonResponse{}, performance.ErrNoUserMetrics
	}

	metrics := []performance.ComparisonMetric{
		comparison("calls_handled", "Calls Handled", latest.CallsHandled, stats.AvgCallsHandled, "", true),
		comparison("resolution_rate", "Resolution Rate", latest.ResolutionRate, stats.AvgResolutionRate, "%", true),
		comparison("avg_call_duration", "Avg Call Duration", latest.AvgCallDuration, stats.AvgCallDuration, "s", false),
		comparison("satisfaction_score", "Satisfaction Score", latest.SatisfactionScore, stats.AvgSatisfactionScore, "%", true),
	}
	return performance.TeamComparisonResponse{Metrics: metrics}, nil
}

func comparison(id, name string, userValue, teamAverage float64, unit string, higherIsBetter bool) performance.ComparisonMetric {
	position := performance.Position(userValue, teamAverage)
	return performance.ComparisonMetric{
		ID:             id,
		Name:           name,
		UserValue:      userValue,
		TeamAverage:    teamAverage,
		Unit:           unit,
		HigherIsBetter: higherIsBetter,
		Position:       position,
		Zone:           performance.Zone(position),
	}
}

// buildKPIs derives the four dashboard KPIs. The avg-call-duration trend is
// sign-inverted: a shorter call time is an improvement.
func buildKPIs(current performance.Metrics, previous *performance.Metrics) []performance.KPI {
	var prevCalls, prevResolution, prevDuration, prevSatisfaction float64
	if previous != nil {
		prevCalls = previous.CallsHandled
		prevResolution = previous.ResolutionRate
		prevDuration = previous.AvgCallDuration
		prevSatisfaction = previous.SatisfactionScore
	}

	return []performance.KPI{
		{
			ID:     "calls_handled",
			Title:  "Calls Handled",
			Value:  current.CallsHandled,
			Trend:  performance.Trend(current.CallsHandled, prevCalls),
			Target: targetOr(current.CallsTarget, defaultCallsTarget),
		},
		{
			ID:     "resolution_rate",
			Title:  "Resolution Rate",
			Value:  current.ResolutionRate,
			Trend:  performance.Trend(current.ResolutionRate, prevResolution),
			Target: targetOr(current.ResolutionTarget, defaultResolutionTarget),
			Unit:   "%",
		},
		{
			ID:     "avg_call_duration",
			Title:  "Avg Call Duration",
			Value:  current.AvgCallDuration,
			Trend:  -performance.Trend(current.AvgCallDuration, prevDuration),
			Target: targetOr(current.CallTimeTarget, defaultCallTimeTarget),
			Unit:   "s",
		},
		{
			ID:     "satisfaction_score",
			Title:  "Satisfaction Score",
			Value:  current.SatisfactionScore,
			Trend:  performance.Trend(current.SatisfactionScore, prevSatisfaction),
			Target: targetOr(current.SatisfactionTarget, defaultSatisfactionTarget),
			Unit:   "%",
		},
	}
}

func previousMetrics(ok bool, get func() performance.Metrics) *performance.Metrics {
	if !ok {
		return nil
	}
	m := get()
	return &m
}

func targetOr(value, fallback float64) float64 {
	if value > 0 {
		return value
	}
	return fallback
}

func emptyStats(periodStart time.Time) performance.StatsResponse {
	return performance.StatsResponse{
		PeriodStart: periodStart.Format("2006-01-02"),
		KPIs:        []performance.KPI{},
		Charts:      []performance.Chart{},
	}
}
