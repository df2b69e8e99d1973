package performance

import (
	"math"
	"time"
)

// Metrics are the per-period counters written by the external aggregation
// job. This service only reads them.
type Metrics struct {
	CallsHandled       float64 `bson:"calls_handled"`
	ResolutionRate     float64 `bson:"resolution_rate"`
	AvgCallDuration    float64 `bson:"avg_call_duration"`
	SatisfactionScore  float64 `bson:"satisfaction_score"`
	CallsTarget        float64 `bson:"calls_target,omitempty"`
	ResolutionTarget   float64 `bson:"resolution_target,omitempty"`
	CallTimeTarget     float64 `bson:"call_time_target,omitempty"`
	SatisfactionTarget float64 `bson:"satisfaction_target,omitempty"`
}

type TimelinePoint struct {
	Label string  `bson:"label" json:"label"`
	Value float64 `bson:"value" json:"value"`
}

type DailyMetrics struct {
	ID                 string          `bson:"_id,omitempty"`
	UserID             string          `bson:"user_id"`
	Date               time.Time       `bson:"date"`
	Metrics            `bson:",inline"`
	CallsTimeline      []TimelinePoint `bson:"calls_timeline,omitempty"`
	ResolutionTimeline []TimelinePoint `bson:"resolution_timeline,omitempty"`
}

type WeeklyMetrics struct {
	ID        string    `bson:"_id,omitempty"`
	UserID    string    `bson:"user_id"`
	WeekStart time.Time `bson:"week_start"`
	Metrics   `bson:",inline"`
}

type MonthlyMetrics struct {
	ID         string    `bson:"_id,omitempty"`
	UserID     string    `bson:"user_id"`
	MonthStart time.Time `bson:"month_start"`
	Metrics    `bson:",inline"`
}

type Goal struct {
	ID           string     `bson:"_id,omitempty"`
	UserID       string     `bson:"user_id"`
	Title        string     `bson:"title"`
	Metric       string     `bson:"metric"`
	TargetValue  float64    `bson:"target_value"`
	CurrentValue float64    `bson:"current_value"`
	StartDate    *time.Time `bson:"start_date,omitempty"`
	EndDate      *time.Time `bson:"end_date,omitempty"`
	IsActive     bool       `bson:"is_active"`
}

// TeamStats holds one document per team with the current team averages.
type TeamStats struct {
	TeamID               string  `bson:"_id,omitempty"`
	AvgCallsHandled      float64 `bson:"avg_calls_handled"`
	AvgResolutionRate    float64 `bson:"avg_resolution_rate"`
	AvgCallDuration      float64 `bson:"avg_call_duration"`
	AvgSatisfactionScore float64 `bson:"avg_satisfaction_score"`
}

// Trend returns the percentage change versus the previous period, rounded to
// the nearest integer. Missing history (previous <= 0) is reported as 0, "no
// change" rather than "no data".
func Trend(current, previous float64) int {
	if previous <= 0 {
		return 0
	}
	return int(math.Round((current - previous) / previous * 100))
}

// Position maps a user value against the team average onto a 0-200 scale
// where 100 is exactly average.
func Position(userValue, teamAverage float64) float64 {
	if teamAverage <= 0 {
		if userValue <= 0 {
			return 0
		}
		return 200
	}
	position := userValue / teamAverage * 100
	return math.Min(math.Max(position, 0), 200)
}

// Comparison zones. Whether a zone is good or bad flips with the metric's
// higher-is-better flag.
const (
	ZoneUnderAverage = "under_average"
	ZoneNearAverage  = "near_average"
	ZoneOverAverage  = "over_average"
)

// Zone buckets a position into the three comparison bands.
func Zone(position float64) string {
	switch {
	case position < 90:
		return ZoneUnderAverage
	case position > 110:
		return ZoneOverAverage
	default:
		return ZoneNearAverage
	}
}

// StartOfWeek returns midnight of the Sunday on or before t.
func StartOfWeek(t time.Time) time.Time {
	d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return d.AddDate(0, 0, -int(d.Weekday()))
}

// StartOfMonth returns midnight of the first day of t's month.
func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}
