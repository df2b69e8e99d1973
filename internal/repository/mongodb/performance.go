package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/calldesk/callcenter-backend-go/internal/domain/performance"
	"github.com/calldesk/callcenter-backend-go/internal/pkg/database"
)

// PerformanceRepository reads the snapshot collections maintained by the
// external aggregation job. This service never writes them.
type PerformanceRepository struct {
	daily     *mongo.Collection
	weekly    *mongo.Collection
	monthly   *mongo.Collection
	goals     *mongo.Collection
	teamStats *mongo.Collection
}

func NewPerformanceRepository(db *database.MongoDB) *PerformanceRepository {
	return &PerformanceRepository{
		daily:     db.Collection("performanceMetrics"),
		weekly:    db.Collection("weeklyPerformance"),
		monthly:   db.Collection("monthlyPerformance"),
		goals:     db.Collection("goals"),
		teamStats: db.Collection("teamStats"),
	}
}

func (r *PerformanceRepository) GetDaily(ctx context.Context, userID string, start, end time.Time) (*performance.DailyMetrics, error) {
	var m performance.DailyMetrics
	opts := options.FindOne().SetSort(bson.D{{Key: "date", Value: -1}})
	err := r.daily.FindOne(ctx, bson.M{
		"user_id": userID,
		"date":    bson.M{"$gte": start, "$lt": end},
	}, opts).Decode(&m)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find daily metrics: %w", err)
	}
	return &m, nil
}

func (r *PerformanceRepository) GetLatestDaily(ctx context.Context, userID string) (*performance.DailyMetrics, error) {
	var m performance.DailyMetrics
	opts := options.FindOne().SetSort(bson.D{{Key: "date", Value: -1}})
	err := r.daily.FindOne(ctx, bson.M{"user_id": userID}, opts).Decode(&m)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find latest daily metrics: %w", err)
	}
	return &m, nil
}

func (r *PerformanceRepository) GetWeekly(ctx context.Context, userID string, start, end time.Time) (*performance.WeeklyMetrics, error) {
	var m performance.WeeklyMetrics
	err := r.weekly.FindOne(ctx, bson.M{
		"user_id":    userID,
		"week_start": bson.M{"$gte": start, "$lt": end},
	}).Decode(&m)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find weekly metrics: %w", err)
	}
	return &m, nil
}

func (r *PerformanceRepository) GetMonthly(ctx context.Context, userID string, start, end time.Time) (*performance.MonthlyMetrics, error) {
	var m performance.MonthlyMetrics
	err := r.monthly.FindOne(ctx, bson.M{
		"user_id":     userID,
		"month_start": bson.M{"$gte": start, "$lt": end},
	}).Decode(&m)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find monthly metrics: %w", err)
	}
	return &m, nil
}

func (r *PerformanceRepository) ListActiveGoals(ctx context.Context, userID string) ([]performance.Goal, error) {
	cursor, err := r.goals.Find(ctx, bson.M{"user_id": userID, "is_active": true})
	if err != nil {
		return nil, fmt.Errorf("find goals: %w", err)
	}
	var results []performance.Goal
	if err := cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("decode goals: %w", err)
	}
	return results, nil
}

func (r *PerformanceRepository) GetTeamStats(ctx context.Context, teamID string) (*performance.TeamStats, error) {
	var stats performance.TeamStats
	err := r.teamStats.FindOne(ctx, bson.M{"_id": teamID}).Decode(&stats)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find team stats: %w", err)
	}
	return &stats, nil
}
