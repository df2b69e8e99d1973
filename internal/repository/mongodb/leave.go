package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/calldesk/callcenter-backend-go/internal/domain/leave"
	"github.com/calldesk/callcenter-backend-go/internal/pkg/database"
)

type LeaveRepository struct {
	requests *mongo.Collection
}

func NewLeaveRepository(ctx context.Context, db *database.MongoDB) (*LeaveRepository, error) {
	requests := db.Collection("leaveRequests")

	if _, err := requests.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "requested_at", Value: -1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
	}); err != nil {
		return nil, fmt.Errorf("create leave indexes: %w", err)
	}

	return &LeaveRepository{requests: requests}, nil
}

func (r *LeaveRepository) Create(ctx context.Context, request leave.Request) (leave.Request, error) {
	request.ID = bson.NewObjectID().Hex()

	if _, err := r.requests.InsertOne(ctx, request); err != nil {
		return leave.Request{}, fmt.Errorf("insert leave request: %w", err)
	}
	return request, nil
}

func (r *LeaveRepository) ListByUser(ctx context.Context, userID string) ([]leave.Request, error) {
	opts := options.Find().SetSort(bson.D{{Key: "requested_at", Value: -1}})
	cursor, err := r.requests.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("find leave requests: %w", err)
	}
	var results []leave.Request
	if err := cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("decode leave requests: %w", err)
	}
	return results, nil
}

func (r *LeaveRepository) List(ctx context.Context, status *leave.RequestStatus) ([]leave.Request, error) {
	filter := bson.M{}
	if status != nil {
		filter["status"] = *status
	}
	opts := options.Find().SetSort(bson.D{{Key: "requested_at", Value: -1}})
	cursor, err := r.requests.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find leave requests: %w", err)
	}
	var results []leave.Request
	if err := cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("decode leave requests: %w", err)
	}
	return results, nil
}

func (r *LeaveRepository) GetByID(ctx context.Context, id string) (*leave.Request, error) {
	var request leave.Request
	err := r.requests.FindOne(ctx, bson.M{"_id": id}).Decode(&request)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find leave request: %w", err)
	}
	return &request, nil
}

func (r *LeaveRepository) SetStatus(ctx context.Context, id string, status leave.RequestStatus, approvedBy, approverName string) error {
	res, err := r.requests.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{
		"status":        status,
		"approved_by":   approvedBy,
		"approver_name": approverName,
		"processed_at":  time.Now(),
	}})
	if err != nil {
		return fmt.Errorf("update leave request: %w", err)
	}
	if res.MatchedCount == 0 {
		return leave.ErrLeaveRequestNotFound
	}
	return nil
}
