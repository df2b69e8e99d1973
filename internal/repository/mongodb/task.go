package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/calldesk/callcenter-backend-go/internal/domain/task"
	"github.com/calldesk/callcenter-backend-go/internal/pkg/database"
)

type TaskRepository struct {
	tasks *mongo.Collection
}

func NewTaskRepository(ctx context.Context, db *database.MongoDB) (*TaskRepository, error) {
	tasks := db.Collection("tasks")

	if _, err := tasks.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "assigned_to", Value: 1}, {Key: "created_at", Value: -1}}},
	}); err != nil {
		return nil, fmt.Errorf("create task indexes: %w", err)
	}

	return &TaskRepository{tasks: tasks}, nil
}

func (r *TaskRepository) Create(ctx context.Context, t task.Task) (task.Task, error) {
	t.ID = bson.NewObjectID().Hex()
	t.CreatedAt = time.Now()
	t.UpdatedAt = t.CreatedAt

	if _, err := r.tasks.InsertOne(ctx, t); err != nil {
		return task.Task{}, fmt.Errorf("insert task: %w", err)
	}
	return t, nil
}

func (r *TaskRepository) GetByID(ctx context.Context, id string) (*task.Task, error) {
	var t task.Task
	err := r.tasks.FindOne(ctx, bson.M{"_id": id}).Decode(&t)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find task: %w", err)
	}
	return &t, nil
}

func (r *TaskRepository) ListAll(ctx context.Context) ([]task.Task, error) {
	return r.list(ctx, bson.M{})
}

func (r *TaskRepository) ListByAssignee(ctx context.Context, userID string) ([]task.Task, error) {
	// Array-membership equality: matches documents whose assigned_to array
	// contains userID.
	return r.list(ctx, bson.M{"assigned_to": userID})
}

func (r *TaskRepository) list(ctx context.Context, filter bson.M) ([]task.Task, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.tasks.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find tasks: %w", err)
	}
	var results []task.Task
	if err := cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("decode tasks: %w", err)
	}
	return results, nil
}

func (r *TaskRepository) Update(ctx context.Context, id string, fields task.UpdateFields) error {
	set := bson.M{"updated_at": time.Now()}
	if fields.Title != nil {
		set["title"] = *fields.Title
	}
	if fields.Description != nil {
		set["description"] = *fields.Description
	}
	if fields.Priority != nil {
		set["priority"] = *fields.Priority
	}
	if fields.StoryPoints != nil {
		set["story_points"] = *fields.StoryPoints
	}
	if fields.AssignedTo != nil {
		set["assigned_to"] = *fields.AssignedTo
	}
	if fields.CustomerName != nil {
		set["customer_name"] = *fields.CustomerName
	}
	if fields.CustomerMobile != nil {
		set["customer_mobile"] = *fields.CustomerMobile
	}
	if fields.WebLink != nil {
		set["web_link"] = *fields.WebLink
	}
	if fields.GmbLink != nil {
		set["gmb_link"] = *fields.GmbLink
	}
	if fields.Address != nil {
		set["address"] = *fields.Address
	}
	if fields.ProjectTypes != nil {
		set["project_types"] = *fields.ProjectTypes
	}
	if fields.CallStatus != nil {
		set["call_status"] = *fields.CallStatus
	}
	if fields.ReportRequested != nil {
		set["report_requested"] = *fields.ReportRequested
	}
	if fields.Status != nil {
		set["status"] = *fields.Status
	}

	res, err := r.tasks.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("update task: %w", err)
	}
	if res.MatchedCount == 0 {
		return task.ErrTaskNotFound
	}
	return nil
}

func (r *TaskRepository) SetStatus(ctx context.Context, id string, status task.Lane) error {
	res, err := r.tasks.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{
		"status":     status,
		"updated_at": time.Now(),
	}})
	if err != nil {
		return fmt.Errorf("update task status: %w", err)
	}
	if res.MatchedCount == 0 {
		return task.ErrTaskNotFound
	}
	return nil
}

func (r *TaskRepository) Delete(ctx context.Context, id string) error {
	res, err := r.tasks.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	if res.DeletedCount == 0 {
		return task.ErrTaskNotFound
	}
	return nil
}

func (r *TaskRepository) AppendComment(ctx context.Context, id string, comment task.Comment) error {
	// $push keeps the append atomic so concurrent commenters never clobber
	// each other's entries.
	res, err := r.tasks.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$push": bson.M{"comments": comment},
		"$set":  bson.M{"updated_at": time.Now()},
	})
	if err != nil {
		return fmt.Errorf("append task comment: %w", err)
	}
	if res.MatchedCount == 0 {
		return task.ErrTaskNotFound
	}
	return nil
}
