package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/calldesk/callcenter-backend-go/internal/domain/attendance"
	"github.com/calldesk/callcenter-backend-go/internal/pkg/database"
)

type AttendanceRepository struct {
	records *mongo.Collection
}

func NewAttendanceRepository(ctx context.Context, db *database.MongoDB) (*AttendanceRepository, error) {
	records := db.Collection("attendanceRecords")

	// The unique (user_id, date) pair is what makes concurrent clock-ins for
	// the same day collapse into a single record.
	if _, err := records.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "date", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "date", Value: 1}}},
	}); err != nil {
		return nil, fmt.Errorf("create attendance indexes: %w", err)
	}

	return &AttendanceRepository{records: records}, nil
}

func (r *AttendanceRepository) Create(ctx context.Context, record attendance.Record) (attendance.Record, error) {
	record.ID = bson.NewObjectID().Hex()
	record.CreatedAt = time.Now()
	record.UpdatedAt = record.CreatedAt

	if _, err := r.records.InsertOne(ctx, record); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return attendance.Record{}, attendance.ErrAlreadyClockedIn
		}
		return attendance.Record{}, fmt.Errorf("insert attendance record: %w", err)
	}
	return record, nil
}

func (r *AttendanceRepository) GetTodayByUser(ctx context.Context, userID string, dayStart, dayEnd time.Time) (*attendance.Record, error) {
	var record attendance.Record
	err := r.records.FindOne(ctx, bson.M{
		"user_id": userID,
		"date":    bson.M{"$gte": dayStart, "$lt": dayEnd},
	}).Decode(&record)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find attendance record: %w", err)
	}
	return &record, nil
}

func (r *AttendanceRepository) SetClockOut(ctx context.Context, id string, clockOutTime time.Time, totalHours float64, location *attendance.Location) error {
	set := bson.M{
		"clock_out_time": clockOutTime,
		"total_hours":    totalHours,
		"updated_at":     time.Now(),
	}
	if location != nil {
		set["location"] = location
	}

	res, err := r.records.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("update attendance record: %w", err)
	}
	if res.MatchedCount == 0 {
		return attendance.ErrAttendanceNotFound
	}
	return nil
}

func (r *AttendanceRepository) ListByUserSince(ctx context.Context, userID string, since time.Time) ([]attendance.Record, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cursor, err := r.records.Find(ctx, bson.M{
		"user_id": userID,
		"date":    bson.M{"$gte": since},
	}, opts)
	if err != nil {
		return nil, fmt.Errorf("find attendance records: %w", err)
	}
	var results []attendance.Record
	if err := cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("decode attendance records: %w", err)
	}
	return results, nil
}

func (r *AttendanceRepository) ListByDateRange(ctx context.Context, dayStart, dayEnd time.Time) ([]attendance.Record, error) {
	cursor, err := r.records.Find(ctx, bson.M{
		"date": bson.M{"$gte": dayStart, "$lt": dayEnd},
	})
	if err != nil {
		return nil, fmt.Errorf("find attendance records: %w", err)
	}
	var results []attendance.Record
	if err := cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("decode attendance records: %w", err)
	}
	return results, nil
}
