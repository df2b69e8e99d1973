package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/calldesk/callcenter-backend-go/internal/domain/user"
	"github.com/calldesk/callcenter-backend-go/internal/pkg/database"
)

type UserRepository struct {
	users *mongo.Collection
}

func NewUserRepository(ctx context.Context, db *database.MongoDB) (*UserRepository, error) {
	users := db.Collection("users")

	if _, err := users.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}); err != nil {
		return nil, fmt.Errorf("create users indexes: %w", err)
	}

	return &UserRepository{users: users}, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	var u user.User
	err := r.users.FindOne(ctx, bson.M{"email": email}).Decode(&u)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return &u, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*user.User, error) {
	var u user.User
	err := r.users.FindOne(ctx, bson.M{"_id": id}).Decode(&u)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find user by id: %w", err)
	}
	return &u, nil
}

func (r *UserRepository) GetByIDs(ctx context.Context, ids []string) ([]user.User, error) {
	if len(ids) == 0 {
		return []user.User{}, nil
	}
	cursor, err := r.users.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("find users by ids: %w", err)
	}
	var results []user.User
	if err := cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}
	return results, nil
}

func (r *UserRepository) Create(ctx context.Context, newUser user.User) (user.User, error) {
	newUser.ID = bson.NewObjectID().Hex()
	newUser.CreatedAt = time.Now()
	newUser.UpdatedAt = newUser.CreatedAt

	if _, err := r.users.InsertOne(ctx, newUser); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return user.User{}, user.ErrUserEmailExists
		}
		return user.User{}, fmt.Errorf("insert user: %w", err)
	}
	return newUser, nil
}

func (r *UserRepository) List(ctx context.Context) ([]user.User, error) {
	opts := options.Find().SetSort(bson.D{{Key: "display_name", Value: 1}})
	cursor, err := r.users.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find users: %w", err)
	}
	var results []user.User
	if err := cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}
	return results, nil
}
