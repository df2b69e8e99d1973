package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/calldesk/callcenter-backend-go/internal/pkg/database"
)

type refreshTokenDoc struct {
	ID        string    `bson:"_id,omitempty"`
	UserID    string    `bson:"user_id"`
	Token     string    `bson:"token"`
	ExpiresAt int64     `bson:"expires_at"`
	Revoked   bool      `bson:"revoked"`
	CreatedAt time.Time `bson:"created_at"`
}

type RefreshTokenRepository struct {
	tokens *mongo.Collection
}

func NewRefreshTokenRepository(ctx context.Context, db *database.MongoDB) (*RefreshTokenRepository, error) {
	tokens := db.Collection("refreshTokens")

	if _, err := tokens.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "token", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "user_id", Value: 1}}},
	}); err != nil {
		return nil, fmt.Errorf("create refresh token indexes: %w", err)
	}

	return &RefreshTokenRepository{tokens: tokens}, nil
}

func (r *RefreshTokenRepository) Create(ctx context.Context, userID, token string, expiresAt int64) error {
	doc := refreshTokenDoc{
		ID:        bson.NewObjectID().Hex(),
		UserID:    userID,
		Token:     token,
		ExpiresAt: expiresAt,
		CreatedAt: time.Now(),
	}
	if _, err := r.tokens.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert refresh token: %w", err)
	}
	return nil
}

// IsRevoked reports whether the token may still be used. Tokens the store
// has never seen count as revoked.
func (r *RefreshTokenRepository) IsRevoked(ctx context.Context, token string) (string, bool, error) {
	var doc refreshTokenDoc
	err := r.tokens.FindOne(ctx, bson.M{"token": token}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return "", true, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("find refresh token: %w", err)
	}
	return doc.UserID, doc.Revoked, nil
}

func (r *RefreshTokenRepository) Revoke(ctx context.Context, token string) error {
	_, err := r.tokens.UpdateOne(ctx, bson.M{"token": token}, bson.M{"$set": bson.M{"revoked": true}})
	if err != nil {
		return fmt.Errorf("revoke refresh token: %w", err)
	}
	return nil
}
