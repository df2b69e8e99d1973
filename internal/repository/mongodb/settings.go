package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/calldesk/callcenter-backend-go/internal/domain/settings"
	"github.com/calldesk/callcenter-backend-go/internal/pkg/database"
)

// projectTypesDocID is the fixed id of the single shared settings document.
const projectTypesDocID = "projectTypes"

type SettingsRepository struct {
	settings *mongo.Collection
}

func NewSettingsRepository(db *database.MongoDB) *SettingsRepository {
	return &SettingsRepository{settings: db.Collection("settings")}
}

func (r *SettingsRepository) GetProjectTypes(ctx context.Context) (*settings.ProjectTypes, error) {
	var pt settings.ProjectTypes
	err := r.settings.FindOne(ctx, bson.M{"_id": projectTypesDocID}).Decode(&pt)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find project types: %w", err)
	}
	return &pt, nil
}

func (r *SettingsRepository) SetProjectTypes(ctx context.Context, pt settings.ProjectTypes) error {
	_, err := r.settings.UpdateOne(ctx,
		bson.M{"_id": projectTypesDocID},
		bson.M{"$set": bson.M{
			"types":      pt.Types,
			"updated_by": pt.UpdatedBy,
			"updated_at": pt.UpdatedAt,
		}},
		options.UpdateOne().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("upsert project types: %w", err)
	}
	return nil
}
