// File: database/repository/preset/interface.go
package presetRepo

import (
	"context"

	"deskly/database"
	"deskly/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// PresetRepository stores user-created room presets. Built-in presets
// never pass through here.
type PresetRepository interface {
	Create(ctx context.Context, preset models.Preset) (string, error)
	GetAll(ctx context.Context) ([]models.Preset, error)
	DeleteByID(ctx context.Context, id string) error
}

type mongoPresetRepo struct {
	coll *mongo.Collection
}

// NewMongoPresetRepo constructs a new MongoDB PresetRepository.
func NewMongoPresetRepo() PresetRepository {
	db := database.MongoClient.Database("deskly")
	return &mongoPresetRepo{
		coll: db.Collection("presets"),
	}
}
