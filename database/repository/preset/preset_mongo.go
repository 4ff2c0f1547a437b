package presetRepo

import (
	"context"
	"errors"
	"fmt"

	"deskly/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// Create inserts a new user preset and returns its ID.
func (r *mongoPresetRepo) Create(ctx context.Context, preset models.Preset) (string, error) {
	if preset.ID == "" {
		preset.ID = "preset-" + uuid.New().String()
	}
	switch preset.Kind {
	case models.PresetRect:
		if preset.Width <= 0 || preset.Height <= 0 {
			return "", fmt.Errorf("rect preset %q needs a positive width and height", preset.Name)
		}
	case models.PresetPoly:
		if len(preset.Points) < 3 {
			return "", fmt.Errorf("poly preset %q needs at least 3 points", preset.Name)
		}
	default:
		return "", fmt.Errorf("unknown preset kind %q", preset.Kind)
	}

	if _, err := r.coll.InsertOne(ctx, preset); err != nil {
		return "", err
	}
	return preset.ID, nil
}

// GetAll returns every stored user preset.
func (r *mongoPresetRepo) GetAll(ctx context.Context) ([]models.Preset, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var presets []models.Preset
	if err := cursor.All(ctx, &presets); err != nil {
		return nil, err
	}
	return presets, nil
}

// DeleteByID removes a user preset by ID.
func (r *mongoPresetRepo) DeleteByID(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return errors.New("preset not found")
	}
	return nil
}
