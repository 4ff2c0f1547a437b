package plansync

import (
	"context"
	"fmt"
	"sort"

	"deskly/models"
	"deskly/utils"

	"go.uber.org/zap"
)

// Save submits every floor that holds at least one room to the remote
// API, strictly one floor at a time. A floor with rooms but no closed
// boundary polygon is a hard error, and any per-floor failure stops
// the remaining floors from being submitted.
func (s *Service) Save(ctx context.Context, locationID string, snap models.PlanSnapshot) error {
	logger := utils.GetLogger()

	spaceTypes, err := s.Remote.GetSpaceTypes(ctx, locationID)
	if err != nil {
		return fmt.Errorf("failed to load space types: %w", err)
	}
	defaultSpaceType := ""
	if len(spaceTypes) > 0 {
		defaultSpaceType = spaceTypes[0].ID
	}

	// Deterministic floor order, lowest floor number first.
	names := make([]string, 0, len(snap.Floors))
	for name, rooms := range snap.Floors {
		if len(rooms) == 0 {
			continue
		}
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		return FloorNumberFromName(names[i]) < FloorNumberFromName(names[j])
	})

	for _, name := range names {
		boundary := snap.FloorBoundaries[name]
		if !boundary.Closed || len(boundary.Points) == 0 {
			return fmt.Errorf("floor %q has rooms but no closed boundary; draw and close its outline before saving", name)
		}

		floorNumber := FloorNumberFromName(name)
		req := models.CreateFloorSpacesRequest{
			LocationID:  locationID,
			FloorNumber: floorNumber,
			Polygon:     boundary.Points,
		}
		for _, room := range snap.Floors[name] {
			spaceTypeID, ok := snap.RoomSpaceTypes[room.ID]
			if !ok {
				spaceTypeID = defaultSpaceType
			}
			capacity, ok := snap.RoomCapacities[room.ID]
			if !ok {
				capacity = 1
			}
			req.Spaces = append(req.Spaces, models.SpaceInput{
				SpaceTypeID: spaceTypeID,
				Capacity:    capacity,
				LocationID:  locationID,
				FloorNumber: floorNumber,
				X:           room.X,
				Y:           room.Y,
				Width:       room.Width,
				Height:      room.Height,
			})
		}

		if err := s.Remote.CreateFloorSpaces(ctx, req); err != nil {
			return fmt.Errorf("failed to save floor %q: %w", name, err)
		}
		logger.Info("saved floor",
			zap.String("locationID", locationID),
			zap.String("floor", name),
			zap.Int("spaces", len(req.Spaces)))
	}
	return nil
}
