package plansync

import (
	"context"
	"errors"
	"sync"

	"deskly/models"
	"deskly/utils"

	"go.uber.org/zap"
)

// ErrStaleLoad marks a probe whose results arrived after a newer load
// started; the caller must discard them.
var ErrStaleLoad = errors.New("load superseded by a newer one")

// Load probes floor numbers 1..ProbeMax in parallel, reconciles the
// accepted floors with the local cache, and returns the snapshot the
// session should restore. Per-floor probe failures are treated as
// "floor absent". In edit mode a cached snapshot wins over remote
// data, except that floors missing boundary data are back-filled from
// the remote load; in view mode remote data always wins.
func (s *Service) Load(ctx context.Context, locationID string, editMode bool) (*models.PlanSnapshot, error) {
	logger := utils.GetLogger()
	gen := s.generation.Add(1)

	max := s.probeMax()
	results := make([]*models.RemoteFloorResponse, max+1)

	var wg sync.WaitGroup
	for n := 1; n <= max; n++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			resp, err := s.Remote.GetFloor(ctx, locationID, n)
			if err != nil {
				// Absent floor, unreachable server, whatever: the
				// probe treats them all as "no such floor".
				logger.Debug("floor probe miss",
					zap.String("locationID", locationID),
					zap.Int("floor", n), zap.Error(err))
				return
			}
			results[n] = resp
		}(n)
	}
	wg.Wait()

	if gen != s.generation.Load() {
		return nil, ErrStaleLoad
	}

	remoteSnap := snapshotFromRemote(results)

	if editMode {
		cached, err := s.Store.Get(ctx, locationID)
		if err != nil {
			logger.Warn("failed to read cached plan, falling back to remote",
				zap.String("locationID", locationID), zap.Error(err))
		}
		if cached != nil {
			merged := mergeCacheOverRemote(*cached, remoteSnap)
			return &merged, nil
		}
	}
	return &remoteSnap, nil
}

// snapshotFromRemote converts accepted probe responses into a plan
// snapshot. A floor is accepted when it returns a non-empty polygon or
// at least one space.
func snapshotFromRemote(results []*models.RemoteFloorResponse) models.PlanSnapshot {
	snap := models.PlanSnapshot{
		Floors:          map[string][]models.Room{},
		FloorBoundaries: map[string]models.Boundary{},
		RoomSpaceTypes:  map[string]string{},
		RoomCapacities:  map[string]int{},
	}
	for n, resp := range results {
		if resp == nil {
			continue
		}
		if len(resp.Floor.Polygon) == 0 && len(resp.Spaces) == 0 {
			continue
		}
		name := FloorName(n)
		if snap.CurrentFloor == "" {
			snap.CurrentFloor = name
		}

		rooms := make([]models.Room, 0, len(resp.Spaces))
		for _, sp := range resp.Spaces {
			room := models.Room{
				ID:     "room-" + sp.ID,
				Name:   sp.SpaceType,
				X:      sp.Bounds.X,
				Y:      sp.Bounds.Y,
				Width:  sp.Bounds.Width,
				Height: sp.Bounds.Height,
			}
			if room.Name == "" {
				room.Name = sp.SpaceTypeID
			}
			rooms = append(rooms, room)
			snap.RoomSpaceTypes[room.ID] = sp.SpaceTypeID
			snap.RoomCapacities[room.ID] = sp.Capacity
		}
		snap.Floors[name] = rooms

		if len(resp.Floor.Polygon) > 0 {
			pts := make([]models.Point, len(resp.Floor.Polygon))
			copy(pts, resp.Floor.Polygon)
			snap.FloorBoundaries[name] = models.Boundary{Points: pts, Closed: true}
		}
	}
	if snap.CurrentFloor == "" {
		snap.CurrentFloor = FloorName(1)
	}
	return snap
}

// mergeCacheOverRemote applies the edit-mode merge policy: the cached
// snapshot wins wholesale, with remote boundaries back-filling floors
// the cache has no boundary points for.
func mergeCacheOverRemote(cached, remote models.PlanSnapshot) models.PlanSnapshot {
	if cached.FloorBoundaries == nil {
		cached.FloorBoundaries = map[string]models.Boundary{}
	}
	for name, b := range remote.FloorBoundaries {
		existing, ok := cached.FloorBoundaries[name]
		if !ok || len(existing.Points) == 0 {
			cached.FloorBoundaries[name] = b
		}
	}
	return cached
}
