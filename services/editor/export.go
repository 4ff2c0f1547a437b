package editor

import (
	"encoding/json"
	"fmt"

	"deskly/models"
)

// Export serializes every floor's room list plus the active floor's
// boundary in the plan file format.
func (s *Session) Export() ([]byte, error) {
	out := models.PlanExport{
		Floors:   map[string][]models.Room{},
		Boundary: models.ToExportBoundary(s.ensureFloor(s.activeFloor).Boundary),
	}
	for name, f := range s.floors {
		rooms := make([]models.Room, len(f.Rooms))
		copy(rooms, f.Rooms)
		out.Floors[name] = rooms
	}
	return json.MarshalIndent(out, "", "  ")
}

// Import replaces the in-memory floors wholesale from an exported plan
// file. Malformed input is rejected before any state is touched; the
// boundary's closed flag seeds drawing mode on the active floor.
func (s *Session) Import(data []byte) error {
	if s.mode != ModeEdit {
		return ErrViewMode
	}
	var in models.PlanExport
	if err := json.Unmarshal(data, &in); err != nil {
		return fmt.Errorf("invalid plan file: %w", err)
	}
	if in.Floors == nil {
		return fmt.Errorf("invalid plan file: missing floors")
	}
	if in.Boundary.Closed && len(in.Boundary.Points) < 3 {
		return fmt.Errorf("invalid plan file: closed boundary with %d points", len(in.Boundary.Points))
	}

	s.floors = map[string]*models.Floor{}
	for name, rooms := range in.Floors {
		f := s.ensureFloor(name)
		f.Rooms = make([]models.Room, len(rooms))
		copy(f.Rooms, rooms)
	}
	s.ensureFloor(s.activeFloor).Boundary = in.Boundary.ToBoundary()
	s.selectedRoomID = ""
	s.interaction = InteractionState{}
	s.notifyMutate()
	return nil
}
