package editor

import (
	"fmt"

	"deskly/models"

	"go.uber.org/zap"
)

// BuiltinPresets are the rectangle templates every session starts with.
// User-created presets from the catalog are appended after these.
func BuiltinPresets() []models.Preset {
	return []models.Preset{
		{ID: "preset-desk", Name: "Desk", Kind: models.PresetRect, Width: 60, Height: 40},
		{ID: "preset-meeting", Name: "Meeting Room", Kind: models.PresetRect, Width: 160, Height: 120},
		{ID: "preset-phone", Name: "Phone Booth", Kind: models.PresetRect, Width: 40, Height: 40},
	}
}

// StartPresetDrag begins carrying a preset under the cursor.
func (s *Session) StartPresetDrag(p models.Preset, screen models.Point) {
	if s.mode != ModeEdit {
		return
	}
	s.interaction = InteractionState{kind: ikDraggingPreset, preset: p, ghost: screen}
}

// DropPreset instantiates a room from a preset at the release point.
// The active floor's boundary must be closed first; an open boundary
// aborts without creating anything.
func (s *Session) DropPreset(p models.Preset, screen models.Point) error {
	if s.mode != ModeEdit {
		return ErrViewMode
	}
	f := s.ensureFloor(s.activeFloor)
	if !f.Boundary.Closed || len(f.Boundary.Points) < 3 {
		s.logger.Warn("preset drop rejected",
			zap.String("preset", p.Name), zap.String("floor", s.activeFloor))
		return fmt.Errorf("cannot place %q on floor %q: %w", p.Name, s.activeFloor, ErrBoundaryOpen)
	}

	drop := ToCanvas(screen, s.viewport)
	room := models.Room{
		ID:   NewRoomID(),
		Name: p.Name,
	}

	switch p.Kind {
	case models.PresetPoly:
		// Center the polygon's bounding box at the drop point; the
		// shape stays in the preset's local coordinate space.
		w, h, ok := boundingBox(p.Points)
		if !ok {
			return fmt.Errorf("preset %q has no polygon points", p.Name)
		}
		room.Width, room.Height = w, h
		room.X = drop.X - w/2
		room.Y = drop.Y - h/2
		room.Shape = make([]models.Point, len(p.Points))
		copy(room.Shape, p.Points)
	default:
		w, h := p.Width, p.Height
		if w == 0 {
			w = models.DefaultWidth
		}
		if h == 0 {
			h = models.DefaultWidth
		}
		room.Width, room.Height = w, h
		room.X = drop.X - w/2
		room.Y = drop.Y - h/2
	}

	f.Rooms = append(f.Rooms, room)
	s.selectedRoomID = room.ID
	s.notifyMutate()
	return nil
}
