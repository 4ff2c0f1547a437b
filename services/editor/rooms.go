package editor

import (
	"math"

	"deskly/models"
)

// hitRoom returns the topmost room of the active floor containing the
// canvas point, preferring later (higher-stacked) rooms.
func (s *Session) hitRoom(canvas models.Point) *models.Room {
	f := s.ensureFloor(s.activeFloor)
	for i := len(f.Rooms) - 1; i >= 0; i-- {
		r := &f.Rooms[i]
		if canvas.X >= r.X && canvas.X <= r.X+r.Width &&
			canvas.Y >= r.Y && canvas.Y <= r.Y+r.Height {
			return r
		}
	}
	return nil
}

// hitResizeHandle tests the fixed-size bottom-right handle of the
// selected room against a screen-space point.
func (s *Session) hitResizeHandle(screen models.Point) (string, bool) {
	if s.selectedRoomID == "" {
		return "", false
	}
	r, ok := s.findRoom(s.selectedRoomID)
	if !ok {
		return "", false
	}
	corner := ToScreen(models.Point{X: r.X + r.Width, Y: r.Y + r.Height}, s.viewport)
	if math.Abs(screen.X-corner.X) <= resizeHandleSize &&
		math.Abs(screen.Y-corner.Y) <= resizeHandleSize {
		return r.ID, true
	}
	return "", false
}

func (s *Session) findRoom(id string) (*models.Room, bool) {
	f := s.ensureFloor(s.activeFloor)
	for i := range f.Rooms {
		if f.Rooms[i].ID == id {
			return &f.Rooms[i], true
		}
	}
	return nil, false
}

// SelectRoom marks a room selected, "" clears selection.
func (s *Session) SelectRoom(id string) { s.selectedRoomID = id }

func (s *Session) moveRoomTo(id string, origin models.Point) {
	if s.mode != ModeEdit {
		return
	}
	r, ok := s.findRoom(id)
	if !ok {
		return
	}
	r.X, r.Y = origin.X, origin.Y
	s.notifyMutate()
}

// resizeRoomTo drags the bottom-right corner to the canvas point,
// clamped to the minimum room size. Aspect ratio is unconstrained.
func (s *Session) resizeRoomTo(id string, canvas models.Point) {
	if s.mode != ModeEdit {
		return
	}
	r, ok := s.findRoom(id)
	if !ok {
		return
	}
	r.Width = math.Max(models.MinRoomSize, canvas.X-r.X)
	r.Height = math.Max(models.MinRoomSize, canvas.Y-r.Y)
	s.notifyMutate()
}

// RenameRoom sets a room's display name.
func (s *Session) RenameRoom(id, name string) error {
	if s.mode != ModeEdit {
		return ErrViewMode
	}
	r, ok := s.findRoom(id)
	if !ok {
		return ErrRoomNotFound
	}
	r.Name = name
	s.notifyMutate()
	return nil
}

// DeleteRoom removes a room from the active floor, along with its
// booking metadata. Deleting the selected room clears selection.
func (s *Session) DeleteRoom(id string) error {
	if s.mode != ModeEdit {
		return ErrViewMode
	}
	f := s.ensureFloor(s.activeFloor)
	for i := range f.Rooms {
		if f.Rooms[i].ID == id {
			f.Rooms = append(f.Rooms[:i], f.Rooms[i+1:]...)
			delete(s.roomSpaceTypes, id)
			delete(s.roomCapacities, id)
			if s.selectedRoomID == id {
				s.selectedRoomID = ""
			}
			s.notifyMutate()
			return nil
		}
	}
	return ErrRoomNotFound
}
