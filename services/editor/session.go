package editor

import (
	"errors"
	"fmt"

	"deskly/models"
	"deskly/utils"

	"go.uber.org/zap"
)

// Mode controls whether a session permits mutation.
type Mode string

const (
	ModeEdit Mode = "edit"
	ModeView Mode = "view"
)

var (
	ErrViewMode     = errors.New("editor is in view mode")
	ErrBoundaryOpen = errors.New("floor boundary is not closed")
	ErrRoomNotFound = errors.New("room not found")
)

// Session is the full state of one floor-plan editing session. It is
// created by the host on editor mount and torn down on unmount; there
// is no process-wide editor state. All mutations run on the caller's
// event goroutine, so the session is not safe for concurrent use.
type Session struct {
	LocationID string

	mode        Mode
	floors      map[string]*models.Floor
	activeFloor string
	viewport    models.Viewport

	interaction    InteractionState
	selectedRoomID string

	// Per-room booking metadata, keyed by room id.
	roomSpaceTypes map[string]string
	roomCapacities map[string]int

	// onMutate fires after every floor/boundary/assignment mutation in
	// edit mode; the persistence layer hooks its debounce timer here.
	onMutate func()

	logger *zap.Logger
}

// NewSession constructs an empty session for one location.
func NewSession(locationID string, mode Mode) *Session {
	return &Session{
		LocationID:     locationID,
		mode:           mode,
		floors:         map[string]*models.Floor{},
		activeFloor:    "Floor 1",
		viewport:       models.Viewport{Zoom: models.DefaultZoom},
		interaction:    InteractionState{},
		roomSpaceTypes: map[string]string{},
		roomCapacities: map[string]int{},
		logger:         utils.GetLogger(),
	}
}

// OnMutate registers the mutation callback. A nil fn clears it.
func (s *Session) OnMutate(fn func()) { s.onMutate = fn }

func (s *Session) notifyMutate() {
	if s.mode == ModeEdit && s.onMutate != nil {
		s.onMutate()
	}
}

// Mode reports whether the session is editable.
func (s *Session) Mode() Mode { return s.mode }

// SetMode switches between edit and view mode.
func (s *Session) SetMode(m Mode) { s.mode = m }

// ActiveFloor returns the name of the floor being edited.
func (s *Session) ActiveFloor() string { return s.activeFloor }

// SwitchFloor changes the active floor, creating it if unseen. The
// floor's stored boundary comes back with it, so drawing state is
// restored per floor.
func (s *Session) SwitchFloor(name string) {
	s.activeFloor = name
	s.ensureFloor(name)
	s.selectedRoomID = ""
	s.interaction = InteractionState{}
}

func (s *Session) ensureFloor(name string) *models.Floor {
	f, ok := s.floors[name]
	if !ok {
		f = &models.Floor{}
		s.floors[name] = f
	}
	return f
}

// Floor returns the named floor, or nil if it does not exist.
func (s *Session) Floor(name string) *models.Floor { return s.floors[name] }

// FloorNames returns the names of all floors, unordered.
func (s *Session) FloorNames() []string {
	names := make([]string, 0, len(s.floors))
	for name := range s.floors {
		names = append(names, name)
	}
	return names
}

// RenameFloor moves rooms and boundary under the new name in one step.
func (s *Session) RenameFloor(from, to string) error {
	if s.mode != ModeEdit {
		return ErrViewMode
	}
	f, ok := s.floors[from]
	if !ok {
		return fmt.Errorf("floor %q does not exist", from)
	}
	if _, exists := s.floors[to]; exists {
		return fmt.Errorf("floor %q already exists", to)
	}
	delete(s.floors, from)
	s.floors[to] = f
	if s.activeFloor == from {
		s.activeFloor = to
	}
	s.notifyMutate()
	return nil
}

// DeleteFloor removes a floor and its rooms' booking metadata.
func (s *Session) DeleteFloor(name string) error {
	if s.mode != ModeEdit {
		return ErrViewMode
	}
	f, ok := s.floors[name]
	if !ok {
		return fmt.Errorf("floor %q does not exist", name)
	}
	for _, r := range f.Rooms {
		delete(s.roomSpaceTypes, r.ID)
		delete(s.roomCapacities, r.ID)
	}
	delete(s.floors, name)
	if s.activeFloor == name {
		s.activeFloor = "Floor 1"
	}
	s.notifyMutate()
	return nil
}

// SetRoomSpaceType assigns a space type to a room.
func (s *Session) SetRoomSpaceType(roomID, spaceTypeID string) {
	s.roomSpaceTypes[roomID] = spaceTypeID
	s.notifyMutate()
}

// SetRoomCapacity assigns a bookable capacity to a room.
func (s *Session) SetRoomCapacity(roomID string, capacity int) {
	s.roomCapacities[roomID] = capacity
	s.notifyMutate()
}

// RoomSpaceType reports the assigned space type, if any.
func (s *Session) RoomSpaceType(roomID string) (string, bool) {
	id, ok := s.roomSpaceTypes[roomID]
	return id, ok
}

// RoomCapacity reports the assigned capacity, if any.
func (s *Session) RoomCapacity(roomID string) (int, bool) {
	c, ok := s.roomCapacities[roomID]
	return c, ok
}

// Viewport returns the current pan/zoom state.
func (s *Session) Viewport() models.Viewport { return s.viewport }

// SetViewport replaces the pan/zoom state (used when restoring a
// cached snapshot).
func (s *Session) SetViewport(vp models.Viewport) { s.viewport = vp }

// SelectedRoom returns the id of the selected room, "" when none.
func (s *Session) SelectedRoom() string { return s.selectedRoomID }

// Snapshot captures the session state as a cache record.
func (s *Session) Snapshot() models.PlanSnapshot {
	snap := models.PlanSnapshot{
		Floors:          map[string][]models.Room{},
		FloorBoundaries: map[string]models.Boundary{},
		RoomSpaceTypes:  map[string]string{},
		RoomCapacities:  map[string]int{},
		CurrentFloor:    s.activeFloor,
	}
	for name, f := range s.floors {
		rooms := make([]models.Room, len(f.Rooms))
		copy(rooms, f.Rooms)
		snap.Floors[name] = rooms
		snap.FloorBoundaries[name] = f.Boundary.Clone()
	}
	for k, v := range s.roomSpaceTypes {
		snap.RoomSpaceTypes[k] = v
	}
	for k, v := range s.roomCapacities {
		snap.RoomCapacities[k] = v
	}
	vp := s.viewport
	snap.Viewport = &vp
	return snap
}

// Restore replaces the session state from a cache record.
func (s *Session) Restore(snap models.PlanSnapshot) {
	s.floors = map[string]*models.Floor{}
	for name, rooms := range snap.Floors {
		f := s.ensureFloor(name)
		f.Rooms = make([]models.Room, len(rooms))
		copy(f.Rooms, rooms)
	}
	for name, b := range snap.FloorBoundaries {
		s.ensureFloor(name).Boundary = b.Clone()
	}
	s.roomSpaceTypes = map[string]string{}
	for k, v := range snap.RoomSpaceTypes {
		s.roomSpaceTypes[k] = v
	}
	s.roomCapacities = map[string]int{}
	for k, v := range snap.RoomCapacities {
		s.roomCapacities[k] = v
	}
	if snap.CurrentFloor != "" {
		s.activeFloor = snap.CurrentFloor
	}
	if snap.Viewport != nil {
		s.viewport = *snap.Viewport
	}
	s.selectedRoomID = ""
	s.interaction = InteractionState{}
}
