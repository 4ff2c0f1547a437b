package editor

import "deskly/models"

// PointerButton identifies which pointer button fired an event.
type PointerButton int

const (
	ButtonPrimary PointerButton = iota
	ButtonSecondary
)

// interactionKind tags the InteractionState union.
type interactionKind int

const (
	ikIdle interactionKind = iota
	ikPanning
	ikMoving
	ikResizing
	ikDraggingPreset
)

// InteractionState is the tagged union of every pointer-driven mode
// the editor can be in. Exactly the fields of the active kind are
// meaningful; the zero value is Idle.
type InteractionState struct {
	kind interactionKind

	// Panning: last pointer position in screen space.
	lastPointer models.Point

	// Moving: the grabbed room and the grab offset from its origin,
	// in canvas space. Resizing reuses roomID.
	roomID     string
	moveOffset models.Point

	// DraggingPreset: the template being carried and the ghost's
	// current screen position.
	preset models.Preset
	ghost  models.Point
}

// Idle reports whether no pointer interaction is in progress.
func (st InteractionState) Idle() bool { return st.kind == ikIdle }

// Panning reports whether a pan drag is active.
func (st InteractionState) Panning() bool { return st.kind == ikPanning }

// Moving returns the id of the room being moved, if any.
func (st InteractionState) Moving() (string, bool) {
	return st.roomID, st.kind == ikMoving
}

// Resizing returns the id of the room being resized, if any.
func (st InteractionState) Resizing() (string, bool) {
	return st.roomID, st.kind == ikResizing
}

// DraggingPreset returns the carried preset and ghost position, if a
// preset drag is active.
func (st InteractionState) DraggingPreset() (models.Preset, models.Point, bool) {
	return st.preset, st.ghost, st.kind == ikDraggingPreset
}

// Interaction exposes the current interaction state (read-only copy).
func (s *Session) Interaction() InteractionState { return s.interaction }

// resizeHandleSize is the screen-space hit box of the bottom-right
// resize handle, in pixels.
const resizeHandleSize = 10

// PointerDown dispatches a button press. shift marks the pan modifier.
func (s *Session) PointerDown(screen models.Point, button PointerButton, shift bool) {
	if button == ButtonSecondary || (button == ButtonPrimary && shift) {
		s.interaction = InteractionState{kind: ikPanning, lastPointer: screen}
		return
	}
	if button != ButtonPrimary {
		return
	}

	canvas := ToCanvas(screen, s.viewport)

	if s.mode == ModeEdit {
		if id, ok := s.hitResizeHandle(screen); ok {
			s.selectedRoomID = id
			s.interaction = InteractionState{kind: ikResizing, roomID: id}
			return
		}
	}

	if room := s.hitRoom(canvas); room != nil {
		s.selectedRoomID = room.ID
		if s.mode == ModeEdit {
			s.interaction = InteractionState{
				kind:       ikMoving,
				roomID:     room.ID,
				moveOffset: canvas.Sub(models.Point{X: room.X, Y: room.Y}),
			}
		}
		return
	}

	s.selectedRoomID = ""
	s.AppendBoundaryPoint(canvas)
}

// PointerMove dispatches pointer motion according to the active state.
func (s *Session) PointerMove(screen models.Point) {
	switch s.interaction.kind {
	case ikPanning:
		delta := screen.Sub(s.interaction.lastPointer)
		s.viewport = Pan(s.viewport, delta)
		s.interaction.lastPointer = screen
	case ikMoving:
		canvas := ToCanvas(screen, s.viewport)
		s.moveRoomTo(s.interaction.roomID, canvas.Sub(s.interaction.moveOffset))
	case ikResizing:
		canvas := ToCanvas(screen, s.viewport)
		s.resizeRoomTo(s.interaction.roomID, canvas)
	case ikDraggingPreset:
		s.interaction.ghost = screen
	}
}

// PointerUp ends the active interaction. A preset drag resolves into a
// drop attempt at the release position.
func (s *Session) PointerUp(screen models.Point) error {
	st := s.interaction
	s.interaction = InteractionState{}
	if st.kind == ikDraggingPreset {
		return s.DropPreset(st.preset, screen)
	}
	return nil
}

// DoubleClick closes the active floor's boundary when possible.
func (s *Session) DoubleClick() {
	s.CloseBoundary()
}
