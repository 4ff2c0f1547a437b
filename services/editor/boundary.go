package editor

import "deskly/models"

// The boundary machine is Drawing -> Closed -> Drawing (reset), kept
// per floor on the Floor entity so switching floors restores the
// correct outline.

// BoundaryClosed reports whether the active floor's boundary is closed.
func (s *Session) BoundaryClosed() bool {
	return s.ensureFloor(s.activeFloor).Boundary.Closed
}

// Boundary returns a copy of the active floor's boundary.
func (s *Session) Boundary() models.Boundary {
	return s.ensureFloor(s.activeFloor).Boundary.Clone()
}

// AppendBoundaryPoint adds one point to the active boundary. Ignored
// in view mode, once closed, or while a preset drag is in flight.
func (s *Session) AppendBoundaryPoint(canvas models.Point) {
	if s.mode != ModeEdit {
		return
	}
	if _, _, dragging := s.interaction.DraggingPreset(); dragging {
		return
	}
	f := s.ensureFloor(s.activeFloor)
	if f.Boundary.Closed {
		return
	}
	f.Boundary.Points = append(f.Boundary.Points, canvas)
	s.notifyMutate()
}

// CloseBoundary transitions Drawing -> Closed, gated on at least three
// points. Fewer points leaves the state unchanged, no error.
func (s *Session) CloseBoundary() {
	if s.mode != ModeEdit {
		return
	}
	f := s.ensureFloor(s.activeFloor)
	if f.Boundary.Closed || len(f.Boundary.Points) < 3 {
		return
	}
	f.Boundary.Closed = true
	// Snapshot the point list so later edits cannot alias it.
	f.Boundary = f.Boundary.Clone()
	s.notifyMutate()
}

// ResetBoundary clears the active boundary and returns to Drawing.
func (s *Session) ResetBoundary() {
	if s.mode != ModeEdit {
		return
	}
	f := s.ensureFloor(s.activeFloor)
	f.Boundary = models.Boundary{}
	s.notifyMutate()
}
