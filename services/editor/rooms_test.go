package editor

import (
	"testing"

	"deskly/models"
)

// sessionWithRoom returns an edit session whose active floor has a
// closed boundary and one 60x40 room at (100,100).
func sessionWithRoom(t *testing.T) (*Session, string) {
	t.Helper()
	s := NewSession("loc-1", ModeEdit)
	for _, p := range []models.Point{{X: 0, Y: 0}, {X: 500, Y: 0}, {X: 500, Y: 500}, {X: 0, Y: 500}} {
		s.AppendBoundaryPoint(p)
	}
	s.CloseBoundary()

	preset := models.Preset{ID: "p1", Name: "Desk", Kind: models.PresetRect, Width: 60, Height: 40}
	if err := s.DropPreset(preset, models.Point{X: 130, Y: 120}); err != nil {
		t.Fatalf("DropPreset() error = %v", err)
	}
	id := s.SelectedRoom()
	if id == "" {
		t.Fatal("drop did not select the new room")
	}
	return s, id
}

func TestMoveRoom_FollowsPointerWithGrabOffset(t *testing.T) {
	s, id := sessionWithRoom(t)
	// Room spans (100,100)-(160,140). Grab it 10px inside its origin.
	s.PointerDown(models.Point{X: 110, Y: 112}, ButtonPrimary, false)
	if got, ok := s.Interaction().Moving(); !ok || got != id {
		t.Fatalf("expected moving %q, got %q (moving=%v)", id, got, ok)
	}

	s.PointerMove(models.Point{X: 210, Y: 162})
	if err := s.PointerUp(models.Point{X: 210, Y: 162}); err != nil {
		t.Fatalf("PointerUp() error = %v", err)
	}

	r, _ := s.findRoom(id)
	if !almostEqual(r.X, 200) || !almostEqual(r.Y, 150) {
		t.Errorf("room origin = (%v,%v), want (200,150)", r.X, r.Y)
	}
}

func TestResizeRoom_ClampsToMinimum(t *testing.T) {
	tests := []struct {
		name   string
		dragTo models.Point
		wantW  float64
		wantH  float64
	}{
		{"grow", models.Point{X: 300, Y: 260}, 200, 160},
		{"collapse past origin", models.Point{X: 10, Y: 10}, models.MinRoomSize, models.MinRoomSize},
		{"width only below min", models.Point{X: 105, Y: 220}, models.MinRoomSize, 120},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, id := sessionWithRoom(t)
			s.SelectRoom(id)
			// Handle sits at the room's bottom-right corner (160,140).
			s.PointerDown(models.Point{X: 160, Y: 140}, ButtonPrimary, false)
			if got, ok := s.Interaction().Resizing(); !ok || got != id {
				t.Fatalf("expected resizing %q, got %q (resizing=%v)", id, got, ok)
			}
			s.PointerMove(tt.dragTo)
			if err := s.PointerUp(tt.dragTo); err != nil {
				t.Fatalf("PointerUp() error = %v", err)
			}

			r, _ := s.findRoom(id)
			if !almostEqual(r.Width, tt.wantW) || !almostEqual(r.Height, tt.wantH) {
				t.Errorf("size = (%v,%v), want (%v,%v)", r.Width, r.Height, tt.wantW, tt.wantH)
			}
		})
	}
}

func TestRenameRoom(t *testing.T) {
	s, id := sessionWithRoom(t)
	if err := s.RenameRoom(id, "Quiet Room"); err != nil {
		t.Fatalf("RenameRoom() error = %v", err)
	}
	r, _ := s.findRoom(id)
	if r.Name != "Quiet Room" {
		t.Errorf("name = %q, want %q", r.Name, "Quiet Room")
	}
	if err := s.RenameRoom("missing", "x"); err != ErrRoomNotFound {
		t.Errorf("RenameRoom(missing) error = %v, want ErrRoomNotFound", err)
	}
}

func TestDeleteRoom_ClearsSelectionAndMetadata(t *testing.T) {
	s, id := sessionWithRoom(t)
	s.SetRoomSpaceType(id, "type-1")
	s.SetRoomCapacity(id, 4)

	if err := s.DeleteRoom(id); err != nil {
		t.Fatalf("DeleteRoom() error = %v", err)
	}
	if s.SelectedRoom() != "" {
		t.Error("deleting the selected room should clear selection")
	}
	if _, ok := s.RoomSpaceType(id); ok {
		t.Error("space type assignment survived room deletion")
	}
	if _, ok := s.RoomCapacity(id); ok {
		t.Error("capacity assignment survived room deletion")
	}
	if err := s.DeleteRoom(id); err != ErrRoomNotFound {
		t.Errorf("second delete error = %v, want ErrRoomNotFound", err)
	}
}

func TestRoomMutation_ViewModeIgnored(t *testing.T) {
	s, id := sessionWithRoom(t)
	s.SetMode(ModeView)

	s.PointerDown(models.Point{X: 110, Y: 112}, ButtonPrimary, false)
	if _, ok := s.Interaction().Moving(); ok {
		t.Error("view mode should not start a move")
	}
	if s.SelectedRoom() != id {
		t.Error("selection should still work in view mode")
	}
	if err := s.RenameRoom(id, "x"); err != ErrViewMode {
		t.Errorf("RenameRoom error = %v, want ErrViewMode", err)
	}
	if err := s.DeleteRoom(id); err != ErrViewMode {
		t.Errorf("DeleteRoom error = %v, want ErrViewMode", err)
	}
}
