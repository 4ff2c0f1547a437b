package editor

import (
	"sort"
	"testing"

	"deskly/models"
)

func TestRenameFloor_MovesRoomsAndBoundaryTogether(t *testing.T) {
	s, id := sessionWithRoom(t)
	s.SetRoomSpaceType(id, "st-desk")

	if err := s.RenameFloor("Floor 1", "Ground"); err != nil {
		t.Fatalf("RenameFloor() error = %v", err)
	}
	if s.Floor("Floor 1") != nil {
		t.Error("old floor name still resolves")
	}
	f := s.Floor("Ground")
	if f == nil {
		t.Fatal("renamed floor does not resolve")
	}
	if len(f.Rooms) != 1 || f.Rooms[0].ID != id {
		t.Errorf("rooms did not follow the rename: %+v", f.Rooms)
	}
	if !f.Boundary.Closed || len(f.Boundary.Points) != 4 {
		t.Errorf("boundary did not follow the rename: %+v", f.Boundary)
	}
	if s.ActiveFloor() != "Ground" {
		t.Errorf("active floor = %q, want Ground", s.ActiveFloor())
	}
}

func TestRenameFloor_Errors(t *testing.T) {
	s, _ := sessionWithRoom(t)
	s.SwitchFloor("Floor 2")
	s.SwitchFloor("Floor 1")

	if err := s.RenameFloor("Floor 7", "Attic"); err == nil {
		t.Error("renaming a missing floor should fail")
	}
	if err := s.RenameFloor("Floor 1", "Floor 2"); err == nil {
		t.Error("renaming onto an existing floor should fail")
	}
	if f := s.Floor("Floor 1"); f == nil || len(f.Rooms) != 1 {
		t.Error("failed rename must leave the floor untouched")
	}

	s.SetMode(ModeView)
	if err := s.RenameFloor("Floor 1", "Ground"); err != ErrViewMode {
		t.Errorf("RenameFloor() in view mode error = %v, want ErrViewMode", err)
	}
}

func TestDeleteFloor_PurgesRoomMetadata(t *testing.T) {
	s, id := sessionWithRoom(t)
	s.SetRoomSpaceType(id, "st-desk")
	s.SetRoomCapacity(id, 4)
	s.SwitchFloor("Floor 2")
	s.SwitchFloor("Floor 1")

	if err := s.DeleteFloor("Floor 1"); err != nil {
		t.Fatalf("DeleteFloor() error = %v", err)
	}
	if s.Floor("Floor 1") != nil {
		t.Error("deleted floor still resolves")
	}
	if _, ok := s.RoomSpaceType(id); ok {
		t.Error("space type assignment survived floor deletion")
	}
	if _, ok := s.RoomCapacity(id); ok {
		t.Error("capacity assignment survived floor deletion")
	}
	if s.ActiveFloor() != "Floor 1" {
		t.Errorf("active floor = %q, want fallback Floor 1", s.ActiveFloor())
	}

	if err := s.DeleteFloor("Floor 7"); err == nil {
		t.Error("deleting a missing floor should fail")
	}
	s.SetMode(ModeView)
	if err := s.DeleteFloor("Floor 2"); err != ErrViewMode {
		t.Errorf("DeleteFloor() in view mode error = %v, want ErrViewMode", err)
	}
}

func TestFloorNames_ListsEveryFloor(t *testing.T) {
	s := NewSession("loc-1", ModeEdit)
	s.SwitchFloor("Floor 2")
	s.SwitchFloor("Basement")

	names := s.FloorNames()
	sort.Strings(names)
	want := []string{"Basement", "Floor 1", "Floor 2"}
	if len(names) != len(want) {
		t.Fatalf("FloorNames() = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("FloorNames() = %v, want %v", names, want)
		}
	}
}

func TestSetViewport_RoundTrips(t *testing.T) {
	s := NewSession("loc-1", ModeEdit)
	vp := models.Viewport{Zoom: 1.8, Offset: models.Point{X: -40, Y: 25}}
	s.SetViewport(vp)
	if got := s.Viewport(); got != vp {
		t.Errorf("Viewport() = %+v, want %+v", got, vp)
	}
}
