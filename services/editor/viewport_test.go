package editor

import (
	"math"
	"testing"

	"deskly/models"
)

func TestZoomAt_CursorPointStable(t *testing.T) {
	tests := []struct {
		name   string
		vp     models.Viewport
		delta  float64
		cursor models.Point
	}{
		{"zoom in at origin", models.Viewport{Zoom: 1}, -120, models.Point{}},
		{"zoom in off center", models.Viewport{Zoom: 1.5, Offset: models.Point{X: 40, Y: -20}}, -250, models.Point{X: 200, Y: 150}},
		{"zoom out off center", models.Viewport{Zoom: 2.2, Offset: models.Point{X: -300, Y: 75}}, 400, models.Point{X: 640, Y: 480}},
		{"clamped at max", models.Viewport{Zoom: 2.9}, -5000, models.Point{X: 100, Y: 100}},
		{"clamped at min", models.Viewport{Zoom: 0.35, Offset: models.Point{X: 10, Y: 10}}, 5000, models.Point{X: 33, Y: 77}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := ToCanvas(tt.cursor, tt.vp)
			after := ZoomAt(tt.vp, tt.delta, tt.cursor)
			screen := ToScreen(before, after)
			if math.Abs(screen.X-tt.cursor.X) > 1e-6 || math.Abs(screen.Y-tt.cursor.Y) > 1e-6 {
				t.Errorf("canvas point under cursor moved: got (%v,%v), want (%v,%v)",
					screen.X, screen.Y, tt.cursor.X, tt.cursor.Y)
			}
		})
	}
}

func TestZoomAt_Factor(t *testing.T) {
	vp := models.Viewport{Zoom: 1}
	after := ZoomAt(vp, -1000, models.Point{})
	want := math.E
	if math.Abs(after.Zoom-want) > 1e-9 {
		t.Errorf("zoom = %v, want e (%v)", after.Zoom, want)
	}
}

func TestZoom_Bounds(t *testing.T) {
	vp := models.Viewport{Zoom: 1}
	for i := 0; i < 50; i++ {
		vp = ZoomIn(vp)
		if vp.Zoom > models.MaxZoom {
			t.Fatalf("zoom %v exceeded max %v after %d steps", vp.Zoom, models.MaxZoom, i+1)
		}
	}
	if vp.Zoom != models.MaxZoom {
		t.Errorf("zoom = %v, want pinned at %v", vp.Zoom, models.MaxZoom)
	}
	for i := 0; i < 50; i++ {
		vp = ZoomOut(vp)
		if vp.Zoom < models.MinZoom {
			t.Fatalf("zoom %v fell below min %v after %d steps", vp.Zoom, models.MinZoom, i+1)
		}
	}
	if vp.Zoom != models.MinZoom {
		t.Errorf("zoom = %v, want pinned at %v", vp.Zoom, models.MinZoom)
	}
}

func TestResetViewport(t *testing.T) {
	vp := ResetViewport()
	if vp.Zoom != models.DefaultZoom || vp.Offset != (models.Point{}) {
		t.Errorf("reset = %+v, want zoom 1 offset (0,0)", vp)
	}
}

func TestSession_ViewportControls(t *testing.T) {
	s := NewSession("loc-1", ModeEdit)

	s.Wheel(-250, models.Point{X: 200, Y: 150})
	before := ToCanvas(models.Point{X: 200, Y: 150}, models.Viewport{Zoom: 1})
	screen := ToScreen(before, s.Viewport())
	if !almostEqual(screen.X, 200) || !almostEqual(screen.Y, 150) {
		t.Errorf("wheel moved the canvas point under the cursor to (%v,%v)", screen.X, screen.Y)
	}

	z := s.Viewport().Zoom
	s.ZoomIn()
	if got := s.Viewport().Zoom; !almostEqual(got, math.Min(models.MaxZoom, z*models.ZoomStep)) {
		t.Errorf("ZoomIn zoom = %v, want %v", got, z*models.ZoomStep)
	}
	s.ZoomOut()
	if got := s.Viewport().Zoom; !almostEqual(got, z) {
		t.Errorf("ZoomOut did not undo ZoomIn: zoom = %v, want %v", got, z)
	}

	s.ResetView()
	if vp := s.Viewport(); vp.Zoom != models.DefaultZoom || vp.Offset != (models.Point{}) {
		t.Errorf("ResetView viewport = %+v, want defaults", vp)
	}
}

func TestSession_PanDrag(t *testing.T) {
	s := NewSession("loc-1", ModeEdit)

	s.PointerDown(models.Point{X: 100, Y: 100}, ButtonSecondary, false)
	if !s.Interaction().Panning() {
		t.Fatal("secondary button should start a pan")
	}
	s.PointerMove(models.Point{X: 130, Y: 90})
	s.PointerMove(models.Point{X: 150, Y: 120})
	if err := s.PointerUp(models.Point{X: 150, Y: 120}); err != nil {
		t.Fatalf("PointerUp() error = %v", err)
	}

	got := s.Viewport().Offset
	if !almostEqual(got.X, 50) || !almostEqual(got.Y, 20) {
		t.Errorf("offset = (%v,%v), want (50,20)", got.X, got.Y)
	}
	if s.Viewport().Zoom != 1 {
		t.Errorf("pan changed zoom to %v", s.Viewport().Zoom)
	}
	if !s.Interaction().Idle() {
		t.Error("interaction should be idle after pointer up")
	}
}

func TestSession_ShiftPrimaryPans(t *testing.T) {
	s := NewSession("loc-1", ModeEdit)
	s.PointerDown(models.Point{X: 5, Y: 5}, ButtonPrimary, true)
	if !s.Interaction().Panning() {
		t.Fatal("shift+primary should start a pan")
	}
	// No boundary point may be captured by a pan press.
	if n := len(s.Boundary().Points); n != 0 {
		t.Errorf("pan press appended %d boundary points", n)
	}
}
