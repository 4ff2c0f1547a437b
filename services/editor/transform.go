package editor

import "deskly/models"

// ToCanvas maps a screen-space point to canvas coordinates under the
// given viewport. Every handler that needs canvas coordinates from a
// pointer event must go through this inversion; computing it inline
// elsewhere is a correctness bug.
func ToCanvas(screen models.Point, vp models.Viewport) models.Point {
	return models.Point{
		X: (screen.X - vp.Offset.X) / vp.Zoom,
		Y: (screen.Y - vp.Offset.Y) / vp.Zoom,
	}
}

// ToScreen is the forward mapping, used for hit testing and tests.
func ToScreen(canvas models.Point, vp models.Viewport) models.Point {
	return models.Point{
		X: canvas.X*vp.Zoom + vp.Offset.X,
		Y: canvas.Y*vp.Zoom + vp.Offset.Y,
	}
}
