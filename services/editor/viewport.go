package editor

import (
	"math"

	"deskly/models"
)

func clampZoom(z float64) float64 {
	return math.Min(models.MaxZoom, math.Max(models.MinZoom, z))
}

// ZoomAt applies one wheel step with vertical delta d, keeping the
// canvas point under the cursor pixel-stable. cursor is in screen
// coordinates relative to the canvas origin.
func ZoomAt(vp models.Viewport, d float64, cursor models.Point) models.Viewport {
	factor := math.Exp(-d / 1000)
	newZoom := clampZoom(vp.Zoom * factor)

	// Canvas point under the cursor before the zoom change.
	before := ToCanvas(cursor, vp)

	return models.Viewport{
		Zoom:   newZoom,
		Offset: cursor.Sub(before.Scale(newZoom)),
	}
}

// ZoomIn is the discrete zoom-in control.
func ZoomIn(vp models.Viewport) models.Viewport {
	vp.Zoom = clampZoom(vp.Zoom * models.ZoomStep)
	return vp
}

// ZoomOut is the discrete zoom-out control.
func ZoomOut(vp models.Viewport) models.Viewport {
	vp.Zoom = clampZoom(vp.Zoom / models.ZoomStep)
	return vp
}

// ResetViewport restores the default pan/zoom.
func ResetViewport() models.Viewport {
	return models.Viewport{Zoom: models.DefaultZoom}
}

// Pan translates the offset by a screen-space delta. Panning never
// touches zoom and needs no coordinate inversion.
func Pan(vp models.Viewport, delta models.Point) models.Viewport {
	vp.Offset = vp.Offset.Add(delta)
	return vp
}

// Session-level viewport controls.

// Wheel applies one zoom-to-cursor step to the session viewport.
func (s *Session) Wheel(d float64, cursor models.Point) {
	s.viewport = ZoomAt(s.viewport, d, cursor)
}

// ZoomIn applies the discrete zoom-in control.
func (s *Session) ZoomIn() { s.viewport = ZoomIn(s.viewport) }

// ZoomOut applies the discrete zoom-out control.
func (s *Session) ZoomOut() { s.viewport = ZoomOut(s.viewport) }

// ResetView restores the default viewport.
func (s *Session) ResetView() { s.viewport = ResetViewport() }
