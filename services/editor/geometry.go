package editor

import (
	"deskly/models"

	"github.com/google/uuid"
)

// NewRoomID mints an opaque room id.
func NewRoomID() string {
	return "room-" + uuid.New().String()
}

// boundingBox returns the size of a point set's bounding box. ok is
// false for an empty set.
func boundingBox(pts []models.Point) (w, h float64, ok bool) {
	if len(pts) == 0 {
		return 0, 0, false
	}
	min := pts[0]
	max := pts[0]
	for _, p := range pts[1:] {
		if p.X < min.X {
			min.X = p.X
		}
		if p.Y < min.Y {
			min.Y = p.Y
		}
		if p.X > max.X {
			max.X = p.X
		}
		if p.Y > max.Y {
			max.Y = p.Y
		}
	}
	return max.X - min.X, max.Y - min.Y, true
}
