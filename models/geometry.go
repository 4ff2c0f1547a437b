package models

// Point is a position in canvas coordinates.
type Point struct {
	X float64 `bson:"x" json:"x"`
	Y float64 `bson:"y" json:"y"`
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p minus q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Scale returns p multiplied by f.
func (p Point) Scale(f float64) Point {
	return Point{X: p.X * f, Y: p.Y * f}
}

// Room is one placed space on a floor. Shape is non-nil only for
// polygon-shaped rooms and is kept in the polygon's own local
// coordinate space.
type Room struct {
	ID     string  `bson:"id" json:"id"`
	Name   string  `bson:"name" json:"name"`
	X      float64 `bson:"x" json:"x"`
	Y      float64 `bson:"y" json:"y"`
	Width  float64 `bson:"width" json:"width"`
	Height float64 `bson:"height" json:"height"`
	Shape  []Point `bson:"shape,omitempty" json:"shape,omitempty"`
}

// MinRoomSize is the smallest width/height a resize may produce.
const MinRoomSize = 20

// PresetKind discriminates rectangle and polygon templates.
type PresetKind string

const (
	PresetRect PresetKind = "rect"
	PresetPoly PresetKind = "poly"
)

// Preset is an immutable room template. Never owned by a floor.
type Preset struct {
	ID     string     `bson:"id" json:"id"`
	Name   string     `bson:"name" json:"name"`
	Kind   PresetKind `bson:"kind" json:"kind"`
	Width  float64    `bson:"width,omitempty" json:"width,omitempty"`
	Height float64    `bson:"height,omitempty" json:"height,omitempty"`
	Points []Point    `bson:"points,omitempty" json:"points,omitempty"`
}

// Boundary is the drawn outline of one floor.
// Invariant: Closed implies len(Points) >= 3.
type Boundary struct {
	Points []Point `json:"points"`
	Closed bool    `json:"closed"`
}

// Clone returns a deep copy so snapshots do not alias live point slices.
func (b Boundary) Clone() Boundary {
	out := Boundary{Closed: b.Closed}
	if b.Points != nil {
		out.Points = make([]Point, len(b.Points))
		copy(out.Points, b.Points)
	}
	return out
}

// Viewport zoom limits and discrete step factor.
const (
	MinZoom      = 0.3
	MaxZoom      = 3.0
	ZoomStep     = 1.2
	DefaultZoom  = 1.0
	DefaultWidth = 60 // fallback size for presets without dimensions
)

// Viewport is transient per-session pan/zoom state. Never sent to the
// remote API; may be cached locally for UX continuity.
type Viewport struct {
	Zoom   float64 `json:"zoom"`
	Offset Point   `json:"offset"`
}
