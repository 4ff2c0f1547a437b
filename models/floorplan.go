package models

import "encoding/json"

// Floor bundles the rooms and drawn boundary of one named floor.
// Rooms and boundary live on one entity so renaming or deleting a
// floor cannot leave the two out of step.
type Floor struct {
	Rooms    []Room   `json:"rooms"`
	Boundary Boundary `json:"boundary"`
}

// PlanSnapshot is the local cache record, one per location id.
type PlanSnapshot struct {
	Floors          map[string][]Room   `json:"floors"`
	FloorBoundaries map[string]Boundary `json:"floorBoundaries"`
	RoomSpaceTypes  map[string]string   `json:"roomSpaceTypes"`
	RoomCapacities  map[string]int      `json:"roomCapacities"`
	CurrentFloor    string              `json:"currentFloor"`
	Viewport        *Viewport           `json:"viewport,omitempty"`
}

// PlanExport is the on-disk export/import file format. Boundary
// points travel as [x,y] pairs in this format, unlike the {x,y}
// objects of the remote API.
type PlanExport struct {
	Floors   map[string][]Room `json:"floors"`
	Boundary ExportBoundary    `json:"boundary"`
}

// ExportBoundary is the boundary as written to a plan file.
type ExportBoundary struct {
	Points []PointPair `json:"points"`
	Closed bool        `json:"closed"`
}

// PointPair is a point in the plan-file wire form, a two-element
// [x,y] array.
type PointPair Point

// MarshalJSON encodes the point as [x,y].
func (p PointPair) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]float64{p.X, p.Y})
}

// UnmarshalJSON decodes an [x,y] pair.
func (p *PointPair) UnmarshalJSON(data []byte) error {
	var pair [2]float64
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	p.X, p.Y = pair[0], pair[1]
	return nil
}

// ToExportBoundary converts a boundary to its plan-file form.
func ToExportBoundary(b Boundary) ExportBoundary {
	out := ExportBoundary{Closed: b.Closed, Points: make([]PointPair, len(b.Points))}
	for i, pt := range b.Points {
		out.Points[i] = PointPair(pt)
	}
	return out
}

// ToBoundary converts the plan-file form back to a live boundary.
func (e ExportBoundary) ToBoundary() Boundary {
	out := Boundary{Closed: e.Closed, Points: make([]Point, len(e.Points))}
	for i, pt := range e.Points {
		out.Points[i] = Point(pt)
	}
	return out
}

// SpaceType is one entry of the bookable-space-type catalog.
type SpaceType struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
