package models

// RemoteFloorResponse is the shape returned by the booking API for one
// location/floor pair.
type RemoteFloorResponse struct {
	Floor  RemoteFloor   `json:"floor"`
	Spaces []RemoteSpace `json:"spaces"`
}

// RemoteFloor carries the stored boundary polygon.
type RemoteFloor struct {
	Polygon []Point `json:"polygon"`
}

// RemoteSpace is one bookable space as stored server-side.
type RemoteSpace struct {
	ID          string          `json:"id"`
	SpaceTypeID string          `json:"spaceTypeId"`
	Capacity    int             `json:"capacity"`
	SpaceType   string          `json:"spaceType,omitempty"`
	Floor       RemoteFloorRef  `json:"floor"`
	Bounds      RemoteSpaceRect `json:"bounds"`
}

type RemoteFloorRef struct {
	FloorNumber int `json:"floorNumber"`
}

type RemoteSpaceRect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// CreateFloorSpacesRequest is the save payload for one floor.
type CreateFloorSpacesRequest struct {
	LocationID  string       `json:"locationId"`
	FloorNumber int          `json:"floorNumber"`
	Polygon     []Point      `json:"polygon"`
	Spaces      []SpaceInput `json:"spaces"`
}

// SpaceInput is one room flattened for the create-floor-spaces call.
type SpaceInput struct {
	SpaceTypeID string  `json:"spaceTypeId"`
	Capacity    int     `json:"capacity"`
	LocationID  string  `json:"locationId"`
	FloorNumber int     `json:"floorNumber"`
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	Width       float64 `json:"width"`
	Height      float64 `json:"height"`
}
