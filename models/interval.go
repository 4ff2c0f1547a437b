package models

// SlotStatus is the normalized availability state of a reported window.
// Remote responses carry either status=="available" or available==true;
// both are folded into this enum at the API boundary.
type SlotStatus string

const (
	SlotAvailable   SlotStatus = "available"
	SlotUnavailable SlotStatus = "unavailable"
)

// TimeIntervalItem is one coarse availability window as reported by the
// booking API. Start/End are ISO-8601 UTC instants, by convention
// without a zone suffix. Offset is a signed HH:MM displacement.
type TimeIntervalItem struct {
	Start              string     `json:"start"`
	End                string     `json:"end"`
	Offset             string     `json:"offset,omitempty"`
	Status             SlotStatus `json:"status"`
	AvailableDurations []string   `json:"availableDurations,omitempty"`
}

// Clone returns a copy with its own duration slice.
func (t TimeIntervalItem) Clone() TimeIntervalItem {
	out := t
	if t.AvailableDurations != nil {
		out.AvailableDurations = make([]string, len(t.AvailableDurations))
		copy(out.AvailableDurations, t.AvailableDurations)
	}
	return out
}

// Slot is one decomposed bookable sub-window plus its rendered label.
type Slot struct {
	TimeIntervalItem
	Label string `json:"label,omitempty"`
}

// AvailabilityQuery is the payload of an availability lookup.
type AvailabilityQuery struct {
	Date    string `json:"date" binding:"required"`
	SpaceID string `json:"spaceId" binding:"required"`
}
