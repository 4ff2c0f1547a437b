package plansync

import (
	"context"
	"regexp"
	"strconv"
	"sync/atomic"
	"time"

	"deskly/models"
)

// RemoteClient is the slice of the booking/admin API the sync layer
// consumes. Satisfied by *remote.Client.
type RemoteClient interface {
	GetFloor(ctx context.Context, locationID string, floorNumber int) (*models.RemoteFloorResponse, error)
	CreateFloorSpaces(ctx context.Context, req models.CreateFloorSpacesRequest) error
	GetSpaceTypes(ctx context.Context, locationID string) ([]models.SpaceType, error)
}

// Service reconciles editor state between the local snapshot cache and
// the remote booking API.
type Service struct {
	Remote   RemoteClient
	Store    SnapshotStore
	ProbeMax int // highest floor number probed on load

	// generation invalidates in-flight loads when the location
	// changes; stale probe results are discarded on arrival.
	generation atomic.Int64
}

// DefaultProbeMax bounds the floor-number probe when config is silent.
const DefaultProbeMax = 10

func (s *Service) probeMax() int {
	if s.ProbeMax > 0 {
		return s.ProbeMax
	}
	return DefaultProbeMax
}

var floorNumberRe = regexp.MustCompile(`\d+`)

// FloorNumberFromName extracts the first embedded integer of a floor
// name ("Floor 3" -> 3). Names with no integer default to 1.
func FloorNumberFromName(name string) int {
	m := floorNumberRe.FindString(name)
	if m == "" {
		return 1
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		return 1
	}
	return n
}

// FloorName renders the canonical name for a remote floor number.
func FloorName(number int) string {
	return "Floor " + strconv.Itoa(number)
}

// AttachDebounce wires a session's mutation hook to a debounced cache
// write and returns the debouncer so the host can stop it on unmount.
func (s *Service) AttachDebounce(sess SnapshotSource, locationID string, delay time.Duration) *Debouncer {
	d := NewDebouncer(delay, func(snap models.PlanSnapshot) {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		// Fire-and-forget: a failed cache write only costs UX
		// continuity, never editor state.
		_ = s.Store.Put(ctx, locationID, snap)
	})
	sess.OnMutate(func() {
		d.Trigger(sess.Snapshot())
	})
	return d
}

// SnapshotSource is the editor-session surface the sync layer needs.
type SnapshotSource interface {
	OnMutate(func())
	Snapshot() models.PlanSnapshot
}
