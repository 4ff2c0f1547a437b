package plansync

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"deskly/models"

	"github.com/go-redis/redis/v8"
)

// planCachePrefix is the key prefix for per-location plan snapshots.
const planCachePrefix = "plan:"

// SnapshotStore is the local persistent key-value cache, one snapshot
// per location id.
type SnapshotStore interface {
	Get(ctx context.Context, locationID string) (*models.PlanSnapshot, error)
	Put(ctx context.Context, locationID string, snap models.PlanSnapshot) error
}

// RedisSnapshotStore backs SnapshotStore with Redis.
type RedisSnapshotStore struct {
	Client *redis.Client
}

// NewRedisSnapshotStore constructs a snapshot store on the given client.
func NewRedisSnapshotStore(client *redis.Client) *RedisSnapshotStore {
	return &RedisSnapshotStore{Client: client}
}

// Get returns the cached snapshot, or nil when none exists.
func (s *RedisSnapshotStore) Get(ctx context.Context, locationID string) (*models.PlanSnapshot, error) {
	data, err := s.Client.Get(ctx, planCachePrefix+locationID).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read plan snapshot: %w", err)
	}
	var snap models.PlanSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("failed to decode plan snapshot: %w", err)
	}
	return &snap, nil
}

// Put stores the snapshot under the location key.
func (s *RedisSnapshotStore) Put(ctx context.Context, locationID string, snap models.PlanSnapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to encode plan snapshot: %w", err)
	}
	if err := s.Client.Set(ctx, planCachePrefix+locationID, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to write plan snapshot: %w", err)
	}
	return nil
}

// Debouncer collapses a burst of mutations into one cache write after
// a quiet period. Each Trigger replaces the pending snapshot and
// restarts the timer, so only the most recent state survives.
type Debouncer struct {
	mu      sync.Mutex
	timer   *time.Timer
	delay   time.Duration
	write   func(models.PlanSnapshot)
	pending models.PlanSnapshot
}

// NewDebouncer builds a debouncer invoking write after delay of
// quiescence.
func NewDebouncer(delay time.Duration, write func(models.PlanSnapshot)) *Debouncer {
	return &Debouncer{delay: delay, write: write}
}

// Trigger records the latest snapshot and restarts the quiet timer.
func (d *Debouncer) Trigger(snap models.PlanSnapshot) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.pending = snap
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, func() {
		d.mu.Lock()
		pending := d.pending
		d.mu.Unlock()
		d.write(pending)
	})
}

// Stop cancels any pending write, for session teardown.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
