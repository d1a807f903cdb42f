package weather

import (
	"errors"
	"sync"
	"time"
)

// ErrNoSnapshot is returned when no conditions have been fetched yet for a
// location.
var ErrNoSnapshot = errors.New("no conditions snapshot for location")

// Snapshot is the latest scored observation for a saved location.
type Snapshot struct {
	LocationID  string      `json:"locationId"`
	Observation Observation `json:"observation"`
	Score       int         `json:"score"`
	Label       string      `json:"label"`
	FetchedAt   time.Time   `json:"fetchedAt"`
}

// SnapshotCache keeps the most recent conditions snapshot per location id.
// It is safe for concurrent use; the scheduler writes, request handlers read.
type SnapshotCache struct {
	mu sync.RWMutex

	// key: location id, value: latest snapshot
	data map[string]Snapshot

	// maxAge, when positive, makes snapshots older than it invisible to Get.
	maxAge time.Duration
}

// NewSnapshotCache creates an empty cache. maxAge <= 0 disables expiry.
func NewSnapshotCache(maxAge time.Duration) *SnapshotCache {
	return &SnapshotCache{
		data:   make(map[string]Snapshot),
		maxAge: maxAge,
	}
}

// Put stores the snapshot, replacing any previous one for the location.
func (c *SnapshotCache) Put(snap Snapshot) {
	c.mu.Lock()
	c.data[snap.LocationID] = snap
	c.mu.Unlock()
}

// Get returns the latest snapshot for a location, or ErrNoSnapshot when none
// exists or the stored one has aged out.
func (c *SnapshotCache) Get(locationID string) (Snapshot, error) {
	c.mu.RLock()
	snap, ok := c.data[locationID]
	c.mu.RUnlock()

	if !ok {
		return Snapshot{}, ErrNoSnapshot
	}
	if c.maxAge > 0 && time.Since(snap.FetchedAt) > c.maxAge {
		return Snapshot{}, ErrNoSnapshot
	}
	return snap, nil
}

// Drop removes the snapshot for a location, if any.
func (c *SnapshotCache) Drop(locationID string) {
	c.mu.Lock()
	delete(c.data, locationID)
	c.mu.Unlock()
}
