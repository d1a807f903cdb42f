package storage

import "errors"

var (
	// ErrNotFound is returned when no document exists under a given key.
	ErrNotFound = errors.New("no data for key")
)

// Store is the contract for the per-profile key-value persistence capability.
// Each collection is stored as a single JSON document under its own key.
// Implementations must be safe for concurrent use.
type Store interface {
	// Load unmarshals the document stored under key into out.
	// Returns ErrNotFound if the key has never been saved.
	Load(key string, out any) error

	// Save marshals v and stores it under key, replacing any previous document.
	Save(key string, v any) error

	// Remove deletes the document under key. Removing an absent key is a no-op.
	Remove(key string) error
}
