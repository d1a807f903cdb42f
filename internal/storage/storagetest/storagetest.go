// Package storagetest provides store doubles for exercising persistence
// failure handling.
package storagetest

import "errors"

// ErrUnavailable is the failure every FailingStore operation reports.
var ErrUnavailable = errors.New("storage unavailable")

// FailingStore fails every operation. It stands in for a broken persistence
// capability so callers can verify that failures are masked rather than
// propagated.
type FailingStore struct{}

func (FailingStore) Load(key string, out any) error { return ErrUnavailable }

func (FailingStore) Save(key string, v any) error { return ErrUnavailable }

func (FailingStore) Remove(key string) error { return ErrUnavailable }
