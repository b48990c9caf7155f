// Package kvstore provides the named-collection document store backing the
// clinic repositories. Each collection is one JSON document under a string
// key; a write replaces the whole document. Backends: in-memory, file-per-key,
// and Postgres.
package kvstore

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Read when no value is stored under the key.
// Collection callers treat it as "empty collection"; malformed stored data
// is a real error and is never silently replaced with defaults.
var ErrNotFound = errors.New("kvstore: key not found")

// Store is the persistence interface shared by all backends.
type Store interface {
	// Read unmarshals the value stored under key into out.
	Read(ctx context.Context, key string, out interface{}) error
	// Write marshals value and stores it under key, replacing any prior value.
	Write(ctx context.Context, key string, value interface{}) error
	// Delete removes the value under key. Absent keys are a no-op.
	Delete(ctx context.Context, key string) error
	// Revision returns a counter that increases on every write to key.
	// Clients poll revisions to detect changes made elsewhere.
	Revision(ctx context.Context, key string) (int64, error)
}
