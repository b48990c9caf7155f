package kvstore

import (
	"context"
	"errors"
)

// Record is any entity stored in a collection.
type Record interface {
	RecordID() string
}

// Collection is the typed repository core shared by every entity kind:
// list, get, upsert (replace in place or append), delete. Per-entity
// repositories wrap it instead of each re-implementing the slice
// bookkeeping.
type Collection[T Record] struct {
	store Store
	key   string
}

func NewCollection[T Record](store Store, key string) *Collection[T] {
	return &Collection[T]{store: store, key: key}
}

// Key returns the storage key backing the collection.
func (c *Collection[T]) Key() string { return c.key }

// List returns all records in stored order. A missing key is an empty
// collection, not an error.
func (c *Collection[T]) List(ctx context.Context) ([]T, error) {
	var records []T
	if err := c.store.Read(ctx, c.key, &records); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return records, nil
}

// Get returns the record with the given id, or found=false.
func (c *Collection[T]) Get(ctx context.Context, id string) (rec T, found bool, err error) {
	records, err := c.List(ctx)
	if err != nil {
		return rec, false, err
	}
	for _, r := range records {
		if r.RecordID() == id {
			return r, true, nil
		}
	}
	return rec, false, nil
}

// Upsert replaces the record with a matching id in place, preserving its
// position, or appends it. Repeating an identical upsert leaves the
// collection unchanged.
func (c *Collection[T]) Upsert(ctx context.Context, rec T) error {
	records, err := c.List(ctx)
	if err != nil {
		return err
	}
	replaced := false
	for i, r := range records {
		if r.RecordID() == rec.RecordID() {
			records[i] = rec
			replaced = true
			break
		}
	}
	if !replaced {
		records = append(records, rec)
	}
	return c.store.Write(ctx, c.key, records)
}

// Prepend inserts the record at the head. When max > 0 the collection is
// truncated to its max newest entries, evicting from the tail.
func (c *Collection[T]) Prepend(ctx context.Context, rec T, max int) error {
	records, err := c.List(ctx)
	if err != nil {
		return err
	}
	records = append([]T{rec}, records...)
	if max > 0 && len(records) > max {
		records = records[:max]
	}
	return c.store.Write(ctx, c.key, records)
}

// Delete removes the record with the given id. Absent ids are a no-op.
func (c *Collection[T]) Delete(ctx context.Context, id string) error {
	records, err := c.List(ctx)
	if err != nil {
		return err
	}
	kept := records[:0]
	for _, r := range records {
		if r.RecordID() != id {
			kept = append(kept, r)
		}
	}
	return c.store.Write(ctx, c.key, kept)
}

// Replace overwrites the whole collection.
func (c *Collection[T]) Replace(ctx context.Context, records []T) error {
	return c.store.Write(ctx, c.key, records)
}

// SeedIfEmpty writes the given records only when nothing is stored yet.
func (c *Collection[T]) SeedIfEmpty(ctx context.Context, records []T) error {
	var existing []T
	err := c.store.Read(ctx, c.key, &existing)
	if err == nil {
		return nil
	}
	if !errors.Is(err, ErrNotFound) {
		return err
	}
	return c.store.Write(ctx, c.key, records)
}
