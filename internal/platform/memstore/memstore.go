// Package memstore provides process-local, in-memory implementations of the
// store interfaces. Records live for the lifetime of the server; each
// collection guards its map and insertion-order index with a read-write
// mutex so that concurrently arriving requests cannot lose updates between
// an existence check and the following mutation.
package memstore

import (
	"sync"

	"github.com/google/uuid"
)

// Collection is a generic ordered map from ID to record. Records are stored
// and returned by value; callers never share memory with the collection.
type Collection[T any] struct {
	mu    sync.RWMutex
	items map[uuid.UUID]T
	order []uuid.UUID
}

// NewCollection creates an empty Collection.
func NewCollection[T any]() *Collection[T] {
	return &Collection[T]{
		items: make(map[uuid.UUID]T),
	}
}

// Put inserts a record. A new ID is appended to the insertion order; an
// existing ID keeps its position.
func (c *Collection[T]) Put(id uuid.UUID, item T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.items[id]; !exists {
		c.order = append(c.order, id)
	}
	c.items[id] = item
}

// Get returns the record for the given ID, if present.
func (c *Collection[T]) Get(id uuid.UUID) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	item, ok := c.items[id]
	return item, ok
}

// List returns records matching the predicate, in insertion order, sliced
// to [offset, offset+limit). The result is never nil; an out-of-range
// offset yields an empty slice. A nil predicate matches everything.
func (c *Collection[T]) List(match func(T) bool, offset, limit int) []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	matched := make([]T, 0, limit)
	skipped := 0
	for _, id := range c.order {
		item := c.items[id]
		if match != nil && !match(item) {
			continue
		}
		if skipped < offset {
			skipped++
			continue
		}
		if len(matched) == limit {
			break
		}
		matched = append(matched, item)
	}
	return matched
}

// Update applies the merge function to the record under the write lock,
// making the existence check and the mutation a single atomic step. The
// stored record is replaced only when merge succeeds. Returns the merged
// record, whether the ID was found, and any error from merge.
func (c *Collection[T]) Update(id uuid.UUID, merge func(T) (T, error)) (T, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	item, ok := c.items[id]
	if !ok {
		var zero T
		return zero, false, nil
	}

	merged, err := merge(item)
	if err != nil {
		var zero T
		return zero, true, err
	}

	c.items[id] = merged
	return merged, true, nil
}

// Delete removes the record for the given ID and reports whether it was
// present. The ID is retired from the insertion order and never reused.
func (c *Collection[T]) Delete(id uuid.UUID) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.items[id]; !ok {
		return false
	}

	delete(c.items, id)
	for i, candidate := range c.order {
		if candidate == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return true
}

// Len returns the number of stored records.
func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.items)
}
