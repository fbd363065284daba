// Package memory keeps repository state in process. It implements the same
// ports as the SQL adapters and is meant for tests and local experiments.
package memory

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"storefront/internal/repository"
)

// collection is a mutex guarded map of records keyed by id.
type collection[T any] struct {
	mu    sync.RWMutex
	items map[uuid.UUID]T

	id        func(T) uuid.UUID
	createdAt func(T) time.Time
	// uniqueKey returns the value that must be unique across records. Nil disables the check.
	uniqueKey func(T) string
	// check rejects records the SQL schema would refuse. Nil accepts everything.
	check func(T) error
}

func newCollection[T any](id func(T) uuid.UUID, createdAt func(T) time.Time, uniqueKey func(T) string) *collection[T] {
	return &collection[T]{
		items:     make(map[uuid.UUID]T),
		id:        id,
		createdAt: createdAt,
		uniqueKey: uniqueKey,
	}
}

func (c *collection[T]) insert(item T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.validate(item); err != nil {
		return err
	}
	if c.taken(item) {
		return repository.ErrConflict
	}
	c.items[c.id(item)] = item
	return nil
}

func (c *collection[T]) list() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	items := make([]T, 0, len(c.items))
	for _, item := range c.items {
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool {
		a, b := c.createdAt(items[i]), c.createdAt(items[j])
		if !a.Equal(b) {
			return a.After(b)
		}
		return c.id(items[i]).String() > c.id(items[j]).String()
	})
	return items
}

func (c *collection[T]) get(id uuid.UUID) (T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	item, ok := c.items[id]
	if !ok {
		var zero T
		return zero, repository.ErrNotFound
	}
	return item, nil
}

// update applies mutate to a copy and stores it unless it breaks uniqueness.
func (c *collection[T]) update(id uuid.UUID, mutate func(*T)) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero T
	item, ok := c.items[id]
	if !ok {
		return zero, repository.ErrNotFound
	}
	mutate(&item)
	if err := c.validate(item); err != nil {
		return zero, err
	}
	if c.taken(item) {
		return zero, repository.ErrConflict
	}
	c.items[id] = item
	return item, nil
}

func (c *collection[T]) delete(id uuid.UUID) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.items[id]; !ok {
		return repository.ErrNotFound
	}
	delete(c.items, id)
	return nil
}

func (c *collection[T]) validate(item T) error {
	if c.check == nil {
		return nil
	}
	if err := c.check(item); err != nil {
		return repository.Unexpected(err)
	}
	return nil
}

// taken reports whether another record already holds item's unique key. Callers hold mu.
func (c *collection[T]) taken(item T) bool {
	if c.uniqueKey == nil {
		return false
	}
	key, id := c.uniqueKey(item), c.id(item)
	for otherID, other := range c.items {
		if otherID != id && c.uniqueKey(other) == key {
			return true
		}
	}
	return false
}

func now() time.Time {
	return time.Now().UTC()
}
