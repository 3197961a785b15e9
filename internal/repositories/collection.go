package repositories

import (
	"sync"
	"time"
)

// Collection is an in-memory, ordered implementation of Repository.
type Collection[T any] struct {
	name    string
	items   []T
	version uint64
	emit    func(ChangeEvent)
	mu      sync.RWMutex
}

// NewCollection creates an empty collection. emit may be nil.
func NewCollection[T any](name string, emit func(ChangeEvent)) *Collection[T] {
	return &Collection[T]{
		name:  name,
		items: []T{},
		emit:  emit,
	}
}

// Name returns the collection name used in change events.
func (c *Collection[T]) Name() string {
	return c.name
}

// List returns a copy of the current snapshot.
func (c *Collection[T]) List() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return cloneSlice(c.items)
}

// Replace installs all as the new snapshot.
func (c *Collection[T]) Replace(all []T) {
	c.mu.Lock()
	ev := c.installLocked(all)
	c.mu.Unlock()

	c.publish(ev)
}

// Update runs fn against the current snapshot and installs its result.
// Concurrent updates are serialized, so fn never sees a half-applied change.
func (c *Collection[T]) Update(fn func(current []T) []T) []T {
	c.mu.Lock()
	next := fn(cloneSlice(c.items))
	ev := c.installLocked(next)
	out := cloneSlice(c.items)
	c.mu.Unlock()

	c.publish(ev)
	return out
}

// UpdateIf is Update for computations that may decide nothing changed. When
// fn reports changed == false no snapshot is installed, the version stays and
// no event is emitted.
func (c *Collection[T]) UpdateIf(fn func(current []T) (next []T, changed bool)) []T {
	c.mu.Lock()
	next, changed := fn(cloneSlice(c.items))
	if !changed {
		out := cloneSlice(c.items)
		c.mu.Unlock()
		return out
	}
	ev := c.installLocked(next)
	out := cloneSlice(c.items)
	c.mu.Unlock()

	c.publish(ev)
	return out
}

// Version is incremented on every replace.
func (c *Collection[T]) Version() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.version
}

func (c *Collection[T]) installLocked(all []T) ChangeEvent {
	c.items = cloneSlice(all)
	c.version++
	return ChangeEvent{
		Collection: c.name,
		Size:       len(c.items),
		Version:    c.version,
		At:         time.Now().UTC(),
	}
}

func (c *Collection[T]) publish(ev ChangeEvent) {
	if c.emit != nil {
		c.emit(ev)
	}
}

func cloneSlice[T any](in []T) []T {
	out := make([]T, len(in))
	copy(out, in)
	return out
}
