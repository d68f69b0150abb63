// Package store holds the in-memory mirrors of backend collections.
//
// A store is only changed after the backend has confirmed the
// corresponding call: Commit runs the remote call first and applies the
// local mutation only if it succeeded. A failed call leaves the store
// exactly as it was.
package store

import (
	"context"
	"sync"
)

// Store is an ordered, id-addressed collection. Order is the backend's
// list order with locally created items prepended.
type Store[T any] struct {
	mu    sync.RWMutex
	items []T
	idOf  func(T) string
}

// New returns an empty store keyed by idOf.
func New[T any](idOf func(T) string) *Store[T] {
	return &Store[T]{idOf: idOf}
}

// Snapshot returns a copy of the items in store order.
func (s *Store[T]) Snapshot() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

// Len returns the number of items.
func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Get looks up an item by id.
func (s *Store[T]) Get(id string) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, item := range s.items {
		if s.idOf(item) == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Contains reports whether an item with id is present.
func (s *Store[T]) Contains(id string) bool {
	_, ok := s.Get(id)
	return ok
}

// Replace swaps the whole collection, as after a fetch.
func (s *Store[T]) Replace(items []T) {
	cp := make([]T, len(items))
	copy(cp, items)

	s.mu.Lock()
	s.items = cp
	s.mu.Unlock()
}

// Prepend inserts item at the front.
func (s *Store[T]) Prepend(item T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]T, 0, len(s.items)+1)
	items = append(items, item)
	s.items = append(items, s.items...)
}

// Update applies fn to the item with id in place. It reports whether
// the item was found.
func (s *Store[T]) Update(id string, fn func(*T)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.idOf(s.items[i]) == id {
			fn(&s.items[i])
			return true
		}
	}
	return false
}

// Remove drops the item with id. It reports whether anything was removed.
func (s *Store[T]) Remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := make([]T, 0, len(s.items))
	for _, item := range s.items {
		if s.idOf(item) != id {
			kept = append(kept, item)
		}
	}
	removed := len(kept) != len(s.items)
	s.items = kept
	return removed
}

// Clear empties the store.
func (s *Store[T]) Clear() {
	s.mu.Lock()
	s.items = nil
	s.mu.Unlock()
}

// Commit runs remote and, only when it succeeds, runs apply against the
// store. The remote error is returned unchanged.
func (s *Store[T]) Commit(ctx context.Context, remote func(context.Context) error, apply func(*Store[T])) error {
	if err := remote(ctx); err != nil {
		return err
	}
	if apply != nil {
		apply(s)
	}
	return nil
}

// Create runs remote and prepends the item it returns.
func Create[T any](ctx context.Context, s *Store[T], remote func(context.Context) (T, error)) (T, error) {
	var created T
	err := s.Commit(ctx, func(ctx context.Context) error {
		var err error
		created, err = remote(ctx)
		return err
	}, func(st *Store[T]) {
		st.Prepend(created)
	})
	return created, err
}
