// Package memory keeps the workshop entity graph in process memory. Every
// repository is safe for concurrent use; the entities it hands out are shared
// and must be mutated by one writer at a time.
package memory

import (
	"sync"

	"workshop/internal/pkg/errs"
)

// store is a keyed map guarded by a RWMutex.
type store[K comparable, T any] struct {
	mu     sync.RWMutex
	entity string
	items  map[K]T
}

func newStore[K comparable, T any](entity string) *store[K, T] {
	return &store[K, T]{
		entity: entity,
		items:  make(map[K]T),
	}
}

func (s *store[K, T]) add(key K, item T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[key]; ok {
		return errs.NewStateConflictError(s.entity, "REGISTERED", "add")
	}
	s.items[key] = item
	return nil
}

func (s *store[K, T]) get(key K) (T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.items[key]
	if !ok {
		var zero T
		return zero, errs.NewObjectNotFoundError(s.entity, key)
	}
	return item, nil
}

// values returns the stored items that satisfy keep, in no particular order.
func (s *store[K, T]) values(keep func(T) bool) []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]T, 0, len(s.items))
	for _, item := range s.items {
		if keep == nil || keep(item) {
			out = append(out, item)
		}
	}
	return out
}
