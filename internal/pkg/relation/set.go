// Package relation provides the keyed collection behind every to-many side of the
// workshop entity graph.
package relation

// Keyed is implemented by anything identified by a natural key.
type Keyed[K comparable] interface {
	Key() K
}

// Set is an insertion-ordered collection holding at most one item per key.
// The zero value is an empty set ready to use. A Set is not safe for
// concurrent use.
type Set[K comparable, T Keyed[K]] struct {
	items []T
	index map[K]int
}

// Add inserts item unless an item with the same key is already present.
// It reports whether the set changed.
func (s *Set[K, T]) Add(item T) bool {
	key := item.Key()
	if _, ok := s.index[key]; ok {
		return false
	}
	if s.index == nil {
		s.index = make(map[K]int)
	}
	s.index[key] = len(s.items)
	s.items = append(s.items, item)
	return true
}

// Remove deletes the item sharing item's key. It reports whether the set changed.
func (s *Set[K, T]) Remove(item T) bool {
	return s.RemoveKey(item.Key())
}

// RemoveKey deletes the item stored under key. It reports whether the set changed.
func (s *Set[K, T]) RemoveKey(key K) bool {
	i, ok := s.index[key]
	if !ok {
		return false
	}
	copy(s.items[i:], s.items[i+1:])
	var zero T
	s.items[len(s.items)-1] = zero
	s.items = s.items[:len(s.items)-1]
	delete(s.index, key)
	for j := i; j < len(s.items); j++ {
		s.index[s.items[j].Key()] = j
	}
	return true
}

// Contains reports whether an item with item's key is present.
func (s *Set[K, T]) Contains(item T) bool {
	_, ok := s.index[item.Key()]
	return ok
}

// Find returns the item stored under key.
func (s *Set[K, T]) Find(key K) (T, bool) {
	i, ok := s.index[key]
	if !ok {
		var zero T
		return zero, false
	}
	return s.items[i], true
}

// Len returns the number of items.
func (s *Set[K, T]) Len() int {
	return len(s.items)
}

// Snapshot returns the items in insertion order. The returned slice is a copy:
// appending to or reordering it never affects the set.
func (s *Set[K, T]) Snapshot() []T {
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}
