// Package pkg is a package that provides utilities for testsmith.
package pkg

// OrderedSet is a generic set that remembers insertion order. Generated
// code must be byte-stable across runs, so every deduplicated collection
// in the pipeline iterates in the order items were first added.
type OrderedSet[T comparable] struct {
	index map[T]struct{}
	items []T
}

// NewOrderedSet creates an empty OrderedSet.
func NewOrderedSet[T comparable]() *OrderedSet[T] {
	return &OrderedSet[T]{index: make(map[T]struct{})}
}

// Add inserts item unless it is already present. It reports whether the
// set changed.
func (s *OrderedSet[T]) Add(item T) bool {
	if _, ok := s.index[item]; ok {
		return false
	}

	s.index[item] = struct{}{}
	s.items = append(s.items, item)

	return true
}

// AddAll inserts every item in order, skipping duplicates.
func (s *OrderedSet[T]) AddAll(items ...T) {
	for _, item := range items {
		s.Add(item)
	}
}

// Contains reports whether item is in the set.
func (s *OrderedSet[T]) Contains(item T) bool {
	_, ok := s.index[item]
	return ok
}

// Len returns the number of distinct items.
func (s *OrderedSet[T]) Len() int {
	return len(s.items)
}

// Values returns the items in insertion order. The returned slice is a
// copy; mutating it does not affect the set.
func (s *OrderedSet[T]) Values() []T {
	out := make([]T, len(s.items))
	copy(out, s.items)

	return out
}
