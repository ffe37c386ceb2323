package engine

import "github.com/lixenwraith/starlight-reaver/core"

// Store is an insertion-ordered container for one component type
// Iteration order equals creation order; removal preserves the order of the rest
// Not safe for concurrent use; owned by the tick loop
type Store[T any] struct {
	index    map[core.Entity]int
	entities []core.Entity
	values   []T
}

// NewStore creates a new component store for type T
func NewStore[T any]() *Store[T] {
	return &Store[T]{
		index:    make(map[core.Entity]int),
		entities: make([]core.Entity, 0, 64),
		values:   make([]T, 0, 64),
	}
}

// Add appends a component for e, replacing in place if e is already present
func (s *Store[T]) Add(e core.Entity, val T) {
	if i, ok := s.index[e]; ok {
		s.values[i] = val
		return
	}
	s.index[e] = len(s.entities)
	s.entities = append(s.entities, e)
	s.values = append(s.values, val)
}

// Get returns a pointer into the store for in-place mutation
// The pointer is invalidated by the next Add or Remove
func (s *Store[T]) Get(e core.Entity) (*T, bool) {
	i, ok := s.index[e]
	if !ok {
		return nil, false
	}
	return &s.values[i], true
}

// Has checks if e has this component
func (s *Store[T]) Has(e core.Entity) bool {
	_, ok := s.index[e]
	return ok
}

// At returns the i-th entity and its component in insertion order
func (s *Store[T]) At(i int) (core.Entity, *T) {
	return s.entities[i], &s.values[i]
}

// Len returns number of entities with this component
func (s *Store[T]) Len() int {
	return len(s.entities)
}

// Remove deletes e's component, keeping the remaining order
func (s *Store[T]) Remove(e core.Entity) bool {
	i, ok := s.index[e]
	if !ok {
		return false
	}
	s.RemoveAt(i)
	return true
}

// RemoveAt deletes the i-th component, keeping the remaining order
// Safe inside a reverse-index loop
func (s *Store[T]) RemoveAt(i int) {
	delete(s.index, s.entities[i])

	copy(s.entities[i:], s.entities[i+1:])
	s.entities = s.entities[:len(s.entities)-1]

	var zero T
	copy(s.values[i:], s.values[i+1:])
	s.values[len(s.values)-1] = zero
	s.values = s.values[:len(s.values)-1]

	for j := i; j < len(s.entities); j++ {
		s.index[s.entities[j]] = j
	}
}

// RemoveIf deletes every component matching pred in one compaction pass
// Returns the number removed
func (s *Store[T]) RemoveIf(pred func(e core.Entity, v *T) bool) int {
	write := 0
	for read := range s.entities {
		if pred(s.entities[read], &s.values[read]) {
			delete(s.index, s.entities[read])
			continue
		}
		if write != read {
			s.entities[write] = s.entities[read]
			s.values[write] = s.values[read]
		}
		s.index[s.entities[write]] = write
		write++
	}

	removed := len(s.entities) - write
	var zero T
	for i := write; i < len(s.values); i++ {
		s.values[i] = zero
	}
	s.entities = s.entities[:write]
	s.values = s.values[:write]
	return removed
}

// Values returns a copy of all components in insertion order
func (s *Store[T]) Values() []T {
	result := make([]T, len(s.values))
	copy(result, s.values)
	return result
}

// Clear removes all components from this store
func (s *Store[T]) Clear() {
	clear(s.index)
	var zero T
	for i := range s.values {
		s.values[i] = zero
	}
	s.entities = s.entities[:0]
	s.values = s.values[:0]
}

// AnyStore is the type-erased view World uses to count and clear every store
type AnyStore interface {
	Len() int
	Clear()
}
