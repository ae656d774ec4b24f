package ecs

// storage is the type-erased view the World keeps of every SparseSet
type storage interface {
	Remove(e Entity)
	Clear()
	Len() int
}

type entry[T any] struct {
	entity Entity
	item   T
}

// SparseSet is a dense component array with a sparse entity index.
// Iteration walks the dense array; removal swaps the last element into the hole.
type SparseSet[T any] struct {
	dense  []entry[T]
	sparse []int // entity -> dense index + 1; 0 means absent
}

// NewSparseSet creates a set sized for capacity entities; it grows on demand
func NewSparseSet[T any](capacity int) *SparseSet[T] {
	return &SparseSet[T]{
		dense:  make([]entry[T], 0, capacity),
		sparse: make([]int, capacity),
	}
}

// Add inserts or replaces the component of e
func (s *SparseSet[T]) Add(e Entity, item T) {
	if p := s.Get(e); p != nil {
		*p = item
		return
	}
	if int(e) >= len(s.sparse) {
		grown := make([]int, max(int(e)+1, 2*len(s.sparse)))
		copy(grown, s.sparse)
		s.sparse = grown
	}
	s.dense = append(s.dense, entry[T]{entity: e, item: item})
	s.sparse[e] = len(s.dense)
}

// Contains reports whether e has a component in this set
func (s *SparseSet[T]) Contains(e Entity) bool {
	return int(e) < len(s.sparse) && s.sparse[e] != 0
}

// Get returns a pointer to the component of e, or nil.
// The pointer is invalidated by the next Add or Remove.
func (s *SparseSet[T]) Get(e Entity) *T {
	if !s.Contains(e) {
		return nil
	}
	return &s.dense[s.sparse[e]-1].item
}

// Remove deletes the component of e; absent entities are ignored
func (s *SparseSet[T]) Remove(e Entity) {
	if !s.Contains(e) {
		return
	}
	idx := s.sparse[e] - 1
	last := len(s.dense) - 1
	if idx != last {
		s.dense[idx] = s.dense[last]
		s.sparse[s.dense[idx].entity] = idx + 1
	}
	var zero entry[T]
	s.dense[last] = zero
	s.dense = s.dense[:last]
	s.sparse[e] = 0
}

// Clear drops every component
func (s *SparseSet[T]) Clear() {
	clear(s.dense)
	s.dense = s.dense[:0]
	clear(s.sparse)
}

// Len returns the number of stored components
func (s *SparseSet[T]) Len() int {
	return len(s.dense)
}

// Each calls fn for every component in dense order
func (s *SparseSet[T]) Each(fn func(e Entity, item *T)) {
	for i := range s.dense {
		fn(s.dense[i].entity, &s.dense[i].item)
	}
}
