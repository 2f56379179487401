package ecs

// absent marks an empty sparse slot.
const absent = -1

// SparseSet stores one component type densely, keyed by entity id.
// dense and entities mirror each other; sparse maps id -> dense index.
// Removal swaps the last element into the hole, so dense order is not stable.
type SparseSet[T any] struct {
	sparse   []int
	dense    []T
	entities []uint32
}

func NewSparseSet[T any](capacity int) *SparseSet[T] {
	return &SparseSet[T]{
		dense:    make([]T, 0, capacity),
		entities: make([]uint32, 0, capacity),
	}
}

func (s *SparseSet[T]) index(id uint32) (int, bool) {
	if int(id) >= len(s.sparse) {
		return 0, false
	}
	k := s.sparse[id]
	return k, k != absent
}

// Insert stores v for id, overwriting any existing value in place.
func (s *SparseSet[T]) Insert(id uint32, v T) {
	if k, ok := s.index(id); ok {
		s.dense[k] = v
		return
	}
	for int(id) >= len(s.sparse) {
		s.sparse = append(s.sparse, absent)
	}
	s.sparse[id] = len(s.dense)
	s.dense = append(s.dense, v)
	s.entities = append(s.entities, id)
}

// Get returns a pointer into the dense array. The pointer is only valid
// until the next insert of a new id or remove on this set.
func (s *SparseSet[T]) Get(id uint32) (*T, bool) {
	k, ok := s.index(id)
	if !ok {
		return nil, false
	}
	return &s.dense[k], true
}

func (s *SparseSet[T]) Contains(id uint32) bool {
	_, ok := s.index(id)
	return ok
}

// Remove swap-removes id and returns its value.
func (s *SparseSet[T]) Remove(id uint32) (T, bool) {
	var zero T
	k, ok := s.index(id)
	if !ok {
		return zero, false
	}
	removed := s.dense[k]
	last := len(s.dense) - 1
	if k != last {
		moved := s.entities[last]
		s.dense[k] = s.dense[last]
		s.entities[k] = moved
		s.sparse[moved] = k
	}
	s.dense[last] = zero // drop references held by the vacated slot
	s.dense = s.dense[:last]
	s.entities = s.entities[:last]
	s.sparse[id] = absent
	return removed, true
}

func (s *SparseSet[T]) Len() int { return len(s.dense) }
func (s *SparseSet[T]) Cap() int { return cap(s.dense) }

// Each yields (id, value) pairs in dense order.
func (s *SparseSet[T]) Each(fn func(id uint32, v *T)) {
	for k := range s.dense {
		fn(s.entities[k], &s.dense[k])
	}
}

// Entities returns the dense id list. Callers must not modify it.
func (s *SparseSet[T]) Entities() []uint32 { return s.entities }

// Values returns the dense value array. Callers must not resize it.
func (s *SparseSet[T]) Values() []T { return s.dense }
