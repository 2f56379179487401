package ecs

import "fmt"

// Registry maps each component type to its storage and supports bulk
// cleanup on entity destroy. It is the sole owner of key assignment.
type Registry struct {
	stores   map[TypeKey]Storage
	order    []TypeKey
	capacity int
}

func NewRegistry(capacity int) *Registry {
	return &Registry{
		stores:   make(map[TypeKey]Storage, 16),
		order:    make([]TypeKey, 0, 16),
		capacity: capacity,
	}
}

// Lookup returns the type-erased storage for key, if one was created.
func (r *Registry) Lookup(key TypeKey) (Storage, bool) {
	s, ok := r.stores[key]
	return s, ok
}

// Keys returns the registered component keys in creation order.
func (r *Registry) Keys() []TypeKey {
	out := make([]TypeKey, len(r.order))
	copy(out, r.order)
	return out
}

func (r *Registry) Len() int { return len(r.order) }

// Each visits every storage in creation order.
func (r *Registry) Each(fn func(Storage)) {
	for _, k := range r.order {
		fn(r.stores[k])
	}
}

// RemoveAll clears the given entity id from every registered component store.
func (r *Registry) RemoveAll(id uint32) {
	for _, k := range r.order {
		r.stores[k].Remove(id)
	}
}

// SetOf returns the concrete SparseSet for T without creating it.
func SetOf[T any](r *Registry) (*SparseSet[T], bool) {
	s, ok := r.stores[KeyOf[T]()]
	if !ok {
		return nil, false
	}
	return downcast[T](s), true
}

// EnsureSet returns the SparseSet for T, creating it on first use.
func EnsureSet[T any](r *Registry) *SparseSet[T] {
	key := KeyOf[T]()
	if s, ok := r.stores[key]; ok {
		return downcast[T](s)
	}
	cs := &componentStorage[T]{key: key, set: NewSparseSet[T](r.capacity)}
	r.stores[key] = cs
	r.order = append(r.order, key)
	return cs.set
}

func downcast[T any](s Storage) *SparseSet[T] {
	cs, ok := s.(*componentStorage[T])
	if !ok {
		panic(fmt.Sprintf("ecs: storage for %s holds %T", KeyOf[T](), s))
	}
	return cs.set
}
