package ecs

import (
	"fmt"
	"reflect"
	"strings"
	"unsafe"
)

// TypeKey identifies a component type for the lifetime of the process.
type TypeKey struct {
	t reflect.Type
}

// KeyOf returns the key for component type T.
func KeyOf[T any]() TypeKey {
	return TypeKey{t: reflect.TypeOf((*T)(nil)).Elem()}
}

func (k TypeKey) String() string {
	if k.t == nil {
		return "<nil>"
	}
	return k.t.String()
}

// Name returns the type name without its package qualifier.
func (k TypeKey) Name() string {
	s := k.String()
	if i := strings.LastIndexByte(s, '.'); i >= 0 {
		return s[i+1:]
	}
	return s
}

// Storage is the type-erased view of a SparseSet that the Registry holds.
type Storage interface {
	Key() TypeKey
	Contains(id uint32) bool
	Remove(id uint32) bool
	EntityIDs() []uint32
	Len() int
	TypeName() string
	DebugEntry(id uint32) (string, bool)
	Layout() Layout

	denseIDs() []uint32
}

// Layout describes the memory of one dense array, for DumpMemory.
type Layout struct {
	TypeName string
	Len      int
	Cap      int
	ElemSize uintptr
	Base     uintptr
	IDs      []uint32
}

// componentStorage adapts SparseSet[T] to Storage.
type componentStorage[T any] struct {
	key TypeKey
	set *SparseSet[T]
}

func (c *componentStorage[T]) Key() TypeKey            { return c.key }
func (c *componentStorage[T]) Contains(id uint32) bool { return c.set.Contains(id) }
func (c *componentStorage[T]) Len() int                { return c.set.Len() }
func (c *componentStorage[T]) TypeName() string        { return c.key.Name() }
func (c *componentStorage[T]) denseIDs() []uint32      { return c.set.entities }

func (c *componentStorage[T]) Remove(id uint32) bool {
	_, ok := c.set.Remove(id)
	return ok
}

func (c *componentStorage[T]) EntityIDs() []uint32 {
	out := make([]uint32, len(c.set.entities))
	copy(out, c.set.entities)
	return out
}

func (c *componentStorage[T]) DebugEntry(id uint32) (string, bool) {
	v, ok := c.set.Get(id)
	if !ok {
		return "", false
	}
	return fmt.Sprintf("%+v", *v), true
}

func (c *componentStorage[T]) Layout() Layout {
	var zero T
	l := Layout{
		TypeName: c.key.Name(),
		Len:      c.set.Len(),
		Cap:      c.set.Cap(),
		ElemSize: unsafe.Sizeof(zero),
		IDs:      c.EntityIDs(),
	}
	if cap(c.set.dense) > 0 {
		l.Base = uintptr(unsafe.Pointer(unsafe.SliceData(c.set.dense)))
	}
	return l
}

// Component is a typed value waiting to be inserted, built with C.
// It is the payload of builder inserts and deferred OpInsert commands.
type Component interface {
	Key() TypeKey
	insertInto(r *Registry, id uint32)
}

type componentValue[T any] struct {
	v T
}

// C wraps v so it can be passed to EntityBuilder.Insert or queued with Defer.
func C[T any](v T) Component {
	return componentValue[T]{v: v}
}

func (c componentValue[T]) Key() TypeKey { return KeyOf[T]() }

func (c componentValue[T]) insertInto(r *Registry, id uint32) {
	EnsureSet[T](r).Insert(id, c.v)
}
