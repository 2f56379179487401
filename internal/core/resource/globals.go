package resource

import (
	"fmt"
	"reflect"
)

// Globals is a type-keyed registry of process-wide resources handed to
// systems. Single-goroutine access only (game loop).
type Globals struct {
	data map[reflect.Type]any
}

func NewGlobals() *Globals {
	return &Globals{data: make(map[reflect.Type]any)}
}

func keyOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// Register stores v as the resource of type T, replacing any previous one.
func Register[T any](g *Globals, v *T) {
	g.data[keyOf[T]()] = v
}

// Get returns the resource of type T, if registered.
func Get[T any](g *Globals) (*T, bool) {
	v, ok := g.data[keyOf[T]()]
	if !ok {
		return nil, false
	}
	return v.(*T), true
}

// MustGet is Get for resources whose absence is a wiring mistake.
// hint tells the reader how to register it.
func MustGet[T any](g *Globals, hint string) *T {
	v, ok := Get[T](g)
	if !ok {
		panic(fmt.Sprintf("resource: %s is not registered: %s", keyOf[T](), hint))
	}
	return v
}

func Contains[T any](g *Globals) bool {
	_, ok := g.data[keyOf[T]()]
	return ok
}

// Remove drops the resource of type T and returns it.
func Remove[T any](g *Globals) (*T, bool) {
	v, ok := Get[T](g)
	if ok {
		delete(g.data, keyOf[T]())
	}
	return v, ok
}
