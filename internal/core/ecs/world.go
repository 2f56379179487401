package ecs

import (
	"fmt"

	"go.uber.org/zap"
)

// World is the top-level ECS container. It owns the entity pool, the component
// registry, the tag index and a deferred mutation queue flushed by FlushSystem
// each tick. A World is not safe for concurrent use.
type World struct {
	pool      *EntityPool
	registry  *Registry
	tags      *TagIndex
	deferred  CommandQueue
	iterating int
	debug     bool
	log       *zap.Logger
}

type options struct {
	entityCapacity  int
	storageCapacity int
	debug           bool
	log             *zap.Logger
}

// Option configures a World.
type Option func(*options)

func WithLogger(log *zap.Logger) Option {
	return func(o *options) { o.log = log }
}

// WithCapacity presizes the entity tables and every new component storage.
func WithCapacity(entities, perStorage int) Option {
	return func(o *options) {
		o.entityCapacity = entities
		o.storageCapacity = perStorage
	}
}

// WithDebug enables Inspect and DumpMemory.
func WithDebug(on bool) Option {
	return func(o *options) { o.debug = on }
}

func NewWorld(opts ...Option) *World {
	o := options{
		entityCapacity:  1024,
		storageCapacity: 256,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.log == nil {
		o.log = zap.NewNop()
	}
	return &World{
		pool:     NewEntityPool(o.entityCapacity),
		registry: NewRegistry(o.storageCapacity),
		tags:     NewTagIndex(o.entityCapacity, o.log),
		debug:    o.debug,
		log:      o.log,
	}
}

func (w *World) Pool() *EntityPool   { return w.pool }
func (w *World) Registry() *Registry { return w.registry }
func (w *World) Tags() *TagIndex     { return w.tags }

func (w *World) mustNotIterate(op string) {
	if w.iterating > 0 {
		panic(fmt.Sprintf("ecs: %s during query iteration; queue it with Defer", op))
	}
}

// entityAt rebuilds the live handle for an id found in a dense array.
func (w *World) entityAt(id uint32) Entity {
	return newEntity(id, w.pool.Generation(id))
}

// Spawn allocates an entity and returns a builder for it.
func (w *World) Spawn() *EntityBuilder {
	w.mustNotIterate("Spawn")
	return &EntityBuilder{w: w, e: w.pool.Create()}
}

func (w *World) IsAlive(e Entity) bool {
	return w.pool.Alive(e)
}

// Destroy removes every component and tag of e and recycles its id.
// Returns false if e is not alive.
func (w *World) Destroy(e Entity) bool {
	if !w.pool.Alive(e) {
		return false
	}
	w.mustNotIterate("Destroy")
	w.registry.RemoveAll(e.ID())
	w.tags.Clear(e.ID())
	return w.pool.Destroy(e)
}

func (w *World) EntityCount() int { return w.pool.Len() }

// Entities returns every live entity in ascending id order.
func (w *World) Entities() []Entity {
	out := make([]Entity, 0, w.pool.Len())
	w.pool.Each(func(e Entity) { out = append(out, e) })
	return out
}

// InsertComponents inserts each component on e. Dead entities are ignored.
func (w *World) InsertComponents(e Entity, cs ...Component) {
	if !w.pool.Alive(e) {
		return
	}
	for _, c := range cs {
		if c == nil {
			panic("ecs: insert of a nil Component")
		}
		if w.iterating > 0 && !w.HasKey(e, c.Key()) {
			w.mustNotIterate("insert of " + c.Key().Name())
		}
		c.insertInto(w.registry, e.ID())
	}
}

// HasKey is the type-erased form of Has.
func (w *World) HasKey(e Entity, key TypeKey) bool {
	if !w.pool.Alive(e) {
		return false
	}
	s, ok := w.registry.Lookup(key)
	return ok && s.Contains(e.ID())
}

// RemoveKey is the type-erased form of Remove.
func (w *World) RemoveKey(e Entity, key TypeKey) bool {
	if !w.pool.Alive(e) {
		return false
	}
	s, ok := w.registry.Lookup(key)
	if !ok || !s.Contains(e.ID()) {
		return false
	}
	w.mustNotIterate("remove of " + key.Name())
	return s.Remove(e.ID())
}

// Insert sets component T on e, overwriting an existing value.
func Insert[T any](w *World, e Entity, v T) {
	w.InsertComponents(e, C(v))
}

// Get returns a pointer to e's T. The pointer is valid until the next
// structural change to T's storage.
func Get[T any](w *World, e Entity) (*T, bool) {
	if !w.pool.Alive(e) {
		return nil, false
	}
	s, ok := SetOf[T](w.registry)
	if !ok {
		return nil, false
	}
	return s.Get(e.ID())
}

func Has[T any](w *World, e Entity) bool {
	return w.HasKey(e, KeyOf[T]())
}

// Remove drops T from e and reports whether it was present.
func Remove[T any](w *World, e Entity) bool {
	return w.RemoveKey(e, KeyOf[T]())
}

// Tag sets name on e, registering the tag on first use. No-op for dead entities.
func (w *World) Tag(e Entity, name string) {
	if !w.pool.Alive(e) {
		return
	}
	w.tags.Set(e.ID(), w.tags.ID(name))
}

// Untag clears name from e. No-op for dead entities and unknown tags.
func (w *World) Untag(e Entity, name string) {
	if !w.pool.Alive(e) {
		return
	}
	if bit, ok := w.tags.Lookup(name); ok {
		w.tags.Unset(e.ID(), bit)
	}
}

func (w *World) HasTag(e Entity, name string) bool {
	return w.pool.Alive(e) && w.tags.Has(e.ID(), name)
}

// TagsOf returns e's tag names in registration order.
func (w *World) TagsOf(e Entity) []string {
	if !w.pool.Alive(e) {
		return nil
	}
	return w.tags.Names(w.tags.Mask(e.ID()))
}

// Flush applies the ops queued so far, in FIFO order, exactly once.
// Ops queued while Flush runs wait for the next call. Returns the number applied.
func (w *World) Flush() int {
	w.mustNotIterate("Flush")
	ops := w.deferred.take()
	n := len(ops)
	for i := range ops {
		ops[i].apply(w)
	}
	w.deferred.recycle(ops)
	if n > 0 {
		w.log.Debug("deferred ops applied",
			zap.Int("applied", n),
			zap.Int("pending", w.deferred.Len()),
		)
	}
	return n
}

// EntityBuilder accumulates components and tags on a freshly spawned entity.
type EntityBuilder struct {
	w *World
	e Entity
}

func (b *EntityBuilder) Insert(cs ...Component) *EntityBuilder {
	b.w.InsertComponents(b.e, cs...)
	return b
}

func (b *EntityBuilder) Tag(names ...string) *EntityBuilder {
	for _, n := range names {
		b.w.Tag(b.e, n)
	}
	return b
}

// ID finishes the builder and returns the entity.
func (b *EntityBuilder) ID() Entity { return b.e }
