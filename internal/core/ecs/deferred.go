package ecs

import "fmt"

// OpKind names the mutation a deferred Op performs.
type OpKind uint8

const (
	OpFunc OpKind = iota
	OpSpawn
	OpDestroy
	OpInsert
	OpRemove
	OpTag
	OpUntag
)

var opNames = [...]string{"func", "spawn", "destroy", "insert", "remove", "tag", "untag"}

func (k OpKind) String() string {
	if int(k) < len(opNames) {
		return opNames[k]
	}
	return "unknown"
}

// Op is one queued mutation. Only the fields relevant to Kind are set.
type Op struct {
	Kind      OpKind
	Entity    Entity
	Tag       string
	Component Component            // OpInsert
	Key       TypeKey              // OpRemove
	Build     func(*EntityBuilder) // OpSpawn, optional
	Func      func(*World)         // OpFunc
}

func (op *Op) apply(w *World) {
	switch op.Kind {
	case OpFunc:
		if op.Func != nil {
			op.Func(w)
		}
	case OpSpawn:
		b := w.Spawn()
		if op.Build != nil {
			op.Build(b)
		}
	case OpDestroy:
		w.Destroy(op.Entity)
	case OpInsert:
		w.InsertComponents(op.Entity, op.Component)
	case OpRemove:
		w.RemoveKey(op.Entity, op.Key)
	case OpTag:
		w.Tag(op.Entity, op.Tag)
	case OpUntag:
		w.Untag(op.Entity, op.Tag)
	}
}

// CommandQueue is a double-buffered FIFO of Ops. take hands out the
// current buffer and starts a fresh one, so ops pushed while a batch is
// being applied land in the next batch.
type CommandQueue struct {
	pending []Op
	spare   []Op
}

func (q *CommandQueue) Push(op Op) {
	q.pending = append(q.pending, op)
}

func (q *CommandQueue) Len() int { return len(q.pending) }

func (q *CommandQueue) take() []Op {
	ops := q.pending
	q.pending = q.spare[:0]
	q.spare = nil
	return ops
}

func (q *CommandQueue) recycle(ops []Op) {
	for i := range ops {
		ops[i] = Op{}
	}
	q.spare = ops[:0]
}

// Enqueue queues an arbitrary Op for the next Flush. Malformed ops panic
// here, before they can abort a Flush halfway through a batch.
func (w *World) Enqueue(op Op) {
	if int(op.Kind) >= len(opNames) {
		panic(fmt.Sprintf("ecs: cannot enqueue op of kind %d", op.Kind))
	}
	if op.Kind == OpInsert && op.Component == nil {
		panic("ecs: OpInsert needs a Component")
	}
	w.deferred.Push(op)
}

// Defer queues fn to run with exclusive World access at the next Flush.
func (w *World) Defer(fn func(*World)) {
	w.deferred.Push(Op{Kind: OpFunc, Func: fn})
}

// DeferSpawn queues a spawn; build may add components and tags.
func (w *World) DeferSpawn(build func(*EntityBuilder)) {
	w.deferred.Push(Op{Kind: OpSpawn, Build: build})
}

func (w *World) DeferDestroy(e Entity) {
	w.deferred.Push(Op{Kind: OpDestroy, Entity: e})
}

func (w *World) DeferTag(e Entity, name string) {
	w.deferred.Push(Op{Kind: OpTag, Entity: e, Tag: name})
}

func (w *World) DeferUntag(e Entity, name string) {
	w.deferred.Push(Op{Kind: OpUntag, Entity: e, Tag: name})
}

// DeferInsert queues an insert of v on e.
func DeferInsert[T any](w *World, e Entity, v T) {
	w.deferred.Push(Op{Kind: OpInsert, Entity: e, Component: C(v)})
}

// DeferRemove queues removal of component T from e.
func DeferRemove[T any](w *World, e Entity) {
	w.deferred.Push(Op{Kind: OpRemove, Entity: e, Key: KeyOf[T]()})
}

// PendingOps returns the number of ops waiting for Flush.
func (w *World) PendingOps() int { return w.deferred.Len() }
