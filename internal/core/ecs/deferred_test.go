package ecs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeferredOrdering(t *testing.T) {
	w := NewWorld()
	var order []int
	for i := 1; i <= 5; i++ {
		i := i
		w.Defer(func(*World) { order = append(order, i) })
	}
	require.Equal(t, 5, w.PendingOps())

	assert.Equal(t, 5, w.Flush())
	assert.Equal(t, []int{1, 2, 3, 4, 5}, order)
	assert.Zero(t, w.PendingOps())

	assert.Zero(t, w.Flush(), "ops run exactly once")
	assert.Equal(t, []int{1, 2, 3, 4, 5}, order)
}

func TestDeferredSinglePass(t *testing.T) {
	w := NewWorld()
	runs := 0
	var requeue func(*World)
	requeue = func(w *World) {
		runs++
		w.Defer(requeue)
	}
	w.Defer(requeue)

	assert.Equal(t, 1, w.Flush())
	assert.Equal(t, 1, runs)
	assert.Equal(t, 1, w.PendingOps(), "op queued during flush waits for the next one")

	assert.Equal(t, 1, w.Flush())
	assert.Equal(t, 2, runs)
}

func TestDeferredCommands(t *testing.T) {
	w := NewWorld()
	e := w.Spawn().Insert(C(Health{10}), C(Position{})).ID()
	doomed := w.Spawn().ID()

	DeferInsert(w, e, Velocity{1, 1})
	DeferRemove[Position](w, e)
	w.DeferTag(e, "moving")
	w.DeferTag(e, "temp")
	w.DeferUntag(e, "temp")
	w.DeferDestroy(doomed)
	w.DeferSpawn(func(b *EntityBuilder) {
		b.Insert(C(Health{99})).Tag("spawned")
	})

	// nothing applied yet
	assert.False(t, Has[Velocity](w, e))
	assert.True(t, w.IsAlive(doomed))
	assert.Equal(t, 7, w.PendingOps())

	require.Equal(t, 7, w.Flush())

	assert.True(t, Has[Velocity](w, e))
	assert.False(t, Has[Position](w, e))
	assert.True(t, w.HasTag(e, "moving"))
	assert.False(t, w.HasTag(e, "temp"))
	assert.False(t, w.IsAlive(doomed))

	spawned := Select1[Health](w).Tagged("spawned").Entities()
	require.Len(t, spawned, 1)
	h, _ := Get[Health](w, spawned[0])
	assert.Equal(t, 99, h.Value)
}

func TestDeferredOnDestroyedEntity(t *testing.T) {
	w := NewWorld()
	e := w.Spawn().ID()
	w.DeferDestroy(e)
	DeferInsert(w, e, Health{1})
	w.DeferDestroy(e)

	assert.NotPanics(t, func() { w.Flush() })
	assert.False(t, w.IsAlive(e))
	assert.Zero(t, Select1[Health](w).Count())
}

func TestEnqueueOp(t *testing.T) {
	w := NewWorld()
	e := w.Spawn().ID()
	w.Enqueue(Op{Kind: OpInsert, Entity: e, Component: C(Name("bob"))})
	w.Enqueue(Op{Kind: OpFunc}) // nil Func is ignored
	w.Flush()

	n, ok := Get[Name](w, e)
	require.True(t, ok)
	assert.Equal(t, Name("bob"), *n)
	assert.Equal(t, "insert", OpInsert.String())
	assert.Equal(t, "unknown", OpKind(200).String())
}

func TestEnqueueRejectsMalformedOps(t *testing.T) {
	w := NewWorld()
	e := w.Spawn().ID()
	w.Enqueue(Op{Kind: OpTag, Entity: e, Tag: "first"})

	assert.PanicsWithValue(t, "ecs: OpInsert needs a Component", func() {
		w.Enqueue(Op{Kind: OpInsert, Entity: e})
	})
	assert.Panics(t, func() { w.Enqueue(Op{Kind: OpKind(99)}) })
	w.Enqueue(Op{Kind: OpTag, Entity: e, Tag: "second"})

	assert.Equal(t, 2, w.Flush())
	assert.True(t, w.HasTag(e, "first"))
	assert.True(t, w.HasTag(e, "second"))
	assert.Zero(t, w.PendingOps())
}

func TestInsertNilComponentPanics(t *testing.T) {
	w := NewWorld()
	e := w.Spawn().ID()
	assert.PanicsWithValue(t, "ecs: insert of a nil Component", func() {
		w.InsertComponents(e, nil)
	})
}
