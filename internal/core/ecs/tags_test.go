package ecs

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestTagMask(t *testing.T) {
	var m TagMask
	m.set(3)
	m.set(100)
	assert.True(t, m.Has(3))
	assert.True(t, m.Has(100))
	assert.False(t, m.Has(64))

	var sub TagMask
	sub.set(100)
	assert.True(t, m.contains(sub))
	assert.True(t, m.intersects(sub))

	m.unset(100)
	assert.False(t, m.contains(sub))
	assert.False(t, m.IsZero())
	m.unset(3)
	assert.True(t, m.IsZero())
}

func TestTagIndexStableIDs(t *testing.T) {
	idx := NewTagIndex(0, zap.NewNop())
	a := idx.ID("npc")
	b := idx.ID("friendly")
	assert.Equal(t, 0, a)
	assert.Equal(t, 1, b)
	assert.Equal(t, a, idx.ID("npc"))

	_, ok := idx.Lookup("missing")
	assert.False(t, ok)
	assert.False(t, idx.Has(0, "missing"))
}

func TestTagIndexLimit(t *testing.T) {
	idx := NewTagIndex(0, zap.NewNop())
	for i := 0; i < MaxTags; i++ {
		idx.ID(fmt.Sprintf("tag%d", i))
	}
	assert.Equal(t, MaxTags, idx.Len())
	assert.NotPanics(t, func() { idx.ID("tag0") })
	assert.Panics(t, func() { idx.ID("one-too-many") })
}

func TestTagIndexNames(t *testing.T) {
	idx := NewTagIndex(0, zap.NewNop())
	idx.Set(2, idx.ID("a"))
	idx.Set(2, idx.ID("b"))
	idx.ID("c")

	assert.Equal(t, []string{"a", "b"}, idx.Names(idx.Mask(2)))
	idx.Clear(2)
	assert.Empty(t, idx.Names(idx.Mask(2)))
}
