package ecs

import (
	"bytes"
	"strings"
	"testing"

	"github.com/kon-engine/kon/internal/textwidth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInspectTable(t *testing.T) {
	w := NewWorld(WithDebug(true))
	w.Spawn().Insert(C(Health{100}), C(Name("哥布林"))).Tag("npc")
	w.Spawn().Insert(C(Position{1, 2}))

	var buf bytes.Buffer
	w.Inspect(&buf)
	out := buf.String()

	assert.Contains(t, out, "World: 2 entities, 3 component types")
	assert.Contains(t, out, "Entity(0v0)")
	assert.Contains(t, out, "npc")
	assert.Contains(t, out, "{Value:100}")
	assert.Contains(t, out, "哥布林")
	assert.Contains(t, out, "{X:1 Y:2}")
}

func TestInspectDisabled(t *testing.T) {
	w := NewWorld()
	w.Spawn().Insert(C(Health{1}))

	var buf bytes.Buffer
	w.Inspect(&buf)
	w.DumpMemory(&buf)
	assert.Empty(t, buf.String())
}

func TestDumpMemoryStaysPacked(t *testing.T) {
	w := NewWorld(WithDebug(true))
	var ids []Entity
	for i := 0; i < 3; i++ {
		ids = append(ids, w.Spawn().Insert(C(Health{i})).ID())
	}
	w.Destroy(ids[1])

	var buf bytes.Buffer
	w.DumpMemory(&buf)
	out := buf.String()

	assert.Contains(t, out, "Health: len=2")
	assert.Contains(t, out, "[0] Entity(0v0)")
	assert.Contains(t, out, "[1] Entity(2v0)")
	assert.NotContains(t, out, "[2]")
}

func TestInspectAlignsWideNames(t *testing.T) {
	w := NewWorld(WithDebug(true))
	w.Spawn().Insert(C(Name("哥布林")))
	w.Spawn().Insert(C(Name("orc")))

	var buf bytes.Buffer
	w.Inspect(&buf)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")[1:]
	require.NotEmpty(t, lines)
	want := textwidth.Columns(lines[0])
	for _, l := range lines[1:] {
		assert.Equal(t, want, textwidth.Columns(l), l)
	}
}
