package resource

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type clock struct{ ticks int }

func TestGlobalsRegisterGet(t *testing.T) {
	g := NewGlobals()
	_, ok := Get[clock](g)
	assert.False(t, ok)
	assert.False(t, Contains[clock](g))

	c := &clock{ticks: 3}
	Register(g, c)

	got, ok := Get[clock](g)
	require.True(t, ok)
	assert.Same(t, c, got)

	got.ticks++
	assert.Equal(t, 4, MustGet[clock](g, "unused").ticks)
}

func TestGlobalsRemove(t *testing.T) {
	g := NewGlobals()
	Register(g, &clock{})

	_, ok := Remove[clock](g)
	assert.True(t, ok)
	_, ok = Remove[clock](g)
	assert.False(t, ok)
}

func TestMustGetPanics(t *testing.T) {
	g := NewGlobals()
	assert.PanicsWithValue(t, "resource: resource.clock is not registered: register a clock",
		func() { MustGet[clock](g, "register a clock") })
}
