package component

import (
	"testing"

	"github.com/kon-engine/kon/internal/core/ecs"
	"github.com/kon-engine/kon/internal/data"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRegistryInsertAndEncode(t *testing.T) {
	reg := Defaults()
	w := ecs.NewWorld()
	e := w.Spawn().ID()

	require.NoError(t, reg.Insert(w, e, "health", data.Fields{"value": 40}))
	require.NoError(t, reg.Insert(w, e, "position", data.Fields{"x": 1.5, "y": 2}))

	h, ok := ecs.Get[Health](w, e)
	require.True(t, ok)
	assert.Equal(t, Health{Value: 40, Max: 40}, *h, "max defaults to value")

	b, ok := reg.Lookup("position")
	require.True(t, ok)
	f, ok := b.Encode(w, e)
	require.True(t, ok)
	assert.Equal(t, data.Fields{"x": 1.5, "y": 2.0}, f)

	b, _ = reg.Lookup("velocity")
	_, ok = b.Encode(w, e)
	assert.False(t, ok)
	assert.Equal(t, ecs.KeyOf[Velocity](), b.Key)
}

func TestRegistryDecodeErrors(t *testing.T) {
	reg := Defaults()
	w := ecs.NewWorld()
	e := w.Spawn().ID()

	assert.ErrorContains(t, reg.Insert(w, e, "mana", nil), "unknown component")
	assert.ErrorContains(t, reg.Insert(w, e, "health", data.Fields{"value": "lots"}), "want integer")
	assert.ErrorContains(t, reg.Insert(w, e, "health", data.Fields{"value": 1.5}), "want integer")
	assert.ErrorContains(t, reg.Insert(w, e, "name", data.Fields{}), "required")
	assert.ErrorContains(t, reg.Insert(w, e, "regen", data.Fields{"every": 0}), "at least 1")
	assert.ErrorContains(t, reg.Insert(w, e, "lifetime", data.Fields{"ticks": -1}), "must not be negative")
	assert.False(t, ecs.Has[Lifetime](w, e))
	require.NoError(t, reg.Insert(w, e, "lifetime", data.Fields{"ticks": 0}))
	assert.ErrorContains(t, reg.Insert(w, e, "position", data.Fields{"x": true}), "want number")
	assert.False(t, ecs.Has[Health](w, e))
}

func TestBindTwicePanics(t *testing.T) {
	reg := Defaults()
	assert.Panics(t, func() {
		Bind(reg, "health", func(data.Fields) (Health, error) { return Health{}, nil },
			func(Health) data.Fields { return nil })
	})
	assert.Equal(t, []string{"health", "lifetime", "name", "position", "regen", "velocity"}, reg.Names())
}

func TestSpawnPrefab(t *testing.T) {
	tbl, err := data.ParsePrefabTable([]byte(`
prefabs:
  - name: goblin
    count: 3
    tags: [npc, hostile]
    components:
      health: {value: 30}
      position: {x: 1, y: 2}
  - name: broken
    components:
      health: {value: 1}
      wings: {}
`))
	require.NoError(t, err)
	reg := Defaults()
	w := ecs.NewWorld()

	goblin, _ := tbl.Get("goblin")
	es, err := SpawnPrefab(w, reg, goblin)
	require.NoError(t, err)
	require.Len(t, es, 3)
	for _, e := range es {
		assert.True(t, w.HasTag(e, "hostile"))
		p, ok := ecs.Get[Position](w, e)
		require.True(t, ok)
		assert.Equal(t, Position{X: 1, Y: 2}, *p)
	}

	broken, _ := tbl.Get("broken")
	_, err = SpawnPrefab(w, reg, broken)
	assert.ErrorContains(t, err, `unknown component "wings"`)
	assert.Equal(t, 3, w.EntityCount(), "nothing spawned for a bad prefab")
}

func TestSpawnAll(t *testing.T) {
	tbl, err := data.ParsePrefabTable([]byte(`
prefabs:
  - name: a
    count: 2
    components:
      lifetime: {ticks: 5}
  - name: b
    tags: [solo]
`))
	require.NoError(t, err)
	w := ecs.NewWorld()

	n, err := SpawnAll(w, Defaults(), tbl, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, 2, ecs.Select1[Lifetime](w).Count())
}
