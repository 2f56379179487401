package system

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/kon-engine/kon/internal/component"
	"github.com/kon-engine/kon/internal/core/ecs"
	"github.com/kon-engine/kon/internal/core/resource"
	coresys "github.com/kon-engine/kon/internal/core/system"
	"github.com/kon-engine/kon/internal/scripting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const tick = 50 * time.Millisecond

func newWorld() (*ecs.World, *resource.Globals) {
	w := ecs.NewWorld()
	g := resource.NewGlobals()
	ecs.Install(g, w)
	return w, g
}

func TestMovementSkipsFrozen(t *testing.T) {
	w, g := newWorld()
	moving := w.Spawn().Insert(
		ecs.C(component.Position{X: 1, Y: 1}),
		ecs.C(component.Velocity{X: 2, Y: -1}),
	).ID()
	frozen := w.Spawn().Insert(
		ecs.C(component.Position{X: 5, Y: 5}),
		ecs.C(component.Velocity{X: 1, Y: 1}),
	).Tag("frozen").ID()
	still := w.Spawn().Insert(ecs.C(component.Position{X: 9})).ID()

	s := NewMovementSystem(g)
	s.Update(tick)
	s.Update(tick)

	p, _ := ecs.Get[component.Position](w, moving)
	assert.Equal(t, component.Position{X: 5, Y: -1}, *p)
	p, _ = ecs.Get[component.Position](w, frozen)
	assert.Equal(t, component.Position{X: 5, Y: 5}, *p)
	p, _ = ecs.Get[component.Position](w, still)
	assert.Equal(t, component.Position{X: 9}, *p)
}

func TestLifetimeDestroysAtCleanup(t *testing.T) {
	w, g := newWorld()
	e := w.Spawn().Insert(ecs.C(component.Lifetime{Ticks: 2})).ID()

	life := NewLifetimeSystem(g)
	flush := NewFlushSystem(g, zap.NewNop())
	r := coresys.NewRunner()
	r.Register(flush)
	r.Register(life)

	r.Tick(tick)
	assert.True(t, w.IsAlive(e))
	r.Tick(tick)
	assert.False(t, w.IsAlive(e))
	assert.Equal(t, 1, life.Expired())
	assert.Equal(t, 1, flush.Applied())

	r.Tick(tick)
	assert.Equal(t, 1, life.Expired())
}

func TestLifetimeQueuesOnce(t *testing.T) {
	w, g := newWorld()
	w.Spawn().Insert(ecs.C(component.Lifetime{Ticks: 1}))

	life := NewLifetimeSystem(g)
	life.Update(tick)
	life.Update(tick)

	assert.Equal(t, 1, life.Expired())
	assert.Equal(t, 1, w.PendingOps())
}

func TestRegenHealsUpToMax(t *testing.T) {
	w, g := newWorld()
	e := w.Spawn().Insert(
		ecs.C(component.Health{Value: 5, Max: 10}),
		ecs.C(component.Regen{Amount: 3, Every: 2}),
	).ID()

	s := NewRegenSystem(g)
	s.Update(tick)
	h, _ := ecs.Get[component.Health](w, e)
	assert.Equal(t, 5, h.Value)

	s.Update(tick)
	assert.Equal(t, 8, h.Value)

	s.Update(tick)
	s.Update(tick)
	assert.Equal(t, 10, h.Value)
}

func TestRegenSkipsDead(t *testing.T) {
	w, g := newWorld()
	tagged := w.Spawn().Insert(
		ecs.C(component.Health{Value: 1, Max: 10}),
		ecs.C(component.Regen{Amount: 1, Every: 1}),
	).Tag("dead").ID()
	zero := w.Spawn().Insert(
		ecs.C(component.Health{Value: 0, Max: 10}),
		ecs.C(component.Regen{Amount: 1, Every: 1}),
	).ID()

	NewRegenSystem(g).Update(tick)

	h, _ := ecs.Get[component.Health](w, tagged)
	assert.Equal(t, 1, h.Value)
	h, _ = ecs.Get[component.Health](w, zero)
	assert.Equal(t, 0, h.Value)
}

func TestFlushAppliesQueuedSpawns(t *testing.T) {
	w, g := newWorld()
	w.DeferSpawn(func(b *ecs.EntityBuilder) {
		b.Insert(ecs.C(component.Name{Value: "late"}))
	})
	require.Equal(t, 0, w.EntityCount())

	f := NewFlushSystem(g, zap.NewNop())
	f.Update(tick)

	assert.Equal(t, 1, w.EntityCount())
	assert.Equal(t, 1, f.Applied())
	assert.Equal(t, coresys.PhaseCleanup, f.Phase())
}

func TestScriptSystemRunsBeforeFlush(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "spawn.lua"), []byte(`
		function on_tick(dt)
			local e = ecs.spawn("scripted")
			ecs.insert(e, "lifetime", {ticks = 1})
		end
	`), 0o644))

	w, g := newWorld()
	engine, err := scripting.NewEngine(dir, g, component.Defaults(), zap.NewNop())
	require.NoError(t, err)
	defer engine.Close()

	r := coresys.NewRunner()
	r.Register(NewFlushSystem(g, zap.NewNop()))
	r.Register(NewLifetimeSystem(g))
	r.Register(NewScriptSystem(engine))

	r.Tick(tick)
	assert.Equal(t, 0, w.EntityCount())
	r.Tick(tick)
	assert.Equal(t, 0, w.EntityCount())
	assert.Equal(t, uint64(2), r.Ticks())
}

func TestSystemsNeedInstalledWorld(t *testing.T) {
	g := resource.NewGlobals()
	assert.PanicsWithValue(t,
		"resource: ecs.World is not registered: call ecs.Install during startup before running systems",
		func() { NewMovementSystem(g) })
}
