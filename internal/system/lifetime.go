package system

import (
	"time"

	"github.com/kon-engine/kon/internal/component"
	"github.com/kon-engine/kon/internal/core/ecs"
	"github.com/kon-engine/kon/internal/core/resource"
	coresys "github.com/kon-engine/kon/internal/core/system"
)

// LifetimeSystem counts Lifetime down and queues a destroy when it hits zero.
// The destroy lands at this tick's cleanup. Phase 3 (PostUpdate).
type LifetimeSystem struct {
	world   *ecs.World
	expired int
}

func NewLifetimeSystem(g *resource.Globals) *LifetimeSystem {
	return &LifetimeSystem{world: ecs.FromGlobals(g)}
}

func (s *LifetimeSystem) Phase() coresys.Phase { return coresys.PhasePostUpdate }

func (s *LifetimeSystem) Update(_ time.Duration) {
	ecs.Select1[component.Lifetime](s.world).Each(func(e ecs.Entity, l *component.Lifetime) {
		if l.Ticks < 0 {
			return // already queued
		}
		if l.Ticks > 0 {
			l.Ticks--
		}
		if l.Ticks == 0 {
			s.world.DeferDestroy(e)
			s.expired++
			l.Ticks = -1
		}
	})
}

// Expired returns how many entities this system has queued for destruction.
func (s *LifetimeSystem) Expired() int { return s.expired }
