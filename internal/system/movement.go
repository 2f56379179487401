package system

import (
	"time"

	"github.com/kon-engine/kon/internal/component"
	"github.com/kon-engine/kon/internal/core/ecs"
	"github.com/kon-engine/kon/internal/core/resource"
	coresys "github.com/kon-engine/kon/internal/core/system"
)

// MovementSystem adds Velocity to Position every tick.
// Entities tagged "frozen" stay put. Phase 2 (Update).
type MovementSystem struct {
	world *ecs.World
}

func NewMovementSystem(g *resource.Globals) *MovementSystem {
	return &MovementSystem{world: ecs.FromGlobals(g)}
}

func (s *MovementSystem) Phase() coresys.Phase { return coresys.PhaseUpdate }

func (s *MovementSystem) Update(_ time.Duration) {
	ecs.Select2[component.Position, component.Velocity](s.world).
		NotTagged("frozen").
		Each(func(_ ecs.Entity, p *component.Position, v *component.Velocity) {
			p.X += v.X
			p.Y += v.Y
		})
}
