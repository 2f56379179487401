package system

import (
	"time"

	"github.com/kon-engine/kon/internal/component"
	"github.com/kon-engine/kon/internal/core/ecs"
	"github.com/kon-engine/kon/internal/core/resource"
	coresys "github.com/kon-engine/kon/internal/core/system"
)

// RegenSystem heals Regen.Amount every Regen.Every ticks, capped at Health.Max.
// Entities tagged "dead" do not regenerate. Phase 3 (PostUpdate).
type RegenSystem struct {
	world *ecs.World
}

func NewRegenSystem(g *resource.Globals) *RegenSystem {
	return &RegenSystem{world: ecs.FromGlobals(g)}
}

func (s *RegenSystem) Phase() coresys.Phase { return coresys.PhasePostUpdate }

func (s *RegenSystem) Update(_ time.Duration) {
	ecs.Select2[component.Regen, component.Health](s.world).
		NotTagged("dead").
		Each(func(_ ecs.Entity, r *component.Regen, h *component.Health) {
			if h.Value <= 0 || h.Value >= h.Max {
				r.Elapsed = 0
				return
			}
			r.Elapsed++
			if r.Elapsed < r.Every {
				return
			}
			r.Elapsed = 0
			h.Value += r.Amount
			if h.Value > h.Max {
				h.Value = h.Max
			}
		})
}
