package system

import (
	"time"

	"github.com/kon-engine/kon/internal/core/ecs"
	"github.com/kon-engine/kon/internal/core/resource"
	coresys "github.com/kon-engine/kon/internal/core/system"
	"go.uber.org/zap"
)

// FlushSystem applies the World's deferred mutations once per tick.
// Phase 4 (Cleanup), after every system that may queue work.
type FlushSystem struct {
	world   *ecs.World
	log     *zap.Logger
	applied int
}

func NewFlushSystem(g *resource.Globals, log *zap.Logger) *FlushSystem {
	return &FlushSystem{world: ecs.FromGlobals(g), log: log}
}

func (s *FlushSystem) Phase() coresys.Phase { return coresys.PhaseCleanup }

func (s *FlushSystem) Update(_ time.Duration) {
	n := s.world.Flush()
	s.applied += n
	if pending := s.world.PendingOps(); pending > 0 {
		s.log.Debug("deferred ops carried to next tick", zap.Int("pending", pending))
	}
}

// Applied returns the total number of ops applied so far.
func (s *FlushSystem) Applied() int { return s.applied }
