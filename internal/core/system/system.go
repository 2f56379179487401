package system

import "time"

// Phase defines execution ordering within a single tick.
type Phase int

const (
	PhaseInput      Phase = iota // 0: scripts and external commands
	PhasePreUpdate               // 1: per-tick bookkeeping
	PhaseUpdate                  // 2: game logic
	PhasePostUpdate              // 3: regen, lifetimes
	PhaseCleanup                 // 4: apply deferred world mutations
)

var phaseNames = [...]string{"input", "pre_update", "update", "post_update", "cleanup"}

func (p Phase) String() string {
	if p >= 0 && int(p) < len(phaseNames) {
		return phaseNames[p]
	}
	return "unknown"
}

// System is the interface every ECS system implements.
type System interface {
	Phase() Phase
	Update(dt time.Duration)
}
