package system

import (
	"time"

	coresys "github.com/kon-engine/kon/internal/core/system"
	"github.com/kon-engine/kon/internal/scripting"
)

// ScriptSystem runs the Lua on_tick hook. Phase 0 (Input), so scripted
// changes are visible to the rest of the tick.
type ScriptSystem struct {
	engine *scripting.Engine
}

func NewScriptSystem(engine *scripting.Engine) *ScriptSystem {
	return &ScriptSystem{engine: engine}
}

func (s *ScriptSystem) Phase() coresys.Phase { return coresys.PhaseInput }

func (s *ScriptSystem) Update(dt time.Duration) {
	s.engine.Tick(dt)
}
