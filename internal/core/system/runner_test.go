package system

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type recorder struct {
	name  string
	phase Phase
	log   *[]string
}

func (r recorder) Phase() Phase { return r.phase }

func (r recorder) Update(time.Duration) { *r.log = append(*r.log, r.name) }

func TestRunnerPhaseOrder(t *testing.T) {
	var log []string
	r := NewRunner()
	r.Register(recorder{"flush", PhaseCleanup, &log})
	r.Register(recorder{"move", PhaseUpdate, &log})
	r.Register(recorder{"script", PhaseInput, &log})
	r.Register(recorder{"ai", PhaseUpdate, &log})

	r.Tick(time.Millisecond)

	assert.Equal(t, []string{"script", "move", "ai", "flush"}, log)
	assert.Equal(t, uint64(1), r.Ticks())
	assert.Equal(t, 4, r.Len())
}

func TestRunnerTickPhase(t *testing.T) {
	var log []string
	r := NewRunner()
	r.Register(recorder{"a", PhaseUpdate, &log})
	r.Register(recorder{"b", PhaseInput, &log})

	r.TickPhase(PhaseInput, time.Millisecond)

	assert.Equal(t, []string{"b"}, log)
	assert.Zero(t, r.Ticks())
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "cleanup", PhaseCleanup.String())
	assert.Equal(t, "unknown", Phase(42).String())
}
