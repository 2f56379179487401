package scripting

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/kon-engine/kon/internal/component"
	"github.com/kon-engine/kon/internal/core/ecs"
	"github.com/kon-engine/kon/internal/core/resource"
	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"
)

// Engine wraps a single gopher-lua VM with the "ecs" module bound to one World.
// Single-goroutine access only (game loop).
type Engine struct {
	vm    *lua.LState
	world *ecs.World
	reg   *component.Registry
	log   *zap.Logger
}

// NewEngine creates a Lua engine bound to the World installed in g and loads
// all scripts from the given directory: scriptsDir/core first, then the .lua
// files directly in scriptsDir.
func NewEngine(scriptsDir string, g *resource.Globals, reg *component.Registry, log *zap.Logger) (*Engine, error) {
	e := newEngine(ecs.FromGlobals(g), reg, log)

	if err := e.loadDir(filepath.Join(scriptsDir, "core")); err != nil {
		e.Close()
		return nil, fmt.Errorf("load core scripts: %w", err)
	}
	if err := e.loadDir(scriptsDir); err != nil {
		e.Close()
		return nil, fmt.Errorf("load scripts: %w", err)
	}
	return e, nil
}

func newEngine(world *ecs.World, reg *component.Registry, log *zap.Logger) *Engine {
	vm := lua.NewState()
	vm.SetGlobal("API_VERSION", lua.LNumber(1))
	e := &Engine{vm: vm, world: world, reg: reg, log: log}
	e.registerEntityType()
	vm.SetGlobal("ecs", vm.SetFuncs(vm.NewTable(), e.exports()))
	return e
}

func (e *Engine) Close() {
	e.vm.Close()
}

// loadDir loads all .lua files in a directory, in name order.
func (e *Engine) loadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // skip missing dirs
		}
		return err
	}
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".lua" {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if err := e.vm.DoFile(path); err != nil {
			return fmt.Errorf("load %s: %w", path, err)
		}
		e.log.Debug("loaded lua script", zap.String("file", path))
	}
	return nil
}

// DoString runs a chunk of Lua in the engine's VM.
func (e *Engine) DoString(src string) error {
	return e.vm.DoString(src)
}

// HasTickHook reports whether the scripts define on_tick.
func (e *Engine) HasTickHook() bool {
	return e.vm.GetGlobal("on_tick") != lua.LNil
}

// Tick calls the Lua on_tick(dt_seconds) function if one is defined.
// Script errors are logged, never propagated into the game loop.
func (e *Engine) Tick(dt time.Duration) {
	fn := e.vm.GetGlobal("on_tick")
	if fn == lua.LNil {
		return
	}
	if err := e.vm.CallByParam(lua.P{
		Fn:      fn,
		NRet:    0,
		Protect: true,
	}, lua.LNumber(dt.Seconds())); err != nil {
		e.log.Error("lua on_tick error", zap.Error(err))
	}
}
