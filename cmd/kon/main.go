package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/kon-engine/kon/internal/component"
	"github.com/kon-engine/kon/internal/config"
	"github.com/kon-engine/kon/internal/core/ecs"
	"github.com/kon-engine/kon/internal/core/resource"
	coresys "github.com/kon-engine/kon/internal/core/system"
	"github.com/kon-engine/kon/internal/data"
	"github.com/kon-engine/kon/internal/scripting"
	"github.com/kon-engine/kon/internal/system"
	"github.com/kon-engine/kon/internal/textwidth"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

// ── Startup display helpers ────────────────────────────────────────

func printBanner(name string) {
	fmt.Println()
	fmt.Println("\033[36;1m  ┌───────────────────────────────────────────┐\033[0m")
	fmt.Println("\033[36;1m  │\033[0m                kon  v0.1.0                \033[36;1m│\033[0m")
	fmt.Println("\033[36;1m  │\033[0m     entity-component runtime for Go       \033[36;1m│\033[0m")
	fmt.Println("\033[36;1m  └───────────────────────────────────────────┘\033[0m")
	fmt.Println()
	fmt.Printf("  \033[1mapp:\033[0m %s\n\n", name)
}

func printSection(title string) {
	lineLen := 46 - textwidth.Columns(title) - 1
	if lineLen < 3 {
		lineLen = 3
	}
	fmt.Printf("  \033[33m── %s %s\033[0m\n", title, strings.Repeat("─", lineLen))
}

func printStat(label string, count int) {
	numStr := fmt.Sprintf("%d", count)
	dotsLen := 42 - textwidth.Columns(label) - len(numStr)
	if dotsLen < 3 {
		dotsLen = 3
	}
	fmt.Printf("  %s \033[90m%s\033[0m \033[32m%s\033[0m\n", label, strings.Repeat("·", dotsLen), numStr)
}

func printOK(msg string) {
	fmt.Printf("  \033[32m✓\033[0m %s\n", msg)
}

func printReady(msg string) {
	fmt.Printf("  \033[32m▶\033[0m %s\n", msg)
}

// ── Main loop ─────────────────────────────────────────────────────

func run() error {
	// 1. Load config
	cfgPath := "config/kon.toml"
	if p := os.Getenv("KON_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// 2. Init logger
	log, err := newLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	printBanner(cfg.App.Name)

	// 3. World and host globals
	printSection("world")
	// Everything below reaches the World through globals.
	globals := resource.NewGlobals()
	ecs.Install(globals, ecs.NewWorld(
		ecs.WithLogger(log.Named("ecs")),
		ecs.WithCapacity(cfg.World.EntityCapacity, cfg.World.StorageCapacity),
		ecs.WithDebug(cfg.Debug.Inspect || cfg.Debug.MemoryDump),
	))
	bindings := component.Defaults()
	printStat("component bindings", len(bindings.Names()))
	fmt.Println()

	// 4. Prefabs
	if cfg.Data.Prefabs != "" {
		printSection("prefabs")
		table, err := data.LoadPrefabTable(cfg.Data.Prefabs)
		if err != nil {
			return fmt.Errorf("load prefabs: %w", err)
		}
		n, err := component.SpawnAll(ecs.FromGlobals(globals), bindings, table, log)
		if err != nil {
			return fmt.Errorf("spawn prefabs: %w", err)
		}
		printStat("prefabs", table.Count())
		printStat("entities spawned", n)
		fmt.Println()
	}

	// 5. Systems
	runner := coresys.NewRunner()
	if cfg.Scripting.Enabled {
		printSection("scripting")
		engine, err := scripting.NewEngine(cfg.Scripting.Dir, globals, bindings, log.Named("lua"))
		if err != nil {
			return fmt.Errorf("scripting: %w", err)
		}
		defer engine.Close()
		if engine.HasTickHook() {
			runner.Register(system.NewScriptSystem(engine))
			printOK("on_tick hook registered")
		} else {
			printOK("scripts loaded, no on_tick hook")
		}
		fmt.Println()
	}
	runner.Register(system.NewMovementSystem(globals))
	lifetime := system.NewLifetimeSystem(globals)
	runner.Register(lifetime)
	runner.Register(system.NewRegenSystem(globals))
	flush := system.NewFlushSystem(globals, log)
	runner.Register(flush)

	// 6. Start loop
	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)

	ticker := time.NewTicker(cfg.App.TickRate)
	defer ticker.Stop()

	printSection("running")
	printStat("systems", runner.Len())
	printReady(fmt.Sprintf("loop started (tick: %s)", cfg.App.TickRate))
	fmt.Println()

loop:
	for {
		select {
		case <-ticker.C:
			runner.Tick(cfg.App.TickRate)
			if cfg.App.MaxTicks > 0 && runner.Ticks() >= cfg.App.MaxTicks {
				log.Info("tick limit reached", zap.Uint64("ticks", runner.Ticks()))
				break loop
			}
		case sig := <-shutdownCh:
			log.Info("shutdown signal", zap.String("signal", sig.String()))
			break loop
		}
	}

	world := ecs.FromGlobals(globals)
	log.Info("stopped",
		zap.Uint64("ticks", runner.Ticks()),
		zap.Int("entities", world.EntityCount()),
		zap.Int("expired", lifetime.Expired()),
		zap.Int("deferred_applied", flush.Applied()),
	)
	if cfg.Debug.Inspect {
		world.Inspect(os.Stdout)
	}
	if cfg.Debug.MemoryDump {
		world.DumpMemory(os.Stdout)
	}
	return nil
}

func newLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}
