package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	App       AppConfig       `toml:"app"`
	World     WorldConfig     `toml:"world"`
	Data      DataConfig      `toml:"data"`
	Scripting ScriptingConfig `toml:"scripting"`
	Debug     DebugConfig     `toml:"debug"`
	Logging   LoggingConfig   `toml:"logging"`
}

type AppConfig struct {
	Name     string        `toml:"name"`
	TickRate time.Duration `toml:"tick_rate"`
	MaxTicks uint64        `toml:"max_ticks"` // 0 = run until SIGINT/SIGTERM
}

type WorldConfig struct {
	EntityCapacity  int `toml:"entity_capacity"`
	StorageCapacity int `toml:"storage_capacity"` // initial dense capacity per component type
}

type DataConfig struct {
	Prefabs string `toml:"prefabs"` // YAML prefab list, empty = none
}

type ScriptingConfig struct {
	Enabled bool   `toml:"enabled"`
	Dir     string `toml:"dir"`
}

type DebugConfig struct {
	Inspect    bool `toml:"inspect"`     // print the entity table on shutdown
	MemoryDump bool `toml:"memory_dump"` // print dense array layout on shutdown
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := defaults()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Default returns the built-in configuration, used when no file is given.
func Default() *Config {
	return defaults()
}

func (c *Config) validate() error {
	if c.App.TickRate <= 0 {
		return fmt.Errorf("app.tick_rate must be positive, got %s", c.App.TickRate)
	}
	if c.World.EntityCapacity < 0 || c.World.StorageCapacity < 0 {
		return fmt.Errorf("world capacities must not be negative")
	}
	if c.Scripting.Enabled && c.Scripting.Dir == "" {
		return fmt.Errorf("scripting.dir is required when scripting is enabled")
	}
	return nil
}

func defaults() *Config {
	return &Config{
		App: AppConfig{
			Name:     "kon",
			TickRate: 50 * time.Millisecond,
		},
		World: WorldConfig{
			EntityCapacity:  1024,
			StorageCapacity: 256,
		},
		Data: DataConfig{
			Prefabs: "data/yaml/prefab_list.yaml",
		},
		Scripting: ScriptingConfig{
			Enabled: true,
			Dir:     "scripts",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
