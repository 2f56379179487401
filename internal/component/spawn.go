package component

import (
	"fmt"

	"github.com/kon-engine/kon/internal/core/ecs"
	"github.com/kon-engine/kon/internal/data"
	"go.uber.org/zap"
)

// SpawnPrefab spawns p.Count entities from the template. Every component is
// decoded before the first spawn, so a bad prefab spawns nothing.
func SpawnPrefab(w *ecs.World, reg *Registry, p *data.Prefab) ([]ecs.Entity, error) {
	names := p.ComponentNames()
	comps := make([]ecs.Component, 0, len(names))
	for _, name := range names {
		b, ok := reg.Lookup(name)
		if !ok {
			return nil, fmt.Errorf("prefab %s: unknown component %q", p.Name, name)
		}
		c, err := b.Decode(p.Components[name])
		if err != nil {
			return nil, fmt.Errorf("prefab %s: %w", p.Name, err)
		}
		comps = append(comps, c)
	}

	out := make([]ecs.Entity, 0, p.Count)
	for i := 0; i < p.Count; i++ {
		e := w.Spawn().Insert(comps...).Tag(p.Tags...).ID()
		out = append(out, e)
	}
	return out, nil
}

// SpawnAll spawns every prefab of the table and returns the entity count.
func SpawnAll(w *ecs.World, reg *Registry, t *data.PrefabTable, log *zap.Logger) (int, error) {
	total := 0
	for _, p := range t.All() {
		p := p
		es, err := SpawnPrefab(w, reg, &p)
		if err != nil {
			return total, err
		}
		log.Debug("prefab spawned", zap.String("prefab", p.Name), zap.Int("count", len(es)))
		total += len(es)
	}
	return total, nil
}
