package data

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// Fields holds the raw field values of one component as decoded from YAML.
type Fields map[string]any

// Prefab is a named entity template: components by binding name plus tags.
type Prefab struct {
	Name       string            `yaml:"name"`
	Count      int               `yaml:"count"` // entities spawned at boot, default 1
	Tags       []string          `yaml:"tags"`
	Components map[string]Fields `yaml:"components"`
}

// ComponentNames returns the component names in sorted order, so spawns
// register storages deterministically.
func (p *Prefab) ComponentNames() []string {
	names := make([]string, 0, len(p.Components))
	for name := range p.Components {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

type prefabListFile struct {
	Prefabs []Prefab `yaml:"prefabs"`
}

// PrefabTable holds all prefabs in file order, indexed by name.
type PrefabTable struct {
	prefabs []Prefab
	byName  map[string]int
}

func (t *PrefabTable) Get(name string) (*Prefab, bool) {
	i, ok := t.byName[name]
	if !ok {
		return nil, false
	}
	return &t.prefabs[i], true
}

// All returns the prefabs in file order.
func (t *PrefabTable) All() []Prefab {
	return t.prefabs
}

// Count returns the number of prefabs.
func (t *PrefabTable) Count() int {
	return len(t.prefabs)
}

// Total returns how many entities spawning every prefab would create.
func (t *PrefabTable) Total() int {
	n := 0
	for _, p := range t.prefabs {
		n += p.Count
	}
	return n
}

// LoadPrefabTable loads prefab templates from a YAML file.
func LoadPrefabTable(path string) (*PrefabTable, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read prefab_list: %w", err)
	}
	t, err := ParsePrefabTable(raw)
	if err != nil {
		return nil, fmt.Errorf("parse prefab_list: %w", err)
	}
	return t, nil
}

func ParsePrefabTable(raw []byte) (*PrefabTable, error) {
	var f prefabListFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, err
	}
	t := &PrefabTable{
		prefabs: f.Prefabs,
		byName:  make(map[string]int, len(f.Prefabs)),
	}
	for i := range t.prefabs {
		p := &t.prefabs[i]
		if p.Name == "" {
			return nil, fmt.Errorf("prefab #%d has no name", i)
		}
		if _, dup := t.byName[p.Name]; dup {
			return nil, fmt.Errorf("duplicate prefab %q", p.Name)
		}
		switch {
		case p.Count < 0:
			return nil, fmt.Errorf("prefab %q: negative count %d", p.Name, p.Count)
		case p.Count == 0:
			p.Count = 1
		}
		t.byName[p.Name] = i
	}
	return t, nil
}
