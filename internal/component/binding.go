package component

import (
	"fmt"
	"sort"

	"github.com/kon-engine/kon/internal/core/ecs"
	"github.com/kon-engine/kon/internal/data"
)

// Binding maps a component type to the name used in prefab files and Lua.
type Binding struct {
	Name   string
	Key    ecs.TypeKey
	decode func(data.Fields) (ecs.Component, error)
	encode func(w *ecs.World, e ecs.Entity) (data.Fields, bool)
}

// Decode builds a component value from raw fields.
func (b *Binding) Decode(f data.Fields) (ecs.Component, error) {
	c, err := b.decode(f)
	if err != nil {
		return nil, fmt.Errorf("component %s: %w", b.Name, err)
	}
	return c, nil
}

// Encode reads e's component back into fields.
func (b *Binding) Encode(w *ecs.World, e ecs.Entity) (data.Fields, bool) {
	return b.encode(w, e)
}

// Registry holds bindings by name.
type Registry struct {
	byName map[string]*Binding
}

func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]*Binding)}
}

// Bind registers T under name. Binding the same name twice panics.
func Bind[T any](r *Registry, name string, decode func(data.Fields) (T, error), encode func(T) data.Fields) {
	if _, dup := r.byName[name]; dup {
		panic(fmt.Sprintf("component: binding %q registered twice", name))
	}
	r.byName[name] = &Binding{
		Name: name,
		Key:  ecs.KeyOf[T](),
		decode: func(f data.Fields) (ecs.Component, error) {
			v, err := decode(f)
			if err != nil {
				return nil, err
			}
			return ecs.C(v), nil
		},
		encode: func(w *ecs.World, e ecs.Entity) (data.Fields, bool) {
			v, ok := ecs.Get[T](w, e)
			if !ok {
				return nil, false
			}
			return encode(*v), true
		},
	}
}

func (r *Registry) Lookup(name string) (*Binding, bool) {
	b, ok := r.byName[name]
	return b, ok
}

// Names returns the bound names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.byName))
	for n := range r.byName {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Insert decodes fields and inserts the component on e.
func (r *Registry) Insert(w *ecs.World, e ecs.Entity, name string, f data.Fields) error {
	b, ok := r.byName[name]
	if !ok {
		return fmt.Errorf("unknown component %q", name)
	}
	c, err := b.Decode(f)
	if err != nil {
		return err
	}
	w.InsertComponents(e, c)
	return nil
}

// Defaults returns a registry with every built-in component bound.
func Defaults() *Registry {
	r := NewRegistry()
	Bind(r, "position", func(f data.Fields) (Position, error) {
		x, err := floatField(f, "x", 0)
		if err != nil {
			return Position{}, err
		}
		y, err := floatField(f, "y", 0)
		return Position{X: x, Y: y}, err
	}, func(p Position) data.Fields {
		return data.Fields{"x": p.X, "y": p.Y}
	})
	Bind(r, "velocity", func(f data.Fields) (Velocity, error) {
		x, err := floatField(f, "x", 0)
		if err != nil {
			return Velocity{}, err
		}
		y, err := floatField(f, "y", 0)
		return Velocity{X: x, Y: y}, err
	}, func(v Velocity) data.Fields {
		return data.Fields{"x": v.X, "y": v.Y}
	})
	Bind(r, "health", func(f data.Fields) (Health, error) {
		v, err := intField(f, "value", 0)
		if err != nil {
			return Health{}, err
		}
		m, err := intField(f, "max", v)
		return Health{Value: v, Max: m}, err
	}, func(h Health) data.Fields {
		return data.Fields{"value": h.Value, "max": h.Max}
	})
	Bind(r, "name", func(f data.Fields) (Name, error) {
		s, err := stringField(f, "value")
		return Name{Value: s}, err
	}, func(n Name) data.Fields {
		return data.Fields{"value": n.Value}
	})
	Bind(r, "regen", func(f data.Fields) (Regen, error) {
		a, err := intField(f, "amount", 1)
		if err != nil {
			return Regen{}, err
		}
		every, err := intField(f, "every", 1)
		if err == nil && every < 1 {
			err = fmt.Errorf("field every must be at least 1, got %d", every)
		}
		return Regen{Amount: a, Every: every}, err
	}, func(g Regen) data.Fields {
		return data.Fields{"amount": g.Amount, "every": g.Every}
	})
	Bind(r, "lifetime", func(f data.Fields) (Lifetime, error) {
		n, err := intField(f, "ticks", 1)
		if err == nil && n < 0 {
			err = fmt.Errorf("field ticks must not be negative, got %d", n)
		}
		return Lifetime{Ticks: n}, err
	}, func(l Lifetime) data.Fields {
		return data.Fields{"ticks": l.Ticks}
	})
	return r
}

func floatField(f data.Fields, key string, def float64) (float64, error) {
	raw, ok := f[key]
	if !ok {
		return def, nil
	}
	switch v := raw.(type) {
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case float64:
		return v, nil
	}
	return 0, fmt.Errorf("field %s: want number, got %T", key, raw)
}

func intField(f data.Fields, key string, def int) (int, error) {
	raw, ok := f[key]
	if !ok {
		return def, nil
	}
	switch v := raw.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case float64:
		if v != float64(int(v)) {
			return 0, fmt.Errorf("field %s: want integer, got %v", key, v)
		}
		return int(v), nil
	}
	return 0, fmt.Errorf("field %s: want integer, got %T", key, raw)
}

func stringField(f data.Fields, key string) (string, error) {
	raw, ok := f[key]
	if !ok {
		return "", fmt.Errorf("field %s is required", key)
	}
	s, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("field %s: want string, got %T", key, raw)
	}
	return s, nil
}
