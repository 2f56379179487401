package ecs

// Match is a query over component keys known only at runtime, used by the
// scripting bindings. It yields entities, not component values.
type Match struct {
	w    *World
	keys []TypeKey
	filter
}

// Match starts a runtime query. At least one key is required; the first one
// drives iteration.
func (w *World) Match(keys ...TypeKey) *Match {
	if len(keys) == 0 {
		panic("ecs: Match needs at least one component key")
	}
	mustDistinct(keys...)
	return &Match{w: w, keys: keys}
}

func (m *Match) Tagged(names ...string) *Match {
	m.tagged = append(m.tagged, names...)
	return m
}

func (m *Match) NotTagged(names ...string) *Match {
	m.notTagged = append(m.notTagged, names...)
	return m
}

func (m *Match) With(keys ...TypeKey) *Match {
	m.with = append(m.with, keys...)
	return m
}

func (m *Match) Without(keys ...TypeKey) *Match {
	m.without = append(m.without, keys...)
	return m
}

func (m *Match) Each(fn func(Entity)) {
	rest := make([]Storage, 0, len(m.keys)-1)
	for _, k := range m.keys[1:] {
		s, ok := m.w.registry.Lookup(k)
		if !ok {
			return
		}
		rest = append(rest, s)
	}
	m.w.scan(m.keys[0], &m.filter, func(id uint32, e Entity) {
		for _, s := range rest {
			if !s.Contains(id) {
				return
			}
		}
		fn(e)
	})
}

func (m *Match) Count() int {
	n := 0
	m.Each(func(Entity) { n++ })
	return n
}

// Entities collects the matches so the caller may mutate the World afterwards.
func (m *Match) Entities() []Entity {
	var out []Entity
	m.Each(func(e Entity) { out = append(out, e) })
	return out
}
