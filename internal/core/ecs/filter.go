package ecs

import "fmt"

// filter accumulates the tag and presence constraints of a query builder.
// Names and keys are resolved when the query runs, not when it is built.
type filter struct {
	tagged    []string
	notTagged []string
	with      []TypeKey
	without   []TypeKey
}

type compiledFilter struct {
	required TagMask
	excluded TagMask
	with     []Storage
	without  []Storage
}

// compile resolves f against w. ok is false when no entity can match,
// e.g. a required tag or component that was never registered.
func (f *filter) compile(w *World) (c compiledFilter, ok bool) {
	for _, name := range f.tagged {
		bit, found := w.tags.Lookup(name)
		if !found {
			return c, false
		}
		c.required.set(bit)
	}
	for _, name := range f.notTagged {
		if bit, found := w.tags.Lookup(name); found {
			c.excluded.set(bit)
		}
	}
	for _, k := range f.with {
		s, found := w.registry.Lookup(k)
		if !found {
			return c, false
		}
		c.with = append(c.with, s)
	}
	for _, k := range f.without {
		if s, found := w.registry.Lookup(k); found {
			c.without = append(c.without, s)
		}
	}
	return c, true
}

func (c *compiledFilter) match(w *World, id uint32) bool {
	mask := w.tags.Mask(id)
	if !mask.contains(c.required) || mask.intersects(c.excluded) {
		return false
	}
	for _, s := range c.with {
		if !s.Contains(id) {
			return false
		}
	}
	for _, s := range c.without {
		if s.Contains(id) {
			return false
		}
	}
	return true
}

// scan walks the dense ids of the driving storage and calls visit for every
// entity that passes f. Structural changes panic until scan returns.
func (w *World) scan(drive TypeKey, f *filter, visit func(id uint32, e Entity)) {
	s, ok := w.registry.Lookup(drive)
	if !ok {
		return
	}
	cf, ok := f.compile(w)
	if !ok {
		return
	}
	w.iterating++
	defer func() { w.iterating-- }()
	for _, id := range s.denseIDs() {
		if !cf.match(w, id) {
			continue
		}
		visit(id, w.entityAt(id))
	}
}

func mustDistinct(keys ...TypeKey) {
	for i := range keys {
		for j := i + 1; j < len(keys); j++ {
			if keys[i] == keys[j] {
				panic(fmt.Sprintf("ecs: query selects %s more than once", keys[i]))
			}
		}
	}
}
