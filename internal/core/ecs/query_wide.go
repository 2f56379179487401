package ecs

// Wider queries, same shape as Query1..Query4.

// Query5 iterates entities that have all five component types.
type Query5[A, B, C, D, E any] struct {
	w *World
	filter
}

func Select5[A, B, C, D, E any](w *World) *Query5[A, B, C, D, E] {
	mustDistinct(KeyOf[A](), KeyOf[B](), KeyOf[C](), KeyOf[D](), KeyOf[E]())
	return &Query5[A, B, C, D, E]{w: w}
}

func (q *Query5[A, B, C, D, E]) Tagged(names ...string) *Query5[A, B, C, D, E] {
	q.tagged = append(q.tagged, names...)
	return q
}

func (q *Query5[A, B, C, D, E]) NotTagged(names ...string) *Query5[A, B, C, D, E] {
	q.notTagged = append(q.notTagged, names...)
	return q
}

func (q *Query5[A, B, C, D, E]) With(keys ...TypeKey) *Query5[A, B, C, D, E] {
	q.with = append(q.with, keys...)
	return q
}

func (q *Query5[A, B, C, D, E]) Without(keys ...TypeKey) *Query5[A, B, C, D, E] {
	q.without = append(q.without, keys...)
	return q
}

func (q *Query5[A, B, C, D, E]) Each(fn func(Entity, *A, *B, *C, *D, *E)) {
	sa, ok := SetOf[A](q.w.registry)
	if !ok {
		return
	}
	sb, ok := SetOf[B](q.w.registry)
	if !ok {
		return
	}
	sc, ok := SetOf[C](q.w.registry)
	if !ok {
		return
	}
	sd, ok := SetOf[D](q.w.registry)
	if !ok {
		return
	}
	se, ok := SetOf[E](q.w.registry)
	if !ok {
		return
	}
	q.w.scan(KeyOf[A](), &q.filter, func(id uint32, ent Entity) {
		b, ok := sb.Get(id)
		if !ok {
			return
		}
		c, ok := sc.Get(id)
		if !ok {
			return
		}
		d, ok := sd.Get(id)
		if !ok {
			return
		}
		e, ok := se.Get(id)
		if !ok {
			return
		}
		a, _ := sa.Get(id)
		fn(ent, a, b, c, d, e)
	})
}

func (q *Query5[A, B, C, D, E]) View(fn func(Entity, A, B, C, D, E)) {
	q.Each(func(ent Entity, a *A, b *B, c *C, d *D, e *E) { fn(ent, *a, *b, *c, *d, *e) })
}

func (q *Query5[A, B, C, D, E]) Count() int {
	n := 0
	q.Each(func(Entity, *A, *B, *C, *D, *E) { n++ })
	return n
}

func (q *Query5[A, B, C, D, E]) Entities() []Entity {
	var out []Entity
	q.Each(func(ent Entity, _ *A, _ *B, _ *C, _ *D, _ *E) { out = append(out, ent) })
	return out
}

// Query6 iterates entities that have all six component types.
type Query6[A, B, C, D, E, F any] struct {
	w *World
	filter
}

func Select6[A, B, C, D, E, F any](w *World) *Query6[A, B, C, D, E, F] {
	mustDistinct(KeyOf[A](), KeyOf[B](), KeyOf[C](), KeyOf[D](), KeyOf[E](), KeyOf[F]())
	return &Query6[A, B, C, D, E, F]{w: w}
}

func (q *Query6[A, B, C, D, E, F]) Tagged(names ...string) *Query6[A, B, C, D, E, F] {
	q.tagged = append(q.tagged, names...)
	return q
}

func (q *Query6[A, B, C, D, E, F]) NotTagged(names ...string) *Query6[A, B, C, D, E, F] {
	q.notTagged = append(q.notTagged, names...)
	return q
}

func (q *Query6[A, B, C, D, E, F]) With(keys ...TypeKey) *Query6[A, B, C, D, E, F] {
	q.with = append(q.with, keys...)
	return q
}

func (q *Query6[A, B, C, D, E, F]) Without(keys ...TypeKey) *Query6[A, B, C, D, E, F] {
	q.without = append(q.without, keys...)
	return q
}

func (q *Query6[A, B, C, D, E, F]) Each(fn func(Entity, *A, *B, *C, *D, *E, *F)) {
	sa, ok := SetOf[A](q.w.registry)
	if !ok {
		return
	}
	sb, ok := SetOf[B](q.w.registry)
	if !ok {
		return
	}
	sc, ok := SetOf[C](q.w.registry)
	if !ok {
		return
	}
	sd, ok := SetOf[D](q.w.registry)
	if !ok {
		return
	}
	se, ok := SetOf[E](q.w.registry)
	if !ok {
		return
	}
	sf, ok := SetOf[F](q.w.registry)
	if !ok {
		return
	}
	q.w.scan(KeyOf[A](), &q.filter, func(id uint32, ent Entity) {
		b, ok := sb.Get(id)
		if !ok {
			return
		}
		c, ok := sc.Get(id)
		if !ok {
			return
		}
		d, ok := sd.Get(id)
		if !ok {
			return
		}
		e, ok := se.Get(id)
		if !ok {
			return
		}
		f, ok := sf.Get(id)
		if !ok {
			return
		}
		a, _ := sa.Get(id)
		fn(ent, a, b, c, d, e, f)
	})
}

func (q *Query6[A, B, C, D, E, F]) View(fn func(Entity, A, B, C, D, E, F)) {
	q.Each(func(ent Entity, a *A, b *B, c *C, d *D, e *E, f *F) { fn(ent, *a, *b, *c, *d, *e, *f) })
}

func (q *Query6[A, B, C, D, E, F]) Count() int {
	n := 0
	q.Each(func(Entity, *A, *B, *C, *D, *E, *F) { n++ })
	return n
}

func (q *Query6[A, B, C, D, E, F]) Entities() []Entity {
	var out []Entity
	q.Each(func(ent Entity, _ *A, _ *B, _ *C, _ *D, _ *E, _ *F) { out = append(out, ent) })
	return out
}

// Query7 iterates entities that have all seven component types.
type Query7[A, B, C, D, E, F, G any] struct {
	w *World
	filter
}

func Select7[A, B, C, D, E, F, G any](w *World) *Query7[A, B, C, D, E, F, G] {
	mustDistinct(KeyOf[A](), KeyOf[B](), KeyOf[C](), KeyOf[D](), KeyOf[E](), KeyOf[F](), KeyOf[G]())
	return &Query7[A, B, C, D, E, F, G]{w: w}
}

func (q *Query7[A, B, C, D, E, F, G]) Tagged(names ...string) *Query7[A, B, C, D, E, F, G] {
	q.tagged = append(q.tagged, names...)
	return q
}

func (q *Query7[A, B, C, D, E, F, G]) NotTagged(names ...string) *Query7[A, B, C, D, E, F, G] {
	q.notTagged = append(q.notTagged, names...)
	return q
}

func (q *Query7[A, B, C, D, E, F, G]) With(keys ...TypeKey) *Query7[A, B, C, D, E, F, G] {
	q.with = append(q.with, keys...)
	return q
}

func (q *Query7[A, B, C, D, E, F, G]) Without(keys ...TypeKey) *Query7[A, B, C, D, E, F, G] {
	q.without = append(q.without, keys...)
	return q
}

func (q *Query7[A, B, C, D, E, F, G]) Each(fn func(Entity, *A, *B, *C, *D, *E, *F, *G)) {
	sa, ok := SetOf[A](q.w.registry)
	if !ok {
		return
	}
	sb, ok := SetOf[B](q.w.registry)
	if !ok {
		return
	}
	sc, ok := SetOf[C](q.w.registry)
	if !ok {
		return
	}
	sd, ok := SetOf[D](q.w.registry)
	if !ok {
		return
	}
	se, ok := SetOf[E](q.w.registry)
	if !ok {
		return
	}
	sf, ok := SetOf[F](q.w.registry)
	if !ok {
		return
	}
	sg, ok := SetOf[G](q.w.registry)
	if !ok {
		return
	}
	q.w.scan(KeyOf[A](), &q.filter, func(id uint32, ent Entity) {
		b, ok := sb.Get(id)
		if !ok {
			return
		}
		c, ok := sc.Get(id)
		if !ok {
			return
		}
		d, ok := sd.Get(id)
		if !ok {
			return
		}
		e, ok := se.Get(id)
		if !ok {
			return
		}
		f, ok := sf.Get(id)
		if !ok {
			return
		}
		g, ok := sg.Get(id)
		if !ok {
			return
		}
		a, _ := sa.Get(id)
		fn(ent, a, b, c, d, e, f, g)
	})
}

func (q *Query7[A, B, C, D, E, F, G]) View(fn func(Entity, A, B, C, D, E, F, G)) {
	q.Each(func(ent Entity, a *A, b *B, c *C, d *D, e *E, f *F, g *G) { fn(ent, *a, *b, *c, *d, *e, *f, *g) })
}

func (q *Query7[A, B, C, D, E, F, G]) Count() int {
	n := 0
	q.Each(func(Entity, *A, *B, *C, *D, *E, *F, *G) { n++ })
	return n
}

func (q *Query7[A, B, C, D, E, F, G]) Entities() []Entity {
	var out []Entity
	q.Each(func(ent Entity, _ *A, _ *B, _ *C, _ *D, _ *E, _ *F, _ *G) { out = append(out, ent) })
	return out
}

// Query8 iterates entities that have all eight component types.
type Query8[A, B, C, D, E, F, G, H any] struct {
	w *World
	filter
}

func Select8[A, B, C, D, E, F, G, H any](w *World) *Query8[A, B, C, D, E, F, G, H] {
	mustDistinct(KeyOf[A](), KeyOf[B](), KeyOf[C](), KeyOf[D](), KeyOf[E](), KeyOf[F](), KeyOf[G](), KeyOf[H]())
	return &Query8[A, B, C, D, E, F, G, H]{w: w}
}

func (q *Query8[A, B, C, D, E, F, G, H]) Tagged(names ...string) *Query8[A, B, C, D, E, F, G, H] {
	q.tagged = append(q.tagged, names...)
	return q
}

func (q *Query8[A, B, C, D, E, F, G, H]) NotTagged(names ...string) *Query8[A, B, C, D, E, F, G, H] {
	q.notTagged = append(q.notTagged, names...)
	return q
}

func (q *Query8[A, B, C, D, E, F, G, H]) With(keys ...TypeKey) *Query8[A, B, C, D, E, F, G, H] {
	q.with = append(q.with, keys...)
	return q
}

func (q *Query8[A, B, C, D, E, F, G, H]) Without(keys ...TypeKey) *Query8[A, B, C, D, E, F, G, H] {
	q.without = append(q.without, keys...)
	return q
}

func (q *Query8[A, B, C, D, E, F, G, H]) Each(fn func(Entity, *A, *B, *C, *D, *E, *F, *G, *H)) {
	sa, ok := SetOf[A](q.w.registry)
	if !ok {
		return
	}
	sb, ok := SetOf[B](q.w.registry)
	if !ok {
		return
	}
	sc, ok := SetOf[C](q.w.registry)
	if !ok {
		return
	}
	sd, ok := SetOf[D](q.w.registry)
	if !ok {
		return
	}
	se, ok := SetOf[E](q.w.registry)
	if !ok {
		return
	}
	sf, ok := SetOf[F](q.w.registry)
	if !ok {
		return
	}
	sg, ok := SetOf[G](q.w.registry)
	if !ok {
		return
	}
	sh, ok := SetOf[H](q.w.registry)
	if !ok {
		return
	}
	q.w.scan(KeyOf[A](), &q.filter, func(id uint32, ent Entity) {
		b, ok := sb.Get(id)
		if !ok {
			return
		}
		c, ok := sc.Get(id)
		if !ok {
			return
		}
		d, ok := sd.Get(id)
		if !ok {
			return
		}
		e, ok := se.Get(id)
		if !ok {
			return
		}
		f, ok := sf.Get(id)
		if !ok {
			return
		}
		g, ok := sg.Get(id)
		if !ok {
			return
		}
		h, ok := sh.Get(id)
		if !ok {
			return
		}
		a, _ := sa.Get(id)
		fn(ent, a, b, c, d, e, f, g, h)
	})
}

func (q *Query8[A, B, C, D, E, F, G, H]) View(fn func(Entity, A, B, C, D, E, F, G, H)) {
	q.Each(func(ent Entity, a *A, b *B, c *C, d *D, e *E, f *F, g *G, h *H) { fn(ent, *a, *b, *c, *d, *e, *f, *g, *h) })
}

func (q *Query8[A, B, C, D, E, F, G, H]) Count() int {
	n := 0
	q.Each(func(Entity, *A, *B, *C, *D, *E, *F, *G, *H) { n++ })
	return n
}

func (q *Query8[A, B, C, D, E, F, G, H]) Entities() []Entity {
	var out []Entity
	q.Each(func(ent Entity, _ *A, _ *B, _ *C, _ *D, _ *E, _ *F, _ *G, _ *H) { out = append(out, ent) })
	return out
}

// Query9 iterates entities that have all nine component types.
type Query9[A, B, C, D, E, F, G, H, I any] struct {
	w *World
	filter
}

func Select9[A, B, C, D, E, F, G, H, I any](w *World) *Query9[A, B, C, D, E, F, G, H, I] {
	mustDistinct(KeyOf[A](), KeyOf[B](), KeyOf[C](), KeyOf[D](), KeyOf[E](), KeyOf[F](), KeyOf[G](), KeyOf[H](), KeyOf[I]())
	return &Query9[A, B, C, D, E, F, G, H, I]{w: w}
}

func (q *Query9[A, B, C, D, E, F, G, H, I]) Tagged(names ...string) *Query9[A, B, C, D, E, F, G, H, I] {
	q.tagged = append(q.tagged, names...)
	return q
}

func (q *Query9[A, B, C, D, E, F, G, H, I]) NotTagged(names ...string) *Query9[A, B, C, D, E, F, G, H, I] {
	q.notTagged = append(q.notTagged, names...)
	return q
}

func (q *Query9[A, B, C, D, E, F, G, H, I]) With(keys ...TypeKey) *Query9[A, B, C, D, E, F, G, H, I] {
	q.with = append(q.with, keys...)
	return q
}

func (q *Query9[A, B, C, D, E, F, G, H, I]) Without(keys ...TypeKey) *Query9[A, B, C, D, E, F, G, H, I] {
	q.without = append(q.without, keys...)
	return q
}

func (q *Query9[A, B, C, D, E, F, G, H, I]) Each(fn func(Entity, *A, *B, *C, *D, *E, *F, *G, *H, *I)) {
	sa, ok := SetOf[A](q.w.registry)
	if !ok {
		return
	}
	sb, ok := SetOf[B](q.w.registry)
	if !ok {
		return
	}
	sc, ok := SetOf[C](q.w.registry)
	if !ok {
		return
	}
	sd, ok := SetOf[D](q.w.registry)
	if !ok {
		return
	}
	se, ok := SetOf[E](q.w.registry)
	if !ok {
		return
	}
	sf, ok := SetOf[F](q.w.registry)
	if !ok {
		return
	}
	sg, ok := SetOf[G](q.w.registry)
	if !ok {
		return
	}
	sh, ok := SetOf[H](q.w.registry)
	if !ok {
		return
	}
	si, ok := SetOf[I](q.w.registry)
	if !ok {
		return
	}
	q.w.scan(KeyOf[A](), &q.filter, func(id uint32, ent Entity) {
		b, ok := sb.Get(id)
		if !ok {
			return
		}
		c, ok := sc.Get(id)
		if !ok {
			return
		}
		d, ok := sd.Get(id)
		if !ok {
			return
		}
		e, ok := se.Get(id)
		if !ok {
			return
		}
		f, ok := sf.Get(id)
		if !ok {
			return
		}
		g, ok := sg.Get(id)
		if !ok {
			return
		}
		h, ok := sh.Get(id)
		if !ok {
			return
		}
		i, ok := si.Get(id)
		if !ok {
			return
		}
		a, _ := sa.Get(id)
		fn(ent, a, b, c, d, e, f, g, h, i)
	})
}

func (q *Query9[A, B, C, D, E, F, G, H, I]) View(fn func(Entity, A, B, C, D, E, F, G, H, I)) {
	q.Each(func(ent Entity, a *A, b *B, c *C, d *D, e *E, f *F, g *G, h *H, i *I) { fn(ent, *a, *b, *c, *d, *e, *f, *g, *h, *i) })
}

func (q *Query9[A, B, C, D, E, F, G, H, I]) Count() int {
	n := 0
	q.Each(func(Entity, *A, *B, *C, *D, *E, *F, *G, *H, *I) { n++ })
	return n
}

func (q *Query9[A, B, C, D, E, F, G, H, I]) Entities() []Entity {
	var out []Entity
	q.Each(func(ent Entity, _ *A, _ *B, _ *C, _ *D, _ *E, _ *F, _ *G, _ *H, _ *I) { out = append(out, ent) })
	return out
}
