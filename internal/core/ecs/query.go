package ecs

// Queries are driven by their first component type: only entities in that
// storage are visited. Each hands out pointers into the per-type dense arrays;
// the types of one query are distinct, so the pointers never alias.
// View passes copies instead.
//
//	ecs.Select2[Position, Velocity](w).
//		NotTagged("frozen").
//		Each(func(e ecs.Entity, p *Position, v *Velocity) {
//			p.X += v.X
//		})

// Query1 iterates entities that have A.
type Query1[A any] struct {
	w *World
	filter
}

func Select1[A any](w *World) *Query1[A] {
	return &Query1[A]{w: w}
}

func (q *Query1[A]) Tagged(names ...string) *Query1[A] {
	q.tagged = append(q.tagged, names...)
	return q
}

func (q *Query1[A]) NotTagged(names ...string) *Query1[A] {
	q.notTagged = append(q.notTagged, names...)
	return q
}

func (q *Query1[A]) With(keys ...TypeKey) *Query1[A] {
	q.with = append(q.with, keys...)
	return q
}

func (q *Query1[A]) Without(keys ...TypeKey) *Query1[A] {
	q.without = append(q.without, keys...)
	return q
}

func (q *Query1[A]) Each(fn func(Entity, *A)) {
	sa, ok := SetOf[A](q.w.registry)
	if !ok {
		return
	}
	q.w.scan(KeyOf[A](), &q.filter, func(id uint32, e Entity) {
		a, _ := sa.Get(id)
		fn(e, a)
	})
}

func (q *Query1[A]) View(fn func(Entity, A)) {
	q.Each(func(e Entity, a *A) { fn(e, *a) })
}

func (q *Query1[A]) Count() int {
	n := 0
	q.Each(func(Entity, *A) { n++ })
	return n
}

func (q *Query1[A]) Entities() []Entity {
	var out []Entity
	q.Each(func(e Entity, _ *A) { out = append(out, e) })
	return out
}

// Query2 iterates entities that have A and B.
type Query2[A, B any] struct {
	w *World
	filter
}

func Select2[A, B any](w *World) *Query2[A, B] {
	mustDistinct(KeyOf[A](), KeyOf[B]())
	return &Query2[A, B]{w: w}
}

func (q *Query2[A, B]) Tagged(names ...string) *Query2[A, B] {
	q.tagged = append(q.tagged, names...)
	return q
}

func (q *Query2[A, B]) NotTagged(names ...string) *Query2[A, B] {
	q.notTagged = append(q.notTagged, names...)
	return q
}

func (q *Query2[A, B]) With(keys ...TypeKey) *Query2[A, B] {
	q.with = append(q.with, keys...)
	return q
}

func (q *Query2[A, B]) Without(keys ...TypeKey) *Query2[A, B] {
	q.without = append(q.without, keys...)
	return q
}

func (q *Query2[A, B]) Each(fn func(Entity, *A, *B)) {
	sa, ok := SetOf[A](q.w.registry)
	if !ok {
		return
	}
	sb, ok := SetOf[B](q.w.registry)
	if !ok {
		return
	}
	q.w.scan(KeyOf[A](), &q.filter, func(id uint32, e Entity) {
		b, ok := sb.Get(id)
		if !ok {
			return
		}
		a, _ := sa.Get(id)
		fn(e, a, b)
	})
}

func (q *Query2[A, B]) View(fn func(Entity, A, B)) {
	q.Each(func(e Entity, a *A, b *B) { fn(e, *a, *b) })
}

func (q *Query2[A, B]) Count() int {
	n := 0
	q.Each(func(Entity, *A, *B) { n++ })
	return n
}

func (q *Query2[A, B]) Entities() []Entity {
	var out []Entity
	q.Each(func(e Entity, _ *A, _ *B) { out = append(out, e) })
	return out
}

// Query3 iterates entities that have A, B and C.
type Query3[A, B, C any] struct {
	w *World
	filter
}

func Select3[A, B, C any](w *World) *Query3[A, B, C] {
	mustDistinct(KeyOf[A](), KeyOf[B](), KeyOf[C]())
	return &Query3[A, B, C]{w: w}
}

func (q *Query3[A, B, C]) Tagged(names ...string) *Query3[A, B, C] {
	q.tagged = append(q.tagged, names...)
	return q
}

func (q *Query3[A, B, C]) NotTagged(names ...string) *Query3[A, B, C] {
	q.notTagged = append(q.notTagged, names...)
	return q
}

func (q *Query3[A, B, C]) With(keys ...TypeKey) *Query3[A, B, C] {
	q.with = append(q.with, keys...)
	return q
}

func (q *Query3[A, B, C]) Without(keys ...TypeKey) *Query3[A, B, C] {
	q.without = append(q.without, keys...)
	return q
}

func (q *Query3[A, B, C]) Each(fn func(Entity, *A, *B, *C)) {
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
	q.w.scan(KeyOf[A](), &q.filter, func(id uint32, e Entity) {
		b, ok := sb.Get(id)
		if !ok {
			return
		}
		c, ok := sc.Get(id)
		if !ok {
			return
		}
		a, _ := sa.Get(id)
		fn(e, a, b, c)
	})
}

func (q *Query3[A, B, C]) View(fn func(Entity, A, B, C)) {
	q.Each(func(e Entity, a *A, b *B, c *C) { fn(e, *a, *b, *c) })
}

func (q *Query3[A, B, C]) Count() int {
	n := 0
	q.Each(func(Entity, *A, *B, *C) { n++ })
	return n
}

func (q *Query3[A, B, C]) Entities() []Entity {
	var out []Entity
	q.Each(func(e Entity, _ *A, _ *B, _ *C) { out = append(out, e) })
	return out
}

// Query4 iterates entities that have A, B, C and D.
type Query4[A, B, C, D any] struct {
	w *World
	filter
}

func Select4[A, B, C, D any](w *World) *Query4[A, B, C, D] {
	mustDistinct(KeyOf[A](), KeyOf[B](), KeyOf[C](), KeyOf[D]())
	return &Query4[A, B, C, D]{w: w}
}

func (q *Query4[A, B, C, D]) Tagged(names ...string) *Query4[A, B, C, D] {
	q.tagged = append(q.tagged, names...)
	return q
}

func (q *Query4[A, B, C, D]) NotTagged(names ...string) *Query4[A, B, C, D] {
	q.notTagged = append(q.notTagged, names...)
	return q
}

func (q *Query4[A, B, C, D]) With(keys ...TypeKey) *Query4[A, B, C, D] {
	q.with = append(q.with, keys...)
	return q
}

func (q *Query4[A, B, C, D]) Without(keys ...TypeKey) *Query4[A, B, C, D] {
	q.without = append(q.without, keys...)
	return q
}

func (q *Query4[A, B, C, D]) Each(fn func(Entity, *A, *B, *C, *D)) {
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
	q.w.scan(KeyOf[A](), &q.filter, func(id uint32, e Entity) {
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
		a, _ := sa.Get(id)
		fn(e, a, b, c, d)
	})
}

func (q *Query4[A, B, C, D]) View(fn func(Entity, A, B, C, D)) {
	q.Each(func(e Entity, a *A, b *B, c *C, d *D) { fn(e, *a, *b, *c, *d) })
}

func (q *Query4[A, B, C, D]) Count() int {
	n := 0
	q.Each(func(Entity, *A, *B, *C, *D) { n++ })
	return n
}

func (q *Query4[A, B, C, D]) Entities() []Entity {
	var out []Entity
	q.Each(func(e Entity, _ *A, _ *B, _ *C, _ *D) { out = append(out, e) })
	return out
}
