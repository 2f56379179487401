package ecs

import "fmt"

// Entity encodes a 32-bit id in the lower bits and a 32-bit generation
// in the upper bits. Generation increments on destroy to invalidate stale refs.
// Two entities are equal iff both halves match.
type Entity uint64

func newEntity(id uint32, generation uint32) Entity {
	return Entity(uint64(generation)<<32 | uint64(id))
}

func (e Entity) ID() uint32         { return uint32(e) }
func (e Entity) Generation() uint32 { return uint32(e >> 32) }

func (e Entity) String() string {
	return fmt.Sprintf("Entity(%dv%d)", e.ID(), e.Generation())
}

// EntityPool manages entity allocation with generational indices and a free list.
// It is the only authority on liveness.
type EntityPool struct {
	generations []uint32
	alive       []bool
	freeList    []uint32
	nextID      uint32
	count       int
}

func NewEntityPool(capacity int) *EntityPool {
	return &EntityPool{
		generations: make([]uint32, 0, capacity),
		alive:       make([]bool, 0, capacity),
		freeList:    make([]uint32, 0, capacity/4),
	}
}

// Create pops a recycled id if one is available, otherwise allocates a new one.
func (p *EntityPool) Create() Entity {
	var id uint32
	if n := len(p.freeList); n > 0 {
		id = p.freeList[n-1]
		p.freeList = p.freeList[:n-1]
	} else {
		id = p.nextID
		p.nextID++
		p.generations = append(p.generations, 0)
		p.alive = append(p.alive, false)
	}
	p.alive[id] = true
	p.count++
	return newEntity(id, p.generations[id])
}

func (p *EntityPool) Alive(e Entity) bool {
	id := e.ID()
	if id >= p.nextID {
		return false
	}
	return p.alive[id] && p.generations[id] == e.Generation()
}

// Destroy frees the id and bumps its generation. Returns false for stale
// or unknown handles.
func (p *EntityPool) Destroy(e Entity) bool {
	if !p.Alive(e) {
		return false
	}
	id := e.ID()
	p.alive[id] = false
	p.generations[id]++ // wraps
	p.freeList = append(p.freeList, id)
	p.count--
	return true
}

// Generation returns the current generation of an id slot, 0 if never allocated.
func (p *EntityPool) Generation(id uint32) uint32 {
	if id >= p.nextID {
		return 0
	}
	return p.generations[id]
}

// Len returns the number of live entities.
func (p *EntityPool) Len() int { return p.count }

// Cap returns the number of id slots ever allocated.
func (p *EntityPool) Cap() int { return int(p.nextID) }

// Each calls fn for every live entity in ascending id order.
func (p *EntityPool) Each(fn func(Entity)) {
	for id := uint32(0); id < p.nextID; id++ {
		if p.alive[id] {
			fn(newEntity(id, p.generations[id]))
		}
	}
}
