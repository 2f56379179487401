package ecs

import (
	"fmt"

	"go.uber.org/zap"
)

// MaxTags is the number of distinct tag names one World can hold.
const MaxTags = 128

// TagMask is a 128-bit set of tag positions.
type TagMask [2]uint64

func (m *TagMask) set(bit int)   { m[bit>>6] |= 1 << uint(bit&63) }
func (m *TagMask) unset(bit int) { m[bit>>6] &^= 1 << uint(bit&63) }

// Has reports whether bit is set.
func (m TagMask) Has(bit int) bool {
	return m[bit>>6]&(1<<uint(bit&63)) != 0
}

func (m TagMask) IsZero() bool { return m[0] == 0 && m[1] == 0 }

// contains reports whether every bit of sub is set in m.
func (m TagMask) contains(sub TagMask) bool {
	return m[0]&sub[0] == sub[0] && m[1]&sub[1] == sub[1]
}

func (m TagMask) intersects(o TagMask) bool {
	return m[0]&o[0] != 0 || m[1]&o[1] != 0
}

// TagIndex assigns bit positions to tag names on first use and keeps one
// mask per entity id. Positions never change once assigned.
type TagIndex struct {
	ids   map[string]int
	names []string
	masks []TagMask
	log   *zap.Logger
}

func NewTagIndex(capacity int, log *zap.Logger) *TagIndex {
	return &TagIndex{
		ids:   make(map[string]int, 16),
		names: make([]string, 0, 16),
		masks: make([]TagMask, 0, capacity),
		log:   log,
	}
}

// ID returns the bit position for name, registering it if needed.
// Registering more than MaxTags names panics.
func (t *TagIndex) ID(name string) int {
	if bit, ok := t.ids[name]; ok {
		return bit
	}
	bit := len(t.names)
	if bit >= MaxTags {
		panic(fmt.Sprintf("ecs: cannot register tag %q: only %d unique tags are supported", name, MaxTags))
	}
	t.ids[name] = bit
	t.names = append(t.names, name)
	t.log.Debug("tag registered", zap.String("tag", name), zap.Int("bit", bit))
	return bit
}

// Lookup returns the bit position for an already registered name.
func (t *TagIndex) Lookup(name string) (int, bool) {
	bit, ok := t.ids[name]
	return bit, ok
}

func (t *TagIndex) Len() int { return len(t.names) }

func (t *TagIndex) Mask(id uint32) TagMask {
	if int(id) >= len(t.masks) {
		return TagMask{}
	}
	return t.masks[id]
}

func (t *TagIndex) Set(id uint32, bit int) {
	for int(id) >= len(t.masks) {
		t.masks = append(t.masks, TagMask{})
	}
	t.masks[id].set(bit)
}

func (t *TagIndex) Unset(id uint32, bit int) {
	if int(id) < len(t.masks) {
		t.masks[id].unset(bit)
	}
}

// Has is false for names that were never registered.
func (t *TagIndex) Has(id uint32, name string) bool {
	bit, ok := t.ids[name]
	if !ok {
		return false
	}
	return t.Mask(id).Has(bit)
}

// Clear drops every tag of id.
func (t *TagIndex) Clear(id uint32) {
	if int(id) < len(t.masks) {
		t.masks[id] = TagMask{}
	}
}

// Names returns the tag names set in m, in bit order.
func (t *TagIndex) Names(m TagMask) []string {
	var out []string
	for bit, name := range t.names {
		if m.Has(bit) {
			out = append(out, name)
		}
	}
	return out
}
