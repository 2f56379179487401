package ecs

import (
	"fmt"
	"io"
	"strings"

	"github.com/kon-engine/kon/internal/textwidth"
)

func rule(left, mid, right string, widths []int) string {
	var b strings.Builder
	b.WriteString(left)
	for i, w := range widths {
		if i > 0 {
			b.WriteString(mid)
		}
		b.WriteString(strings.Repeat("─", w+2))
	}
	b.WriteString(right)
	b.WriteByte('\n')
	return b.String()
}

// Inspect writes every live entity with its tags and component values as a table.
// Disabled unless the World was built WithDebug(true).
func (w *World) Inspect(out io.Writer) {
	if !w.debug {
		w.log.Warn("inspect is disabled; enable debug.inspect")
		return
	}
	entities := w.Entities()
	fmt.Fprintf(out, "World: %d entities, %d component types\n", len(entities), w.registry.Len())
	if len(entities) == 0 {
		fmt.Fprintln(out, "  (no entities)")
		return
	}

	header := []string{"Entity", "Tags"}
	var stores []Storage
	w.registry.Each(func(s Storage) {
		header = append(header, s.TypeName())
		stores = append(stores, s)
	})

	rows := make([][]string, 0, len(entities))
	for _, e := range entities {
		tags := "-"
		if names := w.TagsOf(e); len(names) > 0 {
			tags = strings.Join(names, ", ")
		}
		row := []string{e.String(), tags}
		for _, s := range stores {
			v, ok := s.DebugEntry(e.ID())
			if !ok {
				v = "-"
			}
			row = append(row, v)
		}
		rows = append(rows, row)
	}

	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = textwidth.Columns(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if n := textwidth.Columns(cell); n > widths[i] {
				widths[i] = n
			}
		}
	}

	line := func(cells []string) {
		var b strings.Builder
		for i, c := range cells {
			b.WriteString("│ ")
			b.WriteString(textwidth.Pad(c, widths[i]))
			b.WriteByte(' ')
		}
		b.WriteString("│\n")
		io.WriteString(out, b.String())
	}

	io.WriteString(out, rule("┌", "┬", "┐", widths))
	line(header)
	io.WriteString(out, rule("├", "┼", "┤", widths))
	for _, row := range rows {
		line(row)
	}
	io.WriteString(out, rule("└", "┴", "┘", widths))
}

// DumpMemory writes the dense array layout of every storage: base address,
// element size and the offset of each entity's slot. Useful to check that
// swap-remove keeps the arrays packed.
func (w *World) DumpMemory(out io.Writer) {
	if !w.debug {
		w.log.Warn("memory dump is disabled; enable debug.inspect")
		return
	}
	fmt.Fprintf(out, "Memory: %d entities, %d component types\n", w.pool.Len(), w.registry.Len())
	if w.registry.Len() == 0 {
		fmt.Fprintln(out, "  (no components registered)")
		return
	}
	w.registry.Each(func(s Storage) {
		l := s.Layout()
		fmt.Fprintf(out, "%s: len=%d cap=%d elem=%dB base=%#x\n",
			l.TypeName, l.Len, l.Cap, l.ElemSize, l.Base)
		for k, id := range l.IDs {
			off := uintptr(k) * l.ElemSize
			fmt.Fprintf(out, "  [%d] %s @ %#x (+%d)\n", k, w.entityAt(id), l.Base+off, off)
		}
	})
}
