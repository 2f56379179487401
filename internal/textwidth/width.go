// Package textwidth measures strings in terminal columns.
package textwidth

import (
	"strings"

	"golang.org/x/text/width"
)

// Columns counts terminal columns; East Asian wide runes take two.
func Columns(s string) int {
	n := 0
	for _, r := range s {
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			n += 2
		default:
			n++
		}
	}
	return n
}

// Pad right-pads s with spaces to w columns.
func Pad(s string, w int) string {
	if d := w - Columns(s); d > 0 {
		return s + strings.Repeat(" ", d)
	}
	return s
}
