package ecs

import "github.com/kon-engine/kon/internal/core/resource"

// Install registers w as the World resource of g.
func Install(g *resource.Globals, w *World) {
	resource.Register(g, w)
}

// FromGlobals returns the registered World. A missing World is a wiring
// mistake, so it panics rather than returning an error.
func FromGlobals(g *resource.Globals) *World {
	return resource.MustGet[World](g, "call ecs.Install during startup before running systems")
}
