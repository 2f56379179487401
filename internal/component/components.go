package component

// Components are pure data, zero methods; all mutations happen in systems.

type Position struct {
	X, Y float64
}

type Velocity struct {
	X, Y float64
}

type Health struct {
	Value int
	Max   int
}

type Name struct {
	Value string
}

// Regen heals Amount every Every ticks, up to Health.Max.
type Regen struct {
	Amount  int
	Every   int
	Elapsed int
}

// Lifetime destroys the entity after Ticks more ticks.
type Lifetime struct {
	Ticks int
}
