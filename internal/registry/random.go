package registry

import "math/rand/v2"

// Randomizer is the source of every random pick the registry and the case
// generator make. Tests supply a deterministic one.
type Randomizer interface {
	// IntN returns a value in [0, n).
	IntN(n int) int
}

type globalRand struct{}

func (globalRand) IntN(n int) int {
	return rand.IntN(n)
}

// DefaultRandom draws from the process-wide math/rand/v2 source.
func DefaultRandom() Randomizer {
	return globalRand{}
}

// Between returns a value in the inclusive range r.
func Between(rnd Randomizer, r Range) int {
	if r.Max <= r.Min {
		return r.Min
	}
	return r.Min + rnd.IntN(r.Max-r.Min+1)
}
