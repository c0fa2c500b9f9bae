package qsim

import "math/rand/v2"

/*
Source supplies the uniform draws in [0, 1) used for Born-rule sampling.
Every register owns its Source, so tests can substitute a deterministic one.
*/
type Source interface {
	Float64() float64
}

// NewSource returns a deterministic PCG source for the given seed.
func NewSource(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// DefaultSource returns a freshly, randomly seeded source.
func DefaultSource() Source {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}
