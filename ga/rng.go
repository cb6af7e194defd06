package ga

import "math/rand"

// Source is the random-number service the engine's generation, crossover,
// and mutation operators draw from. It is modeled as an injected interface
// rather than a process-wide global (per the source's own recommendation)
// so a run is reproducible from a single seed even though each GA instance
// owns its stream independently.
type Source interface {
	// Float64 returns a pseudo-random number in [0, 1).
	Float64() float64
	// Range returns a pseudo-random number in [lo, hi).
	Range(lo, hi float64) float64
	// Normal returns a sample from the normal distribution with mean mu and
	// standard deviation sigma.
	Normal(mu, sigma float64) float64
	// Bool returns true or false with equal probability.
	Bool() bool
	// Intn returns a pseudo-random integer in [0, n).
	Intn(n int) int
}

// randSource adapts *rand.Rand to Source.
type randSource struct {
	*rand.Rand
}

// NewSource returns the default Source implementation, seeded with seed.
// Two sources created with the same seed produce identical streams.
func NewSource(seed int64) Source {
	return randSource{rand.New(rand.NewSource(seed))}
}

func (s randSource) Float64() float64 {
	return s.Rand.Float64()
}

func (s randSource) Range(lo, hi float64) float64 {
	return lo + s.Rand.Float64()*(hi-lo)
}

func (s randSource) Normal(mu, sigma float64) float64 {
	return mu + s.Rand.NormFloat64()*sigma
}

func (s randSource) Bool() bool {
	return s.Rand.Intn(2) == 1
}

func (s randSource) Intn(n int) int {
	return s.Rand.Intn(n)
}
