package engine

import (
	"math"
	"math/rand"
)

// SeededRandom is a RandomSource backed by math/rand with a fixed seed, so a
// session replays identically for the same seed and inputs.
type SeededRandom struct {
	rng *rand.Rand
}

var _ RandomSource = (*SeededRandom)(nil)

// NewSeededRandom creates a RandomSource from seed.
func NewSeededRandom(seed int64) *SeededRandom {
	return &SeededRandom{rng: rand.New(rand.NewSource(seed))}
}

// Intn returns a uniform integer in [lo, hi). It returns lo when the range
// is empty.
func (r *SeededRandom) Intn(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.rng.Intn(hi-lo)
}

// Float returns a uniform float in [lo, hi).
func (r *SeededRandom) Float(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	v := lo + r.rng.Float64()*(hi-lo)
	if v >= hi {
		// Rounding can land on hi for tiny ranges.
		v = math.Nextafter(hi, lo)
	}
	return v
}
