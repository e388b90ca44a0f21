package generator

import (
	"math"
	"math/rand/v2"
	"time"
)

// Rand is the subset of *rand.Rand used by the generator.
// Callers own the instance; it must not be shared between goroutines.
type Rand interface {
	IntN(n int) int
	Uint64N(n uint64) uint64
	Uint64() uint64
}

var _ Rand = (*rand.Rand)(nil)

// NewRand returns a PCG-backed generator. A zero seed picks one from the clock.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		now := uint64(time.Now().UnixNano())
		return rand.New(rand.NewPCG(now, now>>32))
	}
	return rand.New(rand.NewPCG(seed, seed))
}

// Choose returns a uniformly chosen element of items.
// This is a pure function for easy testing.
func Choose[T any](rng Rand, items []T) (T, error) {
	var zero T
	if len(items) == 0 {
		return zero, ErrNoCandidates
	}
	return items[rng.IntN(len(items))], nil
}

// RandomNumberInRange returns a random integer in [start, end].
// When start > end the upper bound becomes start*2, saturating at MaxUint64.
// A range whose upper bound does not exceed start yields start.
func RandomNumberInRange(rng Rand, start, end uint64) uint64 {
	upper := end
	if start > end {
		if start > math.MaxUint64/2 {
			upper = math.MaxUint64
		} else {
			upper = start * 2
		}
	}
	if upper <= start {
		return start
	}

	span := upper - start
	if span == math.MaxUint64 {
		return rng.Uint64()
	}
	return start + rng.Uint64N(span+1)
}
