package patterns

import (
	"math/rand/v2"

	"github.com/matzehuels/backdrop/pkg/scene"
)

// Pattern draws one procedural pattern onto a recorder.
type Pattern interface {
	Draw(rec *scene.Recorder, rng *rand.Rand)
}

// Func adapts a plain function to the Pattern interface.
type Func func(rec *scene.Recorder, rng *rand.Rand)

// Draw calls f(rec, rng).
func (f Func) Draw(rec *scene.Recorder, rng *rand.Rand) {
	f(rec, rng)
}

// NewRand returns the generator used for a seeded render. The PCG stream is
// derived from the seed the same way everywhere so a seed printed by the CLI
// reproduces an image.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0xdeadbeef))
}

// between returns a uniform value in [lo, lo+span).
func between(rng *rand.Rand, lo, span float64) float64 {
	return rng.Float64()*span + lo
}

// chance reports true with probability p.
func chance(rng *rand.Rand, p float64) bool {
	return rng.Float64() < p
}

// pick returns a uniformly chosen rune from set.
func pick(rng *rand.Rand, set []rune) string {
	return string(set[rng.IntN(len(set))])
}

// spaced returns the i-th of n evenly spaced positions strictly inside
// [0, length], i.e. length/(n+1)*(i+1).
func spaced(length float64, n, i int) float64 {
	return length / float64(n+1) * float64(i+1)
}
