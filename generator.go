package sort_suite

import (
	"fmt"
	"math"
	"math/rand"
	"time"
)

// rng is the package-level random source for generated inputs.
var rng = rand.New(rand.NewSource(time.Now().UnixNano()))

// InitRNG seeds the package-level rng. If seed is 0, the current
// time is used (non-deterministic). A non-zero seed gives
// reproducible inputs.
func InitRNG(seed int64) int64 {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng = rand.New(rand.NewSource(seed))
	return seed
}

type GeneratorConfig struct {
	Count int   `toml:"count"`
	Lower int   `toml:"lower"`
	Upper int   `toml:"upper"`
	Seed  int64 `toml:"seed"`
}

// GenerateInput returns count values drawn uniformly from [lower, upper).
func GenerateInput(count, lower, upper int) ([]int, error) {
	if count < 0 {
		return nil, fmt.Errorf("count [%d] must not be negative", count)
	}
	if upper <= lower {
		return nil, fmt.Errorf("upper bound [%d] must be greater than lower bound [%d]", upper, lower)
	}

	out := make([]int, count)
	span := uint64(upper) - uint64(lower)
	for i := range out {
		out[i] = int(uint64(lower) + drawBelow(span))
	}
	return out, nil
}

// drawBelow returns a uniform value in [0, span). Spans wider than
// MaxInt64 can't go through Int63n, so they reject out-of-range draws.
func drawBelow(span uint64) uint64 {
	if span <= math.MaxInt64 {
		return uint64(rng.Int63n(int64(span)))
	}
	for {
		if v := rng.Uint64(); v < span {
			return v
		}
	}
}

// Generate seeds the rng from the config and returns the generated input
// along with the seed actually used.
func (gc *GeneratorConfig) Generate() ([]int, int64, error) {
	seed := InitRNG(gc.Seed)
	values, err := GenerateInput(gc.Count, gc.Lower, gc.Upper)
	return values, seed, err
}
