package hopper

import "math/rand"

// uniform returns a uniformly distributed value in [min, max).
// An inverted range yields a value in (max, min], which happens when a narrow
// viewport squeezes the placement interval shut.
func uniform(rng *rand.Rand, min, max float64) float64 {
	return rng.Float64()*(max-min) + min
}
