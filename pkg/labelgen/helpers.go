package labelgen

import (
	"math/rand"
	"sort"
)

// jitter perturbs center by up to ±radius when jitter is enabled, and
// returns center unchanged otherwise.
func (c Config) jitter(rng *rand.Rand, center, radius float64) float64 {
	if !c.Jitter {
		return center
	}
	return center + (rng.Float64()*2-1)*radius
}

// randIntInRange returns a random integer in [low, high). When the range is
// empty it returns low.
func randIntInRange(rng *rand.Rand, low, high int) int {
	if high <= low {
		return low
	}
	return low + rng.Intn(high-low)
}

// median returns the statistical median of xs: the middle element, or the
// average of the two middle elements for even counts. xs is not modified.
func median(xs []float64) float64 {
	sorted := make([]float64, len(xs))
	copy(sorted, xs)
	sort.Float64s(sorted)
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}
