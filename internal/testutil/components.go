package testutil

import (
	"math"
	"math/rand"
)

// DeterministicComponents returns n pseudo-random float32 values in
// [-amplitude, amplitude) drawn from a fixed seed.
func DeterministicComponents(seed int64, amplitude float32, n int) []float32 {
	out := make([]float32, n)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float32()*2 - 1) * amplitude
	}
	return out
}

// NonZeroComponents is like DeterministicComponents but keeps every value at
// least 0.5 away from zero, so the values are safe divisors.
func NonZeroComponents(seed int64, amplitude float32, n int) []float32 {
	out := DeterministicComponents(seed, amplitude, n)
	for i, v := range out {
		switch {
		case v >= 0 && v < 0.5:
			out[i] = v + 0.5
		case v < 0 && v > -0.5:
			out[i] = v - 0.5
		}
	}
	return out
}

// QuantizedComponents is like DeterministicComponents but rounds every value
// to a multiple of 1/8. With amplitude up to 100, products and short sums of
// such values are exact in float32, so results do not depend on evaluation
// order or FMA contraction.
func QuantizedComponents(seed int64, amplitude float32, n int) []float32 {
	out := DeterministicComponents(seed, amplitude, n)
	for i, v := range out {
		out[i] = float32(math.Round(float64(v)*8) / 8)
	}
	return out
}

// DeterministicFloat64 returns n pseudo-random float64 values in
// [-amplitude, amplitude) drawn from a fixed seed.
func DeterministicFloat64(seed int64, amplitude float64, n int) []float64 {
	out := make([]float64, n)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}
