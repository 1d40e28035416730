//go:build fastmath

package shim

import (
	"math"

	"github.com/meko-christian/algo-approx"
)

// Target names the compiled scalar backend.
const Target = "fastmath"

// Rsqrtf returns an approximation of 1/sqrt(x) using algo-approx.
// Non-positive and non-finite inputs go through the exact path so the
// +Inf / NaN edge cases match the host build.
func Rsqrtf(x float32) float32 {
	if !(x > 0) || math.IsInf(float64(x), 1) {
		return 1 / float32(math.Sqrt(float64(x)))
	}
	return float32(1 / approx.FastSqrt(float64(x)))
}
