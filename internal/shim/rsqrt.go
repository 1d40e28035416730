//go:build !fastmath

package shim

import "math"

// Target names the compiled scalar backend.
const Target = "host"

// Rsqrtf returns 1/sqrt(x) using standard library math.
// Rsqrtf(0) = +Inf, Rsqrtf(x < 0) = NaN.
func Rsqrtf(x float32) float32 {
	return 1 / float32(math.Sqrt(float64(x)))
}
