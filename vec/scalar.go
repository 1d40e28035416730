package vec

import (
	"math"

	"github.com/cwbudde/algo-vec/internal/shim"
)

// Float is a constraint for the floating-point scalar kind.
type Float interface {
	~float32
}

// Signed is a constraint for the signed integer scalar kind.
type Signed interface {
	~int32
}

// Unsigned is a constraint for the unsigned integer scalar kind.
type Unsigned interface {
	~uint32
}

// Integer is a constraint for both integer scalar kinds.
type Integer interface {
	Signed | Unsigned
}

// Scalar is a constraint for every scalar kind a vector can hold.
type Scalar interface {
	Float | Integer
}

// Min returns the smaller of a and b, as b < a ? b : a.
// If a is NaN the result is a.
func Min[T Scalar](a, b T) T {
	if b < a {
		return b
	}
	return a
}

// Max returns the larger of a and b, as a < b ? b : a.
// If a is NaN the result is a.
func Max[T Scalar](a, b T) T {
	if a < b {
		return b
	}
	return a
}

// Fmin returns the smaller of a and b using the fminf shim (a < b ? a : b).
// If either operand is NaN the result is b.
func Fmin[T Float](a, b T) T {
	return T(shim.Fminf(float32(a), float32(b)))
}

// Fmax returns the larger of a and b using the fmaxf shim (a > b ? a : b).
// If either operand is NaN the result is b.
func Fmax[T Float](a, b T) T {
	return T(shim.Fmaxf(float32(a), float32(b)))
}

// Rsqrt returns 1/sqrt(x). Rsqrt(0) is +Inf and Rsqrt of a negative number
// is NaN.
func Rsqrt[T Float](x T) T {
	return T(shim.Rsqrtf(float32(x)))
}

// Clamp restricts v to [lo, hi] as fmax(lo, fmin(v, hi)).
//
// For integers this equals max(lo, min(v, hi)). When lo > hi the result is
// lo. A NaN v clamps to hi.
func Clamp[T Scalar](v, lo, hi T) T {
	m := hi
	if v < hi {
		m = v
	}
	if lo > m {
		return lo
	}
	return m
}

// Lerp interpolates linearly between a and b: a + t*(b-a).
// t is not clamped, so values outside [0, 1] extrapolate.
func Lerp[T Float](a, b, t T) T {
	return a + t*(b-a)
}

// Floor returns the greatest integer value less than or equal to v.
func Floor[T Float](v T) T {
	return T(math.Floor(float64(v)))
}

// Frac returns the fractional part v - floor(v), which lies in [0, 1] for
// finite v. The upper bound is reached by rounding: a tiny negative v such
// as -1e-9 gives 1 - 1e-9, which is exactly 1 in float32.
func Frac[T Float](v T) T {
	return v - Floor(v)
}

// Fmod returns the floating-point remainder of a/b with the sign of a.
// Fmod(a, 0) is NaN.
func Fmod[T Float](a, b T) T {
	return T(math.Mod(float64(a), float64(b)))
}

// Abs returns the absolute value of v. Abs(-0) is +0 and a NaN comes back
// with its sign bit cleared, as with C fabs. For int32 the most negative
// value wraps to itself.
func Abs[T Signed | Float](v T) T {
	if v != v {
		return T(math.Float32frombits(math.Float32bits(float32(v)) &^ (1 << 31)))
	}
	if v <= 0 {
		return 0 - v
	}
	return v
}

// Smoothstep returns 0 for x <= a, 1 for x >= b and the cubic Hermite
// y*y*(3-2y) with y = (x-a)/(b-a) in between. a == b is not special-cased.
func Smoothstep[T Float](a, b, x T) T {
	y := Clamp((x-a)/(b-a), 0, 1)
	return y * y * (3 - 2*y)
}

func sqrt[T Float](v T) T {
	return T(math.Sqrt(float64(v)))
}
