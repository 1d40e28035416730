package testutil

import (
	"fmt"
	"math"
	"testing"
)

// Float covers the scalar types the tolerance helpers compare.
type Float interface {
	~float32 | ~float64
}

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance).
func RequireSliceNearlyEqual[T Float](t testing.TB, got, want []T, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		diff := math.Abs(float64(got[i]) - float64(want[i]))
		if diff > eps {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireNear fails t if |got-want| exceeds eps.
func RequireNear[T Float](t testing.TB, name string, got, want T, eps float64) {
	t.Helper()
	if diff := math.Abs(float64(got) - float64(want)); !(diff <= eps) {
		t.Fatalf("%s = %v, want %v (diff %v > eps %v)", name, got, want, diff, eps)
	}
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite[T Float](t testing.TB, data []T) {
	t.Helper()
	for i, v := range data {
		if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// RequireAllNonFinite fails t unless every element is NaN or Inf.
func RequireAllNonFinite[T Float](t testing.TB, data []T) {
	t.Helper()
	for i, v := range data {
		if !math.IsNaN(float64(v)) && !math.IsInf(float64(v), 0) {
			t.Fatalf("index %d: finite value %v, want NaN or Inf", i, v)
		}
	}
}

// IsNaN reports whether v is NaN.
func IsNaN[T Float](v T) bool {
	return v != v
}

// MaxAbsDiff returns the maximum absolute difference between two slices.
// Returns an error if the slices differ in length.
func MaxAbsDiff[T Float](a, b []T) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}
	maxDiff := 0.0
	for i := range a {
		d := math.Abs(float64(a[i]) - float64(b[i]))
		if d > maxDiff {
			maxDiff = d
		}
	}
	return maxDiff, nil
}
