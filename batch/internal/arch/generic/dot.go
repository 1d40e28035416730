// Package generic implements the batch kernels in plain float32 arithmetic,
// giving the same results as the per-vector Dot methods.
package generic

import "github.com/cwbudde/algo-vec/vec"

// Dot2 writes dst[i] = a[i].Dot(b[i]).
func Dot2(dst []float32, a, b []vec.Float2) {
	if len(a) != len(b) || len(dst) != len(a) {
		panic("batch: slice length mismatch")
	}
	for i := range dst {
		dst[i] = a[i].Dot(b[i])
	}
}

// Dot3 writes dst[i] = a[i].Dot(b[i]).
func Dot3(dst []float32, a, b []vec.Float3) {
	if len(a) != len(b) || len(dst) != len(a) {
		panic("batch: slice length mismatch")
	}
	for i := range dst {
		dst[i] = a[i].Dot(b[i])
	}
}

// Dot4 writes dst[i] = a[i].Dot(b[i]).
func Dot4(dst []float32, a, b []vec.Float4) {
	if len(a) != len(b) || len(dst) != len(a) {
		panic("batch: slice length mismatch")
	}
	for i := range dst {
		dst[i] = a[i].Dot(b[i])
	}
}
