// Package fused implements the batch dot kernels with float64 fused
// multiply-add accumulation.
//
// A product of two float32 values is exact in float64, so each result is the
// exact dot product rounded to float64 and then once to float32. It can differ
// from the step-by-step float32 Dot methods in the low bits: by at most
// 3*2^-23 times the sum of |a[i]*b[i]|, which under cancellation is large
// relative to the result itself.
//
// When the sum of product magnitudes leaves the float32 range, some product or
// partial sum of the float32 evaluation may overflow. Those elements are
// computed with the Dot methods instead, so Inf and NaN results match them
// exactly.
package fused

import (
	"math"

	"github.com/cwbudde/algo-vec/vec"
)

// overflows32 reports whether a non-negative magnitude is beyond float32 range.
func overflows32(mag float64) bool {
	return mag > math.MaxFloat32
}

// Dot2 writes dst[i] = dot(a[i], b[i]).
func Dot2(dst []float32, a, b []vec.Float2) {
	if len(a) != len(b) || len(dst) != len(a) {
		panic("batch: slice length mismatch")
	}
	for i := range dst {
		p, q := a[i], b[i]
		px, qx := float64(p.X), float64(q.X)
		py, qy := float64(p.Y), float64(q.Y)

		mag := math.FMA(math.Abs(px), math.Abs(qx), math.Abs(py*qy))
		if overflows32(mag) {
			dst[i] = p.Dot(q)
			continue
		}
		dst[i] = float32(math.FMA(px, qx, py*qy))
	}
}

// Dot3 writes dst[i] = dot(a[i], b[i]).
func Dot3(dst []float32, a, b []vec.Float3) {
	if len(a) != len(b) || len(dst) != len(a) {
		panic("batch: slice length mismatch")
	}
	for i := range dst {
		p, q := a[i], b[i]
		px, qx := float64(p.X), float64(q.X)
		py, qy := float64(p.Y), float64(q.Y)
		pz, qz := float64(p.Z), float64(q.Z)

		mag := math.Abs(pz * qz)
		mag = math.FMA(math.Abs(py), math.Abs(qy), mag)
		mag = math.FMA(math.Abs(px), math.Abs(qx), mag)
		if overflows32(mag) {
			dst[i] = p.Dot(q)
			continue
		}

		acc := pz * qz
		acc = math.FMA(py, qy, acc)
		dst[i] = float32(math.FMA(px, qx, acc))
	}
}

// Dot4 writes dst[i] = dot(a[i], b[i]).
func Dot4(dst []float32, a, b []vec.Float4) {
	if len(a) != len(b) || len(dst) != len(a) {
		panic("batch: slice length mismatch")
	}
	for i := range dst {
		p, q := a[i], b[i]
		px, qx := float64(p.X), float64(q.X)
		py, qy := float64(p.Y), float64(q.Y)
		pz, qz := float64(p.Z), float64(q.Z)
		pw, qw := float64(p.W), float64(q.W)

		mag := math.Abs(pw * qw)
		mag = math.FMA(math.Abs(pz), math.Abs(qz), mag)
		mag = math.FMA(math.Abs(py), math.Abs(qy), mag)
		mag = math.FMA(math.Abs(px), math.Abs(qx), mag)
		if overflows32(mag) {
			dst[i] = p.Dot(q)
			continue
		}

		acc := pw * qw
		acc = math.FMA(pz, qz, acc)
		acc = math.FMA(py, qy, acc)
		dst[i] = float32(math.FMA(px, qx, acc))
	}
}
