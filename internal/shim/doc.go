// Package shim supplies the float32 scalar primitives the vector layer needs
// that Go's math package only offers for float64: fminf, fmaxf and rsqrtf.
//
// The reciprocal square root is selected at build time:
//
//   - Default: the host shim, 1/sqrt(x) computed exactly with package math.
//   - fastmath tag: an approximate, intrinsic-style rsqrt backed by algo-approx.
//
// Function signatures are identical in both configurations, so callers never
// branch on the compiled target. Target reports which variant is linked in.
package shim
