package batch

import "github.com/cwbudde/algo-vec/vec"

// Lerp3 writes a[i] + t*(b[i]-a[i]) to dst[i].
func Lerp3(dst, a, b []vec.Float3, t float32) {
	if len(a) != len(b) || len(dst) != len(a) {
		panic("batch: slice length mismatch")
	}
	for i := range dst {
		dst[i] = vec.Lerp3(a[i], b[i], t)
	}
}

// Cross writes vec.Cross(a[i], b[i]) to dst[i].
func Cross(dst, a, b []vec.Float3) {
	if len(a) != len(b) || len(dst) != len(a) {
		panic("batch: slice length mismatch")
	}
	for i := range dst {
		dst[i] = vec.Cross(a[i], b[i])
	}
}

// Reflect writes the reflection of incident[i] about normal[i] to dst[i].
// Normals must be unit length.
func Reflect(dst, incident, normal []vec.Float3) {
	if len(incident) != len(normal) || len(dst) != len(incident) {
		panic("batch: slice length mismatch")
	}
	for i := range dst {
		dst[i] = vec.Reflect(incident[i], normal[i])
	}
}

// Clamp3 restricts every src vector to the box [lo, hi].
func Clamp3(dst, src []vec.Float3, lo, hi vec.Float3) {
	if len(dst) != len(src) {
		panic("batch: slice length mismatch")
	}
	for i, v := range src {
		dst[i] = v.Clamp(lo, hi)
	}
}

// Bounds3 returns the componentwise minimum and maximum over src, folded with
// Fmin and Fmax starting from the first element. ok is false for empty src.
func Bounds3(src []vec.Float3) (lo, hi vec.Float3, ok bool) {
	if len(src) == 0 {
		return lo, hi, false
	}
	lo, hi = src[0], src[0]
	for _, v := range src[1:] {
		lo = vec.Fmin3(lo, v)
		hi = vec.Fmax3(hi, v)
	}
	return lo, hi, true
}
