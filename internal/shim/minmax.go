package shim

// Fminf returns a if a < b, else b.
// A NaN in a yields b; a NaN in b yields b.
func Fminf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

// Fmaxf returns a if a > b, else b.
// A NaN in a yields b; a NaN in b yields b.
func Fmaxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
