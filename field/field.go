// Package field stores float64 vector fields as separate component slices
// (structure of arrays) and runs componentwise block kernels over them.
//
// The block kernels come from github.com/cwbudde/algo-vecmath, which picks
// SIMD implementations at runtime. Fields convert to and from the float32
// vector types in package vec for interchange.
//
// Every operation panics with "field: length mismatch" when the fields or
// destination slices involved do not all have the same length.
package field

import (
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-vec/vec"
)

// Field2 is a 2D vector field with one slice per component.
type Field2 struct {
	X, Y []float64
}

// NewField2 returns a zeroed field of n vectors.
func NewField2(n int) Field2 {
	return Field2{X: make([]float64, n), Y: make([]float64, n)}
}

// Len returns the number of vectors in f.
func (f Field2) Len() int {
	f.check()
	return len(f.X)
}

func (f Field2) check() {
	if len(f.X) != len(f.Y) {
		panic("field: length mismatch")
	}
}

func (f Field2) checkWith(n int, others ...Field2) {
	f.check()
	if len(f.X) != n {
		panic("field: length mismatch")
	}
	for _, o := range others {
		o.check()
		if len(o.X) != n {
			panic("field: length mismatch")
		}
	}
}

// Pack writes the vectors of f to dst, rounding each component to float32.
func (f Field2) Pack(dst []vec.Float2) {
	f.checkWith(len(dst))
	for i := range dst {
		dst[i] = vec.MakeFloat2(float32(f.X[i]), float32(f.Y[i]))
	}
}

// Unpack overwrites f with the components of src.
func (f Field2) Unpack(src []vec.Float2) {
	f.checkWith(len(src))
	for i, v := range src {
		f.X[i] = float64(v.X)
		f.Y[i] = float64(v.Y)
	}
}

// Length writes the Euclidean length of every vector to dst.
func (f Field2) Length(dst []float64) {
	f.checkWith(len(dst))
	vecmath.Magnitude(dst, f.X, f.Y)
}

// LengthSq writes the squared length of every vector to dst.
func (f Field2) LengthSq(dst []float64) {
	f.checkWith(len(dst))
	vecmath.Power(dst, f.X, f.Y)
}

// Dot writes dot(f[i], b[i]) to dst[i].
func (f Field2) Dot(dst []float64, b Field2) {
	f.checkWith(len(dst), b)
	vecmath.MulBlock(dst, f.X, b.X)
	vecmath.MulAddBlock(dst, f.Y, b.Y, dst)
}

// Mul sets f to the componentwise product of a and b.
func (f Field2) Mul(a, b Field2) {
	f.checkWith(len(a.X), a, b)
	vecmath.MulBlock(f.X, a.X, b.X)
	vecmath.MulBlock(f.Y, a.Y, b.Y)
}

// MulInPlace multiplies f componentwise by src.
func (f Field2) MulInPlace(src Field2) {
	f.checkWith(len(src.X), src)
	vecmath.MulBlockInPlace(f.X, src.X)
	vecmath.MulBlockInPlace(f.Y, src.Y)
}

// Scale sets f to src scaled by s.
func (f Field2) Scale(src Field2, s float64) {
	f.checkWith(len(src.X), src)
	vecmath.ScaleBlock(f.X, src.X, s)
	vecmath.ScaleBlock(f.Y, src.Y, s)
}

// AddInPlace adds src to f.
func (f Field2) AddInPlace(src Field2) {
	f.checkWith(len(src.X), src)
	vecmath.AddBlockInPlace(f.X, src.X)
	vecmath.AddBlockInPlace(f.Y, src.Y)
}
