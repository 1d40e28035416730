package field

import (
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-vec/vec"
)

// Field3 is a 3D vector field with one slice per component.
type Field3 struct {
	X, Y, Z []float64
}

// NewField3 returns a zeroed field of n vectors.
func NewField3(n int) Field3 {
	return Field3{X: make([]float64, n), Y: make([]float64, n), Z: make([]float64, n)}
}

// Len returns the number of vectors in f.
func (f Field3) Len() int {
	f.check()
	return len(f.X)
}

func (f Field3) check() {
	if len(f.X) != len(f.Y) || len(f.X) != len(f.Z) {
		panic("field: length mismatch")
	}
}

func (f Field3) checkWith(n int, others ...Field3) {
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
func (f Field3) Pack(dst []vec.Float3) {
	f.checkWith(len(dst))
	for i := range dst {
		dst[i] = vec.MakeFloat3(float32(f.X[i]), float32(f.Y[i]), float32(f.Z[i]))
	}
}

// Unpack overwrites f with the components of src.
func (f Field3) Unpack(src []vec.Float3) {
	f.checkWith(len(src))
	for i, v := range src {
		f.X[i] = float64(v.X)
		f.Y[i] = float64(v.Y)
		f.Z[i] = float64(v.Z)
	}
}

// Length writes the Euclidean length of every vector to dst, computed as
// hypot(hypot(x, y), z).
func (f Field3) Length(dst []float64) {
	f.checkWith(len(dst))
	vecmath.Magnitude(dst, f.X, f.Y)
	vecmath.Magnitude(dst, dst, f.Z)
}

// LengthSq writes the squared length of every vector to dst.
func (f Field3) LengthSq(dst []float64) {
	f.checkWith(len(dst))
	vecmath.Power(dst, f.X, f.Y)
	vecmath.MulAddBlock(dst, f.Z, f.Z, dst)
}

// Dot writes dot(f[i], b[i]) to dst[i].
func (f Field3) Dot(dst []float64, b Field3) {
	f.checkWith(len(dst), b)
	vecmath.MulBlock(dst, f.X, b.X)
	vecmath.MulAddBlock(dst, f.Y, b.Y, dst)
	vecmath.MulAddBlock(dst, f.Z, b.Z, dst)
}

// Mul sets f to the componentwise product of a and b.
func (f Field3) Mul(a, b Field3) {
	f.checkWith(len(a.X), a, b)
	vecmath.MulBlock(f.X, a.X, b.X)
	vecmath.MulBlock(f.Y, a.Y, b.Y)
	vecmath.MulBlock(f.Z, a.Z, b.Z)
}

// MulInPlace multiplies f componentwise by src.
func (f Field3) MulInPlace(src Field3) {
	f.checkWith(len(src.X), src)
	vecmath.MulBlockInPlace(f.X, src.X)
	vecmath.MulBlockInPlace(f.Y, src.Y)
	vecmath.MulBlockInPlace(f.Z, src.Z)
}

// Scale sets f to src scaled by s.
func (f Field3) Scale(src Field3, s float64) {
	f.checkWith(len(src.X), src)
	vecmath.ScaleBlock(f.X, src.X, s)
	vecmath.ScaleBlock(f.Y, src.Y, s)
	vecmath.ScaleBlock(f.Z, src.Z, s)
}

// AddInPlace adds src to f.
func (f Field3) AddInPlace(src Field3) {
	f.checkWith(len(src.X), src)
	vecmath.AddBlockInPlace(f.X, src.X)
	vecmath.AddBlockInPlace(f.Y, src.Y)
	vecmath.AddBlockInPlace(f.Z, src.Z)
}
