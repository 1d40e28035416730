package vec

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-vec/internal/testutil"
)

func TestVec4Arithmetic(t *testing.T) {
	a, b := MakeFloat4(1, 2, 3, 4), MakeFloat4(2, 4, 6, 8)

	tests := []struct {
		name      string
		got, want Float4
	}{
		{"add", a.Add(b), MakeFloat4(3, 6, 9, 12)},
		{"sub", b.Sub(a), a},
		{"mul", a.Mul(b), MakeFloat4(2, 8, 18, 32)},
		{"div", b.Div(a), Splat4[float32](2)},
		{"radd", a.RAdd(1), MakeFloat4(2, 3, 4, 5)},
		{"rsub", a.RSub(5), MakeFloat4(4, 3, 2, 1)},
		{"sub-scalar", a.SubScalar(5), MakeFloat4(-4, -3, -2, -1)},
		{"rmul", a.RMul(2), b},
		{"rdiv", a.RDiv(12), MakeFloat4(12, 6, 4, 3)},
		{"neg", Neg4(a), MakeFloat4(-1, -2, -3, -4)},
		{"abs", Abs4(Neg4(a)), a},
		{"clamp", a.Clamp(Splat4[float32](2), Splat4[float32](3)), MakeFloat4(2, 2, 3, 3)},
		{"lerp", Lerp4(a, b, 0.5), MakeFloat4(1.5, 3, 4.5, 6)},
		{"fmin", Fmin4(a, Splat4[float32](2.5)), MakeFloat4(1, 2, 2.5, 2.5)},
		{"fmax", Fmax4(a, Splat4[float32](2.5)), MakeFloat4(2.5, 2.5, 3, 4)},
		{"frac", Frac4(MakeFloat4(0.5, 1.25, -0.25, 3)), MakeFloat4(0.5, 0.25, 0.75, 0)},
		{"floor", Floor4(MakeFloat4(0.5, 1.25, -0.25, 3)), MakeFloat4(0, 1, -1, 3)},
		{"fmod", Fmod4(MakeFloat4(5, 6, 7, 8), Splat4[float32](4)), MakeFloat4(1, 2, 3, 0)},
		{"smoothstep", Smoothstep4(Float4{}, Splat4[float32](4), MakeFloat4(-1, 0, 2, 9)), MakeFloat4(0, 0, 0.5, 1)},
	}

	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
		}
	}
}

func TestVec4Reductions(t *testing.T) {
	v := MakeInt4(4, -1, 7, 3)
	if got := v.ReduceMin(); got != -1 {
		t.Errorf("ReduceMin = %d, want -1", got)
	}
	if got := v.ReduceMax(); got != 7 {
		t.Errorf("ReduceMax = %d, want 7", got)
	}
	if got := MakeUint4(9, 3, 5, 1).ReduceMin(); got != 1 {
		t.Errorf("ReduceMin = %d, want 1", got)
	}

	// Pairs are folded first: Min(Min(X, Y), Min(Z, W)). A NaN in X wins its
	// pair and then the final Min, a NaN in W loses to Z.
	nan := float32(math.NaN())
	if got := MakeFloat4(nan, 1, 2, 3).ReduceMin(); !testutil.IsNaN(got) {
		t.Errorf("ReduceMin(NaN, 1, 2, 3) = %v, want NaN", got)
	}
	if got := MakeFloat4(4, 1, 2, nan).ReduceMin(); got != 1 {
		t.Errorf("ReduceMin(4, 1, 2, NaN) = %v, want 1", got)
	}
	if got := MakeFloat4(4, 1, 2, nan).ReduceMax(); got != 4 {
		t.Errorf("ReduceMax(4, 1, 2, NaN) = %v, want 4", got)
	}
}

func TestVec4IntegerOps(t *testing.T) {
	v := MakeInt4(1, -2, 3, -4)
	if got := v.Dot(v); got != 30 {
		t.Errorf("Dot = %d, want 30", got)
	}
	if got, want := Shr4(Shl4(v, 4), 4), v; got != want {
		t.Errorf("shift round trip = %v, want %v", got, want)
	}
	if got, want := v.ClampScalar(-1, 1), MakeInt4(1, -1, 1, -1); got != want {
		t.Errorf("ClampScalar = %v, want %v", got, want)
	}
	if got, want := v.Min(Neg4(v)), MakeInt4(-1, -2, -3, -4); got != want {
		t.Errorf("Min = %v, want %v", got, want)
	}
	if got, want := v.Max(Neg4(v)), MakeInt4(1, 2, 3, 4); got != want {
		t.Errorf("Max = %v, want %v", got, want)
	}

	u := MakeUint4(1, 2, 3, 4)
	u.AddAssign(u)
	u.SubScalarAssign(1)
	u.MulAssign(MakeUint4(2, 2, 2, 2))
	u.AddScalarAssign(1)
	u.MulScalarAssign(2)
	u.SubAssign(Splat4[uint32](2))
	if want := MakeUint4(4, 12, 20, 28); u != want {
		t.Errorf("compound = %v, want %v", u, want)
	}
	if got, want := u.DivScalar(4), MakeUint4(1, 3, 5, 7); got != want {
		t.Errorf("DivScalar = %v, want %v", got, want)
	}
}

func TestVec4GeometryAndDivAssign(t *testing.T) {
	if got := Length4(MakeFloat4(1, 1, 1, 1)); got != 2 {
		t.Errorf("Length4(1, 1, 1, 1) = %v, want 2", got)
	}
	n := Normalize4(MakeFloat4(2, 0, 0, 0))
	testutil.RequireSliceNearlyEqual(t, []float32{n.X, n.Y, n.Z, n.W}, []float32{1, 0, 0, 0}, 1e-3)

	f := MakeFloat4(2, 4, 6, 8)
	DivAssign4(&f, MakeFloat4(2, 2, 2, 2))
	DivScalarAssign4(&f, 2)
	if want := MakeFloat4(0.5, 1, 1.5, 2); f != want {
		t.Errorf("DivAssign4 = %v, want %v", f, want)
	}
}
