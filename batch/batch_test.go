package batch

import (
	"math"
	"strconv"
	"sync"
	"testing"

	"github.com/cwbudde/algo-vec/batch/internal/registry"
	"github.com/cwbudde/algo-vec/internal/cpu"
	"github.com/cwbudde/algo-vec/internal/testutil"
	"github.com/cwbudde/algo-vec/vec"
)

// forceFeatures installs f and re-runs kernel selection. Hardware detection
// is restored when the test ends.
func forceFeatures(t testing.TB, f cpu.Features) {
	t.Helper()
	cpu.SetForcedFeatures(f)
	kernelsOnce = sync.Once{}
	t.Cleanup(func() {
		cpu.ResetDetection()
		kernelsOnce = sync.Once{}
	})
}

func randomFloat2s(seed int64, n int) []vec.Float2 {
	c := testutil.QuantizedComponents(seed, 100, 2*n)
	out := make([]vec.Float2, n)
	for i := range out {
		out[i] = vec.MakeFloat2(c[2*i], c[2*i+1])
	}
	return out
}

func randomFloat3s(seed int64, n int) []vec.Float3 {
	c := testutil.QuantizedComponents(seed, 100, 3*n)
	out := make([]vec.Float3, n)
	for i := range out {
		out[i] = vec.MakeFloat3(c[3*i], c[3*i+1], c[3*i+2])
	}
	return out
}

func randomFloat4s(seed int64, n int) []vec.Float4 {
	c := testutil.QuantizedComponents(seed, 100, 4*n)
	out := make([]vec.Float4, n)
	for i := range out {
		out[i] = vec.MakeFloat4(c[4*i], c[4*i+1], c[4*i+2], c[4*i+3])
	}
	return out
}

func TestForceGeneric(t *testing.T) {
	forceFeatures(t, cpu.Features{HasFMA: true, ForceGeneric: true})

	if got := Implementation(); got != "generic" {
		t.Fatalf("Implementation() = %q, want generic", got)
	}
}

func TestNoFeaturesSelectsGeneric(t *testing.T) {
	forceFeatures(t, cpu.Features{})

	if got := Implementation(); got != "generic" {
		t.Fatalf("Implementation() = %q, want generic", got)
	}
}

func TestGenericAlwaysRegistered(t *testing.T) {
	for _, e := range registry.Global.ListEntries() {
		if e.Name == "generic" && e.SIMDLevel == cpu.SIMDNone {
			return
		}
	}
	t.Fatal("generic kernel not registered")
}

func TestKernels(t *testing.T) {
	forceFeatures(t, cpu.Features{ForceGeneric: true})

	kernels := Kernels()
	if len(kernels) == 0 {
		t.Fatal("Kernels() is empty")
	}
	for i, k := range kernels {
		if i > 0 && kernels[i-1].Priority < k.Priority {
			t.Errorf("Kernels() not sorted: %q before %q", kernels[i-1].Name, k.Name)
		}
		if want := k.Name == "generic"; k.Supported != want {
			t.Errorf("%s: Supported = %v with ForceGeneric, want %v", k.Name, k.Supported, want)
		}
	}
	if last := kernels[len(kernels)-1]; last.Name != "generic" || last.Level != "None" {
		t.Errorf("last kernel = %+v, want generic/None", last)
	}
}

// Every registered kernel must agree with the per-vector Dot methods. The
// inputs are exact in float32, so agreement is bitwise.
func TestDotMatchesVectorMethods(t *testing.T) {
	const n = 257
	a2, b2 := randomFloat2s(1, n), randomFloat2s(2, n)
	a3, b3 := randomFloat3s(3, n), randomFloat3s(4, n)
	a4, b4 := randomFloat4s(5, n), randomFloat4s(6, n)
	dst := make([]float32, n)

	for _, entry := range registry.Global.ListEntries() {
		t.Run(entry.Name, func(t *testing.T) {
			entry.Dot2(dst, a2, b2)
			for i := range dst {
				if want := a2[i].Dot(b2[i]); dst[i] != want {
					t.Fatalf("Dot2[%d] = %v, want %v", i, dst[i], want)
				}
			}
			entry.Dot3(dst, a3, b3)
			for i := range dst {
				if want := a3[i].Dot(b3[i]); dst[i] != want {
					t.Fatalf("Dot3[%d] = %v, want %v", i, dst[i], want)
				}
			}
			entry.Dot4(dst, a4, b4)
			for i := range dst {
				if want := a4[i].Dot(b4[i]); dst[i] != want {
					t.Fatalf("Dot4[%d] = %v, want %v", i, dst[i], want)
				}
			}
		})
	}
}

func sameFloat(a, b float32) bool {
	return a == b || (a != a && b != b)
}

// Inputs that are not exact in float32. The generic kernel matches Dot
// bitwise; every kernel stays within 3*2^-23 of the product magnitudes and
// reproduces the float32 Inf and NaN outcomes.
func TestDotCancellationAndOverflow(t *testing.T) {
	x := float32(1 + 1.0/4096)
	cancel := []struct{ a, b vec.Float3 }{
		{vec.MakeFloat3(x, -1, 0), vec.MakeFloat3(x, 1, 0)},
		{vec.MakeFloat3(1, x, 0), vec.MakeFloat3(-1, x, 0)},
		{vec.MakeFloat3(0.1, 0.2, -0.3), vec.MakeFloat3(3, 1.5, 2)},
	}
	overflow := []struct{ a, b vec.Float3 }{
		{vec.MakeFloat3(1e20, 1e20, 0), vec.MakeFloat3(1e20, -1e20, 0)},
		{vec.MakeFloat3(1e20, 1, 0), vec.MakeFloat3(1e20, 1, 0)},
		{vec.MakeFloat3(2e19, 2e19, 1), vec.MakeFloat3(1e19, 1e19, 1)},
		{vec.MakeFloat3(float32(math.Inf(1)), 1, 0), vec.MakeFloat3(0, 1, 0)},
	}
	dst := make([]float32, 1)

	for _, entry := range registry.Global.ListEntries() {
		t.Run(entry.Name, func(t *testing.T) {
			for _, c := range cancel {
				entry.Dot3(dst, []vec.Float3{c.a}, []vec.Float3{c.b})
				want := c.a.Dot(c.b)
				if entry.Name == "generic" && dst[0] != want {
					t.Errorf("Dot3(%v, %v) = %v, want %v", c.a, c.b, dst[0], want)
				}
				mag := math.Abs(float64(c.a.X)*float64(c.b.X)) +
					math.Abs(float64(c.a.Y)*float64(c.b.Y)) +
					math.Abs(float64(c.a.Z)*float64(c.b.Z))
				if diff := math.Abs(float64(dst[0]) - float64(want)); diff > 3*mag/(1<<23) {
					t.Errorf("Dot3(%v, %v) = %v, Dot = %v, diff %v over bound", c.a, c.b, dst[0], want, diff)
				}
			}
			for _, c := range overflow {
				entry.Dot3(dst, []vec.Float3{c.a}, []vec.Float3{c.b})
				if want := c.a.Dot(c.b); !sameFloat(dst[0], want) {
					t.Errorf("Dot3(%v, %v) = %v, want %v", c.a, c.b, dst[0], want)
				}
			}
		})
	}
}

func TestLength(t *testing.T) {
	dst := make([]float32, 2)

	Length2(dst, []vec.Float2{vec.MakeFloat2(3, 4), {}})
	testutil.RequireSliceNearlyEqual(t, dst, []float32{5, 0}, 0)

	Length3(dst, []vec.Float3{vec.MakeFloat3(2, 3, 6), vec.MakeFloat3(0, 0, -7)})
	testutil.RequireSliceNearlyEqual(t, dst, []float32{7, 7}, 0)

	Length4(dst, []vec.Float4{vec.MakeFloat4(1, 1, 1, 1), vec.MakeFloat4(0, 0, 0, 0.5)})
	testutil.RequireSliceNearlyEqual(t, dst, []float32{2, 0.5}, 0)
}

func TestNormalize(t *testing.T) {
	src := randomFloat3s(7, 64)
	for i := range src {
		if src[i] == (vec.Float3{}) {
			src[i] = vec.MakeFloat3(1, 0, 0)
		}
	}
	dst := make([]vec.Float3, len(src))
	Normalize3(dst, src)

	lengths := make([]float32, len(dst))
	Length3(lengths, dst)
	for i, l := range lengths {
		testutil.RequireNear(t, "length", l, 1, 2e-3)
		if dst[i] != vec.Normalize3(src[i]) {
			t.Fatalf("Normalize3[%d] = %v, want %v", i, dst[i], vec.Normalize3(src[i]))
		}
	}

	// In place.
	Normalize3(src, src)
	for i := range src {
		if src[i] != dst[i] {
			t.Fatalf("in-place Normalize3[%d] = %v, want %v", i, src[i], dst[i])
		}
	}

	n2 := []vec.Float2{vec.MakeFloat2(0, -3)}
	Normalize2(n2, n2)
	testutil.RequireSliceNearlyEqual(t, []float32{n2[0].X, n2[0].Y}, []float32{0, -1}, 1e-3)

	n4 := []vec.Float4{{}}
	Normalize4(n4, n4)
	testutil.RequireAllNonFinite(t, []float32{n4[0].X, n4[0].Y, n4[0].Z, n4[0].W})
}

func TestGeometry(t *testing.T) {
	a := []vec.Float3{vec.MakeFloat3(1, 0, 0), vec.MakeFloat3(0, 1, 0)}
	b := []vec.Float3{vec.MakeFloat3(0, 1, 0), vec.MakeFloat3(0, 0, 1)}
	dst := make([]vec.Float3, 2)

	Cross(dst, a, b)
	if dst[0] != vec.MakeFloat3(0, 0, 1) || dst[1] != vec.MakeFloat3(1, 0, 0) {
		t.Errorf("Cross = %v", dst)
	}

	Lerp3(dst, a, b, 0.5)
	if dst[0] != vec.MakeFloat3(0.5, 0.5, 0) || dst[1] != vec.MakeFloat3(0, 0.5, 0.5) {
		t.Errorf("Lerp3 = %v", dst)
	}

	incident := []vec.Float3{vec.MakeFloat3(1, -1, 0)}
	normal := []vec.Float3{vec.MakeFloat3(0, 1, 0)}
	Reflect(dst[:1], incident, normal)
	if dst[0] != vec.MakeFloat3(1, 1, 0) {
		t.Errorf("Reflect = %v, want (1, 1, 0)", dst[0])
	}

	src := []vec.Float3{vec.MakeFloat3(-5, 0.5, 9), vec.MakeFloat3(2, 2, 2)}
	Clamp3(dst, src, vec.Splat3[float32](0), vec.Splat3[float32](1))
	if dst[0] != vec.MakeFloat3(0, 0.5, 1) || dst[1] != vec.Splat3[float32](1) {
		t.Errorf("Clamp3 = %v", dst)
	}
}

func TestBounds3(t *testing.T) {
	if _, _, ok := Bounds3(nil); ok {
		t.Error("Bounds3(nil) ok = true, want false")
	}

	src := []vec.Float3{
		vec.MakeFloat3(1, -2, 3),
		vec.MakeFloat3(-4, 5, 0),
		vec.MakeFloat3(2, 2, 8),
	}
	lo, hi, ok := Bounds3(src)
	if !ok {
		t.Fatal("Bounds3 ok = false")
	}
	if lo != vec.MakeFloat3(-4, -2, 0) {
		t.Errorf("lo = %v, want (-4, -2, 0)", lo)
	}
	if hi != vec.MakeFloat3(2, 5, 8) {
		t.Errorf("hi = %v, want (2, 5, 8)", hi)
	}

	lo, hi, _ = Bounds3(src[:1])
	if lo != src[0] || hi != src[0] {
		t.Errorf("single element bounds = %v, %v, want %v", lo, hi, src[0])
	}

	inf := float32(math.Inf(1))
	lo, hi, _ = Bounds3([]vec.Float3{vec.Splat3(inf), vec.Splat3[float32](0)})
	if lo != vec.Splat3[float32](0) || hi != vec.Splat3(inf) {
		t.Errorf("bounds with +Inf = %v, %v", lo, hi)
	}
}

func TestLengthMismatchPanics(t *testing.T) {
	v3 := make([]vec.Float3, 3)
	tests := []struct {
		name string
		fn   func()
	}{
		{"dot", func() { Dot3(make([]float32, 2), v3, v3) }},
		{"length", func() { Length2(make([]float32, 1), make([]vec.Float2, 2)) }},
		{"normalize", func() { Normalize4(make([]vec.Float4, 1), make([]vec.Float4, 2)) }},
		{"lerp", func() { Lerp3(v3, v3, v3[:2], 0.5) }},
		{"cross", func() { Cross(v3[:1], v3, v3) }},
		{"reflect", func() { Reflect(v3, v3[:2], v3) }},
		{"clamp", func() { Clamp3(v3[:2], v3, vec.Float3{}, vec.Float3{}) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic on length mismatch")
				}
			}()
			tt.fn()
		})
	}
}

func TestZeroAllocs(t *testing.T) {
	a, b := randomFloat3s(8, 128), randomFloat3s(9, 128)
	dst := make([]float32, 128)
	out := make([]vec.Float3, 128)

	allocs := testing.AllocsPerRun(100, func() {
		Dot3(dst, a, b)
		Length3(dst, a)
		Cross(out, a, b)
		Normalize3(out, out)
		_, _, _ = Bounds3(a)
	})
	if allocs != 0 {
		t.Errorf("allocs per run = %v, want 0", allocs)
	}
}

func BenchmarkDot3(b *testing.B) {
	for _, n := range []int{16, 256, 4096} {
		x, y := randomFloat3s(1, n), randomFloat3s(2, n)
		dst := make([]float32, n)

		for _, entry := range registry.Global.ListEntries() {
			b.Run(entry.Name+"/"+sizeStr(n), func(b *testing.B) {
				b.SetBytes(int64(n * 12 * 2))
				b.ReportAllocs()
				for i := 0; i < b.N; i++ {
					entry.Dot3(dst, x, y)
				}
			})
		}
	}
}

func BenchmarkCross(b *testing.B) {
	x, y := randomFloat3s(1, 1024), randomFloat3s(2, 1024)
	dst := make([]vec.Float3, 1024)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		Cross(dst, x, y)
	}
}

func sizeStr(n int) string {
	return "n=" + strconv.Itoa(n)
}
