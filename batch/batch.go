// Package batch applies vector operations across slices of float vectors.
//
// Dot products, and the lengths built on them, run through a kernel chosen
// once per process from the variants registered for the running CPU. All
// functions write into a caller-provided dst, never allocate, and panic when
// slice lengths differ.
package batch

import (
	"cmp"
	"math"
	"slices"
	"sync"

	"github.com/cwbudde/algo-vec/batch/internal/registry"
	"github.com/cwbudde/algo-vec/internal/cpu"
	"github.com/cwbudde/algo-vec/vec"
)

var (
	kernels     registry.OpEntry
	kernelsOnce sync.Once
)

func initKernels() {
	entry := registry.Global.Lookup(cpu.DetectFeatures())
	if entry == nil {
		panic("batch: no kernel registered (missing generic fallback?)")
	}
	if entry.Dot2 == nil || entry.Dot3 == nil || entry.Dot4 == nil {
		panic("batch: selected kernel " + entry.Name + " is incomplete")
	}
	kernels = *entry
}

func selected() *registry.OpEntry {
	kernelsOnce.Do(initKernels)
	return &kernels
}

// Implementation returns the name of the kernel variant in use.
func Implementation() string {
	return selected().Name
}

// KernelInfo describes one registered kernel variant.
type KernelInfo struct {
	Name      string
	Level     string
	Priority  int
	Supported bool // usable with the current CPU features
}

// Kernels lists the registered kernel variants by descending priority.
func Kernels() []KernelInfo {
	features := cpu.DetectFeatures()
	entries := registry.Global.ListEntries()
	slices.SortStableFunc(entries, func(a, b registry.OpEntry) int {
		return cmp.Compare(b.Priority, a.Priority)
	})

	out := make([]KernelInfo, len(entries))
	for i, e := range entries {
		out[i] = KernelInfo{
			Name:      e.Name,
			Level:     e.SIMDLevel.String(),
			Priority:  e.Priority,
			Supported: cpu.Supports(features, e.SIMDLevel),
		}
	}
	return out
}

// Dot2 writes dst[i] = dot(a[i], b[i]).
func Dot2(dst []float32, a, b []vec.Float2) {
	selected().Dot2(dst, a, b)
}

// Dot3 writes dst[i] = dot(a[i], b[i]).
func Dot3(dst []float32, a, b []vec.Float3) {
	selected().Dot3(dst, a, b)
}

// Dot4 writes dst[i] = dot(a[i], b[i]).
func Dot4(dst []float32, a, b []vec.Float4) {
	selected().Dot4(dst, a, b)
}

// Length2 writes the Euclidean length of each src vector to dst.
func Length2(dst []float32, src []vec.Float2) {
	Dot2(dst, src, src)
	sqrtInPlace(dst)
}

// Length3 writes the Euclidean length of each src vector to dst.
func Length3(dst []float32, src []vec.Float3) {
	Dot3(dst, src, src)
	sqrtInPlace(dst)
}

// Length4 writes the Euclidean length of each src vector to dst.
func Length4(dst []float32, src []vec.Float4) {
	Dot4(dst, src, src)
	sqrtInPlace(dst)
}

func sqrtInPlace(x []float32) {
	for i, v := range x {
		x[i] = float32(math.Sqrt(float64(v)))
	}
}

// Normalize2 writes vec.Normalize2(src[i]) to dst[i]. dst may alias src.
func Normalize2(dst, src []vec.Float2) {
	if len(dst) != len(src) {
		panic("batch: slice length mismatch")
	}
	for i, v := range src {
		dst[i] = vec.Normalize2(v)
	}
}

// Normalize3 writes vec.Normalize3(src[i]) to dst[i]. dst may alias src.
func Normalize3(dst, src []vec.Float3) {
	if len(dst) != len(src) {
		panic("batch: slice length mismatch")
	}
	for i, v := range src {
		dst[i] = vec.Normalize3(v)
	}
}

// Normalize4 writes vec.Normalize4(src[i]) to dst[i]. dst may alias src.
func Normalize4(dst, src []vec.Float4) {
	if len(dst) != len(src) {
		panic("batch: slice length mismatch")
	}
	for i, v := range src {
		dst[i] = vec.Normalize4(v)
	}
}
