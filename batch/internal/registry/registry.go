// Package registry holds the batch kernel variants and selects one per CPU.
//
// Kernel packages register themselves from init(). The batch package looks up
// the highest-priority entry whose SIMD level the detected CPU supports.
package registry

import (
	"sync"

	"github.com/cwbudde/algo-vec/internal/cpu"
	"github.com/cwbudde/algo-vec/vec"
)

// OpEntry is one registered kernel variant.
type OpEntry struct {
	// Name identifies the variant (e.g. "generic", "fused").
	Name string

	// SIMDLevel is the instruction set the variant requires.
	SIMDLevel cpu.SIMDLevel

	// Priority orders compatible variants; higher wins. Generic is 0.
	Priority int

	// Dot2 writes dst[i] = dot(a[i], b[i]).
	Dot2 func(dst []float32, a, b []vec.Float2)

	// Dot3 writes dst[i] = dot(a[i], b[i]).
	Dot3 func(dst []float32, a, b []vec.Float3)

	// Dot4 writes dst[i] = dot(a[i], b[i]).
	Dot4 func(dst []float32, a, b []vec.Float4)
}

// OpRegistry is a priority-ordered set of kernel variants.
type OpRegistry struct {
	mu      sync.RWMutex
	entries []OpEntry
	sorted  bool
}

// Global is the registry the batch package dispatches through.
var Global = &OpRegistry{}

// Register adds a variant. Registrations should finish before the first Lookup.
func (r *OpRegistry) Register(entry OpEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry)
	r.sorted = false
}

// Lookup returns the highest-priority variant supported by features, or nil
// when none is.
func (r *OpRegistry) Lookup(features cpu.Features) *OpEntry {
	r.mu.Lock()
	if !r.sorted {
		r.sortByPriority()
		r.sorted = true
	}
	r.mu.Unlock()

	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		entry := &r.entries[i]
		if cpu.Supports(features, entry.SIMDLevel) {
			return entry
		}
	}

	return nil
}

// sortByPriority orders entries by descending priority, keeping registration
// order among equals. Caller holds the write lock.
func (r *OpRegistry) sortByPriority() {
	for i := 1; i < len(r.entries); i++ {
		key := r.entries[i]
		j := i - 1
		for j >= 0 && r.entries[j].Priority < key.Priority {
			r.entries[j+1] = r.entries[j]
			j--
		}
		r.entries[j+1] = key
	}
}

// ListEntries returns a copy of the registered variants.
func (r *OpRegistry) ListEntries() []OpEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]OpEntry, len(r.entries))
	copy(entries, r.entries)
	return entries
}

// Reset removes every variant. Tests only.
func (r *OpRegistry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = nil
	r.sorted = false
}
