package fused

import (
	"github.com/cwbudde/algo-vec/batch/internal/registry"
	"github.com/cwbudde/algo-vec/internal/cpu"
)

// init registers the FMA kernels above the generic ones. math.FMA falls back
// to software without hardware support, so they require SIMDFMA.
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "fused",
		SIMDLevel: cpu.SIMDFMA,
		Priority:  10,

		Dot2: Dot2,
		Dot3: Dot3,
		Dot4: Dot4,
	})
}
