package generic

import (
	"github.com/cwbudde/algo-vec/batch/internal/registry"
	"github.com/cwbudde/algo-vec/internal/cpu"
)

// init registers the pure Go kernels. They are the fallback every CPU and
// ALGOVEC_FORCE_GENERIC can select.
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "generic",
		SIMDLevel: cpu.SIMDNone,
		Priority:  0,

		Dot2: Dot2,
		Dot3: Dot3,
		Dot4: Dot4,
	})
}
