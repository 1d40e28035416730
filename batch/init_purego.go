//go:build purego

package batch

import (
	// Generic kernels only.
	_ "github.com/cwbudde/algo-vec/batch/internal/arch/generic"
)
