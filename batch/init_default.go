//go:build !purego

package batch

import (
	_ "github.com/cwbudde/algo-vec/batch/internal/arch/fused"
	_ "github.com/cwbudde/algo-vec/batch/internal/arch/generic"
)
