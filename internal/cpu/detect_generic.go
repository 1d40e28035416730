//go:build !amd64 && !arm64

package cpu

import "runtime"

// detectFeaturesImpl reports no extensions; only generic kernels apply.
func detectFeaturesImpl() Features {
	return Features{
		Architecture: runtime.GOARCH,
	}
}
