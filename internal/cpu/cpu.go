// Package cpu provides CPU feature detection for batch kernel selection.
//
// Detection runs lazily on the first call to DetectFeatures and is cached.
// Setting ALGOVEC_FORCE_GENERIC to a true value (or any value strconv cannot
// parse) disables every accelerated kernel for the lifetime of the process.
package cpu

import (
	"os"
	"strconv"
	"sync"
)

// ForceGenericEnv names the environment variable read during detection.
const ForceGenericEnv = "ALGOVEC_FORCE_GENERIC"

// SIMDLevel identifies the instruction set extension a kernel requires.
type SIMDLevel int

const (
	// SIMDNone marks a pure Go kernel that runs everywhere.
	SIMDNone SIMDLevel = iota

	// SIMDFMA indicates a hardware fused multiply-add (x86 FMA3 or ARMv8).
	SIMDFMA
)

// String returns a human-readable name for the SIMD level.
func (s SIMDLevel) String() string {
	switch s {
	case SIMDNone:
		return "None"
	case SIMDFMA:
		return "FMA"
	default:
		return "Unknown"
	}
}

// Features describes CPU capabilities relevant to kernel selection.
type Features struct {
	// Reported for diagnostics; no kernel is gated on these.
	HasSSE2 bool
	HasAVX2 bool
	HasNEON bool

	// HasFMA reports a fused multiply-add instruction that math.FMA lowers to.
	HasFMA bool

	// ForceGeneric restricts selection to SIMDNone kernels.
	ForceGeneric bool

	Architecture string // runtime.GOARCH
}

var (
	detectedFeatures Features
	detectOnce       sync.Once
	detectMutex      sync.Mutex

	// forcedFeatures overrides hardware detection in tests.
	forcedFeatures *Features
	forcedMutex    sync.RWMutex
)

// DetectFeatures returns the CPU features of the running system, or the
// features installed by SetForcedFeatures. Safe for concurrent use.
func DetectFeatures() Features {
	forcedMutex.RLock()
	forced := forcedFeatures
	forcedMutex.RUnlock()

	if forced != nil {
		return *forced
	}

	detectMutex.Lock()
	detectOnce.Do(func() {
		detectedFeatures = detectFeaturesImpl()
		detectedFeatures.ForceGeneric = forceGenericFromEnv()
	})
	features := detectedFeatures
	detectMutex.Unlock()

	return features
}

// HasFMA reports whether the CPU has a fused multiply-add instruction.
func HasFMA() bool {
	return DetectFeatures().HasFMA
}

// SetForcedFeatures overrides CPU feature detection. Tests only.
func SetForcedFeatures(f Features) {
	forcedMutex.Lock()
	defer forcedMutex.Unlock()
	forced := f
	forcedFeatures = &forced
}

// ResetDetection clears any forced features and the detection cache.
func ResetDetection() {
	forcedMutex.Lock()
	forcedFeatures = nil
	forcedMutex.Unlock()

	detectMutex.Lock()
	detectOnce = sync.Once{}
	detectedFeatures = Features{}
	detectMutex.Unlock()
}

// Supports reports whether features can run a kernel built for level.
func Supports(features Features, level SIMDLevel) bool {
	if features.ForceGeneric {
		return level == SIMDNone
	}

	switch level {
	case SIMDNone:
		return true
	case SIMDFMA:
		return features.HasFMA
	default:
		return false
	}
}

func forceGenericFromEnv() bool {
	v, ok := os.LookupEnv(ForceGenericEnv)
	if !ok || v == "" {
		return false
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return true
	}
	return b
}
