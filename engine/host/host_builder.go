package host

import (
	"time"

	"github.com/syntheticmagus/showroom-camera/engine/profiler"
)

// HostOption is a functional option for configuring a Host.
type HostOption func(*hostImpl)

// WithTickRate sets the initial tick rate in frames per second.
//
// Parameters:
//   - fps: target frames per second (ignored if <= 0)
//
// Returns:
//   - HostOption: functional option to set the tick rate
func WithTickRate(fps float64) HostOption {
	return func(h *hostImpl) {
		if fps > 0 {
			h.tickRate = time.Second / time.Duration(fps)
		}
	}
}

// WithProfiling enables per-second tick-rate and memory logging.
//
// Parameters:
//   - enabled: whether the host runs a profiler alongside the tick loop
//
// Returns:
//   - HostOption: functional option to toggle profiling
func WithProfiling(enabled bool) HostOption {
	return func(h *hostImpl) {
		if enabled {
			h.profiler = profiler.NewProfiler(time.Second)
		} else {
			h.profiler = nil
		}
	}
}
