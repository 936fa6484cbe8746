package showroom

import (
	"github.com/syntheticmagus/showroom-camera/config"
	"github.com/syntheticmagus/showroom-camera/engine/camera"
)

// ShowroomCameraOption is a functional option for configuring a ShowroomCamera.
type ShowroomCameraOption func(*showroomCameraImpl)

// WithInputSource sets the input subsystem attached to the orbit camera when
// arc-rotate activates. Without one, arc-rotate still poses correctly but is
// not interactive.
//
// Parameters:
//   - input: the external input source
//
// Returns:
//   - ShowroomCameraOption: functional option to set the input source
func WithInputSource(input camera.InputSource) ShowroomCameraOption {
	return func(c *showroomCameraImpl) {
		c.input = input
	}
}

// WithFov sets the initial vertical field of view on both cameras.
//
// Parameters:
//   - fov: field of view in radians
//
// Returns:
//   - ShowroomCameraOption: functional option to set the field of view
func WithFov(fov float32) ShowroomCameraOption {
	return func(c *showroomCameraImpl) {
		c.fov = fov
	}
}

// WithClipPlanes sets the initial near and far clipping plane distances on
// both cameras.
//
// Parameters:
//   - minZ: near plane distance
//   - maxZ: far plane distance
//
// Returns:
//   - ShowroomCameraOption: functional option to set the clip planes
func WithClipPlanes(minZ, maxZ float32) ShowroomCameraOption {
	return func(c *showroomCameraImpl) {
		c.minZ = minZ
		c.maxZ = maxZ
	}
}

// WithEnableMouseWheel sets whether wheel-zoom input is forwarded while
// arc-rotate is active.
//
// Parameters:
//   - enable: whether wheel zoom is forwarded
//
// Returns:
//   - ShowroomCameraOption: functional option to set the wheel flag
func WithEnableMouseWheel(enable bool) ShowroomCameraOption {
	return func(c *showroomCameraImpl) {
		c.enableMouseWheel = enable
	}
}

// WithDefaultFocusDepth sets the focus depth used when a MatchmoveState does
// not specify one.
//
// Parameters:
//   - depth: distance ahead of the camera, must be > 0 to take effect
//
// Returns:
//   - ShowroomCameraOption: functional option to set the default focus depth
func WithDefaultFocusDepth(depth float32) ShowroomCameraOption {
	return func(c *showroomCameraImpl) {
		if depth > 0 {
			c.defaultFocusDepth = depth
		}
	}
}

// WithDefaultWheelSensitivity sets the wheel sensitivity used when an
// ArcRotateState does not specify one.
//
// Parameters:
//   - sensitivity: multiplier applied to wheel deltas, must be > 0 to take effect
//
// Returns:
//   - ShowroomCameraOption: functional option to set the default sensitivity
func WithDefaultWheelSensitivity(sensitivity float32) ShowroomCameraOption {
	return func(c *showroomCameraImpl) {
		if sensitivity > 0 {
			c.defaultWheelSensitivity = sensitivity
		}
	}
}

// WithZoomConvergenceRate sets the per-tick exponential approach rate used by
// SetArcRotateZoomPercent.
//
// Parameters:
//   - rate: fraction of the remaining distance covered each tick, must be in (0, 1] to take effect
//
// Returns:
//   - ShowroomCameraOption: functional option to set the convergence rate
func WithZoomConvergenceRate(rate float32) ShowroomCameraOption {
	return func(c *showroomCameraImpl) {
		if rate > 0 && rate <= 1 {
			c.zoomConvergenceRate = rate
		}
	}
}

// WithSettings applies a loaded configuration file to the camera. The
// settings' tick rate is not consumed here; it configures the host.
//
// Parameters:
//   - settings: configuration values, typically from config.Load
//
// Returns:
//   - ShowroomCameraOption: functional option applying the settings
func WithSettings(settings config.Settings) ShowroomCameraOption {
	return func(c *showroomCameraImpl) {
		c.fov = settings.Fov
		c.minZ = settings.MinZ
		c.maxZ = settings.MaxZ
		c.enableMouseWheel = settings.EnableMouseWheel
		WithDefaultFocusDepth(settings.FocusDepth)(c)
		WithDefaultWheelSensitivity(settings.WheelSensitivity)(c)
		WithZoomConvergenceRate(settings.ZoomConvergenceRate)(c)
	}
}
