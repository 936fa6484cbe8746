package camera

import "github.com/go-gl/mathgl/mgl32"

// ArcRotateOption is a functional option for configuring an ArcRotate camera.
type ArcRotateOption func(*arcRotateImpl)

// WithTarget sets the orbit pivot point.
//
// Parameters:
//   - target: world-space coordinates
//
// Returns:
//   - ArcRotateOption: functional option to set the target
func WithTarget(target mgl32.Vec3) ArcRotateOption {
	return func(a *arcRotateImpl) {
		a.target = target
	}
}

// WithRadius sets the initial orbit radius (distance from target).
//
// Parameters:
//   - radius: distance from the orbit target
//
// Returns:
//   - ArcRotateOption: functional option to set the radius
func WithRadius(radius float32) ArcRotateOption {
	return func(a *arcRotateImpl) {
		a.radius = radius
	}
}

// WithRadiusLimits sets the minimum and maximum orbit radius.
//
// Parameters:
//   - lower: minimum zoom distance
//   - upper: maximum zoom distance
//
// Returns:
//   - ArcRotateOption: functional option to set radius limits
func WithRadiusLimits(lower, upper float32) ArcRotateOption {
	return func(a *arcRotateImpl) {
		a.lowerRadiusLimit = lower
		a.upperRadiusLimit = upper
	}
}

// WithElevationLimits sets the minimum and maximum elevation angles.
//
// Parameters:
//   - min: minimum vertical angle in radians
//   - max: maximum vertical angle in radians (prevents flipping over the pole)
//
// Returns:
//   - ArcRotateOption: functional option to set elevation limits
func WithElevationLimits(min, max float32) ArcRotateOption {
	return func(a *arcRotateImpl) {
		a.minElevation = min
		a.maxElevation = max
	}
}

// WithWheelSensitivity sets the wheel-zoom sensitivity multiplier.
//
// Parameters:
//   - sensitivity: multiplier applied to wheel deltas
//
// Returns:
//   - ArcRotateOption: functional option to set wheel sensitivity
func WithWheelSensitivity(sensitivity float32) ArcRotateOption {
	return func(a *arcRotateImpl) {
		a.wheelSensitivity = sensitivity
	}
}
