package camera

import "github.com/go-gl/mathgl/mgl32"

// RigOption is a functional option for configuring a Rig.
type RigOption func(*rigImpl)

// WithRigPosition sets the initial world-space position.
//
// Parameters:
//   - position: world-space coordinates
//
// Returns:
//   - RigOption: functional option to set the position
func WithRigPosition(position mgl32.Vec3) RigOption {
	return func(r *rigImpl) {
		r.position = position
	}
}

// WithRigOrientation sets the initial look orientation.
//
// Parameters:
//   - orientation: unit quaternion, local -Z forward, +Y up
//
// Returns:
//   - RigOption: functional option to set the orientation
func WithRigOrientation(orientation mgl32.Quat) RigOption {
	return func(r *rigImpl) {
		r.orientation = orientation
	}
}

// WithRigFov sets the initial vertical field of view.
//
// Parameters:
//   - fov: field of view in radians
//
// Returns:
//   - RigOption: functional option to set the field of view
func WithRigFov(fov float32) RigOption {
	return func(r *rigImpl) {
		r.fov = fov
	}
}

// WithRigClipPlanes sets the initial near and far clipping plane distances.
//
// Parameters:
//   - minZ: near plane distance
//   - maxZ: far plane distance
//
// Returns:
//   - RigOption: functional option to set the clip planes
func WithRigClipPlanes(minZ, maxZ float32) RigOption {
	return func(r *rigImpl) {
		r.minZ = minZ
		r.maxZ = maxZ
	}
}
