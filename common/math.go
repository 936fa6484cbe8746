package common

import (
	"errors"

	"github.com/go-gl/mathgl/mgl32"
)

// ErrDegenerateGeometry is returned when pose math is asked to build a basis
// from a zero-length or parallel vector pair. Callers should hold their
// previous valid pose rather than propagate the bad result.
var ErrDegenerateGeometry = errors.New("degenerate geometry")

// degenerateEpsilon is the squared-length floor below which a vector is
// treated as zero for basis construction.
const degenerateEpsilon = 1e-12

// LerpVec3 linearly interpolates between a and b.
//
// Parameters:
//   - a: start point (returned when t = 0)
//   - b: end point (returned when t = 1)
//   - t: interpolation factor, expected in [0, 1]
//
// Returns:
//   - mgl32.Vec3: the interpolated point
func LerpVec3(a, b mgl32.Vec3, t float32) mgl32.Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}

// OrthonormalLookBasis rebuilds an orthonormal (forward, up) pair from raw,
// possibly drifted vectors. Forward is normalized as-is; up is recomputed as
// right × forward so the pair is exactly perpendicular even when the raw up
// came from interpolation.
//
// Parameters:
//   - rawForward: desired look direction, any non-zero length
//   - rawUp: approximate up direction, must not be parallel to rawForward
//
// Returns:
//   - forward: unit look direction
//   - up: unit up vector perpendicular to forward
//   - error: ErrDegenerateGeometry if rawForward is zero or parallel to rawUp
func OrthonormalLookBasis(rawForward, rawUp mgl32.Vec3) (forward, up mgl32.Vec3, err error) {
	if rawForward.Dot(rawForward) < degenerateEpsilon {
		return forward, up, ErrDegenerateGeometry
	}
	forward = rawForward.Normalize()

	right := forward.Cross(rawUp)
	if right.Dot(right) < degenerateEpsilon {
		return forward, up, ErrDegenerateGeometry
	}
	right = right.Normalize()

	up = right.Cross(forward).Normalize()
	return forward, up, nil
}

// OrientationFromLookBasis builds the rotation that orients a camera whose
// local -Z axis is forward and local +Y axis is up. The inputs must already be
// orthonormal (see OrthonormalLookBasis); the result is undefined otherwise.
//
// Parameters:
//   - forward: unit look direction
//   - up: unit up vector perpendicular to forward
//
// Returns:
//   - mgl32.Quat: unit quaternion carrying the look orientation
func OrientationFromLookBasis(forward, up mgl32.Vec3) mgl32.Quat {
	right := forward.Cross(up)

	// Column-major rotation matrix with basis columns (right, up, backward).
	m := mgl32.Mat4{
		right[0], right[1], right[2], 0,
		up[0], up[1], up[2], 0,
		-forward[0], -forward[1], -forward[2], 0,
		0, 0, 0, 1,
	}
	return mgl32.Mat4ToQuat(m).Normalize()
}

// ComposeWorldMatrix builds a camera-to-world matrix from a position and an
// orthonormal look basis. Basis columns are (right, up, backward) with the
// translation in the fourth column, matching the decomposition convention
// used throughout this module.
//
// Parameters:
//   - position: world-space camera position
//   - forward: unit look direction
//   - up: unit up vector perpendicular to forward
//
// Returns:
//   - mgl32.Mat4: column-major world matrix
func ComposeWorldMatrix(position, forward, up mgl32.Vec3) mgl32.Mat4 {
	right := forward.Cross(up)
	return mgl32.Mat4{
		right[0], right[1], right[2], 0,
		up[0], up[1], up[2], 0,
		-forward[0], -forward[1], -forward[2], 0,
		position[0], position[1], position[2], 1,
	}
}

// DecomposeWorldMatrix extracts position, forward, and up from a camera-to-world
// matrix composed with ComposeWorldMatrix conventions: translation column,
// third basis column negated for forward, second basis column for up.
//
// Parameters:
//   - m: column-major world matrix
//
// Returns:
//   - position, forward, up: the decomposed pose components
func DecomposeWorldMatrix(m mgl32.Mat4) (position, forward, up mgl32.Vec3) {
	position = m.Col(3).Vec3()
	forward = m.Col(2).Vec3().Mul(-1)
	up = m.Col(1).Vec3()
	return position, forward, up
}
