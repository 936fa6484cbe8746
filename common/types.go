// package common contains common types that are used throughout this module. They are not interface-wrapped structs, just plain structs that express
// commonly used data-types.
package common

import "github.com/go-gl/mathgl/mgl32"

// Pose is a full camera pose snapshot: where the camera is, how it is
// oriented, and what it is conceptually looking at. Forward and up are
// orthogonal unit vectors. FocusPoint is the authored or derived look-at
// point; it is not required to lie exactly along Forward.
type Pose struct {
	// Position is the camera's world-space position.
	Position mgl32.Vec3

	// Forward is the unit look direction.
	Forward mgl32.Vec3

	// Up is the unit up vector, perpendicular to Forward.
	Up mgl32.Vec3

	// FocusPoint is the world-space point the camera is conceptually looking at.
	FocusPoint mgl32.Vec3
}

// Orientation derives the pose's look orientation from its forward/up basis.
//
// Returns:
//   - mgl32.Quat: unit quaternion with local -Z along Forward and +Y along Up
func (p Pose) Orientation() mgl32.Quat {
	return OrientationFromLookBasis(p.Forward, p.Up)
}
