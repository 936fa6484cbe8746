package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Camera is the surface shared by the rig camera and the arc-rotate camera:
// perspective parameters plus the transforms a renderer consumes. The
// showroom controller forwards visual parameters to both cameras so they stay
// consistent across behavior switches.
type Camera interface {
	// Fov returns the vertical field of view in radians.
	//
	// Returns:
	//   - float32: field of view in radians
	Fov() float32

	// SetFov sets the vertical field of view in radians.
	//
	// Parameters:
	//   - fov: field of view in radians
	SetFov(fov float32)

	// MinZ returns the near clipping plane distance.
	//
	// Returns:
	//   - float32: near plane distance
	MinZ() float32

	// SetMinZ sets the near clipping plane distance.
	//
	// Parameters:
	//   - minZ: near plane distance
	SetMinZ(minZ float32)

	// MaxZ returns the far clipping plane distance.
	//
	// Returns:
	//   - float32: far plane distance
	MaxZ() float32

	// SetMaxZ sets the far clipping plane distance.
	//
	// Parameters:
	//   - maxZ: far plane distance
	SetMaxZ(maxZ float32)

	// WorldMatrix returns the camera-to-world matrix, column-major, with
	// basis columns (right, up, backward) and translation in the fourth
	// column.
	//
	// Returns:
	//   - mgl32.Mat4: the world matrix
	WorldMatrix() mgl32.Mat4

	// ViewMatrix returns the world-to-camera matrix (inverse of WorldMatrix).
	//
	// Returns:
	//   - mgl32.Mat4: the view matrix
	ViewMatrix() mgl32.Mat4
}

// perspective holds the passthrough parameters shared by both camera kinds.
// Embedding structs are responsible for locking.
type perspective struct {
	fov  float32
	minZ float32
	maxZ float32
}

func defaultPerspective() perspective {
	return perspective{
		fov:  45.0 * (math.Pi / 180.0), // radians
		minZ: 0.1,
		maxZ: 100.0,
	}
}
