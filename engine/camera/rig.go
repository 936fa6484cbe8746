package camera

import (
	"sync"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/syntheticmagus/showroom-camera/common"
)

// rigImpl is the single implementation of Rig.
type rigImpl struct {
	mu *sync.Mutex

	position    mgl32.Vec3
	orientation mgl32.Quat

	perspective
}

// Rig is the camera transform exclusively owned and written by the
// matchmove-follow and transition tasks. Unlike the arc-rotate camera, which
// derives its transform from user input, the rig is posed directly: position
// plus a look orientation whose local -Z axis is forward and +Y axis is up.
type Rig interface {
	Camera

	// Position returns the rig's world-space position.
	//
	// Returns:
	//   - mgl32.Vec3: world-space position
	Position() mgl32.Vec3

	// SetPosition sets the rig's world-space position.
	//
	// Parameters:
	//   - position: world-space coordinates
	SetPosition(position mgl32.Vec3)

	// Orientation returns the rig's look orientation.
	//
	// Returns:
	//   - mgl32.Quat: unit quaternion, local -Z forward, +Y up
	Orientation() mgl32.Quat

	// SetOrientation sets the rig's look orientation.
	//
	// Parameters:
	//   - orientation: unit quaternion, local -Z forward, +Y up
	SetOrientation(orientation mgl32.Quat)

	// SetPose writes position and orientation together, so a per-frame task
	// updates the whole transform in one call.
	//
	// Parameters:
	//   - position: world-space coordinates
	//   - orientation: unit quaternion, local -Z forward, +Y up
	SetPose(position mgl32.Vec3, orientation mgl32.Quat)

	// Forward returns the rig's unit look direction.
	//
	// Returns:
	//   - mgl32.Vec3: unit forward vector
	Forward() mgl32.Vec3

	// Up returns the rig's unit up vector.
	//
	// Returns:
	//   - mgl32.Vec3: unit up vector
	Up() mgl32.Vec3
}

var _ Rig = &rigImpl{}

// NewRig creates a rig camera at the origin looking down -Z with sensible
// perspective defaults.
//
// Parameters:
//   - options: functional options to configure the rig
//
// Returns:
//   - Rig: the newly created rig camera
func NewRig(options ...RigOption) Rig {
	r := &rigImpl{
		mu:          &sync.Mutex{},
		orientation: mgl32.QuatIdent(),
		perspective: defaultPerspective(),
	}
	for _, option := range options {
		option(r)
	}
	return r
}

func (r *rigImpl) Position() mgl32.Vec3 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.position
}

func (r *rigImpl) SetPosition(position mgl32.Vec3) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.position = position
}

func (r *rigImpl) Orientation() mgl32.Quat {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.orientation
}

func (r *rigImpl) SetOrientation(orientation mgl32.Quat) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orientation = orientation
}

func (r *rigImpl) SetPose(position mgl32.Vec3, orientation mgl32.Quat) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.position = position
	r.orientation = orientation
}

func (r *rigImpl) Forward() mgl32.Vec3 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.orientation.Rotate(mgl32.Vec3{0, 0, -1})
}

func (r *rigImpl) Up() mgl32.Vec3 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.orientation.Rotate(mgl32.Vec3{0, 1, 0})
}

func (r *rigImpl) Fov() float32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.fov
}

func (r *rigImpl) SetFov(fov float32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fov = fov
}

func (r *rigImpl) MinZ() float32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.minZ
}

func (r *rigImpl) SetMinZ(minZ float32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.minZ = minZ
}

func (r *rigImpl) MaxZ() float32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.maxZ
}

func (r *rigImpl) SetMaxZ(maxZ float32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.maxZ = maxZ
}

func (r *rigImpl) WorldMatrix() mgl32.Mat4 {
	r.mu.Lock()
	defer r.mu.Unlock()
	forward := r.orientation.Rotate(mgl32.Vec3{0, 0, -1})
	up := r.orientation.Rotate(mgl32.Vec3{0, 1, 0})
	return common.ComposeWorldMatrix(r.position, forward, up)
}

func (r *rigImpl) ViewMatrix() mgl32.Mat4 {
	return r.WorldMatrix().Inv()
}
