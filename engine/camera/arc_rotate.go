package camera

import (
	"math"
	"sync"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/syntheticmagus/showroom-camera/common"
)

// InputSource is the boundary to the external input subsystem (mouse/touch
// drag, wheel zoom). The camera does not interpret device events itself; an
// attached source drives the camera through its orbit methods.
type InputSource interface {
	// Attach binds the source to a camera. While attached, the source is
	// expected to translate user input into Orbit/Zoom calls on cam. When
	// enableWheel is false the source must not forward wheel-zoom input.
	//
	// Parameters:
	//   - cam: the camera to drive
	//   - enableWheel: whether wheel-zoom input is forwarded
	Attach(cam ArcRotate, enableWheel bool)

	// Detach unbinds the source from whatever camera it was driving.
	Detach()
}

// arcRotateImpl is the single implementation of ArcRotate.
// Orbit methods modify spherical coordinates and recompute position.
type arcRotateImpl struct {
	mu *sync.Mutex

	// Camera position (computed from target + spherical coords)
	position mgl32.Vec3
	target   mgl32.Vec3

	// Spherical coordinates (offset from target)
	radius    float32
	azimuth   float32 // Horizontal angle around Y axis
	elevation float32 // Vertical angle from horizontal plane

	// Orbit constraints
	lowerRadiusLimit float32
	upperRadiusLimit float32
	minElevation     float32
	maxElevation     float32

	wheelSensitivity float32

	input         InputSource
	inputAttached bool

	perspective
}

// ArcRotate is an interactive orbit camera: user input adjusts azimuth,
// elevation, and radius around a fixed target. Its world transform is derived
// internally from position and target, never copied in, which is what allows
// an exact pose to be computed from a configured position before the camera
// is shown or interactive.
type ArcRotate interface {
	Camera

	// Target returns the orbit pivot point.
	//
	// Returns:
	//   - mgl32.Vec3: world-space target position
	Target() mgl32.Vec3

	// SetTarget sets the orbit pivot point and recomputes position from
	// spherical coordinates.
	//
	// Parameters:
	//   - target: world-space coordinates
	SetTarget(target mgl32.Vec3)

	// Position returns the camera's world-space position.
	//
	// Returns:
	//   - mgl32.Vec3: world-space position
	Position() mgl32.Vec3

	// SetPosition moves the camera by rebuilding radius, azimuth, and
	// elevation from the offset to the current target. The stored position is
	// re-derived from the rebuilt spherical coordinates, so radius and
	// elevation clamps apply.
	//
	// Parameters:
	//   - position: desired world-space coordinates
	SetPosition(position mgl32.Vec3)

	// Radius returns the current distance from the target.
	//
	// Returns:
	//   - float32: current orbit radius
	Radius() float32

	// SetRadius sets the orbit radius, clamped to the radius limits.
	//
	// Parameters:
	//   - radius: new distance from target
	SetRadius(radius float32)

	// LowerRadiusLimit returns the minimum allowed orbit radius.
	//
	// Returns:
	//   - float32: minimum zoom distance
	LowerRadiusLimit() float32

	// SetLowerRadiusLimit sets the minimum allowed orbit radius.
	//
	// Parameters:
	//   - limit: minimum zoom distance
	SetLowerRadiusLimit(limit float32)

	// UpperRadiusLimit returns the maximum allowed orbit radius.
	//
	// Returns:
	//   - float32: maximum zoom distance
	UpperRadiusLimit() float32

	// SetUpperRadiusLimit sets the maximum allowed orbit radius.
	//
	// Parameters:
	//   - limit: maximum zoom distance
	SetUpperRadiusLimit(limit float32)

	// WheelSensitivity returns the wheel-zoom sensitivity multiplier.
	//
	// Returns:
	//   - float32: multiplier applied to wheel deltas
	WheelSensitivity() float32

	// SetWheelSensitivity sets the wheel-zoom sensitivity multiplier.
	//
	// Parameters:
	//   - sensitivity: multiplier applied to wheel deltas
	SetWheelSensitivity(sensitivity float32)

	// Azimuth returns the horizontal angle around the Y axis.
	//
	// Returns:
	//   - float32: azimuth in radians
	Azimuth() float32

	// SetAzimuth sets the horizontal angle and recomputes position.
	//
	// Parameters:
	//   - azimuth: horizontal angle in radians
	SetAzimuth(azimuth float32)

	// Elevation returns the vertical angle from the horizontal plane.
	//
	// Returns:
	//   - float32: elevation in radians
	Elevation() float32

	// SetElevation sets the vertical angle, clamped to the elevation bounds,
	// and recomputes position.
	//
	// Parameters:
	//   - elevation: vertical angle in radians
	SetElevation(elevation float32)

	// Zoom adjusts the orbit radius by delta scaled with the wheel
	// sensitivity. Positive delta zooms in.
	//
	// Parameters:
	//   - delta: raw wheel delta
	Zoom(delta float32)

	// AttachInput binds an input source so user input drives the camera.
	// Any previously attached source is detached first.
	//
	// Parameters:
	//   - input: the input source to attach
	//   - enableWheel: whether wheel-zoom input is forwarded
	AttachInput(input InputSource, enableWheel bool)

	// DetachInput unbinds the attached input source, if any.
	DetachInput()

	// InputAttached reports whether an input source is currently attached.
	//
	// Returns:
	//   - bool: true when user input drives the camera
	InputAttached() bool
}

var _ ArcRotate = &arcRotateImpl{}

// NewArcRotate creates an orbit camera with sensible defaults.
//
// Parameters:
//   - options: functional options to configure the camera
//
// Returns:
//   - ArcRotate: the newly created orbit camera
func NewArcRotate(options ...ArcRotateOption) ArcRotate {
	a := &arcRotateImpl{
		mu: &sync.Mutex{},

		radius:    10.0,
		azimuth:   0.0,
		elevation: float32(math.Pi / 6),

		lowerRadiusLimit: 0.1,
		upperRadiusLimit: 1000.0,
		minElevation:     float32(-math.Pi/2 + 0.05),
		maxElevation:     float32(math.Pi/2 - 0.05),

		wheelSensitivity: 0.01,

		perspective: defaultPerspective(),
	}

	for _, option := range options {
		option(a)
	}

	a.updatePosition()
	return a
}

// --- internal helpers ---

// updatePosition recomputes the camera position from spherical coordinates.
// Must be called whenever radius, azimuth, elevation, or target changes.
// Caller must hold the mutex.
func (a *arcRotateImpl) updatePosition() {
	a.clampSpherical()

	cosElev := float32(math.Cos(float64(a.elevation)))
	sinElev := float32(math.Sin(float64(a.elevation)))
	cosAzim := float32(math.Cos(float64(a.azimuth)))
	sinAzim := float32(math.Sin(float64(a.azimuth)))

	a.position[0] = a.target[0] + a.radius*cosElev*sinAzim
	a.position[1] = a.target[1] + a.radius*sinElev
	a.position[2] = a.target[2] + a.radius*cosElev*cosAzim
}

// clampSpherical enforces the radius and elevation bounds.
// Caller must hold the mutex.
func (a *arcRotateImpl) clampSpherical() {
	if a.radius < a.lowerRadiusLimit {
		a.radius = a.lowerRadiusLimit
	}
	if a.radius > a.upperRadiusLimit {
		a.radius = a.upperRadiusLimit
	}
	if a.elevation < a.minElevation {
		a.elevation = a.minElevation
	}
	if a.elevation > a.maxElevation {
		a.elevation = a.maxElevation
	}
}

// --- ArcRotate implementation ---

func (a *arcRotateImpl) Target() mgl32.Vec3 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.target
}

func (a *arcRotateImpl) SetTarget(target mgl32.Vec3) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.target = target
	a.updatePosition()
}

func (a *arcRotateImpl) Position() mgl32.Vec3 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.position
}

func (a *arcRotateImpl) SetPosition(position mgl32.Vec3) {
	a.mu.Lock()
	defer a.mu.Unlock()

	offset := position.Sub(a.target)
	radius := offset.Len()
	if radius < 1e-8 {
		// Coincident with the target; hold the current angles.
		a.radius = 0
		a.updatePosition()
		return
	}

	sinElev := offset[1] / radius
	if sinElev > 1 {
		sinElev = 1
	}
	if sinElev < -1 {
		sinElev = -1
	}

	a.radius = radius
	a.elevation = float32(math.Asin(float64(sinElev)))
	a.azimuth = float32(math.Atan2(float64(offset[0]), float64(offset[2])))
	a.updatePosition()
}

func (a *arcRotateImpl) Radius() float32 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.radius
}

func (a *arcRotateImpl) SetRadius(radius float32) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.radius = radius
	a.updatePosition()
}

func (a *arcRotateImpl) LowerRadiusLimit() float32 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.lowerRadiusLimit
}

func (a *arcRotateImpl) SetLowerRadiusLimit(limit float32) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.lowerRadiusLimit = limit
	a.updatePosition()
}

func (a *arcRotateImpl) UpperRadiusLimit() float32 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.upperRadiusLimit
}

func (a *arcRotateImpl) SetUpperRadiusLimit(limit float32) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.upperRadiusLimit = limit
	a.updatePosition()
}

func (a *arcRotateImpl) WheelSensitivity() float32 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.wheelSensitivity
}

func (a *arcRotateImpl) SetWheelSensitivity(sensitivity float32) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.wheelSensitivity = sensitivity
}

func (a *arcRotateImpl) Azimuth() float32 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.azimuth
}

func (a *arcRotateImpl) SetAzimuth(azimuth float32) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.azimuth = azimuth
	a.updatePosition()
}

func (a *arcRotateImpl) Elevation() float32 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.elevation
}

func (a *arcRotateImpl) SetElevation(elevation float32) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.elevation = elevation
	a.updatePosition()
}

func (a *arcRotateImpl) Zoom(delta float32) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.radius -= delta * a.wheelSensitivity
	a.updatePosition()
}

func (a *arcRotateImpl) AttachInput(input InputSource, enableWheel bool) {
	a.mu.Lock()
	if a.inputAttached && a.input != nil {
		a.input.Detach()
	}
	a.input = input
	a.inputAttached = input != nil
	a.mu.Unlock()

	if input != nil {
		input.Attach(a, enableWheel)
	}
}

func (a *arcRotateImpl) DetachInput() {
	a.mu.Lock()
	input := a.input
	attached := a.inputAttached
	a.input = nil
	a.inputAttached = false
	a.mu.Unlock()

	if attached && input != nil {
		input.Detach()
	}
}

func (a *arcRotateImpl) InputAttached() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.inputAttached
}

func (a *arcRotateImpl) Fov() float32 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.fov
}

func (a *arcRotateImpl) SetFov(fov float32) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.fov = fov
}

func (a *arcRotateImpl) MinZ() float32 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.minZ
}

func (a *arcRotateImpl) SetMinZ(minZ float32) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.minZ = minZ
}

func (a *arcRotateImpl) MaxZ() float32 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.maxZ
}

func (a *arcRotateImpl) SetMaxZ(maxZ float32) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.maxZ = maxZ
}

func (a *arcRotateImpl) WorldMatrix() mgl32.Mat4 {
	a.mu.Lock()
	defer a.mu.Unlock()

	forward, up, err := common.OrthonormalLookBasis(a.target.Sub(a.position), mgl32.Vec3{0, 1, 0})
	if err != nil {
		// Radius zero or a gimbal pole; the elevation clamps make this rare.
		forward = mgl32.Vec3{0, 0, -1}
		up = mgl32.Vec3{0, 1, 0}
	}
	return common.ComposeWorldMatrix(a.position, forward, up)
}

func (a *arcRotateImpl) ViewMatrix() mgl32.Mat4 {
	return a.WorldMatrix().Inv()
}
