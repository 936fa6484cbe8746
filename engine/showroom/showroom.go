package showroom

import (
	"math"
	"sync"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/syntheticmagus/showroom-camera/common"
	"github.com/syntheticmagus/showroom-camera/engine/camera"
	"github.com/syntheticmagus/showroom-camera/engine/host"
	"github.com/syntheticmagus/showroom-camera/engine/scheduler"
)

// showroomCameraImpl is the single implementation of ShowroomCamera.
type showroomCameraImpl struct {
	mu *sync.Mutex

	source host.TickSource
	sched  scheduler.Scheduler

	rig      camera.Rig
	orbitCam camera.ArcRotate
	input    camera.InputSource

	orbit     *orbitFacade
	matchmove *matchmoveFacade

	// active reflects the destination behavior even while a transition is in
	// flight. orbitOwnsPose is true only once arc-rotate has fully entered
	// and the orbit camera's transform is the visible one.
	active        Behavior
	orbitOwnsPose bool
	activeOutput  camera.Camera

	// focusPoint is what the camera is conceptually looking at right now.
	// It is the one piece of state that survives across behavior switches:
	// every transition starts its focus interpolation from it.
	focusPoint mgl32.Vec3

	enableMouseWheel bool

	defaultFocusDepth       float32
	defaultWheelSensitivity float32
	zoomConvergenceRate     float32

	fov  float32
	minZ float32
	maxZ float32
}

// ShowroomCamera reconciles two incompatible camera behaviors — a
// non-interactive matchmove trajectory and an interactive arc-rotate orbit —
// into one always-continuous camera, including smooth procedural transitions
// between them. At all times exactly one per-frame task drives the camera:
// matchmove-follow, arc-rotate idle, or a transition; installing any
// operation cancels whatever was running.
type ShowroomCamera interface {
	// SetToMatchmoveState instantly switches to following the trajectory.
	// Any in-flight task is cancelled.
	//
	// Parameters:
	//   - state: the matchmove behavior description
	//
	// Returns:
	//   - error: ErrInvalidState if the state has no trajectory
	SetToMatchmoveState(state MatchmoveState) error

	// SetToArcRotateState instantly switches to interactive orbiting.
	// Any in-flight task is cancelled.
	//
	// Parameters:
	//   - state: the arc-rotate behavior description
	//
	// Returns:
	//   - error: ErrInvalidState if the radius limits invert after defaulting
	SetToArcRotateState(state ArcRotateState) error

	// AnimateToMatchmoveState smoothly blends from the current pose to the
	// trajectory over the given duration, then resumes normal matchmove
	// following. Calling any operation while the transition runs cancels it
	// outright. Durations <= 0 degrade to an instant switch.
	//
	// Parameters:
	//   - state: the destination matchmove behavior
	//   - seconds: transition duration
	//
	// Returns:
	//   - <-chan struct{}: closed after the final step and hand-off; never
	//     closed if the transition is superseded
	//   - error: ErrInvalidState if the state has no trajectory
	AnimateToMatchmoveState(state MatchmoveState, seconds float32) (<-chan struct{}, error)

	// AnimateToArcRotateState smoothly blends from the current pose to the
	// configured orbit pose, then enables interactive orbiting. Calling any
	// operation while the transition runs cancels it outright. Durations
	// <= 0 degrade to an instant switch.
	//
	// Parameters:
	//   - state: the destination arc-rotate behavior
	//   - seconds: transition duration
	//
	// Returns:
	//   - <-chan struct{}: closed after the final step and hand-off; never
	//     closed if the transition is superseded
	//   - error: ErrInvalidState if the radius limits invert after defaulting
	AnimateToArcRotateState(state ArcRotateState, seconds float32) (<-chan struct{}, error)

	// ActiveBehavior returns which behavior owns the camera. Mid-transition
	// it reflects the destination behavior.
	//
	// Returns:
	//   - Behavior: the active (or destination) behavior
	ActiveBehavior() Behavior

	// FocusPoint returns the point the camera is conceptually looking at.
	//
	// Returns:
	//   - mgl32.Vec3: the current focus point
	FocusPoint() mgl32.Vec3

	// ActiveCamera returns the camera object currently producing the visible
	// pose: the rig during matchmove and transitions, the orbit camera once
	// arc-rotate has fully entered.
	//
	// Returns:
	//   - camera.Camera: the active camera output
	ActiveCamera() camera.Camera

	// Rig returns the rig camera.
	//
	// Returns:
	//   - camera.Rig: the rig camera
	Rig() camera.Rig

	// ArcRotateCamera returns the owned orbit camera.
	//
	// Returns:
	//   - camera.ArcRotate: the orbit camera
	ArcRotateCamera() camera.ArcRotate

	// Fov returns the vertical field of view in radians.
	//
	// Returns:
	//   - float32: field of view in radians
	Fov() float32

	// SetFov forwards the field of view to both cameras.
	//
	// Parameters:
	//   - fov: field of view in radians
	SetFov(fov float32)

	// MinZ returns the near clipping plane distance.
	//
	// Returns:
	//   - float32: near plane distance
	MinZ() float32

	// SetMinZ forwards the near plane distance to both cameras.
	//
	// Parameters:
	//   - minZ: near plane distance
	SetMinZ(minZ float32)

	// MaxZ returns the far clipping plane distance.
	//
	// Returns:
	//   - float32: far plane distance
	MaxZ() float32

	// SetMaxZ forwards the far plane distance to both cameras.
	//
	// Parameters:
	//   - maxZ: far plane distance
	SetMaxZ(maxZ float32)

	// EnableMouseWheel reports whether wheel-zoom input is forwarded while
	// arc-rotate is active.
	//
	// Returns:
	//   - bool: true when wheel zoom is enabled
	EnableMouseWheel() bool

	// SetEnableMouseWheel toggles wheel-zoom input. If arc-rotate is active,
	// input is re-attached immediately with the new setting.
	//
	// Parameters:
	//   - enable: whether wheel zoom is forwarded
	SetEnableMouseWheel(enable bool)

	// SetArcRotateZoomPercent drives the orbit radius toward
	// lower + percent × (upper − lower) as an alternative to wheel input.
	// Write-only trigger; ignored unless arc-rotate is fully active. The
	// drive runs as a normal task and is cancelled by any other operation.
	//
	// Parameters:
	//   - percent: target position within the radius limits, clamped to [0, 1]
	SetArcRotateZoomPercent(percent float32)
}

var _ ShowroomCamera = &showroomCameraImpl{}

// NewShowroomCamera creates a showroom camera driven by the given tick
// source. The camera subscribes to the source once here and never
// unsubscribes.
//
// Parameters:
//   - source: per-frame tick provider (also supplies target frame rate and
//     animation speed ratio for transition step counts)
//   - options: functional options to configure the camera
//
// Returns:
//   - ShowroomCamera: the newly created showroom camera
func NewShowroomCamera(source host.TickSource, options ...ShowroomCameraOption) ShowroomCamera {
	c := &showroomCameraImpl{
		mu:     &sync.Mutex{},
		source: source,

		rig:      camera.NewRig(),
		orbitCam: camera.NewArcRotate(),

		active:           BehaviorMatchmove,
		enableMouseWheel: true,

		defaultFocusDepth:       1,
		defaultWheelSensitivity: 0.01,
		zoomConvergenceRate:     0.05,
	}

	for _, option := range options {
		option(c)
	}

	c.orbit = &orbitFacade{cam: c.orbitCam, input: c.input}
	c.matchmove = &matchmoveFacade{rig: c.rig}
	c.activeOutput = c.rig
	c.sched = scheduler.NewScheduler(source)

	if c.fov > 0 {
		c.rig.SetFov(c.fov)
		c.orbitCam.SetFov(c.fov)
	}
	if c.minZ > 0 {
		c.rig.SetMinZ(c.minZ)
		c.orbitCam.SetMinZ(c.minZ)
	}
	if c.maxZ > 0 {
		c.rig.SetMaxZ(c.maxZ)
		c.orbitCam.SetMaxZ(c.maxZ)
	}

	return c
}

// --- instant switches ---

func (c *showroomCameraImpl) SetToMatchmoveState(state MatchmoveState) error {
	if err := state.validate(); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.enterMatchmoveLocked(state)
	return nil
}

func (c *showroomCameraImpl) SetToArcRotateState(state ArcRotateState) error {
	normalized, err := state.normalize(c.defaultWheelSensitivity)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.enterArcRotateLocked(normalized)
	return nil
}

// enterMatchmoveLocked performs the full matchmove state entry: detach orbit
// input, select the rig as output, snap to the trajectory, and install the
// continuous follow task. Caller must hold the mutex.
func (c *showroomCameraImpl) enterMatchmoveLocked(state MatchmoveState) {
	c.orbit.deactivate()
	c.orbitOwnsPose = false
	c.activeOutput = c.rig

	depth := c.focusDepth(state)
	c.focusPoint = c.matchmove.sampleAndApply(state, depth)
	c.sched.Run(c.matchmove.followTask(state, depth, c.setFocusPoint))
	c.active = BehaviorMatchmove
}

// enterArcRotateLocked performs the full arc-rotate state entry: cancel the
// running task, pose and activate the orbit camera, and select it as output.
// Caller must hold the mutex.
func (c *showroomCameraImpl) enterArcRotateLocked(state ArcRotateState) {
	c.sched.Cancel()
	c.orbit.pose(state)
	c.activeOutput = c.orbitCam
	c.orbit.activate(c.enableMouseWheel)
	c.orbitOwnsPose = true
	c.focusPoint = state.Target
	c.active = BehaviorArcRotate
}

// --- animated switches ---

func (c *showroomCameraImpl) AnimateToMatchmoveState(state MatchmoveState, seconds float32) (<-chan struct{}, error) {
	if err := state.validate(); err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	total := c.stepCount(seconds)
	if total <= 0 {
		// Degenerate duration: an instant switch instead of computing 0/0.
		c.enterMatchmoveLocked(state)
		return closedChan(), nil
	}

	depth := c.focusDepth(state)
	start := c.captureStartLocked()
	done := make(chan struct{})

	c.active = BehaviorMatchmove
	c.sched.Run(&transitionTask{
		rig:   c.rig,
		start: start,
		// The trajectory keeps moving during the transition, so the
		// destination pose is re-sampled live every step.
		dest:   func() common.Pose { return c.matchmove.samplePose(state, depth) },
		total:  total,
		onStep: c.setFocusPoint,
		onDone: func() {
			c.mu.Lock()
			c.enterMatchmoveLocked(state)
			c.mu.Unlock()
			close(done)
		},
	})
	return done, nil
}

func (c *showroomCameraImpl) AnimateToArcRotateState(state ArcRotateState, seconds float32) (<-chan struct{}, error) {
	normalized, err := state.normalize(c.defaultWheelSensitivity)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	total := c.stepCount(seconds)
	if total <= 0 {
		c.enterArcRotateLocked(normalized)
		return closedChan(), nil
	}

	// Capture the starting pose before the destination reconfigures the
	// orbit camera, then pose it — without activating — so its exact
	// destination transform can be read back.
	start := c.captureStartLocked()
	c.orbit.pose(normalized)
	destination := c.orbit.currentPose()
	done := make(chan struct{})

	c.active = BehaviorArcRotate
	c.sched.Run(&transitionTask{
		rig:    c.rig,
		start:  start,
		dest:   func() common.Pose { return destination },
		total:  total,
		onStep: c.setFocusPoint,
		onDone: func() {
			c.mu.Lock()
			c.activeOutput = c.orbitCam
			c.orbit.activate(c.enableMouseWheel)
			c.orbitOwnsPose = true
			c.focusPoint = normalized.Target
			c.active = BehaviorArcRotate
			c.mu.Unlock()
			close(done)
		},
	})
	return done, nil
}

// captureStartLocked snapshots the pose a transition should start from. When
// the orbit camera truly owns the visible pose — not merely when arc-rotate
// is the destination of an in-flight transition — its live transform is
// first written into the rig and input is detached, guaranteeing a
// continuous hand-off from an arbitrary, possibly mid-gesture orbit pose.
// Caller must hold the mutex.
func (c *showroomCameraImpl) captureStartLocked() common.Pose {
	if c.orbitOwnsPose {
		pose := c.orbit.currentPose()
		c.rig.SetPose(pose.Position, pose.Orientation())
		c.orbit.deactivate()
		c.orbitOwnsPose = false
		c.activeOutput = c.rig
		c.focusPoint = pose.FocusPoint
		return pose
	}

	return common.Pose{
		Position:   c.rig.Position(),
		Forward:    c.rig.Forward(),
		Up:         c.rig.Up(),
		FocusPoint: c.focusPoint,
	}
}

// stepCount computes the inclusive frame count for a transition of the given
// duration: round(seconds × targetFrameRate / max(ratio, 1)). The ratio is
// floored at 1 so very low playback rates cannot blow up the count.
// Caller must hold the mutex.
func (c *showroomCameraImpl) stepCount(seconds float32) int {
	if seconds <= 0 {
		return 0
	}
	ratio := c.source.AnimationSpeedRatio()
	if ratio < 1 {
		ratio = 1
	}
	return int(math.Round(float64(seconds * c.source.TargetFrameRate() / ratio)))
}

func (c *showroomCameraImpl) focusDepth(state MatchmoveState) float32 {
	if state.FocusDepth > 0 {
		return state.FocusDepth
	}
	return c.defaultFocusDepth
}

func (c *showroomCameraImpl) setFocusPoint(focus mgl32.Vec3) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.focusPoint = focus
}

func closedChan() <-chan struct{} {
	ch := make(chan struct{})
	close(ch)
	return ch
}

// --- queries ---

func (c *showroomCameraImpl) ActiveBehavior() Behavior {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.active
}

func (c *showroomCameraImpl) FocusPoint() mgl32.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.focusPoint
}

func (c *showroomCameraImpl) ActiveCamera() camera.Camera {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.activeOutput
}

func (c *showroomCameraImpl) Rig() camera.Rig {
	return c.rig
}

func (c *showroomCameraImpl) ArcRotateCamera() camera.ArcRotate {
	return c.orbitCam
}

// --- passthrough parameters ---

func (c *showroomCameraImpl) Fov() float32 {
	return c.rig.Fov()
}

func (c *showroomCameraImpl) SetFov(fov float32) {
	c.rig.SetFov(fov)
	c.orbitCam.SetFov(fov)
}

func (c *showroomCameraImpl) MinZ() float32 {
	return c.rig.MinZ()
}

func (c *showroomCameraImpl) SetMinZ(minZ float32) {
	c.rig.SetMinZ(minZ)
	c.orbitCam.SetMinZ(minZ)
}

func (c *showroomCameraImpl) MaxZ() float32 {
	return c.rig.MaxZ()
}

func (c *showroomCameraImpl) SetMaxZ(maxZ float32) {
	c.rig.SetMaxZ(maxZ)
	c.orbitCam.SetMaxZ(maxZ)
}

func (c *showroomCameraImpl) EnableMouseWheel() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.enableMouseWheel
}

func (c *showroomCameraImpl) SetEnableMouseWheel(enable bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.enableMouseWheel = enable
	if c.orbitOwnsPose {
		// Re-attach so the new wheel setting takes effect immediately.
		c.orbit.activate(enable)
	}
}

func (c *showroomCameraImpl) SetArcRotateZoomPercent(percent float32) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.orbitOwnsPose {
		return
	}
	if percent < 0 {
		percent = 0
	}
	if percent > 1 {
		percent = 1
	}
	c.sched.Run(c.orbit.driveZoomTask(percent, c.zoomConvergenceRate))
}
