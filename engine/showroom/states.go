package showroom

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/syntheticmagus/showroom-camera/common"
	"github.com/syntheticmagus/showroom-camera/engine/trajectory"
)

// ErrInvalidState is returned when a behavior state fails validation before
// it is installed: a missing trajectory, or radius limits that invert after
// defaulting.
var ErrInvalidState = errors.New("invalid showroom camera state")

// Behavior identifies which facade currently owns the visible camera pose.
// While a transition is in flight, the behavior reflects the destination.
type Behavior int

const (
	// BehaviorMatchmove is the non-interactive behavior that continuously
	// copies an externally authored trajectory's pose.
	BehaviorMatchmove Behavior = iota
	// BehaviorArcRotate is the interactive orbit behavior around a fixed
	// target.
	BehaviorArcRotate
)

func (b Behavior) String() string {
	switch b {
	case BehaviorMatchmove:
		return "Matchmove"
	case BehaviorArcRotate:
		return "ArcRotate"
	default:
		return "Unknown"
	}
}

// MatchmoveState describes the matchmove behavior: a trajectory to follow and
// the depth in front of it at which the focus point is synthesized. The state
// is supplied per invocation and never mutated; the trajectory must keep
// producing coherent transforms for as long as the state is active.
type MatchmoveState struct {
	// Trajectory is the externally animated object to follow. Required.
	Trajectory trajectory.Trajectory

	// FocusDepth is the distance ahead of the camera used to synthesize the
	// focus point. Zero or negative means the controller's default (1).
	FocusDepth float32
}

// validate fails fast on a state that would silently freeze the camera.
func (s MatchmoveState) validate() error {
	if s.Trajectory == nil {
		return fmt.Errorf("%w: matchmove state has no trajectory", ErrInvalidState)
	}
	return nil
}

// ArcRotateState describes the arc-rotate behavior: where the orbit camera
// starts, what it pivots around, and its zoom envelope. Zero-valued optional
// fields take defaults derived from the starting geometry.
type ArcRotateState struct {
	// StartingPosition is the orbit camera's initial world-space position.
	StartingPosition mgl32.Vec3

	// Target is the orbit pivot point.
	Target mgl32.Vec3

	// LowerRadiusLimit is the minimum zoom distance.
	// Zero means the default: 0.1 × UpperRadiusLimit.
	LowerRadiusLimit float32

	// UpperRadiusLimit is the maximum zoom distance.
	// Zero means the default: 2 × distance(StartingPosition, Target).
	UpperRadiusLimit float32

	// WheelSensitivity is the wheel-zoom multiplier.
	// Zero means the controller's default (0.01).
	WheelSensitivity float32
}

// normalize applies defaulting and validates the resulting limits.
//
// Parameters:
//   - defaultWheelSensitivity: controller-level wheel default
//
// Returns:
//   - ArcRotateState: the state with all optional fields resolved
//   - error: ErrInvalidState if the limits invert after defaulting
func (s ArcRotateState) normalize(defaultWheelSensitivity float32) (ArcRotateState, error) {
	out := s
	out.UpperRadiusLimit = common.Coalesce(out.UpperRadiusLimit, 2*out.StartingPosition.Sub(out.Target).Len())
	out.LowerRadiusLimit = common.Coalesce(out.LowerRadiusLimit, 0.1*out.UpperRadiusLimit)
	out.WheelSensitivity = common.Coalesce(out.WheelSensitivity, defaultWheelSensitivity)

	if out.LowerRadiusLimit < 0 || out.UpperRadiusLimit < out.LowerRadiusLimit {
		return out, fmt.Errorf("%w: radius limits [%v, %v] invert",
			ErrInvalidState, out.LowerRadiusLimit, out.UpperRadiusLimit)
	}
	return out, nil
}
