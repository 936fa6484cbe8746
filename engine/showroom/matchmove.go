package showroom

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/syntheticmagus/showroom-camera/common"
	"github.com/syntheticmagus/showroom-camera/engine/camera"
	"github.com/syntheticmagus/showroom-camera/engine/scheduler"
)

// matchmoveFacade samples an external trajectory each frame and writes it
// into the rig, deriving a focus point at a configurable depth ahead.
type matchmoveFacade struct {
	rig camera.Rig
}

// sampleAndApply copies the trajectory's current absolute pose into the rig
// and returns the derived focus point: position + forward × focusDepth.
func (f *matchmoveFacade) sampleAndApply(state MatchmoveState, focusDepth float32) mgl32.Vec3 {
	position := state.Trajectory.Position()
	f.rig.SetPose(position, state.Trajectory.Orientation())
	return position.Add(state.Trajectory.Forward().Mul(focusDepth))
}

// samplePose reads the trajectory's current pose without touching the rig.
// Transitions targeting matchmove call this every step, because the
// trajectory keeps moving while the transition runs.
func (f *matchmoveFacade) samplePose(state MatchmoveState, focusDepth float32) common.Pose {
	position := state.Trajectory.Position()
	forward := state.Trajectory.Forward()
	return common.Pose{
		Position:   position,
		Forward:    forward,
		Up:         state.Trajectory.Up(),
		FocusPoint: position.Add(forward.Mul(focusDepth)),
	}
}

// followTask returns the continuous matchmove-follow routine: every tick it
// re-samples the live trajectory, so the rig follows ongoing animation
// instead of holding a one-shot snapshot. The task never finishes on its own;
// it runs until the scheduler replaces it.
func (f *matchmoveFacade) followTask(state MatchmoveState, focusDepth float32, onFocus func(mgl32.Vec3)) scheduler.Task {
	return scheduler.TaskFunc(func() scheduler.Status {
		onFocus(f.sampleAndApply(state, focusDepth))
		return scheduler.Continue
	})
}
