package showroom

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/syntheticmagus/showroom-camera/common"
	"github.com/syntheticmagus/showroom-camera/engine/camera"
	"github.com/syntheticmagus/showroom-camera/engine/scheduler"
)

// transitionTask synthesizes intermediate camera poses between a captured
// starting pose and a destination pose over a fixed number of frames. Frames
// run 0..total inclusive, so the final step lands exactly on the destination
// pose before hand-off. The destination is re-evaluated every step; a fixed
// destination is expressed as a closure over a snapshot.
type transitionTask struct {
	rig camera.Rig

	start common.Pose
	dest  func() common.Pose

	frame int
	total int

	// onStep publishes the interpolated focus point each executed step.
	onStep func(focus mgl32.Vec3)
	// onDone installs the destination behavior after the final step.
	onDone func()
}

var _ scheduler.Task = &transitionTask{}

func (t *transitionTask) Step() scheduler.Status {
	s := float32(t.frame) / float32(t.total)
	dest := t.dest()

	position := common.LerpVec3(t.start.Position, dest.Position, s)
	focus := common.LerpVec3(t.start.FocusPoint, dest.FocusPoint, s)
	rawUp := common.LerpVec3(t.start.Up, dest.Up, s)

	// Forward is re-derived from the interpolated focus, then the drifted up
	// is squared back against it. A zero-length focus-to-position vector
	// skips the rig write for this step, holding the previous valid pose.
	forward, up, err := common.OrthonormalLookBasis(focus.Sub(position), rawUp)
	if err == nil {
		t.rig.SetPose(position, common.OrientationFromLookBasis(forward, up))
		t.onStep(focus)
	}

	if t.frame >= t.total {
		t.onDone()
		return scheduler.Done
	}
	t.frame++
	return scheduler.Continue
}
