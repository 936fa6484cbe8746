package showroom

import (
	"github.com/syntheticmagus/showroom-camera/common"
	"github.com/syntheticmagus/showroom-camera/engine/camera"
	"github.com/syntheticmagus/showroom-camera/engine/scheduler"
)

// zoomEpsilon is the radius distance, in radius units, at which a driven zoom
// is considered converged.
const zoomEpsilon = 0.001

// orbitFacade owns the interactive orbit camera. Posing and activating are
// deliberately separate steps: pose configures the camera fully — so its
// exact world transform can be queried before it is shown or interactive —
// and activate attaches user input afterwards.
type orbitFacade struct {
	cam   camera.ArcRotate
	input camera.InputSource
}

// pose configures the orbit camera from a normalized state without enabling
// user input.
func (f *orbitFacade) pose(state ArcRotateState) {
	f.cam.SetLowerRadiusLimit(state.LowerRadiusLimit)
	f.cam.SetUpperRadiusLimit(state.UpperRadiusLimit)
	f.cam.SetWheelSensitivity(state.WheelSensitivity)
	f.cam.SetTarget(state.Target)
	f.cam.SetPosition(state.StartingPosition)
}

// activate attaches user input handling; wheel-zoom input is stripped when
// enableWheel is false. A facade constructed without an input source still
// poses correctly; activation is then a no-op.
func (f *orbitFacade) activate(enableWheel bool) {
	if f.input == nil {
		return
	}
	f.cam.AttachInput(f.input, enableWheel)
}

// deactivate detaches user input handling.
func (f *orbitFacade) deactivate() {
	f.cam.DetachInput()
}

// currentPose decomposes the orbit camera's live world transform into a full
// pose. This is how an exact hand-off pose is obtained when leaving arc-rotate
// mid-interaction.
func (f *orbitFacade) currentPose() common.Pose {
	position, forward, up := common.DecomposeWorldMatrix(f.cam.WorldMatrix())
	return common.Pose{
		Position:   position,
		Forward:    forward,
		Up:         up,
		FocusPoint: f.cam.Target(),
	}
}

// driveZoomTask returns a routine that exponentially approaches the radius at
// percent of the way between the lower and upper limits, stepping every tick
// until within zoomEpsilon. It is an alternative to wheel input and is
// cancelled like any other task when something else is scheduled.
func (f *orbitFacade) driveZoomTask(percent, convergenceRate float32) scheduler.Task {
	target := f.cam.LowerRadiusLimit() + percent*(f.cam.UpperRadiusLimit()-f.cam.LowerRadiusLimit())
	return scheduler.TaskFunc(func() scheduler.Status {
		radius := f.cam.Radius()
		diff := target - radius
		if diff < zoomEpsilon && diff > -zoomEpsilon {
			f.cam.SetRadius(target)
			return scheduler.Done
		}
		f.cam.SetRadius(radius + diff*convergenceRate)
		return scheduler.Continue
	})
}
