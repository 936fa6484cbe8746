package camera

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/syntheticmagus/showroom-camera/common"
)

const testEpsilon = 1e-4

func TestArcRotateSetPositionRebuildsSpherical(t *testing.T) {
	tests := []struct {
		name     string
		target   mgl32.Vec3
		position mgl32.Vec3
	}{
		{"behind on +Z", mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 0, 10}},
		{"offset target", mgl32.Vec3{0, 1, 0}, mgl32.Vec3{0, 5, -10}},
		{"diagonal", mgl32.Vec3{1, 2, 3}, mgl32.Vec3{4, 5, 6}},
	}

	for _, test := range tests {
		cam := NewArcRotate(
			WithTarget(test.target),
			WithRadiusLimits(0.01, 1000),
		)
		cam.SetPosition(test.position)

		if got := cam.Position(); !got.ApproxEqualThreshold(test.position, testEpsilon) {
			t.Errorf("%s: position = %v; expected %v", test.name, got, test.position)
		}
		wantRadius := test.position.Sub(test.target).Len()
		if got := cam.Radius(); math.Abs(float64(got-wantRadius)) > testEpsilon {
			t.Errorf("%s: radius = %v; expected %v", test.name, got, wantRadius)
		}
	}
}

func TestArcRotateRadiusClamping(t *testing.T) {
	cam := NewArcRotate(WithRadiusLimits(2, 20), WithRadius(10))

	cam.SetRadius(100)
	if got := cam.Radius(); got != 20 {
		t.Errorf("radius = %v; expected clamp to 20", got)
	}

	cam.SetRadius(0.5)
	if got := cam.Radius(); got != 2 {
		t.Errorf("radius = %v; expected clamp to 2", got)
	}
}

func TestArcRotateZoomUsesWheelSensitivity(t *testing.T) {
	cam := NewArcRotate(
		WithRadius(10),
		WithRadiusLimits(0.1, 100),
		WithWheelSensitivity(0.01),
	)

	cam.Zoom(100) // 100 * 0.01 = 1 unit closer
	if got := cam.Radius(); math.Abs(float64(got-9)) > testEpsilon {
		t.Errorf("radius after zoom = %v; expected 9", got)
	}
}

func TestArcRotateWorldMatrixDecomposition(t *testing.T) {
	target := mgl32.Vec3{0, 1, 0}
	position := mgl32.Vec3{0, 5, -10}

	cam := NewArcRotate(WithTarget(target), WithRadiusLimits(0.01, 1000))
	cam.SetPosition(position)

	gotPosition, gotForward, gotUp := common.DecomposeWorldMatrix(cam.WorldMatrix())

	if !gotPosition.ApproxEqualThreshold(position, testEpsilon) {
		t.Errorf("decomposed position = %v; expected %v", gotPosition, position)
	}
	wantForward := target.Sub(position).Normalize()
	if !gotForward.ApproxEqualThreshold(wantForward, testEpsilon) {
		t.Errorf("decomposed forward = %v; expected %v", gotForward, wantForward)
	}
	if math.Abs(float64(gotForward.Dot(gotUp))) > testEpsilon {
		t.Errorf("decomposed forward·up = %v; expected 0", gotForward.Dot(gotUp))
	}
}

// recordingInput tracks attach/detach calls for boundary tests.
type recordingInput struct {
	attached    bool
	wheel       bool
	attachCount int
	detachCount int
}

func (r *recordingInput) Attach(cam ArcRotate, enableWheel bool) {
	r.attached = true
	r.wheel = enableWheel
	r.attachCount++
}

func (r *recordingInput) Detach() {
	r.attached = false
	r.detachCount++
}

func TestArcRotateInputAttachDetach(t *testing.T) {
	cam := NewArcRotate()
	input := &recordingInput{}

	cam.AttachInput(input, false)
	if !cam.InputAttached() || !input.attached {
		t.Fatal("input should be attached")
	}
	if input.wheel {
		t.Error("wheel input should be stripped when disabled")
	}

	cam.DetachInput()
	if cam.InputAttached() || input.attached {
		t.Error("input should be detached")
	}

	// Detaching twice is harmless.
	cam.DetachInput()
	if input.detachCount != 1 {
		t.Errorf("detach count = %d; expected 1", input.detachCount)
	}
}

func TestRigPoseAndMatrices(t *testing.T) {
	forward, up, err := common.OrthonormalLookBasis(mgl32.Vec3{0, 0, 1}, mgl32.Vec3{0, 1, 0})
	if err != nil {
		t.Fatal(err)
	}

	rig := NewRig()
	rig.SetPose(mgl32.Vec3{1, 2, 3}, common.OrientationFromLookBasis(forward, up))

	if got := rig.Forward(); !got.ApproxEqualThreshold(forward, testEpsilon) {
		t.Errorf("forward = %v; expected %v", got, forward)
	}
	if got := rig.Up(); !got.ApproxEqualThreshold(up, testEpsilon) {
		t.Errorf("up = %v; expected %v", got, up)
	}

	gotPosition, gotForward, gotUp := common.DecomposeWorldMatrix(rig.WorldMatrix())
	if !gotPosition.ApproxEqualThreshold(mgl32.Vec3{1, 2, 3}, testEpsilon) {
		t.Errorf("world matrix position = %v", gotPosition)
	}
	if !gotForward.ApproxEqualThreshold(forward, testEpsilon) {
		t.Errorf("world matrix forward = %v", gotForward)
	}
	if !gotUp.ApproxEqualThreshold(up, testEpsilon) {
		t.Errorf("world matrix up = %v", gotUp)
	}

	// View is the inverse of world.
	ident := rig.ViewMatrix().Mul4(rig.WorldMatrix())
	if !ident.ApproxEqualThreshold(mgl32.Ident4(), 1e-3) {
		t.Errorf("view * world != identity: %v", ident)
	}
}

func TestCameraPerspectivePassthrough(t *testing.T) {
	for _, cam := range []Camera{NewRig(), NewArcRotate()} {
		cam.SetFov(1.2)
		cam.SetMinZ(0.5)
		cam.SetMaxZ(500)

		if cam.Fov() != 1.2 || cam.MinZ() != 0.5 || cam.MaxZ() != 500 {
			t.Errorf("perspective passthrough failed: fov=%v minZ=%v maxZ=%v", cam.Fov(), cam.MinZ(), cam.MaxZ())
		}
	}
}
