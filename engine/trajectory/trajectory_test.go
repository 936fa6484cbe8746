package trajectory

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/syntheticmagus/showroom-camera/common"
	"github.com/syntheticmagus/showroom-camera/engine/host"
)

const testEpsilon = 1e-4

func TestNodeDefaults(t *testing.T) {
	n := NewNode()
	if !n.Forward().ApproxEqualThreshold(mgl32.Vec3{0, 0, -1}, testEpsilon) {
		t.Errorf("default forward = %v; expected -Z", n.Forward())
	}
	if !n.Up().ApproxEqualThreshold(mgl32.Vec3{0, 1, 0}, testEpsilon) {
		t.Errorf("default up = %v; expected +Y", n.Up())
	}
}

func TestNodeParentComposition(t *testing.T) {
	// Parent at (10, 0, 0) rotated 90° around Y; child at local (0, 0, -1).
	parent := NewNode(
		WithLocalPosition(mgl32.Vec3{10, 0, 0}),
		WithLocalOrientation(mgl32.QuatRotate(float32(math.Pi/2), mgl32.Vec3{0, 1, 0})),
	)
	child := NewNode(
		WithLocalPosition(mgl32.Vec3{0, 0, -1}),
		WithParent(parent),
	)

	// Local -Z rotated 90° about Y lands on -X.
	want := mgl32.Vec3{9, 0, 0}
	if got := child.Position(); !got.ApproxEqualThreshold(want, testEpsilon) {
		t.Errorf("composed position = %v; expected %v", got, want)
	}
	if got := child.Forward(); !got.ApproxEqualThreshold(mgl32.Vec3{-1, 0, 0}, testEpsilon) {
		t.Errorf("composed forward = %v; expected -X", got)
	}
}

func TestClipSampleInterpolates(t *testing.T) {
	clip, err := NewClip([]Keyframe{
		{Time: 0, Position: mgl32.Vec3{0, 0, 0}, Orientation: mgl32.QuatIdent()},
		{Time: 2, Position: mgl32.Vec3{10, 0, 0}, Orientation: mgl32.QuatRotate(float32(math.Pi/2), mgl32.Vec3{0, 1, 0})},
	})
	if err != nil {
		t.Fatal(err)
	}

	position, orientation := clip.Sample(1)
	if !position.ApproxEqualThreshold(mgl32.Vec3{5, 0, 0}, testEpsilon) {
		t.Errorf("position at t=1: %v; expected (5,0,0)", position)
	}
	// Halfway through a 90° yaw is a 45° yaw.
	gotForward := orientation.Rotate(mgl32.Vec3{0, 0, -1})
	wantForward := mgl32.QuatRotate(float32(math.Pi/4), mgl32.Vec3{0, 1, 0}).Rotate(mgl32.Vec3{0, 0, -1})
	if !gotForward.ApproxEqualThreshold(wantForward, testEpsilon) {
		t.Errorf("forward at t=1: %v; expected %v", gotForward, wantForward)
	}

	// Clamp outside the keyframe range.
	position, _ = clip.Sample(-5)
	if !position.ApproxEqualThreshold(mgl32.Vec3{0, 0, 0}, testEpsilon) {
		t.Errorf("position before start: %v; expected origin", position)
	}
	position, _ = clip.Sample(100)
	if !position.ApproxEqualThreshold(mgl32.Vec3{10, 0, 0}, testEpsilon) {
		t.Errorf("position past end: %v; expected (10,0,0)", position)
	}
}

func TestClipRequiresKeyframes(t *testing.T) {
	if _, err := NewClip(nil); err == nil {
		t.Error("expected error for empty clip")
	}
	if _, err := NewClip([]Keyframe{{Time: -1}}); err == nil {
		t.Error("expected error for negative keyframe time")
	}
}

func TestPlayerFollowsTicks(t *testing.T) {
	clip, err := NewClip([]Keyframe{
		{Time: 0, Position: mgl32.Vec3{0, 0, 0}, Orientation: mgl32.QuatIdent()},
		{Time: 1, Position: mgl32.Vec3{60, 0, 0}, Orientation: mgl32.QuatIdent()},
	})
	if err != nil {
		t.Fatal(err)
	}

	node := NewNode()
	source := host.NewManual(60)
	player := NewPlayer(node, clip, false)
	player.Bind(source)

	// Paused player ignores ticks.
	source.TickN(10)
	if got := node.Position(); !got.ApproxEqualThreshold(mgl32.Vec3{}, testEpsilon) {
		t.Fatalf("paused player moved node to %v", got)
	}

	player.Play()
	source.TickN(30) // half a second at 60 fps
	want := mgl32.Vec3{30, 0, 0}
	if got := node.Position(); !got.ApproxEqualThreshold(want, 1e-2) {
		t.Errorf("position after 30 ticks = %v; expected %v", got, want)
	}
}

func TestNodeImplementsTrajectoryFocusScenario(t *testing.T) {
	// A node at the origin facing +Z (a 180° yaw) with focus depth 10 should
	// put the derived focus point at (0, 0, 10).
	forward, up, err := common.OrthonormalLookBasis(mgl32.Vec3{0, 0, 1}, mgl32.Vec3{0, 1, 0})
	if err != nil {
		t.Fatal(err)
	}
	n := NewNode(WithLocalOrientation(common.OrientationFromLookBasis(forward, up)))

	focus := n.Position().Add(n.Forward().Mul(10))
	if !focus.ApproxEqualThreshold(mgl32.Vec3{0, 0, 10}, testEpsilon) {
		t.Errorf("focus point = %v; expected (0,0,10)", focus)
	}
}
