package trajectory

import (
	"sync"

	"github.com/go-gl/mathgl/mgl32"
)

// Trajectory is the boundary to an externally animated object. All values are
// absolute — already composed through any parent transforms — and must stay
// coherent for as long as a consumer follows the trajectory.
type Trajectory interface {
	// Position returns the current absolute world-space position.
	//
	// Returns:
	//   - mgl32.Vec3: absolute position
	Position() mgl32.Vec3

	// Orientation returns the current absolute orientation.
	//
	// Returns:
	//   - mgl32.Quat: unit quaternion, local -Z forward, +Y up
	Orientation() mgl32.Quat

	// Forward returns the current unit forward vector.
	//
	// Returns:
	//   - mgl32.Vec3: unit forward vector
	Forward() mgl32.Vec3

	// Up returns the current unit up vector.
	//
	// Returns:
	//   - mgl32.Vec3: unit up vector
	Up() mgl32.Vec3
}

// nodeImpl is the single implementation of Node.
type nodeImpl struct {
	mu *sync.Mutex

	localPosition    mgl32.Vec3
	localOrientation mgl32.Quat

	parent Node
}

// Node is a transform that animation data can drive: a local position and
// orientation, optionally composed through a parent. Node implements
// Trajectory, so a posed or clip-driven node can be handed directly to a
// matchmove consumer.
type Node interface {
	Trajectory

	// SetLocalPosition sets the node's position relative to its parent.
	//
	// Parameters:
	//   - position: parent-space coordinates
	SetLocalPosition(position mgl32.Vec3)

	// SetLocalOrientation sets the node's orientation relative to its parent.
	//
	// Parameters:
	//   - orientation: unit quaternion
	SetLocalOrientation(orientation mgl32.Quat)

	// LocalPosition returns the node's position relative to its parent.
	//
	// Returns:
	//   - mgl32.Vec3: parent-space coordinates
	LocalPosition() mgl32.Vec3

	// LocalOrientation returns the node's orientation relative to its parent.
	//
	// Returns:
	//   - mgl32.Quat: unit quaternion
	LocalOrientation() mgl32.Quat

	// SetParent re-parents the node. Passing nil makes the node a root.
	//
	// Parameters:
	//   - parent: the new parent, or nil
	SetParent(parent Node)

	// Parent returns the node's parent, or nil for a root node.
	//
	// Returns:
	//   - Node: the parent node or nil
	Parent() Node
}

var _ Node = &nodeImpl{}

// NewNode creates a root node at the origin with identity orientation.
//
// Parameters:
//   - options: functional options to configure the node
//
// Returns:
//   - Node: the newly created node
func NewNode(options ...NodeOption) Node {
	n := &nodeImpl{
		mu:               &sync.Mutex{},
		localOrientation: mgl32.QuatIdent(),
	}
	for _, option := range options {
		option(n)
	}
	return n
}

func (n *nodeImpl) SetLocalPosition(position mgl32.Vec3) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.localPosition = position
}

func (n *nodeImpl) SetLocalOrientation(orientation mgl32.Quat) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.localOrientation = orientation
}

func (n *nodeImpl) LocalPosition() mgl32.Vec3 {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.localPosition
}

func (n *nodeImpl) LocalOrientation() mgl32.Quat {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.localOrientation
}

func (n *nodeImpl) SetParent(parent Node) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.parent = parent
}

func (n *nodeImpl) Parent() Node {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.parent
}

func (n *nodeImpl) Position() mgl32.Vec3 {
	n.mu.Lock()
	position := n.localPosition
	parent := n.parent
	n.mu.Unlock()

	if parent == nil {
		return position
	}
	return parent.Position().Add(parent.Orientation().Rotate(position))
}

func (n *nodeImpl) Orientation() mgl32.Quat {
	n.mu.Lock()
	orientation := n.localOrientation
	parent := n.parent
	n.mu.Unlock()

	if parent == nil {
		return orientation
	}
	return parent.Orientation().Mul(orientation).Normalize()
}

func (n *nodeImpl) Forward() mgl32.Vec3 {
	return n.Orientation().Rotate(mgl32.Vec3{0, 0, -1})
}

func (n *nodeImpl) Up() mgl32.Vec3 {
	return n.Orientation().Rotate(mgl32.Vec3{0, 1, 0})
}
