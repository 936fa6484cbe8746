package trajectory

import "github.com/go-gl/mathgl/mgl32"

// NodeOption is a functional option for configuring a Node.
type NodeOption func(*nodeImpl)

// WithLocalPosition sets the initial parent-space position.
//
// Parameters:
//   - position: parent-space coordinates
//
// Returns:
//   - NodeOption: functional option to set the local position
func WithLocalPosition(position mgl32.Vec3) NodeOption {
	return func(n *nodeImpl) {
		n.localPosition = position
	}
}

// WithLocalOrientation sets the initial parent-space orientation.
//
// Parameters:
//   - orientation: unit quaternion
//
// Returns:
//   - NodeOption: functional option to set the local orientation
func WithLocalOrientation(orientation mgl32.Quat) NodeOption {
	return func(n *nodeImpl) {
		n.localOrientation = orientation
	}
}

// WithParent sets the initial parent node.
//
// Parameters:
//   - parent: the parent node
//
// Returns:
//   - NodeOption: functional option to set the parent
func WithParent(parent Node) NodeOption {
	return func(n *nodeImpl) {
		n.parent = parent
	}
}
