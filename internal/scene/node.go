// Package scene provides the scene graph and the composer that
// instantiates cached assets into it as drawable hierarchies.
package scene

import (
	"github.com/Faultbox/stagehand/pkg/math"
)

// Node is a transform in the scene graph. Its world transform is the
// product of every local transform from the root down to it.
type Node struct {
	parent   *Node
	children []*Node

	transform math.Mat4
}

// NewRootNode creates a parentless node with an identity transform.
func NewRootNode() *Node {
	return &Node{transform: math.Identity()}
}

// CreateChild attaches a new child node with an identity transform.
func (n *Node) CreateChild() *Node {
	child := &Node{parent: n, transform: math.Identity()}
	n.children = append(n.children, child)
	return child
}

// Parent returns the parent node, nil for a root.
func (n *Node) Parent() *Node { return n.parent }

// Children returns the child nodes in attachment order.
func (n *Node) Children() []*Node { return n.children }

// Transform returns the node's local-to-parent transform.
func (n *Node) Transform() math.Mat4 { return n.transform }

// SetTransform replaces the node's local-to-parent transform.
func (n *Node) SetTransform(t math.Mat4) { n.transform = t }

// Translate post-multiplies a translation onto the local transform.
func (n *Node) Translate(v math.Vec3) {
	n.transform = math.Translate(v.X, v.Y, v.Z).Mul(n.transform)
}

// WorldTransform returns the accumulated transform from the root.
func (n *Node) WorldTransform() math.Mat4 {
	if n.parent == nil {
		return n.transform
	}
	return n.parent.WorldTransform().Mul(n.transform)
}
