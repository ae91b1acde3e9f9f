package assets

import (
	"github.com/Faultbox/stagehand/pkg/math"
)

// IDUndefined marks a node without a mesh or material reference.
const IDUndefined = -1

// MeshTransformNode is one node of an asset's component hierarchy: a
// local-to-parent transform, an optional index into the asset's local
// mesh group, and the child nodes in importer order. The tree is owned
// by its LoadedAssetData and never mutated after load.
type MeshTransformNode struct {
	// Transform maps this node's local space into its parent's space.
	Transform math.Mat4
	// MeshIDLocal indexes the asset's local mesh group, or IDUndefined
	// for a pure transform/group node.
	MeshIDLocal int
	// MaterialIDLocal indexes the asset's local material group, or
	// IDUndefined for the default material.
	MaterialIDLocal int
	Children        []MeshTransformNode
}

// WalkHierarchy traverses the tree depth-first in child order. visit is
// called once per node with the context produced by its parent's visit;
// the returned value is handed to the node's children. Returning an
// error stops the walk. The scene composer and the collision builder
// both traverse through here so their composition order can never
// diverge.
func WalkHierarchy[T any](n *MeshTransformNode, ctx T, visit func(n *MeshTransformNode, ctx T) (T, error)) error {
	next, err := visit(n, ctx)
	if err != nil {
		return err
	}
	for i := range n.Children {
		if err := WalkHierarchy(&n.Children[i], next, visit); err != nil {
			return err
		}
	}
	return nil
}
