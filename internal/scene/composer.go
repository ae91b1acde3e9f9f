package scene

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/stagehand/internal/assets"
	"github.com/Faultbox/stagehand/pkg/math"
)

// Composer instantiates loaded assets from a resource cache into a
// scene graph. Composing never touches the cached data: every
// instantiation creates fresh nodes referencing the same global mesh
// and material indices.
type Composer struct {
	cache *assets.ResourceCache
	log   *zap.Logger
}

// NewComposer creates a composer over the given cache. A nil logger
// disables logging.
func NewComposer(cache *assets.ResourceCache, log *zap.Logger) *Composer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Composer{cache: cache, log: log}
}

// Compose instantiates the asset under key as a child hierarchy of
// parent, appending one drawable per mesh-bearing component to
// drawables. The returned node is the instantiated root.
//
// A nil parent or nil drawables makes the call a no-op: the asset
// must still be cached, but nothing is instantiated and the returned
// node is nil. When visNodes is non-nil every created node is also
// appended to it, in traversal order.
func (c *Composer) Compose(key string, parent *Node, drawables *DrawableGroup, lightSetupKey string, visNodes *[]*Node) (*Node, error) {
	asset, err := c.cache.Asset(key)
	if err != nil {
		return nil, fmt.Errorf("composing %q: %w", key, err)
	}
	if parent == nil || drawables == nil {
		return nil, nil
	}

	if !asset.Info.RequiresLighting {
		lightSetupKey = NoLightKey
	}

	// Same walk the collision builder uses, with the parent scene node
	// as the traversal context.
	meta := &asset.Meta
	var root *Node
	err = assets.WalkHierarchy(&meta.Root, parent,
		func(mt *assets.MeshTransformNode, parent *Node) (*Node, error) {
			node := parent.CreateChild()
			node.SetTransform(mt.Transform)
			if root == nil {
				root = node
			}
			if visNodes != nil {
				*visNodes = append(*visNodes, node)
			}
			if mt.MeshIDLocal != assets.IDUndefined {
				drawables.Add(Drawable{
					Node:          node,
					MeshID:        meta.GlobalMeshID(mt.MeshIDLocal),
					MaterialID:    meta.GlobalMaterialID(mt.MaterialIDLocal),
					LightSetupKey: lightSetupKey,
				})
			}
			return node, nil
		})
	if err != nil {
		return nil, err
	}
	c.log.Debug("composed asset",
		zap.String("key", key),
		zap.Int("drawables", drawables.Len()))
	return root, nil
}

// ComputeAbsoluteAABBs returns the world-space bounding box of every
// drawable in the group, in group order. Boxes are recomputed from the
// cached mesh bounds and the node world transforms at call time.
func (c *Composer) ComputeAbsoluteAABBs(drawables *DrawableGroup) []math.AABB {
	boxes := make([]math.AABB, drawables.Len())
	for i, d := range drawables.Drawables() {
		bounds := c.cache.Mesh(d.MeshID).Bounds
		boxes[i] = bounds.Transformed(d.Node.WorldTransform())
	}
	return boxes
}
