package assets

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/stagehand/internal/importer"
	"github.com/Faultbox/stagehand/pkg/math"
)

// ResourceCache owns all loaded mesh, texture, and material data and the
// per-key asset metadata. Keys are append-only: once present, a key maps
// to immutable data until the cache is torn down. The engine loop is
// single-threaded, so the cache does no locking; loads must not overlap
// with reads.
type ResourceCache struct {
	meshes    []*MeshResource
	textures  []*TextureResource
	materials []*Material

	nextTextureID  int
	nextMaterialID int

	resources       map[string]*LoadedAssetData
	collisionGroups map[string][]CollisionMeshData

	log *zap.Logger
}

// NewResourceCache returns an empty cache. log may be nil.
func NewResourceCache(log *zap.Logger) *ResourceCache {
	if log == nil {
		log = zap.NewNop()
	}
	return &ResourceCache{
		resources:       make(map[string]*LoadedAssetData),
		collisionGroups: make(map[string][]CollisionMeshData),
		log:             log,
	}
}

// Has reports whether an asset key is loaded.
func (c *ResourceCache) Has(key string) bool {
	_, ok := c.resources[key]
	return ok
}

// Asset returns the metadata for a loaded key. Callers are expected to
// have validated existence; an unknown key returns ErrMissingAsset.
func (c *ResourceCache) Asset(key string) (*LoadedAssetData, error) {
	a, ok := c.resources[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMissingAsset, key)
	}
	return a, nil
}

// MeshCount returns the length of the global mesh sequence.
func (c *ResourceCache) MeshCount() int { return len(c.meshes) }

// Mesh returns a global mesh slot. The returned resource is cache-owned;
// callers hold it as a non-owning reference.
func (c *ResourceCache) Mesh(index int) *MeshResource {
	return c.meshes[index]
}

// Texture returns a global texture slot, or nil for IDUndefined.
func (c *ResourceCache) Texture(index int) *TextureResource {
	if index == IDUndefined {
		return nil
	}
	return c.textures[index]
}

// Material returns a global material slot, or nil for IDUndefined.
func (c *ResourceCache) Material(index int) *Material {
	if index == IDUndefined {
		return nil
	}
	return c.materials[index]
}

// MeshTransform returns the composition of all transforms baked into a
// mesh's vertex data since it was loaded.
func (c *ResourceCache) MeshTransform(index int) math.Mat4 {
	return c.meshes[index].Transform
}

// TranslateMesh applies a translation to a mesh's vertices in place and
// records it in the mesh's accumulated transform. Collision views and
// drawables sharing the payload observe the shift immediately.
func (c *ResourceCache) TranslateMesh(index int, translation math.Vec3) {
	mesh := c.meshes[index]
	for i := 0; i+2 < len(mesh.Data.Positions); i += 3 {
		mesh.Data.Positions[i] += translation.X
		mesh.Data.Positions[i+1] += translation.Y
		mesh.Data.Positions[i+2] += translation.Z
	}
	mesh.Bounds = math.AABB{
		Min: mesh.Bounds.Min.Add(translation),
		Max: mesh.Bounds.Max.Add(translation),
	}
	mesh.Transform = math.Translate(translation.X, translation.Y, translation.Z).Mul(mesh.Transform)
}

// CollisionMeshGroup returns the per-component collision views for a
// loaded asset, ordered by local mesh index. An unknown key returns
// ErrMissingAsset.
func (c *ResourceCache) CollisionMeshGroup(key string) ([]CollisionMeshData, error) {
	group, ok := c.collisionGroups[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMissingAsset, key)
	}
	return group, nil
}

// JoinedCollisionMesh flattens a loaded asset's hierarchy into one
// world-space mesh: every component's vertices are transformed by its
// accumulated transform and merged into a single position/index pair.
// The result copies vertex data and is owned by the caller.
func (c *ResourceCache) JoinedCollisionMesh(key string) (*importer.MeshData, error) {
	asset, err := c.Asset(key)
	if err != nil {
		return nil, err
	}
	group := c.collisionGroups[key]

	joined := &importer.MeshData{}
	err = WalkHierarchy(&asset.Meta.Root, math.Identity(),
		func(n *MeshTransformNode, parentToWorld math.Mat4) (math.Mat4, error) {
			localToWorld := parentToWorld.Mul(n.Transform)
			if n.MeshIDLocal == IDUndefined {
				return localToWorld, nil
			}
			mesh := group[n.MeshIDLocal]
			base := uint32(joined.VertexCount())
			for i := 0; i+2 < len(mesh.Positions); i += 3 {
				p := localToWorld.TransformPoint(math.Vec3{
					X: mesh.Positions[i],
					Y: mesh.Positions[i+1],
					Z: mesh.Positions[i+2],
				})
				joined.Positions = append(joined.Positions, p.X, p.Y, p.Z)
			}
			for _, idx := range mesh.Indices {
				joined.Indices = append(joined.Indices, base+idx)
			}
			return localToWorld, nil
		})
	if err != nil {
		return nil, err
	}
	return joined, nil
}
