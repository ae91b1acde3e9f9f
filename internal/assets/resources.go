package assets

import (
	"github.com/Faultbox/stagehand/internal/importer"
	"github.com/Faultbox/stagehand/pkg/math"
)

// MeshResource is one slot of the global mesh sequence. The cache is the
// single owner of the payload; scene drawables and collision shapes hold
// the slot index and view the same backing arrays.
type MeshResource struct {
	// Data is the shared vertex/index payload.
	Data *importer.MeshData
	// Bounds is the mesh bounding box in mesh-local space.
	Bounds math.AABB
	// Transform accumulates any transforms baked into the vertex data
	// since load (see ResourceCache.TranslateMesh).
	Transform math.Mat4
}

// ShadingType selects how a material is shaded.
type ShadingType int

const (
	// ShadingFlat ignores lighting; also the fallback when a material's
	// texture failed to load.
	ShadingFlat ShadingType = iota
	ShadingPhong
)

// Material is one slot of the global material sequence. ID is globally
// unique across all loaded assets so shader resource keys never collide.
type Material struct {
	ID        int
	Shading   ShadingType
	Ambient   [3]float32
	Diffuse   [3]float32
	Specular  [3]float32
	Shininess float32
	// TextureIndex is a global texture slot, or IDUndefined.
	TextureIndex int
}

// TextureResource is one slot of the global texture sequence. Data is
// nil when the texture blob failed to load; materials referencing it
// fall back to flat shading.
type TextureResource struct {
	ID   int
	Data *importer.TextureData
}

// CollisionMeshData is a weak view of one leaf mesh's shared buffers,
// usable as physics-engine input. The slices alias the owning
// MeshResource and must not outlive the cache.
type CollisionMeshData struct {
	Positions []float32
	Indices   []uint32
}

// meshBounds computes the local-space bounding box of a payload.
func meshBounds(data *importer.MeshData) math.AABB {
	var b math.AABB
	for i := 0; i+2 < len(data.Positions); i += 3 {
		b = b.ExtendPoint(math.Vec3{
			X: data.Positions[i],
			Y: data.Positions[i+1],
			Z: data.Positions[i+2],
		})
	}
	return b
}
