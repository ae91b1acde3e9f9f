// Package importer defines the boundary to file-format importers. The
// resource cache consumes this interface; it never parses asset files
// itself. Implementations expose an asset's component hierarchy and the
// raw mesh, texture, and material payloads the components reference.
package importer

import (
	"github.com/Faultbox/stagehand/pkg/math"
)

// IDUndefined marks a missing mesh or material reference on a component.
const IDUndefined = -1

// MeshData is one sub-mesh's raw geometry: packed xyz positions (three
// floats per vertex), optional packed normals and texture coordinates,
// and a 32-bit triangle index list.
type MeshData struct {
	Positions []float32
	Normals   []float32
	TexCoords []float32
	Indices   []uint32
}

// VertexCount returns the number of vertices in the payload.
func (m *MeshData) VertexCount() int {
	return len(m.Positions) / 3
}

// TriangleCount returns the number of triangles in the payload.
func (m *MeshData) TriangleCount() int {
	return len(m.Indices) / 3
}

// IsDegenerate reports whether the payload has no usable triangle list.
func (m *MeshData) IsDegenerate() bool {
	return len(m.Positions) == 0 || len(m.Indices) < 3 || len(m.Indices)%3 != 0
}

// TextureData is a raw RGBA texture blob.
type TextureData struct {
	Width  int
	Height int
	Pixels []byte
}

// MaterialData describes one material as reported by the importer.
// TextureID is an importer-local texture index or IDUndefined.
type MaterialData struct {
	Ambient   [3]float32
	Diffuse   [3]float32
	Specular  [3]float32
	Shininess float32
	TextureID int
}

// Importer exposes one imported asset: a component tree addressed by
// integer IDs plus the mesh/texture/material payloads it references.
// Component and mesh IDs are importer-local and only meaningful within
// one Importer instance.
type Importer interface {
	// RootComponentID returns the ID of the root scene component.
	RootComponentID() int
	// ComponentChildren returns the IDs of a component's children in the
	// order the source file reported them.
	ComponentChildren(id int) []int
	// ComponentTransform returns a component's local-to-parent transform.
	ComponentTransform(id int) math.Mat4
	// ComponentMesh returns the importer-local mesh ID a component
	// references, or IDUndefined for a pure transform/group component.
	ComponentMesh(id int) int
	// ComponentMaterial returns the importer-local material ID for a
	// component's mesh, or IDUndefined.
	ComponentMaterial(id int) int

	MeshCount() int
	// Mesh fetches the raw geometry for an importer-local mesh ID.
	Mesh(id int) (*MeshData, error)

	TextureCount() int
	// Texture fetches a raw texture blob by importer-local index.
	Texture(id int) (*TextureData, error)

	MaterialCount() int
	// Material fetches a material description by importer-local index.
	Material(id int) (*MaterialData, error)
}
