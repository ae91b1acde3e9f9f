package importer

import (
	"fmt"

	"github.com/Faultbox/stagehand/pkg/math"
)

// Synthetic is an in-memory Importer for assembled assets: procedural
// primitives, test fixtures, and anything else not backed by a file.
// Components are added parent-first; the first component added becomes
// the root.
type Synthetic struct {
	components []syntheticComponent
	meshes     []*MeshData
	textures   []*TextureData
	materials  []*MaterialData
}

type syntheticComponent struct {
	transform math.Mat4
	mesh      int
	material  int
	children  []int
}

// NewSynthetic returns an empty Synthetic with a root group component
// carrying the identity transform.
func NewSynthetic() *Synthetic {
	s := &Synthetic{}
	s.components = append(s.components, syntheticComponent{
		transform: math.Identity(),
		mesh:      IDUndefined,
		material:  IDUndefined,
	})
	return s
}

// AddMesh registers a mesh payload and returns its importer-local ID.
func (s *Synthetic) AddMesh(m *MeshData) int {
	s.meshes = append(s.meshes, m)
	return len(s.meshes) - 1
}

// AddTexture registers a texture blob and returns its importer-local ID.
func (s *Synthetic) AddTexture(t *TextureData) int {
	s.textures = append(s.textures, t)
	return len(s.textures) - 1
}

// AddMaterial registers a material and returns its importer-local ID.
func (s *Synthetic) AddMaterial(m *MaterialData) int {
	s.materials = append(s.materials, m)
	return len(s.materials) - 1
}

// AddComponent adds a component under the given parent and returns its
// ID. meshID and materialID may be IDUndefined for group components.
func (s *Synthetic) AddComponent(parent int, transform math.Mat4, meshID, materialID int) int {
	id := len(s.components)
	s.components = append(s.components, syntheticComponent{
		transform: transform,
		mesh:      meshID,
		material:  materialID,
	})
	s.components[parent].children = append(s.components[parent].children, id)
	return id
}

func (s *Synthetic) RootComponentID() int { return 0 }

func (s *Synthetic) ComponentChildren(id int) []int {
	return s.components[id].children
}

func (s *Synthetic) ComponentTransform(id int) math.Mat4 {
	return s.components[id].transform
}

func (s *Synthetic) ComponentMesh(id int) int {
	return s.components[id].mesh
}

func (s *Synthetic) ComponentMaterial(id int) int {
	return s.components[id].material
}

func (s *Synthetic) MeshCount() int { return len(s.meshes) }

func (s *Synthetic) Mesh(id int) (*MeshData, error) {
	if id < 0 || id >= len(s.meshes) {
		return nil, fmt.Errorf("synthetic importer: no mesh %d", id)
	}
	if s.meshes[id] == nil {
		return nil, fmt.Errorf("synthetic importer: mesh %d unavailable", id)
	}
	return s.meshes[id], nil
}

func (s *Synthetic) TextureCount() int { return len(s.textures) }

func (s *Synthetic) Texture(id int) (*TextureData, error) {
	if id < 0 || id >= len(s.textures) {
		return nil, fmt.Errorf("synthetic importer: no texture %d", id)
	}
	if s.textures[id] == nil {
		return nil, fmt.Errorf("synthetic importer: texture %d unavailable", id)
	}
	return s.textures[id], nil
}

func (s *Synthetic) MaterialCount() int { return len(s.materials) }

func (s *Synthetic) Material(id int) (*MaterialData, error) {
	if id < 0 || id >= len(s.materials) {
		return nil, fmt.Errorf("synthetic importer: no material %d", id)
	}
	return s.materials[id], nil
}
