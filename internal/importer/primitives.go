package importer

import (
	"fmt"
	"math"

	m "github.com/Faultbox/stagehand/pkg/math"
)

// PrimitiveType tags a synthesized primitive asset.
type PrimitiveType int

const (
	PrimitiveCube PrimitiveType = iota
	PrimitiveQuad
	PrimitiveUVSphere
)

// String returns the canonical handle fragment for the primitive type.
func (t PrimitiveType) String() string {
	switch t {
	case PrimitiveCube:
		return "cube"
	case PrimitiveQuad:
		return "quad"
	case PrimitiveUVSphere:
		return "uvsphere"
	default:
		return fmt.Sprintf("primitive(%d)", int(t))
	}
}

// primitiveBuilders maps a primitive-type tag to its mesh constructor.
var primitiveBuilders = map[PrimitiveType]func() *MeshData{
	PrimitiveCube:     CubeMesh,
	PrimitiveQuad:     QuadMesh,
	PrimitiveUVSphere: func() *MeshData { return UVSphereMesh(16, 24) },
}

// Primitive returns a single-component Importer for the given primitive
// type. Unknown types return an error.
func Primitive(t PrimitiveType) (*Synthetic, error) {
	build, ok := primitiveBuilders[t]
	if !ok {
		return nil, fmt.Errorf("unknown primitive type %v", t)
	}
	s := NewSynthetic()
	meshID := s.AddMesh(build())
	s.AddComponent(s.RootComponentID(), m.Identity(), meshID, IDUndefined)
	return s, nil
}

// CubeMesh builds a unit cube centered on the origin, with per-face
// normals and texture coordinates.
func CubeMesh() *MeshData {
	// One face in the +Z plane; the rest are rotations of it.
	faceRotations := []m.Mat4{
		m.Identity(),                     // +Z
		m.RotateY(float32(math.Pi)),      // -Z
		m.RotateY(float32(math.Pi / 2)),  // +X
		m.RotateY(float32(-math.Pi / 2)), // -X
		m.RotateX(float32(-math.Pi / 2)), // +Y
		m.RotateX(float32(math.Pi / 2)),  // -Y
	}

	corners := []m.Vec3{
		{X: -0.5, Y: -0.5, Z: 0.5},
		{X: 0.5, Y: -0.5, Z: 0.5},
		{X: 0.5, Y: 0.5, Z: 0.5},
		{X: -0.5, Y: 0.5, Z: 0.5},
	}
	uvs := [][2]float32{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

	mesh := &MeshData{}
	for _, rot := range faceRotations {
		base := uint32(mesh.VertexCount())
		normal := rot.TransformDirection(m.Vec3{Z: 1})
		for i, c := range corners {
			p := rot.TransformPoint(c)
			mesh.Positions = append(mesh.Positions, p.X, p.Y, p.Z)
			mesh.Normals = append(mesh.Normals, normal.X, normal.Y, normal.Z)
			mesh.TexCoords = append(mesh.TexCoords, uvs[i][0], uvs[i][1])
		}
		mesh.Indices = append(mesh.Indices,
			base, base+1, base+2,
			base, base+2, base+3)
	}
	return mesh
}

// QuadMesh builds a unit quad in the XZ plane facing +Y.
func QuadMesh() *MeshData {
	return &MeshData{
		Positions: []float32{
			-0.5, 0, -0.5,
			0.5, 0, -0.5,
			0.5, 0, 0.5,
			-0.5, 0, 0.5,
		},
		Normals: []float32{
			0, 1, 0,
			0, 1, 0,
			0, 1, 0,
			0, 1, 0,
		},
		TexCoords: []float32{
			0, 0,
			1, 0,
			1, 1,
			0, 1,
		},
		Indices: []uint32{0, 2, 1, 0, 3, 2},
	}
}

// UVSphereMesh builds a unit-diameter UV sphere with the given number of
// latitude rings and longitude segments.
func UVSphereMesh(rings, segments int) *MeshData {
	if rings < 2 {
		rings = 2
	}
	if segments < 3 {
		segments = 3
	}

	mesh := &MeshData{}
	for r := 0; r <= rings; r++ {
		phi := math.Pi * float64(r) / float64(rings)
		for s := 0; s <= segments; s++ {
			theta := 2 * math.Pi * float64(s) / float64(segments)
			n := m.Vec3{
				X: float32(math.Sin(phi) * math.Cos(theta)),
				Y: float32(math.Cos(phi)),
				Z: float32(math.Sin(phi) * math.Sin(theta)),
			}
			mesh.Positions = append(mesh.Positions, n.X*0.5, n.Y*0.5, n.Z*0.5)
			mesh.Normals = append(mesh.Normals, n.X, n.Y, n.Z)
			mesh.TexCoords = append(mesh.TexCoords,
				float32(s)/float32(segments), float32(r)/float32(rings))
		}
	}

	stride := uint32(segments + 1)
	for r := 0; r < rings; r++ {
		for s := 0; s < segments; s++ {
			a := uint32(r)*stride + uint32(s)
			b := a + stride
			mesh.Indices = append(mesh.Indices,
				a, b, a+1,
				a+1, b, b+1)
		}
	}
	return mesh
}
