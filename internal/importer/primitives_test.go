package importer

import (
	"testing"

	m "github.com/Faultbox/stagehand/pkg/math"
)

func quadOffset() m.Mat4 {
	return m.Translate(0, 1, 0)
}

func TestPrimitiveDispatch(t *testing.T) {
	for _, pt := range []PrimitiveType{PrimitiveCube, PrimitiveQuad, PrimitiveUVSphere} {
		imp, err := Primitive(pt)
		if err != nil {
			t.Fatalf("Primitive(%v): %v", pt, err)
		}
		if imp.MeshCount() != 1 {
			t.Errorf("%v: expected 1 mesh, got %d", pt, imp.MeshCount())
		}
		mesh, err := imp.Mesh(0)
		if err != nil {
			t.Fatalf("%v: Mesh(0): %v", pt, err)
		}
		if mesh.IsDegenerate() {
			t.Errorf("%v: primitive mesh is degenerate", pt)
		}
		if len(mesh.Normals) != len(mesh.Positions) {
			t.Errorf("%v: normals/positions length mismatch", pt)
		}
	}

	if _, err := Primitive(PrimitiveType(99)); err == nil {
		t.Error("expected error for unknown primitive type")
	}
}

func TestCubeMeshShape(t *testing.T) {
	mesh := CubeMesh()
	if mesh.VertexCount() != 24 {
		t.Errorf("cube vertices = %d, want 24", mesh.VertexCount())
	}
	if mesh.TriangleCount() != 12 {
		t.Errorf("cube triangles = %d, want 12", mesh.TriangleCount())
	}

	// All positions within the unit cube
	for i := 0; i < len(mesh.Positions); i++ {
		if mesh.Positions[i] < -0.501 || mesh.Positions[i] > 0.501 {
			t.Fatalf("cube position out of range: %f", mesh.Positions[i])
		}
	}
}

func TestSyntheticHierarchy(t *testing.T) {
	s := NewSynthetic()
	meshID := s.AddMesh(QuadMesh())

	child := s.AddComponent(s.RootComponentID(), quadOffset(), meshID, IDUndefined)
	grandchild := s.AddComponent(child, quadOffset(), meshID, IDUndefined)

	rootChildren := s.ComponentChildren(s.RootComponentID())
	if len(rootChildren) != 1 || rootChildren[0] != child {
		t.Fatalf("root children = %v", rootChildren)
	}
	if got := s.ComponentChildren(child); len(got) != 1 || got[0] != grandchild {
		t.Fatalf("child children = %v", got)
	}
	if s.ComponentMesh(grandchild) != meshID {
		t.Errorf("grandchild mesh = %d, want %d", s.ComponentMesh(grandchild), meshID)
	}
	if s.ComponentMaterial(grandchild) != IDUndefined {
		t.Errorf("grandchild material should be undefined")
	}
}

func TestSyntheticMissingMesh(t *testing.T) {
	s := NewSynthetic()
	if _, err := s.Mesh(0); err == nil {
		t.Error("expected error for missing mesh")
	}
	if _, err := s.Texture(5); err == nil {
		t.Error("expected error for missing texture")
	}
}
