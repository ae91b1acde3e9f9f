package physics

import (
	"testing"

	"github.com/Faultbox/stagehand/internal/importer"
	"github.com/Faultbox/stagehand/pkg/math"
)

func TestShapeAliasesVertexData(t *testing.T) {
	mesh := importer.CubeMesh()
	shape := NewTriangleMeshShape(mesh.Positions, mesh.Indices)

	if &shape.Positions()[0] != &mesh.Positions[0] {
		t.Error("shape copies vertex data")
	}
	if &shape.Indices()[0] != &mesh.Indices[0] {
		t.Error("shape copies index data")
	}
	if shape.TriangleCount() != mesh.TriangleCount() {
		t.Errorf("triangle count = %d, want %d", shape.TriangleCount(), mesh.TriangleCount())
	}
}

func TestShapeMarginExpandsBounds(t *testing.T) {
	mesh := importer.CubeMesh()
	shape := NewTriangleMeshShape(mesh.Positions, mesh.Indices)

	aabb := shape.Aabb(math.Identity())
	want := float32(0.5 + DefaultMargin)
	if !nearVec3(aabb.Max, math.Vec3{X: want, Y: want, Z: want}) {
		t.Errorf("aabb max = %v, want (%f,%f,%f)", aabb.Max, want, want, want)
	}

	shape.SetMargin(0.5)
	aabb = shape.Aabb(math.Identity())
	if !nearVec3(aabb.Max, math.Vec3{X: 1, Y: 1, Z: 1}) {
		t.Errorf("aabb max after margin change = %v, want (1,1,1)", aabb.Max)
	}
}

func TestShapeScalingAndPlacement(t *testing.T) {
	mesh := importer.CubeMesh()
	shape := NewTriangleMeshShape(mesh.Positions, mesh.Indices)
	shape.SetMargin(0)
	shape.SetLocalScaling(math.Vec3{X: 2, Y: 4, Z: 6})

	aabb := shape.Aabb(math.Translate(10, 0, 0))
	if !nearVec3(aabb.Min, math.Vec3{X: 9, Y: -2, Z: -3}) {
		t.Errorf("aabb min = %v, want (9,-2,-3)", aabb.Min)
	}
	if !nearVec3(aabb.Max, math.Vec3{X: 11, Y: 2, Z: 3}) {
		t.Errorf("aabb max = %v, want (11,2,3)", aabb.Max)
	}
}

func TestShapeRebuildAfterVertexEdit(t *testing.T) {
	mesh := importer.CubeMesh()
	shape := NewTriangleMeshShape(mesh.Positions, mesh.Indices)
	shape.SetMargin(0)

	// Shift the shared buffer by +5 X and rebuild
	for i := 0; i < len(mesh.Positions); i += 3 {
		mesh.Positions[i] += 5
	}
	shape.RebuildBVH()

	aabb := shape.Aabb(math.Identity())
	if !nearVec3(aabb.Min, math.Vec3{X: 4.5, Y: -0.5, Z: -0.5}) {
		t.Errorf("aabb min after edit = %v, want (4.5,-0.5,-0.5)", aabb.Min)
	}
}
