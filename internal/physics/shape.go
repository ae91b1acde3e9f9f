// Package physics builds static concave collision scenes from cached
// asset hierarchies and manages their registration in a dynamics
// world.
package physics

import (
	"github.com/Faultbox/stagehand/pkg/math"
)

// DefaultMargin is the collision margin applied to triangle mesh
// shapes unless overridden.
const DefaultMargin = 0.04

// TriangleMeshShape is a concave collision shape over a triangle
// soup. It does not own its vertex data: positions and indices alias
// the resource cache's mesh buffers, so the shape stays in sync with
// in-place mesh edits at zero copy cost.
type TriangleMeshShape struct {
	positions []float32
	indices   []uint32

	margin  float32
	scaling math.Vec3

	localAabb math.AABB
}

// NewTriangleMeshShape wraps the given buffers in a shape with the
// default margin and unit scaling. Positions are packed XYZ triples,
// indices triangle triples.
func NewTriangleMeshShape(positions []float32, indices []uint32) *TriangleMeshShape {
	s := &TriangleMeshShape{
		positions: positions,
		indices:   indices,
		margin:    DefaultMargin,
		scaling:   math.Vec3{X: 1, Y: 1, Z: 1},
	}
	s.RebuildBVH()
	return s
}

// Positions returns the shape's vertex buffer. The slice aliases the
// buffer the shape was built over.
func (s *TriangleMeshShape) Positions() []float32 { return s.positions }

// Indices returns the shape's triangle index buffer.
func (s *TriangleMeshShape) Indices() []uint32 { return s.indices }

// TriangleCount returns the number of triangles in the shape.
func (s *TriangleMeshShape) TriangleCount() int { return len(s.indices) / 3 }

// Margin returns the current collision margin.
func (s *TriangleMeshShape) Margin() float32 { return s.margin }

// SetMargin changes the collision margin and rebuilds the shape's
// acceleration structure, which is sized from margin-expanded bounds.
func (s *TriangleMeshShape) SetMargin(margin float32) {
	s.margin = margin
	s.RebuildBVH()
}

// LocalScaling returns the per-axis scale folded into the shape.
func (s *TriangleMeshShape) LocalScaling() math.Vec3 { return s.scaling }

// SetLocalScaling folds a per-axis scale into the shape and rebuilds
// its acceleration structure. World placement stays rotation and
// translation only, scale always lives here.
func (s *TriangleMeshShape) SetLocalScaling(scaling math.Vec3) {
	s.scaling = scaling
	s.RebuildBVH()
}

// RebuildBVH recomputes the shape's local bounds from the current
// vertex data, scaling and margin. Callers mutating the shared vertex
// buffers must call this before the next query.
func (s *TriangleMeshShape) RebuildBVH() {
	var box math.AABB
	for i := 0; i+2 < len(s.positions); i += 3 {
		p := math.Vec3{X: s.positions[i], Y: s.positions[i+1], Z: s.positions[i+2]}
		box = box.ExtendPoint(p.MulComponents(s.scaling))
	}
	if !box.IsEmpty() {
		m := math.Vec3{X: s.margin, Y: s.margin, Z: s.margin}
		box.Min = box.Min.Sub(m)
		box.Max = box.Max.Add(m)
	}
	s.localAabb = box
}

// Aabb returns the shape's bounds under the given world transform.
// The transform is expected to carry rotation and translation only.
func (s *TriangleMeshShape) Aabb(worldTransform math.Mat4) math.AABB {
	return s.localAabb.Transformed(worldTransform)
}
