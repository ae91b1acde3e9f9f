package math

// AABB is an axis-aligned bounding box. The zero value is the empty box;
// joining into an empty box replaces it rather than merging, so a running
// union never absorbs the origin by accident.
type AABB struct {
	Min Vec3
	Max Vec3
}

// IsEmpty reports whether the box is the zero (empty) box.
func (b AABB) IsEmpty() bool {
	return b == AABB{}
}

// Join returns the union of two boxes. An empty receiver is replaced by
// other, and vice versa.
func (b AABB) Join(other AABB) AABB {
	if b.IsEmpty() {
		return other
	}
	if other.IsEmpty() {
		return b
	}
	return AABB{
		Min: b.Min.Min(other.Min),
		Max: b.Max.Max(other.Max),
	}
}

// ExtendPoint grows the box to contain p. Extending an empty box yields
// the degenerate box at p.
func (b AABB) ExtendPoint(p Vec3) AABB {
	if b.IsEmpty() {
		return AABB{Min: p, Max: p}
	}
	return AABB{
		Min: b.Min.Min(p),
		Max: b.Max.Max(p),
	}
}

// Center returns the box center.
func (b AABB) Center() Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// Size returns the box extent along each axis.
func (b AABB) Size() Vec3 {
	return b.Max.Sub(b.Min)
}

// Transformed returns the tightest axis-aligned box containing this box
// after transforming its eight corners by m.
func (b AABB) Transformed(m Mat4) AABB {
	if b.IsEmpty() {
		return AABB{}
	}
	var out AABB
	for i := 0; i < 8; i++ {
		corner := Vec3{b.Min.X, b.Min.Y, b.Min.Z}
		if i&1 != 0 {
			corner.X = b.Max.X
		}
		if i&2 != 0 {
			corner.Y = b.Max.Y
		}
		if i&4 != 0 {
			corner.Z = b.Max.Z
		}
		out = out.ExtendPoint(m.TransformPoint(corner))
	}
	return out
}
