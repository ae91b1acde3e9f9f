package math

import "testing"

func TestAABBJoinReplacesEmpty(t *testing.T) {
	box := AABB{Min: Vec3{10, 10, 10}, Max: Vec3{11, 11, 11}}

	var empty AABB
	joined := empty.Join(box)

	// Merging with the zero box would wrongly pull the union to the origin
	if joined != box {
		t.Errorf("empty.Join(box) = %+v, want %+v", joined, box)
	}

	joined = box.Join(AABB{})
	if joined != box {
		t.Errorf("box.Join(empty) = %+v, want %+v", joined, box)
	}
}

func TestAABBJoinUnion(t *testing.T) {
	a := AABB{Min: Vec3{0, 0, 0}, Max: Vec3{1, 1, 1}}
	b := AABB{Min: Vec3{10, 0, 0}, Max: Vec3{11, 1, 1}}

	got := a.Join(b)
	want := AABB{Min: Vec3{0, 0, 0}, Max: Vec3{11, 1, 1}}
	if got != want {
		t.Errorf("Join = %+v, want %+v", got, want)
	}
}

func TestAABBExtendPoint(t *testing.T) {
	var b AABB
	b = b.ExtendPoint(Vec3{1, 2, 3})
	if b.Min != (Vec3{1, 2, 3}) || b.Max != (Vec3{1, 2, 3}) {
		t.Errorf("ExtendPoint on empty box: got %+v", b)
	}

	b = b.ExtendPoint(Vec3{-1, 5, 0})
	want := AABB{Min: Vec3{-1, 2, 0}, Max: Vec3{1, 5, 3}}
	if b != want {
		t.Errorf("ExtendPoint = %+v, want %+v", b, want)
	}
}

func TestAABBTransformed(t *testing.T) {
	b := AABB{Min: Vec3{-1, -1, -1}, Max: Vec3{1, 1, 1}}
	m := Translate(10, 0, 0)

	got := b.Transformed(m)
	want := AABB{Min: Vec3{9, -1, -1}, Max: Vec3{11, 1, 1}}
	if got != want {
		t.Errorf("Transformed = %+v, want %+v", got, want)
	}
}

func TestAABBCenterSize(t *testing.T) {
	b := AABB{Min: Vec3{0, 0, 0}, Max: Vec3{2, 4, 6}}
	if b.Center() != (Vec3{1, 2, 3}) {
		t.Errorf("Center = %v", b.Center())
	}
	if b.Size() != (Vec3{2, 4, 6}) {
		t.Errorf("Size = %v", b.Size())
	}
}
