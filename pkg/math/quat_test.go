package math

import (
	"math"
	"testing"
)

func TestQuatIdentity(t *testing.T) {
	q := QuatIdentity()
	if q.X != 0 || q.Y != 0 || q.Z != 0 || q.W != 1 {
		t.Errorf("Identity quaternion should be (0,0,0,1), got (%v,%v,%v,%v)", q.X, q.Y, q.Z, q.W)
	}
}

func TestQuatNormalize(t *testing.T) {
	q := Quat{X: 1, Y: 2, Z: 3, W: 4}
	n := q.Normalize()

	length := float32(math.Sqrt(float64(n.X*n.X + n.Y*n.Y + n.Z*n.Z + n.W*n.W)))
	if math.Abs(float64(length-1.0)) > 0.0001 {
		t.Errorf("Normalized quaternion length should be 1, got %v", length)
	}
}

func TestQuatToMat4(t *testing.T) {
	// Identity quaternion should produce identity matrix
	q := QuatIdentity()
	m := q.ToMat4()

	identity := Identity()
	for i := 0; i < 16; i++ {
		if math.Abs(float64(m[i]-identity[i])) > 0.0001 {
			t.Errorf("Identity quat should produce identity matrix, element %d: got %v, want %v", i, m[i], identity[i])
		}
	}
}

func TestQuatFromMat4Roundtrip(t *testing.T) {
	axes := []Vec3{
		{X: 0, Y: 1, Z: 0},
		{X: 1, Y: 0, Z: 0},
		{X: 0.577, Y: 0.577, Z: 0.577},
	}
	angles := []float32{0.3, float32(math.Pi / 2), 2.5}

	for _, axis := range axes {
		for _, angle := range angles {
			q := QuatFromAxisAngle(axis.Normalize(), angle)
			m := q.ToMat4()
			back := QuatFromMat4(m)

			// q and -q encode the same rotation
			if back.Dot(q) < 0 {
				back = Quat{-back.X, -back.Y, -back.Z, -back.W}
			}
			if math.Abs(float64(back.X-q.X)) > 0.001 ||
				math.Abs(float64(back.Y-q.Y)) > 0.001 ||
				math.Abs(float64(back.Z-q.Z)) > 0.001 ||
				math.Abs(float64(back.W-q.W)) > 0.001 {
				t.Errorf("roundtrip axis=%v angle=%v: got %+v, want %+v", axis, angle, back, q)
			}
		}
	}
}

func TestQuatMulIdentity(t *testing.T) {
	q := QuatFromAxisAngle(Vec3{Y: 1}, 0.8)
	r := q.Mul(QuatIdentity())
	if math.Abs(float64(r.W-q.W)) > 0.0001 || math.Abs(float64(r.Y-q.Y)) > 0.0001 {
		t.Errorf("q * identity should equal q, got %+v want %+v", r, q)
	}
}
