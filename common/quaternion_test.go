package common

import (
	"math"
	"testing"
)

func TestQuatRotateQuarterTurn(t *testing.T) {
	q := QuatFromAxisAngle(Vec3{Z: 1}, float32(math.Pi/2))
	v := q.Rotate(Vec3{X: 1})
	if !vecAlmostEq(v, Vec3{Y: 1}, 1e-5) {
		t.Fatalf("rotating +x by 90 deg about +z = %+v, want +y", v)
	}
}

func TestQuatMulComposesRotations(t *testing.T) {
	a := QuatFromAxisAngle(Vec3{Z: 1}, float32(math.Pi/2))
	b := QuatFromAxisAngle(Vec3{Z: 1}, float32(math.Pi/2))
	v := a.Mul(b).Rotate(Vec3{X: 1})
	if !vecAlmostEq(v, Vec3{X: -1}, 1e-5) {
		t.Fatalf("two quarter turns = %+v, want -x", v)
	}
}

func TestSlerpEndpoints(t *testing.T) {
	a := QuatIdentity()
	b := QuatFromAxisAngle(Vec3{Y: 1}, float32(math.Pi/3))

	v0 := a.Slerp(b, 0).Rotate(Vec3{X: 1})
	if !vecAlmostEq(v0, a.Rotate(Vec3{X: 1}), 1e-5) {
		t.Fatalf("slerp t=0 rotates like a: got %+v", v0)
	}
	v1 := a.Slerp(b, 1).Rotate(Vec3{X: 1})
	if !vecAlmostEq(v1, b.Rotate(Vec3{X: 1}), 1e-5) {
		t.Fatalf("slerp t=1 rotates like b: got %+v", v1)
	}
}

func TestSlerpHalfway(t *testing.T) {
	a := QuatIdentity()
	b := QuatFromAxisAngle(Vec3{Y: 1}, float32(math.Pi/2))
	half := a.Slerp(b, 0.5)
	want := QuatFromAxisAngle(Vec3{Y: 1}, float32(math.Pi/4))
	v := half.Rotate(Vec3{X: 1})
	if !vecAlmostEq(v, want.Rotate(Vec3{X: 1}), 1e-4) {
		t.Fatalf("slerp midpoint rotation = %+v, want 45 deg about y", v)
	}
}

func TestQuatFromAxesIdentityFrame(t *testing.T) {
	q := QuatFromAxes(Vec3{X: 1}, Vec3{Y: 1}, Vec3{Z: -1})
	if !vecAlmostEq(q.Forward(), Vec3{Z: -1}, 1e-5) {
		t.Fatalf("forward = %+v, want -z", q.Forward())
	}
	if !vecAlmostEq(q.UpAxis(), Vec3{Y: 1}, 1e-5) {
		t.Fatalf("up = %+v, want +y", q.UpAxis())
	}
}

func TestQuatFromAxesRoundTrip(t *testing.T) {
	// A frame after a 90 degree yaw: forward becomes -x.
	right := Vec3{Z: -1}
	up := Vec3{Y: 1}
	forward := Vec3{X: -1}
	q := QuatFromAxes(right, up, forward)
	if !vecAlmostEq(q.Forward(), forward, 1e-5) {
		t.Fatalf("forward round trip = %+v, want %+v", q.Forward(), forward)
	}
	if !vecAlmostEq(q.UpAxis(), up, 1e-5) {
		t.Fatalf("up round trip = %+v, want %+v", q.UpAxis(), up)
	}
}
