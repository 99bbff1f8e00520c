package world

import (
	"math"
	"testing"

	"github.com/Zephyrlll/fillstellar/common"
)

func f32Eq(a, b, eps float32) bool {
	return float32(math.Abs(float64(a-b))) <= eps
}

func TestSphericalRoundTrip(t *testing.T) {
	w := NewSphericalWorld(WithRadius(200))

	cases := []Spherical{
		{Lat: 0, Lon: 0, Altitude: 0},
		{Lat: 0.5, Lon: -1.2, Altitude: 1.7},
		{Lat: -1.0, Lon: 2.8, Altitude: 10},
		{Lat: 1.4, Lon: 0.1, Altitude: 0.5},
	}
	for _, s := range cases {
		p := w.SphericalToCartesian(s)
		got := w.CartesianToSpherical(p)
		if !f32Eq(got.Lat, s.Lat, 1e-4) || !f32Eq(got.Lon, s.Lon, 1e-4) || !f32Eq(got.Altitude, s.Altitude, 1e-3) {
			t.Fatalf("round trip %+v -> %+v", s, got)
		}
	}
}

func TestUpVectorPointsAwayFromCenter(t *testing.T) {
	w := NewSphericalWorld(WithRadius(200))
	p := common.Vec3{X: 120, Y: -80, Z: 60}
	up := w.UpVector(p)
	if !f32Eq(up.Length(), 1, 1e-5) {
		t.Fatalf("up vector not unit length: %f", up.Length())
	}
	want := p.Normalize()
	if !f32Eq(up.Dot(want), 1, 1e-5) {
		t.Fatalf("up %+v does not point away from center (want %+v)", up, want)
	}
}

func TestUpVectorAtCenterFallsBack(t *testing.T) {
	w := NewSphericalWorld()
	up := w.UpVector(common.Vec3{})
	if up.IsZero() {
		t.Fatal("up vector at the center must not be zero")
	}
	if !f32Eq(up.Length(), 1, 1e-5) {
		t.Fatalf("fallback up not unit length: %f", up.Length())
	}
}

func TestLocalFrameOrthonormal(t *testing.T) {
	w := NewSphericalWorld(WithRadius(200))
	positions := []common.Vec3{
		{X: 200, Y: 0, Z: 0},
		{X: 0, Y: 0, Z: 200},
		{X: 80, Y: 120, Z: -90},
		{X: -50, Y: -180, Z: 30},
	}
	for _, p := range positions {
		up := w.UpVector(p)
		fwd := w.ForwardVector(p)
		right := w.RightVector(p)

		for name, v := range map[string]common.Vec3{"up": up, "forward": fwd, "right": right} {
			if !f32Eq(v.Length(), 1, 1e-4) {
				t.Fatalf("%s at %+v not unit length: %f", name, p, v.Length())
			}
		}
		if !f32Eq(up.Dot(fwd), 0, 1e-4) {
			t.Fatalf("up and forward not orthogonal at %+v: %f", p, up.Dot(fwd))
		}
		if !f32Eq(up.Dot(right), 0, 1e-4) {
			t.Fatalf("up and right not orthogonal at %+v: %f", p, up.Dot(right))
		}
		cross := fwd.Cross(up)
		if !f32Eq(cross.Dot(right), 1, 1e-4) {
			t.Fatalf("right is not forward x up at %+v: dot=%f", p, cross.Dot(right))
		}
	}
}

func TestForwardVectorPoleFallback(t *testing.T) {
	w := NewSphericalWorld(WithRadius(200))
	northPole := common.Vec3{Y: 200}
	fwd := w.ForwardVector(northPole)
	if fwd.IsZero() {
		t.Fatal("forward at the pole must not be zero")
	}
	up := w.UpVector(northPole)
	if !f32Eq(fwd.Dot(up), 0, 1e-4) {
		t.Fatalf("pole forward not tangent: %f", fwd.Dot(up))
	}
}

func TestOptionGuards(t *testing.T) {
	w := NewSphericalWorld(WithRadius(-5), WithGravity(0), WithChunkSize(-1))
	if w.Radius() <= 0 {
		t.Fatalf("invalid radius accepted: %f", w.Radius())
	}
	if w.Gravity() <= 0 {
		t.Fatalf("invalid gravity accepted: %f", w.Gravity())
	}
	if w.ChunkSize() <= 0 {
		t.Fatalf("invalid chunk size accepted: %f", w.ChunkSize())
	}
}
