package terrain

import (
	"testing"

	"github.com/Zephyrlll/fillstellar/common"
	"github.com/Zephyrlll/fillstellar/engine/world"
)

func testWorld() world.SphericalWorld {
	return world.NewSphericalWorld(world.WithRadius(200), world.WithChunkSize(16))
}

func TestFlatTerrainIsFeatureless(t *testing.T) {
	flat := NewFlatTerrain()
	if alt := flat.SurfaceAltitude(0.3, -1.1); alt != 0 {
		t.Fatalf("flat terrain altitude = %f, want 0", alt)
	}
	if _, hit := flat.ObstructionDistance(common.Vec3{X: 205}, common.Vec3{X: -1}, 50); hit {
		t.Fatal("flat terrain reported an obstruction")
	}
}

func TestHeightfieldDeterministic(t *testing.T) {
	w := testWorld()
	a := NewHeightfield(w, WithSeed(42))
	b := NewHeightfield(w, WithSeed(42))

	coords := [][2]float32{{0, 0}, {0.1, 0.2}, {-0.4, 1.3}, {0.9, -2.2}}
	for _, c := range coords {
		va := a.SurfaceAltitude(c[0], c[1])
		vb := b.SurfaceAltitude(c[0], c[1])
		if va != vb {
			t.Fatalf("same seed diverged at (%f, %f): %f vs %f", c[0], c[1], va, vb)
		}
	}
}

func TestHeightfieldSeedChangesTerrain(t *testing.T) {
	w := testWorld()
	a := NewHeightfield(w, WithSeed(1))
	b := NewHeightfield(w, WithSeed(2))

	differs := false
	for _, c := range [][2]float32{{0, 0}, {0.05, 0.07}, {0.3, -0.2}, {-0.6, 0.9}} {
		if a.SurfaceAltitude(c[0], c[1]) != b.SurfaceAltitude(c[0], c[1]) {
			differs = true
			break
		}
	}
	if !differs {
		t.Fatal("different seeds produced identical terrain at every sample")
	}
}

func TestHeightfieldAltitudeWithinAmplitude(t *testing.T) {
	w := testWorld()
	h := NewHeightfield(w, WithSeed(7), WithAmplitude(3))
	for _, c := range [][2]float32{{0, 0}, {0.2, 0.4}, {-0.8, 1.1}} {
		alt := h.SurfaceAltitude(c[0], c[1])
		if alt < 0 || alt > 3 {
			t.Fatalf("altitude %f outside [0, amplitude] at (%f, %f)", alt, c[0], c[1])
		}
	}
}

func TestHeightfieldPrewarmMatchesInlineGeneration(t *testing.T) {
	w := testWorld()
	cold := NewHeightfield(w, WithSeed(9))
	warm := NewHeightfield(w, WithSeed(9))
	warm.Prewarm(-0.2, -0.2, 0.2, 0.2)

	for _, c := range [][2]float32{{0, 0}, {0.1, -0.1}, {-0.15, 0.18}} {
		if cold.SurfaceAltitude(c[0], c[1]) != warm.SurfaceAltitude(c[0], c[1]) {
			t.Fatalf("prewarmed altitude differs from inline generation at (%f, %f)", c[0], c[1])
		}
	}
}

func TestObstructionRayHitsSurface(t *testing.T) {
	w := testWorld()
	h := NewHeightfield(w, WithSeed(3))

	// Start well above the surface and probe straight down; the ray must
	// cross the terrain before leaving the search range.
	origin := w.SphericalToCartesian(world.Spherical{Lat: 0.1, Lon: 0.1, Altitude: 5})
	down := w.UpVector(origin).Scale(-1)
	d, hit := h.ObstructionDistance(origin, down, 10)
	if !hit {
		t.Fatal("downward probe found no obstruction")
	}
	if d <= 0 || d > 10 {
		t.Fatalf("obstruction distance %f out of range", d)
	}
}

func TestObstructionRayMissesOpenSky(t *testing.T) {
	w := testWorld()
	h := NewHeightfield(w, WithSeed(3))

	origin := w.SphericalToCartesian(world.Spherical{Lat: 0.1, Lon: 0.1, Altitude: 5})
	up := w.UpVector(origin)
	if _, hit := h.ObstructionDistance(origin, up, 10); hit {
		t.Fatal("upward probe reported an obstruction above the terrain")
	}
}
