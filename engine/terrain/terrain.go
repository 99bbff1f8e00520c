package terrain

import (
	"github.com/Zephyrlll/fillstellar/common"
)

// Terrain answers surface-height and camera-obstruction queries for a planet.
// The locomotion core treats these as opaque queries; it never owns the
// terrain representation.
type Terrain interface {
	// SurfaceAltitude returns the terrain surface altitude above the planet
	// radius at the given latitude/longitude (radians). Zero means the bare
	// sphere surface.
	//
	// Parameters:
	//   - lat: latitude in radians
	//   - lon: longitude in radians
	//
	// Returns:
	//   - float32: surface altitude above the planet radius
	SurfaceAltitude(lat, lon float32) float32

	// ObstructionDistance returns the distance to the first obstruction along
	// the ray from origin in direction dir (unit length), searched up to
	// maxDistance. The second return value reports whether an obstruction was
	// found within range.
	//
	// Parameters:
	//   - origin: world-space ray origin
	//   - dir: unit ray direction
	//   - maxDistance: search range along the ray
	//
	// Returns:
	//   - float32: distance to the first obstruction (undefined when none)
	//   - bool: true if an obstruction exists within maxDistance
	ObstructionDistance(origin, dir common.Vec3, maxDistance float32) (float32, bool)
}

// flatTerrain is the bare-sphere terrain: altitude zero everywhere and no
// camera obstructions. It reproduces the behavior of a planet with no
// generated surface features.
type flatTerrain struct{}

// NewFlatTerrain returns a Terrain for a featureless sphere.
//
// Returns:
//   - Terrain: terrain with zero altitude and no obstructions
func NewFlatTerrain() Terrain {
	return flatTerrain{}
}

func (flatTerrain) SurfaceAltitude(lat, lon float32) float32 {
	return 0
}

func (flatTerrain) ObstructionDistance(origin, dir common.Vec3, maxDistance float32) (float32, bool) {
	return 0, false
}
