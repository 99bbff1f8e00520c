package world

import (
	"math"

	"github.com/Zephyrlll/fillstellar/common"
)

// Spherical holds a position expressed in spherical coordinates relative to
// the planet: latitude and longitude in radians and altitude above the
// surface (distance from center minus radius).
type Spherical struct {
	// Lat is the latitude in radians, in [-π/2, π/2], positive toward +Y.
	Lat float32
	// Lon is the longitude in radians, in [-π, π].
	Lon float32
	// Altitude is the height above the planet surface. Negative values are
	// below the surface.
	Altitude float32
}

// sphericalWorldImpl is the single implementation of SphericalWorld.
// All configuration is fixed at construction; every query method is a pure
// function of its input position, so the type is safe to share across
// controllers without synchronization.
type sphericalWorldImpl struct {
	radius    float32
	gravity   float32
	chunkSize float32
}

// SphericalWorld is the pure geometry provider for a planet centered at the
// origin. It answers local reference frame queries (up/forward/right),
// converts between Cartesian and spherical coordinates, and exposes the
// world constants shared by every actor on the planet.
type SphericalWorld interface {
	// Radius returns the planet surface radius.
	//
	// Returns:
	//   - float32: the surface radius
	Radius() float32

	// Gravity returns the scalar gravity magnitude. The gravity direction is
	// always the negated up vector at the actor's current position, never a
	// fixed world axis.
	//
	// Returns:
	//   - float32: gravity magnitude
	Gravity() float32

	// ChunkSize returns the terrain partition unit consumed by terrain and
	// placement collaborators.
	//
	// Returns:
	//   - float32: the chunk edge length
	ChunkSize() float32

	// UpVector returns the surface normal at the given position: the unit
	// vector from the planet center through the position. A position at the
	// exact center is a programming error; the world Y axis is returned so
	// the caller never receives NaN components.
	//
	// Parameters:
	//   - position: world-space query position
	//
	// Returns:
	//   - common.Vec3: the local up unit vector
	UpVector(position common.Vec3) common.Vec3

	// ForwardVector returns the local "north" tangent direction at the given
	// position. Together with UpVector and RightVector it completes a
	// right-handed orthonormal basis that varies continuously with position
	// everywhere except the poles.
	//
	// Parameters:
	//   - position: world-space query position
	//
	// Returns:
	//   - common.Vec3: the local forward unit vector
	ForwardVector(position common.Vec3) common.Vec3

	// RightVector returns the local "east" tangent direction at the given
	// position, completing the (up, forward, right) basis.
	//
	// Parameters:
	//   - position: world-space query position
	//
	// Returns:
	//   - common.Vec3: the local right unit vector
	RightVector(position common.Vec3) common.Vec3

	// CartesianToSpherical converts a world-space position to latitude,
	// longitude, and altitude above the surface. Altitude is the sole
	// ground-collision signal on the sphere, replacing a flat-world Y check.
	//
	// Parameters:
	//   - position: world-space position
	//
	// Returns:
	//   - Spherical: the spherical coordinates
	CartesianToSpherical(position common.Vec3) Spherical

	// SphericalToCartesian converts latitude/longitude/altitude back to a
	// world-space position. It inverts CartesianToSpherical exactly, modulo
	// floating-point tolerance, for any valid input.
	//
	// Parameters:
	//   - s: spherical coordinates
	//
	// Returns:
	//   - common.Vec3: the world-space position
	SphericalToCartesian(s Spherical) common.Vec3
}

var _ SphericalWorld = &sphericalWorldImpl{}

// NewSphericalWorld creates a SphericalWorld with the provided options.
// Defaults: radius 200, gravity 9.8, chunk size 16.
//
// Parameters:
//   - options: functional options to configure the world
//
// Returns:
//   - SphericalWorld: the newly created world
func NewSphericalWorld(options ...SphericalWorldOption) SphericalWorld {
	w := &sphericalWorldImpl{
		radius:    200.0,
		gravity:   9.8,
		chunkSize: 16.0,
	}
	for _, option := range options {
		option(w)
	}
	return w
}

func (w *sphericalWorldImpl) Radius() float32 {
	return w.radius
}

func (w *sphericalWorldImpl) Gravity() float32 {
	return w.gravity
}

func (w *sphericalWorldImpl) ChunkSize() float32 {
	return w.chunkSize
}

func (w *sphericalWorldImpl) UpVector(position common.Vec3) common.Vec3 {
	up := position.Normalize()
	if up.IsZero() {
		// Degenerate center query. Returning a fixed axis keeps downstream
		// math NaN-free; a position here indicates a caller bug.
		return common.Vec3{Y: 1}
	}
	return up
}

func (w *sphericalWorldImpl) ForwardVector(position common.Vec3) common.Vec3 {
	up := w.UpVector(position)

	// Project the world north axis onto the tangent plane. Near the poles
	// the projection collapses; fall back to the world X axis there, which
	// is the known frame degeneracy on any sphere.
	forward := common.Vec3{Y: 1}.ProjectOnPlane(up).Normalize()
	if forward.IsZero() {
		forward = common.Vec3{X: 1}.ProjectOnPlane(up).Normalize()
	}
	return forward
}

func (w *sphericalWorldImpl) RightVector(position common.Vec3) common.Vec3 {
	up := w.UpVector(position)
	return w.ForwardVector(position).Cross(up).Normalize()
}

func (w *sphericalWorldImpl) CartesianToSpherical(position common.Vec3) Spherical {
	r := position.Length()
	if r < 1e-6 {
		return Spherical{Altitude: -w.radius}
	}
	return Spherical{
		Lat:      float32(math.Asin(float64(position.Y / r))),
		Lon:      float32(math.Atan2(float64(position.Z), float64(position.X))),
		Altitude: r - w.radius,
	}
}

func (w *sphericalWorldImpl) SphericalToCartesian(s Spherical) common.Vec3 {
	r := w.radius + s.Altitude
	cosLat := float32(math.Cos(float64(s.Lat)))
	return common.Vec3{
		X: r * cosLat * float32(math.Cos(float64(s.Lon))),
		Y: r * float32(math.Sin(float64(s.Lat))),
		Z: r * cosLat * float32(math.Sin(float64(s.Lon))),
	}
}
