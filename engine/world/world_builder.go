package world

// SphericalWorldOption is a functional option for configuring a SphericalWorld.
type SphericalWorldOption func(*sphericalWorldImpl)

// WithRadius sets the planet surface radius.
//
// Parameters:
//   - radius: surface radius (must be > 0; non-positive values are ignored)
//
// Returns:
//   - SphericalWorldOption: functional option to set the radius
func WithRadius(radius float32) SphericalWorldOption {
	return func(w *sphericalWorldImpl) {
		if radius > 0 {
			w.radius = radius
		}
	}
}

// WithGravity sets the scalar gravity magnitude.
//
// Parameters:
//   - gravity: gravity magnitude (must be > 0; non-positive values are ignored)
//
// Returns:
//   - SphericalWorldOption: functional option to set gravity
func WithGravity(gravity float32) SphericalWorldOption {
	return func(w *sphericalWorldImpl) {
		if gravity > 0 {
			w.gravity = gravity
		}
	}
}

// WithChunkSize sets the terrain partition unit.
//
// Parameters:
//   - size: chunk edge length (must be > 0; non-positive values are ignored)
//
// Returns:
//   - SphericalWorldOption: functional option to set the chunk size
func WithChunkSize(size float32) SphericalWorldOption {
	return func(w *sphericalWorldImpl) {
		if size > 0 {
			w.chunkSize = size
		}
	}
}
