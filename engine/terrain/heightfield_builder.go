package terrain

// HeightfieldOption is a functional option for configuring a heightfield Terrain.
type HeightfieldOption func(*heightfieldImpl)

// WithSeed sets the noise seed. Two heightfields with the same seed and
// parameters produce identical terrain.
//
// Parameters:
//   - seed: deterministic noise seed
//
// Returns:
//   - HeightfieldOption: functional option to set the seed
func WithSeed(seed int64) HeightfieldOption {
	return func(h *heightfieldImpl) {
		h.seed = seed
	}
}

// WithAmplitude sets the maximum terrain height above the sphere surface.
//
// Parameters:
//   - amplitude: peak surface altitude (negative values are ignored)
//
// Returns:
//   - HeightfieldOption: functional option to set the amplitude
func WithAmplitude(amplitude float32) HeightfieldOption {
	return func(h *heightfieldImpl) {
		if amplitude >= 0 {
			h.amplitude = amplitude
		}
	}
}

// WithFrequency sets the base noise frequency in cycles per radian.
//
// Parameters:
//   - frequency: base frequency (must be > 0; non-positive values are ignored)
//
// Returns:
//   - HeightfieldOption: functional option to set the frequency
func WithFrequency(frequency float32) HeightfieldOption {
	return func(h *heightfieldImpl) {
		if frequency > 0 {
			h.frequency = frequency
		}
	}
}

// WithOctaves sets the number of fractal noise octaves.
//
// Parameters:
//   - octaves: octave count (values < 1 are ignored)
//
// Returns:
//   - HeightfieldOption: functional option to set the octave count
func WithOctaves(octaves int) HeightfieldOption {
	return func(h *heightfieldImpl) {
		if octaves >= 1 {
			h.octaves = octaves
		}
	}
}
