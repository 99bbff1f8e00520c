package terrain

import (
	"math"
	"runtime"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/Zephyrlll/fillstellar/common"
	"github.com/Zephyrlll/fillstellar/engine/world"
)

// chunkResolution is the number of height samples per chunk edge.
const chunkResolution = 16

// marchStep is the ray-march step length for obstruction probes, as a
// fraction of the chunk size.
const marchStep = 0.05

type chunkKey struct {
	latCell, lonCell int32
}

// chunk holds a grid of surface altitudes covering one angular cell.
type chunk struct {
	heights [chunkResolution * chunkResolution]float32
}

// heightfieldImpl is a procedural terrain built from fractal value noise over
// latitude/longitude, cached per chunk. Chunk generation is fanned out to a
// dynamic worker pool when regions are prewarmed, and falls back to inline
// generation on a cache miss during queries.
type heightfieldImpl struct {
	mu sync.Mutex

	w         world.SphericalWorld
	seed      int64
	amplitude float32
	frequency float32
	octaves   int

	chunks map[chunkKey]*chunk
	pool   worker.DynamicWorkerPool
}

// Heightfield extends Terrain with region prewarming for session start.
type Heightfield interface {
	Terrain

	// Prewarm generates and caches all chunks within the angular rectangle
	// spanned by the two lat/lon corners, fanning the work out to the worker
	// pool. Blocks until every chunk is cached.
	//
	// Parameters:
	//   - latMin, lonMin: lower corner in radians
	//   - latMax, lonMax: upper corner in radians
	Prewarm(latMin, lonMin, latMax, lonMax float32)
}

var _ Heightfield = &heightfieldImpl{}

// NewHeightfield creates a procedural heightfield Terrain over the given
// world. Defaults: amplitude 3, frequency 6, 4 noise octaves, seed 1.
//
// Parameters:
//   - w: the spherical world supplying radius and chunk size
//   - options: functional options to configure the terrain
//
// Returns:
//   - Heightfield: the newly created heightfield terrain
func NewHeightfield(w world.SphericalWorld, options ...HeightfieldOption) Heightfield {
	h := &heightfieldImpl{
		w:         w,
		seed:      1,
		amplitude: 3.0,
		frequency: 6.0,
		octaves:   4,
		chunks:    make(map[chunkKey]*chunk),
	}
	for _, option := range options {
		option(h)
	}
	// Queue size of 256 covers a full prewarm pass over a typical landing
	// region with headroom.
	h.pool = worker.NewDynamicWorkerPool(max(runtime.NumCPU()-1, 1), 256, 1*time.Second)
	return h
}

// chunkAngle returns the angular extent of one chunk in radians.
func (h *heightfieldImpl) chunkAngle() float32 {
	return h.w.ChunkSize() / h.w.Radius()
}

func (h *heightfieldImpl) keyFor(lat, lon float32) chunkKey {
	a := h.chunkAngle()
	return chunkKey{
		latCell: int32(math.Floor(float64(lat / a))),
		lonCell: int32(math.Floor(float64(lon / a))),
	}
}

// generateChunk samples the noise field across one chunk cell.
// Pure function of the key and terrain parameters; safe to run on any worker.
func (h *heightfieldImpl) generateChunk(key chunkKey) *chunk {
	a := h.chunkAngle()
	c := &chunk{}
	for i := 0; i < chunkResolution; i++ {
		for j := 0; j < chunkResolution; j++ {
			lat := (float32(key.latCell) + float32(i)/(chunkResolution-1)) * a
			lon := (float32(key.lonCell) + float32(j)/(chunkResolution-1)) * a
			c.heights[i*chunkResolution+j] = h.sampleNoise(lat, lon)
		}
	}
	return c
}

// sampleNoise evaluates fractal value noise at a lat/lon coordinate.
// The result is non-negative so terrain never dips below the sphere surface.
func (h *heightfieldImpl) sampleNoise(lat, lon float32) float32 {
	sum := float32(0)
	norm := float32(0)
	amplitude := float32(1)
	frequency := h.frequency
	for o := 0; o < h.octaves; o++ {
		sum += valueNoise2D(lat*frequency, lon*frequency, h.seed+int64(o)) * amplitude
		norm += amplitude
		amplitude *= 0.5
		frequency *= 2
	}
	n := sum / norm // in [0, 1]
	return n * h.amplitude
}

// chunkFor returns the chunk covering the key, generating it inline on miss.
func (h *heightfieldImpl) chunkFor(key chunkKey) *chunk {
	h.mu.Lock()
	c, ok := h.chunks[key]
	h.mu.Unlock()
	if ok {
		return c
	}

	c = h.generateChunk(key)

	h.mu.Lock()
	// Another goroutine may have raced the generation; keep the first copy so
	// cached pointers stay stable.
	if existing, ok := h.chunks[key]; ok {
		c = existing
	} else {
		h.chunks[key] = c
	}
	h.mu.Unlock()
	return c
}

// Prewarm is used before an exploration session starts so the first frames
// never stall on inline chunk generation.
func (h *heightfieldImpl) Prewarm(latMin, lonMin, latMax, lonMax float32) {
	kMin := h.keyFor(latMin, lonMin)
	kMax := h.keyFor(latMax, lonMax)

	var wg sync.WaitGroup
	taskID := 0
	for lat := kMin.latCell; lat <= kMax.latCell; lat++ {
		for lon := kMin.lonCell; lon <= kMax.lonCell; lon++ {
			key := chunkKey{latCell: lat, lonCell: lon}

			h.mu.Lock()
			_, cached := h.chunks[key]
			h.mu.Unlock()
			if cached {
				continue
			}

			wg.Add(1)
			id := taskID
			taskID++
			h.pool.SubmitTask(worker.Task{
				ID: id,
				Do: func() (any, error) {
					defer wg.Done()
					c := h.generateChunk(key)
					h.mu.Lock()
					if _, ok := h.chunks[key]; !ok {
						h.chunks[key] = c
					}
					h.mu.Unlock()
					return nil, nil
				},
			})
		}
	}
	wg.Wait()
}

func (h *heightfieldImpl) SurfaceAltitude(lat, lon float32) float32 {
	a := h.chunkAngle()
	key := h.keyFor(lat, lon)
	c := h.chunkFor(key)

	// Bilinear interpolation within the chunk grid.
	fi := (lat/a - float32(key.latCell)) * (chunkResolution - 1)
	fj := (lon/a - float32(key.lonCell)) * (chunkResolution - 1)
	i := int(common.Clamp(fi, 0, chunkResolution-2))
	j := int(common.Clamp(fj, 0, chunkResolution-2))
	ti := common.Clamp(fi-float32(i), 0, 1)
	tj := common.Clamp(fj-float32(j), 0, 1)

	h00 := c.heights[i*chunkResolution+j]
	h01 := c.heights[i*chunkResolution+j+1]
	h10 := c.heights[(i+1)*chunkResolution+j]
	h11 := c.heights[(i+1)*chunkResolution+j+1]

	top := h00 + (h01-h00)*tj
	bottom := h10 + (h11-h10)*tj
	return top + (bottom-top)*ti
}

func (h *heightfieldImpl) ObstructionDistance(origin, dir common.Vec3, maxDistance float32) (float32, bool) {
	if maxDistance <= 0 {
		return 0, false
	}
	step := h.w.ChunkSize() * marchStep
	for d := step; d <= maxDistance; d += step {
		p := origin.Add(dir.Scale(d))
		s := h.w.CartesianToSpherical(p)
		if s.Altitude < h.SurfaceAltitude(s.Lat, s.Lon) {
			return d, true
		}
	}
	return 0, false
}

// valueNoise2D evaluates smoothed lattice value noise at (x, y), returning a
// value in [0, 1]. Lattice values come from an integer hash so the field is
// deterministic for a given seed.
func valueNoise2D(x, y float32, seed int64) float32 {
	ix := int32(math.Floor(float64(x)))
	iy := int32(math.Floor(float64(y)))
	fx := x - float32(ix)
	fy := y - float32(iy)

	// Smoothstep fade removes the lattice's directional artifacts.
	sx := fx * fx * (3 - 2*fx)
	sy := fy * fy * (3 - 2*fy)

	v00 := latticeValue(ix, iy, seed)
	v01 := latticeValue(ix, iy+1, seed)
	v10 := latticeValue(ix+1, iy, seed)
	v11 := latticeValue(ix+1, iy+1, seed)

	top := v00 + (v01-v00)*sy
	bottom := v10 + (v11-v10)*sy
	return top + (bottom-top)*sx
}

// latticeValue hashes an integer lattice point to a float in [0, 1].
func latticeValue(x, y int32, seed int64) float32 {
	n := uint64(uint32(x))*0x9E3779B1 ^ uint64(uint32(y))*0x85EBCA77 ^ uint64(seed)*0xC2B2AE3D
	n ^= n >> 33
	n *= 0xFF51AFD7ED558CCD
	n ^= n >> 33
	return float32(n&0xFFFFFF) / float32(0xFFFFFF)
}
