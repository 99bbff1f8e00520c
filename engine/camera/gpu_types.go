package camera

import (
	"encoding/binary"
	"math"
	"unsafe"
)

// GPUCameraUniform is the GPU-aligned representation of the camera uniform buffer.
// Layout (std430 / WGSL aligned):
//
//	view_proj:     mat4x4<f32>  offset   0
//	inv_proj:      mat4x4<f32>  offset  64
//	eye:           vec3<f32>    offset 128
//	_pad:          f32          offset 140
//
// Size: 144 bytes.
type GPUCameraUniform struct {
	ViewProjection    [16]float32 // offset   0: combined view-projection matrix (mat4x4<f32>)
	InverseProjection [16]float32 // offset  64: inverse projection matrix (mat4x4<f32>)
	Eye               [3]float32  // offset 128: world-space camera position (vec3<f32>)
	_pad              float32     // offset 140: padding to 144 bytes
}

// Size returns the size of the GPUCameraUniform struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (144)
func (g *GPUCameraUniform) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUCameraUniform struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: the serialized byte buffer
func (g *GPUCameraUniform) Marshal() []byte {
	buf := make([]byte, g.Size())
	for i := range 16 {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(g.ViewProjection[i]))
	}
	for i := range 16 {
		binary.LittleEndian.PutUint32(buf[64+i*4:], math.Float32bits(g.InverseProjection[i]))
	}
	for i := range 3 {
		binary.LittleEndian.PutUint32(buf[128+i*4:], math.Float32bits(g.Eye[i]))
	}
	binary.LittleEndian.PutUint32(buf[140:], 0) // _pad
	return buf
}
