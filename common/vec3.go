// package common contains common types that are used throughout this engine. They are not interface-wrapped structs, just plain structs that express
// commonly used data-types.
package common

import "math"

// Vec3 is a 3-component float32 vector used for positions, velocities, and
// direction vectors throughout the engine. All methods are value-receiver and
// return new vectors; a Vec3 handed to a caller can never alias internal state.
type Vec3 struct {
	X, Y, Z float32
}

// Add returns the component-wise sum v + o.
//
// Parameters:
//   - o: vector to add
//
// Returns:
//   - Vec3: the sum
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns the component-wise difference v - o.
//
// Parameters:
//   - o: vector to subtract
//
// Returns:
//   - Vec3: the difference
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Scale returns v scaled by s.
//
// Parameters:
//   - s: scalar multiplier
//
// Returns:
//   - Vec3: the scaled vector
func (v Vec3) Scale(s float32) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Dot returns the dot product of v and o.
//
// Parameters:
//   - o: the other vector
//
// Returns:
//   - float32: the dot product
func (v Vec3) Dot(o Vec3) float32 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Cross returns the cross product v × o.
//
// Parameters:
//   - o: the other vector
//
// Returns:
//   - Vec3: the cross product
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		v.Y*o.Z - v.Z*o.Y,
		v.Z*o.X - v.X*o.Z,
		v.X*o.Y - v.Y*o.X,
	}
}

// LengthSq returns the squared magnitude of v.
//
// Returns:
//   - float32: the squared length
func (v Vec3) LengthSq() float32 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Length returns the magnitude of v.
//
// Returns:
//   - float32: the length
func (v Vec3) Length() float32 {
	return float32(math.Sqrt(float64(v.LengthSq())))
}

// Normalize returns the unit vector pointing in the direction of v.
// Returns the zero vector if v has near-zero length; callers that require a
// valid direction must check IsZero on the result rather than divide by zero.
//
// Returns:
//   - Vec3: the normalized vector, or the zero vector if degenerate
func (v Vec3) Normalize() Vec3 {
	lenSq := v.LengthSq()
	if lenSq < 1e-12 {
		return Vec3{}
	}
	inv := 1.0 / float32(math.Sqrt(float64(lenSq)))
	return Vec3{v.X * inv, v.Y * inv, v.Z * inv}
}

// IsZero reports whether all components are exactly zero.
//
// Returns:
//   - bool: true if the vector is the zero vector
func (v Vec3) IsZero() bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}

// Lerp returns the linear interpolation between v and o at parameter t.
// t is not clamped; t=0 returns v, t=1 returns o.
//
// Parameters:
//   - o: target vector
//   - t: interpolation parameter
//
// Returns:
//   - Vec3: the interpolated vector
func (v Vec3) Lerp(o Vec3, t float32) Vec3 {
	return Vec3{
		v.X + (o.X-v.X)*t,
		v.Y + (o.Y-v.Y)*t,
		v.Z + (o.Z-v.Z)*t,
	}
}

// ProjectOnPlane returns v with its component along the (unit) normal removed,
// i.e. the projection of v onto the plane orthogonal to normal.
//
// Parameters:
//   - normal: unit plane normal
//
// Returns:
//   - Vec3: the tangent-plane projection of v
func (v Vec3) ProjectOnPlane(normal Vec3) Vec3 {
	return v.Sub(normal.Scale(v.Dot(normal)))
}

// Pose describes a camera or actor view pose as an eye position, a look-at
// target, and an up vector. It is the unit of exchange between locomotion
// controllers and the camera system.
type Pose struct {
	// Eye is the world-space viewpoint position.
	Eye Vec3
	// Target is the world-space point being looked at.
	Target Vec3
	// Up is the view's up vector (unit length).
	Up Vec3
}
