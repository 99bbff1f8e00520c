package common

import "math"

// Quat is a unit quaternion representing a rotation in 3D space.
// The identity rotation is {W: 1}.
type Quat struct {
	W, X, Y, Z float32
}

// QuatIdentity returns the identity rotation.
//
// Returns:
//   - Quat: the identity quaternion
func QuatIdentity() Quat {
	return Quat{W: 1}
}

// QuatFromAxisAngle builds a quaternion rotating by angle radians around the
// given axis. The axis must be unit length; a zero axis yields the identity.
//
// Parameters:
//   - axis: unit rotation axis
//   - angle: rotation angle in radians
//
// Returns:
//   - Quat: the rotation quaternion
func QuatFromAxisAngle(axis Vec3, angle float32) Quat {
	if axis.IsZero() {
		return QuatIdentity()
	}
	half := float64(angle) * 0.5
	s := float32(math.Sin(half))
	return Quat{
		W: float32(math.Cos(half)),
		X: axis.X * s,
		Y: axis.Y * s,
		Z: axis.Z * s,
	}
}

// Mul returns the Hamilton product q * o. Applying the result to a vector
// rotates first by o, then by q.
//
// Parameters:
//   - o: right-hand quaternion
//
// Returns:
//   - Quat: the composed rotation
func (q Quat) Mul(o Quat) Quat {
	return Quat{
		W: q.W*o.W - q.X*o.X - q.Y*o.Y - q.Z*o.Z,
		X: q.W*o.X + q.X*o.W + q.Y*o.Z - q.Z*o.Y,
		Y: q.W*o.Y - q.X*o.Z + q.Y*o.W + q.Z*o.X,
		Z: q.W*o.Z + q.X*o.Y - q.Y*o.X + q.Z*o.W,
	}
}

// Rotate applies the rotation to a vector.
// Uses the expanded sandwich product q * v * q⁻¹ with two cross products.
//
// Parameters:
//   - v: vector to rotate
//
// Returns:
//   - Vec3: the rotated vector
func (q Quat) Rotate(v Vec3) Vec3 {
	u := Vec3{q.X, q.Y, q.Z}
	t := u.Cross(v).Scale(2)
	return v.Add(t.Scale(q.W)).Add(u.Cross(t))
}

// Dot returns the 4D dot product of two quaternions.
//
// Parameters:
//   - o: the other quaternion
//
// Returns:
//   - float32: the dot product
func (q Quat) Dot(o Quat) float32 {
	return q.W*o.W + q.X*o.X + q.Y*o.Y + q.Z*o.Z
}

// Normalize returns the unit quaternion in the direction of q.
// Returns the identity if q has near-zero magnitude.
//
// Returns:
//   - Quat: the normalized quaternion
func (q Quat) Normalize() Quat {
	magSq := q.Dot(q)
	if magSq < 1e-12 {
		return QuatIdentity()
	}
	inv := 1.0 / float32(math.Sqrt(float64(magSq)))
	return Quat{q.W * inv, q.X * inv, q.Y * inv, q.Z * inv}
}

// Slerp returns the shortest-arc spherical interpolation from q to o at
// parameter t in [0, 1]. Falls back to normalized linear interpolation when
// the quaternions are nearly parallel, where the slerp formula degenerates.
//
// Parameters:
//   - o: target rotation
//   - t: interpolation parameter in [0, 1]
//
// Returns:
//   - Quat: the interpolated rotation
func (q Quat) Slerp(o Quat, t float32) Quat {
	cosTheta := q.Dot(o)

	// Negate one endpoint if needed so the interpolation takes the short arc.
	if cosTheta < 0 {
		o = Quat{-o.W, -o.X, -o.Y, -o.Z}
		cosTheta = -cosTheta
	}

	if cosTheta > 0.9995 {
		return Quat{
			q.W + (o.W-q.W)*t,
			q.X + (o.X-q.X)*t,
			q.Y + (o.Y-q.Y)*t,
			q.Z + (o.Z-q.Z)*t,
		}.Normalize()
	}

	theta := float32(math.Acos(float64(cosTheta)))
	sinTheta := float32(math.Sin(float64(theta)))
	wa := float32(math.Sin(float64((1-t)*theta))) / sinTheta
	wb := float32(math.Sin(float64(t*theta))) / sinTheta
	return Quat{
		q.W*wa + o.W*wb,
		q.X*wa + o.X*wb,
		q.Y*wa + o.Y*wb,
		q.Z*wa + o.Z*wb,
	}.Normalize()
}

// QuatFromAxes builds the rotation whose local basis maps +X to right,
// +Y to up, and -Z to forward (the view-space convention used by LookAt).
// The inputs must form a right-handed orthonormal basis.
// Uses the standard rotation-matrix-to-quaternion conversion with the most
// numerically stable branch chosen by the matrix trace.
//
// Parameters:
//   - right: unit right vector
//   - up: unit up vector
//   - forward: unit forward (look) vector
//
// Returns:
//   - Quat: the rotation quaternion
func QuatFromAxes(right, up, forward Vec3) Quat {
	// Column-major rotation matrix with columns (right, up, -forward).
	back := forward.Scale(-1)
	m00, m01, m02 := right.X, up.X, back.X
	m10, m11, m12 := right.Y, up.Y, back.Y
	m20, m21, m22 := right.Z, up.Z, back.Z

	trace := m00 + m11 + m22
	var q Quat
	switch {
	case trace > 0:
		s := float32(math.Sqrt(float64(trace+1))) * 2
		q = Quat{
			W: 0.25 * s,
			X: (m21 - m12) / s,
			Y: (m02 - m20) / s,
			Z: (m10 - m01) / s,
		}
	case m00 > m11 && m00 > m22:
		s := float32(math.Sqrt(float64(1+m00-m11-m22))) * 2
		q = Quat{
			W: (m21 - m12) / s,
			X: 0.25 * s,
			Y: (m01 + m10) / s,
			Z: (m02 + m20) / s,
		}
	case m11 > m22:
		s := float32(math.Sqrt(float64(1+m11-m00-m22))) * 2
		q = Quat{
			W: (m02 - m20) / s,
			X: (m01 + m10) / s,
			Y: 0.25 * s,
			Z: (m12 + m21) / s,
		}
	default:
		s := float32(math.Sqrt(float64(1+m22-m00-m11))) * 2
		q = Quat{
			W: (m10 - m01) / s,
			X: (m02 + m20) / s,
			Y: (m12 + m21) / s,
			Z: 0.25 * s,
		}
	}
	return q.Normalize()
}

// Forward returns the forward (look) direction of the rotation, i.e. the
// image of the -Z view axis.
//
// Returns:
//   - Vec3: the forward direction
func (q Quat) Forward() Vec3 {
	return q.Rotate(Vec3{0, 0, -1})
}

// UpAxis returns the up direction of the rotation, i.e. the image of +Y.
//
// Returns:
//   - Vec3: the up direction
func (q Quat) UpAxis() Vec3 {
	return q.Rotate(Vec3{0, 1, 0})
}
