// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package geom

import (
	"math"

	"github.com/ajroetker/hwygeom/hwy"
)

// Quaternion is a rotation (X, Y, Z, W) with (X, Y, Z) = axis*sin(angle/2)
// and W = cos(angle/2). Operations that assume unit length, such as Rotate
// and Slerp, never renormalize.
type Quaternion[T hwy.Floats] struct {
	q hwy.Vec4[T]
}

// NewQuaternion returns the quaternion (x, y, z, w) as given, without
// normalizing it.
func NewQuaternion[T hwy.Floats](x, y, z, w T) Quaternion[T] {
	return Quaternion[T]{q: hwy.Load4(x, y, z, w)}
}

// QuaternionIdentity returns (0, 0, 0, 1).
func QuaternionIdentity[T hwy.Floats]() Quaternion[T] {
	return NewQuaternion[T](0, 0, 0, 1)
}

// QuaternionFromAxis returns a rotation of deg degrees about axis. axis must
// already be unit length.
func QuaternionFromAxis[T hwy.Floats](axis Vector3[T], deg T) Quaternion[T] {
	s, c := hwy.SinCosDeg(deg / 2)
	return Quaternion[T]{q: hwy.Load4(axis.v[0], axis.v[1], axis.v[2], 0).Scale(s).With(3, c)}
}

// QuaternionFromRollPitchYaw returns the rotation built by
// Matrix4x4.LoadRotateRollPitchYaw with the same angles.
func QuaternionFromRollPitchYaw[T hwy.Floats](roll, pitch, yaw T) Quaternion[T] {
	qz := QuaternionFromAxis(Vector3UnitZ[T](), roll)
	qx := QuaternionFromAxis(Vector3UnitX[T](), pitch)
	qy := QuaternionFromAxis(Vector3UnitY[T](), yaw)
	return qz.Multiply(qx).Multiply(qy)
}

// X returns the x component.
func (q Quaternion[T]) X() T { return q.q.Get(0) }

// Y returns the y component.
func (q Quaternion[T]) Y() T { return q.q.Get(1) }

// Z returns the z component.
func (q Quaternion[T]) Z() T { return q.q.Get(2) }

// W returns the w component.
func (q Quaternion[T]) W() T { return q.q.Get(3) }

// Array returns (x, y, z, w).
func (q Quaternion[T]) Array() [4]T { return q.q.Array() }

// Vector returns the (x, y, z) part.
func (q Quaternion[T]) Vector() Vector3[T] {
	a := q.q.Array()
	return NewVector3(a[0], a[1], a[2])
}

// Multiply returns the Hamilton product q*o. Used with Rotate, the result
// rotates by q first and by o second.
func (q Quaternion[T]) Multiply(o Quaternion[T]) Quaternion[T] {
	var r Quaternion[T]
	q.MultiplyTo(o, &r)
	return r
}

// MultiplyAssign sets q to q*o.
func (q *Quaternion[T]) MultiplyAssign(o Quaternion[T]) {
	q.MultiplyTo(o, q)
}

// MultiplyTo writes q*o to out. out may alias q or o.
func (q Quaternion[T]) MultiplyTo(o Quaternion[T], out *Quaternion[T]) {
	a, b := q.q.Array(), o.q.Array()
	x := T(a[3]*b[0]) + T(b[3]*a[0]) + (T(a[1]*b[2]) - T(a[2]*b[1]))
	y := T(a[3]*b[1]) + T(b[3]*a[1]) + (T(a[2]*b[0]) - T(a[0]*b[2]))
	z := T(a[3]*b[2]) + T(b[3]*a[2]) + (T(a[0]*b[1]) - T(a[1]*b[0]))
	w := T(a[3]*b[3]) - (T(a[0]*b[0]) + T(a[1]*b[1]) + T(a[2]*b[2]))
	out.q = hwy.Load4(x, y, z, w)
}

// Rotate returns v rotated by q, computed as the vector part of
// conjugate(q) * (v, 0) * q.
func (q Quaternion[T]) Rotate(v Vector3[T]) Vector3[T] {
	p := Quaternion[T]{q: hwy.Load4(v.v[0], v.v[1], v.v[2], 0)}
	return q.Conjugate().Multiply(p).Multiply(q).Vector()
}

// Conjugate returns (-x, -y, -z, w).
func (q Quaternion[T]) Conjugate() Quaternion[T] {
	a := q.q.Array()
	return NewQuaternion(-a[0], -a[1], -a[2], a[3])
}

// Inverse returns conjugate(q) / |q|^2. ok is false, and q is returned
// unchanged, when |q|^2 is within Epsilon of zero.
func (q Quaternion[T]) Inverse() (inv Quaternion[T], ok bool) {
	ls := q.LengthSq()
	if ls <= hwy.Epsilon[T]() {
		return q, false
	}
	c := q.Conjugate()
	return Quaternion[T]{q: c.q.Div(hwy.Broadcast4(ls))}, true
}

// Invert replaces q by its inverse and reports whether it exists. q is left
// unchanged when it does not.
func (q *Quaternion[T]) Invert() bool {
	inv, ok := q.Inverse()
	*q = inv
	return ok
}

// Dot returns the four component dot product.
func (q Quaternion[T]) Dot(o Quaternion[T]) T {
	return q.q.Dot(o.q)
}

// LengthSq returns q.Dot(q).
func (q Quaternion[T]) LengthSq() T {
	return q.q.LengthSq()
}

// Length returns the Euclidean norm.
func (q Quaternion[T]) Length() T {
	return hwy.Sqrt(q.LengthSq())
}

// Normalize scales q to unit length. A zero quaternion is left unchanged.
func (q *Quaternion[T]) Normalize() {
	ls := q.LengthSq()
	if ls == 0 {
		return
	}
	q.q = q.q.Scale(hwy.RSqrt(ls))
}

// Normalized returns a unit length copy of q.
func (q Quaternion[T]) Normalized() Quaternion[T] {
	q.Normalize()
	return q
}

// Add returns the component-wise sum.
func (q Quaternion[T]) Add(o Quaternion[T]) Quaternion[T] {
	return Quaternion[T]{q: q.q.Add(o.q)}
}

// Sub returns the component-wise difference.
func (q Quaternion[T]) Sub(o Quaternion[T]) Quaternion[T] {
	return Quaternion[T]{q: q.q.Sub(o.q)}
}

// Scale multiplies every component by s.
func (q Quaternion[T]) Scale(s T) Quaternion[T] {
	return Quaternion[T]{q: q.q.Scale(s)}
}

// Neg returns -q, which represents the same rotation.
func (q Quaternion[T]) Neg() Quaternion[T] {
	return Quaternion[T]{q: q.q.Neg()}
}

// Slerp interpolates spherically from q to to along the shorter arc. Nearly
// parallel inputs fall back to a linear blend of the components. The result
// is not renormalized.
func (q Quaternion[T]) Slerp(to Quaternion[T], t T) Quaternion[T] {
	cos := q.Dot(to)
	if cos < 0 {
		to = to.Neg()
		cos = -cos
	}
	s0, s1 := 1-t, t
	if 1-cos > hwy.SlerpThreshold {
		theta := math.Acos(float64(cos))
		inv := 1 / math.Sin(theta)
		s0 = T(math.Sin(float64(1-t)*theta) * inv)
		s1 = T(math.Sin(float64(t)*theta) * inv)
	}
	return Quaternion[T]{q: q.q.Scale(s0).Add(to.q.Scale(s1))}
}

// ToAxisAngle returns the rotation axis and angle in degrees of the unit
// quaternion q. A rotation by zero degrees reports the X axis.
func (q Quaternion[T]) ToAxisAngle() (axis Vector3[T], deg T) {
	w := hwy.Clamp(q.W(), -1, 1)
	deg = 2 * hwy.AcosDeg(w)
	s := hwy.Sqrt(1 - T(w*w))
	if s <= hwy.Epsilon[T]() {
		return Vector3UnitX[T](), deg
	}
	return q.Vector().DivScalar(s), deg
}

// Equal reports exact component-wise equality.
func (q Quaternion[T]) Equal(o Quaternion[T]) bool {
	return q.q.Equal(o.q).AllTrue()
}

// Near reports component-wise equality within Epsilon.
func (q Quaternion[T]) Near(o Quaternion[T]) bool {
	return q.NearWithin(o, hwy.Epsilon[T]())
}

// NearWithin reports component-wise equality within eps.
func (q Quaternion[T]) NearWithin(o Quaternion[T], eps T) bool {
	return q.q.Sub(o.q).Abs().LessEqual(hwy.Broadcast4(eps)).AllTrue()
}

// SameRotation reports whether q and o are within eps of each other up to
// sign, since q and -q describe the same rotation.
func (q Quaternion[T]) SameRotation(o Quaternion[T], eps T) bool {
	return q.NearWithin(o, eps) || q.NearWithin(o.Neg(), eps)
}
