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

import "github.com/ajroetker/hwygeom/hwy"

// Matrix3x3 is a 3x3 matrix stored as three row vectors. Row i is the image
// of basis vector i, so a row vector v transforms as v * M.
type Matrix3x3[T hwy.Floats] struct {
	rows [3]Vector3[T]
}

// NewMatrix3x3 returns the matrix with the given rows.
func NewMatrix3x3[T hwy.Floats](r0, r1, r2 Vector3[T]) Matrix3x3[T] {
	return Matrix3x3[T]{rows: [3]Vector3[T]{r0, r1, r2}}
}

// Matrix3x3FromArray returns the matrix whose row-major elements are a.
func Matrix3x3FromArray[T hwy.Floats](a [9]T) Matrix3x3[T] {
	return Matrix3x3[T]{rows: [3]Vector3[T]{
		NewVector3(a[0], a[1], a[2]),
		NewVector3(a[3], a[4], a[5]),
		NewVector3(a[6], a[7], a[8]),
	}}
}

// Identity3x3 returns the identity matrix.
func Identity3x3[T hwy.Floats]() Matrix3x3[T] {
	return Matrix3x3[T]{rows: [3]Vector3[T]{
		Vector3UnitX[T](),
		Vector3UnitY[T](),
		Vector3UnitZ[T](),
	}}
}

// Zero3x3 returns the zero matrix.
func Zero3x3[T hwy.Floats]() Matrix3x3[T] {
	return Matrix3x3[T]{}
}

// LoadIdentity resets m to the identity.
func (m *Matrix3x3[T]) LoadIdentity() {
	*m = Identity3x3[T]()
}

// LoadZero resets m to zero.
func (m *Matrix3x3[T]) LoadZero() {
	*m = Matrix3x3[T]{}
}

// Row returns row i.
func (m Matrix3x3[T]) Row(i int) Vector3[T] {
	hwy.Assert(uint(i) < 3, "Matrix3x3.Row: index %d out of range", i)
	return m.rows[i]
}

// SetRow replaces row i.
func (m *Matrix3x3[T]) SetRow(i int, r Vector3[T]) {
	hwy.Assert(uint(i) < 3, "Matrix3x3.SetRow: index %d out of range", i)
	m.rows[i] = r
}

// At returns the element at row r, column c.
func (m Matrix3x3[T]) At(r, c int) T {
	hwy.Assert(uint(r) < 3 && uint(c) < 3, "Matrix3x3.At: (%d,%d) out of range", r, c)
	return m.rows[r].v[c]
}

// Set replaces the element at row r, column c.
func (m *Matrix3x3[T]) Set(r, c int, x T) {
	hwy.Assert(uint(r) < 3 && uint(c) < 3, "Matrix3x3.Set: (%d,%d) out of range", r, c)
	m.rows[r].v[c] = x
}

// Array returns the elements in row-major order.
func (m Matrix3x3[T]) Array() [9]T {
	var a [9]T
	for i := range 3 {
		copy(a[i*3:], m.rows[i].v[:])
	}
	return a
}

// Right returns row 0.
func (m Matrix3x3[T]) Right() Vector3[T] { return m.rows[0] }

// Up returns row 1.
func (m Matrix3x3[T]) Up() Vector3[T] { return m.rows[1] }

// Forward returns row 2.
func (m Matrix3x3[T]) Forward() Vector3[T] { return m.rows[2] }

// Multiply returns m * o.
func (m Matrix3x3[T]) Multiply(o Matrix3x3[T]) Matrix3x3[T] {
	var r Matrix3x3[T]
	m.MultiplyTo(o, &r)
	return r
}

// MultiplyAssign sets m to m * o.
func (m *Matrix3x3[T]) MultiplyAssign(o Matrix3x3[T]) {
	m.MultiplyTo(o, m)
}

// MultiplyTo writes m * o to out. out may alias m or o.
func (m Matrix3x3[T]) MultiplyTo(o Matrix3x3[T], out *Matrix3x3[T]) {
	var r Matrix3x3[T]
	for i := range 3 {
		r.rows[i] = o.Transform(m.rows[i])
	}
	*out = r
}

// Transform returns the row vector v * m.
func (m Matrix3x3[T]) Transform(v Vector3[T]) Vector3[T] {
	r := m.rows[0].MulScalar(v.v[0])
	r.AddAssign(m.rows[1].MulScalar(v.v[1]))
	r.AddAssign(m.rows[2].MulScalar(v.v[2]))
	return r
}

// TransformTo writes v * m to out.
func (m Matrix3x3[T]) TransformTo(v Vector3[T], out *Vector3[T]) {
	*out = m.Transform(v)
}

// Add returns the element-wise sum.
func (m Matrix3x3[T]) Add(o Matrix3x3[T]) Matrix3x3[T] {
	m.AddAssign(o)
	return m
}

// AddAssign adds o element-wise.
func (m *Matrix3x3[T]) AddAssign(o Matrix3x3[T]) {
	for i := range 3 {
		m.rows[i].AddAssign(o.rows[i])
	}
}

// Sub returns the element-wise difference.
func (m Matrix3x3[T]) Sub(o Matrix3x3[T]) Matrix3x3[T] {
	m.SubAssign(o)
	return m
}

// SubAssign subtracts o element-wise.
func (m *Matrix3x3[T]) SubAssign(o Matrix3x3[T]) {
	for i := range 3 {
		m.rows[i].SubAssign(o.rows[i])
	}
}

// MulScalar returns m with every element scaled by s.
func (m Matrix3x3[T]) MulScalar(s T) Matrix3x3[T] {
	m.MulScalarAssign(s)
	return m
}

// MulScalarAssign scales every element by s.
func (m *Matrix3x3[T]) MulScalarAssign(s T) {
	for i := range 3 {
		m.rows[i].MulScalarAssign(s)
	}
}

// LoadScale sets m to a scaling by s.
func (m *Matrix3x3[T]) LoadScale(s Vector3[T]) {
	*m = Matrix3x3[T]{rows: [3]Vector3[T]{
		NewVector3(s.v[0], 0, 0),
		NewVector3(0, s.v[1], 0),
		NewVector3(0, 0, s.v[2]),
	}}
}

// LoadRotateX sets m to a rotation of deg degrees about the X axis.
func (m *Matrix3x3[T]) LoadRotateX(deg T) {
	s, c := hwy.SinCosDeg(deg)
	*m = Matrix3x3[T]{rows: [3]Vector3[T]{
		NewVector3[T](1, 0, 0),
		NewVector3(0, c, -s),
		NewVector3(0, s, c),
	}}
}

// LoadRotateY sets m to a rotation of deg degrees about the Y axis.
func (m *Matrix3x3[T]) LoadRotateY(deg T) {
	s, c := hwy.SinCosDeg(deg)
	*m = Matrix3x3[T]{rows: [3]Vector3[T]{
		NewVector3(c, 0, s),
		NewVector3[T](0, 1, 0),
		NewVector3(-s, 0, c),
	}}
}

// LoadRotateZ sets m to a rotation of deg degrees about the Z axis.
func (m *Matrix3x3[T]) LoadRotateZ(deg T) {
	s, c := hwy.SinCosDeg(deg)
	*m = Matrix3x3[T]{rows: [3]Vector3[T]{
		NewVector3(c, -s, 0),
		NewVector3(s, c, 0),
		NewVector3[T](0, 0, 1),
	}}
}

// LoadRotateRollPitchYaw sets m to RotateZ(roll) * RotateX(pitch) * RotateY(yaw).
func (m *Matrix3x3[T]) LoadRotateRollPitchYaw(roll, pitch, yaw T) {
	var rz, rx, ry Matrix3x3[T]
	rz.LoadRotateZ(roll)
	rx.LoadRotateX(pitch)
	ry.LoadRotateY(yaw)
	*m = rz.Multiply(rx).Multiply(ry)
}

// LoadRotateAxis sets m to a rotation of deg degrees about the unit vector axis.
func (m *Matrix3x3[T]) LoadRotateAxis(axis Vector3[T], deg T) {
	m.LoadRotateQuaternion(QuaternionFromAxis(axis, deg))
}

// LoadRotateQuaternion sets m to the rotation described by q, so that
// v * m equals q.Rotate(v).
func (m *Matrix3x3[T]) LoadRotateQuaternion(q Quaternion[T]) {
	*m = Matrix3x3FromQuaternion(q)
}

// Determinant returns the determinant by the rule of Sarrus.
func (m Matrix3x3[T]) Determinant() T {
	a, b, c := m.rows[0].v[0], m.rows[0].v[1], m.rows[0].v[2]
	d, e, f := m.rows[1].v[0], m.rows[1].v[1], m.rows[1].v[2]
	g, h, i := m.rows[2].v[0], m.rows[2].v[1], m.rows[2].v[2]
	return T(a*e*i) + T(b*f*g) + T(c*d*h) - T(c*e*g) - T(a*f*h) - T(b*d*i)
}

// Inverse returns the inverse of m, or the identity when the determinant is
// within Epsilon of zero.
func (m Matrix3x3[T]) Inverse() Matrix3x3[T] {
	var r Matrix3x3[T]
	m.InverseTo(&r)
	return r
}

// Invert replaces m by its inverse, see Inverse.
func (m *Matrix3x3[T]) Invert() {
	m.InverseTo(m)
}

// InverseTo writes the inverse of m to out, see Inverse.
func (m Matrix3x3[T]) InverseTo(out *Matrix3x3[T]) {
	det := m.Determinant()
	if hwy.Abs(det) <= hwy.Epsilon[T]() {
		out.LoadIdentity()
		return
	}
	a, b, c := m.rows[0].v[0], m.rows[0].v[1], m.rows[0].v[2]
	d, e, f := m.rows[1].v[0], m.rows[1].v[1], m.rows[1].v[2]
	g, h, i := m.rows[2].v[0], m.rows[2].v[1], m.rows[2].v[2]

	adj := Matrix3x3[T]{rows: [3]Vector3[T]{
		NewVector3(T(e*i)-T(f*h), T(c*h)-T(b*i), T(b*f)-T(c*e)),
		NewVector3(T(f*g)-T(d*i), T(a*i)-T(c*g), T(c*d)-T(a*f)),
		NewVector3(T(d*h)-T(e*g), T(b*g)-T(a*h), T(a*e)-T(b*d)),
	}}
	*out = adj.MulScalar(1 / det)
}

// Transpose transposes m in place.
func (m *Matrix3x3[T]) Transpose() {
	m.rows[0].v[1], m.rows[1].v[0] = m.rows[1].v[0], m.rows[0].v[1]
	m.rows[0].v[2], m.rows[2].v[0] = m.rows[2].v[0], m.rows[0].v[2]
	m.rows[1].v[2], m.rows[2].v[1] = m.rows[2].v[1], m.rows[1].v[2]
}

// Transposed returns the transpose of m.
func (m Matrix3x3[T]) Transposed() Matrix3x3[T] {
	m.Transpose()
	return m
}

// Scale returns the lengths of the three rows. Shear is not removed.
func (m Matrix3x3[T]) Scale() Vector3[T] {
	return NewVector3(m.rows[0].Length(), m.rows[1].Length(), m.rows[2].Length())
}

// Pitch returns the rotation about X in degrees, read from the forward row.
func (m Matrix3x3[T]) Pitch() T {
	return pitchOf(m.rows[2])
}

// Yaw returns the rotation about Y in degrees, read from the forward row.
func (m Matrix3x3[T]) Yaw() T {
	return yawOf(m.rows[2])
}

// Roll returns the rotation about Z in degrees, read from elements (0,1)
// and (1,1).
func (m Matrix3x3[T]) Roll() T {
	return hwy.Atan2Deg(-m.rows[0].v[1], m.rows[1].v[1])
}

// Equal reports exact element-wise equality.
func (m Matrix3x3[T]) Equal(o Matrix3x3[T]) bool {
	return m.rows == o.rows
}

// Near reports element-wise equality within Epsilon.
func (m Matrix3x3[T]) Near(o Matrix3x3[T]) bool {
	return m.NearWithin(o, hwy.Epsilon[T]())
}

// NearWithin reports element-wise equality within eps.
func (m Matrix3x3[T]) NearWithin(o Matrix3x3[T], eps T) bool {
	for i := range 3 {
		if !m.rows[i].NearWithin(o.rows[i], eps) {
			return false
		}
	}
	return true
}

func pitchOf[T hwy.Floats](forward Vector3[T]) T {
	return hwy.AsinDeg(forward.Normalized().v[1])
}

func yawOf[T hwy.Floats](forward Vector3[T]) T {
	f := forward.Normalized()
	return hwy.Atan2Deg(-f.v[0], f.v[2])
}
