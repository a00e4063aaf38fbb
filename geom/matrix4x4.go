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

// Matrix4x4 is a 4x4 matrix stored as four row vectors. Rows 0..2 hold the
// transformed basis and row 3 the translation, so a row vector v transforms
// as v * M.
type Matrix4x4[T hwy.Floats] struct {
	rows [4]Vector4[T]
}

// NewMatrix4x4 returns the matrix with the given rows.
func NewMatrix4x4[T hwy.Floats](r0, r1, r2, r3 Vector4[T]) Matrix4x4[T] {
	return Matrix4x4[T]{rows: [4]Vector4[T]{r0, r1, r2, r3}}
}

// Matrix4x4FromArray returns the matrix whose row-major elements are a.
func Matrix4x4FromArray[T hwy.Floats](a [16]T) Matrix4x4[T] {
	var m Matrix4x4[T]
	for i := range 4 {
		m.rows[i] = Vector4FromArray([4]T(a[i*4 : i*4+4]))
	}
	return m
}

// Matrix4x4FromMatrix3x3 embeds m3 in the upper-left corner of an identity.
func Matrix4x4FromMatrix3x3[T hwy.Floats](m3 Matrix3x3[T]) Matrix4x4[T] {
	return Matrix4x4[T]{rows: [4]Vector4[T]{
		m3.rows[0].Extend(0),
		m3.rows[1].Extend(0),
		m3.rows[2].Extend(0),
		Vector4UnitW[T](),
	}}
}

// Identity4x4 returns the identity matrix.
func Identity4x4[T hwy.Floats]() Matrix4x4[T] {
	return Matrix4x4[T]{rows: [4]Vector4[T]{
		Vector4UnitX[T](),
		Vector4UnitY[T](),
		Vector4UnitZ[T](),
		Vector4UnitW[T](),
	}}
}

// Zero4x4 returns the zero matrix.
func Zero4x4[T hwy.Floats]() Matrix4x4[T] {
	return Matrix4x4[T]{}
}

// LoadIdentity resets m to the identity.
func (m *Matrix4x4[T]) LoadIdentity() {
	*m = Identity4x4[T]()
}

// LoadZero resets m to zero.
func (m *Matrix4x4[T]) LoadZero() {
	*m = Matrix4x4[T]{}
}

// Row returns row i.
func (m Matrix4x4[T]) Row(i int) Vector4[T] {
	hwy.Assert(uint(i) < 4, "Matrix4x4.Row: index %d out of range", i)
	return m.rows[i]
}

// SetRow replaces row i.
func (m *Matrix4x4[T]) SetRow(i int, r Vector4[T]) {
	hwy.Assert(uint(i) < 4, "Matrix4x4.SetRow: index %d out of range", i)
	m.rows[i] = r
}

// At returns the element at row r, column c.
func (m Matrix4x4[T]) At(r, c int) T {
	hwy.Assert(uint(r) < 4 && uint(c) < 4, "Matrix4x4.At: (%d,%d) out of range", r, c)
	return m.rows[r].At(c)
}

// Set replaces the element at row r, column c.
func (m *Matrix4x4[T]) Set(r, c int, x T) {
	hwy.Assert(uint(r) < 4 && uint(c) < 4, "Matrix4x4.Set: (%d,%d) out of range", r, c)
	m.rows[r].Set(c, x)
}

// Array returns the elements in row-major order.
func (m Matrix4x4[T]) Array() [16]T {
	var a [16]T
	for i := range 4 {
		m.rows[i].v.Store((*[4]T)(a[i*4 : i*4+4]))
	}
	return a
}

// Upper3x3 returns the upper-left 3x3 block.
func (m Matrix4x4[T]) Upper3x3() Matrix3x3[T] {
	return NewMatrix3x3(m.rows[0].XYZ(), m.rows[1].XYZ(), m.rows[2].XYZ())
}

// Right returns the XYZ part of row 0.
func (m Matrix4x4[T]) Right() Vector3[T] { return m.rows[0].XYZ() }

// Up returns the XYZ part of row 1.
func (m Matrix4x4[T]) Up() Vector3[T] { return m.rows[1].XYZ() }

// Forward returns the XYZ part of row 2.
func (m Matrix4x4[T]) Forward() Vector3[T] { return m.rows[2].XYZ() }

// Translation returns the XYZ part of row 3.
func (m Matrix4x4[T]) Translation() Vector3[T] { return m.rows[3].XYZ() }

// SetTranslation replaces the XYZ part of row 3.
func (m *Matrix4x4[T]) SetTranslation(t Vector3[T]) {
	m.rows[3] = t.Extend(m.rows[3].W())
}

// Multiply returns m * o.
func (m Matrix4x4[T]) Multiply(o Matrix4x4[T]) Matrix4x4[T] {
	var r Matrix4x4[T]
	m.MultiplyTo(o, &r)
	return r
}

// MultiplyAssign sets m to m * o.
func (m *Matrix4x4[T]) MultiplyAssign(o Matrix4x4[T]) {
	m.MultiplyTo(o, m)
}

// MultiplyTo writes m * o to out. out may alias m or o.
func (m Matrix4x4[T]) MultiplyTo(o Matrix4x4[T], out *Matrix4x4[T]) {
	var r Matrix4x4[T]
	for i := range 4 {
		r.rows[i] = o.Transform(m.rows[i])
	}
	*out = r
}

// Transform returns the row vector v * m.
func (m Matrix4x4[T]) Transform(v Vector4[T]) Vector4[T] {
	a := v.v.Array()
	r := m.rows[0].v.Scale(a[0])
	r = r.Add(m.rows[1].v.Scale(a[1]))
	r = r.Add(m.rows[2].v.Scale(a[2]))
	r = r.Add(m.rows[3].v.Scale(a[3]))
	return Vector4[T]{v: r}
}

// TransformTo writes v * m to out.
func (m Matrix4x4[T]) TransformTo(v Vector4[T], out *Vector4[T]) {
	*out = m.Transform(v)
}

// TransformPoint transforms p as (p, 1) * m and drops W without dividing.
func (m Matrix4x4[T]) TransformPoint(p Vector3[T]) Vector3[T] {
	return m.Transform(p.Extend(1)).XYZ()
}

// TransformCoord transforms p as (p, 1) * m and divides by the resulting W
// when it is non-zero.
func (m Matrix4x4[T]) TransformCoord(p Vector3[T]) Vector3[T] {
	r := m.Transform(p.Extend(1))
	if w := r.W(); w != 0 {
		r.v = r.v.Div(hwy.Broadcast4(w))
	}
	return r.XYZ()
}

// TransformNormal transforms n as (n, 0) * m, ignoring the translation.
func (m Matrix4x4[T]) TransformNormal(n Vector3[T]) Vector3[T] {
	return m.Transform(n.Extend(0)).XYZ()
}

// Add returns the element-wise sum.
func (m Matrix4x4[T]) Add(o Matrix4x4[T]) Matrix4x4[T] {
	m.AddAssign(o)
	return m
}

// AddAssign adds o element-wise.
func (m *Matrix4x4[T]) AddAssign(o Matrix4x4[T]) {
	for i := range 4 {
		m.rows[i].AddAssign(o.rows[i])
	}
}

// Sub returns the element-wise difference.
func (m Matrix4x4[T]) Sub(o Matrix4x4[T]) Matrix4x4[T] {
	m.SubAssign(o)
	return m
}

// SubAssign subtracts o element-wise.
func (m *Matrix4x4[T]) SubAssign(o Matrix4x4[T]) {
	for i := range 4 {
		m.rows[i].SubAssign(o.rows[i])
	}
}

// MulScalar returns m with every element scaled by s.
func (m Matrix4x4[T]) MulScalar(s T) Matrix4x4[T] {
	m.MulScalarAssign(s)
	return m
}

// MulScalarAssign scales every element by s.
func (m *Matrix4x4[T]) MulScalarAssign(s T) {
	for i := range 4 {
		m.rows[i].MulScalarAssign(s)
	}
}

// Determinant returns the determinant by cofactor expansion along row 0.
func (m Matrix4x4[T]) Determinant() T {
	a := m.Array()
	return determinant4(&a)
}

// Inverse returns the inverse of m, or exactly the identity when the
// determinant is within Epsilon of zero.
func (m Matrix4x4[T]) Inverse() Matrix4x4[T] {
	var r Matrix4x4[T]
	m.InverseTo(&r)
	return r
}

// Invert replaces m by its inverse, see Inverse.
func (m *Matrix4x4[T]) Invert() {
	m.InverseTo(m)
}

// InverseTo writes the inverse of m to out, see Inverse.
func (m Matrix4x4[T]) InverseTo(out *Matrix4x4[T]) {
	a := m.Array()
	det := determinant4(&a)
	if hwy.Abs(det) <= hwy.Epsilon[T]() {
		out.LoadIdentity()
		return
	}
	invDet := 1 / det

	// inv[i][j] is the (j, i) cofactor over the determinant.
	var inv [16]T
	for i := range 4 {
		for j := range 4 {
			c := minor4(&a, j, i)
			if (i+j)&1 == 1 {
				c = -c
			}
			inv[i*4+j] = c * invDet
		}
	}
	*out = Matrix4x4FromArray(inv)
}

// Transpose transposes m in place.
func (m *Matrix4x4[T]) Transpose() {
	for i := range 4 {
		for j := i + 1; j < 4; j++ {
			a, b := m.rows[i].At(j), m.rows[j].At(i)
			m.rows[i].Set(j, b)
			m.rows[j].Set(i, a)
		}
	}
}

// Transposed returns the transpose of m.
func (m Matrix4x4[T]) Transposed() Matrix4x4[T] {
	m.Transpose()
	return m
}

// Scale returns the lengths of the XYZ parts of rows 0..2. Shear is not
// removed.
func (m Matrix4x4[T]) Scale() Vector3[T] {
	return NewVector3(m.Right().Length(), m.Up().Length(), m.Forward().Length())
}

// Pitch returns the rotation about X in degrees, read from the forward row.
func (m Matrix4x4[T]) Pitch() T {
	return pitchOf(m.Forward())
}

// Yaw returns the rotation about Y in degrees, read from the forward row.
func (m Matrix4x4[T]) Yaw() T {
	return yawOf(m.Forward())
}

// Roll returns the rotation about Z in degrees, read from elements (0,1)
// and (1,1).
func (m Matrix4x4[T]) Roll() T {
	return hwy.Atan2Deg(-m.rows[0].Y(), m.rows[1].Y())
}

// Decompose splits an affine matrix built as S*R*T into its scale, rotation
// and translation. Rows with zero length leave the rotation row at zero.
func (m Matrix4x4[T]) Decompose() (scale Vector3[T], rotation Quaternion[T], translation Vector3[T]) {
	scale = m.Scale()
	var rot Matrix3x3[T]
	for i := range 3 {
		r := m.rows[i].XYZ()
		if s := scale.v[i]; s != 0 {
			r.DivScalarAssign(s)
		}
		rot.rows[i] = r
	}
	return scale, QuaternionFromMatrix3x3(rot), m.Translation()
}

// Slerp interpolates between two affine matrices: scale and translation
// linearly, rotation spherically. t is not clamped.
func (m Matrix4x4[T]) Slerp(to Matrix4x4[T], t T) Matrix4x4[T] {
	s0, r0, t0 := m.Decompose()
	s1, r1, t1 := to.Decompose()
	var r Matrix4x4[T]
	r.LoadWorld(s0.Lerp(s1, t), r0.Slerp(r1, t), t0.Lerp(t1, t))
	return r
}

// Equal reports exact element-wise equality.
func (m Matrix4x4[T]) Equal(o Matrix4x4[T]) bool {
	for i := range 4 {
		if !m.rows[i].Equal(o.rows[i]) {
			return false
		}
	}
	return true
}

// Near reports element-wise equality within Epsilon.
func (m Matrix4x4[T]) Near(o Matrix4x4[T]) bool {
	return m.NearWithin(o, hwy.Epsilon[T]())
}

// NearWithin reports element-wise equality within eps.
func (m Matrix4x4[T]) NearWithin(o Matrix4x4[T], eps T) bool {
	for i := range 4 {
		if !m.rows[i].NearWithin(o.rows[i], eps) {
			return false
		}
	}
	return true
}

// others[k] lists the three indices in 0..3 other than k.
var others = [4][3]int{{1, 2, 3}, {0, 2, 3}, {0, 1, 3}, {0, 1, 2}}

// minor4 returns the determinant of the 3x3 block of a without row r and
// column c.
func minor4[T hwy.Floats](a *[16]T, r, c int) T {
	rs, cs := others[r], others[c]
	e := func(i, j int) T { return a[rs[i]*4+cs[j]] }
	return T(e(0, 0)*(T(e(1, 1)*e(2, 2))-T(e(1, 2)*e(2, 1)))) -
		T(e(0, 1)*(T(e(1, 0)*e(2, 2))-T(e(1, 2)*e(2, 0)))) +
		T(e(0, 2)*(T(e(1, 0)*e(2, 1))-T(e(1, 1)*e(2, 0))))
}

func determinant4[T hwy.Floats](a *[16]T) T {
	return T(a[0]*minor4(a, 0, 0)) -
		T(a[1]*minor4(a, 0, 1)) +
		T(a[2]*minor4(a, 0, 2)) -
		T(a[3]*minor4(a, 0, 3))
}
