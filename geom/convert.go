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

// Conversions between quaternions and rotation matrices. They live outside
// both types so neither has to know the other's layout.

// Matrix3x3FromQuaternion returns the rotation matrix of q. For a unit q,
// v * m equals q.Rotate(v).
func Matrix3x3FromQuaternion[T hwy.Floats](q Quaternion[T]) Matrix3x3[T] {
	a := q.q.Array()
	x, y, z, w := a[0], a[1], a[2], a[3]
	xx, yy, zz := T(x*x), T(y*y), T(z*z)
	xy, xz, yz := T(x*y), T(x*z), T(y*z)
	xw, yw, zw := T(x*w), T(y*w), T(z*w)
	return Matrix3x3[T]{rows: [3]Vector3[T]{
		NewVector3(1-T(2*(yy+zz)), 2*(xy-zw), 2*(xz+yw)),
		NewVector3(2*(xy+zw), 1-T(2*(xx+zz)), 2*(yz-xw)),
		NewVector3(2*(xz-yw), 2*(yz+xw), 1-T(2*(xx+yy))),
	}}
}

// Matrix4x4FromQuaternion returns the rotation matrix of q with no
// translation.
func Matrix4x4FromQuaternion[T hwy.Floats](q Quaternion[T]) Matrix4x4[T] {
	return Matrix4x4FromMatrix3x3(Matrix3x3FromQuaternion(q))
}

// QuaternionFromMatrix3x3 extracts the rotation of the orthonormal matrix m.
// When the trace is small it pivots on the largest diagonal element, which
// keeps rotations close to 180 degrees accurate.
func QuaternionFromMatrix3x3[T hwy.Floats](m Matrix3x3[T]) Quaternion[T] {
	e := func(r, c int) T { return m.rows[r].v[c] }

	trace := e(0, 0) + e(1, 1) + e(2, 2) + 1
	if trace >= 1 {
		s := hwy.Sqrt(trace)
		w := s / 2
		s = 0.5 / s
		return NewQuaternion(
			(e(2, 1)-e(1, 2))*s,
			(e(0, 2)-e(2, 0))*s,
			(e(1, 0)-e(0, 1))*s,
			w,
		)
	}

	i := 0
	if e(1, 1) > e(0, 0) {
		i = 1
	}
	if e(2, 2) > e(i, i) {
		i = 2
	}
	j := (i + 1) % 3
	k := (j + 1) % 3

	var v [4]T
	s := hwy.Sqrt(e(i, i) - (e(j, j) + e(k, k)) + 1)
	v[i] = s / 2
	s = 0.5 / s
	v[3] = (e(k, j) - e(j, k)) * s
	v[j] = (e(j, i) + e(i, j)) * s
	v[k] = (e(k, i) + e(i, k)) * s
	return Quaternion[T]{q: hwy.LoadArray(v)}
}

// QuaternionFromMatrix4x4 extracts the rotation of the upper-left 3x3 block
// of m, see QuaternionFromMatrix3x3.
func QuaternionFromMatrix4x4[T hwy.Floats](m Matrix4x4[T]) Quaternion[T] {
	return QuaternionFromMatrix3x3(m.Upper3x3())
}
