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

// The Load* helpers below each overwrite the whole matrix. They are
// constructors, not compositions: prior content is discarded.

// LoadScale sets m to a scaling by s.
func (m *Matrix4x4[T]) LoadScale(s Vector3[T]) {
	*m = Matrix4x4[T]{rows: [4]Vector4[T]{
		NewVector4(s.v[0], 0, 0, 0),
		NewVector4(0, s.v[1], 0, 0),
		NewVector4(0, 0, s.v[2], 0),
		Vector4UnitW[T](),
	}}
}

// LoadTranslate sets m to a translation by t.
func (m *Matrix4x4[T]) LoadTranslate(t Vector3[T]) {
	m.LoadIdentity()
	m.rows[3] = t.Extend(1)
}

// LoadRotateX sets m to a rotation of deg degrees about the X axis.
func (m *Matrix4x4[T]) LoadRotateX(deg T) {
	var r Matrix3x3[T]
	r.LoadRotateX(deg)
	*m = Matrix4x4FromMatrix3x3(r)
}

// LoadRotateY sets m to a rotation of deg degrees about the Y axis.
func (m *Matrix4x4[T]) LoadRotateY(deg T) {
	var r Matrix3x3[T]
	r.LoadRotateY(deg)
	*m = Matrix4x4FromMatrix3x3(r)
}

// LoadRotateZ sets m to a rotation of deg degrees about the Z axis.
func (m *Matrix4x4[T]) LoadRotateZ(deg T) {
	var r Matrix3x3[T]
	r.LoadRotateZ(deg)
	*m = Matrix4x4FromMatrix3x3(r)
}

// LoadRotateRollPitchYaw sets m to RotateZ(roll) * RotateX(pitch) * RotateY(yaw).
func (m *Matrix4x4[T]) LoadRotateRollPitchYaw(roll, pitch, yaw T) {
	var r Matrix3x3[T]
	r.LoadRotateRollPitchYaw(roll, pitch, yaw)
	*m = Matrix4x4FromMatrix3x3(r)
}

// LoadRotateAxis sets m to a rotation of deg degrees about the unit vector axis.
func (m *Matrix4x4[T]) LoadRotateAxis(axis Vector3[T], deg T) {
	m.LoadRotateQuaternion(QuaternionFromAxis(axis, deg))
}

// LoadRotateQuaternion sets m to the rotation described by q, so that
// m.TransformNormal(v) equals q.Rotate(v).
func (m *Matrix4x4[T]) LoadRotateQuaternion(q Quaternion[T]) {
	*m = Matrix4x4FromQuaternion(q)
}

// LoadWorld sets m to Scale(scale) * Rotate(rotation) * Translate(translation).
func (m *Matrix4x4[T]) LoadWorld(scale Vector3[T], rotation Quaternion[T], translation Vector3[T]) {
	r := Matrix3x3FromQuaternion(rotation)
	*m = Matrix4x4[T]{rows: [4]Vector4[T]{
		r.rows[0].MulScalar(scale.v[0]).Extend(0),
		r.rows[1].MulScalar(scale.v[1]).Extend(0),
		r.rows[2].MulScalar(scale.v[2]).Extend(0),
		translation.Extend(1),
	}}
}

// LoadPerspectiveFieldOfView sets m to a right-handed perspective projection
// with a vertical field of view of fovY degrees. View space looks down -Z
// and clip depth spans [-w, w].
func (m *Matrix4x4[T]) LoadPerspectiveFieldOfView(fovY, aspect, near, far T) {
	hwy.Assert(aspect != 0 && near != far, "LoadPerspectiveFieldOfView: aspect %v near %v far %v", aspect, near, far)
	f := 1 / hwy.TanDeg(fovY/2)
	nf := 1 / (near - far)
	*m = Matrix4x4[T]{rows: [4]Vector4[T]{
		NewVector4(f/aspect, 0, 0, 0),
		NewVector4(0, f, 0, 0),
		NewVector4(0, 0, (far+near)*nf, -1),
		NewVector4(0, 0, 2*T(far*near)*nf, 0),
	}}
}

// LoadOrthographic sets m to a right-handed orthographic projection of a
// width x height view volume centered on the view axis.
func (m *Matrix4x4[T]) LoadOrthographic(width, height, near, far T) {
	hwy.Assert(width != 0 && height != 0 && near != far,
		"LoadOrthographic: width %v height %v near %v far %v", width, height, near, far)
	d := far - near
	*m = Matrix4x4[T]{rows: [4]Vector4[T]{
		NewVector4(2/width, 0, 0, 0),
		NewVector4(0, 2/height, 0, 0),
		NewVector4(0, 0, -2/d, 0),
		NewVector4(0, 0, -(far+near)/d, 1),
	}}
}

// LoadOrthographicOffCenter sets m to a right-handed orthographic projection
// of the box [left, right] x [bottom, top] x [-near, -far] in view space.
func (m *Matrix4x4[T]) LoadOrthographicOffCenter(left, right, bottom, top, near, far T) {
	hwy.Assert(left != right && bottom != top && near != far,
		"LoadOrthographicOffCenter: degenerate box")
	w, h, d := right-left, top-bottom, far-near
	*m = Matrix4x4[T]{rows: [4]Vector4[T]{
		NewVector4(2/w, 0, 0, 0),
		NewVector4(0, 2/h, 0, 0),
		NewVector4(0, 0, -2/d, 0),
		NewVector4(-(right+left)/w, -(top+bottom)/h, -(far+near)/d, 1),
	}}
}

// LoadOrthographic2D sets m to a screen-space projection with the origin at
// the top-left corner: (0, 0) maps to (-1, 1) and (width, height) to (1, -1).
// Z is negated and passed through.
func (m *Matrix4x4[T]) LoadOrthographic2D(width, height T) {
	hwy.Assert(width != 0 && height != 0, "LoadOrthographic2D: width %v height %v", width, height)
	*m = Matrix4x4[T]{rows: [4]Vector4[T]{
		NewVector4(2/width, 0, 0, 0),
		NewVector4(0, -2/height, 0, 0),
		NewVector4[T](0, 0, -1, 0),
		NewVector4[T](-1, 1, 0, 1),
	}}
}

// LoadLookTo sets m to a right-handed view matrix for a camera at eye facing
// dir. The camera looks down -Z in view space with up close to +Y.
func (m *Matrix4x4[T]) LoadLookTo(eye, dir, up Vector3[T]) {
	f := dir.Normalized()
	s := f.Cross(up).Normalized()
	u := s.Cross(f)
	*m = Matrix4x4[T]{rows: [4]Vector4[T]{
		NewVector4(s.v[0], u.v[0], -f.v[0], 0),
		NewVector4(s.v[1], u.v[1], -f.v[1], 0),
		NewVector4(s.v[2], u.v[2], -f.v[2], 0),
		NewVector4(-s.Dot(eye), -u.Dot(eye), f.Dot(eye), 1),
	}}
}

// LoadLookAt sets m to a right-handed view matrix for a camera at eye facing
// target.
func (m *Matrix4x4[T]) LoadLookAt(eye, target, up Vector3[T]) {
	m.LoadLookTo(eye, target.Direction(eye), up)
}
