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

// Vector4 is a four component vector (X, Y, Z, W). Its components live in an
// hwy.Vec4 and every arithmetic operation runs on the selected lane backend.
type Vector4[T hwy.Lanes] struct {
	v hwy.Vec4[T]
}

// NewVector4 returns the vector (x, y, z, w).
func NewVector4[T hwy.Lanes](x, y, z, w T) Vector4[T] {
	return Vector4[T]{v: hwy.Load4(x, y, z, w)}
}

// Vector4FromArray returns the vector whose components are a.
func Vector4FromArray[T hwy.Lanes](a [4]T) Vector4[T] {
	return Vector4[T]{v: hwy.LoadArray(a)}
}

// Vector4FromVec wraps lanes as a vector.
func Vector4FromVec[T hwy.Lanes](lanes hwy.Vec4[T]) Vector4[T] {
	return Vector4[T]{v: lanes}
}

// Vector4Splat returns a vector with every component set to s.
func Vector4Splat[T hwy.Lanes](s T) Vector4[T] {
	return Vector4[T]{v: hwy.Broadcast4(s)}
}

// Vector4Zero returns (0, 0, 0, 0).
func Vector4Zero[T hwy.Lanes]() Vector4[T] { return Vector4[T]{} }

// Vector4One returns (1, 1, 1, 1).
func Vector4One[T hwy.Lanes]() Vector4[T] { return Vector4Splat[T](1) }

// Vector4UnitX returns (1, 0, 0, 0).
func Vector4UnitX[T hwy.Lanes]() Vector4[T] { return NewVector4[T](1, 0, 0, 0) }

// Vector4UnitY returns (0, 1, 0, 0).
func Vector4UnitY[T hwy.Lanes]() Vector4[T] { return NewVector4[T](0, 1, 0, 0) }

// Vector4UnitZ returns (0, 0, 1, 0).
func Vector4UnitZ[T hwy.Lanes]() Vector4[T] { return NewVector4[T](0, 0, 1, 0) }

// Vector4UnitW returns (0, 0, 0, 1).
func Vector4UnitW[T hwy.Lanes]() Vector4[T] { return NewVector4[T](0, 0, 0, 1) }

// X returns the x component.
func (v Vector4[T]) X() T { return v.v.Get(0) }

// Y returns the y component.
func (v Vector4[T]) Y() T { return v.v.Get(1) }

// Z returns the z component.
func (v Vector4[T]) Z() T { return v.v.Get(2) }

// W returns the w component.
func (v Vector4[T]) W() T { return v.v.Get(3) }

// SetX replaces the x component.
func (v *Vector4[T]) SetX(x T) { v.v = v.v.With(0, x) }

// SetY replaces the y component.
func (v *Vector4[T]) SetY(y T) { v.v = v.v.With(1, y) }

// SetZ replaces the z component.
func (v *Vector4[T]) SetZ(z T) { v.v = v.v.With(2, z) }

// SetW replaces the w component.
func (v *Vector4[T]) SetW(w T) { v.v = v.v.With(3, w) }

// At returns component i.
func (v Vector4[T]) At(i int) T {
	return v.v.Get(i)
}

// Set replaces component i.
func (v *Vector4[T]) Set(i int, x T) {
	v.v = v.v.With(i, x)
}

// Array returns the components in order.
func (v Vector4[T]) Array() [4]T { return v.v.Array() }

// Vec returns the lanes backing v.
func (v Vector4[T]) Vec() hwy.Vec4[T] { return v.v }

// XY returns (x, y).
func (v Vector4[T]) XY() Vector2[T] {
	a := v.v.Array()
	return NewVector2(a[0], a[1])
}

// XYZ returns (x, y, z).
func (v Vector4[T]) XYZ() Vector3[T] {
	a := v.v.Array()
	return NewVector3(a[0], a[1], a[2])
}

// Add returns v + o.
func (v Vector4[T]) Add(o Vector4[T]) Vector4[T] {
	return Vector4[T]{v: v.v.Add(o.v)}
}

// AddAssign sets v to v + o.
func (v *Vector4[T]) AddAssign(o Vector4[T]) {
	v.v = v.v.Add(o.v)
}

// AddTo writes v + o to out.
func (v Vector4[T]) AddTo(o Vector4[T], out *Vector4[T]) {
	out.v = v.v.Add(o.v)
}

// AddScalar returns v + (s, s, s, s).
func (v Vector4[T]) AddScalar(s T) Vector4[T] {
	return Vector4[T]{v: v.v.Add(hwy.Broadcast4(s))}
}

// AddScalarAssign adds s to every component.
func (v *Vector4[T]) AddScalarAssign(s T) {
	v.v = v.v.Add(hwy.Broadcast4(s))
}

// AddScalarTo writes v + (s, s, s, s) to out.
func (v Vector4[T]) AddScalarTo(s T, out *Vector4[T]) {
	out.v = v.v.Add(hwy.Broadcast4(s))
}

// Sub returns v - o.
func (v Vector4[T]) Sub(o Vector4[T]) Vector4[T] {
	return Vector4[T]{v: v.v.Sub(o.v)}
}

// SubAssign sets v to v - o.
func (v *Vector4[T]) SubAssign(o Vector4[T]) {
	v.v = v.v.Sub(o.v)
}

// SubTo writes v - o to out.
func (v Vector4[T]) SubTo(o Vector4[T], out *Vector4[T]) {
	out.v = v.v.Sub(o.v)
}

// SubScalar returns v - (s, s, s, s).
func (v Vector4[T]) SubScalar(s T) Vector4[T] {
	return Vector4[T]{v: v.v.Sub(hwy.Broadcast4(s))}
}

// SubScalarAssign subtracts s from every component.
func (v *Vector4[T]) SubScalarAssign(s T) {
	v.v = v.v.Sub(hwy.Broadcast4(s))
}

// SubScalarTo writes v - (s, s, s, s) to out.
func (v Vector4[T]) SubScalarTo(s T, out *Vector4[T]) {
	out.v = v.v.Sub(hwy.Broadcast4(s))
}

// Mul returns the component-wise product.
func (v Vector4[T]) Mul(o Vector4[T]) Vector4[T] {
	return Vector4[T]{v: v.v.Mul(o.v)}
}

// MulAssign multiplies v by o component-wise.
func (v *Vector4[T]) MulAssign(o Vector4[T]) {
	v.v = v.v.Mul(o.v)
}

// MulTo writes the component-wise product to out.
func (v Vector4[T]) MulTo(o Vector4[T], out *Vector4[T]) {
	out.v = v.v.Mul(o.v)
}

// MulScalar returns v scaled by s.
func (v Vector4[T]) MulScalar(s T) Vector4[T] {
	return Vector4[T]{v: v.v.Scale(s)}
}

// MulScalarAssign scales v by s.
func (v *Vector4[T]) MulScalarAssign(s T) {
	v.v = v.v.Scale(s)
}

// MulScalarTo writes v scaled by s to out.
func (v Vector4[T]) MulScalarTo(s T, out *Vector4[T]) {
	out.v = v.v.Scale(s)
}

// Div returns the component-wise quotient.
func (v Vector4[T]) Div(o Vector4[T]) Vector4[T] {
	return Vector4[T]{v: v.v.Div(o.v)}
}

// DivAssign divides v by o component-wise.
func (v *Vector4[T]) DivAssign(o Vector4[T]) {
	v.v = v.v.Div(o.v)
}

// DivTo writes the component-wise quotient to out.
func (v Vector4[T]) DivTo(o Vector4[T], out *Vector4[T]) {
	out.v = v.v.Div(o.v)
}

// DivScalar returns v divided by s.
func (v Vector4[T]) DivScalar(s T) Vector4[T] {
	return Vector4[T]{v: v.v.Div(hwy.Broadcast4(s))}
}

// DivScalarAssign divides every component by s.
func (v *Vector4[T]) DivScalarAssign(s T) {
	v.v = v.v.Div(hwy.Broadcast4(s))
}

// DivScalarTo writes v divided by s to out.
func (v Vector4[T]) DivScalarTo(s T, out *Vector4[T]) {
	out.v = v.v.Div(hwy.Broadcast4(s))
}

// Rem returns the component-wise remainder, see hwy.Rem.
func (v Vector4[T]) Rem(o Vector4[T]) Vector4[T] {
	hwy.Assert(o.v.Equal(hwy.Zero4[T]()).AllFalse(), "Vector4.Rem: zero divisor %v", o.v.Array())
	return Vector4[T]{v: v.v.Rem(o.v)}
}

// RemAssign sets v to the component-wise remainder of v and o.
func (v *Vector4[T]) RemAssign(o Vector4[T]) {
	*v = v.Rem(o)
}

// RemTo writes the component-wise remainder to out.
func (v Vector4[T]) RemTo(o Vector4[T], out *Vector4[T]) {
	*out = v.Rem(o)
}

// RemScalar returns the remainder of every component divided by s.
func (v Vector4[T]) RemScalar(s T) Vector4[T] {
	return v.Rem(Vector4Splat(s))
}

// RemScalarAssign replaces every component by its remainder modulo s.
func (v *Vector4[T]) RemScalarAssign(s T) {
	*v = v.Rem(Vector4Splat(s))
}

// RemScalarTo writes v modulo s to out.
func (v Vector4[T]) RemScalarTo(s T, out *Vector4[T]) {
	*out = v.Rem(Vector4Splat(s))
}

// Neg returns -v.
func (v Vector4[T]) Neg() Vector4[T] {
	return Vector4[T]{v: v.v.Neg()}
}

// Abs returns the component-wise absolute value.
func (v Vector4[T]) Abs() Vector4[T] {
	return Vector4[T]{v: v.v.Abs()}
}

// Min returns the component-wise minimum.
func (v Vector4[T]) Min(o Vector4[T]) Vector4[T] {
	return Vector4[T]{v: v.v.Min(o.v)}
}

// Max returns the component-wise maximum.
func (v Vector4[T]) Max(o Vector4[T]) Vector4[T] {
	return Vector4[T]{v: v.v.Max(o.v)}
}

// Dot returns the four component dot product.
func (v Vector4[T]) Dot(o Vector4[T]) T {
	return v.v.Dot(o.v)
}

// Cross returns the 3D cross product of the XYZ parts. W is ignored and the
// result has W = 0.
func (v Vector4[T]) Cross(o Vector4[T]) Vector4[T] {
	return Vector4[T]{v: v.v.Cross3(o.v)}
}

// LengthSq returns v.Dot(v).
func (v Vector4[T]) LengthSq() T {
	return v.v.LengthSq()
}

// Length returns the Euclidean length.
func (v Vector4[T]) Length() T {
	return hwy.Sqrt(v.LengthSq())
}

// Normalize scales v to unit length. A zero vector is left unchanged.
func (v *Vector4[T]) Normalize() {
	ls := v.LengthSq()
	if ls == 0 {
		return
	}
	v.v = v.v.Scale(hwy.RSqrt(ls))
}

// Normalized returns a unit length copy of v, or v itself when it is zero.
func (v Vector4[T]) Normalized() Vector4[T] {
	v.Normalize()
	return v
}

// Direction returns the unit vector pointing from o to v, normalize(v - o).
func (v Vector4[T]) Direction(o Vector4[T]) Vector4[T] {
	return v.Sub(o).Normalized()
}

// Lerp returns v*(1-t) + to*t. t is not clamped.
func (v Vector4[T]) Lerp(to Vector4[T], t T) Vector4[T] {
	return Vector4[T]{v: v.v.Lerp(to.v, t)}
}

// Distance returns the length of v - o.
func (v Vector4[T]) Distance(o Vector4[T]) T {
	return v.Sub(o).Length()
}

// DistanceSq returns the squared length of v - o.
func (v Vector4[T]) DistanceSq(o Vector4[T]) T {
	return v.Sub(o).LengthSq()
}

// Projection returns the projection of v onto the direction of onto.
func (v Vector4[T]) Projection(onto Vector4[T]) Vector4[T] {
	d := onto.LengthSq()
	hwy.Assert(d != 0, "Vector4.Projection: zero length target")
	return onto.MulScalar(v.Dot(onto) / d)
}

// Saturate clamps every component to [0, 1] with hwy.Saturate, matching
// Vector2 and Vector3: NaN and -0 pass through unchanged.
func (v Vector4[T]) Saturate() Vector4[T] {
	a := v.v.Array()
	return NewVector4(hwy.Saturate(a[0]), hwy.Saturate(a[1]), hwy.Saturate(a[2]), hwy.Saturate(a[3]))
}

// Swizzle2 returns (v[i], v[j]).
func (v Vector4[T]) Swizzle2(i, j int) Vector2[T] {
	return NewVector2(v.v.Get(i), v.v.Get(j))
}

// Swizzle3 returns (v[i], v[j], v[k]).
func (v Vector4[T]) Swizzle3(i, j, k int) Vector3[T] {
	return NewVector3(v.v.Get(i), v.v.Get(j), v.v.Get(k))
}

// Swizzle4 returns (v[i], v[j], v[k], v[l]).
func (v Vector4[T]) Swizzle4(i, j, k, l int) Vector4[T] {
	return Vector4[T]{v: v.v.Permute(i, j, k, l)}
}

// Equal reports exact component-wise equality.
func (v Vector4[T]) Equal(o Vector4[T]) bool {
	return v.v.Equal(o.v).AllTrue()
}

// Near reports whether every component differs by at most hwy.Epsilon[T].
func (v Vector4[T]) Near(o Vector4[T]) bool {
	return v.NearWithin(o, hwy.Epsilon[T]())
}

// NearWithin reports whether every component differs by at most eps.
func (v Vector4[T]) NearWithin(o Vector4[T], eps T) bool {
	return v.v.Sub(o.v).Abs().LessEqual(hwy.Broadcast4(eps)).AllTrue()
}
