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

// Vector3 is a three component vector (X, Y, Z).
type Vector3[T hwy.Lanes] struct {
	v [3]T
}

// NewVector3 returns the vector (x, y, z).
func NewVector3[T hwy.Lanes](x, y, z T) Vector3[T] {
	return Vector3[T]{v: [3]T{x, y, z}}
}

// Vector3FromArray returns the vector whose components are a.
func Vector3FromArray[T hwy.Lanes](a [3]T) Vector3[T] {
	return Vector3[T]{v: a}
}

// Vector3Splat returns a vector with every component set to s.
func Vector3Splat[T hwy.Lanes](s T) Vector3[T] {
	return Vector3[T]{v: [3]T{s, s, s}}
}

// Vector3Zero returns (0, 0, 0).
func Vector3Zero[T hwy.Lanes]() Vector3[T] { return Vector3[T]{} }

// Vector3One returns (1, 1, 1).
func Vector3One[T hwy.Lanes]() Vector3[T] { return NewVector3[T](1, 1, 1) }

// Vector3UnitX returns (1, 0, 0).
func Vector3UnitX[T hwy.Lanes]() Vector3[T] { return NewVector3[T](1, 0, 0) }

// Vector3UnitY returns (0, 1, 0).
func Vector3UnitY[T hwy.Lanes]() Vector3[T] { return NewVector3[T](0, 1, 0) }

// Vector3UnitZ returns (0, 0, 1).
func Vector3UnitZ[T hwy.Lanes]() Vector3[T] { return NewVector3[T](0, 0, 1) }

// X returns the x component.
func (v Vector3[T]) X() T { return v.v[0] }

// Y returns the y component.
func (v Vector3[T]) Y() T { return v.v[1] }

// Z returns the z component.
func (v Vector3[T]) Z() T { return v.v[2] }

// SetX replaces the x component.
func (v *Vector3[T]) SetX(x T) { v.v[0] = x }

// SetY replaces the y component.
func (v *Vector3[T]) SetY(y T) { v.v[1] = y }

// SetZ replaces the z component.
func (v *Vector3[T]) SetZ(z T) { v.v[2] = z }

// At returns component i.
func (v Vector3[T]) At(i int) T {
	hwy.Assert(uint(i) < 3, "Vector3.At: index %d out of range", i)
	return v.v[i]
}

// Set replaces component i.
func (v *Vector3[T]) Set(i int, x T) {
	hwy.Assert(uint(i) < 3, "Vector3.Set: index %d out of range", i)
	v.v[i] = x
}

// Array returns the components in order.
func (v Vector3[T]) Array() [3]T { return v.v }

// XY returns (x, y).
func (v Vector3[T]) XY() Vector2[T] {
	return NewVector2(v.v[0], v.v[1])
}

// Extend returns (x, y, z, w).
func (v Vector3[T]) Extend(w T) Vector4[T] {
	return NewVector4(v.v[0], v.v[1], v.v[2], w)
}

// Add returns v + o.
func (v Vector3[T]) Add(o Vector3[T]) Vector3[T] {
	v.AddAssign(o)
	return v
}

// AddAssign sets v to v + o.
func (v *Vector3[T]) AddAssign(o Vector3[T]) {
	v.v[0] += o.v[0]
	v.v[1] += o.v[1]
	v.v[2] += o.v[2]
}

// AddTo writes v + o to out.
func (v Vector3[T]) AddTo(o Vector3[T], out *Vector3[T]) {
	*out = v.Add(o)
}

// AddScalar returns v + (s, s, s).
func (v Vector3[T]) AddScalar(s T) Vector3[T] {
	v.AddScalarAssign(s)
	return v
}

// AddScalarAssign adds s to every component.
func (v *Vector3[T]) AddScalarAssign(s T) {
	v.v[0] += s
	v.v[1] += s
	v.v[2] += s
}

// AddScalarTo writes v + (s, s, s) to out.
func (v Vector3[T]) AddScalarTo(s T, out *Vector3[T]) {
	*out = v.AddScalar(s)
}

// Sub returns v - o.
func (v Vector3[T]) Sub(o Vector3[T]) Vector3[T] {
	v.SubAssign(o)
	return v
}

// SubAssign sets v to v - o.
func (v *Vector3[T]) SubAssign(o Vector3[T]) {
	v.v[0] -= o.v[0]
	v.v[1] -= o.v[1]
	v.v[2] -= o.v[2]
}

// SubTo writes v - o to out.
func (v Vector3[T]) SubTo(o Vector3[T], out *Vector3[T]) {
	*out = v.Sub(o)
}

// SubScalar returns v - (s, s, s).
func (v Vector3[T]) SubScalar(s T) Vector3[T] {
	v.SubScalarAssign(s)
	return v
}

// SubScalarAssign subtracts s from every component.
func (v *Vector3[T]) SubScalarAssign(s T) {
	v.v[0] -= s
	v.v[1] -= s
	v.v[2] -= s
}

// SubScalarTo writes v - (s, s, s) to out.
func (v Vector3[T]) SubScalarTo(s T, out *Vector3[T]) {
	*out = v.SubScalar(s)
}

// Mul returns the component-wise product.
func (v Vector3[T]) Mul(o Vector3[T]) Vector3[T] {
	v.MulAssign(o)
	return v
}

// MulAssign multiplies v by o component-wise.
func (v *Vector3[T]) MulAssign(o Vector3[T]) {
	v.v[0] = T(v.v[0] * o.v[0])
	v.v[1] = T(v.v[1] * o.v[1])
	v.v[2] = T(v.v[2] * o.v[2])
}

// MulTo writes the component-wise product to out.
func (v Vector3[T]) MulTo(o Vector3[T], out *Vector3[T]) {
	*out = v.Mul(o)
}

// MulScalar returns v scaled by s.
func (v Vector3[T]) MulScalar(s T) Vector3[T] {
	v.MulScalarAssign(s)
	return v
}

// MulScalarAssign scales v by s.
func (v *Vector3[T]) MulScalarAssign(s T) {
	v.v[0] = T(v.v[0] * s)
	v.v[1] = T(v.v[1] * s)
	v.v[2] = T(v.v[2] * s)
}

// MulScalarTo writes v scaled by s to out.
func (v Vector3[T]) MulScalarTo(s T, out *Vector3[T]) {
	*out = v.MulScalar(s)
}

// Div returns the component-wise quotient.
func (v Vector3[T]) Div(o Vector3[T]) Vector3[T] {
	v.DivAssign(o)
	return v
}

// DivAssign divides v by o component-wise.
func (v *Vector3[T]) DivAssign(o Vector3[T]) {
	hwy.Assert(o.v[0] != 0 && o.v[1] != 0 && o.v[2] != 0, "Vector3.Div: zero divisor %v", o.v)
	v.v[0] /= o.v[0]
	v.v[1] /= o.v[1]
	v.v[2] /= o.v[2]
}

// DivTo writes the component-wise quotient to out.
func (v Vector3[T]) DivTo(o Vector3[T], out *Vector3[T]) {
	*out = v.Div(o)
}

// DivScalar returns v divided by s.
func (v Vector3[T]) DivScalar(s T) Vector3[T] {
	v.DivScalarAssign(s)
	return v
}

// DivScalarAssign divides every component by s.
func (v *Vector3[T]) DivScalarAssign(s T) {
	hwy.Assert(s != 0, "Vector3.DivScalar: zero divisor")
	v.v[0] /= s
	v.v[1] /= s
	v.v[2] /= s
}

// DivScalarTo writes v divided by s to out.
func (v Vector3[T]) DivScalarTo(s T, out *Vector3[T]) {
	*out = v.DivScalar(s)
}

// Rem returns the component-wise remainder, see hwy.Rem.
func (v Vector3[T]) Rem(o Vector3[T]) Vector3[T] {
	v.RemAssign(o)
	return v
}

// RemAssign sets v to the component-wise remainder of v and o.
func (v *Vector3[T]) RemAssign(o Vector3[T]) {
	hwy.Assert(o.v[0] != 0 && o.v[1] != 0 && o.v[2] != 0, "Vector3.Rem: zero divisor %v", o.v)
	v.v[0] = hwy.Rem(v.v[0], o.v[0])
	v.v[1] = hwy.Rem(v.v[1], o.v[1])
	v.v[2] = hwy.Rem(v.v[2], o.v[2])
}

// RemTo writes the component-wise remainder to out.
func (v Vector3[T]) RemTo(o Vector3[T], out *Vector3[T]) {
	*out = v.Rem(o)
}

// RemScalar returns the remainder of every component divided by s.
func (v Vector3[T]) RemScalar(s T) Vector3[T] {
	v.RemScalarAssign(s)
	return v
}

// RemScalarAssign replaces every component by its remainder modulo s.
func (v *Vector3[T]) RemScalarAssign(s T) {
	hwy.Assert(s != 0, "Vector3.RemScalar: zero divisor")
	v.v[0] = hwy.Rem(v.v[0], s)
	v.v[1] = hwy.Rem(v.v[1], s)
	v.v[2] = hwy.Rem(v.v[2], s)
}

// RemScalarTo writes v modulo s to out.
func (v Vector3[T]) RemScalarTo(s T, out *Vector3[T]) {
	*out = v.RemScalar(s)
}

// Neg returns -v.
func (v Vector3[T]) Neg() Vector3[T] {
	return Vector3[T]{v: [3]T{-v.v[0], -v.v[1], -v.v[2]}}
}

// Abs returns the component-wise absolute value.
func (v Vector3[T]) Abs() Vector3[T] {
	return Vector3[T]{v: [3]T{hwy.Abs(v.v[0]), hwy.Abs(v.v[1]), hwy.Abs(v.v[2])}}
}

// Min returns the component-wise minimum.
func (v Vector3[T]) Min(o Vector3[T]) Vector3[T] {
	return Vector3[T]{v: [3]T{
		hwy.Min(v.v[0], o.v[0]),
		hwy.Min(v.v[1], o.v[1]),
		hwy.Min(v.v[2], o.v[2]),
	}}
}

// Max returns the component-wise maximum.
func (v Vector3[T]) Max(o Vector3[T]) Vector3[T] {
	return Vector3[T]{v: [3]T{
		hwy.Max(v.v[0], o.v[0]),
		hwy.Max(v.v[1], o.v[1]),
		hwy.Max(v.v[2], o.v[2]),
	}}
}

// Dot returns the dot product, summed as (x + y) + z.
func (v Vector3[T]) Dot(o Vector3[T]) T {
	return T(v.v[0]*o.v[0]) + T(v.v[1]*o.v[1]) + T(v.v[2]*o.v[2])
}

// Cross returns the cross product v x o.
func (v Vector3[T]) Cross(o Vector3[T]) Vector3[T] {
	return Vector3[T]{v: [3]T{
		T(v.v[1]*o.v[2]) - T(v.v[2]*o.v[1]),
		T(v.v[2]*o.v[0]) - T(v.v[0]*o.v[2]),
		T(v.v[0]*o.v[1]) - T(v.v[1]*o.v[0]),
	}}
}

// LengthSq returns v.Dot(v).
func (v Vector3[T]) LengthSq() T {
	return v.Dot(v)
}

// Length returns the Euclidean length.
func (v Vector3[T]) Length() T {
	return hwy.Sqrt(v.LengthSq())
}

// Normalize scales v to unit length. A zero vector is left unchanged.
func (v *Vector3[T]) Normalize() {
	ls := v.LengthSq()
	if ls == 0 {
		return
	}
	v.MulScalarAssign(hwy.RSqrt(ls))
}

// Normalized returns a unit length copy of v, or v itself when it is zero.
func (v Vector3[T]) Normalized() Vector3[T] {
	v.Normalize()
	return v
}

// Direction returns the unit vector pointing from o to v, normalize(v - o).
func (v Vector3[T]) Direction(o Vector3[T]) Vector3[T] {
	return v.Sub(o).Normalized()
}

// Lerp returns v*(1-t) + to*t. t is not clamped.
func (v Vector3[T]) Lerp(to Vector3[T], t T) Vector3[T] {
	return Vector3[T]{v: [3]T{
		hwy.Lerp(v.v[0], to.v[0], t),
		hwy.Lerp(v.v[1], to.v[1], t),
		hwy.Lerp(v.v[2], to.v[2], t),
	}}
}

// Distance returns the length of v - o.
func (v Vector3[T]) Distance(o Vector3[T]) T {
	return v.Sub(o).Length()
}

// DistanceSq returns the squared length of v - o.
func (v Vector3[T]) DistanceSq(o Vector3[T]) T {
	return v.Sub(o).LengthSq()
}

// Projection returns the projection of v onto the direction of onto.
func (v Vector3[T]) Projection(onto Vector3[T]) Vector3[T] {
	d := onto.LengthSq()
	hwy.Assert(d != 0, "Vector3.Projection: zero length target")
	return onto.MulScalar(v.Dot(onto) / d)
}

// Saturate clamps every component to [0, 1].
func (v Vector3[T]) Saturate() Vector3[T] {
	return Vector3[T]{v: [3]T{hwy.Saturate(v.v[0]), hwy.Saturate(v.v[1]), hwy.Saturate(v.v[2])}}
}

// Swizzle2 returns (v[i], v[j]).
func (v Vector3[T]) Swizzle2(i, j int) Vector2[T] {
	hwy.Assert(uint(i) < 3 && uint(j) < 3, "Vector3.Swizzle2: indices (%d,%d) out of range", i, j)
	return NewVector2(v.v[i], v.v[j])
}

// Swizzle3 returns (v[i], v[j], v[k]).
func (v Vector3[T]) Swizzle3(i, j, k int) Vector3[T] {
	hwy.Assert(uint(i) < 3 && uint(j) < 3 && uint(k) < 3,
		"Vector3.Swizzle3: indices (%d,%d,%d) out of range", i, j, k)
	return Vector3[T]{v: [3]T{v.v[i], v.v[j], v.v[k]}}
}

// Swizzle4 returns (v[i], v[j], v[k], v[l]).
func (v Vector3[T]) Swizzle4(i, j, k, l int) Vector4[T] {
	hwy.Assert(uint(i) < 3 && uint(j) < 3 && uint(k) < 3 && uint(l) < 3,
		"Vector3.Swizzle4: indices (%d,%d,%d,%d) out of range", i, j, k, l)
	return NewVector4(v.v[i], v.v[j], v.v[k], v.v[l])
}

// Equal reports exact component-wise equality.
func (v Vector3[T]) Equal(o Vector3[T]) bool {
	return v.v == o.v
}

// Near reports whether every component differs by at most hwy.Epsilon[T].
func (v Vector3[T]) Near(o Vector3[T]) bool {
	return v.NearWithin(o, hwy.Epsilon[T]())
}

// NearWithin reports whether every component differs by at most eps.
func (v Vector3[T]) NearWithin(o Vector3[T], eps T) bool {
	return hwy.NearEqual(v.v[0], o.v[0], eps) &&
		hwy.NearEqual(v.v[1], o.v[1], eps) &&
		hwy.NearEqual(v.v[2], o.v[2], eps)
}
