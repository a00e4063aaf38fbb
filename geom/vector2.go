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

// Vector2 is a two component vector (X, Y).
type Vector2[T hwy.Lanes] struct {
	v [2]T
}

// NewVector2 returns the vector (x, y).
func NewVector2[T hwy.Lanes](x, y T) Vector2[T] {
	return Vector2[T]{v: [2]T{x, y}}
}

// Vector2FromArray returns the vector whose components are a.
func Vector2FromArray[T hwy.Lanes](a [2]T) Vector2[T] {
	return Vector2[T]{v: a}
}

// Vector2Splat returns a vector with both components set to s.
func Vector2Splat[T hwy.Lanes](s T) Vector2[T] {
	return Vector2[T]{v: [2]T{s, s}}
}

// Vector2Zero returns (0, 0).
func Vector2Zero[T hwy.Lanes]() Vector2[T] { return Vector2[T]{} }

// Vector2One returns (1, 1).
func Vector2One[T hwy.Lanes]() Vector2[T] { return NewVector2[T](1, 1) }

// Vector2UnitX returns (1, 0).
func Vector2UnitX[T hwy.Lanes]() Vector2[T] { return NewVector2[T](1, 0) }

// Vector2UnitY returns (0, 1).
func Vector2UnitY[T hwy.Lanes]() Vector2[T] { return NewVector2[T](0, 1) }

// X returns the x component.
func (v Vector2[T]) X() T { return v.v[0] }

// Y returns the y component.
func (v Vector2[T]) Y() T { return v.v[1] }

// SetX replaces the x component.
func (v *Vector2[T]) SetX(x T) { v.v[0] = x }

// SetY replaces the y component.
func (v *Vector2[T]) SetY(y T) { v.v[1] = y }

// At returns component i.
func (v Vector2[T]) At(i int) T {
	hwy.Assert(uint(i) < 2, "Vector2.At: index %d out of range", i)
	return v.v[i]
}

// Set replaces component i.
func (v *Vector2[T]) Set(i int, x T) {
	hwy.Assert(uint(i) < 2, "Vector2.Set: index %d out of range", i)
	v.v[i] = x
}

// Array returns the components in order.
func (v Vector2[T]) Array() [2]T { return v.v }

// Extend returns (x, y, z).
func (v Vector2[T]) Extend(z T) Vector3[T] {
	return NewVector3(v.v[0], v.v[1], z)
}

// Add returns v + o.
func (v Vector2[T]) Add(o Vector2[T]) Vector2[T] {
	v.AddAssign(o)
	return v
}

// AddAssign sets v to v + o.
func (v *Vector2[T]) AddAssign(o Vector2[T]) {
	v.v[0] += o.v[0]
	v.v[1] += o.v[1]
}

// AddTo writes v + o to out.
func (v Vector2[T]) AddTo(o Vector2[T], out *Vector2[T]) {
	*out = v.Add(o)
}

// AddScalar returns v + (s, s).
func (v Vector2[T]) AddScalar(s T) Vector2[T] {
	v.AddScalarAssign(s)
	return v
}

// AddScalarAssign adds s to every component.
func (v *Vector2[T]) AddScalarAssign(s T) {
	v.v[0] += s
	v.v[1] += s
}

// AddScalarTo writes v + (s, s) to out.
func (v Vector2[T]) AddScalarTo(s T, out *Vector2[T]) {
	*out = v.AddScalar(s)
}

// Sub returns v - o.
func (v Vector2[T]) Sub(o Vector2[T]) Vector2[T] {
	v.SubAssign(o)
	return v
}

// SubAssign sets v to v - o.
func (v *Vector2[T]) SubAssign(o Vector2[T]) {
	v.v[0] -= o.v[0]
	v.v[1] -= o.v[1]
}

// SubTo writes v - o to out.
func (v Vector2[T]) SubTo(o Vector2[T], out *Vector2[T]) {
	*out = v.Sub(o)
}

// SubScalar returns v - (s, s).
func (v Vector2[T]) SubScalar(s T) Vector2[T] {
	v.SubScalarAssign(s)
	return v
}

// SubScalarAssign subtracts s from every component.
func (v *Vector2[T]) SubScalarAssign(s T) {
	v.v[0] -= s
	v.v[1] -= s
}

// SubScalarTo writes v - (s, s) to out.
func (v Vector2[T]) SubScalarTo(s T, out *Vector2[T]) {
	*out = v.SubScalar(s)
}

// Mul returns the component-wise product.
func (v Vector2[T]) Mul(o Vector2[T]) Vector2[T] {
	v.MulAssign(o)
	return v
}

// MulAssign multiplies v by o component-wise.
func (v *Vector2[T]) MulAssign(o Vector2[T]) {
	v.v[0] = T(v.v[0] * o.v[0])
	v.v[1] = T(v.v[1] * o.v[1])
}

// MulTo writes the component-wise product to out.
func (v Vector2[T]) MulTo(o Vector2[T], out *Vector2[T]) {
	*out = v.Mul(o)
}

// MulScalar returns v scaled by s.
func (v Vector2[T]) MulScalar(s T) Vector2[T] {
	v.MulScalarAssign(s)
	return v
}

// MulScalarAssign scales v by s.
func (v *Vector2[T]) MulScalarAssign(s T) {
	v.v[0] = T(v.v[0] * s)
	v.v[1] = T(v.v[1] * s)
}

// MulScalarTo writes v scaled by s to out.
func (v Vector2[T]) MulScalarTo(s T, out *Vector2[T]) {
	*out = v.MulScalar(s)
}

// Div returns the component-wise quotient.
func (v Vector2[T]) Div(o Vector2[T]) Vector2[T] {
	v.DivAssign(o)
	return v
}

// DivAssign divides v by o component-wise.
func (v *Vector2[T]) DivAssign(o Vector2[T]) {
	hwy.Assert(o.v[0] != 0 && o.v[1] != 0, "Vector2.Div: zero divisor %v", o.v)
	v.v[0] /= o.v[0]
	v.v[1] /= o.v[1]
}

// DivTo writes the component-wise quotient to out.
func (v Vector2[T]) DivTo(o Vector2[T], out *Vector2[T]) {
	*out = v.Div(o)
}

// DivScalar returns v divided by s.
func (v Vector2[T]) DivScalar(s T) Vector2[T] {
	v.DivScalarAssign(s)
	return v
}

// DivScalarAssign divides every component by s.
func (v *Vector2[T]) DivScalarAssign(s T) {
	hwy.Assert(s != 0, "Vector2.DivScalar: zero divisor")
	v.v[0] /= s
	v.v[1] /= s
}

// DivScalarTo writes v divided by s to out.
func (v Vector2[T]) DivScalarTo(s T, out *Vector2[T]) {
	*out = v.DivScalar(s)
}

// Rem returns the component-wise remainder, see hwy.Rem.
func (v Vector2[T]) Rem(o Vector2[T]) Vector2[T] {
	v.RemAssign(o)
	return v
}

// RemAssign sets v to the component-wise remainder of v and o.
func (v *Vector2[T]) RemAssign(o Vector2[T]) {
	hwy.Assert(o.v[0] != 0 && o.v[1] != 0, "Vector2.Rem: zero divisor %v", o.v)
	v.v[0] = hwy.Rem(v.v[0], o.v[0])
	v.v[1] = hwy.Rem(v.v[1], o.v[1])
}

// RemTo writes the component-wise remainder to out.
func (v Vector2[T]) RemTo(o Vector2[T], out *Vector2[T]) {
	*out = v.Rem(o)
}

// RemScalar returns the remainder of every component divided by s.
func (v Vector2[T]) RemScalar(s T) Vector2[T] {
	v.RemScalarAssign(s)
	return v
}

// RemScalarAssign replaces every component by its remainder modulo s.
func (v *Vector2[T]) RemScalarAssign(s T) {
	hwy.Assert(s != 0, "Vector2.RemScalar: zero divisor")
	v.v[0] = hwy.Rem(v.v[0], s)
	v.v[1] = hwy.Rem(v.v[1], s)
}

// RemScalarTo writes v modulo s to out.
func (v Vector2[T]) RemScalarTo(s T, out *Vector2[T]) {
	*out = v.RemScalar(s)
}

// Neg returns -v.
func (v Vector2[T]) Neg() Vector2[T] {
	return Vector2[T]{v: [2]T{-v.v[0], -v.v[1]}}
}

// Abs returns the component-wise absolute value.
func (v Vector2[T]) Abs() Vector2[T] {
	return Vector2[T]{v: [2]T{hwy.Abs(v.v[0]), hwy.Abs(v.v[1])}}
}

// Min returns the component-wise minimum.
func (v Vector2[T]) Min(o Vector2[T]) Vector2[T] {
	return Vector2[T]{v: [2]T{hwy.Min(v.v[0], o.v[0]), hwy.Min(v.v[1], o.v[1])}}
}

// Max returns the component-wise maximum.
func (v Vector2[T]) Max(o Vector2[T]) Vector2[T] {
	return Vector2[T]{v: [2]T{hwy.Max(v.v[0], o.v[0]), hwy.Max(v.v[1], o.v[1])}}
}

// Dot returns the dot product.
func (v Vector2[T]) Dot(o Vector2[T]) T {
	return T(v.v[0]*o.v[0]) + T(v.v[1]*o.v[1])
}

// Cross returns the 2D cross product x1*y2 - y1*x2, the signed area of the
// parallelogram spanned by v and o.
func (v Vector2[T]) Cross(o Vector2[T]) T {
	return T(v.v[0]*o.v[1]) - T(v.v[1]*o.v[0])
}

// LengthSq returns v.Dot(v).
func (v Vector2[T]) LengthSq() T {
	return v.Dot(v)
}

// Length returns the Euclidean length.
func (v Vector2[T]) Length() T {
	return hwy.Sqrt(v.LengthSq())
}

// Normalize scales v to unit length. A zero vector is left unchanged.
func (v *Vector2[T]) Normalize() {
	ls := v.LengthSq()
	if ls == 0 {
		return
	}
	v.MulScalarAssign(hwy.RSqrt(ls))
}

// Normalized returns a unit length copy of v, or v itself when it is zero.
func (v Vector2[T]) Normalized() Vector2[T] {
	v.Normalize()
	return v
}

// Direction returns the unit vector pointing from o to v, normalize(v - o).
func (v Vector2[T]) Direction(o Vector2[T]) Vector2[T] {
	return v.Sub(o).Normalized()
}

// Lerp returns v*(1-t) + to*t. t is not clamped.
func (v Vector2[T]) Lerp(to Vector2[T], t T) Vector2[T] {
	return Vector2[T]{v: [2]T{
		hwy.Lerp(v.v[0], to.v[0], t),
		hwy.Lerp(v.v[1], to.v[1], t),
	}}
}

// Distance returns the length of v - o.
func (v Vector2[T]) Distance(o Vector2[T]) T {
	return v.Sub(o).Length()
}

// DistanceSq returns the squared length of v - o.
func (v Vector2[T]) DistanceSq(o Vector2[T]) T {
	return v.Sub(o).LengthSq()
}

// Projection returns the projection of v onto the direction of onto.
func (v Vector2[T]) Projection(onto Vector2[T]) Vector2[T] {
	d := onto.LengthSq()
	hwy.Assert(d != 0, "Vector2.Projection: zero length target")
	return onto.MulScalar(v.Dot(onto) / d)
}

// Saturate clamps every component to [0, 1].
func (v Vector2[T]) Saturate() Vector2[T] {
	return Vector2[T]{v: [2]T{hwy.Saturate(v.v[0]), hwy.Saturate(v.v[1])}}
}

// Swizzle2 returns (v[i], v[j]).
func (v Vector2[T]) Swizzle2(i, j int) Vector2[T] {
	hwy.Assert(uint(i) < 2 && uint(j) < 2, "Vector2.Swizzle2: indices (%d,%d) out of range", i, j)
	return Vector2[T]{v: [2]T{v.v[i], v.v[j]}}
}

// Swizzle3 returns (v[i], v[j], v[k]).
func (v Vector2[T]) Swizzle3(i, j, k int) Vector3[T] {
	hwy.Assert(uint(i) < 2 && uint(j) < 2 && uint(k) < 2,
		"Vector2.Swizzle3: indices (%d,%d,%d) out of range", i, j, k)
	return NewVector3(v.v[i], v.v[j], v.v[k])
}

// Swizzle4 returns (v[i], v[j], v[k], v[l]).
func (v Vector2[T]) Swizzle4(i, j, k, l int) Vector4[T] {
	hwy.Assert(uint(i) < 2 && uint(j) < 2 && uint(k) < 2 && uint(l) < 2,
		"Vector2.Swizzle4: indices (%d,%d,%d,%d) out of range", i, j, k, l)
	return NewVector4(v.v[i], v.v[j], v.v[k], v.v[l])
}

// Equal reports exact component-wise equality.
func (v Vector2[T]) Equal(o Vector2[T]) bool {
	return v.v == o.v
}

// Near reports whether every component differs by at most hwy.Epsilon[T].
func (v Vector2[T]) Near(o Vector2[T]) bool {
	return v.NearWithin(o, hwy.Epsilon[T]())
}

// NearWithin reports whether every component differs by at most eps.
func (v Vector2[T]) NearWithin(o Vector2[T], eps T) bool {
	return hwy.NearEqual(v.v[0], o.v[0], eps) && hwy.NearEqual(v.v[1], o.v[1], eps)
}
