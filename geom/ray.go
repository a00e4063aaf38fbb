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

// Vector is the method set shared by Vector2[T] and Vector3[T] that rays and
// lines are built on. V is the implementing type itself.
type Vector[T hwy.Floats, V any] interface {
	Add(V) V
	Sub(V) V
	MulScalar(T) V
	Dot(V) T
	Length() T
	LengthSq() T
	Normalized() V
	Direction(V) V
	Lerp(V, T) V
	Distance(V) T
}

// Ray is a half line starting at Position and extending along Direction.
// Direction need not be unit length unless Normalize is called.
type Ray[T hwy.Floats, V Vector[T, V]] struct {
	Position  V
	Direction V
}

// Ray2 is a ray in the plane.
type Ray2[T hwy.Floats] = Ray[T, Vector2[T]]

// Ray3 is a ray in space.
type Ray3[T hwy.Floats] = Ray[T, Vector3[T]]

// NewRay returns the ray from position along direction.
func NewRay[T hwy.Floats, V Vector[T, V]](position, direction V) Ray[T, V] {
	return Ray[T, V]{Position: position, Direction: direction}
}

// Normalize scales the direction to unit length.
func (r *Ray[T, V]) Normalize() {
	r.Direction = r.Direction.Normalized()
}

// PointAt returns Position + Direction*t.
func (r Ray[T, V]) PointAt(t T) V {
	return r.Position.Add(r.Direction.MulScalar(t))
}

// ClosestPoint returns the point of the ray nearest to p. A ray with a zero
// direction returns its position.
func (r Ray[T, V]) ClosestPoint(p V) V {
	d := r.Direction.LengthSq()
	if d == 0 {
		return r.Position
	}
	t := p.Sub(r.Position).Dot(r.Direction) / d
	if t < 0 {
		t = 0
	}
	return r.PointAt(t)
}

// IntersectPlane returns the parameter t at which the ray crosses the plane.
// ok is false when the ray is parallel to the plane or the crossing lies
// behind the ray's origin.
func IntersectPlane[T hwy.Floats](r Ray3[T], p Plane[T]) (t T, ok bool) {
	denom := p.DotNormal(r.Direction)
	if hwy.Abs(denom) <= hwy.Epsilon[T]() {
		return 0, false
	}
	t = -p.DistanceTo(r.Position) / denom
	if t < 0 {
		return 0, false
	}
	return t, true
}
