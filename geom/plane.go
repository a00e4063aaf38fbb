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

// PlaneSide classifies a point against a plane.
type PlaneSide int

const (
	// PlaneOn means the point lies on the plane within the tolerance.
	PlaneOn PlaneSide = iota
	// PlaneFront means the point is on the side the normal points to.
	PlaneFront
	// PlaneBack means the point is behind the plane.
	PlaneBack
)

func (s PlaneSide) String() string {
	switch s {
	case PlaneOn:
		return "on"
	case PlaneFront:
		return "front"
	case PlaneBack:
		return "back"
	default:
		return "unknown"
	}
}

// Plane is the set of points p with Normal.Dot(p) + D == 0.
type Plane[T hwy.Floats] struct {
	Normal Vector3[T]
	D      T
}

// NewPlane returns the plane normal.Dot(p) + d == 0.
func NewPlane[T hwy.Floats](normal Vector3[T], d T) Plane[T] {
	return Plane[T]{Normal: normal, D: d}
}

// PlaneFromPointNormal returns the plane through p with the given normal.
func PlaneFromPointNormal[T hwy.Floats](p, normal Vector3[T]) Plane[T] {
	return Plane[T]{Normal: normal, D: -normal.Dot(p)}
}

// PlaneFromPoints returns the plane through a, b and c. The normal is
// (b-a) x (c-a), normalized; collinear points give a zero normal.
func PlaneFromPoints[T hwy.Floats](a, b, c Vector3[T]) Plane[T] {
	n := b.Sub(a).Cross(c.Sub(a)).Normalized()
	return PlaneFromPointNormal(a, n)
}

// DistanceTo returns Normal.Dot(p) + D, the signed distance of p when the
// normal is unit length.
func (p Plane[T]) DistanceTo(pt Vector3[T]) T {
	return p.Normal.Dot(pt) + p.D
}

// DotNormal returns Normal.Dot(v).
func (p Plane[T]) DotNormal(v Vector3[T]) T {
	return p.Normal.Dot(v)
}

// Normalize divides the normal and D by the normal's length. A plane with a
// zero normal is left unchanged.
func (p *Plane[T]) Normalize() {
	ls := p.Normal.LengthSq()
	if ls == 0 {
		return
	}
	inv := hwy.RSqrt(ls)
	p.Normal.MulScalarAssign(inv)
	p.D = T(p.D * inv)
}

// Normalized returns a normalized copy of p.
func (p Plane[T]) Normalized() Plane[T] {
	p.Normalize()
	return p
}

// Classify reports on which side of the plane pt lies, treating distances
// within Epsilon as on the plane.
func (p Plane[T]) Classify(pt Vector3[T]) PlaneSide {
	return p.ClassifyWithin(pt, hwy.Epsilon[T]())
}

// ClassifyWithin is like Classify with an explicit tolerance.
func (p Plane[T]) ClassifyWithin(pt Vector3[T], eps T) PlaneSide {
	d := p.DistanceTo(pt)
	switch {
	case d > eps:
		return PlaneFront
	case d < -eps:
		return PlaneBack
	}
	return PlaneOn
}

// Equal reports exact equality.
func (p Plane[T]) Equal(o Plane[T]) bool {
	return p.Normal.Equal(o.Normal) && p.D == o.D
}

// NearWithin reports equality of normal and D within eps.
func (p Plane[T]) NearWithin(o Plane[T], eps T) bool {
	return p.Normal.NearWithin(o.Normal, eps) && hwy.NearEqual(p.D, o.D, eps)
}
