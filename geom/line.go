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

// Line is the segment from Begin to End.
type Line[T hwy.Floats, V Vector[T, V]] struct {
	Begin V
	End   V
}

// Line2 is a segment in the plane.
type Line2[T hwy.Floats] = Line[T, Vector2[T]]

// Line3 is a segment in space.
type Line3[T hwy.Floats] = Line[T, Vector3[T]]

// NewLine returns the segment from begin to end.
func NewLine[T hwy.Floats, V Vector[T, V]](begin, end V) Line[T, V] {
	return Line[T, V]{Begin: begin, End: end}
}

// Direction returns End.Direction(Begin), the unit vector from Begin to End.
func (l Line[T, V]) Direction() V {
	return l.End.Direction(l.Begin)
}

// Length returns the distance between the end points.
func (l Line[T, V]) Length() T {
	return l.End.Distance(l.Begin)
}

// LengthSq returns the squared distance between the end points.
func (l Line[T, V]) LengthSq() T {
	return l.End.Sub(l.Begin).LengthSq()
}

// Center returns the midpoint.
func (l Line[T, V]) Center() V {
	return l.Begin.Lerp(l.End, 0.5)
}

// PointAt returns Begin*(1-t) + End*t.
func (l Line[T, V]) PointAt(t T) V {
	return l.Begin.Lerp(l.End, t)
}

// ClosestPoint returns the point of the segment nearest to p.
func (l Line[T, V]) ClosestPoint(p V) V {
	d := l.End.Sub(l.Begin)
	ls := d.LengthSq()
	if ls == 0 {
		return l.Begin
	}
	t := hwy.Saturate(p.Sub(l.Begin).Dot(d) / ls)
	return l.Begin.Add(d.MulScalar(t))
}

// Ray returns the ray starting at Begin pointing toward End.
func (l Line[T, V]) Ray() Ray[T, V] {
	return Ray[T, V]{Position: l.Begin, Direction: l.Direction()}
}
