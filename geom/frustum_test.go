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

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrustumFromIdentityClip(t *testing.T) {
	f := NewFrustum(Identity4x4[float64]())

	want := map[FrustumPlane]Plane[float64]{
		FrustumLeft:  NewPlane(NewVector3(1.0, 0, 0), 1),
		FrustumRight: NewPlane(NewVector3(-1.0, 0, 0), 1),
		FrustumUp:    NewPlane(NewVector3(0.0, -1, 0), 1),
		FrustumDown:  NewPlane(NewVector3(0.0, 1, 0), 1),
		FrustumNear:  NewPlane(NewVector3(0.0, 0, -1), 1),
		FrustumFar:   NewPlane(NewVector3(0.0, 0, 1), 1),
	}
	for i, p := range want {
		assert.True(t, f.Plane(i).Equal(p), "%s plane: got %v %v", i, f.Plane(i).Normal.Array(), f.Plane(i).D)
	}
	assert.Equal(t, f.Plane(FrustumFar), f.Planes()[FrustumFar])

	assert.True(t, f.IsInsidePoint(NewVector3(0.5, 0.5, 0.5)))
	assert.True(t, f.IsInsidePoint(NewVector3(1.0, 0, 0)), "points on a plane are inside")
	assert.False(t, f.IsInsidePoint(NewVector3(0.0, 0, 1.5)))
	assert.False(t, f.IsInsidePoint(NewVector3(-1.01, 0, 0)))
}

func TestFrustumLookAtContainment(t *testing.T) {
	eye := NewVector3(0.0, 0, 10)
	target := Vector3Zero[float64]()
	up := Vector3UnitY[float64]()
	f := NewFrustumLookAt(eye, target, up, 60, 1.5, 0.1, 100)

	for i, p := range f.Planes() {
		assert.InDelta(t, 1, p.Normal.Length(), 1e-12, "plane %s not normalized", FrustumPlane(i))
	}

	assert.True(t, f.IsInsidePoint(target), "look-at target")
	assert.True(t, f.IsInsidePoint(NewVector3(1.0, 1, 0)))
	assert.False(t, f.IsInsidePoint(NewVector3(0.0, 0, 11)), "behind the eye")
	assert.False(t, f.IsInsidePoint(NewVector3(0.0, 0, -200)), "beyond the far plane")
	assert.False(t, f.IsInsidePoint(NewVector3(100.0, 0, 0)), "outside the field of view")
	assert.False(t, f.IsInsidePoint(NewVector3(0.0, 10, 0)), "above the field of view")

	assert.True(t, f.IsInsideSphere(NewVector3(0.0, 0, -95), 10), "straddles the far plane")
	assert.False(t, f.IsInsideSphere(NewVector3(0.0, 0, 15), 1), "behind the eye")
	assert.True(t, f.IsInsideSphere(NewVector3(0.0, 0, 15), 6), "reaches past the near plane")
	assert.True(t, f.IsInsideSphere(target, 0))

	g := NewFrustumLookTo(eye, NewVector3(0.0, 0, -1), up, 60, 1.5, 0.1, 100)
	for i := range FrustumPlanes {
		assert.True(t, f.Plane(FrustumPlane(i)).NearWithin(g.Plane(FrustumPlane(i)), 1e-12))
	}
}

func TestFrustumIsInsidePoints(t *testing.T) {
	f := NewFrustum(Identity4x4[float64]())

	assert.False(t, f.IsInsidePoints(), "empty set")
	assert.True(t, f.IsInsidePoints(NewVector3(0.0, 0, 0)))
	assert.False(t, f.IsInsidePoints(NewVector3(2.0, 0, 0), NewVector3(3.0, 0, 0)))
	assert.False(t, f.IsInsidePoints(NewVector3(2.0, 2, 0), NewVector3(2.0, -2, 0)))
	assert.True(t, f.IsInsidePoints(NewVector3(2.0, 0, 0), NewVector3(-2.0, 0, 0)), "hull spans the volume")
	// Conservative: these points are behind different planes.
	assert.True(t, f.IsInsidePoints(NewVector3(2.0, 0, 0), NewVector3(0.0, 2, 0)))
}

func TestFrustumPlaneString(t *testing.T) {
	assert.Equal(t, "left", FrustumLeft.String())
	assert.Equal(t, "far", FrustumFar.String())
	assert.Equal(t, "unknown", FrustumPlane(6).String())
}

func TestPlane(t *testing.T) {
	p := PlaneFromPoints(Vector3Zero[float64](), Vector3UnitX[float64](), Vector3UnitY[float64]())
	assert.True(t, p.Normal.Equal(Vector3UnitZ[float64]()))
	assert.Equal(t, 5.0, p.DistanceTo(NewVector3(3.0, 3, 5)))
	assert.Equal(t, PlaneFront, p.Classify(NewVector3(0.0, 0, 1)))
	assert.Equal(t, PlaneBack, p.Classify(NewVector3(0.0, 0, -1)))
	assert.Equal(t, PlaneOn, p.Classify(NewVector3(1.0, 1, 0)))
	assert.Equal(t, PlaneOn, p.ClassifyWithin(NewVector3(1.0, 1, 0.01), 0.1))
	assert.Equal(t, 2.0, p.DotNormal(NewVector3(1.0, 1, 2)))

	q := PlaneFromPointNormal(NewVector3(0.0, 0, 2), Vector3UnitZ[float64]())
	assert.Equal(t, -2.0, q.D)
	assert.Equal(t, 3.0, q.DistanceTo(NewVector3(0.0, 0, 5)))

	n := NewPlane(NewVector3(0.0, 0, 2), 4).Normalized()
	assert.True(t, n.Equal(NewPlane(Vector3UnitZ[float64](), 2)))
	assert.True(t, q.Normalized().Equal(q), "unit normal is unchanged")

	z := NewPlane(Vector3Zero[float64](), 3)
	z.Normalize()
	assert.True(t, z.Equal(NewPlane(Vector3Zero[float64](), 3)))

	assert.Equal(t, "front", PlaneFront.String())
	assert.Equal(t, "back", PlaneBack.String())
	assert.Equal(t, "on", PlaneOn.String())
}

func TestRay(t *testing.T) {
	r := Ray3[float64]{Position: NewVector3(0.0, 0, 5), Direction: NewVector3(0.0, 0, -2)}
	assert.True(t, r.PointAt(1).Equal(NewVector3(0.0, 0, 3)))
	r.Normalize()
	assert.True(t, r.Direction.Equal(NewVector3(0.0, 0, -1)))

	ground := NewPlane(Vector3UnitZ[float64](), 0)
	dist, ok := IntersectPlane(r, ground)
	require.True(t, ok)
	assert.Equal(t, 5.0, dist)
	assert.True(t, r.PointAt(dist).Equal(Vector3Zero[float64]()))

	_, ok = IntersectPlane(NewRay[float64](NewVector3(0.0, 0, 5), Vector3UnitX[float64]()), ground)
	assert.False(t, ok, "parallel")
	_, ok = IntersectPlane(NewRay[float64](NewVector3(0.0, 0, -5), NewVector3(0.0, 0, -1)), ground)
	assert.False(t, ok, "plane behind the origin")

	x := NewRay[float64](Vector3Zero[float64](), Vector3UnitX[float64]())
	assert.True(t, x.ClosestPoint(NewVector3(3.0, 4, 0)).Equal(NewVector3(3.0, 0, 0)))
	assert.True(t, x.ClosestPoint(NewVector3(-3.0, 1, 0)).Equal(Vector3Zero[float64]()))

	r2 := NewRay[float32](NewVector2[float32](1, 1), NewVector2[float32](3, 4))
	r2.Normalize()
	assert.InDelta(t, 1, float64(r2.Direction.Length()), 1e-6)
	assert.InDelta(t, 1.6, float64(r2.PointAt(1).X()), 1e-6)
}

func TestLine(t *testing.T) {
	l := Line3[float64]{Begin: Vector3Zero[float64](), End: NewVector3(0.0, 3, 4)}
	assert.Equal(t, 5.0, l.Length())
	assert.Equal(t, 25.0, l.LengthSq())
	assert.True(t, l.Center().Equal(NewVector3(0.0, 1.5, 2)))
	requireVector3Near(t, NewVector3(0.0, 0.6, 0.8), l.Direction(), 1e-15)
	assert.True(t, l.PointAt(0).Equal(l.Begin))
	assert.True(t, l.PointAt(1).Equal(l.End))

	assert.True(t, l.ClosestPoint(NewVector3(0.0, 10, 10)).Equal(l.End))
	assert.True(t, l.ClosestPoint(NewVector3(0.0, -5, 0)).Equal(l.Begin))
	requireVector3Near(t, NewVector3(0.0, 1.08, 1.44), l.ClosestPoint(NewVector3(0.0, 3, 0)), 1e-15)

	ray := l.Ray()
	assert.True(t, ray.Position.Equal(l.Begin))
	assert.True(t, ray.Direction.Equal(l.Direction()))

	l2 := NewLine[float64](NewVector2(0.0, 0), NewVector2(2.0, 0))
	assert.True(t, l2.Center().Equal(NewVector2(1.0, 0)))
	assert.True(t, l2.Direction().Equal(Vector2UnitX[float64]()))

	degenerate := Line3[float64]{Begin: NewVector3(1.0, 1, 1), End: NewVector3(1.0, 1, 1)}
	assert.True(t, degenerate.ClosestPoint(Vector3Zero[float64]()).Equal(degenerate.Begin))
	assert.True(t, degenerate.Direction().Equal(Vector3Zero[float64]()))
}
