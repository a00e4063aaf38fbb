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

// FrustumPlane indexes the six planes of a Frustum.
type FrustumPlane int

const (
	FrustumLeft FrustumPlane = iota
	FrustumRight
	FrustumUp
	FrustumDown
	FrustumNear
	FrustumFar

	// FrustumPlanes is the number of planes.
	FrustumPlanes = 6
)

var frustumPlaneNames = [FrustumPlanes]string{"left", "right", "up", "down", "near", "far"}

func (p FrustumPlane) String() string {
	if uint(p) < FrustumPlanes {
		return frustumPlaneNames[p]
	}
	return "unknown"
}

// Frustum is the view volume bounded by six planes whose normals point
// inside. It is always rebuilt as a whole from a clip matrix.
type Frustum[T hwy.Floats] struct {
	planes [FrustumPlanes]Plane[T]
}

// NewFrustum extracts the planes of the clip matrix (view * projection) with
// the Gribb-Hartmann method. Each plane adds or subtracts a column of clip
// from its W column and is then normalized.
//
// With the depth range [-w, w] of LoadPerspectiveFieldOfView, the plane
// stored as FrustumNear (W - Z) bounds the far end of the volume and
// FrustumFar (W + Z) the near end. Containment tests do not depend on the
// labels.
func NewFrustum[T hwy.Floats](clip Matrix4x4[T]) Frustum[T] {
	var f Frustum[T]
	r0, r1, r2, r3 := clip.rows[0].v, clip.rows[1].v, clip.rows[2].v, clip.rows[3].v

	// plane builds (v0.W op v0.c, v1.W op v1.c, v2.W op v2.c, v3.W op v3.c).
	plane := func(c int, sign T) Plane[T] {
		w := hwy.Load4(r0.Get(3), r1.Get(3), r2.Get(3), r3.Get(3))
		a := hwy.Load4(r0.Get(c), r1.Get(c), r2.Get(c), r3.Get(c)).Scale(sign)
		e := w.Add(a).Array()
		return Plane[T]{Normal: NewVector3(e[0], e[1], e[2]), D: e[3]}.Normalized()
	}
	f.planes[FrustumLeft] = plane(0, 1)
	f.planes[FrustumRight] = plane(0, -1)
	f.planes[FrustumUp] = plane(1, -1)
	f.planes[FrustumDown] = plane(1, 1)
	f.planes[FrustumNear] = plane(2, -1)
	f.planes[FrustumFar] = plane(2, 1)
	return f
}

// NewFrustumLookAt returns the frustum of a camera at eye facing target with
// a vertical field of view of fovY degrees.
func NewFrustumLookAt[T hwy.Floats](eye, target, up Vector3[T], fovY, aspect, near, far T) Frustum[T] {
	return NewFrustumLookTo(eye, target.Direction(eye), up, fovY, aspect, near, far)
}

// NewFrustumLookTo returns the frustum of a camera at eye facing dir with a
// vertical field of view of fovY degrees.
func NewFrustumLookTo[T hwy.Floats](eye, dir, up Vector3[T], fovY, aspect, near, far T) Frustum[T] {
	var view, proj Matrix4x4[T]
	view.LoadLookTo(eye, dir, up)
	proj.LoadPerspectiveFieldOfView(fovY, aspect, near, far)
	return NewFrustum(view.Multiply(proj))
}

// Plane returns plane i.
func (f Frustum[T]) Plane(i FrustumPlane) Plane[T] {
	hwy.Assert(uint(i) < FrustumPlanes, "Frustum.Plane: index %d out of range", int(i))
	return f.planes[i]
}

// Planes returns all six planes in FrustumPlane order.
func (f Frustum[T]) Planes() [FrustumPlanes]Plane[T] {
	return f.planes
}

// IsInsidePoint reports whether p is on the inner side of, or on, every
// plane.
func (f Frustum[T]) IsInsidePoint(p Vector3[T]) bool {
	for i := range f.planes {
		if f.planes[i].DistanceTo(p) < 0 {
			return false
		}
	}
	return true
}

// IsInsidePoints reports whether the convex hull of pts may intersect the
// frustum. It is false only when every point lies behind the same plane, so
// some hulls near a corner are reported inside. An empty set is outside.
func (f Frustum[T]) IsInsidePoints(pts ...Vector3[T]) bool {
	if len(pts) == 0 {
		return false
	}
	for i := range f.planes {
		behind := true
		for _, p := range pts {
			if f.planes[i].DistanceTo(p) >= 0 {
				behind = false
				break
			}
		}
		if behind {
			return false
		}
	}
	return true
}

// IsInsideSphere reports whether the sphere may intersect the frustum. It is
// false when the sphere lies entirely behind some plane.
func (f Frustum[T]) IsInsideSphere(center Vector3[T], radius T) bool {
	for i := range f.planes {
		if f.planes[i].DistanceTo(center) < -radius {
			return false
		}
	}
	return true
}
