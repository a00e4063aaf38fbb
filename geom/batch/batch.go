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

// Package batch runs geom kernels over slices, splitting the work across a
// persistent workerpool.Pool. Every output element depends only on the input
// element at the same index, so results do not depend on the pool size.
package batch

import (
	"sync/atomic"

	"github.com/ajroetker/hwygeom/geom"
	"github.com/ajroetker/hwygeom/hwy"
	"github.com/ajroetker/hwygeom/hwy/contrib/workerpool"
)

// DefaultGrain is the element count below which a call stays on the calling
// goroutine.
const DefaultGrain = 1024

// Batcher applies geom kernels to slices of element type T.
type Batcher[T hwy.Floats] struct {
	// Grain is the smallest range handed to one worker. Zero or less means
	// DefaultGrain.
	Grain int

	pool *workerpool.Pool
}

// New returns a Batcher running on pool. A nil pool runs every call
// sequentially.
func New[T hwy.Floats](pool *workerpool.Pool) *Batcher[T] {
	return &Batcher[T]{pool: pool}
}

func (b *Batcher[T]) grain() int {
	if b.Grain <= 0 {
		return DefaultGrain
	}
	return b.Grain
}

func (b *Batcher[T]) parallelFor(n int, fn func(start, end int)) {
	grain := b.grain()
	if b.pool == nil || n <= grain {
		if n > 0 {
			fn(0, n)
		}
		return
	}
	b.pool.ParallelFor(n, grain, fn)
}

// parallelForBatched is parallelFor for kernels whose per-element cost varies,
// handing out grain-sized batches on demand instead of fixed ranges.
func (b *Batcher[T]) parallelForBatched(n int, fn func(start, end int)) {
	grain := b.grain()
	if b.pool == nil || n <= grain {
		if n > 0 {
			fn(0, n)
		}
		return
	}
	b.pool.ParallelForBatched(n, grain, fn)
}

func checkLen(a, b int) {
	if a != b {
		panic("batch: slice length mismatch")
	}
}

// TransformPoints writes m.TransformPoint(src[i]) to dst[i].
func (b *Batcher[T]) TransformPoints(m geom.Matrix4x4[T], src, dst []geom.Vector3[T]) {
	checkLen(len(src), len(dst))
	b.parallelFor(len(src), func(start, end int) {
		for i := start; i < end; i++ {
			dst[i] = m.TransformPoint(src[i])
		}
	})
}

// TransformCoords writes m.TransformCoord(src[i]) to dst[i], dividing each
// result by its W.
func (b *Batcher[T]) TransformCoords(m geom.Matrix4x4[T], src, dst []geom.Vector3[T]) {
	checkLen(len(src), len(dst))
	b.parallelFor(len(src), func(start, end int) {
		for i := start; i < end; i++ {
			dst[i] = m.TransformCoord(src[i])
		}
	})
}

// TransformNormals writes m.TransformNormal(src[i]) to dst[i].
func (b *Batcher[T]) TransformNormals(m geom.Matrix4x4[T], src, dst []geom.Vector3[T]) {
	checkLen(len(src), len(dst))
	b.parallelFor(len(src), func(start, end int) {
		for i := start; i < end; i++ {
			dst[i] = m.TransformNormal(src[i])
		}
	})
}

// TransformVec4 writes the row vector src[i] * m to dst[i].
func (b *Batcher[T]) TransformVec4(m geom.Matrix4x4[T], src, dst []geom.Vector4[T]) {
	checkLen(len(src), len(dst))
	b.parallelFor(len(src), func(start, end int) {
		for i := start; i < end; i++ {
			dst[i] = m.Transform(src[i])
		}
	})
}

// CullSpheres sets visible[i] to f.IsInsideSphere(centers[i], radii[i]) and
// returns the number of visible spheres.
func (b *Batcher[T]) CullSpheres(f geom.Frustum[T], centers []geom.Vector3[T], radii []T, visible []bool) int {
	checkLen(len(centers), len(radii))
	checkLen(len(centers), len(visible))
	var count atomic.Int64
	b.parallelFor(len(centers), func(start, end int) {
		n := 0
		for i := start; i < end; i++ {
			visible[i] = f.IsInsideSphere(centers[i], radii[i])
			if visible[i] {
				n++
			}
		}
		count.Add(int64(n))
	})
	return int(count.Load())
}

// CullPoints sets visible[i] to f.IsInsidePoints(hulls[i]...) and returns
// the number of visible hulls. Empty hulls are never visible.
func (b *Batcher[T]) CullPoints(f geom.Frustum[T], hulls [][]geom.Vector3[T], visible []bool) int {
	checkLen(len(hulls), len(visible))
	var count atomic.Int64
	// Hull sizes differ, so batches are claimed dynamically.
	b.parallelForBatched(len(hulls), func(start, end int) {
		n := 0
		for i := start; i < end; i++ {
			visible[i] = f.IsInsidePoints(hulls[i]...)
			if visible[i] {
				n++
			}
		}
		count.Add(int64(n))
	})
	return int(count.Load())
}
