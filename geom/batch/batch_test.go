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

package batch

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/hwygeom/geom"
	"github.com/ajroetker/hwygeom/hwy/contrib/workerpool"
)

func randPoints(r *rand.Rand, n int) []geom.Vector3d {
	pts := make([]geom.Vector3d, n)
	for i := range pts {
		pts[i] = geom.NewVector3(r.Float64()*200-100, r.Float64()*200-100, r.Float64()*200-100)
	}
	return pts
}

func testWorld() geom.Matrix4x4d {
	var m geom.Matrix4x4d
	m.LoadWorld(
		geom.NewVector3(2.0, 0.5, 1),
		geom.QuaternionFromAxis(geom.NewVector3(1.0, 1, 0).Normalized(), 33),
		geom.NewVector3(3.0, -7, 11),
	)
	return m
}

// batchers returns a sequential batcher and pooled batchers with small
// grains, so that the pooled ones really split the work.
func batchers(t *testing.T) map[string]*Batcher[float64] {
	pool := workerpool.New(4)
	t.Cleanup(pool.Close)

	fine := New[float64](pool)
	fine.Grain = 7
	return map[string]*Batcher[float64]{
		"sequential":  New[float64](nil),
		"pool":        New[float64](pool),
		"pool/grain7": fine,
	}
}

func TestTransformMatchesScalar(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 4))
	m := testWorld()
	src := randPoints(r, 3000)
	src4 := make([]geom.Vector4d, len(src))
	for i, p := range src {
		src4[i] = p.Extend(r.Float64())
	}

	for name, b := range batchers(t) {
		t.Run(name, func(t *testing.T) {
			dst := make([]geom.Vector3d, len(src))
			dst4 := make([]geom.Vector4d, len(src))

			b.TransformPoints(m, src, dst)
			for i := range src {
				require.True(t, dst[i].Equal(m.TransformPoint(src[i])), "TransformPoints[%d]", i)
			}
			b.TransformCoords(m, src, dst)
			for i := range src {
				require.True(t, dst[i].Equal(m.TransformCoord(src[i])), "TransformCoords[%d]", i)
			}
			b.TransformNormals(m, src, dst)
			for i := range src {
				require.True(t, dst[i].Equal(m.TransformNormal(src[i])), "TransformNormals[%d]", i)
			}
			b.TransformVec4(m, src4, dst4)
			for i := range src4 {
				require.True(t, dst4[i].Equal(m.Transform(src4[i])), "TransformVec4[%d]", i)
			}
		})
	}
}

func TestTransformInPlace(t *testing.T) {
	m := testWorld()
	pts := randPoints(rand.New(rand.NewPCG(5, 6)), 100)
	want := make([]geom.Vector3d, len(pts))
	for i, p := range pts {
		want[i] = m.TransformPoint(p)
	}
	New[float64](nil).TransformPoints(m, pts, pts)
	for i := range pts {
		assert.True(t, pts[i].Equal(want[i]))
	}
}

func TestCullSpheres(t *testing.T) {
	f := geom.NewFrustumLookAt(geom.NewVector3(0.0, 0, 10), geom.Vector3Zero[float64](),
		geom.Vector3UnitY[float64](), 60, 1.5, 0.1, 100)

	r := rand.New(rand.NewPCG(7, 8))
	centers := randPoints(r, 2500)
	radii := make([]float64, len(centers))
	for i := range radii {
		radii[i] = r.Float64() * 5
	}
	wantCount := 0
	for i := range centers {
		if f.IsInsideSphere(centers[i], radii[i]) {
			wantCount++
		}
	}
	require.Positive(t, wantCount)
	require.Less(t, wantCount, len(centers))

	for name, b := range batchers(t) {
		t.Run(name, func(t *testing.T) {
			visible := make([]bool, len(centers))
			got := b.CullSpheres(f, centers, radii, visible)
			assert.Equal(t, wantCount, got)
			for i := range centers {
				require.Equal(t, f.IsInsideSphere(centers[i], radii[i]), visible[i], "sphere %d", i)
			}
		})
	}
}

func TestCullPoints(t *testing.T) {
	f := geom.NewFrustum(geom.Identity4x4[float64]())
	hulls := [][]geom.Vector3d{
		{geom.NewVector3(0.0, 0, 0)},
		{geom.NewVector3(2.0, 0, 0), geom.NewVector3(3.0, 0, 0)},
		{geom.NewVector3(2.0, 0, 0), geom.NewVector3(-2.0, 0, 0)},
		{},
		{geom.NewVector3(0.0, 0, 5)},
	}
	want := []bool{true, false, true, false, false}

	for name, b := range batchers(t) {
		t.Run(name, func(t *testing.T) {
			visible := make([]bool, len(hulls))
			assert.Equal(t, 2, b.CullPoints(f, hulls, visible))
			assert.Equal(t, want, visible)
		})
	}
}

func TestCullPointsUnevenHulls(t *testing.T) {
	r := rand.New(rand.NewPCG(9, 10))
	f := geom.NewFrustumLookAt(geom.NewVector3(0.0, 0, 150), geom.Vector3Zero[float64](),
		geom.Vector3UnitY[float64](), 30, 1, 1, 400)
	hulls := make([][]geom.Vector3d, 300)
	for i := range hulls {
		// Mostly tiny hulls with an occasional large one.
		n := r.IntN(4)
		if i%37 == 0 {
			n = 500
		}
		hulls[i] = randPoints(r, n)
	}
	want := make([]bool, len(hulls))
	wantCount := 0
	for i, h := range hulls {
		want[i] = f.IsInsidePoints(h...)
		if want[i] {
			wantCount++
		}
	}
	require.Positive(t, wantCount)
	require.Less(t, wantCount, len(hulls))

	for name, b := range batchers(t) {
		t.Run(name, func(t *testing.T) {
			visible := make([]bool, len(hulls))
			assert.Equal(t, wantCount, b.CullPoints(f, hulls, visible))
			assert.Equal(t, want, visible)
		})
	}
}

func TestLengthMismatchPanics(t *testing.T) {
	b := New[float64](nil)
	var m geom.Matrix4x4d
	m.LoadIdentity()
	f := geom.NewFrustum(m)
	const msg = "batch: slice length mismatch"

	assert.PanicsWithValue(t, msg, func() {
		b.TransformPoints(m, make([]geom.Vector3d, 3), make([]geom.Vector3d, 2))
	})
	assert.PanicsWithValue(t, msg, func() {
		b.TransformVec4(m, make([]geom.Vector4d, 1), nil)
	})
	assert.PanicsWithValue(t, msg, func() {
		b.CullSpheres(f, make([]geom.Vector3d, 2), make([]float64, 2), make([]bool, 1))
	})
	assert.PanicsWithValue(t, msg, func() {
		b.CullSpheres(f, make([]geom.Vector3d, 2), make([]float64, 1), make([]bool, 2))
	})
	assert.PanicsWithValue(t, msg, func() {
		b.CullPoints(f, make([][]geom.Vector3d, 2), nil)
	})
	assert.NotPanics(t, func() {
		b.TransformPoints(m, nil, nil)
		assert.Zero(t, b.CullSpheres(f, nil, nil, nil))
	})
}

func BenchmarkTransformPoints(b *testing.B) {
	pool := workerpool.New(0)
	defer pool.Close()

	m := testWorld()
	src := randPoints(rand.New(rand.NewPCG(1, 1)), 1<<16)
	dst := make([]geom.Vector3d, len(src))
	for _, bench := range []struct {
		name string
		b    *Batcher[float64]
	}{
		{"sequential", New[float64](nil)},
		{"pool", New[float64](pool)},
	} {
		b.Run(bench.name, func(b *testing.B) {
			for b.Loop() {
				bench.b.TransformPoints(m, src, dst)
			}
		})
	}
}

func BenchmarkCullSpheres(b *testing.B) {
	pool := workerpool.New(0)
	defer pool.Close()

	f := geom.NewFrustumLookAt(geom.NewVector3(0.0, 0, 10), geom.Vector3Zero[float64](),
		geom.Vector3UnitY[float64](), 60, 1.5, 0.1, 100)
	centers := randPoints(rand.New(rand.NewPCG(2, 2)), 1<<16)
	radii := make([]float64, len(centers))
	visible := make([]bool, len(centers))
	bt := New[float64](pool)
	for b.Loop() {
		bt.CullSpheres(f, centers, radii, visible)
	}
}
