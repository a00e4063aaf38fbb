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
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ajroetker/hwygeom/hwy"
)

func hwyDebug() bool { return hwy.DebugChecks() }

// requireMatrixNear fails t when any element of got differs from want by
// more than tol.
func requireMatrixNear(t *testing.T, want, got Matrix4x4d, tol float64) {
	t.Helper()
	if diff := cmp.Diff(want.Array(), got.Array(), cmpopts.EquateApprox(0, tol)); diff != "" {
		t.Fatalf("matrix mismatch (-want +got):\n%s", diff)
	}
}

func requireMatrix3Near(t *testing.T, want, got Matrix3x3d, tol float64) {
	t.Helper()
	if diff := cmp.Diff(want.Array(), got.Array(), cmpopts.EquateApprox(0, tol)); diff != "" {
		t.Fatalf("matrix mismatch (-want +got):\n%s", diff)
	}
}

func requireVector3Near(t *testing.T, want, got Vector3d, tol float64) {
	t.Helper()
	if diff := cmp.Diff(want.Array(), got.Array(), cmpopts.EquateApprox(0, tol)); diff != "" {
		t.Fatalf("vector mismatch (-want +got):\n%s", diff)
	}
}

func randMatrix4x4(r *rand.Rand) Matrix4x4d {
	var a [16]float64
	for i := range a {
		a[i] = (r.Float64() - 0.5) * 20
	}
	return Matrix4x4FromArray(a)
}

func randUnitVector3(r *rand.Rand) Vector3d {
	for {
		v := NewVector3(r.Float64()*2-1, r.Float64()*2-1, r.Float64()*2-1)
		if ls := v.LengthSq(); ls > 0.01 && ls <= 1 {
			return v.Normalized()
		}
	}
}

func randRotation(r *rand.Rand) Quaterniond {
	return QuaternionFromAxis(randUnitVector3(r), (r.Float64()-0.5)*720)
}

func randWorld(r *rand.Rand) Matrix4x4d {
	var m Matrix4x4d
	scale := NewVector3(0.5+r.Float64()*3, 0.5+r.Float64()*3, 0.5+r.Float64()*3)
	m.LoadWorld(scale, randRotation(r), randVector3(r))
	return m
}
