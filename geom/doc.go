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

// Package geom provides the fixed-shape transform algebra used by real-time
// 3D code: 2, 3 and 4 component vectors, 3x3 and 4x4 matrices, quaternions,
// planes, view frustums, rays and line segments.
//
// All types are plain values generic over an element type from package hwy.
// Nothing allocates and nothing holds references, so distinct values may be
// used from any number of goroutines.
//
// # Conventions
//
// Vectors are rows multiplied on the left of a matrix: v' = v * M. Matrices
// are stored as row vectors; for a Matrix4x4 the translation lives in row 3.
// Multiplying A * B therefore applies A first and B second, and so does the
// quaternion product a.Multiply(b) when used with Rotate.
//
// Angles are given and returned in degrees.
//
// The camera helpers build right-handed view matrices looking down -Z and
// projections with clip depth in [-w, w].
//
// # Degenerate inputs
//
// Normalizing a zero vector leaves it unchanged. Inverting a matrix whose
// determinant is within Epsilon of zero yields the identity. Inverting a
// zero-length quaternion reports false. Dividing by zero and out-of-range
// indices are contract violations reported through hwy.Assert in builds
// tagged hwydebug.
//
// # Example
//
//	view := geom.Identity4x4[float32]()
//	view.LoadLookAt(eye, target, geom.Vector3UnitY[float32]())
//	proj := geom.Identity4x4[float32]()
//	proj.LoadPerspectiveFieldOfView(60, 16.0/9, 0.1, 100)
//	frustum := geom.NewFrustum(view.Multiply(proj))
//	if frustum.IsInsideSphere(center, radius) {
//		draw()
//	}
package geom
