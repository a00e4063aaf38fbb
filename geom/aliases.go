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

// Shorthands for the common element types.
type (
	Vector2f = Vector2[float32]
	Vector2d = Vector2[float64]
	Vector2i = Vector2[int32]

	Vector3f = Vector3[float32]
	Vector3d = Vector3[float64]
	Vector3i = Vector3[int32]

	Vector4f = Vector4[float32]
	Vector4d = Vector4[float64]
	Vector4i = Vector4[int32]

	Matrix3x3f = Matrix3x3[float32]
	Matrix3x3d = Matrix3x3[float64]
	Matrix4x4f = Matrix4x4[float32]
	Matrix4x4d = Matrix4x4[float64]

	Quaternionf = Quaternion[float32]
	Quaterniond = Quaternion[float64]

	Planef   = Plane[float32]
	Planed   = Plane[float64]
	Frustumf = Frustum[float32]
	Frustumd = Frustum[float64]
)
