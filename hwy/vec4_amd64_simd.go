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

//go:build amd64 && goexperiment.simd && !noasm

package hwy

import "simd/archsimd"

// Native backend: float32 lanes live in an archsimd.Float32x4 (XMM) and
// float64 lanes in an archsimd.Float64x4 (YMM) for the duration of one
// operation. Integer lanes fall through to the scalar loops.
//
// The archsimd 128/256-bit float forms are VEX encoded, so the path is only
// taken when the CPU reports AVX. The probe runs once, at package init.

var hasNativeVec4 = archsimd.X86.AVX()

// nativeVec4 reports whether Vec4 float lanes run on native registers.
func nativeVec4() bool { return hasNativeVec4 }

func binaryNative[T Lanes](
	a, b Vec4[T],
	f32 func(x, y archsimd.Float32x4) archsimd.Float32x4,
	f64 func(x, y archsimd.Float64x4) archsimd.Float64x4,
) (Vec4[T], bool) {
	if !hasNativeVec4 {
		return a, false
	}
	var r Vec4[T]
	switch pa := any(&a.data).(type) {
	case *[4]float32:
		pb := any(&b.data).(*[4]float32)
		pr := any(&r.data).(*[4]float32)
		f32(archsimd.LoadFloat32x4Slice(pa[:]), archsimd.LoadFloat32x4Slice(pb[:])).Store(pr)
		return r, true
	case *[4]float64:
		pb := any(&b.data).(*[4]float64)
		pr := any(&r.data).(*[4]float64)
		f64(archsimd.LoadFloat64x4Slice(pa[:]), archsimd.LoadFloat64x4Slice(pb[:])).Store(pr)
		return r, true
	}
	return a, false
}

func addNative[T Lanes](a, b Vec4[T]) (Vec4[T], bool) {
	return binaryNative(a, b, archsimd.Float32x4.Add, archsimd.Float64x4.Add)
}

func subNative[T Lanes](a, b Vec4[T]) (Vec4[T], bool) {
	return binaryNative(a, b, archsimd.Float32x4.Sub, archsimd.Float64x4.Sub)
}

func mulNative[T Lanes](a, b Vec4[T]) (Vec4[T], bool) {
	return binaryNative(a, b, archsimd.Float32x4.Mul, archsimd.Float64x4.Mul)
}

func divNative[T Lanes](a, b Vec4[T]) (Vec4[T], bool) {
	return binaryNative(a, b, archsimd.Float32x4.Div, archsimd.Float64x4.Div)
}

func minNative[T Lanes](a, b Vec4[T]) (Vec4[T], bool) {
	return binaryNative(a, b, archsimd.Float32x4.Min, archsimd.Float64x4.Min)
}

func maxNative[T Lanes](a, b Vec4[T]) (Vec4[T], bool) {
	return binaryNative(a, b, archsimd.Float32x4.Max, archsimd.Float64x4.Max)
}

func sqrtNative[T Lanes](a Vec4[T]) (Vec4[T], bool) {
	if !hasNativeVec4 {
		return a, false
	}
	var r Vec4[T]
	switch pa := any(&a.data).(type) {
	case *[4]float32:
		pr := any(&r.data).(*[4]float32)
		archsimd.LoadFloat32x4Slice(pa[:]).Sqrt().Store(pr)
		return r, true
	case *[4]float64:
		pr := any(&r.data).(*[4]float64)
		archsimd.LoadFloat64x4Slice(pa[:]).Sqrt().Store(pr)
		return r, true
	}
	return a, false
}
