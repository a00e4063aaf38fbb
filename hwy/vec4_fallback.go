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

//go:build noasm || !amd64 || !goexperiment.simd

package hwy

// Portable backend: no native registers are used, every Vec4 primitive runs
// the scalar loops in vec4_base.go. The hooks below are inlined to nothing.

func addNative[T Lanes](a, _ Vec4[T]) (Vec4[T], bool) { return a, false }

func subNative[T Lanes](a, _ Vec4[T]) (Vec4[T], bool) { return a, false }

func mulNative[T Lanes](a, _ Vec4[T]) (Vec4[T], bool) { return a, false }

func divNative[T Lanes](a, _ Vec4[T]) (Vec4[T], bool) { return a, false }

func minNative[T Lanes](a, _ Vec4[T]) (Vec4[T], bool) { return a, false }

func maxNative[T Lanes](a, _ Vec4[T]) (Vec4[T], bool) { return a, false }

func sqrtNative[T Lanes](a Vec4[T]) (Vec4[T], bool) { return a, false }

// nativeVec4 reports whether Vec4 float lanes run on native registers.
func nativeVec4() bool { return false }
