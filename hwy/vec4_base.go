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

package hwy

// This file provides pure Go (scalar) implementations of the Vec4 primitives.
// The exported methods on Vec4 try the native backend first and fall back to
// these. They stay exported so tests and benchmarks can compare the backends
// lane by lane.

// AddBase performs lane-wise addition with scalar code.
func AddBase[T Lanes](a, b Vec4[T]) Vec4[T] {
	return Vec4[T]{data: [4]T{
		a.data[0] + b.data[0],
		a.data[1] + b.data[1],
		a.data[2] + b.data[2],
		a.data[3] + b.data[3],
	}}
}

// SubBase performs lane-wise subtraction with scalar code.
func SubBase[T Lanes](a, b Vec4[T]) Vec4[T] {
	return Vec4[T]{data: [4]T{
		a.data[0] - b.data[0],
		a.data[1] - b.data[1],
		a.data[2] - b.data[2],
		a.data[3] - b.data[3],
	}}
}

// MulBase performs lane-wise multiplication with scalar code.
func MulBase[T Lanes](a, b Vec4[T]) Vec4[T] {
	return Vec4[T]{data: [4]T{
		T(a.data[0] * b.data[0]),
		T(a.data[1] * b.data[1]),
		T(a.data[2] * b.data[2]),
		T(a.data[3] * b.data[3]),
	}}
}

// DivBase performs lane-wise division with scalar code.
func DivBase[T Lanes](a, b Vec4[T]) Vec4[T] {
	return Vec4[T]{data: [4]T{
		a.data[0] / b.data[0],
		a.data[1] / b.data[1],
		a.data[2] / b.data[2],
		a.data[3] / b.data[3],
	}}
}

// MinBase returns the lane-wise minimum with scalar code.
func MinBase[T Lanes](a, b Vec4[T]) Vec4[T] {
	return Vec4[T]{data: [4]T{
		Min(a.data[0], b.data[0]),
		Min(a.data[1], b.data[1]),
		Min(a.data[2], b.data[2]),
		Min(a.data[3], b.data[3]),
	}}
}

// MaxBase returns the lane-wise maximum with scalar code.
func MaxBase[T Lanes](a, b Vec4[T]) Vec4[T] {
	return Vec4[T]{data: [4]T{
		Max(a.data[0], b.data[0]),
		Max(a.data[1], b.data[1]),
		Max(a.data[2], b.data[2]),
		Max(a.data[3], b.data[3]),
	}}
}

// SqrtBase computes the lane-wise square root with scalar code.
func SqrtBase[T Lanes](v Vec4[T]) Vec4[T] {
	return Vec4[T]{data: [4]T{
		Sqrt(v.data[0]),
		Sqrt(v.data[1]),
		Sqrt(v.data[2]),
		Sqrt(v.data[3]),
	}}
}

// RSqrtBase computes the lane-wise reciprocal square root with scalar code.
func RSqrtBase[T Lanes](v Vec4[T]) Vec4[T] {
	return Vec4[T]{data: [4]T{
		RSqrt(v.data[0]),
		RSqrt(v.data[1]),
		RSqrt(v.data[2]),
		RSqrt(v.data[3]),
	}}
}

// RemBase computes the lane-wise remainder with scalar code.
func RemBase[T Lanes](a, b Vec4[T]) Vec4[T] {
	return Vec4[T]{data: [4]T{
		Rem(a.data[0], b.data[0]),
		Rem(a.data[1], b.data[1]),
		Rem(a.data[2], b.data[2]),
		Rem(a.data[3], b.data[3]),
	}}
}

// NegBase negates every lane with scalar code.
func NegBase[T Lanes](v Vec4[T]) Vec4[T] {
	return Vec4[T]{data: [4]T{-v.data[0], -v.data[1], -v.data[2], -v.data[3]}}
}

// AbsBase computes the lane-wise absolute value with scalar code.
func AbsBase[T Lanes](v Vec4[T]) Vec4[T] {
	return Vec4[T]{data: [4]T{
		Abs(v.data[0]),
		Abs(v.data[1]),
		Abs(v.data[2]),
		Abs(v.data[3]),
	}}
}

func compareBase[T Lanes](a, b Vec4[T], cmp func(x, y T) bool) Mask4 {
	var bits uint8
	for i := range 4 {
		if cmp(a.data[i], b.data[i]) {
			bits |= 1 << i
		}
	}
	return Mask4{bits: bits}
}
