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

// Vec4 is a 4-lane vector. Its storage is always a [4]T; the native backend
// loads that array into a register for the duration of one operation.
//
// The zero value is the zero vector.
type Vec4[T Lanes] struct {
	data [4]T
}

// Load4 creates a vector from four lane values.
func Load4[T Lanes](x, y, z, w T) Vec4[T] {
	return Vec4[T]{data: [4]T{x, y, z, w}}
}

// LoadArray creates a vector from an array.
func LoadArray[T Lanes](a [4]T) Vec4[T] {
	return Vec4[T]{data: a}
}

// LoadSlice creates a vector from the first four elements of src.
// It panics if len(src) < 4.
func LoadSlice[T Lanes](src []T) Vec4[T] {
	return Vec4[T]{data: [4]T(src[:4])}
}

// Broadcast4 creates a vector with all lanes set to v.
func Broadcast4[T Lanes](v T) Vec4[T] {
	return Vec4[T]{data: [4]T{v, v, v, v}}
}

// Zero4 returns the zero vector.
func Zero4[T Lanes]() Vec4[T] {
	return Vec4[T]{}
}

// NumLanes returns the number of lanes (always 4).
func (v Vec4[T]) NumLanes() int {
	return 4
}

// Get returns lane i.
func (v Vec4[T]) Get(i int) T {
	Assert(i >= 0 && i < 4, "lane index %d out of range [0,4)", i)
	return v.data[i]
}

// With returns a copy of v with lane i replaced by x.
func (v Vec4[T]) With(i int, x T) Vec4[T] {
	Assert(i >= 0 && i < 4, "lane index %d out of range [0,4)", i)
	v.data[i] = x
	return v
}

// Array returns the lanes as an array.
func (v Vec4[T]) Array() [4]T {
	return v.data
}

// Store writes the lanes to dst.
func (v Vec4[T]) Store(dst *[4]T) {
	*dst = v.data
}

// StoreSlice writes the lanes to the first four elements of dst.
// It panics if len(dst) < 4.
func (v Vec4[T]) StoreSlice(dst []T) {
	copy(dst[:4], v.data[:])
}

// Add performs lane-wise addition.
func (v Vec4[T]) Add(o Vec4[T]) Vec4[T] {
	if r, ok := addNative(v, o); ok {
		return r
	}
	return AddBase(v, o)
}

// Sub performs lane-wise subtraction.
func (v Vec4[T]) Sub(o Vec4[T]) Vec4[T] {
	if r, ok := subNative(v, o); ok {
		return r
	}
	return SubBase(v, o)
}

// Mul performs lane-wise multiplication.
func (v Vec4[T]) Mul(o Vec4[T]) Vec4[T] {
	if r, ok := mulNative(v, o); ok {
		return r
	}
	return MulBase(v, o)
}

// Div performs lane-wise division. A zero divisor lane is a contract
// violation; without hwydebug float lanes yield ±Inf or NaN.
func (v Vec4[T]) Div(o Vec4[T]) Vec4[T] {
	Assert(o.data[0] != 0 && o.data[1] != 0 && o.data[2] != 0 && o.data[3] != 0,
		"Vec4.Div: zero divisor %v", o.data)
	if r, ok := divNative(v, o); ok {
		return r
	}
	return DivBase(v, o)
}

// Min returns the lane-wise minimum.
func (v Vec4[T]) Min(o Vec4[T]) Vec4[T] {
	if r, ok := minNative(v, o); ok {
		return r
	}
	return MinBase(v, o)
}

// Max returns the lane-wise maximum.
func (v Vec4[T]) Max(o Vec4[T]) Vec4[T] {
	if r, ok := maxNative(v, o); ok {
		return r
	}
	return MaxBase(v, o)
}

// Sqrt computes the lane-wise square root.
func (v Vec4[T]) Sqrt() Vec4[T] {
	if r, ok := sqrtNative(v); ok {
		return r
	}
	return SqrtBase(v)
}

// RSqrt computes 1/sqrt(x) per lane as an exact division.
func (v Vec4[T]) RSqrt() Vec4[T] {
	if !IsFloat[T]() {
		return RSqrtBase(v)
	}
	return Broadcast4(T(1)).Div(v.Sqrt())
}

// Scale multiplies every lane by s.
func (v Vec4[T]) Scale(s T) Vec4[T] {
	return v.Mul(Broadcast4(s))
}

// Neg negates all lanes. Sign flips are exact, so both backends share the
// scalar loop.
func (v Vec4[T]) Neg() Vec4[T] {
	return NegBase(v)
}

// Abs computes the lane-wise absolute value.
func (v Vec4[T]) Abs() Vec4[T] {
	return AbsBase(v)
}

// Rem computes the lane-wise remainder. There is no vector instruction for
// it, so both backends run the scalar Rem.
func (v Vec4[T]) Rem(o Vec4[T]) Vec4[T] {
	return RemBase(v, o)
}

// Clamp limits every lane to [lo, hi].
func (v Vec4[T]) Clamp(lo, hi Vec4[T]) Vec4[T] {
	return v.Max(lo).Min(hi)
}

// MulAdd returns v*a + b without fusing the two operations.
func (v Vec4[T]) MulAdd(a, b Vec4[T]) Vec4[T] {
	return v.Mul(a).Add(b)
}

// Lerp returns v*(1-t) + o*t per lane. t is not clamped.
func (v Vec4[T]) Lerp(o Vec4[T], t T) Vec4[T] {
	return v.Scale(1 - t).Add(o.Scale(t))
}

// ReduceSum returns ((l0+l1)+l2)+l3. The order is fixed so the result does
// not depend on the backend.
func (v Vec4[T]) ReduceSum() T {
	return ((v.data[0] + v.data[1]) + v.data[2]) + v.data[3]
}

// Dot returns the 4-lane dot product.
func (v Vec4[T]) Dot(o Vec4[T]) T {
	return v.Mul(o).ReduceSum()
}

// Dot3 returns the dot product of lanes 0..2.
func (v Vec4[T]) Dot3(o Vec4[T]) T {
	p := v.Mul(o)
	return (p.data[0] + p.data[1]) + p.data[2]
}

// LengthSq returns the 4-lane dot product of v with itself.
func (v Vec4[T]) LengthSq() T {
	return v.Dot(v)
}

// Cross3 returns the cross product of lanes 0..2; lane 3 of the result is 0.
func (v Vec4[T]) Cross3(o Vec4[T]) Vec4[T] {
	a := v.Permute(1, 2, 0, 3).Mul(o.Permute(2, 0, 1, 3))
	b := v.Permute(2, 0, 1, 3).Mul(o.Permute(1, 2, 0, 3))
	return a.Sub(b).With(3, 0)
}

// Permute gathers lanes: result lane n is v lane i_n.
func (v Vec4[T]) Permute(i0, i1, i2, i3 int) Vec4[T] {
	Assert(uint(i0) < 4 && uint(i1) < 4 && uint(i2) < 4 && uint(i3) < 4,
		"Vec4.Permute: indices (%d,%d,%d,%d) out of range", i0, i1, i2, i3)
	return Vec4[T]{data: [4]T{v.data[i0], v.data[i1], v.data[i2], v.data[i3]}}
}

// Equal returns a mask of lanes where v == o.
func (v Vec4[T]) Equal(o Vec4[T]) Mask4 {
	return compareBase(v, o, func(a, b T) bool { return a == b })
}

// NotEqual returns a mask of lanes where v != o.
func (v Vec4[T]) NotEqual(o Vec4[T]) Mask4 {
	return compareBase(v, o, func(a, b T) bool { return a != b })
}

// Less returns a mask of lanes where v < o.
func (v Vec4[T]) Less(o Vec4[T]) Mask4 {
	return compareBase(v, o, func(a, b T) bool { return a < b })
}

// LessEqual returns a mask of lanes where v <= o.
func (v Vec4[T]) LessEqual(o Vec4[T]) Mask4 {
	return compareBase(v, o, func(a, b T) bool { return a <= b })
}

// Greater returns a mask of lanes where v > o.
func (v Vec4[T]) Greater(o Vec4[T]) Mask4 {
	return compareBase(v, o, func(a, b T) bool { return a > b })
}

// GreaterEqual returns a mask of lanes where v >= o.
func (v Vec4[T]) GreaterEqual(o Vec4[T]) Mask4 {
	return compareBase(v, o, func(a, b T) bool { return a >= b })
}

// IfThenElse selects lanes from a where mask is set and from b elsewhere.
func IfThenElse[T Lanes](mask Mask4, a, b Vec4[T]) Vec4[T] {
	var r Vec4[T]
	for i := range 4 {
		if mask.GetBit(i) {
			r.data[i] = a.data[i]
		} else {
			r.data[i] = b.data[i]
		}
	}
	return r
}
