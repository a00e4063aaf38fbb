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

// Package hwy provides the arithmetic backends of the geometry kernel: a set
// of scalar elementary functions parameterized by the element type, and a
// 4-lane vector type whose operations map onto native 128/256-bit registers
// when the build enables them, or onto plain scalar loops otherwise.
//
// The backend is chosen at compile time:
//
//   - amd64 with GOEXPERIMENT=simd: float32 and float64 lanes use
//     simd/archsimd registers (when the CPU has AVX).
//   - -tags noasm, other architectures, or no simd experiment: portable
//     scalar loops over a [4]T.
//
// Both backends produce bit-identical results for the same inputs; the
// choice is a performance strategy, never an observable behavior change.
//
// Basic usage:
//
//	a := hwy.Load4[float32](1, 2, 3, 0)
//	b := hwy.Load4[float32](0, 1, 0, 0)
//	n := a.Cross3(b)
//	l := hwy.Sqrt(n.Dot3(n))
package hwy

// Floats is a constraint for floating-point types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer types.
type SignedInts interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Lanes is a constraint for all element types a vector can hold.
// Unsigned integers are excluded because vectors negate and subtract freely.
type Lanes interface {
	Floats | SignedInts
}

// Mask4 represents the result of a lane-wise comparison of two Vec4 values.
//
// Mask instances should not be created directly; use comparison methods
// like Equal, Less or Greater instead.
type Mask4 struct {
	// bits stores which lanes are active; bit i is set if lane i is active.
	bits uint8
}

// NumLanes returns the number of lanes in this mask.
func (m Mask4) NumLanes() int {
	return 4
}

// AllTrue returns true if all lanes in the mask are active.
func (m Mask4) AllTrue() bool {
	return m.bits&0xF == 0xF
}

// AnyTrue returns true if at least one lane in the mask is active.
func (m Mask4) AnyTrue() bool {
	return m.bits&0xF != 0
}

// AllFalse returns true if no lane is active.
func (m Mask4) AllFalse() bool {
	return m.bits&0xF == 0
}

// CountTrue returns the number of active lanes in the mask.
func (m Mask4) CountTrue() int {
	count := 0
	for i := range 4 {
		if m.bits&(1<<i) != 0 {
			count++
		}
	}
	return count
}

// GetBit returns whether lane i is active.
func (m Mask4) GetBit(i int) bool {
	if i < 0 || i >= 4 {
		return false
	}
	return m.bits&(1<<i) != 0
}

// Bits returns the mask as a 4-bit integer, lane 0 in bit 0.
func (m Mask4) Bits() uint8 {
	return m.bits & 0xF
}

// And returns the lane-wise conjunction of two masks.
func (m Mask4) And(o Mask4) Mask4 {
	return Mask4{bits: m.bits & o.bits}
}

// Or returns the lane-wise disjunction of two masks.
func (m Mask4) Or(o Mask4) Mask4 {
	return Mask4{bits: m.bits | o.bits}
}

// Not inverts every lane.
func (m Mask4) Not() Mask4 {
	return Mask4{bits: ^m.bits & 0xF}
}

// MaskFromBits builds a mask from the low 4 bits of b.
func MaskFromBits(b uint8) Mask4 {
	return Mask4{bits: b & 0xF}
}
