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

import (
	"math"
	"unsafe"
)

// This file provides the scalar backend: elementary functions over a single
// element of type T. They are pure, allocation free and used both by the
// vector types directly and by the scalar fallback of Vec4.
//
// Products that feed an addition are written as T(a*b) so the compiler
// never contracts them into a fused multiply-add; the SIMD backend does not
// fuse either, which is what keeps both backends bit-identical.

// SlerpThreshold is the cosine margin below which spherical interpolation
// falls back to linear interpolation of coefficients.
const SlerpThreshold = 0.001

const degToRad = math.Pi / 180
const radToDeg = 180 / math.Pi

// Machine epsilons, held in variables so they convert to any T at run time.
var (
	float32Epsilon = float32(math.Nextafter32(1, 2) - 1)
	float64Epsilon = math.Nextafter(1, 2) - 1
)

// IsFloat reports whether T is a floating-point element type.
func IsFloat[T Lanes]() bool {
	one := T(1)
	return one/2 != 0
}

// Epsilon returns the machine epsilon of T: 2^-23 for float32, 2^-52 for
// float64 and 0 for integer types.
func Epsilon[T Lanes]() T {
	if !IsFloat[T]() {
		return 0
	}
	var zero T
	if unsafe.Sizeof(zero) == 4 {
		return T(float32Epsilon)
	}
	return T(float64Epsilon)
}

// NearEqual reports whether |a-b| <= eps.
func NearEqual[T Lanes](a, b, eps T) bool {
	return Abs(a-b) <= eps
}

// DegToRad converts degrees to radians.
func DegToRad[T Floats](deg T) T {
	return T(float64(deg) * degToRad)
}

// RadToDeg converts radians to degrees.
func RadToDeg[T Floats](rad T) T {
	return T(float64(rad) * radToDeg)
}

// SinDeg returns the sine of an angle given in degrees.
func SinDeg[T Floats](deg T) T {
	return T(math.Sin(float64(deg) * degToRad))
}

// CosDeg returns the cosine of an angle given in degrees.
func CosDeg[T Floats](deg T) T {
	return T(math.Cos(float64(deg) * degToRad))
}

// TanDeg returns the tangent of an angle given in degrees.
func TanDeg[T Floats](deg T) T {
	return T(math.Tan(float64(deg) * degToRad))
}

// SinCosDeg returns sine and cosine of an angle given in degrees.
func SinCosDeg[T Floats](deg T) (sin, cos T) {
	s, c := math.Sincos(float64(deg) * degToRad)
	return T(s), T(c)
}

// AsinDeg returns the arcsine of x in degrees. x is clamped to [-1, 1] so
// values pushed slightly out of range by rounding do not produce NaN.
func AsinDeg[T Floats](x T) T {
	return T(math.Asin(float64(Clamp(x, -1, 1))) * radToDeg)
}

// AcosDeg returns the arccosine of x in degrees, with x clamped to [-1, 1].
func AcosDeg[T Floats](x T) T {
	return T(math.Acos(float64(Clamp(x, -1, 1))) * radToDeg)
}

// Atan2Deg returns atan2(y, x) in degrees.
func Atan2Deg[T Floats](y, x T) T {
	return T(math.Atan2(float64(y), float64(x)) * radToDeg)
}

// Sqrt returns the square root of x, correctly rounded to T.
func Sqrt[T Lanes](x T) T {
	return T(math.Sqrt(float64(x)))
}

// RSqrt returns 1/sqrt(x). It is an exact division, never a hardware
// estimate, so it agrees with the lane version on every backend.
func RSqrt[T Lanes](x T) T {
	if !IsFloat[T]() {
		return T(1 / math.Sqrt(float64(x)))
	}
	one := T(1)
	return one / Sqrt(x)
}

// Abs returns the absolute value of x.
func Abs[T Lanes](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// Min returns the smaller of a and b. When the comparison is unordered
// (NaN), b is returned, matching the MINPS lane semantics.
func Min[T Lanes](a, b T) T {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of a and b, returning b when unordered.
func Max[T Lanes](a, b T) T {
	if a > b {
		return a
	}
	return b
}

// Clamp limits x to [lo, hi].
func Clamp[T Lanes](x, lo, hi T) T {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// Saturate clamps x to [0, 1].
func Saturate[T Lanes](x T) T {
	return Clamp(x, 0, 1)
}

// Lerp returns a*(1-t) + b*t. t is not clamped.
func Lerp[T Lanes](a, b, t T) T {
	return T(a*(1-t)) + T(b*t)
}

// MulAdd returns a*b + c rounded after each step.
func MulAdd[T Lanes](a, b, c T) T {
	return T(a*b) + c
}

// Rem returns the remainder of x/y with the sign of x: math.Mod for floats,
// the % operator for integers. Integer division by zero panics as usual.
func Rem[T Lanes](x, y T) T {
	if IsFloat[T]() {
		return T(math.Mod(float64(x), float64(y)))
	}
	return T(int64(x) % int64(y))
}

// Sign returns -1, 0 or 1 according to the sign of x.
func Sign[T Lanes](x T) T {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	}
	return 0
}
