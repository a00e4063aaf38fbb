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
	"testing"
)

func TestIsFloat(t *testing.T) {
	if !IsFloat[float32]() || !IsFloat[float64]() {
		t.Error("IsFloat: float types reported as integers")
	}
	if IsFloat[int32]() || IsFloat[int]() || IsFloat[int8]() {
		t.Error("IsFloat: integer types reported as floats")
	}
}

func TestEpsilon(t *testing.T) {
	if got, want := Epsilon[float32](), float32(1.1920929e-07); got != want {
		t.Errorf("Epsilon[float32]: got %v, want %v", got, want)
	}
	if got, want := Epsilon[float64](), 2.220446049250313e-16; got != want {
		t.Errorf("Epsilon[float64]: got %v, want %v", got, want)
	}
	if got := Epsilon[int32](); got != 0 {
		t.Errorf("Epsilon[int32]: got %v, want 0", got)
	}
}

func TestDegreeTrig(t *testing.T) {
	tests := []struct {
		deg      float64
		sin, cos float64
	}{
		{0, 0, 1},
		{30, 0.5, math.Sqrt(3) / 2},
		{90, 1, 0},
		{180, 0, -1},
		{-90, -1, 0},
	}
	for _, tt := range tests {
		if got := SinDeg(tt.deg); math.Abs(got-tt.sin) > 1e-12 {
			t.Errorf("SinDeg(%v): got %v, want %v", tt.deg, got, tt.sin)
		}
		if got := CosDeg(tt.deg); math.Abs(got-tt.cos) > 1e-12 {
			t.Errorf("CosDeg(%v): got %v, want %v", tt.deg, got, tt.cos)
		}
		s, c := SinCosDeg(tt.deg)
		if s != SinDeg(tt.deg) || c != CosDeg(tt.deg) {
			t.Errorf("SinCosDeg(%v): got (%v,%v), want (%v,%v)", tt.deg, s, c, SinDeg(tt.deg), CosDeg(tt.deg))
		}
	}
	if got := TanDeg(45.0); math.Abs(got-1) > 1e-12 {
		t.Errorf("TanDeg(45): got %v, want 1", got)
	}
	if got := AsinDeg(1.0000001); math.IsNaN(got) || math.Abs(got-90) > 1e-12 {
		t.Errorf("AsinDeg clamps: got %v, want 90", got)
	}
	if got := AcosDeg(-1.5); math.IsNaN(got) || math.Abs(got-180) > 1e-12 {
		t.Errorf("AcosDeg clamps: got %v, want 180", got)
	}
	if got := Atan2Deg(1.0, 1.0); math.Abs(got-45) > 1e-12 {
		t.Errorf("Atan2Deg(1,1): got %v, want 45", got)
	}
	if got := RadToDeg(DegToRad(123.0)); math.Abs(got-123) > 1e-12 {
		t.Errorf("RadToDeg(DegToRad(123)): got %v", got)
	}
}

func TestSqrtRSqrt(t *testing.T) {
	if got := Sqrt[float32](16); got != 4 {
		t.Errorf("Sqrt(16): got %v, want 4", got)
	}
	if got := RSqrt[float64](4); got != 0.5 {
		t.Errorf("RSqrt(4): got %v, want 0.5", got)
	}
	if got := Sqrt[int32](17); got != 4 {
		t.Errorf("Sqrt[int32](17): got %v, want 4", got)
	}
	for _, x := range []float32{0.1, 2, 3, 1e-20, 12345.678} {
		want := float32(1) / float32(math.Sqrt(float64(x)))
		if got := RSqrt(x); got != want {
			t.Errorf("RSqrt(%v): got %v, want %v", x, got, want)
		}
	}
}

func TestClampSaturateLerp(t *testing.T) {
	if got := Clamp(5.0, 0, 1); got != 1 {
		t.Errorf("Clamp high: got %v", got)
	}
	if got := Clamp(-5, 0, 10); got != 0 {
		t.Errorf("Clamp low: got %v", got)
	}
	if got := Saturate[float32](0.25); got != 0.25 {
		t.Errorf("Saturate passthrough: got %v", got)
	}
	if got := Lerp(2.0, 6.0, 0); got != 2 {
		t.Errorf("Lerp t=0: got %v, want 2", got)
	}
	if got := Lerp(2.0, 6.0, 1); got != 6 {
		t.Errorf("Lerp t=1: got %v, want 6", got)
	}
	if got := Lerp(2.0, 6.0, 2); got != 10 {
		t.Errorf("Lerp extrapolates: got %v, want 10", got)
	}
}

func TestRem(t *testing.T) {
	if got := Rem(7.5, 2.0); got != 1.5 {
		t.Errorf("Rem(7.5,2): got %v, want 1.5", got)
	}
	if got := Rem(-7.5, 2.0); got != -1.5 {
		t.Errorf("Rem(-7.5,2): got %v, want -1.5", got)
	}
	if got := Rem[int32](-7, 3); got != -1 {
		t.Errorf("Rem[int32](-7,3): got %v, want -1", got)
	}
}

func TestMinMaxUnordered(t *testing.T) {
	nan := math.NaN()
	if got := Min(nan, 1.0); got != 1 {
		t.Errorf("Min(NaN,1): got %v, want 1", got)
	}
	if got := Max(1.0, nan); !math.IsNaN(got) {
		t.Errorf("Max(1,NaN): got %v, want NaN", got)
	}
	if got := Sign(-3.0); got != -1 {
		t.Errorf("Sign(-3): got %v", got)
	}
	if !NearEqual(1.0, 1.0+1e-9, 1e-8) {
		t.Error("NearEqual: expected near")
	}
}
