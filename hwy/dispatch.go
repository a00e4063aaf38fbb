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

// DispatchLevel represents the instruction set the Vec4 backend runs on.
// It is fixed when the program is built (and, on amd64 with the simd
// experiment, by a one-time CPU probe at init); it never changes afterwards.
type DispatchLevel int

const (
	// DispatchScalar indicates no SIMD, pure Go implementation.
	DispatchScalar DispatchLevel = iota

	// DispatchAVX indicates VEX-encoded 128/256-bit registers through
	// simd/archsimd (float32 lanes in XMM, float64 lanes in YMM).
	DispatchAVX
)

// String returns a human-readable name for the dispatch level.
func (d DispatchLevel) String() string {
	switch d {
	case DispatchScalar:
		return "scalar"
	case DispatchAVX:
		return "avx"
	default:
		return "unknown"
	}
}

// Features lists the CPU capabilities seen through golang.org/x/sys/cpu.
// It is informational: the backend choice depends on the build, not on
// these flags alone.
type Features struct {
	SSE41  bool
	AVX    bool
	AVX2   bool
	FMA    bool
	AVX512 bool
	ASIMD  bool
}

// currentLevel is the active Vec4 backend. Set by init() in dispatch_*.go files.
var currentLevel DispatchLevel

// currentWidth is the register width in bytes used for float32 lanes.
var currentWidth int

// currentName is the human-readable name of the current level.
var currentName string

var cpuFeatures Features

// CurrentLevel returns the instruction set the Vec4 backend runs on.
func CurrentLevel() DispatchLevel {
	return currentLevel
}

// CurrentWidth returns the register width in bytes holding float32 lanes:
// 16 on every backend, since Vec4 always has four lanes.
func CurrentWidth() int {
	return currentWidth
}

// CurrentName returns a human-readable name for the current backend,
// for example "avx" or "scalar".
func CurrentName() string {
	return currentName
}

// CPUFeatures returns the CPU capabilities detected at init.
func CPUFeatures() Features {
	return cpuFeatures
}

// NativeVec4 reports whether float Vec4 operations use native registers.
func NativeVec4() bool {
	return nativeVec4()
}

func setLevel() {
	currentWidth = 16
	if nativeVec4() {
		currentLevel = DispatchAVX
	} else {
		currentLevel = DispatchScalar
	}
	currentName = currentLevel.String()
}
