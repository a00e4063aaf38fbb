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

import "testing"

func TestDispatchLevel(t *testing.T) {
	level := CurrentLevel()
	t.Logf("Current dispatch level: %s", level)
	t.Logf("Vector width: %d bytes", CurrentWidth())
	t.Logf("CPU features: %+v", CPUFeatures())

	if CurrentWidth() != 16 {
		t.Errorf("CurrentWidth: got %d, want 16", CurrentWidth())
	}
	if CurrentName() != level.String() {
		t.Errorf("CurrentName: got %q, want %q", CurrentName(), level.String())
	}
	if NativeVec4() != (level == DispatchAVX) {
		t.Errorf("NativeVec4 = %v disagrees with level %s", NativeVec4(), level)
	}
	if level == DispatchAVX && !CPUFeatures().AVX {
		t.Error("AVX backend selected on a CPU without AVX")
	}
}

func TestDispatchLevelString(t *testing.T) {
	tests := []struct {
		level DispatchLevel
		want  string
	}{
		{DispatchScalar, "scalar"},
		{DispatchAVX, "avx"},
		{DispatchLevel(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("DispatchLevel(%d).String(): got %q, want %q", int(tt.level), got, tt.want)
		}
	}
}
