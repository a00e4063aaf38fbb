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
	"errors"
	"strings"
	"testing"
)

func TestSetAssertHandlerSwap(t *testing.T) {
	var seen []*ContractError
	prev := SetAssertHandler(func(err *ContractError) {
		seen = append(seen, err)
	})
	defer SetAssertHandler(prev)

	Assert(true, "never reported")
	Assert(false, "lane %d", 7)

	if !DebugChecks() {
		if len(seen) != 0 {
			t.Fatalf("release build reported %d contract errors", len(seen))
		}
		return
	}
	if len(seen) != 1 {
		t.Fatalf("got %d contract errors, want 1", len(seen))
	}
	if seen[0].Msg != "lane 7" {
		t.Errorf("Msg: got %q, want %q", seen[0].Msg, "lane 7")
	}
	if !strings.HasPrefix(seen[0].Error(), "hwy: contract violation:") {
		t.Errorf("Error: got %q", seen[0].Error())
	}
}

func TestDefaultHandlerPanics(t *testing.T) {
	if !DebugChecks() {
		t.Skip("contract checks need the hwydebug build tag")
	}
	SetAssertHandler(nil)

	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok {
			t.Fatalf("recovered %v, want a *ContractError", r)
		}
		var ce *ContractError
		if !errors.As(err, &ce) {
			t.Fatalf("recovered %T, want *ContractError", err)
		}
	}()
	Load4[float32](1, 2, 3, 4).Div(Load4[float32](1, 0, 1, 1))
	t.Fatal("Div by a zero lane did not panic")
}

func TestPermuteContract(t *testing.T) {
	if !DebugChecks() {
		t.Skip("contract checks need the hwydebug build tag")
	}
	var msg string
	prev := SetAssertHandler(func(err *ContractError) { msg = err.Msg })
	defer SetAssertHandler(prev)

	defer func() {
		// The handler returned, so the out-of-range index reaches the array.
		recover()
		if !strings.Contains(msg, "Permute") {
			t.Errorf("handler message: got %q", msg)
		}
	}()
	Load4[int32](1, 2, 3, 4).Permute(0, 1, 2, 5)
}
