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
	"fmt"
	"sync/atomic"
)

// ContractError describes a violated precondition, such as a zero divisor or
// an out-of-range lane index. It is only ever produced in builds tagged
// hwydebug; release builds skip the checks and perform the operation anyway.
type ContractError struct {
	Msg string
}

func (e *ContractError) Error() string {
	return "hwy: contract violation: " + e.Msg
}

// AssertHandler receives every failed contract check.
type AssertHandler func(err *ContractError)

var assertHandler atomic.Pointer[AssertHandler]

func init() {
	h := AssertHandler(panicHandler)
	assertHandler.Store(&h)
}

func panicHandler(err *ContractError) {
	panic(err)
}

// SetAssertHandler installs h as the contract-check handler and returns the
// previous one. A nil h restores the default handler, which panics with the
// *ContractError.
func SetAssertHandler(h AssertHandler) AssertHandler {
	if h == nil {
		h = panicHandler
	}
	prev := assertHandler.Swap(&h)
	return *prev
}

// DebugChecks reports whether contract checks are compiled in.
func DebugChecks() bool {
	return debugChecks
}

// Assert calls the installed handler when cond is false. Without the
// hwydebug build tag the call compiles to nothing.
func Assert(cond bool, format string, args ...any) {
	if debugChecks && !cond {
		(*assertHandler.Load())(&ContractError{Msg: fmt.Sprintf(format, args...)})
	}
}
