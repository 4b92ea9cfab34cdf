// Copyright 2018 The CubeFS Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

package arena

import "errors"

// Error kinds reported by the allocator (spec §7). All are delivered to the
// caller as the text of the response, never as a process-level failure.
var (
	ErrNoSpace     = errors.New("no free extent fits the request")
	ErrTooSmall    = errors.New("size too small for type")
	ErrBadType     = errors.New("unrecognized type tag")
	ErrUnknown     = errors.New("unknown block id")
	ErrParseFailed = errors.New("value could not be parsed for block type")
)

// Truncated is not a failure: Set still writes the block and returns this
// as an advisory alongside a nil error.
type Truncated struct {
	Requested int
	Written   int
}

func (t *Truncated) Error() string {
	return "value truncated to fit block"
}
