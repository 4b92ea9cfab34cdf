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

package client

// Char distinguishes a single wire "char" from a numeric byte: Go has no
// built-in char type distinct from byte, so this named type carries the
// distinction the wire grammar needs (spec §4.4 type mapping).
type Char byte

// Raw is an arbitrary byte blob mapped to the wire's "raw" tag — the
// unsized fallback for anything that isn't one of the other scalars
// (spec §3: block type_tag "raw").
type Raw []byte

// nullID is the sentinel id a Handle holds before it is bound, or after
// Drop (spec §4.4: "Null, sentinel id, conventionally a negative value").
// Use NewHandle[T]() for a default-constructed Handle; a bare `var h
// Handle[T]` is NOT Null (its id field's Go zero value is 0, not nullID).
const nullID = -1
