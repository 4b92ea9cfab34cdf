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

// Package client implements Handle[T], the remote-pointer abstraction of
// spec §4.4: an id-only value whose copy/assign/drop operations map onto
// the arena's reference-count lifecycle over the wire protocol defined by
// package proto.
package client

import (
	"fmt"

	"github.com/arenaproto/memarena/proto"
)

// Handle is a client-side handle for a remote block of type T. Its only
// state is the block id (spec §4.4: "A handle stores only an integer id").
// There is no destructor and no operator overloading (spec §9): Drop,
// Write, Read, Copy and Assign are named methods instead.
type Handle[T any] struct {
	id int
}

// NewHandle default-constructs a Null handle, bound to nothing.
func NewHandle[T any]() Handle[T] {
	return Handle[T]{id: nullID}
}

// New creates a new remote block sized sizeof(T) and returns a Handle bound
// to it (spec §4.4 "new<T>()"). Only fixed-size scalar types may use New;
// string and Raw must use NewSized.
func New[T any]() (Handle[T], error) {
	size, ok := fixedSize[T]()
	if !ok {
		return Handle[T]{id: nullID}, fmt.Errorf("client: %T has no fixed size, use NewSized", *new(T))
	}
	return NewSized[T](size)
}

// NewSized creates a new remote block of the given size and type tag
// derived from T, for variable-length types (string, Raw) or to override a
// scalar's default width.
func NewSized[T any](size int) (Handle[T], error) {
	resp, err := defaultDialer.SendRequest(fmt.Sprintf("create %d %s", size, typeTag[T]()))
	if err != nil {
		return Handle[T]{id: nullID}, err
	}
	id, ok := proto.ParseCreatedID(resp)
	if !ok {
		return Handle[T]{id: nullID}, fmt.Errorf("client: create failed: %s", resp)
	}
	return Handle[T]{id: id}, nil
}

// ID exposes the handle's current id, including the Null sentinel, for
// diagnostics, compound-structure serialization, and null checks
// (spec §4.4 "identity").
func (h Handle[T]) ID() int {
	return h.id
}

// IsNull reports whether the handle is bound to anything.
func (h Handle[T]) IsNull() bool {
	return h.id < 0
}

// FromID rebuilds a Handle from a raw id without contacting the server —
// used to decode a compound structure's embedded handle field (spec §4.4
// "Compound structures"). It does not take a new reference; callers that
// want ownership should call Copy explicitly.
func FromID[T any](id int) Handle[T] {
	return Handle[T]{id: id}
}

// Copy creates another owning reference to the same block, incrementing
// its ref_count on the server (spec §4.4 "copy from handle h").
func (h Handle[T]) Copy() (Handle[T], error) {
	if h.IsNull() {
		return Handle[T]{id: nullID}, nil
	}
	if _, err := defaultDialer.SendRequest(fmt.Sprintf("increase %d", h.id)); err != nil {
		return Handle[T]{id: nullID}, err
	}
	return Handle[T]{id: h.id}, nil
}

// Assign rebinds h to other's id (spec §4.4 "assign from handle h"):
// releases h's old reference if any, adopts other's id, and takes a new
// reference if other is bound. Assigning a handle to itself is a no-op.
func (h *Handle[T]) Assign(other Handle[T]) error {
	if h.id == other.id {
		return nil
	}
	if !h.IsNull() {
		if _, err := defaultDialer.SendRequest(fmt.Sprintf("decrease %d", h.id)); err != nil {
			return err
		}
	}
	h.id = nullID
	if !other.IsNull() {
		if _, err := defaultDialer.SendRequest(fmt.Sprintf("increase %d", other.id)); err != nil {
			return err
		}
	}
	h.id = other.id
	return nil
}

// Write assigns v to the remote block (spec §4.4 "assign from value v").
// A no-op when Null.
func (h Handle[T]) Write(v T) error {
	if h.IsNull() {
		return nil
	}
	literal, err := encode(v)
	if err != nil {
		return err
	}
	_, err = defaultDialer.SendRequest(fmt.Sprintf("set %d %s", h.id, literal))
	return err
}

// Read fetches and decodes the remote block's value, or T's zero value
// when Null (spec §4.4 "read value").
func (h Handle[T]) Read() (T, error) {
	var zero T
	if h.IsNull() {
		return zero, nil
	}
	resp, err := defaultDialer.SendRequest(fmt.Sprintf("get %d", h.id))
	if err != nil {
		return zero, err
	}
	val, ok := proto.ParseGetValue(resp)
	if !ok {
		return zero, fmt.Errorf("client: get failed: %s", resp)
	}
	return decode[T](val)
}

// Drop releases h's reference, if any, and transitions it to Null
// (spec §4.4 "drop"). Go has no destructors, so callers must call this
// explicitly — typically via defer, right after New/Copy.
func (h *Handle[T]) Drop() error {
	if h.IsNull() {
		return nil
	}
	id := h.id
	h.id = nullID
	_, err := defaultDialer.SendRequest(fmt.Sprintf("decrease %d", id))
	return err
}
