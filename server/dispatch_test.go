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

package server

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arenaproto/memarena/arena"
	"github.com/arenaproto/memarena/proto"
)

func TestDispatchCreateGetSetRoundTrip(t *testing.T) {
	a := arena.New(64)

	createReply := dispatch(a, proto.Command{Verb: proto.VerbCreate, Size: 4, Type: "int"})
	id, ok := proto.ParseCreatedID(createReply)
	require.True(t, ok, "create reply must carry ID=: %s", createReply)

	setReply := dispatch(a, proto.Command{Verb: proto.VerbSet, ID: id, Value: "41"})
	require.NotContains(t, setReply, "error:")

	getReply := dispatch(a, proto.Command{Verb: proto.VerbGet, ID: id})
	val, ok := proto.ParseGetValue(getReply)
	require.True(t, ok)
	require.Equal(t, "41", val)
}

func TestDispatchUnknownIDSurfacesErrorPrefix(t *testing.T) {
	a := arena.New(64)
	reply := dispatch(a, proto.Command{Verb: proto.VerbGet, ID: 999})
	require.Contains(t, reply, "error:")
}

func TestDispatchIncreaseDecreaseLifecycle(t *testing.T) {
	a := arena.New(64)
	createReply := dispatch(a, proto.Command{Verb: proto.VerbCreate, Size: 4, Type: "int"})
	id, _ := proto.ParseCreatedID(createReply)

	incReply := dispatch(a, proto.Command{Verb: proto.VerbIncrease, ID: id})
	require.NotContains(t, incReply, "error:")

	require.NotContains(t, dispatch(a, proto.Command{Verb: proto.VerbDecrease, ID: id}), "error:")
	require.NotContains(t, dispatch(a, proto.Command{Verb: proto.VerbDecrease, ID: id}), "error:")

	getReply := dispatch(a, proto.Command{Verb: proto.VerbGet, ID: id})
	require.Contains(t, getReply, "error:", "block should be freed after refCount reaches zero")
}

func TestDispatchStatusAndMap(t *testing.T) {
	a := arena.New(64)
	require.Contains(t, dispatch(a, proto.Command{Verb: proto.VerbStatus}), "total=64")

	createReply := dispatch(a, proto.Command{Verb: proto.VerbCreate, Size: 4, Type: "int"})
	id, _ := proto.ParseCreatedID(createReply)
	mapReply := dispatch(a, proto.Command{Verb: proto.VerbMap})
	require.Contains(t, mapReply, "id=")
	_ = id
}

func TestDispatchUnknownVerbFallsBack(t *testing.T) {
	reply := dispatch(arena.New(16), proto.Command{Verb: proto.Verb("bogus")})
	require.Equal(t, proto.UnknownCommandResponse, reply)
}
