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

package client_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/arenaproto/memarena/client"
	"github.com/arenaproto/memarena/client/mocks"
)

func withMockDialer(t *testing.T) *mocks.MockDialer {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := mocks.NewMockDialer(ctrl)
	client.SetDialer(m)
	return m
}

func TestNewSendsCreateAndBindsID(t *testing.T) {
	m := withMockDialer(t)
	m.EXPECT().SendRequest("create 4 int").Return("block created with ID=7", nil)

	h, err := client.New[int]()
	require.NoError(t, err)
	require.Equal(t, 7, h.ID())
	require.False(t, h.IsNull())
}

func TestWriteSendsEncodedSet(t *testing.T) {
	m := withMockDialer(t)
	m.EXPECT().SendRequest("create 4 int").Return("block created with ID=3", nil)
	h, err := client.New[int]()
	require.NoError(t, err)

	m.EXPECT().SendRequest("set 3 99").Return("value assigned to block 3", nil)
	require.NoError(t, h.Write(99))
}

func TestReadDecodesGetResponse(t *testing.T) {
	m := withMockDialer(t)
	m.EXPECT().SendRequest("create 4 int").Return("block created with ID=3", nil)
	h, err := client.New[int]()
	require.NoError(t, err)

	m.EXPECT().SendRequest("get 3").Return("block 3 -> 99", nil)
	v, err := h.Read()
	require.NoError(t, err)
	require.Equal(t, 99, v)
}

func TestCopyIncreasesRefCount(t *testing.T) {
	m := withMockDialer(t)
	m.EXPECT().SendRequest("create 4 int").Return("block created with ID=9", nil)
	h, err := client.New[int]()
	require.NoError(t, err)

	m.EXPECT().SendRequest("increase 9").Return("refCount increased on block 9", nil)
	h2, err := h.Copy()
	require.NoError(t, err)
	require.Equal(t, h.ID(), h2.ID())
}

func TestAssignReleasesOldAndAdoptsNew(t *testing.T) {
	m := withMockDialer(t)
	m.EXPECT().SendRequest("create 4 int").Return("block created with ID=1", nil)
	h1, err := client.New[int]()
	require.NoError(t, err)

	m.EXPECT().SendRequest("create 4 int").Return("block created with ID=2", nil)
	h2, err := client.New[int]()
	require.NoError(t, err)

	m.EXPECT().SendRequest("decrease 1").Return("refCount decreased on block 1", nil)
	m.EXPECT().SendRequest("increase 2").Return("refCount increased on block 2", nil)

	require.NoError(t, h1.Assign(h2))
	require.Equal(t, 2, h1.ID())
}

func TestAssignToSelfIsNoOp(t *testing.T) {
	m := withMockDialer(t)
	m.EXPECT().SendRequest("create 4 int").Return("block created with ID=5", nil)
	h, err := client.New[int]()
	require.NoError(t, err)

	// no SendRequest expectation set: self-assignment must not touch the wire.
	require.NoError(t, h.Assign(h))
	require.Equal(t, 5, h.ID())
}

func TestDropDecreasesAndGoesNull(t *testing.T) {
	m := withMockDialer(t)
	m.EXPECT().SendRequest("create 4 int").Return("block created with ID=4", nil)
	h, err := client.New[int]()
	require.NoError(t, err)

	m.EXPECT().SendRequest("decrease 4").Return("refCount decreased on block 4", nil)
	require.NoError(t, h.Drop())
	require.True(t, h.IsNull())
}

func TestOperationsOnNullHandleAreNoOps(t *testing.T) {
	withMockDialer(t) // no expectations: nothing should hit the wire

	h := client.NewHandle[int]()
	require.True(t, h.IsNull())
	require.NoError(t, h.Write(5))
	v, err := h.Read()
	require.NoError(t, err)
	require.Equal(t, 0, v)
	require.NoError(t, h.Drop())
}

func TestNewSizedUsesProvidedSizeAndTag(t *testing.T) {
	m := withMockDialer(t)
	m.EXPECT().SendRequest("create 32 string").Return("block created with ID=11", nil)

	h, err := client.NewSized[string](32)
	require.NoError(t, err)
	require.Equal(t, 11, h.ID())
}

func TestFromIDDoesNotTakeOwnership(t *testing.T) {
	withMockDialer(t) // no expectations: FromID must not touch the wire

	h := client.FromID[int](3)
	require.Equal(t, 3, h.ID())
}
