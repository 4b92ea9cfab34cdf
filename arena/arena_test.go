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

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// property 1: every live block and free extent occupies a disjoint region
// of the buffer, and together they partition it exactly.
func TestArenaPartitionInvariant(t *testing.T) {
	a := New(128)
	id1, err := a.Create(16, TypeInt)
	require.NoError(t, err)
	id2, err := a.Create(32, TypeRaw)
	require.NoError(t, err)

	covered := make([]bool, 128)
	mark := func(off, size int) {
		for i := off; i < off+size; i++ {
			require.False(t, covered[i], "offset %d covered twice", i)
			covered[i] = true
		}
	}
	mark(a.blocks[id1].Offset, a.blocks[id1].Size)
	mark(a.blocks[id2].Offset, a.blocks[id2].Size)
	for _, e := range a.free.snapshot() {
		mark(e.Offset, e.Size)
	}
	for i, c := range covered {
		require.True(t, c, "offset %d not covered by any block or free extent", i)
	}
}

// property 2: the free list never holds two adjacent extents.
func TestArenaFreeListNeverAdjacent(t *testing.T) {
	a := New(64)
	id1, err := a.Create(16, TypeRaw)
	require.NoError(t, err)
	id2, err := a.Create(16, TypeRaw)
	require.NoError(t, err)
	id3, err := a.Create(16, TypeRaw)
	require.NoError(t, err)

	require.NoError(t, a.DecreaseRef(id1))
	require.NoError(t, a.DecreaseRef(id2))
	require.NoError(t, a.DecreaseRef(id3))

	free := a.free.snapshot()
	require.Len(t, free, 1, "adjacent free extents must coalesce into one")
	require.Equal(t, 64, free[0].Size)
}

// property 3: ids are unique and monotonically increasing.
func TestArenaIDsMonotonic(t *testing.T) {
	a := New(256)
	var last int
	for i := 0; i < 10; i++ {
		id, err := a.Create(4, TypeInt)
		require.NoError(t, err)
		require.Greater(t, id, last)
		last = id
	}
}

// property 4: ref counts are conserved across increase/decrease pairs.
func TestArenaRefCountConservation(t *testing.T) {
	a := New(64)
	id, err := a.Create(4, TypeInt)
	require.NoError(t, err)
	require.Equal(t, 1, a.blocks[id].RefCount)

	require.NoError(t, a.IncreaseRef(id))
	require.NoError(t, a.IncreaseRef(id))
	require.Equal(t, 3, a.blocks[id].RefCount)

	require.NoError(t, a.DecreaseRef(id))
	require.NoError(t, a.DecreaseRef(id))
	require.Equal(t, 1, a.blocks[id].RefCount)

	require.NoError(t, a.DecreaseRef(id))
	_, ok := a.blocks[id]
	require.False(t, ok, "block must be freed once refCount hits zero")
}

// property 5: a set/get round trip recovers the written value, per scalar
// type.
func TestArenaSetGetRoundTrip(t *testing.T) {
	cases := []struct {
		tag     TypeTag
		size    int
		literal string
	}{
		{TypeInt, 4, "42"},
		{TypeLong, 8, "-9000000000"},
		{TypeFloat, 4, "3.5"},
		{TypeDouble, 8, "2.718281828"},
		{TypeBool, 1, "true"},
		{TypeChar, 1, "q"},
		{TypeString, 16, "hello arena"},
		{TypeByte, 1, "7"},
	}
	for _, c := range cases {
		t.Run(string(c.tag), func(t *testing.T) {
			a := New(64)
			id, err := a.Create(c.size, c.tag)
			require.NoError(t, err)
			_, err = a.Set(id, c.literal)
			require.NoError(t, err)
			got, err := a.Get(id)
			require.NoError(t, err)
			require.Equal(t, c.literal, got)
		})
	}
}

// property 6: create fails with ErrNoSpace once first-fit can't find room,
// never by silently growing the buffer.
func TestArenaCreateNoSpace(t *testing.T) {
	a := New(16)
	_, err := a.Create(16, TypeRaw)
	require.NoError(t, err)
	_, err = a.Create(1, TypeByte)
	require.ErrorIs(t, err, ErrNoSpace)
}

// S1: fresh arena reports all capacity free and zero blocks.
func TestScenarioFreshArenaStatus(t *testing.T) {
	a := New(100)
	require.Equal(t, "total=100, used=0, free=100, blocks=0", a.Status())
}

// S2: create then status reflects the allocation.
func TestScenarioCreateUpdatesStatus(t *testing.T) {
	a := New(100)
	_, err := a.Create(10, TypeInt)
	require.NoError(t, err)
	require.Equal(t, "total=100, used=10, free=90, blocks=1", a.Status())
}

// S3: set on an unknown id surfaces ErrUnknown as the error's cause.
func TestScenarioSetUnknownBlock(t *testing.T) {
	a := New(64)
	_, err := a.Set(999, "5")
	require.ErrorIs(t, err, ErrUnknown)
}

// S4: decreasing the last reference to zero frees the block's space for
// reuse by a later create.
func TestScenarioFreedBlockIsReused(t *testing.T) {
	a := New(32)
	id1, err := a.Create(32, TypeRaw)
	require.NoError(t, err)
	require.NoError(t, a.DecreaseRef(id1))

	id2, err := a.Create(32, TypeRaw)
	require.NoError(t, err)
	require.NotEqual(t, id1, id2, "ids are never reused, only the space is")
	require.Equal(t, a.blocks[id1], (*Block)(nil), "freed block must be gone from the live map")
}

// S5: Map lists every live block and free extent in a stable, parseable
// text form.
func TestScenarioMapListsBlocksAndFreeExtents(t *testing.T) {
	a := New(32)
	id, err := a.Create(8, TypeInt)
	require.NoError(t, err)
	_, err = a.Set(id, "5")
	require.NoError(t, err)

	m := a.Map()
	require.Contains(t, m, fmt.Sprintf("id=%d", id))
	require.Contains(t, m, "value=5")
	require.Contains(t, m, "free offset=8 size=24")
}

// S6: Create rejects a size smaller than the type's minimum.
func TestScenarioCreateTooSmall(t *testing.T) {
	a := New(64)
	_, err := a.Create(2, TypeInt)
	require.ErrorIs(t, err, ErrTooSmall)
}

func TestTruncatedAdvisoryOnOversizedString(t *testing.T) {
	a := New(64)
	id, err := a.Create(4, TypeString)
	require.NoError(t, err)
	tr, err := a.Set(id, strings.Repeat("x", 10))
	require.NoError(t, err)
	require.NotNil(t, tr)
	require.Equal(t, 10, tr.Requested)
}

func TestArenaIncreaseDecreaseUnknownID(t *testing.T) {
	a := New(16)
	require.ErrorIs(t, a.IncreaseRef(42), ErrUnknown)
	require.ErrorIs(t, a.DecreaseRef(42), ErrUnknown)
}

// sanity check that minSize disagreements surface as ErrBadType, not a panic.
func TestArenaCreateBadType(t *testing.T) {
	a := New(16)
	_, err := a.Create(4, TypeTag("nonsense"))
	require.ErrorIs(t, err, ErrBadType)
}

// documents the resolution of the race between a dropped reference and a
// concurrent set/get on the same id (spec §9 open question 2): once
// DecreaseRef frees a block, any later Get on that id surfaces ErrUnknown
// rather than reading stale or reused memory. There is no session concept
// to serialize the two, by design — callers that share a handle across
// goroutines must synchronize themselves.
func TestSetAfterConcurrentFree(t *testing.T) {
	a := New(16)
	id, err := a.Create(4, TypeInt)
	require.NoError(t, err)
	require.NoError(t, a.DecreaseRef(id))

	_, err = a.Set(id, "1")
	require.ErrorIs(t, err, ErrUnknown)
	_, err = a.Get(id)
	require.ErrorIs(t, err, ErrUnknown)
}
