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

// Package arena implements the remote memory arena: a single contiguous
// byte buffer carved into typed, reference-counted blocks with a coalescing
// free list, guarded by one lock and traced through an append-only action
// log (spec §3, §4.1, §4.2).
package arena

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/arenaproto/memarena/arena/dump"
	"github.com/arenaproto/memarena/internal/log"
)

// Arena owns one buffer of fixed capacity and every block carved from it.
// Every exported method acquires mu for its whole duration, including the
// synchronous dump write, per spec §5. Rather than a recursive mutex, the
// log path (which itself needs a status/map snapshot) is built from the
// already-locked internal helpers (statusLocked/mapLocked) so no method
// ever re-enters mu.
type Arena struct {
	mu       sync.Mutex
	buf      []byte
	base     uintptr
	blocks   map[int]*Block
	order    []int // block ids in creation order, for deterministic Map output
	free     *freeList
	nextID   int
	usedSize int
	dump     *dump.Writer
}

// New allocates a buffer of capacity bytes and returns a ready Arena.
func New(capacity int) *Arena {
	buf := make([]byte, capacity)
	a := &Arena{
		buf:    buf,
		blocks: make(map[int]*Block),
		free:   newFreeList(capacity),
		nextID: 1,
		dump:   dump.New(),
	}
	if len(buf) > 0 {
		a.base = uintptrOf(buf)
	}
	return a
}

// SetDumpFolder configures the directory subsequent state-changing
// operations append their action-log entry to.
func (a *Arena) SetDumpFolder(folder string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.dump.SetFolder(folder)
}

// Create carves a size-byte block of the given type using first-fit,
// returning its id (spec §4.1).
func (a *Arena) Create(size int, tag TypeTag) (id int, err error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	min, ok := minSize(tag)
	if !ok {
		return 0, ErrBadType
	}
	if size < min {
		return 0, ErrTooSmall
	}

	idx := a.free.firstFit(size)
	if idx < 0 {
		return 0, ErrNoSpace
	}
	offset := a.free.take(idx, size)

	id = a.nextID
	a.nextID++
	blk := &Block{ID: id, Offset: offset, Size: size, Type: tag, RefCount: 1}
	a.blocks[id] = blk
	a.order = append(a.order, id)
	a.usedSize += size

	a.logAction(fmt.Sprintf("CREATE -> ID=%d, size=%d, type=%s", id, size, tag))
	return id, nil
}

// Set parses literal per the block's type and writes it into the block
// (spec §4.1). A non-nil *Truncated return alongside a nil error is
// advisory: the write still happened.
func (a *Arena) Set(id int, literal string) (*Truncated, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	blk, ok := a.blocks[id]
	if !ok {
		return nil, fmt.Errorf("block %d: %w", id, ErrUnknown)
	}
	region := a.buf[blk.Offset : blk.Offset+blk.Size]
	tr, err := writeScalar(region, blk.Type, literal)
	if err != nil {
		return nil, err
	}
	a.logAction(fmt.Sprintf("SET -> ID=%d, value=%q", id, literal))
	return tr, nil
}

// Get formats the block's current content per its type (spec §4.1).
func (a *Arena) Get(id int) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	blk, ok := a.blocks[id]
	if !ok {
		return "", fmt.Errorf("block %d: %w", id, ErrUnknown)
	}
	region := a.buf[blk.Offset : blk.Offset+blk.Size]
	return readScalar(region, blk.Type)
}

// IncreaseRef increments a block's reference count. An unknown id is
// reported to the caller but does not abort anything else (spec §4.1).
func (a *Arena) IncreaseRef(id int) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	blk, ok := a.blocks[id]
	if !ok {
		log.Warnf("increase: unknown block %d", id)
		return fmt.Errorf("block %d: %w", id, ErrUnknown)
	}
	blk.RefCount++
	a.logAction(fmt.Sprintf("INCREASE -> ID=%d, refCount=%d", id, blk.RefCount))
	return nil
}

// DecreaseRef decrements a block's reference count, freeing it and
// coalescing the free list when the count reaches zero (spec §4.1).
func (a *Arena) DecreaseRef(id int) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	blk, ok := a.blocks[id]
	if !ok {
		log.Warnf("decrease: unknown block %d", id)
		return fmt.Errorf("block %d: %w", id, ErrUnknown)
	}
	blk.RefCount--
	if blk.RefCount > 0 {
		a.logAction(fmt.Sprintf("DECREASE -> ID=%d, refCount=%d", id, blk.RefCount))
		return nil
	}

	delete(a.blocks, id)
	a.removeFromOrder(id)
	a.usedSize -= blk.Size
	a.free.release(FreeExtent{Offset: blk.Offset, Size: blk.Size})
	a.logAction(fmt.Sprintf("DECREASE -> ID=%d, LIBERATED", id))
	return nil
}

func (a *Arena) removeFromOrder(id int) {
	for i, v := range a.order {
		if v == id {
			a.order = append(a.order[:i], a.order[i+1:]...)
			return
		}
	}
}

// Status returns the text summary of total/used/free bytes and live block
// count (spec §4.1).
func (a *Arena) Status() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.statusLocked()
}

func (a *Arena) statusLocked() string {
	return fmt.Sprintf("total=%d, used=%d, free=%d, blocks=%d",
		len(a.buf), a.usedSize, a.free.totalFree(), len(a.blocks))
}

// Map returns the text listing of every live block and free extent (spec
// §4.1). The reported Address is diagnostic-only (spec §9 note 3).
func (a *Arena) Map() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.mapLocked()
}

func (a *Arena) mapLocked() string {
	var sb strings.Builder
	for _, id := range a.order {
		blk := a.blocks[id]
		region := a.buf[blk.Offset : blk.Offset+blk.Size]
		val, err := readScalar(region, blk.Type)
		if err != nil {
			val = "<unreadable>"
		}
		fmt.Fprintf(&sb, "id=%d offset=%d addr=0x%x size=%d type=%s refCount=%d value=%s\n",
			blk.ID, blk.Offset, blk.Address(a.base), blk.Size, blk.Type, blk.RefCount, val)
	}
	free := a.free.snapshot()
	sort.Slice(free, func(i, j int) bool { return free[i].Offset < free[j].Offset })
	for _, e := range free {
		fmt.Fprintf(&sb, "free offset=%d size=%d\n", e.Offset, e.Size)
	}
	return sb.String()
}

// logAction appends one self-contained entry to the action log while still
// holding mu, per spec §4.2. Callers must already hold mu.
func (a *Arena) logAction(action string) {
	a.dump.Append(action, a.statusLocked(), a.mapLocked())
}
