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
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

// recentEntry is one row of the diagnostic ring that Server.RecentHistory
// renders. The ring is not part of the wire grammar: no protocol command
// or CLI flag returns it.
type recentEntry struct {
	seq     int64
	verb    string
	outcome string
	latency time.Duration
}

// recentRing keeps a bounded history of dispatched commands purely for
// operator diagnostics. It is never consulted by allocator logic, so it
// cannot affect any of the arena's invariants — it only observes.
type recentRing struct {
	mu    sync.Mutex
	cache *lru.Cache[int64, recentEntry]
	seq   int64
}

func newRecentRing(size int) *recentRing {
	c, err := lru.New[int64, recentEntry](size)
	if err != nil {
		// size <= 0 from misconfiguration; fall back to a minimal ring
		// rather than failing server startup over a diagnostics feature.
		c, _ = lru.New[int64, recentEntry](1)
	}
	return &recentRing{cache: c}
}

func (r *recentRing) record(verb, outcome string, latency time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := atomic.AddInt64(&r.seq, 1)
	r.cache.Add(n, recentEntry{seq: n, verb: verb, outcome: outcome, latency: latency})
}

// render formats the ring oldest-first for the CLI/status endpoint.
func (r *recentRing) render() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	keys := r.cache.Keys()
	var sb strings.Builder
	for _, k := range keys {
		e, ok := r.cache.Peek(k)
		if !ok {
			continue
		}
		fmt.Fprintf(&sb, "#%d %s -> %s (%s)\n", e.seq, e.verb, e.outcome, e.latency)
	}
	return sb.String()
}
