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

// Package dump implements the arena's action log: an append-only,
// human-readable trace of every state-changing operation, written for
// offline inspection (spec §4.2).
package dump

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/arenaproto/memarena/internal/log"
)

const fileName = "memory_dump.txt"

// Writer appends self-contained entries to <folder>/memory_dump.txt. It is
// safe to call Append concurrently only insofar as its caller already holds
// whatever lock serializes the underlying status/map snapshots — Writer
// itself does no additional locking, matching spec §4.2's "while holding the
// arena lock" contract (the lock lives in the arena package, not here).
type Writer struct {
	folder string
}

// New returns a Writer with no folder configured; Append is then a no-op
// until SetFolder is called, mirroring setDumpFolder("") in the original.
func New() *Writer {
	return &Writer{}
}

// SetFolder records the directory dump entries are appended to, creating it
// if it does not already exist.
func (w *Writer) SetFolder(folder string) error {
	if folder == "" {
		w.folder = ""
		return nil
	}
	if err := os.MkdirAll(folder, 0o755); err != nil {
		return fmt.Errorf("dump: create folder %q: %w", folder, err)
	}
	w.folder = folder
	return nil
}

// Append writes one record: a millisecond-precision timestamp, the action
// summary, the status snapshot, and the map snapshot. Failures are logged
// and swallowed — the dump is diagnostic, not part of the operation's
// success/failure contract (spec §4.2: "Writes are best-effort").
func (w *Writer) Append(action, status, memMap string) {
	if w.folder == "" {
		return
	}
	path := filepath.Join(w.folder, fileName)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.Errorf("dump: open %q: %v", path, err)
		return
	}
	defer f.Close()

	entry := fmt.Sprintf("[%s] %s\n%s\n%s\n", timestamp(), action, status, memMap)
	if _, err := f.WriteString(entry); err != nil {
		log.Errorf("dump: write %q: %v", path, err)
	}
}

func timestamp() string {
	return time.Now().Format("2006-01-02 15:04:05.000")
}
