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

// Package server implements the arena's connection loop and command
// dispatcher (spec §4.3, §4.5): accept serially, read one command per
// connection, dispatch it against the arena, write one reply, close.
package server

import (
	"bufio"
	"context"
	"fmt"
	"net"
	"time"

	"github.com/arenaproto/memarena/arena"
	"github.com/arenaproto/memarena/internal/log"
	"github.com/arenaproto/memarena/proto"
)

// readBufferSize is the implementation-defined receive buffer floor
// required by spec §4.3 ("at least 1024 bytes").
const readBufferSize = 4096

// Options configures a Server beyond the bare listen address.
type Options struct {
	// ReadTimeout bounds how long a connection may sit idle before the
	// server gives up on it. The original had none (spec §5 calls this
	// out as a known gap); an implementation SHOULD set one, so this one
	// does, defaulting to 30s when zero.
	ReadTimeout time.Duration
	// RecentHistory bounds the in-memory diagnostic ring (0 or less
	// selects the default of 128 entries).
	RecentHistory int
}

// Server accepts connections on a single listening socket and dispatches
// one command per accepted connection against arena (spec §4.5).
type Server struct {
	arena  *arena.Arena
	opts   Options
	ln     net.Listener
	recent *recentRing
}

// New constructs a Server bound to arena. It does not listen yet; call
// ListenAndServe.
func New(a *arena.Arena, opts Options) *Server {
	if opts.ReadTimeout == 0 {
		opts.ReadTimeout = 30 * time.Second
	}
	history := opts.RecentHistory
	if history <= 0 {
		history = 128
	}
	return &Server{arena: a, opts: opts, recent: newRecentRing(history)}
}

// ListenAndServe binds addr with address reuse and runs the accept loop
// until ctx is canceled or Close is called. No explicit listen backlog is
// set; the socket gets the backlog the Go runtime takes from the OS.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	lc := net.ListenConfig{}
	ln, err := lc.Listen(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}
	s.ln = ln
	log.Infof("server: listening on %s", addr)

	go func() {
		<-ctx.Done()
		_ = ln.Close()
	}()

	for {
		conn, err := ln.Accept()
		if err != nil {
			select {
			case <-ctx.Done():
				return nil
			default:
			}
			log.Errorf("server: accept: %v", err)
			continue
		}
		s.handle(conn)
	}
}

// Close stops accepting new connections.
func (s *Server) Close() error {
	if s.ln == nil {
		return nil
	}
	return s.ln.Close()
}

// RecentHistory renders the diagnostic ring of recently dispatched
// commands, an addition over the original protocol (SPEC_FULL.md §2).
func (s *Server) RecentHistory() string {
	return s.recent.render()
}

// handle serves exactly one command on conn then closes it (spec §4.3,
// §4.5). Panics and I/O errors are contained here; they never reach the
// accept loop.
func (s *Server) handle(conn net.Conn) {
	defer conn.Close()
	defer func() {
		if r := recover(); r != nil {
			log.Errorf("server: recovered from panic handling %s: %v", conn.RemoteAddr(), r)
		}
	}()

	_ = conn.SetReadDeadline(time.Now().Add(s.opts.ReadTimeout))

	raw, err := readCommand(conn)
	if err != nil {
		log.Errorf("server: read from %s: %v", conn.RemoteAddr(), err)
		return
	}

	start := time.Now()
	reply := s.dispatchLine(raw)
	s.recent.record(firstToken(raw), outcomeOf(reply), time.Since(start))

	if _, err := conn.Write([]byte(reply)); err != nil {
		log.Errorf("server: write to %s: %v", conn.RemoteAddr(), err)
	}
}

// dispatchLine parses and dispatches a raw command line, rendering a
// parse failure the same way spec §4.1 renders any other malformed
// command.
func (s *Server) dispatchLine(raw string) string {
	cmd, err := proto.Parse(raw)
	if err != nil {
		log.Warnf("server: malformed command %q: %v", raw, err)
		return proto.UnknownCommandResponse
	}
	return dispatch(s.arena, cmd)
}

func firstToken(raw string) string {
	for i, r := range raw {
		if r == ' ' || r == '\t' || r == '\r' || r == '\n' {
			return raw[:i]
		}
	}
	return raw
}

func outcomeOf(reply string) string {
	if len(reply) >= len(errorPrefix) && reply[:len(errorPrefix)] == errorPrefix {
		return "error"
	}
	return "ok"
}

const errorPrefix = "error:"

func readCommand(conn net.Conn) (string, error) {
	buf := make([]byte, readBufferSize)
	r := bufio.NewReader(conn)
	n, err := r.Read(buf)
	if n == 0 && err != nil {
		return "", err
	}
	return string(buf[:n]), nil
}
