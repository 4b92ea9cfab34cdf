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

// Command memarenad is the arena server: it owns one contiguous byte
// buffer, carves typed sub-blocks out of it on request, and serves the
// text protocol described in spec §4.3 over TCP (spec §2).
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/jacobsa/daemonize"

	"github.com/arenaproto/memarena/arena"
	"github.com/arenaproto/memarena/config"
	"github.com/arenaproto/memarena/internal/log"
	"github.com/arenaproto/memarena/server"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	execPath, err := os.Executable()
	if err != nil {
		return fmt.Errorf("memarenad: resolve executable path: %w", err)
	}
	execDir := filepath.Dir(execPath)

	opts, err := config.Parse(os.Args[1:], execDir)
	if err != nil {
		return err
	}

	if !opts.Foreground {
		return startDaemon(execPath)
	}

	log.Init(log.ParseLevel(opts.LogLevel), nil)

	a := arena.New(opts.Bytes())
	if err := a.SetDumpFolder(opts.DumpFolder); err != nil {
		_ = daemonize.SignalOutcome(err)
		return err
	}

	srv := server.New(a, server.Options{})

	ctx, cancel := context.WithCancel(context.Background())
	interceptSignal(cancel)

	log.Infof("memarenad: arena of %d bytes, listening on %s, dumps in %s",
		opts.Bytes(), opts.Addr(), opts.DumpFolder)
	_ = daemonize.SignalOutcome(nil)

	return srv.ListenAndServe(ctx, opts.Addr())
}

// startDaemon re-execs the process in the background and waits for the
// child to report success, mirroring cmd.go's startDaemon().
func startDaemon(execPath string) error {
	args := append([]string{"-f"}, os.Args[1:]...)
	env := []string{fmt.Sprintf("PATH=%s", os.Getenv("PATH"))}
	if err := daemonize.Run(execPath, args, env, os.Stdout); err != nil {
		return fmt.Errorf("memarenad: daemonize: %w", err)
	}
	return nil
}

func interceptSignal(cancel context.CancelFunc) {
	sigC := make(chan os.Signal, 1)
	signal.Notify(sigC, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigC
		log.Infof("memarenad: received signal %s, shutting down", sig)
		cancel()
	}()
}
