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

// Package config defines the arena server's startup configuration (spec
// §6): listening port, arena size, and dump folder, sourced from flags or a
// config file the way cmd.go's role switch sources role/logDir/logLevel.
package config

import (
	"fmt"
	"path/filepath"

	flags "github.com/jessevdk/go-flags"
)

const (
	defaultPort     = 8080
	bytesPerMebibyte = 1024 * 1024
)

// Options is the typed flag surface for memarenad, parsed with
// jessevdk/go-flags instead of the teacher's raw `flag` package — the same
// ambient concern, a stricter domain (mebibyte sizes, paths) benefits from
// a typed struct with per-field tags.
type Options struct {
	Port        int    `long:"port" description:"listening TCP port" default:"8080"`
	MemSizeMB   int    `long:"memsize" description:"arena size in mebibytes" required:"true"`
	DumpFolder  string `long:"dumpFolder" description:"directory for the action log" required:"true"`
	LogLevel    string `long:"logLevel" description:"debug|info|warn|error" default:"info"`
	Foreground  bool   `short:"f" long:"foreground" description:"run in the foreground instead of daemonizing"`
	ConfigFile  string `short:"c" long:"config" description:"path to a JSON config file (overrides the flags above)"`
}

// Parse parses argv into Options, resolving DumpFolder relative to execDir
// when it isn't absolute (spec §6).
func Parse(argv []string, execDir string) (*Options, error) {
	var opts Options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.ParseArgs(argv); err != nil {
		return nil, err
	}

	if opts.ConfigFile != "" {
		fileOpts, err := loadFile(opts.ConfigFile)
		if err != nil {
			return nil, err
		}
		opts = *fileOpts
	}

	if opts.Port <= 0 {
		opts.Port = defaultPort
	}
	if opts.MemSizeMB <= 0 {
		return nil, fmt.Errorf("config: --memsize must be > 0")
	}
	if opts.DumpFolder == "" {
		return nil, fmt.Errorf("config: --dumpFolder is required")
	}
	if !filepath.IsAbs(opts.DumpFolder) {
		opts.DumpFolder = filepath.Join(execDir, opts.DumpFolder)
	}
	return &opts, nil
}

// Bytes converts MemSizeMB to a byte count (spec §6: "bytes = MB x 1024 x 1024").
func (o *Options) Bytes() int {
	return o.MemSizeMB * bytesPerMebibyte
}

// Addr returns the host:port string to listen on.
func (o *Options) Addr() string {
	return fmt.Sprintf(":%d", o.Port)
}
