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

package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseDefaultsPortAndResolvesRelativeDumpFolder(t *testing.T) {
	opts, err := Parse([]string{"--memsize=64", "--dumpFolder=dumps"}, "/var/lib/memarenad")
	require.NoError(t, err)
	require.Equal(t, defaultPort, opts.Port)
	require.Equal(t, filepath.Join("/var/lib/memarenad", "dumps"), opts.DumpFolder)
	require.Equal(t, 64*bytesPerMebibyte, opts.Bytes())
	require.Equal(t, ":8080", opts.Addr())
}

func TestParseAbsoluteDumpFolderIsLeftAsIs(t *testing.T) {
	opts, err := Parse([]string{"--memsize=1", "--dumpFolder=/tmp/dumps"}, "/var/lib/memarenad")
	require.NoError(t, err)
	require.Equal(t, "/tmp/dumps", opts.DumpFolder)
}

func TestParseRejectsMissingMemSize(t *testing.T) {
	_, err := Parse([]string{"--dumpFolder=dumps"}, "/tmp")
	require.Error(t, err)
}

func TestParseRejectsZeroMemSize(t *testing.T) {
	_, err := Parse([]string{"--memsize=0", "--dumpFolder=dumps"}, "/tmp")
	require.Error(t, err)
}

func TestParseExplicitPort(t *testing.T) {
	opts, err := Parse([]string{"--memsize=8", "--dumpFolder=dumps", "--port=9090"}, "/tmp")
	require.NoError(t, err)
	require.Equal(t, 9090, opts.Port)
	require.Equal(t, ":9090", opts.Addr())
}
