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

// Command memarenactl is the operator CLI for talking directly to a
// running memarenad: it sends raw protocol commands and prints the
// server's diagnostic replies (spec §4.5).
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arenaproto/memarena/client"
)

const (
	cliName  = "memarenactl"
	cliShort = "Operate a memarenad arena server"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		errout("%v\n", err)
		os.Exit(1)
	}
}

func errout(format string, a ...interface{}) {
	fmt.Fprintf(os.Stderr, format, a...)
}

func newRootCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   cliName,
		Short: cliShort,
	}
	cmd.PersistentFlags().StringVar(&addr, "addr", "127.0.0.1:8080", "memarenad address")
	cmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		client.Init(addr)
	}

	cmd.AddCommand(
		newStatusCmd(),
		newMapCmd(),
		newCreateCmd(),
		newGetCmd(),
		newSetCmd(),
		newIncreaseCmd(),
		newDecreaseCmd(),
		newHostMemCmd(),
	)
	return cmd
}
