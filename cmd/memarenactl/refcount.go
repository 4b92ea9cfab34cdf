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

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arenaproto/memarena/client"
)

const (
	cmdIncreaseShort = "Increase a block's ref_count (increase <id>)"
	cmdDecreaseShort = "Decrease a block's ref_count (decrease <id>)"
)

func newIncreaseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "increase <id>",
		Short: cmdIncreaseShort,
		Args:  cobra.ExactArgs(1),
		Run:   runRefcount("increase"),
	}
}

func newDecreaseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decrease <id>",
		Short: cmdDecreaseShort,
		Args:  cobra.ExactArgs(1),
		Run:   runRefcount("decrease"),
	}
}

func runRefcount(verb string) func(cmd *cobra.Command, args []string) {
	return func(cmd *cobra.Command, args []string) {
		resp, err := client.SendRaw(fmt.Sprintf("%s %s", verb, args[0]))
		if err != nil {
			errout("%s: %v\n", verb, err)
			return
		}
		fmt.Println(resp)
	}
}
