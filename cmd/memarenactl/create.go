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

const cmdCreateShort = "Allocate a block (create <size> <type>)"

func newCreateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create <size> <type>",
		Short: cmdCreateShort,
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			resp, err := client.SendRaw(fmt.Sprintf("create %s %s", args[0], args[1]))
			if err != nil {
				errout("create: %v\n", err)
				return
			}
			fmt.Println(resp)
		},
	}
}
