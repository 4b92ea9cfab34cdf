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
	"strings"

	"github.com/spf13/cobra"

	"github.com/arenaproto/memarena/client"
)

const cmdSetShort = "Assign a block's value (set <id> <value...>)"

func newSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <id> <value...>",
		Short: cmdSetShort,
		Args:  cobra.MinimumNArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			value := strings.Join(args[1:], " ")
			resp, err := client.SendRaw(fmt.Sprintf("set %s %s", args[0], value))
			if err != nil {
				errout("set: %v\n", err)
				return
			}
			fmt.Println(resp)
		},
	}
}
