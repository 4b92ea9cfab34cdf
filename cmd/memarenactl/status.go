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

const cmdStatusShort = "Show arena status and host memory pressure"

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: cmdStatusShort,
		Run: func(cmd *cobra.Command, args []string) {
			resp, err := client.SendRaw("status")
			if err != nil {
				errout("status: %v\n", err)
				return
			}
			fmt.Println(resp)

			hostLine, err := hostMemSummary()
			if err != nil {
				errout("host memory: %v\n", err)
				return
			}
			fmt.Println(hostLine)
		},
	}
}
