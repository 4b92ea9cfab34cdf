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

	"github.com/shirou/gopsutil/v3/mem"
	"github.com/spf13/cobra"
)

const cmdHostMemShort = "Show the host's physical memory pressure"

// hostMemSummary reports the host's physical memory pressure (RAM totals
// from gopsutil's mem.VirtualMemory), the same role
// space_manager.go's disk stat probes play for disk capacity, generalized
// to memory for this arena's domain.
func hostMemSummary() (string, error) {
	v, err := mem.VirtualMemory()
	if err != nil {
		return "", fmt.Errorf("memarenactl: read host memory: %w", err)
	}
	return fmt.Sprintf("host memory: total=%d used=%d (%.1f%%) available=%d",
		v.Total, v.Used, v.UsedPercent, v.Available), nil
}

func newHostMemCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hostmem",
		Short: cmdHostMemShort,
		Run: func(cmd *cobra.Command, args []string) {
			line, err := hostMemSummary()
			if err != nil {
				errout("%v\n", err)
				return
			}
			fmt.Println(line)
		},
	}
}
