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

package proto

import (
	"fmt"
	"strconv"
	"strings"
)

// Response text is the only channel errors travel over (spec §7): there is
// no machine-readable status field, so these helpers are the bit-stable
// contract client and server must agree on.

// CreatedResponse formats a successful create reply. Clients scan for the
// substring "ID=" and read the following decimal (spec §4.3).
func CreatedResponse(id int) string {
	return fmt.Sprintf("block created with ID=%d", id)
}

// ParseCreatedID extracts the id from a create response, per the ID= scan
// rule. Returns ok=false if the substring isn't present.
func ParseCreatedID(resp string) (id int, ok bool) {
	idx := strings.Index(resp, "ID=")
	if idx < 0 {
		return 0, false
	}
	rest := resp[idx+len("ID="):]
	end := 0
	for end < len(rest) && (rest[end] == '-' || (rest[end] >= '0' && rest[end] <= '9')) {
		end++
	}
	n, err := strconv.Atoi(rest[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}

// GetResponse formats a successful get reply. Clients scan for "->" and
// take the trimmed remainder (spec §4.3).
func GetResponse(id int, value string) string {
	return fmt.Sprintf("block %d -> %s", id, value)
}

// ParseGetValue extracts the formatted value from a get response.
func ParseGetValue(resp string) (value string, ok bool) {
	idx := strings.Index(resp, "->")
	if idx < 0 {
		return "", false
	}
	return strings.TrimSpace(resp[idx+len("->"):]), true
}

// SetResponse, IncreaseResponse and DecreaseResponse wrap diagnostic text
// clients ignore beyond success detection
// (spec §4.3: "All other responses are diagnostic strings").
func SetResponse(id int) string      { return fmt.Sprintf("value assigned to block %d", id) }
func IncreaseResponse(id int) string { return fmt.Sprintf("refCount increased on block %d", id) }
func DecreaseResponse(id int) string { return fmt.Sprintf("refCount decreased on block %d", id) }

// ErrorResponse formats any allocator error as the diagnostic text of the
// reply (spec §7: "errors are delivered as the payload of the same
// response").
func ErrorResponse(action string, err error) string {
	return fmt.Sprintf("error: %s failed: %v", action, err)
}

// UnknownCommandResponse is sent for malformed or unrecognized commands
// (spec §4.1: "A malformed command yields Unknown command and a normal
// response").
const UnknownCommandResponse = "unknown command"
