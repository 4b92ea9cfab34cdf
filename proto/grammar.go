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

// Package proto defines the wire grammar of the arena service: the command
// verbs, the bit-stable substrings clients scan responses for, and the
// parsing/formatting helpers shared by server and client (spec §4.3).
package proto

import (
	"fmt"
	"strconv"
	"strings"
)

// Verb is one of the recognized command tokens.
type Verb string

const (
	VerbCreate   Verb = "create"
	VerbSet      Verb = "set"
	VerbGet      Verb = "get"
	VerbIncrease Verb = "increase"
	VerbDecrease Verb = "decrease"
	VerbStatus   Verb = "status"
	VerbMap      Verb = "map"
)

// Command is a parsed request line.
type Command struct {
	Verb  Verb
	Size  int
	Type  string
	ID    int
	Value string
}

// ErrUnknownCommand is returned by Parse when the verb isn't recognized.
var ErrUnknownCommand = fmt.Errorf("unknown command")

// Parse tokenizes a received command per spec §4.3: whitespace-separated
// tokens, the first is the verb. Trailing CR/LF characters are stripped
// from the buffer first. set is special-cased: its value is everything
// after the id token in the remaining buffer, left-trimmed of spaces and
// tabs only, taken verbatim to its end (spec §9.1's resolved open
// question) — not re-split on whitespace, so embedded and trailing spaces
// round-trip.
func Parse(raw string) (Command, error) {
	raw = strings.TrimRight(raw, "\r\n")
	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return Command{}, ErrUnknownCommand
	}
	verb := Verb(strings.ToLower(fields[0]))

	switch verb {
	case VerbCreate:
		if len(fields) < 3 {
			return Command{}, fmt.Errorf("create: want <size> <type>")
		}
		size, err := strconv.Atoi(fields[1])
		if err != nil {
			return Command{}, fmt.Errorf("create: bad size: %w", err)
		}
		return Command{Verb: verb, Size: size, Type: fields[2]}, nil

	case VerbSet:
		if len(fields) < 2 {
			return Command{}, fmt.Errorf("set: want <id> <value>")
		}
		id, err := strconv.Atoi(fields[1])
		if err != nil {
			return Command{}, fmt.Errorf("set: bad id: %w", err)
		}
		return Command{Verb: verb, ID: id, Value: setValue(raw)}, nil

	case VerbGet, VerbIncrease, VerbDecrease:
		if len(fields) < 2 {
			return Command{}, fmt.Errorf("%s: want <id>", verb)
		}
		id, err := strconv.Atoi(fields[1])
		if err != nil {
			return Command{}, fmt.Errorf("%s: bad id: %w", verb, err)
		}
		return Command{Verb: verb, ID: id}, nil

	case VerbStatus, VerbMap:
		return Command{Verb: verb}, nil

	default:
		return Command{}, ErrUnknownCommand
	}
}

// setValue extracts the raw value portion of a "set <id> <value...>" line:
// skip the verb token and the id token, then left-trim only spaces/tabs
// from whatever remains, preserving embedded and trailing whitespace.
func setValue(raw string) string {
	rest := strings.TrimLeft(raw, " \t")
	rest = cutToken(rest) // drop "set"
	rest = strings.TrimLeft(rest, " \t")
	rest = cutToken(rest) // drop the id
	return strings.TrimLeft(rest, " \t")
}

func cutToken(s string) string {
	i := strings.IndexAny(s, " \t")
	if i < 0 {
		return ""
	}
	return s[i:]
}
