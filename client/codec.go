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

package client

import (
	"fmt"
	"strconv"
)

// typeTag maps T to the wire type-tag string a create command sends
// (spec §4.4 "Type mapping"). This is the generic-type-plus-runtime-tag
// alternative to the C++ template family, per spec §9's "Templates as
// family of types" redesign note.
func typeTag[T any]() string {
	var zero T
	switch any(zero).(type) {
	case int:
		return "int"
	case int64:
		return "long"
	case float32:
		return "float"
	case float64:
		return "double"
	case bool:
		return "bool"
	case Char:
		return "char"
	case string:
		return "string"
	case byte:
		return "byte"
	case Raw:
		return "raw"
	default:
		return "raw"
	}
}

// fixedSize returns sizeof(T) for the scalar types that need no explicit
// size at New time. string and Raw are variable-length and require
// NewSized instead.
func fixedSize[T any]() (size int, ok bool) {
	var zero T
	switch any(zero).(type) {
	case int:
		return 4, true
	case int64:
		return 8, true
	case float32:
		return 4, true
	case float64:
		return 8, true
	case bool:
		return 1, true
	case Char:
		return 1, true
	case byte:
		return 1, true
	default:
		return 0, false
	}
}

// encode renders v as the literal text a set command carries (spec §4.4:
// "Values cross the wire as textual literals").
func encode[T any](v T) (string, error) {
	switch x := any(v).(type) {
	case int:
		return strconv.Itoa(x), nil
	case int64:
		return strconv.FormatInt(x, 10), nil
	case float32:
		return strconv.FormatFloat(float64(x), 'g', -1, 32), nil
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64), nil
	case bool:
		return strconv.FormatBool(x), nil
	case Char:
		return string(rune(x)), nil
	case byte:
		return string(rune(x)), nil
	case string:
		return x, nil
	case Raw:
		return string(x), nil
	default:
		return "", fmt.Errorf("client: unsupported type %T", v)
	}
}

// decode parses the trimmed value out of a get response back into T.
func decode[T any](s string) (T, error) {
	var zero T
	switch p := any(&zero).(type) {
	case *int:
		n, err := strconv.ParseInt(s, 10, 32)
		if err != nil {
			return zero, fmt.Errorf("client: decode int %q: %w", s, err)
		}
		*p = int(n)
	case *int64:
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return zero, fmt.Errorf("client: decode long %q: %w", s, err)
		}
		*p = n
	case *float32:
		f, err := strconv.ParseFloat(s, 32)
		if err != nil {
			return zero, fmt.Errorf("client: decode float %q: %w", s, err)
		}
		*p = float32(f)
	case *float64:
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return zero, fmt.Errorf("client: decode double %q: %w", s, err)
		}
		*p = f
	case *bool:
		*p = s == "true"
	case *Char:
		if len(s) > 0 {
			*p = Char(s[0])
		}
	case *byte:
		if len(s) > 0 {
			*p = s[0]
		}
	case *string:
		*p = s
	case *Raw:
		*p = Raw(s)
	default:
		return zero, fmt.Errorf("client: unsupported type %T", zero)
	}
	return zero, nil
}
