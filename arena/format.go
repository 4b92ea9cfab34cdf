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

package arena

import (
	"encoding/binary"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// writeScalar parses literal per tag and encodes it into buf (which is
// exactly block.Size bytes), in host byte order, per spec §4.1 `set`.
// It returns a non-nil *Truncated advisory when the literal had to be cut
// down to fit, and a plain error for anything else (ErrParseFailed, etc).
func writeScalar(buf []byte, tag TypeTag, literal string) (*Truncated, error) {
	switch tag {
	case TypeInt:
		v, err := strconv.ParseInt(literal, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrParseFailed, err)
		}
		binary.NativeEndian.PutUint32(buf, uint32(int32(v)))
		return nil, nil
	case TypeLong:
		v, err := strconv.ParseInt(literal, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrParseFailed, err)
		}
		binary.NativeEndian.PutUint64(buf, uint64(v))
		return nil, nil
	case TypeFloat:
		v, err := strconv.ParseFloat(literal, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrParseFailed, err)
		}
		binary.NativeEndian.PutUint32(buf, math.Float32bits(float32(v)))
		return nil, nil
	case TypeDouble:
		v, err := strconv.ParseFloat(literal, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrParseFailed, err)
		}
		binary.NativeEndian.PutUint64(buf, math.Float64bits(v))
		return nil, nil
	case TypeBool:
		v, err := strconv.ParseBool(literal)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrParseFailed, err)
		}
		if v {
			buf[0] = 1
		} else {
			buf[0] = 0
		}
		return nil, nil
	case TypeChar:
		if literal == "" {
			buf[0] = 0
			return nil, nil
		}
		buf[0] = literal[0]
		return nil, nil
	case TypeString:
		return writeString(buf, literal)
	case TypeByte, TypeRaw:
		return writeRaw(buf, []byte(literal))
	default:
		return nil, ErrBadType
	}
}

// writeString copies up to len(buf)-1 bytes of s and null-terminates at the
// copy length, per spec §4.1. A zero-sized block is a documented no-op.
func writeString(buf []byte, s string) (*Truncated, error) {
	if len(buf) == 0 {
		return &Truncated{Requested: len(s), Written: 0}, nil
	}
	max := len(buf) - 1
	n := len(s)
	truncated := n > max
	if truncated {
		n = max
	}
	copy(buf, s[:n])
	buf[n] = 0
	for i := n + 1; i < len(buf); i++ {
		buf[i] = 0
	}
	if truncated {
		return &Truncated{Requested: len(s), Written: n}, nil
	}
	return nil, nil
}

func writeRaw(buf []byte, data []byte) (*Truncated, error) {
	n := len(data)
	truncated := n > len(buf)
	if truncated {
		n = len(buf)
	}
	copy(buf, data[:n])
	for i := n; i < len(buf); i++ {
		buf[i] = 0
	}
	if truncated {
		return &Truncated{Requested: len(data), Written: n}, nil
	}
	return nil, nil
}

// readScalar formats buf per tag, per spec §4.1 `get`.
func readScalar(buf []byte, tag TypeTag) (string, error) {
	switch tag {
	case TypeInt:
		v := int32(binary.NativeEndian.Uint32(buf))
		return strconv.FormatInt(int64(v), 10), nil
	case TypeLong:
		v := int64(binary.NativeEndian.Uint64(buf))
		return strconv.FormatInt(v, 10), nil
	case TypeFloat:
		v := math.Float32frombits(binary.NativeEndian.Uint32(buf))
		return strconv.FormatFloat(float64(v), 'g', -1, 32), nil
	case TypeDouble:
		v := math.Float64frombits(binary.NativeEndian.Uint64(buf))
		return strconv.FormatFloat(v, 'g', -1, 64), nil
	case TypeBool:
		if buf[0] != 0 {
			return "true", nil
		}
		return "false", nil
	case TypeChar:
		return string(rune(buf[0])), nil
	case TypeString, TypeByte:
		n := 0
		for n < len(buf) && buf[n] != 0 {
			n++
		}
		return string(buf[:n]), nil
	case TypeRaw:
		return hexDump(buf), nil
	default:
		return "", ErrBadType
	}
}

func hexDump(buf []byte) string {
	parts := make([]string, len(buf))
	for i, b := range buf {
		parts[i] = fmt.Sprintf("%02x", b)
	}
	return strings.Join(parts, " ")
}
