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

package server

import (
	"github.com/arenaproto/memarena/arena"
	"github.com/arenaproto/memarena/internal/log"
	"github.com/arenaproto/memarena/proto"
)

// dispatch turns one parsed command into an allocator call and a response
// string (spec §4.3). It never returns an error: every outcome, success or
// failure, is rendered into the reply text (spec §7).
func dispatch(a *arena.Arena, cmd proto.Command) string {
	switch cmd.Verb {
	case proto.VerbCreate:
		id, err := a.Create(cmd.Size, arena.TypeTag(cmd.Type))
		if err != nil {
			log.Errorf("create failed: %v", err)
			return proto.ErrorResponse("create", err)
		}
		return proto.CreatedResponse(id)

	case proto.VerbSet:
		tr, err := a.Set(cmd.ID, cmd.Value)
		if err != nil {
			log.Errorf("set %d failed: %v", cmd.ID, err)
			return proto.ErrorResponse("set", err)
		}
		if tr != nil {
			log.Warnf("set %d truncated: wanted %d bytes, wrote %d", cmd.ID, tr.Requested, tr.Written)
		}
		return proto.SetResponse(cmd.ID)

	case proto.VerbGet:
		val, err := a.Get(cmd.ID)
		if err != nil {
			log.Errorf("get %d failed: %v", cmd.ID, err)
			return proto.ErrorResponse("get", err)
		}
		return proto.GetResponse(cmd.ID, val)

	case proto.VerbIncrease:
		if err := a.IncreaseRef(cmd.ID); err != nil {
			return proto.ErrorResponse("increase", err)
		}
		return proto.IncreaseResponse(cmd.ID)

	case proto.VerbDecrease:
		if err := a.DecreaseRef(cmd.ID); err != nil {
			return proto.ErrorResponse("decrease", err)
		}
		return proto.DecreaseResponse(cmd.ID)

	case proto.VerbStatus:
		return a.Status()

	case proto.VerbMap:
		return a.Map()

	default:
		return proto.UnknownCommandResponse
	}
}
