// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package address

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/noteledger/address"
	"github.com/bitmark-inc/noteledger/fault"
	"github.com/bitmark-inc/noteledger/identity"
	"github.com/bitmark-inc/noteledger/rpc/ratelimit"
)

const (
	rateLimitAddress = 200
	rateBurstAddress = 100
)

// Address - type for RPC calls
type Address struct {
	Log     *logger.L
	Limiter *rate.Limiter
	deriver address.Deriver
}

// New - create address service
func New(log *logger.L, deriver address.Deriver) *Address {
	return &Address{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitAddress, rateBurstAddress),
		deriver: deriver,
	}
}

// DeriveArguments - tag is "user_profile" or "note", Id only for notes
type DeriveArguments struct {
	Tag   string            `json:"tag"`
	Owner identity.Identity `json:"owner"`
	Id    uint64            `json:"id,string"`
}

// DeriveReply - the address and the bump seed that found it
type DeriveReply struct {
	Address address.Address `json:"address"`
	Bump    uint8           `json:"bump"`
}

// Derive - compute a record address without reading the ledger
func (a *Address) Derive(arguments *DeriveArguments, reply *DeriveReply) error {
	if err := ratelimit.Limit(a.Limiter); nil != err {
		return err
	}

	var key *uint64
	switch arguments.Tag {
	case address.UserProfileTag:
	case address.NoteTag:
		if 0 == arguments.Id {
			return fault.ErrInvalidNoteId
		}
		key = &arguments.Id
	default:
		return fault.ErrMissingParameters
	}

	derived, bump, err := a.deriver.DeriveWithBump(arguments.Tag, arguments.Owner, key)
	if nil != err {
		return err
	}

	reply.Address = derived
	reply.Bump = bump
	return nil
}
