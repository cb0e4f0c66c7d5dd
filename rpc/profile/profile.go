// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package profile

import (
	"context"
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/noteledger/address"
	"github.com/bitmark-inc/noteledger/identity"
	"github.com/bitmark-inc/noteledger/instruction"
	"github.com/bitmark-inc/noteledger/profile"
	"github.com/bitmark-inc/noteledger/record"
	"github.com/bitmark-inc/noteledger/rpc/ratelimit"
	"github.com/bitmark-inc/noteledger/rpc/request"
	"github.com/bitmark-inc/noteledger/rpc/retry"
)

const (
	rateLimitProfile = 100
	rateBurstProfile = 50

	operationTimeout = 5 * time.Second
)

// Profile - type for RPC calls
type Profile struct {
	Log      *logger.L
	Limiter  *rate.Limiter
	program  address.Address
	profiles *profile.Store
}

// New - create profile service
func New(log *logger.L, program address.Address, profiles *profile.Store) *Profile {
	return &Profile{
		Log:      log,
		Limiter:  rate.NewLimiter(rateLimitProfile, rateBurstProfile),
		program:  program,
		profiles: profiles,
	}
}

// ---

// CreateArguments - signed create_user request
type CreateArguments struct {
	RequestId string             `json:"requestId"`
	Signer    identity.Identity  `json:"signer"`
	Username  string             `json:"username"`
	Signature identity.Signature `json:"signature"`
}

// CreateReply - the new profile
type CreateReply struct {
	RequestId string              `json:"requestId"`
	Address   address.Address     `json:"address"`
	Profile   *record.UserProfile `json:"profile"`
}

// Create - register a profile for the signer
func (p *Profile) Create(arguments *CreateArguments, reply *CreateReply) error {
	if err := ratelimit.Limit(p.Limiter); nil != err {
		return err
	}

	id := request.Id(arguments.RequestId)
	p.Log.Infof("%s: create user signer: %s", id, arguments.Signer)

	i := instruction.CreateUser{Username: arguments.Username}
	if err := request.Verify(p.program, arguments.Signer, i, arguments.Signature); nil != err {
		p.Log.Warnf("%s: create user error: %s", id, err)
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), operationTimeout)
	defer cancel()

	var created *record.UserProfile
	err := retry.Do(ctx, p.Log, retry.Default, id, func() error {
		var err error
		created, err = p.profiles.Create(ctx, arguments.Signer, arguments.Username)
		return err
	})
	if nil != err {
		p.Log.Warnf("%s: create user error: %s", id, err)
		return err
	}

	a, err := p.profiles.Address(arguments.Signer)
	if nil != err {
		return err
	}

	reply.RequestId = id
	reply.Address = a
	reply.Profile = created
	return nil
}

// ---

// GetArguments - profile lookup
type GetArguments struct {
	Owner identity.Identity `json:"owner"`
}

// GetReply - a profile and its address
type GetReply struct {
	Address address.Address     `json:"address"`
	Profile *record.UserProfile `json:"profile"`
}

// Get - fetch an owner's profile
func (p *Profile) Get(arguments *GetArguments, reply *GetReply) error {
	if err := ratelimit.Limit(p.Limiter); nil != err {
		return err
	}

	a, err := p.profiles.Address(arguments.Owner)
	if nil != err {
		return err
	}
	u, err := p.profiles.Fetch(arguments.Owner)
	if nil != err {
		return err
	}

	reply.Address = a
	reply.Profile = u
	return nil
}
