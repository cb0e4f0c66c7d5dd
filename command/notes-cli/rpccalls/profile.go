// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/noteledger/identity"
	"github.com/bitmark-inc/noteledger/instruction"
	rpcprofile "github.com/bitmark-inc/noteledger/rpc/profile"
	"github.com/bitmark-inc/noteledger/rpc/request"
)

// CreateUser - register a profile for the client key
func (client *Client) CreateUser(username string) (*rpcprofile.CreateReply, error) {
	key, err := client.signer()
	if nil != err {
		return nil, err
	}

	arguments := rpcprofile.CreateArguments{
		RequestId: request.Id(""),
		Signer:    key.Identity(),
		Username:  username,
		Signature: request.Sign(client.program, key, instruction.CreateUser{Username: username}),
	}

	var reply rpcprofile.CreateReply
	if err := client.call("Profile.Create", arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// GetProfile - fetch the profile of an owner
func (client *Client) GetProfile(owner identity.Identity) (*rpcprofile.GetReply, error) {
	var reply rpcprofile.GetReply
	if err := client.call("Profile.Get", rpcprofile.GetArguments{Owner: owner}, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}
