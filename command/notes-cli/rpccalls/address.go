// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/noteledger/identity"
	rpcaddress "github.com/bitmark-inc/noteledger/rpc/address"
)

// Derive - ask the node for a record address
func (client *Client) Derive(tag string, owner identity.Identity, id uint64) (*rpcaddress.DeriveReply, error) {
	arguments := rpcaddress.DeriveArguments{
		Tag:   tag,
		Owner: owner,
		Id:    id,
	}

	var reply rpcaddress.DeriveReply
	if err := client.call("Address.Derive", arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}
