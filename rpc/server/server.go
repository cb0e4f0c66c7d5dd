// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/noteledger/address"
	"github.com/bitmark-inc/noteledger/counter"
	notestore "github.com/bitmark-inc/noteledger/note"
	profilestore "github.com/bitmark-inc/noteledger/profile"
	rpcaddress "github.com/bitmark-inc/noteledger/rpc/address"
	"github.com/bitmark-inc/noteledger/rpc/node"
	"github.com/bitmark-inc/noteledger/rpc/note"
	"github.com/bitmark-inc/noteledger/rpc/profile"
)

// Create - an RPC server with every service registered
func Create(
	log *logger.L,
	version string,
	rpcCount *counter.Counter,
	profiles *profilestore.Store,
	notes *notestore.Store,
	deriver address.Deriver,
) *rpc.Server {

	start := time.Now().UTC()

	server := rpc.NewServer()

	_ = server.Register(profile.New(log, deriver.Program(), profiles))
	_ = server.Register(note.New(log, deriver, notes))
	_ = server.Register(node.New(log, start, version, rpcCount, deriver.Program()))
	_ = server.Register(rpcaddress.New(log, deriver))

	return server
}
