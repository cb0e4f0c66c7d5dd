// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rpc - JSON-RPC access to the note ledger
//
// services are registered on a net/rpc server by rpc/server and
// served with the JSON codec over TLS by rpc/listeners
//
//   Profile.Create  Profile.Get
//   Note.Create     Note.Update   Note.Delete   Note.Get   Note.List
//   Node.Info
//   Address.Derive
//
// mutating calls carry the signer identity and an ed25519 signature
// over instruction.SigningMessage so a node never holds user keys
package rpc
