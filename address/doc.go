// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package address - deterministic storage addresses
//
// Every record lives at an address derived from a namespace tag, the
// owner identity and an optional numeric key:
//
//   user profile:  seeds = "user_profile" ++ owner
//   note:          seeds = "note" ++ owner ++ id(little endian uint64)
//
// The seeds are hashed with a bump byte and the program address:
//
//   SHA-256(seed ++ … ++ bump ++ program ++ "ProgramDerivedAddress")
//
// trying bump = 255 down to zero, the first digest that is not a
// valid ed25519 point is the address.  The seed ordering and the id
// encoding must never change or stored records become unreachable.
package address
