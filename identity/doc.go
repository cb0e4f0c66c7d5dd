// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package identity - owner identities and their key pairs
//
// An identity is the 32 byte ed25519 public key of a signer.  It is
// only ever used as a key and compared for equality, its text form is
// the plain base58 encoding of the key bytes.
package identity
