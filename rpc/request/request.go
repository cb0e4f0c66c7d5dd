// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package request - correlation ids and signatures shared by the
// mutating services and their clients
package request

import (
	"github.com/google/uuid"

	"github.com/bitmark-inc/noteledger/address"
	"github.com/bitmark-inc/noteledger/fault"
	"github.com/bitmark-inc/noteledger/identity"
	"github.com/bitmark-inc/noteledger/instruction"
)

// Id - the caller's correlation id, or a fresh one if none was sent
func Id(id string) string {
	if "" == id {
		return uuid.New().String()
	}
	return id
}

// Sign - signature over the instruction for the program
func Sign(program address.Address, key *identity.PrivateKey, i instruction.Instruction) identity.Signature {
	return key.Sign(instruction.SigningMessage(program, i))
}

// Verify - check that signer issued the instruction
func Verify(program address.Address, signer identity.Identity, i instruction.Instruction, signature identity.Signature) error {
	if signer.IsZero() {
		return fault.ErrMissingSigner
	}
	return signer.CheckSignature(instruction.SigningMessage(program, i), signature)
}
