// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package address_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	addr "github.com/bitmark-inc/noteledger/address"
	"github.com/bitmark-inc/noteledger/fault"
	"github.com/bitmark-inc/noteledger/rpc/address"
	"github.com/bitmark-inc/noteledger/rpc/fixtures"
)

func TestDerive(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	deriver := fixtures.Deriver(t)
	a := address.New(logger.New(fixtures.LogCategory), deriver)
	owner := fixtures.Key(t, 1).Identity()

	var reply address.DeriveReply
	err := a.Derive(&address.DeriveArguments{Tag: addr.UserProfileTag, Owner: owner}, &reply)
	assert.Nil(t, err, "wrong profile Derive")
	expected, _ := deriver.UserProfile(owner)
	assert.Equal(t, expected, reply.Address, "wrong profile address")
	assert.False(t, addr.IsOnCurve(reply.Address.Bytes()), "address is on the curve")

	err = a.Derive(&address.DeriveArguments{Tag: addr.NoteTag, Owner: owner, Id: 7}, &reply)
	assert.Nil(t, err, "wrong note Derive")
	expected, _ = deriver.Note(owner, 7)
	assert.Equal(t, expected, reply.Address, "wrong note address")

	seeds := [][]byte{[]byte(addr.NoteTag), owner.Bytes(), addr.EncodeKey(7), {reply.Bump}}
	recreated, err := addr.CreateProgramAddress(seeds, deriver.Program())
	assert.Nil(t, err, "bump does not recreate the address")
	assert.Equal(t, expected, recreated, "wrong bump")
}

func TestDeriveErrors(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	a := address.New(logger.New(fixtures.LogCategory), fixtures.Deriver(t))
	owner := fixtures.Key(t, 1).Identity()

	err := a.Derive(&address.DeriveArguments{Tag: addr.NoteTag, Owner: owner}, &address.DeriveReply{})
	assert.Equal(t, fault.ErrInvalidNoteId, err, "zero note id accepted")

	err = a.Derive(&address.DeriveArguments{Tag: "bogus", Owner: owner}, &address.DeriveReply{})
	assert.Equal(t, fault.ErrMissingParameters, err, "unknown tag accepted")
}
