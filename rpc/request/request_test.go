// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package request_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/noteledger/fault"
	"github.com/bitmark-inc/noteledger/identity"
	"github.com/bitmark-inc/noteledger/instruction"
	"github.com/bitmark-inc/noteledger/rpc/fixtures"
	"github.com/bitmark-inc/noteledger/rpc/request"
)

func TestId(t *testing.T) {
	assert.Equal(t, "abc", request.Id("abc"), "caller id replaced")

	id := request.Id("")
	_, err := uuid.Parse(id)
	assert.Nil(t, err, "generated id is not a uuid: %q", id)
	assert.NotEqual(t, id, request.Id(""), "ids repeat")
}

func TestSignAndVerify(t *testing.T) {
	program := fixtures.Deriver(t).Program()
	key := fixtures.Key(t, 1)
	other := fixtures.Key(t, 2)

	i := instruction.CreateNote{Title: "t", Content: "c"}
	signature := request.Sign(program, key, i)

	assert.Nil(t, request.Verify(program, key.Identity(), i, signature), "valid signature rejected")
	assert.Equal(t, fault.ErrInvalidSignature, request.Verify(program, other.Identity(), i, signature), "wrong signer accepted")

	changed := instruction.CreateNote{Title: "t", Content: "changed"}
	assert.Equal(t, fault.ErrInvalidSignature, request.Verify(program, key.Identity(), changed, signature), "altered instruction accepted")

	assert.Equal(t, fault.ErrMissingSigner, request.Verify(program, identity.Identity{}, i, signature), "zero signer accepted")
}
