// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/noteledger/address"
)

type addressReply struct {
	Tag     string          `json:"tag"`
	Program address.Address `json:"program"`
	Address address.Address `json:"address"`
	Bump    uint8           `json:"bump"`
}

// derived without contacting a node
func runAddress(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	owner, err := ownerOrKey(c, m)
	if nil != err {
		return err
	}

	program := c.String("program")
	if "" == program {
		program = address.DefaultProgram
	}
	deriver, err := address.NewFromBase58(program)
	if nil != err {
		return err
	}

	tag := address.UserProfileTag
	var key *uint64
	if id := c.Uint64("id"); 0 != id {
		tag = address.NoteTag
		key = &id
	}

	a, bump, err := deriver.DeriveWithBump(tag, owner, key)
	if nil != err {
		return err
	}

	return printJson(m.w, addressReply{
		Tag:     tag,
		Program: deriver.Program(),
		Address: a,
		Bump:    bump,
	})
}
