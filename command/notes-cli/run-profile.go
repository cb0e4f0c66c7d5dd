// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/noteledger/fault"
)

func runCreateUser(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	username := c.String("username")
	if "" == username {
		return fault.ErrUsernameEmpty
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.CreateUser(username)
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}

func runGetProfile(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	owner, err := ownerOrKey(c, m)
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.GetProfile(owner)
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}
