// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/noteledger/fault"
)

func runCreateNote(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	title := c.String("title")
	if "" == title {
		return fault.ErrTitleEmpty
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.CreateNote(title, c.String("content"))
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}

func runUpdateNote(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	id, err := checkNoteId(c)
	if nil != err {
		return err
	}
	owner, err := optionalOwner(c)
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.UpdateNote(owner, id, c.String("content"))
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}

func runDeleteNote(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	id, err := checkNoteId(c)
	if nil != err {
		return err
	}
	owner, err := optionalOwner(c)
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.DeleteNote(owner, id)
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}

func runGetNote(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	id, err := checkNoteId(c)
	if nil != err {
		return err
	}
	owner, err := ownerOrKey(c, m)
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.GetNote(owner, id)
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}

func runListNotes(c *cli.Context) error {

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

	reply, err := client.ListNotes(owner, c.Uint64("start"), c.Int("count"))
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}
