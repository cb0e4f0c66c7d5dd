// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/noteledger/command/notes-cli/rpccalls"
	"github.com/bitmark-inc/noteledger/fault"
	"github.com/bitmark-inc/noteledger/identity"
)

func printJson(handle io.Writer, message interface{}) error {

	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		return err
	}

	fmt.Fprintf(handle, "%s\n", b)
	return nil
}

// open a connection to the configured node
func connect(m *metadata) (*rpccalls.Client, error) {
	if m.verbose {
		fmt.Fprintf(m.e, "connect: %s\n", m.connect)
	}
	return rpccalls.NewClient(m.connect, m.key, m.verbose, m.e)
}

// the --owner flag, or the key file identity when it is absent
func ownerOrKey(c *cli.Context, m *metadata) (identity.Identity, error) {
	if s := c.String("owner"); "" != s {
		return identity.FromBase58(s)
	}
	if nil == m.key {
		return identity.Identity{}, fault.ErrMissingSigner
	}
	return m.key.Identity(), nil
}

// the --owner flag only if it was given
func optionalOwner(c *cli.Context) (*identity.Identity, error) {
	s := c.String("owner")
	if "" == s {
		return nil, nil
	}
	owner, err := identity.FromBase58(s)
	if nil != err {
		return nil, err
	}
	return &owner, nil
}

func checkNoteId(c *cli.Context) (uint64, error) {
	id := c.Uint64("id")
	if 0 == id {
		return 0, fault.ErrInvalidNoteId
	}
	return id, nil
}
