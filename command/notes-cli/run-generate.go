// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"crypto/rand"
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/noteledger/identity"
)

func runGenerate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	key, err := identity.NewPrivateKey(rand.Reader)
	if nil != err {
		return err
	}

	if "" != m.keyFile {
		if err := writeKeyFile(m.keyFile, key); nil != err {
			return err
		}
		if m.verbose {
			fmt.Fprintf(m.e, "wrote key file: %s\n", m.keyFile)
		}
	}

	return printJson(m.w, key.KeyPair())
}
