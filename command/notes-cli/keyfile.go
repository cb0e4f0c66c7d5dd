// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io/ioutil"
	"os"
	"strings"

	"github.com/bitmark-inc/noteledger/fault"
	"github.com/bitmark-inc/noteledger/identity"
	"github.com/bitmark-inc/noteledger/util"
)

// the file holds a single base58 private key line
func readKeyFile(fileName string) (*identity.PrivateKey, error) {
	data, err := ioutil.ReadFile(fileName)
	if nil != err {
		return nil, err
	}
	return identity.PrivateKeyFromBase58(strings.TrimSpace(string(data)))
}

// never overwrites an existing key
func writeKeyFile(fileName string, key *identity.PrivateKey) error {
	if util.EnsureFileExists(fileName) {
		return fault.ErrKeyFileExists
	}
	if err := ioutil.WriteFile(fileName, []byte(key.String()+"\n"), 0600); nil != err {
		os.Remove(fileName)
		return err
	}
	return nil
}
