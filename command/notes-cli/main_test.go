// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/noteledger/address"
	"github.com/bitmark-inc/noteledger/fault"
	"github.com/bitmark-inc/noteledger/identity"
)

func run(t *testing.T, arguments ...string) (string, error) {
	app := newApp()
	var out, errors bytes.Buffer
	app.Writer = &out
	app.ErrWriter = &errors

	err := app.Run(append([]string{"notes-cli"}, arguments...))
	return out.String(), err
}

func TestGenerateAndAddress(t *testing.T) {
	dir, err := ioutil.TempDir("", "notes-cli")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	defer os.RemoveAll(dir)

	keyFile := filepath.Join(dir, "alice.key")

	out, err := run(t, "--key-file", keyFile, "generate")
	assert.Nil(t, err, "wrong generate")

	var pair identity.KeyPair
	assert.Nil(t, json.Unmarshal([]byte(out), &pair), "bad key pair JSON")

	key, err := readKeyFile(keyFile)
	assert.Nil(t, err, "wrong key file")
	assert.Equal(t, pair.Identity, key.Identity(), "key file does not match output")

	_, err = run(t, "--key-file", keyFile, "generate")
	assert.Equal(t, fault.ErrKeyFileExists, err, "key file overwritten")

	out, err = run(t, "--key-file", keyFile, "address", "--id", "3")
	assert.Nil(t, err, "wrong address")

	var reply addressReply
	assert.Nil(t, json.Unmarshal([]byte(out), &reply), "bad address JSON")

	deriver, _ := address.NewFromBase58(address.DefaultProgram)
	expected, _ := deriver.Note(key.Identity(), 3)
	assert.Equal(t, address.NoteTag, reply.Tag, "wrong tag")
	assert.Equal(t, expected, reply.Address, "wrong address")

	out, err = run(t, "address", "--owner", key.Identity().String())
	assert.Nil(t, err, "wrong profile address")
	assert.Nil(t, json.Unmarshal([]byte(out), &reply), "bad address JSON")
	expected, _ = deriver.UserProfile(key.Identity())
	assert.Equal(t, address.UserProfileTag, reply.Tag, "wrong tag")
	assert.Equal(t, expected, reply.Address, "wrong profile address")
}

func TestCommandChecks(t *testing.T) {
	_, err := run(t, "address")
	assert.Equal(t, fault.ErrMissingSigner, err, "address without owner")

	_, err = run(t, "create-user")
	assert.Equal(t, fault.ErrUsernameEmpty, err, "empty username")

	_, err = run(t, "create-note")
	assert.Equal(t, fault.ErrTitleEmpty, err, "empty title")

	_, err = run(t, "update-note")
	assert.Equal(t, fault.ErrInvalidNoteId, err, "missing id")

	_, err = run(t, "--key-file", "/no/such/file.key", "info")
	assert.NotNil(t, err, "missing key file")

	out, err := run(t, "version")
	assert.Nil(t, err, "wrong version")
	assert.Equal(t, version+"\n", out, "wrong version output")
}
