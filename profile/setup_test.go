// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package profile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/noteledger/address"
	"github.com/bitmark-inc/noteledger/identity"
	"github.com/bitmark-inc/noteledger/profile"
	"github.com/bitmark-inc/noteledger/storage"
)

const testingDirName = "testing"

func setupTestLogger() {
	removeFiles()
	_ = os.Mkdir(testingDirName, 0700)

	logging := logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

func removeFiles() {
	os.RemoveAll(testingDirName)
}

func testDeriver(t *testing.T) address.Deriver {
	d, err := address.NewFromBase58(address.DefaultProgram)
	if nil != err {
		t.Fatalf("program address error: %s", err)
	}
	return d
}

func setupStore(t *testing.T) (*profile.Store, *storage.Database) {
	setupTestLogger()

	database, err := storage.Open(filepath.Join(testingDirName, "profile.leveldb"), storage.ReadWrite, logger.New("storage"))
	if nil != err {
		t.Fatalf("storage open error: %s", err)
	}
	database.SetSync(false)

	return profile.New(database, testDeriver(t), logger.New("profile")), database
}

func teardown(database *storage.Database) {
	database.Close()
	removeFiles()
}

func newIdentity(t *testing.T, seed byte) identity.Identity {
	buffer := make([]byte, 32)
	for i := range buffer {
		buffer[i] = seed
	}
	key, err := identity.PrivateKeyFromBytes(buffer)
	if nil != err {
		t.Fatalf("private key error: %s", err)
	}
	return key.Identity()
}
