// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package note_test

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/noteledger/address"
	"github.com/bitmark-inc/noteledger/identity"
	"github.com/bitmark-inc/noteledger/note"
	"github.com/bitmark-inc/noteledger/profile"
	"github.com/bitmark-inc/noteledger/storage"
)

const testingDirName = "testing"

type testStores struct {
	database *storage.Database
	profiles *profile.Store
	notes    *note.Store
	deriver  address.Deriver
}

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

func setupStores(t *testing.T) *testStores {
	setupTestLogger()

	database, err := storage.Open(filepath.Join(testingDirName, "note.leveldb"), storage.ReadWrite, logger.New("storage"))
	if nil != err {
		t.Fatalf("storage open error: %s", err)
	}
	database.SetSync(false)

	d := testDeriver(t)
	return &testStores{
		database: database,
		profiles: profile.New(database, d, logger.New("profile")),
		notes:    note.New(database, d, logger.New("note")),
		deriver:  d,
	}
}

func (s *testStores) teardown() {
	s.database.Close()
	removeFiles()
}

// deterministic identity from a number
func newIdentity(t *testing.T, n uint32) identity.Identity {
	seed := make([]byte, 32)
	binary.BigEndian.PutUint32(seed, n)
	seed[31] = 0x5a
	key, err := identity.PrivateKeyFromBytes(seed)
	if nil != err {
		t.Fatalf("private key error: %s", err)
	}
	return key.Identity()
}
