// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fixtures - shared setup for the rpc tests
package fixtures

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bitmark-inc/certgen"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/noteledger/address"
	"github.com/bitmark-inc/noteledger/identity"
	"github.com/bitmark-inc/noteledger/note"
	"github.com/bitmark-inc/noteledger/profile"
	"github.com/bitmark-inc/noteledger/storage"
)

const (
	dir = "testing"

	// LogCategory - log channel used by tests
	LogCategory = "testing"
)

// SetupTestLogger - critical only logging into a scratch directory
func SetupTestLogger() {
	removeFiles()
	_ = os.Mkdir(dir, 0700)

	logging := logger.Configuration{
		Directory: dir,
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

// TeardownTestLogger - remove the scratch directory
func TeardownTestLogger() {
	removeFiles()
}

func removeFiles() {
	os.RemoveAll(dir)
}

// Deriver - deriver for the default program
func Deriver(t *testing.T) address.Deriver {
	d, err := address.NewFromBase58(address.DefaultProgram)
	if nil != err {
		t.Fatalf("program address error: %s", err)
	}
	return d
}

// Stores - stores over a fresh database in the scratch directory,
// must be called after SetupTestLogger
type Stores struct {
	Database *storage.Database
	Profiles *profile.Store
	Notes    *note.Store
	Deriver  address.Deriver
}

// NewStores - open the test database
func NewStores(t *testing.T) *Stores {
	database, err := storage.Open(filepath.Join(dir, "rpc.leveldb"), storage.ReadWrite, logger.New("storage"))
	if nil != err {
		t.Fatalf("storage open error: %s", err)
	}
	database.SetSync(false)

	d := Deriver(t)
	return &Stores{
		Database: database,
		Profiles: profile.New(database, d, logger.New("profile")),
		Notes:    note.New(database, d, logger.New("note")),
		Deriver:  d,
	}
}

// Close - close the test database
func (s *Stores) Close() {
	s.Database.Close()
}

// Key - deterministic key from a seed byte
func Key(t *testing.T, seed byte) *identity.PrivateKey {
	buffer := make([]byte, 32)
	for i := range buffer {
		buffer[i] = seed
	}
	key, err := identity.PrivateKeyFromBytes(buffer)
	if nil != err {
		t.Fatalf("private key error: %s", err)
	}
	return key
}

// Certificate - a fresh self signed certificate and key in PEM form
func Certificate(t *testing.T) (string, string) {
	cert, key, err := certgen.NewTLSCertPair("noteledger test", time.Now().Add(time.Hour), false, []string{"127.0.0.1"})
	if nil != err {
		t.Fatalf("certificate error: %s", err)
	}
	return string(cert), string(key)
}
