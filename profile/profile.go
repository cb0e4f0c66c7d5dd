// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package profile - the per owner user profile account
package profile

import (
	"context"
	"fmt"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/noteledger/address"
	"github.com/bitmark-inc/noteledger/fault"
	"github.com/bitmark-inc/noteledger/identity"
	"github.com/bitmark-inc/noteledger/record"
	"github.com/bitmark-inc/noteledger/storage"
)

// Reader - anything that can read an account, the ledger or an open
// transaction
type Reader interface {
	Read(address.Address) (record.Packed, error)
}

// Store - create and fetch profiles
type Store struct {
	log     *logger.L
	ledger  storage.Ledger
	deriver address.Deriver
}

// New - profile store over a ledger
func New(ledger storage.Ledger, deriver address.Deriver, log *logger.L) *Store {
	return &Store{
		log:     log,
		ledger:  ledger,
		deriver: deriver,
	}
}

// Address - where the owner's profile is stored
func (s *Store) Address(owner identity.Identity) (address.Address, error) {
	return s.deriver.UserProfile(owner)
}

// Create - a new profile for the signer with a zero note count
func (s *Store) Create(ctx context.Context, signer identity.Identity, username string) (*record.UserProfile, error) {
	if err := record.ValidateUsername(username); nil != err {
		return nil, err
	}

	a, err := s.deriver.UserProfile(signer)
	if nil != err {
		return nil, err
	}

	tx := s.ledger.Begin()
	defer tx.Abort()

	if err := tx.Lock(a); nil != err {
		return nil, err
	}

	_, err = Read(tx, a)
	if nil == err {
		return nil, fault.ErrProfileAlreadyExists
	}
	if fault.ErrProfileNotFound != err {
		return nil, err
	}

	profile := &record.UserProfile{
		Authority: signer,
		Username:  username,
		NoteCount: 0,
	}
	packed, err := profile.Pack()
	if nil != err {
		return nil, err
	}
	if err := tx.Put(a, packed); nil != err {
		return nil, err
	}
	if err := tx.Commit(ctx); nil != err {
		return nil, err
	}

	s.log.Infof("user profile created for: %s  at: %s", signer, a)
	return profile, nil
}

// Fetch - the committed profile of an owner
func (s *Store) Fetch(owner identity.Identity) (*record.UserProfile, error) {
	a, err := s.deriver.UserProfile(owner)
	if nil != err {
		return nil, err
	}
	return Read(s.ledger, a)
}

// Read - decode the profile at an address
//
// an image that does not decode is ledger corruption, not bad input
func Read(r Reader, a address.Address) (*record.UserProfile, error) {
	packed, err := r.Read(a)
	if fault.ErrRecordNotFound == err {
		return nil, fault.ErrProfileNotFound
	}
	if nil != err {
		return nil, err
	}

	profile, err := packed.UnpackUserProfile()
	if nil != err {
		return nil, fault.Fatal("profile.Read", fmt.Errorf("account: %s: %v", a, err))
	}
	return profile, nil
}
