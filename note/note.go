// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package note

import (
	"context"
	"fmt"
	"math"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/noteledger/address"
	"github.com/bitmark-inc/noteledger/authority"
	"github.com/bitmark-inc/noteledger/fault"
	"github.com/bitmark-inc/noteledger/identity"
	"github.com/bitmark-inc/noteledger/profile"
	"github.com/bitmark-inc/noteledger/record"
	"github.com/bitmark-inc/noteledger/storage"
)

// Store - create, update, delete and read notes
type Store struct {
	log     *logger.L
	ledger  storage.Ledger
	deriver address.Deriver
}

// New - note store over a ledger
func New(ledger storage.Ledger, deriver address.Deriver, log *logger.L) *Store {
	return &Store{
		log:     log,
		ledger:  ledger,
		deriver: deriver,
	}
}

// Create - append a note to the signer's sequence
//
// the note, the advanced profile count and the index entry are
// committed together
func (s *Store) Create(ctx context.Context, signer identity.Identity, title string, content string) (*record.Note, error) {
	profileAddress, err := s.deriver.UserProfile(signer)
	if nil != err {
		return nil, err
	}

	tx := s.ledger.Begin()
	defer tx.Abort()

	if err := tx.Lock(profileAddress); nil != err {
		return nil, err
	}
	userProfile, err := profile.Read(tx, profileAddress)
	if nil != err {
		return nil, err
	}

	if err := record.ValidateTitle(title); nil != err {
		return nil, err
	}
	if err := record.ValidateContent(content); nil != err {
		return nil, err
	}

	if math.MaxUint64 == userProfile.NoteCount {
		return nil, fault.ErrAddressSpaceExhausted
	}
	nextId := userProfile.NoteCount + 1

	noteAddress, err := s.deriver.Note(signer, nextId)
	if nil != err {
		return nil, err
	}
	if err := tx.Lock(noteAddress); nil != err {
		return nil, err
	}

	_, err = read(tx, noteAddress)
	if nil == err {
		s.log.Warnf("note: %d of: %s already exists, note count is behind", nextId, signer)
		return nil, fault.ErrNoteAlreadyExists
	}
	if fault.ErrNoteNotFound != err {
		return nil, err
	}

	note := &record.Note{
		Authority: signer,
		Id:        nextId,
		Title:     title,
		Content:   content,
	}
	packedNote, err := note.Pack()
	if nil != err {
		return nil, err
	}

	userProfile.NoteCount = nextId
	packedProfile, err := userProfile.Pack()
	if nil != err {
		return nil, err
	}

	if err := tx.Put(noteAddress, packedNote); nil != err {
		return nil, err
	}
	if err := tx.Put(profileAddress, packedProfile); nil != err {
		return nil, err
	}
	tx.AddIndex(signer, nextId, noteAddress)

	if err := tx.Commit(ctx); nil != err {
		return nil, err
	}

	s.log.Infof("note: %d created for: %s", nextId, signer)
	return note, nil
}

// Update - replace the content of one of the signer's notes
//
// the title and id never change, identical content is still written
func (s *Store) Update(ctx context.Context, signer identity.Identity, id uint64, content string) (*record.Note, error) {
	return s.UpdateAt(ctx, signer, signer, id, content)
}

// UpdateAt - as Update but for a note in the sequence of owner, which
// only succeeds if the signer is the note's authority
func (s *Store) UpdateAt(ctx context.Context, signer identity.Identity, owner identity.Identity, id uint64, content string) (*record.Note, error) {
	noteAddress, err := s.deriver.Note(owner, id)
	if nil != err {
		return nil, err
	}

	tx := s.ledger.Begin()
	defer tx.Abort()

	if err := tx.Lock(noteAddress); nil != err {
		return nil, err
	}
	note, err := read(tx, noteAddress)
	if nil != err {
		return nil, err
	}
	if err := authority.Check(note.Authority, signer); nil != err {
		s.log.Warnf("update of note: %d of: %s refused for: %s", id, owner, signer)
		return nil, err
	}
	if err := record.ValidateContent(content); nil != err {
		return nil, err
	}

	note.Content = content
	packed, err := note.Pack()
	if nil != err {
		return nil, err
	}
	if err := tx.Put(noteAddress, packed); nil != err {
		return nil, err
	}
	if err := tx.Commit(ctx); nil != err {
		return nil, err
	}

	s.log.Infof("note: %d of: %s updated", id, owner)
	return note, nil
}

// Delete - remove one of the signer's notes, the profile count is not
// changed
func (s *Store) Delete(ctx context.Context, signer identity.Identity, id uint64) error {
	return s.DeleteAt(ctx, signer, signer, id)
}

// DeleteAt - as Delete but for a note in the sequence of owner
func (s *Store) DeleteAt(ctx context.Context, signer identity.Identity, owner identity.Identity, id uint64) error {
	noteAddress, err := s.deriver.Note(owner, id)
	if nil != err {
		return err
	}

	tx := s.ledger.Begin()
	defer tx.Abort()

	if err := tx.Lock(noteAddress); nil != err {
		return err
	}
	note, err := read(tx, noteAddress)
	if nil != err {
		return err
	}
	if err := authority.Check(note.Authority, signer); nil != err {
		s.log.Warnf("delete of note: %d of: %s refused for: %s", id, owner, signer)
		return err
	}

	if err := tx.Delete(noteAddress); nil != err {
		return err
	}
	tx.RemoveIndex(owner, id)

	if err := tx.Commit(ctx); nil != err {
		return err
	}

	s.log.Infof("note: %d of: %s deleted", id, owner)
	return nil
}

// Fetch - a committed note
func (s *Store) Fetch(owner identity.Identity, id uint64) (*record.Note, error) {
	noteAddress, err := s.deriver.Note(owner, id)
	if nil != err {
		return nil, err
	}
	return read(s.ledger, noteAddress)
}

func read(r profile.Reader, a address.Address) (*record.Note, error) {
	packed, err := r.Read(a)
	if fault.ErrRecordNotFound == err {
		return nil, fault.ErrNoteNotFound
	}
	if nil != err {
		return nil, err
	}

	note, err := packed.UnpackNote()
	if nil != err {
		return nil, fault.Fatal("note.read", fmt.Errorf("account: %s: %v", a, err))
	}
	return note, nil
}
