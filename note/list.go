// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package note

import (
	"math"

	"github.com/bitmark-inc/noteledger/fault"
	"github.com/bitmark-inc/noteledger/identity"
	"github.com/bitmark-inc/noteledger/profile"
	"github.com/bitmark-inc/noteledger/record"
)

// MaximumListCount - largest page returned by List
const MaximumListCount = 100

// List - live notes of an owner in id order
//
// returns the id to continue from, zero when there are no more notes
func (s *Store) List(owner identity.Identity, start uint64, count int) ([]record.Note, uint64, error) {
	if count <= 0 || count > MaximumListCount {
		return nil, 0, fault.ErrInvalidCount
	}
	if 0 == start {
		start = 1
	}

	entries, err := s.ledger.ListIndex(owner, start, count)
	if nil != err {
		return nil, 0, err
	}

	notes := make([]record.Note, 0, len(entries))
	for _, entry := range entries {
		note, err := read(s.ledger, entry.Address)
		if fault.ErrNoteNotFound == err {
			s.log.Warnf("stale index entry: %d for: %s", entry.Id, owner)
			continue
		}
		if nil != err {
			return nil, 0, err
		}
		notes = append(notes, *note)
	}

	next := uint64(0)
	if len(entries) == count {
		next = entries[len(entries)-1].Id + 1
	}
	return notes, next, nil
}

// Probe - every live note found by reading ids 1 to the note count
//
// this does not depend on the index so it also works on a ledger
// whose index is damaged
func (s *Store) Probe(owner identity.Identity) ([]record.Note, error) {
	profileAddress, err := s.deriver.UserProfile(owner)
	if nil != err {
		return nil, err
	}
	userProfile, err := profile.Read(s.ledger, profileAddress)
	if nil != err {
		return nil, err
	}

	notes := make([]record.Note, 0)
	for id := uint64(1); id <= userProfile.NoteCount; id += 1 {
		note, err := s.Fetch(owner, id)
		if fault.ErrNoteNotFound == err {
			continue
		}
		if nil != err {
			return nil, err
		}
		notes = append(notes, *note)
		if math.MaxUint64 == id {
			break
		}
	}
	return notes, nil
}
