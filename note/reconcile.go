// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package note

import (
	"context"
	"math"

	"github.com/bitmark-inc/noteledger/fault"
	"github.com/bitmark-inc/noteledger/identity"
	"github.com/bitmark-inc/noteledger/profile"
	"github.com/bitmark-inc/noteledger/storage"
)

// Report - what reconcile found and repaired
type Report struct {
	Owner        identity.Identity `json:"owner"`
	NoteCount    uint64            `json:"noteCount,string"`
	Advanced     uint64            `json:"advanced,string"`
	IndexAdded   int               `json:"indexAdded"`
	IndexRemoved int               `json:"indexRemoved"`
}

// Changed - true if any repair was made
func (r Report) Changed() bool {
	return 0 != r.Advanced || 0 != r.IndexAdded || 0 != r.IndexRemoved
}

// Reconcile - bring the note count and the index back in line with the
// notes actually stored
//
// notes found at ids past the count advance the count, live notes
// without an index entry are indexed and entries that refer to no live
// note are removed, all in a single commit
func (s *Store) Reconcile(ctx context.Context, owner identity.Identity) (Report, error) {
	report := Report{Owner: owner}

	profileAddress, err := s.deriver.UserProfile(owner)
	if nil != err {
		return report, err
	}

	tx := s.ledger.Begin()
	defer tx.Abort()

	if err := tx.Lock(profileAddress); nil != err {
		return report, err
	}
	userProfile, err := profile.Read(tx, profileAddress)
	if nil != err {
		return report, err
	}

	// advance past notes written without their count
	for math.MaxUint64 != userProfile.NoteCount {
		nextId := userProfile.NoteCount + 1
		noteAddress, err := s.deriver.Note(owner, nextId)
		if nil != err {
			return report, err
		}
		note, err := read(tx, noteAddress)
		if fault.ErrNoteNotFound == err {
			break
		}
		if nil != err {
			return report, err
		}
		if !note.Authority.Equal(owner) {
			break
		}
		userProfile.NoteCount = nextId
		report.Advanced += 1
	}
	report.NoteCount = userProfile.NoteCount

	indexed, err := s.allIndexed(owner)
	if nil != err {
		return report, err
	}

	// index entries for live notes
	for id := uint64(1); id <= userProfile.NoteCount; id += 1 {
		noteAddress, err := s.deriver.Note(owner, id)
		if nil != err {
			return report, err
		}
		if err := tx.Lock(noteAddress); nil != err {
			return report, err
		}

		_, err = read(tx, noteAddress)
		live := nil == err
		if nil != err && fault.ErrNoteNotFound != err {
			return report, err
		}

		entry, hasEntry := indexed[id]
		delete(indexed, id)

		switch {
		case live && (!hasEntry || entry.Address != noteAddress):
			tx.AddIndex(owner, id, noteAddress)
			report.IndexAdded += 1
		case !live && hasEntry:
			tx.RemoveIndex(owner, id)
			report.IndexRemoved += 1
		}

		if math.MaxUint64 == id {
			break
		}
	}

	// anything left refers past the count
	for id, entry := range indexed {
		if err := tx.Lock(entry.Address); nil != err {
			return report, err
		}
		note, err := read(tx, entry.Address)
		if nil == err && note.Id == id && note.Authority.Equal(owner) {
			continue
		}
		if nil != err && fault.ErrNoteNotFound != err {
			return report, err
		}
		tx.RemoveIndex(owner, id)
		report.IndexRemoved += 1
	}

	if !report.Changed() {
		return report, nil
	}

	if 0 != report.Advanced {
		packed, err := userProfile.Pack()
		if nil != err {
			return report, err
		}
		if err := tx.Put(profileAddress, packed); nil != err {
			return report, err
		}
	}

	if err := tx.Commit(ctx); nil != err {
		return report, err
	}

	s.log.Warnf("reconciled: %s  count: %d  advanced: %d  index added: %d  removed: %d",
		owner, report.NoteCount, report.Advanced, report.IndexAdded, report.IndexRemoved)
	return report, nil
}

// read the complete index of an owner
func (s *Store) allIndexed(owner identity.Identity) (map[uint64]storage.IndexEntry, error) {
	indexed := make(map[uint64]storage.IndexEntry)
	start := uint64(0)
	for {
		entries, err := s.ledger.ListIndex(owner, start, MaximumListCount)
		if nil != err {
			return nil, err
		}
		for _, entry := range entries {
			indexed[entry.Id] = entry
		}
		if len(entries) < MaximumListCount {
			return indexed, nil
		}
		start = entries[len(entries)-1].Id + 1
		if 0 == start {
			return indexed, nil
		}
	}
}
