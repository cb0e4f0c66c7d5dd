// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"

	"github.com/bitmark-inc/noteledger/address"
	"github.com/bitmark-inc/noteledger/fault"
	"github.com/bitmark-inc/noteledger/identity"
	"github.com/bitmark-inc/noteledger/record"
)

// Read - committed account data
func (d *Database) Read(a address.Address) (record.Packed, error) {
	value, err := d.Pool.Accounts.Get(a.Bytes())
	if nil != err {
		return nil, fault.Fatal("storage.Read", err)
	}
	if nil == value {
		return nil, fault.ErrRecordNotFound
	}
	return record.Packed(value), nil
}

// ListIndex - live note entries of an owner in id order starting at start
func (d *Database) ListIndex(owner identity.Identity, start uint64, count int) ([]IndexEntry, error) {
	cursor := d.Pool.NoteIndex.NewPrefixCursor(owner.Bytes())
	cursor.Seek(indexKey(owner, start))

	elements, err := cursor.Fetch(count)
	if nil != err {
		if fault.IsErrInvalid(err) {
			return nil, err
		}
		return nil, fault.Fatal("storage.ListIndex", err)
	}

	entries := make([]IndexEntry, 0, len(elements))
	for _, e := range elements {
		if identity.Size+8 != len(e.Key) {
			return nil, fault.ErrRecordTruncated
		}
		a, err := address.FromBytes(e.Value)
		if nil != err {
			return nil, err
		}
		entries = append(entries, IndexEntry{
			Id:      binary.BigEndian.Uint64(e.Key[identity.Size:]),
			Address: a,
		})
	}
	return entries, nil
}
