// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"context"
	"encoding/binary"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"

	"github.com/bitmark-inc/noteledger/address"
	"github.com/bitmark-inc/noteledger/fault"
	"github.com/bitmark-inc/noteledger/identity"
	"github.com/bitmark-inc/noteledger/record"
)

type transaction struct {
	mutex    sync.Mutex
	database *Database
	batch    *leveldb.Batch
	cache    stagedCache
	locked   map[address.Address]struct{}
	closed   bool
}

// Begin - start a new transaction
func (d *Database) Begin() Transaction {
	return &transaction{
		database: d,
		batch:    new(leveldb.Batch),
		cache:    newCache(),
		locked:   make(map[address.Address]struct{}),
	}
}

// Lock - reserve an account for writing
func (tx *transaction) Lock(a address.Address) error {
	tx.mutex.Lock()
	defer tx.mutex.Unlock()

	if tx.closed {
		return fault.ErrTransactionClosed
	}
	if err := tx.database.locks.acquire(a, tx); nil != err {
		return err
	}
	tx.locked[a] = struct{}{}
	return nil
}

// Read - staged value if any, otherwise the committed value
func (tx *transaction) Read(a address.Address) (record.Packed, error) {
	tx.mutex.Lock()
	defer tx.mutex.Unlock()

	if tx.closed {
		return nil, fault.ErrTransactionClosed
	}

	key := tx.database.Pool.Accounts.prefixKey(a.Bytes())
	value, staged, present := tx.cache.Get(string(key))
	if staged {
		if !present {
			return nil, fault.ErrRecordNotFound
		}
		return record.Packed(value), nil
	}
	return tx.database.Read(a)
}

// Put - stage an account write
func (tx *transaction) Put(a address.Address, data record.Packed) error {
	tx.mutex.Lock()
	defer tx.mutex.Unlock()

	if err := tx.writable(a); nil != err {
		return err
	}

	key := tx.database.Pool.Accounts.prefixKey(a.Bytes())
	value := append([]byte{}, data...)
	tx.cache.Set(dbPut, string(key), value)
	tx.batch.Put(key, value)
	return nil
}

// Delete - stage an account removal
func (tx *transaction) Delete(a address.Address) error {
	tx.mutex.Lock()
	defer tx.mutex.Unlock()

	if err := tx.writable(a); nil != err {
		return err
	}

	key := tx.database.Pool.Accounts.prefixKey(a.Bytes())
	tx.cache.Set(dbDelete, string(key), nil)
	tx.batch.Delete(key)
	return nil
}

// AddIndex - stage a note index entry
//
// the caller must hold the lock on the note address the entry refers to
func (tx *transaction) AddIndex(owner identity.Identity, id uint64, a address.Address) {
	tx.mutex.Lock()
	defer tx.mutex.Unlock()
	if tx.closed {
		return
	}
	tx.batch.Put(tx.database.Pool.NoteIndex.prefixKey(indexKey(owner, id)), a.Bytes())
}

// RemoveIndex - stage removal of a note index entry
func (tx *transaction) RemoveIndex(owner identity.Identity, id uint64) {
	tx.mutex.Lock()
	defer tx.mutex.Unlock()
	if tx.closed {
		return
	}
	tx.batch.Delete(tx.database.Pool.NoteIndex.prefixKey(indexKey(owner, id)))
}

// Commit - write all staged data in one batch
//
// a cancelled context aborts the transaction, in every case the locks
// are released and the transaction is closed
func (tx *transaction) Commit(ctx context.Context) error {
	tx.mutex.Lock()
	defer tx.mutex.Unlock()

	if tx.closed {
		return fault.ErrTransactionClosed
	}
	defer tx.close()

	if err := ctx.Err(); nil != err {
		return err
	}
	if 0 == tx.batch.Len() {
		return nil
	}

	d := tx.database
	d.RLock()
	defer d.RUnlock()

	if nil == d.db {
		return fault.ErrNotInitialised
	}
	if d.readOnly {
		return fault.Fatal("storage.Commit", leveldb.ErrReadOnly)
	}

	err := d.db.Write(tx.batch, &ldb_opt.WriteOptions{Sync: d.sync})
	if nil != err {
		d.log.Errorf("commit of %d items failed: %s", tx.batch.Len(), err)
		return fault.Fatal("storage.Commit", err)
	}
	d.log.Debugf("committed %d items", tx.batch.Len())
	return nil
}

// Abort - discard staged data, safe to call more than once
func (tx *transaction) Abort() {
	tx.mutex.Lock()
	defer tx.mutex.Unlock()
	if !tx.closed {
		tx.close()
	}
}

// must hold the mutex
func (tx *transaction) close() {
	tx.batch.Reset()
	tx.cache.Clear()
	tx.database.locks.release(tx.locked, tx)
	tx.locked = nil
	tx.closed = true
}

// must hold the mutex
func (tx *transaction) writable(a address.Address) error {
	if tx.closed {
		return fault.ErrTransactionClosed
	}
	if _, ok := tx.locked[a]; !ok {
		return fault.ErrAccountNotLocked
	}
	return nil
}

// owner ++ big endian id
func indexKey(owner identity.Identity, id uint64) []byte {
	key := make([]byte, identity.Size+8)
	copy(key, owner.Bytes())
	binary.BigEndian.PutUint64(key[identity.Size:], id)
	return key
}
