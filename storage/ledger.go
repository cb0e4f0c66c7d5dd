// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"context"

	"github.com/bitmark-inc/noteledger/address"
	"github.com/bitmark-inc/noteledger/identity"
	"github.com/bitmark-inc/noteledger/record"
)

//go:generate mockgen -destination=mocks/ledger.go -package=mocks github.com/bitmark-inc/noteledger/storage Ledger,Transaction

// IndexEntry - one live note of an owner
type IndexEntry struct {
	Id      uint64          `json:"id,string"`
	Address address.Address `json:"address"`
}

// Ledger - committed state plus the ability to start a transaction
type Ledger interface {
	Begin() Transaction
	Read(address.Address) (record.Packed, error)
	ListIndex(owner identity.Identity, start uint64, count int) ([]IndexEntry, error)
}

// Transaction - a set of writes applied all or nothing
//
// an account must be locked before it is written, reads see the
// transaction's own staged writes
type Transaction interface {
	Lock(address.Address) error
	Read(address.Address) (record.Packed, error)
	Put(address.Address, record.Packed) error
	Delete(address.Address) error
	AddIndex(owner identity.Identity, id uint64, a address.Address)
	RemoveIndex(owner identity.Identity, id uint64)
	Commit(context.Context) error
	Abort()
}
