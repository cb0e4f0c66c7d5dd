// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"sync"

	"github.com/bitmark-inc/noteledger/address"
	"github.com/bitmark-inc/noteledger/fault"
)

// per-address write locks, each address is held by at most one open
// transaction
type lockSet struct {
	sync.Mutex
	owners map[address.Address]*transaction
}

func newLockSet() *lockSet {
	return &lockSet{
		owners: make(map[address.Address]*transaction),
	}
}

// acquire never blocks, another holder is reported as a conflict
func (l *lockSet) acquire(a address.Address, tx *transaction) error {
	l.Lock()
	defer l.Unlock()

	holder, held := l.owners[a]
	if held && holder != tx {
		return fault.ErrAccountInUse
	}
	l.owners[a] = tx
	return nil
}

func (l *lockSet) release(addresses map[address.Address]struct{}, tx *transaction) {
	l.Lock()
	defer l.Unlock()

	for a := range addresses {
		if l.owners[a] == tx {
			delete(l.owners, a)
		}
	}
}

// count of currently held locks
func (l *lockSet) size() int {
	l.Lock()
	defer l.Unlock()
	return len(l.owners)
}
