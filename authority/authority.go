// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package authority - capability check guarding every mutation
package authority

import (
	"github.com/bitmark-inc/noteledger/fault"
	"github.com/bitmark-inc/noteledger/identity"
)

// Check - the requester must be the authority recorded on the account
func Check(recordAuthority identity.Identity, requester identity.Identity) error {
	if !recordAuthority.Equal(requester) {
		return fault.ErrUnauthorizedAccess
	}
	return nil
}
