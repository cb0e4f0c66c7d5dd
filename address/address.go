// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package address

import (
	"bytes"

	"github.com/mr-tron/base58"

	"github.com/bitmark-inc/noteledger/fault"
)

// Size - number of bytes in an address
const Size = 32

// Address - a derived storage location
type Address [Size]byte

// FromBytes - copy a byte slice into an address
func FromBytes(buffer []byte) (Address, error) {
	var a Address
	if Size != len(buffer) {
		return a, fault.ErrCannotDecodeAddress
	}
	copy(a[:], buffer)
	return a, nil
}

// FromBase58 - decode the text form of an address
func FromBase58(s string) (Address, error) {
	buffer, err := base58.Decode(s)
	if nil != err {
		return Address{}, fault.ErrCannotDecodeAddress
	}
	return FromBytes(buffer)
}

// Bytes - the address as a byte slice
func (a Address) Bytes() []byte {
	return a[:]
}

// String - base58 encoding of the address
func (a Address) String() string {
	return base58.Encode(a[:])
}

// GoString - for %#v
func (a Address) GoString() string {
	return "<address:" + a.String() + ">"
}

// Equal - true when both are the same address
func (a Address) Equal(other Address) bool {
	return bytes.Equal(a[:], other[:])
}

// MarshalText - convert an address to its base58 JSON form
func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText - convert base58 JSON form to an address
func (a *Address) UnmarshalText(s []byte) error {
	decoded, err := FromBase58(string(s))
	if nil != err {
		return err
	}
	*a = decoded
	return nil
}
