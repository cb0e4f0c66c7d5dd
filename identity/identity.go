// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package identity

import (
	"bytes"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/noteledger/fault"
)

// Size - number of bytes in an identity
const Size = ed25519.PublicKeySize

// Identity - the public key of an owner
type Identity [Size]byte

// FromBytes - copy a byte slice into an identity
func FromBytes(buffer []byte) (Identity, error) {
	var id Identity
	if Size != len(buffer) {
		return id, fault.ErrInvalidIdentityLength
	}
	copy(id[:], buffer)
	return id, nil
}

// FromBase58 - decode the text form of an identity
func FromBase58(s string) (Identity, error) {
	buffer, err := base58.Decode(s)
	if nil != err || 0 == len(buffer) {
		return Identity{}, fault.ErrCannotDecodeIdentity
	}
	return FromBytes(buffer)
}

// Bytes - the identity as a byte slice, used as seed material
func (id Identity) Bytes() []byte {
	return id[:]
}

// String - base58 encoding of the key
func (id Identity) String() string {
	return base58.Encode(id[:])
}

// GoString - for %#v
func (id Identity) GoString() string {
	return "<identity:" + id.String() + ">"
}

// Equal - true when both identities are the same key
func (id Identity) Equal(other Identity) bool {
	return bytes.Equal(id[:], other[:])
}

// IsZero - true for the unset identity
func (id Identity) IsZero() bool {
	return Identity{} == id
}

// MarshalText - convert an identity to its base58 JSON form
func (id Identity) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText - convert base58 JSON form to an identity
func (id *Identity) UnmarshalText(s []byte) error {
	decoded, err := FromBase58(string(s))
	if nil != err {
		return err
	}
	*id = decoded
	return nil
}

// CheckSignature - verify that message was signed by this identity
func (id Identity) CheckSignature(message []byte, signature Signature) error {
	if ed25519.SignatureSize != len(signature) {
		return fault.ErrInvalidSignature
	}
	if !ed25519.Verify(ed25519.PublicKey(id[:]), message, signature) {
		return fault.ErrInvalidSignature
	}
	return nil
}
