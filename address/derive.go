// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package address

import (
	"crypto/sha256"
	"encoding/binary"

	"filippo.io/edwards25519"

	"github.com/bitmark-inc/noteledger/fault"
	"github.com/bitmark-inc/noteledger/identity"
)

// namespace tags
const (
	UserProfileTag = "user_profile"
	NoteTag        = "note"
)

// DefaultProgram - the program that owns all note ledger records
const DefaultProgram = "9rcPBrXV5e8NC5vPSWs4XXoTeq3FAy4k349pRYsyH8v1"

// limits on seed material
const (
	MaximumSeeds      = 16
	MaximumSeedLength = 32
)

const programDerivedMarker = "ProgramDerivedAddress"

// Deriver - derives addresses for one program
//
// it holds no state other than the program address so a value can be
// copied and shared freely
type Deriver struct {
	program Address
}

// New - deriver bound to a program address
func New(program Address) Deriver {
	return Deriver{program: program}
}

// NewFromBase58 - deriver bound to a program given in text form
func NewFromBase58(program string) (Deriver, error) {
	a, err := FromBase58(program)
	if nil != err {
		return Deriver{}, err
	}
	return New(a), nil
}

// Program - the program address
func (d Deriver) Program() Address {
	return d.program
}

// Derive - address for a tag, owner and optional key
func (d Deriver) Derive(tag string, owner identity.Identity, key *uint64) (Address, error) {
	a, _, err := d.DeriveWithBump(tag, owner, key)
	return a, err
}

// DeriveWithBump - as Derive and also return the bump seed that was used
func (d Deriver) DeriveWithBump(tag string, owner identity.Identity, key *uint64) (Address, uint8, error) {
	seeds := [][]byte{[]byte(tag), owner.Bytes()}
	if nil != key {
		seeds = append(seeds, EncodeKey(*key))
	}
	return FindProgramAddress(seeds, d.program)
}

// UserProfile - address of the owner's profile record
func (d Deriver) UserProfile(owner identity.Identity) (Address, error) {
	return d.Derive(UserProfileTag, owner, nil)
}

// Note - address of one of the owner's notes
func (d Deriver) Note(owner identity.Identity, id uint64) (Address, error) {
	return d.Derive(NoteTag, owner, &id)
}

// EncodeKey - numeric key as 8 byte little endian seed
func EncodeKey(key uint64) []byte {
	buffer := make([]byte, 8)
	binary.LittleEndian.PutUint64(buffer, key)
	return buffer
}

// FindProgramAddress - search bump values from 255 down for the first
// off-curve address
func FindProgramAddress(seeds [][]byte, program Address) (Address, uint8, error) {
	if err := checkSeeds(seeds, 1); nil != err {
		return Address{}, 0, err
	}

	bump := []byte{0}
	for b := 255; b >= 0; b -= 1 {
		bump[0] = byte(b)
		candidate, err := CreateProgramAddress(append(seeds, bump), program)
		if nil == err {
			return candidate, byte(b), nil
		}
		if fault.ErrNotProgramAddress != err {
			return Address{}, 0, err
		}
	}
	return Address{}, 0, fault.ErrAddressSpaceExhausted
}

// CreateProgramAddress - hash the seeds exactly as given
//
// fails with ErrNotProgramAddress if the digest is a point on the curve
func CreateProgramAddress(seeds [][]byte, program Address) (Address, error) {
	if err := checkSeeds(seeds, 0); nil != err {
		return Address{}, err
	}

	h := sha256.New()
	for _, seed := range seeds {
		h.Write(seed)
	}
	h.Write(program[:])
	h.Write([]byte(programDerivedMarker))

	var a Address
	copy(a[:], h.Sum(nil))

	if IsOnCurve(a[:]) {
		return Address{}, fault.ErrNotProgramAddress
	}
	return a, nil
}

// IsOnCurve - true if the bytes decode to an ed25519 point, meaning a
// private key could exist for them
func IsOnCurve(b []byte) bool {
	_, err := new(edwards25519.Point).SetBytes(b)
	return nil == err
}

// reserve leaves room for seeds appended by the caller
func checkSeeds(seeds [][]byte, reserve int) error {
	if len(seeds)+reserve > MaximumSeeds {
		return fault.ErrTooManySeeds
	}
	for _, seed := range seeds {
		if len(seed) > MaximumSeedLength {
			return fault.ErrSeedTooLong
		}
	}
	return nil
}
