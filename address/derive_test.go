// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package address_test

import (
	"bytes"
	"crypto/sha256"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/noteledger/address"
	"github.com/bitmark-inc/noteledger/fault"
	"github.com/bitmark-inc/noteledger/identity"
)

func makeIdentity(t *testing.T, fill byte) identity.Identity {
	key, err := identity.PrivateKeyFromBytes(bytes.Repeat([]byte{fill}, 32))
	if nil != err {
		t.Fatalf("private key error: %s", err)
	}
	return key.Identity()
}

func makeDeriver(t *testing.T) address.Deriver {
	d, err := address.NewFromBase58(address.DefaultProgram)
	if nil != err {
		t.Fatalf("default program error: %s", err)
	}
	return d
}

func TestEncodeKey(t *testing.T) {
	assert.Equal(t, []byte{1, 0, 0, 0, 0, 0, 0, 0}, address.EncodeKey(1), "wrong encoding of 1")
	assert.Equal(t, []byte{0x08, 0x07, 0x06, 0x05, 0x04, 0x03, 0x02, 0x01}, address.EncodeKey(0x0102030405060708), "wrong byte order")
	assert.Equal(t, bytes.Repeat([]byte{0xff}, 8), address.EncodeKey(^uint64(0)), "wrong encoding of maximum")
}

func TestDeriveIsDeterministic(t *testing.T) {
	d := makeDeriver(t)
	alice := makeIdentity(t, 0xa1)

	first, err := d.UserProfile(alice)
	assert.Nil(t, err, "profile address")
	second, err := d.Derive(address.UserProfileTag, alice, nil)
	assert.Nil(t, err, "profile address")
	assert.Equal(t, first, second, "profile address not deterministic")

	third, err := makeDeriver(t).UserProfile(alice)
	assert.Nil(t, err, "profile address")
	assert.Equal(t, first, third, "separate deriver gives a different address")

	id := uint64(7)
	n1, _ := d.Note(alice, 7)
	n2, _ := d.Derive(address.NoteTag, alice, &id)
	assert.Equal(t, n1, n2, "note address not deterministic")
}

func TestDeriveIsDistinct(t *testing.T) {
	d := makeDeriver(t)
	alice := makeIdentity(t, 0xa1)
	bob := makeIdentity(t, 0xb0)

	seen := make(map[address.Address]string)
	add := func(name string, a address.Address, err error) {
		assert.Nil(t, err, name)
		if previous, ok := seen[a]; ok {
			t.Errorf("%s collides with %s", name, previous)
		}
		seen[a] = name
	}

	a, err := d.UserProfile(alice)
	add("alice profile", a, err)
	a, err = d.UserProfile(bob)
	add("bob profile", a, err)
	for id := uint64(1); id <= 20; id += 1 {
		a, err = d.Note(alice, id)
		add("alice note", a, err)
		a, err = d.Note(bob, id)
		add("bob note", a, err)
	}

	// a different program gives different addresses
	other := address.New(address.Address{1})
	p1, _ := d.UserProfile(alice)
	p2, _ := other.UserProfile(alice)
	assert.NotEqual(t, p1, p2, "program is not part of the derivation")
}

func TestDerivedAddressIsOffCurve(t *testing.T) {
	d := makeDeriver(t)
	alice := makeIdentity(t, 0xa1)

	for id := uint64(1); id <= 10; id += 1 {
		a, err := d.Note(alice, id)
		assert.Nil(t, err, "note address")
		assert.False(t, address.IsOnCurve(a.Bytes()), "derived address is on the curve")
	}

	// a genuine public key is always a curve point
	assert.True(t, address.IsOnCurve(alice.Bytes()), "public key not on curve")
}

func TestFindMatchesCreate(t *testing.T) {
	d := makeDeriver(t)
	alice := makeIdentity(t, 0xa1)

	seeds := [][]byte{[]byte(address.NoteTag), alice.Bytes(), address.EncodeKey(3)}
	found, bump, err := address.FindProgramAddress(seeds, d.Program())
	assert.Nil(t, err, "find")

	created, err := address.CreateProgramAddress(append(seeds, []byte{bump}), d.Program())
	assert.Nil(t, err, "create with found bump")
	assert.Equal(t, found, created, "find and create disagree")

	// the hash is over seeds, bump, program then marker
	program := d.Program()
	h := sha256.New()
	for _, s := range seeds {
		h.Write(s)
	}
	h.Write([]byte{bump})
	h.Write(program[:])
	h.Write([]byte("ProgramDerivedAddress"))
	assert.Equal(t, h.Sum(nil), found.Bytes(), "wrong hash construction")

	// every larger bump must have produced an on-curve point
	for b := 255; b > int(bump); b -= 1 {
		_, err := address.CreateProgramAddress(append(seeds, []byte{byte(b)}), d.Program())
		assert.Equal(t, fault.ErrNotProgramAddress, err, "skipped a valid bump")
	}

	n, err := d.Note(alice, 3)
	assert.Nil(t, err, "note")
	assert.Equal(t, found, n, "Note does not use the documented seeds")
}

func TestSeedLimits(t *testing.T) {
	program := makeDeriver(t).Program()

	long := [][]byte{bytes.Repeat([]byte{'x'}, address.MaximumSeedLength+1)}
	_, _, err := address.FindProgramAddress(long, program)
	assert.Equal(t, fault.ErrSeedTooLong, err, "long seed accepted")

	many := make([][]byte, address.MaximumSeeds)
	for i := range many {
		many[i] = []byte{byte(i)}
	}
	_, _, err = address.FindProgramAddress(many, program)
	assert.Equal(t, fault.ErrTooManySeeds, err, "no room left for bump")

	_, err = address.CreateProgramAddress(append(many, []byte{1}), program)
	assert.Equal(t, fault.ErrTooManySeeds, err, "seventeen seeds accepted")

	tooLongTag := string(bytes.Repeat([]byte{'t'}, 33))
	_, err = makeDeriver(t).Derive(tooLongTag, makeIdentity(t, 1), nil)
	assert.Equal(t, fault.ErrSeedTooLong, err, "long tag accepted")
}

func TestAddressText(t *testing.T) {
	d := makeDeriver(t)
	assert.Equal(t, address.DefaultProgram, d.Program().String(), "program round trip")

	a, _ := d.UserProfile(makeIdentity(t, 9))
	text, err := a.MarshalText()
	assert.Nil(t, err, "marshal")

	var b address.Address
	assert.Nil(t, b.UnmarshalText(text), "unmarshal")
	assert.True(t, a.Equal(b), "text round trip")

	_, err = address.FromBytes([]byte{1})
	assert.Equal(t, fault.ErrCannotDecodeAddress, err, "short address accepted")
}
