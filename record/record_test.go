// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record_test

import (
	"crypto/sha256"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/noteledger/fault"
	"github.com/bitmark-inc/noteledger/identity"
	"github.com/bitmark-inc/noteledger/record"
)

func makeIdentity(b byte) identity.Identity {
	var id identity.Identity
	for i := range id {
		id[i] = b
	}
	return id
}

func TestSizes(t *testing.T) {
	assert.Equal(t, 102, record.UserProfileSize, "profile size")
	assert.Equal(t, 656, record.NoteSize, "note size")
}

func TestUserProfilePack(t *testing.T) {
	profile := &record.UserProfile{
		Authority: makeIdentity(0x11),
		Username:  "alice",
		NoteCount: 3,
	}

	packed, err := profile.Pack()
	assert.Nil(t, err, "pack error")
	assert.Equal(t, record.UserProfileSize, len(packed), "packed size")

	d := sha256.Sum256([]byte("account:UserProfile"))
	assert.Equal(t, d[:8], []byte(packed[:8]), "discriminator")
	assert.Equal(t, profile.Authority.Bytes(), []byte(packed[8:40]), "authority")
	assert.Equal(t, []byte{5, 0, 0, 0, 'a', 'l', 'i', 'c', 'e'}, []byte(packed[40:49]), "username")
	assert.Equal(t, []byte{3, 0, 0, 0, 0, 0, 0, 0}, []byte(packed[49:57]), "note count")
	assert.Equal(t, make([]byte, record.UserProfileSize-57), []byte(packed[57:]), "padding")
	assert.Equal(t, record.UserProfileKind, packed.Kind(), "kind")

	unpacked, err := packed.UnpackUserProfile()
	assert.Nil(t, err, "unpack error")
	assert.Equal(t, profile, unpacked, "round trip")
}

func TestNotePack(t *testing.T) {
	note := &record.Note{
		Authority: makeIdentity(0x22),
		Id:        7,
		Title:     "T",
		Content:   "",
	}

	packed, err := note.Pack()
	assert.Nil(t, err, "pack error")
	assert.Equal(t, record.NoteSize, len(packed), "packed size")

	d := sha256.Sum256([]byte("account:Note"))
	assert.Equal(t, d[:8], []byte(packed[:8]), "discriminator")
	assert.Equal(t, []byte{7, 0, 0, 0, 0, 0, 0, 0}, []byte(packed[40:48]), "id")
	assert.Equal(t, []byte{1, 0, 0, 0, 'T', 0, 0, 0, 0}, []byte(packed[48:57]), "title and empty content")
	assert.Equal(t, record.NoteKind, packed.Kind(), "kind")

	unpacked, err := packed.UnpackNote()
	assert.Nil(t, err, "unpack error")
	assert.Equal(t, note, unpacked, "round trip")
}

func TestNoteMaximumFields(t *testing.T) {
	note := &record.Note{
		Authority: makeIdentity(0x33),
		Id:        ^uint64(0),
		Title:     strings.Repeat("t", record.MaxTitleLength),
		Content:   strings.Repeat("c", record.MaxContentLength),
	}

	packed, err := note.Pack()
	assert.Nil(t, err, "pack error")
	assert.Equal(t, record.NoteSize, len(packed), "a full note must fill the image exactly")

	unpacked, err := packed.UnpackNote()
	assert.Nil(t, err, "unpack error")
	assert.Equal(t, note, unpacked, "round trip")
}

func TestValidation(t *testing.T) {
	tests := []struct {
		name string
		fn   func(string) error
		s    string
		err  error
	}{
		{"username empty", record.ValidateUsername, "", fault.ErrUsernameEmpty},
		{"username one", record.ValidateUsername, "a", nil},
		{"username 50", record.ValidateUsername, strings.Repeat("u", 50), nil},
		{"username 51", record.ValidateUsername, strings.Repeat("u", 51), fault.ErrUsernameTooLong},
		{"title empty", record.ValidateTitle, "", fault.ErrTitleEmpty},
		{"title 100", record.ValidateTitle, strings.Repeat("t", 100), nil},
		{"title 101", record.ValidateTitle, strings.Repeat("t", 101), fault.ErrTitleTooLong},
		{"content empty", record.ValidateContent, "", nil},
		{"content 500", record.ValidateContent, strings.Repeat("c", 500), nil},
		{"content 501", record.ValidateContent, strings.Repeat("c", 501), fault.ErrContentTooLong},
		// 17 × 3 bytes = 51 bytes in 17 characters
		{"username multibyte", record.ValidateUsername, strings.Repeat("€", 17), fault.ErrUsernameTooLong},
		{"username multibyte fits", record.ValidateUsername, strings.Repeat("€", 16), nil},
		{"title bad utf8", record.ValidateTitle, "a\xffb", fault.ErrInvalidUtf8},
		{"content bad utf8", record.ValidateContent, "\xc3", fault.ErrInvalidUtf8},
	}

	for _, test := range tests {
		err := test.fn(test.s)
		assert.Equal(t, test.err, err, test.name)
		if nil != test.err {
			assert.True(t, fault.IsErrInvalid(err), test.name+": not a validation error")
		}
	}
}

func TestPackRejectsInvalid(t *testing.T) {
	_, err := (&record.UserProfile{Username: ""}).Pack()
	assert.Equal(t, fault.ErrUsernameEmpty, err, "empty username")

	_, err = (&record.Note{Title: "ok", Content: strings.Repeat("x", 501)}).Pack()
	assert.Equal(t, fault.ErrContentTooLong, err, "long content")
}

func TestUnpackCorrupt(t *testing.T) {
	profile := &record.UserProfile{Authority: makeIdentity(1), Username: "bob"}
	packedProfile, err := profile.Pack()
	assert.Nil(t, err, "pack error")

	note := &record.Note{Authority: makeIdentity(1), Id: 1, Title: "title", Content: "body"}
	packedNote, err := note.Pack()
	assert.Nil(t, err, "pack error")

	// wrong type
	_, err = packedProfile.UnpackNote()
	assert.Equal(t, fault.ErrIncompatibleRecordVersion, err, "profile as note")
	_, err = packedNote.UnpackUserProfile()
	assert.Equal(t, fault.ErrIncompatibleRecordVersion, err, "note as profile")

	// too short to hold a discriminator
	_, err = record.Packed{1, 2, 3}.UnpackNote()
	assert.Equal(t, fault.ErrIncompatibleRecordVersion, err, "short image")
	assert.Equal(t, record.UnknownKind, record.Packed{1, 2, 3}.Kind(), "short image kind")

	// truncated body
	_, err = packedProfile[:45].UnpackUserProfile()
	assert.Equal(t, fault.ErrRecordTruncated, err, "truncated profile")

	// declared title length larger than allowed
	corrupt := append(record.Packed{}, packedNote...)
	corrupt[48] = 0xff
	_, err = corrupt.UnpackNote()
	assert.Equal(t, fault.ErrTitleTooLong, err, "over-long title")

	// invalid utf8 inside the username
	corrupt = append(record.Packed{}, packedProfile...)
	corrupt[44] = 0xff
	_, err = corrupt.UnpackUserProfile()
	assert.Equal(t, fault.ErrInvalidUtf8, err, "bad utf8")
}
