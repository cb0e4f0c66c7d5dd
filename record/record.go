// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"bytes"
	"crypto/sha256"
	"unicode/utf8"

	"github.com/bitmark-inc/noteledger/fault"
	"github.com/bitmark-inc/noteledger/identity"
)

// Packed - packed records are just a byte slice
type Packed []byte

// Kind - account type recovered from the discriminator
type Kind int

// enumerate the account types
const (
	UnknownKind = Kind(iota)
	UserProfileKind
	NoteKind
)

// byte limits for text fields
const (
	MaxUsernameLength = 50
	MaxTitleLength    = 100
	MaxContentLength  = 500
)

const (
	discriminatorSize = 8
	stringPrefixSize  = 4
	uint64Size        = 8
)

// fixed sizes of the packed images
const (
	UserProfileSize = discriminatorSize + identity.Size + stringPrefixSize + MaxUsernameLength + uint64Size
	NoteSize        = discriminatorSize + identity.Size + uint64Size + stringPrefixSize + MaxTitleLength + stringPrefixSize + MaxContentLength
)

var (
	userProfileDiscriminator = discriminator("UserProfile")
	noteDiscriminator        = discriminator("Note")
)

// UserProfile - the per owner account
type UserProfile struct {
	Authority identity.Identity `json:"authority"`
	Username  string            `json:"username"`
	NoteCount uint64            `json:"noteCount,string"`
}

// Note - a single note account
type Note struct {
	Authority identity.Identity `json:"authority"`
	Id        uint64            `json:"id,string"`
	Title     string            `json:"title"`
	Content   string            `json:"content"`
}

func discriminator(name string) []byte {
	digest := sha256.Sum256([]byte("account:" + name))
	return digest[:discriminatorSize]
}

// Kind - determine the account type of a packed image
func (record Packed) Kind() Kind {
	if len(record) < discriminatorSize {
		return UnknownKind
	}
	switch d := record[:discriminatorSize]; {
	case bytes.Equal(d, userProfileDiscriminator):
		return UserProfileKind
	case bytes.Equal(d, noteDiscriminator):
		return NoteKind
	default:
		return UnknownKind
	}
}

// String - for logging
func (k Kind) String() string {
	switch k {
	case UserProfileKind:
		return "UserProfile"
	case NoteKind:
		return "Note"
	default:
		return "Unknown"
	}
}

// ValidateUsername - 1..50 bytes of UTF-8
func ValidateUsername(s string) error {
	return checkText(s, 1, MaxUsernameLength, fault.ErrUsernameEmpty, fault.ErrUsernameTooLong)
}

// ValidateTitle - 1..100 bytes of UTF-8
func ValidateTitle(s string) error {
	return checkText(s, 1, MaxTitleLength, fault.ErrTitleEmpty, fault.ErrTitleTooLong)
}

// ValidateContent - 0..500 bytes of UTF-8
func ValidateContent(s string) error {
	return checkText(s, 0, MaxContentLength, nil, fault.ErrContentTooLong)
}

// lengths are in bytes, not characters
func checkText(s string, minimum int, maximum int, tooShort error, tooLong error) error {
	if len(s) < minimum {
		return tooShort
	}
	if len(s) > maximum {
		return tooLong
	}
	if !utf8.ValidString(s) {
		return fault.ErrInvalidUtf8
	}
	return nil
}
