// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"github.com/bitmark-inc/noteledger/fault"
	"github.com/bitmark-inc/noteledger/identity"
	"github.com/bitmark-inc/noteledger/util"
)

// UnpackUserProfile - decode a profile image
//
// trailing padding is ignored, its size is not checked so images
// written with a larger allocation can still be read
func (record Packed) UnpackUserProfile() (*UserProfile, error) {
	if UserProfileKind != record.Kind() {
		return nil, fault.ErrIncompatibleRecordVersion
	}

	r := util.NewReader(record[discriminatorSize:])
	authority := r.Fixed(identity.Size)
	username := r.String(MaxUsernameLength, fault.ErrUsernameTooLong)
	noteCount := r.Uint64()
	if err := r.Err(); nil != err {
		return nil, err
	}

	profile := &UserProfile{
		Username:  username,
		NoteCount: noteCount,
	}
	copy(profile.Authority[:], authority)

	if err := ValidateUsername(profile.Username); nil != err {
		return nil, err
	}
	return profile, nil
}

// UnpackNote - decode a note image
func (record Packed) UnpackNote() (*Note, error) {
	if NoteKind != record.Kind() {
		return nil, fault.ErrIncompatibleRecordVersion
	}

	r := util.NewReader(record[discriminatorSize:])
	authority := r.Fixed(identity.Size)
	id := r.Uint64()
	title := r.String(MaxTitleLength, fault.ErrTitleTooLong)
	content := r.String(MaxContentLength, fault.ErrContentTooLong)
	if err := r.Err(); nil != err {
		return nil, err
	}

	note := &Note{
		Id:      id,
		Title:   title,
		Content: content,
	}
	copy(note.Authority[:], authority)

	if err := ValidateTitle(note.Title); nil != err {
		return nil, err
	}
	if err := ValidateContent(note.Content); nil != err {
		return nil, err
	}
	return note, nil
}
