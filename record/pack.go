// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"github.com/bitmark-inc/noteledger/util"
)

// Pack - validate and produce the fixed size image
func (profile *UserProfile) Pack() (Packed, error) {
	if err := ValidateUsername(profile.Username); nil != err {
		return nil, err
	}

	message := make([]byte, 0, UserProfileSize)
	message = append(message, userProfileDiscriminator...)
	message = append(message, profile.Authority.Bytes()...)
	message = util.AppendString(message, profile.Username)
	message = util.AppendUint64(message, profile.NoteCount)

	return pad(message, UserProfileSize), nil
}

// Pack - validate and produce the fixed size image
func (note *Note) Pack() (Packed, error) {
	if err := ValidateTitle(note.Title); nil != err {
		return nil, err
	}
	if err := ValidateContent(note.Content); nil != err {
		return nil, err
	}

	message := make([]byte, 0, NoteSize)
	message = append(message, noteDiscriminator...)
	message = append(message, note.Authority.Bytes()...)
	message = util.AppendUint64(message, note.Id)
	message = util.AppendString(message, note.Title)
	message = util.AppendString(message, note.Content)

	return pad(message, NoteSize), nil
}

func pad(message []byte, size int) Packed {
	for len(message) < size {
		message = append(message, 0)
	}
	return Packed(message)
}
