// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package instruction - the byte form of each mutating operation
//
// a client signs the instruction bytes prefixed by the program address
// and the node verifies the signature against the signer before running
// the operation
//
//   data = sha256("global:" ++ name)[:8] ++ arguments
package instruction

import (
	"bytes"
	"crypto/sha256"

	"github.com/bitmark-inc/noteledger/address"
	"github.com/bitmark-inc/noteledger/fault"
	"github.com/bitmark-inc/noteledger/util"
)

// Packed - packed instructions are just a byte slice
type Packed []byte

// Instruction - generic instruction interface
type Instruction interface {
	Name() string
	Pack() Packed
}

// instruction names
const (
	CreateUserName = "create_user"
	CreateNoteName = "create_note"
	UpdateNoteName = "update_note"
	DeleteNoteName = "delete_note"
)

const discriminatorSize = 8

var (
	createUserDiscriminator = discriminator(CreateUserName)
	createNoteDiscriminator = discriminator(CreateNoteName)
	updateNoteDiscriminator = discriminator(UpdateNoteName)
	deleteNoteDiscriminator = discriminator(DeleteNoteName)
)

// CreateUser - arguments of create_user
type CreateUser struct {
	Username string `json:"username"`
}

// CreateNote - arguments of create_note
type CreateNote struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// UpdateNote - arguments of update_note
type UpdateNote struct {
	NoteId  uint64 `json:"noteId,string"`
	Content string `json:"content"`
}

// DeleteNote - arguments of delete_note
type DeleteNote struct {
	NoteId uint64 `json:"noteId,string"`
}

func discriminator(name string) []byte {
	digest := sha256.Sum256([]byte("global:" + name))
	return digest[:discriminatorSize]
}

func (CreateUser) Name() string { return CreateUserName }
func (CreateNote) Name() string { return CreateNoteName }
func (UpdateNote) Name() string { return UpdateNoteName }
func (DeleteNote) Name() string { return DeleteNoteName }

// Pack - instruction data
func (c CreateUser) Pack() Packed {
	message := append([]byte{}, createUserDiscriminator...)
	return util.AppendString(message, c.Username)
}

// Pack - instruction data
func (c CreateNote) Pack() Packed {
	message := append([]byte{}, createNoteDiscriminator...)
	message = util.AppendString(message, c.Title)
	return util.AppendString(message, c.Content)
}

// Pack - instruction data
func (u UpdateNote) Pack() Packed {
	message := append([]byte{}, updateNoteDiscriminator...)
	message = util.AppendUint64(message, u.NoteId)
	return util.AppendString(message, u.Content)
}

// Pack - instruction data
func (d DeleteNote) Pack() Packed {
	message := append([]byte{}, deleteNoteDiscriminator...)
	return util.AppendUint64(message, d.NoteId)
}

// Unpack - decode instruction data, must cast the result to the
// correct type
func (data Packed) Unpack() (Instruction, error) {
	if len(data) < discriminatorSize {
		return nil, fault.ErrInvalidInstruction
	}

	// string limits are only to stay within the buffer, the operations
	// apply the field limits
	limit := len(data)
	r := util.NewReader(data[discriminatorSize:])

	var result Instruction
	switch d := data[:discriminatorSize]; {
	case bytes.Equal(d, createUserDiscriminator):
		result = CreateUser{
			Username: r.String(limit, fault.ErrInvalidInstruction),
		}
	case bytes.Equal(d, createNoteDiscriminator):
		title := r.String(limit, fault.ErrInvalidInstruction)
		content := r.String(limit, fault.ErrInvalidInstruction)
		result = CreateNote{Title: title, Content: content}
	case bytes.Equal(d, updateNoteDiscriminator):
		id := r.Uint64()
		content := r.String(limit, fault.ErrInvalidInstruction)
		result = UpdateNote{NoteId: id, Content: content}
	case bytes.Equal(d, deleteNoteDiscriminator):
		result = DeleteNote{NoteId: r.Uint64()}
	default:
		return nil, fault.ErrInvalidInstruction
	}

	if err := r.Err(); nil != err {
		return nil, fault.ErrInvalidInstruction
	}
	if r.Offset() != len(data)-discriminatorSize {
		return nil, fault.ErrInvalidInstruction
	}
	return result, nil
}

// SigningMessage - the bytes covered by the signer's signature
func SigningMessage(program address.Address, i Instruction) []byte {
	message := append([]byte{}, program.Bytes()...)
	return append(message, i.Pack()...)
}
