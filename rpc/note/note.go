// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package note

import (
	"context"
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/noteledger/address"
	"github.com/bitmark-inc/noteledger/identity"
	"github.com/bitmark-inc/noteledger/instruction"
	"github.com/bitmark-inc/noteledger/note"
	"github.com/bitmark-inc/noteledger/record"
	"github.com/bitmark-inc/noteledger/rpc/ratelimit"
	"github.com/bitmark-inc/noteledger/rpc/request"
	"github.com/bitmark-inc/noteledger/rpc/retry"
)

const (
	rateLimitNote = 200
	rateBurstNote = 100

	operationTimeout = 5 * time.Second
)

// Note - type for RPC calls
type Note struct {
	Log     *logger.L
	Limiter *rate.Limiter
	deriver address.Deriver
	notes   *note.Store
}

// New - create note service
func New(log *logger.L, deriver address.Deriver, notes *note.Store) *Note {
	return &Note{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitNote, rateBurstNote),
		deriver: deriver,
		notes:   notes,
	}
}

// NoteReply - a note, its address and the request it answered
type NoteReply struct {
	RequestId string          `json:"requestId,omitempty"`
	Address   address.Address `json:"address"`
	Note      *record.Note    `json:"note"`
}

// ---

// CreateArguments - signed create_note request
type CreateArguments struct {
	RequestId string             `json:"requestId"`
	Signer    identity.Identity  `json:"signer"`
	Title     string             `json:"title"`
	Content   string             `json:"content"`
	Signature identity.Signature `json:"signature"`
}

// Create - add a note to the signer's sequence
func (n *Note) Create(arguments *CreateArguments, reply *NoteReply) error {
	if err := ratelimit.Limit(n.Limiter); nil != err {
		return err
	}

	id := request.Id(arguments.RequestId)
	n.Log.Infof("%s: create note signer: %s", id, arguments.Signer)

	i := instruction.CreateNote{Title: arguments.Title, Content: arguments.Content}
	if err := request.Verify(n.deriver.Program(), arguments.Signer, i, arguments.Signature); nil != err {
		n.Log.Warnf("%s: create note error: %s", id, err)
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), operationTimeout)
	defer cancel()

	var created *record.Note
	err := retry.Do(ctx, n.Log, retry.Default, id, func() error {
		var err error
		created, err = n.notes.Create(ctx, arguments.Signer, arguments.Title, arguments.Content)
		return err
	})
	if nil != err {
		n.Log.Warnf("%s: create note error: %s", id, err)
		return err
	}

	return n.fill(id, arguments.Signer, created, reply)
}

// ---

// UpdateArguments - signed update_note request
//
// Owner selects whose sequence the id is in, the signer's by default
type UpdateArguments struct {
	RequestId string             `json:"requestId"`
	Signer    identity.Identity  `json:"signer"`
	Owner     *identity.Identity `json:"owner,omitempty"`
	NoteId    uint64             `json:"noteId,string"`
	Content   string             `json:"content"`
	Signature identity.Signature `json:"signature"`
}

// Update - replace the content of a note
func (n *Note) Update(arguments *UpdateArguments, reply *NoteReply) error {
	if err := ratelimit.Limit(n.Limiter); nil != err {
		return err
	}

	id := request.Id(arguments.RequestId)
	owner := ownerOf(arguments.Owner, arguments.Signer)
	n.Log.Infof("%s: update note: %d of: %s signer: %s", id, arguments.NoteId, owner, arguments.Signer)

	i := instruction.UpdateNote{NoteId: arguments.NoteId, Content: arguments.Content}
	if err := request.Verify(n.deriver.Program(), arguments.Signer, i, arguments.Signature); nil != err {
		n.Log.Warnf("%s: update note error: %s", id, err)
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), operationTimeout)
	defer cancel()

	var updated *record.Note
	err := retry.Do(ctx, n.Log, retry.Default, id, func() error {
		var err error
		updated, err = n.notes.UpdateAt(ctx, arguments.Signer, owner, arguments.NoteId, arguments.Content)
		return err
	})
	if nil != err {
		n.Log.Warnf("%s: update note error: %s", id, err)
		return err
	}

	return n.fill(id, owner, updated, reply)
}

// ---

// DeleteArguments - signed delete_note request
type DeleteArguments struct {
	RequestId string             `json:"requestId"`
	Signer    identity.Identity  `json:"signer"`
	Owner     *identity.Identity `json:"owner,omitempty"`
	NoteId    uint64             `json:"noteId,string"`
	Signature identity.Signature `json:"signature"`
}

// DeleteReply - address of the removed note
type DeleteReply struct {
	RequestId string          `json:"requestId"`
	Address   address.Address `json:"address"`
}

// Delete - remove a note
func (n *Note) Delete(arguments *DeleteArguments, reply *DeleteReply) error {
	if err := ratelimit.Limit(n.Limiter); nil != err {
		return err
	}

	id := request.Id(arguments.RequestId)
	owner := ownerOf(arguments.Owner, arguments.Signer)
	n.Log.Infof("%s: delete note: %d of: %s signer: %s", id, arguments.NoteId, owner, arguments.Signer)

	i := instruction.DeleteNote{NoteId: arguments.NoteId}
	if err := request.Verify(n.deriver.Program(), arguments.Signer, i, arguments.Signature); nil != err {
		n.Log.Warnf("%s: delete note error: %s", id, err)
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), operationTimeout)
	defer cancel()

	err := retry.Do(ctx, n.Log, retry.Default, id, func() error {
		return n.notes.DeleteAt(ctx, arguments.Signer, owner, arguments.NoteId)
	})
	if nil != err {
		n.Log.Warnf("%s: delete note error: %s", id, err)
		return err
	}

	a, err := n.deriver.Note(owner, arguments.NoteId)
	if nil != err {
		return err
	}
	reply.RequestId = id
	reply.Address = a
	return nil
}

// ---

// GetArguments - note lookup
type GetArguments struct {
	Owner identity.Identity `json:"owner"`
	Id    uint64            `json:"id,string"`
}

// Get - fetch one note
func (n *Note) Get(arguments *GetArguments, reply *NoteReply) error {
	if err := ratelimit.Limit(n.Limiter); nil != err {
		return err
	}

	found, err := n.notes.Fetch(arguments.Owner, arguments.Id)
	if nil != err {
		return err
	}
	return n.fill("", arguments.Owner, found, reply)
}

// ---

// ListArguments - page of an owner's notes
type ListArguments struct {
	Owner identity.Identity `json:"owner"`
	Start uint64            `json:"start,string"`
	Count int               `json:"count"`
}

// ListReply - notes in id order and where to continue
type ListReply struct {
	Notes     []record.Note `json:"notes"`
	NextStart uint64        `json:"nextStart,string"`
}

// List - live notes of an owner
func (n *Note) List(arguments *ListArguments, reply *ListReply) error {
	if err := ratelimit.LimitN(n.Limiter, arguments.Count, note.MaximumListCount); nil != err {
		return err
	}

	notes, next, err := n.notes.List(arguments.Owner, arguments.Start, arguments.Count)
	if nil != err {
		return err
	}

	reply.Notes = notes
	reply.NextStart = next
	return nil
}

func (n *Note) fill(requestId string, owner identity.Identity, value *record.Note, reply *NoteReply) error {
	a, err := n.deriver.Note(owner, value.Id)
	if nil != err {
		return err
	}
	reply.RequestId = requestId
	reply.Address = a
	reply.Note = value
	return nil
}

func ownerOf(owner *identity.Identity, signer identity.Identity) identity.Identity {
	if nil == owner || owner.IsZero() {
		return signer
	}
	return *owner
}
