// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/noteledger/identity"
	"github.com/bitmark-inc/noteledger/instruction"
	rpcnote "github.com/bitmark-inc/noteledger/rpc/note"
	"github.com/bitmark-inc/noteledger/rpc/request"
)

// CreateNote - add a note to the client key's sequence
func (client *Client) CreateNote(title string, content string) (*rpcnote.NoteReply, error) {
	key, err := client.signer()
	if nil != err {
		return nil, err
	}

	arguments := rpcnote.CreateArguments{
		RequestId: request.Id(""),
		Signer:    key.Identity(),
		Title:     title,
		Content:   content,
		Signature: request.Sign(client.program, key, instruction.CreateNote{Title: title, Content: content}),
	}

	var reply rpcnote.NoteReply
	if err := client.call("Note.Create", arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// UpdateNote - replace the content of a note, owner nil for the
// client key's own sequence
func (client *Client) UpdateNote(owner *identity.Identity, id uint64, content string) (*rpcnote.NoteReply, error) {
	key, err := client.signer()
	if nil != err {
		return nil, err
	}

	arguments := rpcnote.UpdateArguments{
		RequestId: request.Id(""),
		Signer:    key.Identity(),
		Owner:     owner,
		NoteId:    id,
		Content:   content,
		Signature: request.Sign(client.program, key, instruction.UpdateNote{NoteId: id, Content: content}),
	}

	var reply rpcnote.NoteReply
	if err := client.call("Note.Update", arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// DeleteNote - remove a note, owner nil for the client key's own
// sequence
func (client *Client) DeleteNote(owner *identity.Identity, id uint64) (*rpcnote.DeleteReply, error) {
	key, err := client.signer()
	if nil != err {
		return nil, err
	}

	arguments := rpcnote.DeleteArguments{
		RequestId: request.Id(""),
		Signer:    key.Identity(),
		Owner:     owner,
		NoteId:    id,
		Signature: request.Sign(client.program, key, instruction.DeleteNote{NoteId: id}),
	}

	var reply rpcnote.DeleteReply
	if err := client.call("Note.Delete", arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// GetNote - fetch one note
func (client *Client) GetNote(owner identity.Identity, id uint64) (*rpcnote.NoteReply, error) {
	var reply rpcnote.NoteReply
	if err := client.call("Note.Get", rpcnote.GetArguments{Owner: owner, Id: id}, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// ListNotes - one page of an owner's notes
func (client *Client) ListNotes(owner identity.Identity, start uint64, count int) (*rpcnote.ListReply, error) {
	arguments := rpcnote.ListArguments{
		Owner: owner,
		Start: start,
		Count: count,
	}

	var reply rpcnote.ListReply
	if err := client.call("Note.List", arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}
