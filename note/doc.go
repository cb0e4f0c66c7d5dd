// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package note - lifecycle of the note accounts
//
// a note id is the owner's profile note count plus one at the time of
// creation, the count is never decremented so an id is never reused
// even after the note is deleted
//
//   Nonexistent --create--> Active --update--> Active
//                           Active --delete--> Deleted (terminal)
package note
