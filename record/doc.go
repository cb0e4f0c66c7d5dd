// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package record - fixed size byte images of the ledger accounts
//
// every account starts with an 8 byte discriminator identifying its
// type, followed by the fields in declaration order and zero padding
// up to the maximum size of the type
//
//   UserProfile  102 bytes  authority, username, note count
//   Note         656 bytes  authority, id, title, content
//
// strings are u32 little endian byte count followed by UTF-8 bytes
// integers are u64 little endian
package record
