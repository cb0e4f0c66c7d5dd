// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk ledger
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available tables.
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++       = concatenation of byte data
// 3. address  = derived account address (32 bytes)
// 4. owner    = identity public key (32 bytes)
// 5. id       = note id as big endian uint64 (8 bytes) so keys sort numerically
//
// Accounts:
//
//   A ++ address               - account data
//                                data: packed UserProfile or Note record
//
// Note index:
//
//   I ++ owner ++ id           - live notes of an owner
//                                data: address
//
// Testing:
//   Z ++ key                   - testing data
//
// all the writes of one transaction go to a single LevelDB batch so a
// commit is applied completely or not at all
package storage
