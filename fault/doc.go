// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error instances
//
// Provides a single instance of errors to allow easy comparison
// without having to resort to partial string matches
//
// Every error belongs to one class:
//
//   InvalidError       - field length/format violation, user correctable
//   ExistsError        - duplicate creation attempt
//   NotFoundError      - lookup of a nonexistent profile or note
//   AuthorisationError - signer is not the stored authority
//   ConflictError      - concurrent mutation detected, re-read and retry
//   FatalError         - address space exhaustion or unrecoverable storage error
//
// none of the classes except ConflictError should be retried
package fault
