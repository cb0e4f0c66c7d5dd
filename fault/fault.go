// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"errors"
	"fmt"
)

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type AuthorisationError GenericError
type ConflictError GenericError
type ExistsError GenericError
type FatalError GenericError
type InvalidError GenericError
type NotFoundError GenericError

// common errors - keep in alphabetic order
var (
	ErrAccountInUse              = ConflictError("account is locked by another transaction")
	ErrAccountNotLocked          = FatalError("account is not locked by this transaction")
	ErrAddressSpaceExhausted     = FatalError("address space exhausted")
	ErrAlreadyInitialised        = ExistsError("already initialised")
	ErrCannotDecodeAddress       = InvalidError("cannot decode address")
	ErrCannotDecodeIdentity      = InvalidError("cannot decode identity")
	ErrCannotDecodePrivateKey    = InvalidError("cannot decode private key")
	ErrCertificateFileExists     = ExistsError("certificate file already exists")
	ErrContentTooLong            = InvalidError("content too long")
	ErrDatabaseVersion           = FatalError("incompatible database version")
	ErrIncompatibleRecordVersion = InvalidError("incompatible record discriminator")
	ErrInvalidCount              = InvalidError("invalid count")
	ErrInvalidCursor             = InvalidError("invalid cursor")
	ErrInvalidIdentityLength     = InvalidError("invalid identity length")
	ErrInvalidInstruction        = InvalidError("invalid instruction")
	ErrInvalidIpAddress          = InvalidError("invalid IP address")
	ErrInvalidNoteId             = InvalidError("invalid note id")
	ErrInvalidSignature          = InvalidError("invalid signature")
	ErrInvalidStructPointer      = InvalidError("invalid struct pointer")
	ErrInvalidUtf8               = InvalidError("string is not valid UTF-8")
	ErrKeyFileExists             = ExistsError("key file already exists")
	ErrMissingParameters         = InvalidError("missing parameters")
	ErrMissingSigner             = InvalidError("missing signer")
	ErrNoteAlreadyExists         = ExistsError("note already exists")
	ErrNoteNotFound              = NotFoundError("note not found")
	ErrNotInitialised            = NotFoundError("not initialised")
	ErrNotProgramAddress         = InvalidError("seeds derive to an on-curve point")
	ErrProfileAlreadyExists      = ExistsError("user profile already exists")
	ErrProfileNotFound           = NotFoundError("user profile not found")
	ErrRateLimiting              = InvalidError("rate limiting")
	ErrRecordNotFound            = NotFoundError("record not found")
	ErrRecordTruncated           = InvalidError("record truncated")
	ErrSeedTooLong               = InvalidError("seed too long")
	ErrTitleEmpty                = InvalidError("title is empty")
	ErrTitleTooLong              = InvalidError("title too long")
	ErrTooManySeeds              = InvalidError("too many seeds")
	ErrTransactionClosed         = InvalidError("transaction already closed")
	ErrUnauthorizedAccess        = AuthorisationError("you are not authorized to perform this action")
	ErrUsernameEmpty             = InvalidError("username is empty")
	ErrUsernameTooLong           = InvalidError("username too long")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e AuthorisationError) Error() string { return string(e) }
func (e ConflictError) Error() string      { return string(e) }
func (e ExistsError) Error() string        { return string(e) }
func (e FatalError) Error() string         { return string(e) }
func (e InvalidError) Error() string       { return string(e) }
func (e NotFoundError) Error() string      { return string(e) }

// determine the class of an error, wrapped errors are unwrapped
func IsErrConflict(e error) bool     { var x ConflictError; return errors.As(e, &x) }
func IsErrExists(e error) bool       { var x ExistsError; return errors.As(e, &x) }
func IsErrFatal(e error) bool        { var x FatalError; return errors.As(e, &x) }
func IsErrInvalid(e error) bool      { var x InvalidError; return errors.As(e, &x) }
func IsErrNotFound(e error) bool     { var x NotFoundError; return errors.As(e, &x) }
func IsErrUnauthorised(e error) bool { var x AuthorisationError; return errors.As(e, &x) }

// IsErrRetryable - only a conflict can succeed when resubmitted with fresh state
func IsErrRetryable(e error) bool { return IsErrConflict(e) }

// fatalWrapper - an underlying error promoted to the fatal class
type fatalWrapper struct {
	operation string
	err       error
}

func (w *fatalWrapper) Error() string {
	return fmt.Sprintf("%s: %s", w.operation, w.err)
}

func (w *fatalWrapper) Unwrap() error { return w.err }

func (w *fatalWrapper) As(target interface{}) bool {
	if f, ok := target.(*FatalError); ok {
		*f = FatalError(w.Error())
		return true
	}
	return false
}

// Fatal - tag an unexpected collaborator error as unrecoverable
//
// errors that already carry a class are returned unchanged
func Fatal(operation string, err error) error {
	if nil == err {
		return nil
	}
	if IsErrConflict(err) || IsErrExists(err) || IsErrFatal(err) ||
		IsErrInvalid(err) || IsErrNotFound(err) || IsErrUnauthorised(err) {
		return err
	}
	return &fatalWrapper{operation: operation, err: err}
}
