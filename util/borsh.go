// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"encoding/binary"

	"github.com/bitmark-inc/noteledger/fault"
)

// little endian, length prefixed encoding shared by records and instructions
//
//   u64    = 8 bytes little endian
//   u32    = 4 bytes little endian
//   string = u32(byte count) ++ bytes
//   fixed  = raw bytes, length known from the schema

// AppendUint64 - append 8 byte little endian value
func AppendUint64(buffer []byte, value uint64) []byte {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], value)
	return append(buffer, b[:]...)
}

// AppendString - append u32 length followed by the string bytes
func AppendString(buffer []byte, s string) []byte {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], uint32(len(s)))
	buffer = append(buffer, b[:]...)
	return append(buffer, s...)
}

// Reader - sequential decoder over a byte slice
//
// the first failure is sticky, subsequent reads return zero values
type Reader struct {
	buffer []byte
	offset int
	err    error
}

// NewReader - start decoding at the beginning of buffer
func NewReader(buffer []byte) *Reader {
	return &Reader{buffer: buffer}
}

// Err - first error encountered, if any
func (r *Reader) Err() error {
	return r.err
}

// Offset - number of bytes consumed
func (r *Reader) Offset() int {
	return r.offset
}

func (r *Reader) take(n int) []byte {
	if nil != r.err {
		return nil
	}
	if n < 0 || r.offset+n > len(r.buffer) {
		r.err = fault.ErrRecordTruncated
		return nil
	}
	b := r.buffer[r.offset : r.offset+n]
	r.offset += n
	return b
}

// Fixed - next n raw bytes
func (r *Reader) Fixed(n int) []byte {
	return r.take(n)
}

// Uint64 - next 8 byte little endian value
func (r *Reader) Uint64() uint64 {
	b := r.take(8)
	if nil == b {
		return 0
	}
	return binary.LittleEndian.Uint64(b)
}

// String - next length prefixed string, longer than maximum is an error
func (r *Reader) String(maximum int, tooLong error) string {
	b := r.take(4)
	if nil == b {
		return ""
	}
	n := binary.LittleEndian.Uint32(b)
	if uint64(n) > uint64(maximum) {
		r.err = tooLong
		return ""
	}
	return string(r.take(int(n)))
}
