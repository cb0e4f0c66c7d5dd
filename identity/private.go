// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package identity

import (
	"io"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/noteledger/fault"
)

// PrivateKey - an ed25519 signing key, the text form is the base58
// encoding of the 64 byte seed ++ public key, as used by wallet key files
type PrivateKey struct {
	key ed25519.PrivateKey
}

// KeyPair - text version of a key pair
type KeyPair struct {
	Identity   Identity `json:"identity"`
	PrivateKey string   `json:"private_key"`
}

// NewPrivateKey - generate a fresh key using random data from rand
func NewPrivateKey(rand io.Reader) (*PrivateKey, error) {
	_, priv, err := ed25519.GenerateKey(rand)
	if nil != err {
		return nil, err
	}
	return &PrivateKey{key: priv}, nil
}

// PrivateKeyFromBase58 - decode a private key string
func PrivateKeyFromBase58(s string) (*PrivateKey, error) {
	buffer, err := base58.Decode(s)
	if nil != err {
		return nil, fault.ErrCannotDecodePrivateKey
	}
	return PrivateKeyFromBytes(buffer)
}

// PrivateKeyFromBytes - accepts either a 32 byte seed or a 64 byte key
func PrivateKeyFromBytes(buffer []byte) (*PrivateKey, error) {
	switch len(buffer) {
	case ed25519.SeedSize:
		return &PrivateKey{key: ed25519.NewKeyFromSeed(buffer)}, nil
	case ed25519.PrivateKeySize:
		priv := ed25519.NewKeyFromSeed(buffer[:ed25519.SeedSize])
		// the embedded public key must match the seed
		if string(priv[ed25519.SeedSize:]) != string(buffer[ed25519.SeedSize:]) {
			return nil, fault.ErrCannotDecodePrivateKey
		}
		return &PrivateKey{key: priv}, nil
	default:
		return nil, fault.ErrCannotDecodePrivateKey
	}
}

// Identity - the public half of the key
func (p *PrivateKey) Identity() Identity {
	var id Identity
	copy(id[:], p.key[ed25519.SeedSize:])
	return id
}

// Sign - produce a signature over message
func (p *PrivateKey) Sign(message []byte) Signature {
	return ed25519.Sign(p.key, message)
}

// String - base58 encoding of the 64 byte key
func (p *PrivateKey) String() string {
	return base58.Encode(p.key)
}

// KeyPair - both halves in text form
func (p *PrivateKey) KeyPair() KeyPair {
	return KeyPair{
		Identity:   p.Identity(),
		PrivateKey: p.String(),
	}
}
