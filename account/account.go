// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/kittyd/fault"
)

// miscellaneous constants
const (
	PublicKeySize  = 32
	checksumLength = 4
)

// Account - the public key of a ledger participant
//
// signature checking is done by the host before an operation reaches
// the ledger, so only the key bytes are carried here
type Account [PublicKeySize]byte

// FromBytes - create an account from raw public key bytes
func FromBytes(buffer []byte) (Account, error) {
	var a Account
	if PublicKeySize != len(buffer) {
		return a, fault.ErrRecordLength
	}
	copy(a[:], buffer)
	return a, nil
}

// FromBase58 - decode a base58 account with its trailing checksum
func FromBase58(s string) (Account, error) {
	var a Account

	decoded, err := base58.Decode(s)
	if nil != err || PublicKeySize+checksumLength != len(decoded) {
		return a, fault.ErrCannotDecodeAccount
	}

	checksum := sha3.Sum256(decoded[:PublicKeySize])
	if !bytes.Equal(checksum[:checksumLength], decoded[PublicKeySize:]) {
		return a, fault.ErrChecksumMismatch
	}

	copy(a[:], decoded[:PublicKeySize])
	return a, nil
}

// Bytes - the public key as a byte slice
func (a Account) Bytes() []byte {
	b := make([]byte, PublicKeySize)
	copy(b, a[:])
	return b
}

// String - base58 encoding: public key ++ checksum
func (a Account) String() string {
	checksum := sha3.Sum256(a[:])
	buffer := make([]byte, 0, PublicKeySize+checksumLength)
	buffer = append(buffer, a[:]...)
	buffer = append(buffer, checksum[:checksumLength]...)
	return base58.Encode(buffer)
}

// MarshalText - convert an account to its base58 text form
func (a Account) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText - convert base58 text to an account
func (a *Account) UnmarshalText(s []byte) error {
	decoded, err := FromBase58(string(s))
	if nil != err {
		return err
	}
	*a = decoded
	return nil
}
