// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package kitty

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"math"
	"strconv"

	"github.com/bitmark-inc/kittyd/fault"
)

// record sizes
const (
	IdSize      = 4
	DnaSize     = 16
	NameSize    = 8
	PackedSize  = DnaSize + NameSize
	ParentsSize = 2 * IdSize
)

// MaxId - the largest identifier the allocator can hold; it is never issued
const MaxId = Id(math.MaxUint32)

// Id - kitty identifier
type Id uint32

// Dna - genome, fixed at creation
type Dna [DnaSize]byte

// Name - label in the current record layout
type Name [NameSize]byte

// Kitty - a stored record
type Kitty struct {
	Dna  Dna  `json:"dna"`
	Name Name `json:"name"`
}

// Parents - parentage of a bred kitty
type Parents struct {
	A Id `json:"a"`
	B Id `json:"b"`
}

// Bytes - big endian so that store order is identifier order
func (id Id) Bytes() []byte {
	buffer := make([]byte, IdSize)
	binary.BigEndian.PutUint32(buffer, uint32(id))
	return buffer
}

// IdFromBytes - decode a 4 byte big endian identifier
func IdFromBytes(buffer []byte) (Id, error) {
	if IdSize != len(buffer) {
		return 0, fault.ErrRecordLength
	}
	return Id(binary.BigEndian.Uint32(buffer)), nil
}

// ParseId - decimal text to identifier
func ParseId(s string) (Id, error) {
	n, err := strconv.ParseUint(s, 10, 32)
	if nil != err {
		return 0, fault.ErrInvalidIdentifier
	}
	return Id(n), nil
}

// Pack - dna ++ name
func (k Kitty) Pack() []byte {
	buffer := make([]byte, 0, PackedSize)
	buffer = append(buffer, k.Dna[:]...)
	return append(buffer, k.Name[:]...)
}

// Unpack - decode a record in the current layout
func Unpack(buffer []byte) (*Kitty, error) {
	if PackedSize != len(buffer) {
		return nil, fault.ErrRecordLength
	}
	k := &Kitty{}
	copy(k.Dna[:], buffer[:DnaSize])
	copy(k.Name[:], buffer[DnaSize:])
	return k, nil
}

// Pack - parent A ++ parent B
func (p Parents) Pack() []byte {
	buffer := make([]byte, 0, ParentsSize)
	buffer = append(buffer, p.A.Bytes()...)
	return append(buffer, p.B.Bytes()...)
}

// UnpackParents - decode a parentage record
func UnpackParents(buffer []byte) (*Parents, error) {
	if ParentsSize != len(buffer) {
		return nil, fault.ErrRecordLength
	}
	return &Parents{
		A: Id(binary.BigEndian.Uint32(buffer[:IdSize])),
		B: Id(binary.BigEndian.Uint32(buffer[IdSize:])),
	}, nil
}

// NewName - copy text into a fixed size name, zero padded
func NewName(s string) (Name, error) {
	var n Name
	if len(s) > NameSize {
		return n, fault.ErrNameTooLong
	}
	copy(n[:], s)
	return n, nil
}

// String - name without the zero padding
func (n Name) String() string {
	return string(bytes.TrimRight(n[:], "\x00"))
}

// MarshalText - name as plain text
func (n Name) MarshalText() ([]byte, error) {
	return []byte(n.String()), nil
}

// UnmarshalText - plain text to name
func (n *Name) UnmarshalText(s []byte) error {
	name, err := NewName(string(s))
	if nil != err {
		return err
	}
	*n = name
	return nil
}

// String - dna as hex
func (d Dna) String() string {
	return hex.EncodeToString(d[:])
}

// MarshalText - dna as hex
func (d Dna) MarshalText() ([]byte, error) {
	buffer := make([]byte, hex.EncodedLen(DnaSize))
	hex.Encode(buffer, d[:])
	return buffer, nil
}

// UnmarshalText - hex to dna
func (d *Dna) UnmarshalText(s []byte) error {
	if hex.EncodedLen(DnaSize) != len(s) {
		return fault.ErrRecordLength
	}
	_, err := hex.Decode(d[:], s)
	return err
}
