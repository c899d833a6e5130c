// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package migration

import (
	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/kittyd/kitty"
)

// layout of a version 1 record
const (
	OldNameSize   = 4
	OldPackedSize = kitty.DnaSize + OldNameSize
)

// Placeholder - the name given to every upgraded record
const Placeholder = "kitty_v1"

// OldKitty - a version 1 record
type OldKitty struct {
	Dna  kitty.Dna
	Name [OldNameSize]byte
}

// UnpackOld - decode a version 1 record
func UnpackOld(buffer []byte) (*OldKitty, error) {
	if OldPackedSize != len(buffer) {
		return nil, fault.ErrRecordLength
	}
	old := &OldKitty{}
	n := copy(old.Dna[:], buffer)
	copy(old.Name[:], buffer[n:])
	return old, nil
}

// Upgrade - the version 2 record for a version 1 record
//
// DNA is kept, the name is discarded
func Upgrade(old OldKitty) kitty.Kitty {
	k := kitty.Kitty{
		Dna: old.Dna,
	}
	copy(k.Name[:], Placeholder)
	return k
}
