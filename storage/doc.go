// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk kitty ledger
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available tables.
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++      = concatenation of byte data
// 3. id      = kitty identifier as big endian uint32 (4 bytes)
// 4. account = owner public key (32 bytes)
// 5. nonce   = big endian uint64 (8 bytes)
//
// Kitties:
//
//   K ++ id                    - kitty record
//                                data (version 1): dna(16) ++ name(4)
//                                data (version 2): dna(16) ++ name(8)
//   O ++ id                    - current owner
//                                data: account
//   P ++ id                    - parents, only present for bred kitties
//                                data: id ++ id
//   S ++ id                    - listed for sale
//                                data: 0x01
//
// Allocation:
//
//   N                          - next identifier to issue
//                                data: id
//   C ++ account               - per-caller randomness nonce
//                                data: nonce
//
// Version:
//
//   0x00 ++ "VERSION"          - schema version of the kitty records
//                                data: big endian uint32
package storage
