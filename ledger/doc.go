// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledger - create, breed, transfer and trade kitties
//
// every operation runs alone against one storage transaction: all of
// its checks read through the transaction, all of its writes go into
// it, and it is either committed whole or aborted whole.  A
// notification is broadcast only after a successful commit.
//
// from storage/doc.go:
//
//   Kitties     id      - kitty record
//   Owners      id      - owner account
//   Parents     id      - parent ids (bred kitties only)
//   Listings    id      - listed for sale marker
//   NextKittyId         - next identifier
//   Nonces      account - per-caller randomness nonce
package ledger
