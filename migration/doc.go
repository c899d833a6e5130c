// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package migration - bring stored kitty records up to the current layout
//
// version 1 records are 20 bytes: 16 bytes DNA followed by a 4 byte
// name.  Version 2 records are 24 bytes with an 8 byte name; the old
// name is replaced by a fixed placeholder.
//
// the upgrade runs once, at start up, before the ledger accepts any
// operation.
package migration
