// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package messagebus - fan out ledger notifications to any number of
// listeners
//
// a listener that falls behind loses messages rather than stalling
// the ledger
package messagebus
