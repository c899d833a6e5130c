// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error instances
//
// Every ledger, storage and RPC failure is a single error value so
// callers compare with == and classify with the IsErrX helpers
// instead of matching message text.  The RPC layer returns these
// values unchanged so a client sees the same message.
package fault
