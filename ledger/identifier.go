// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"encoding/binary"

	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/kittyd/kitty"
	"github.com/bitmark-inc/kittyd/storage"
	"github.com/bitmark-inc/logger"
)

// the counter is a single value
var nextKittyIdKey = []byte{}

const nonceSize = 8

// read the next identifier, absent means nothing was ever issued
func peekKittyId(get func(*storage.PoolHandle, []byte) []byte, pool *storage.PoolHandle) kitty.Id {
	buffer := get(pool, nextKittyIdKey)
	if nil == buffer {
		return 0
	}
	id, err := kitty.IdFromBytes(buffer)
	if nil != err {
		logger.Criticalf("NextKittyId: %x  error: %s", buffer, err)
		logger.Panic("NextKittyId database corrupt")
	}
	return id
}

// issue the next identifier
//
// at the maximum the counter is left alone and nothing is issued
func allocate(trx storage.Transaction, pool *storage.PoolHandle) (kitty.Id, error) {
	id := peekKittyId(trx.Get, pool)
	if kitty.MaxId == id {
		return 0, fault.ErrIdentifierOverflow
	}
	trx.Put(pool, nextKittyIdKey, (id + 1).Bytes())
	return id, nil
}

// per-caller counter so that repeated calls in one block differ
func nextNonce(trx storage.Transaction, pool *storage.PoolHandle, caller account.Account) []byte {
	key := caller.Bytes()
	n := uint64(0)
	if buffer := trx.Get(pool, key); nil != buffer {
		if nonceSize != len(buffer) {
			logger.Criticalf("Nonces: %x  value: %x", key, buffer)
			logger.Panic("Nonces database corrupt")
		}
		n = binary.BigEndian.Uint64(buffer)
	}

	current := make([]byte, nonceSize)
	binary.BigEndian.PutUint64(current, n)

	next := make([]byte, nonceSize)
	binary.BigEndian.PutUint64(next, n+1)
	trx.Put(pool, key, next)

	return current
}
