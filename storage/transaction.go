// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"sync"

	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/logger"
)

// Transaction - all writes of a single ledger operation
//
// nothing reaches the database until Commit; Abort discards every
// write so a failed operation leaves the pools untouched
type Transaction interface {
	Put(*PoolHandle, []byte, []byte)
	Delete(*PoolHandle, []byte)
	Get(*PoolHandle, []byte) []byte
	Has(*PoolHandle, []byte) bool
	Commit() error
	Abort()
}

type transaction struct {
	sync.Mutex
	inUse bool
	data  *database
	batch *leveldb.Batch
	cache Cache
}

func newTransaction(data *database, cache Cache) *transaction {
	return &transaction{
		inUse: false,
		data:  data,
		batch: new(leveldb.Batch),
		cache: cache,
	}
}

func (t *transaction) begin() error {
	t.Lock()
	defer t.Unlock()

	if t.inUse {
		return fault.ErrTransactionInUse
	}

	t.inUse = true
	return nil
}

func (t *transaction) Put(p *PoolHandle, key []byte, value []byte) {
	k := p.prefixKey(key)
	v := make([]byte, len(value))
	copy(v, value)
	t.cache.Set(dbPut, string(k), v)
	t.batch.Put(k, v)
}

func (t *transaction) Delete(p *PoolHandle, key []byte) {
	k := p.prefixKey(key)
	t.cache.Set(dbDelete, string(k), nil)
	t.batch.Delete(k)
}

// Get - read through uncommitted writes to the database
func (t *transaction) Get(p *PoolHandle, key []byte) []byte {
	k := p.prefixKey(key)
	value, found, deleted := t.cache.Get(string(k))
	if deleted {
		return nil
	}
	if found {
		return value
	}

	t.data.RLock()
	defer t.data.RUnlock()
	if nil == t.data.db {
		return nil
	}
	value, err := t.data.db.Get(k, nil)
	if leveldb.ErrNotFound == err {
		return nil
	}
	logger.PanicIfError("transaction.Get", err)
	return value
}

func (t *transaction) Has(p *PoolHandle, key []byte) bool {
	k := p.prefixKey(key)
	_, found, deleted := t.cache.Get(string(k))
	if deleted {
		return false
	}
	if found {
		return true
	}

	t.data.RLock()
	defer t.data.RUnlock()
	if nil == t.data.db {
		return false
	}
	value, err := t.data.db.Has(k, nil)
	logger.PanicIfError("transaction.Has", err)
	return value
}

// Commit - write the batch atomically and end the transaction
func (t *transaction) Commit() error {
	t.Lock()
	defer t.Unlock()

	if !t.inUse {
		return fault.ErrTransactionNotInUse
	}

	t.data.RLock()
	db := t.data.db
	var err error = fault.ErrNotInitialised
	if nil != db {
		err = db.Write(t.batch, nil)
	}
	t.data.RUnlock()

	t.reset()
	return err
}

// Abort - discard all writes and end the transaction
func (t *transaction) Abort() {
	t.Lock()
	defer t.Unlock()
	t.reset()
}

// must hold the lock
func (t *transaction) reset() {
	t.batch.Reset()
	t.cache.Clear()
	t.inUse = false
}
