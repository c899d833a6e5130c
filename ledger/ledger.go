// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/kitty"
	"github.com/bitmark-inc/kittyd/messagebus"
	"github.com/bitmark-inc/kittyd/metrics"
	"github.com/bitmark-inc/kittyd/randomness"
	"github.com/bitmark-inc/kittyd/storage"
)

// operation names used in logs and metrics
const (
	createOperation      = "create"
	breedOperation       = "breed"
	transferOperation    = "transfer"
	listForSaleOperation = "list_for_sale"
	buyOperation         = "buy"
)

// listings carry no data, only presence matters
var listedMarker = []byte{0x01}

// Ledger - the kitty state and the operations that change it
type Ledger struct {
	sync.Mutex

	log     *logger.L
	store   *storage.Store
	random  randomness.Provider
	policy  Policy
	bus     *messagebus.BroadcastQueue
	metrics *metrics.Metrics
}

// New - create a ledger on an open store
//
// bus and metrics may be nil
func New(log *logger.L, store *storage.Store, random randomness.Provider, policy Policy, bus *messagebus.BroadcastQueue, m *metrics.Metrics) *Ledger {
	return &Ledger{
		log:     log,
		store:   store,
		random:  random,
		policy:  policy,
		bus:     bus,
		metrics: m,
	}
}

// Policy - the rules this ledger enforces
func (l *Ledger) Policy() Policy {
	return l.policy
}

// run one operation inside a transaction
//
// on error everything is discarded, otherwise commit
func (l *Ledger) execute(operation string, f func(trx storage.Transaction) error) error {
	l.Lock()
	defer l.Unlock()

	trx, err := l.store.Begin()
	if nil != err {
		l.log.Errorf("%s: begin error: %s", operation, err)
		l.metrics.Operation(operation, err)
		return err
	}

	err = f(trx)
	if nil != err {
		trx.Abort()
		l.log.Debugf("%s: rejected: %s", operation, err)
		l.metrics.Operation(operation, err)
		return err
	}

	err = trx.Commit()
	if nil != err {
		l.log.Errorf("%s: commit error: %s", operation, err)
	}
	l.metrics.Operation(operation, err)
	return err
}

// the randomness subject: tag ‖ caller ‖ nonce
func (l *Ledger) seed(trx storage.Transaction, tag string, caller account.Account) randomness.Seed {
	nonce := nextNonce(trx, l.store.Pool.Nonces, caller)

	subject := make([]byte, 0, len(tag)+account.PublicKeySize+len(nonce))
	subject = append(subject, tag...)
	subject = append(subject, caller.Bytes()...)
	subject = append(subject, nonce...)

	return l.random.Random(subject)
}

// fetch a record through the transaction
func (l *Ledger) kittyOf(trx storage.Transaction, id kitty.Id) (*kitty.Kitty, bool) {
	buffer := trx.Get(l.store.Pool.Kitties, id.Bytes())
	if nil == buffer {
		return nil, false
	}
	k, err := kitty.Unpack(buffer)
	if nil != err {
		logger.Criticalf("Kitties: id: %d  record: %x  error: %s", id, buffer, err)
		logger.Panic("Kitties database corrupt or not migrated")
	}
	return k, true
}

// fetch an owner through the transaction
func (l *Ledger) ownerOf(trx storage.Transaction, id kitty.Id) (account.Account, bool) {
	buffer := trx.Get(l.store.Pool.Owners, id.Bytes())
	if nil == buffer {
		return account.Account{}, false
	}
	owner, err := account.FromBytes(buffer)
	if nil != err {
		logger.Criticalf("Owners: id: %d  owner: %x  error: %s", id, buffer, err)
		logger.Panic("Owners database corrupt")
	}
	return owner, true
}
