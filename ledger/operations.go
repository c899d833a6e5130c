// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/kittyd/genetics"
	"github.com/bitmark-inc/kittyd/kitty"
	"github.com/bitmark-inc/kittyd/storage"
)

// randomness subject tags
const (
	createTag = "kitty/create"
	breedTag  = "kitty/breed"
)

// Create - make a new kitty with random DNA owned by the caller
func (l *Ledger) Create(caller account.Account, name kitty.Name) (kitty.Id, *kitty.Kitty, error) {
	var id kitty.Id
	var k *kitty.Kitty

	err := l.execute(createOperation, func(trx storage.Transaction) error {
		var err error
		id, err = allocate(trx, l.store.Pool.NextKittyId)
		if nil != err {
			return err
		}

		seed := l.seed(trx, createTag, caller)
		k = &kitty.Kitty{
			Dna:  genetics.DnaFromSeed(seed),
			Name: name,
		}

		l.insert(trx, caller, id, k)
		return nil
	})
	if nil != err {
		return 0, nil, err
	}

	l.log.Infof("created: %d  owner: %s  dna: %s", id, caller, k.Dna)
	l.metrics.NewKitty()
	l.bus.Send(CreatedCommand, Created{
		Who:   caller,
		Id:    id,
		Kitty: *k,
	})
	return id, k, nil
}

// Breed - make a new kitty whose DNA mixes the bits of two parents
func (l *Ledger) Breed(caller account.Account, a kitty.Id, b kitty.Id, name kitty.Name) (kitty.Id, *kitty.Kitty, error) {
	var id kitty.Id
	var k *kitty.Kitty

	err := l.execute(breedOperation, func(trx storage.Transaction) error {
		parentA, ok := l.kittyOf(trx, a)
		if !ok {
			return fault.ErrInvalidIdentifier
		}
		parentB, ok := l.kittyOf(trx, b)
		if !ok {
			return fault.ErrInvalidIdentifier
		}
		if a == b {
			return fault.ErrSameIdentifier
		}

		if l.policy.BreedRequiresOwnership {
			for _, parent := range []kitty.Id{a, b} {
				owner, ok := l.ownerOf(trx, parent)
				if !ok || owner != caller {
					return fault.ErrNotOwner
				}
			}
		}

		var err error
		id, err = allocate(trx, l.store.Pool.NextKittyId)
		if nil != err {
			return err
		}

		seed := l.seed(trx, breedTag, caller)
		k = &kitty.Kitty{
			Dna:  genetics.Combine(parentA.Dna, parentB.Dna, genetics.SelectorFromSeed(seed)),
			Name: name,
		}

		l.insert(trx, caller, id, k)
		trx.Put(l.store.Pool.Parents, id.Bytes(), kitty.Parents{A: a, B: b}.Pack())
		return nil
	})
	if nil != err {
		return 0, nil, err
	}

	l.log.Infof("bred: %d  from: %d, %d  owner: %s  dna: %s", id, a, b, caller, k.Dna)
	l.metrics.NewKitty()
	l.bus.Send(BredCommand, Bred{
		Who:   caller,
		Id:    id,
		Kitty: *k,
	})
	return id, k, nil
}

// Transfer - give a kitty to another account
//
// transfer to self is allowed
func (l *Ledger) Transfer(caller account.Account, to account.Account, id kitty.Id) error {
	err := l.execute(transferOperation, func(trx storage.Transaction) error {
		owner, ok := l.ownerOf(trx, id)
		if !ok {
			return fault.ErrInvalidIdentifier
		}
		if owner != caller {
			return fault.ErrNotOwner
		}

		trx.Put(l.store.Pool.Owners, id.Bytes(), to.Bytes())
		if l.policy.TransferClearsListing && trx.Has(l.store.Pool.Listings, id.Bytes()) {
			trx.Delete(l.store.Pool.Listings, id.Bytes())
		}
		return nil
	})
	if nil != err {
		return err
	}

	l.log.Infof("transferred: %d  from: %s  to: %s", id, caller, to)
	l.bus.Send(TransferredCommand, Transferred{
		Who: caller,
		To:  to,
		Id:  id,
	})
	return nil
}

// ListForSale - offer an owned kitty for sale
func (l *Ledger) ListForSale(caller account.Account, id kitty.Id) error {
	err := l.execute(listForSaleOperation, func(trx storage.Transaction) error {
		owner, ok := l.ownerOf(trx, id)
		if !ok {
			return fault.ErrInvalidIdentifier
		}
		if owner != caller {
			return fault.ErrNotOwner
		}
		if trx.Has(l.store.Pool.Listings, id.Bytes()) {
			return fault.ErrAlreadyListed
		}

		trx.Put(l.store.Pool.Listings, id.Bytes(), listedMarker)
		return nil
	})
	if nil != err {
		return err
	}

	l.log.Infof("listed: %d  owner: %s", id, caller)
	l.bus.Send(ListedCommand, Listed{
		Who: caller,
		Id:  id,
	})
	return nil
}

// Buy - take ownership of a listed kitty
//
// no value is exchanged
func (l *Ledger) Buy(caller account.Account, id kitty.Id) error {
	var seller account.Account

	err := l.execute(buyOperation, func(trx storage.Transaction) error {
		owner, ok := l.ownerOf(trx, id)
		if !ok {
			return fault.ErrInvalidIdentifier
		}
		if owner == caller {
			return fault.ErrAlreadyOwner
		}
		if !trx.Has(l.store.Pool.Listings, id.Bytes()) {
			return fault.ErrNotListed
		}

		trx.Delete(l.store.Pool.Listings, id.Bytes())
		trx.Put(l.store.Pool.Owners, id.Bytes(), caller.Bytes())
		seller = owner
		return nil
	})
	if nil != err {
		return err
	}

	l.log.Infof("bought: %d  from: %s  by: %s", id, seller, caller)
	l.bus.Send(BoughtCommand, Bought{
		Who:  caller,
		From: seller,
		Id:   id,
	})
	return nil
}

// store a new kitty and its owner
func (l *Ledger) insert(trx storage.Transaction, owner account.Account, id kitty.Id, k *kitty.Kitty) {
	trx.Put(l.store.Pool.Kitties, id.Bytes(), k.Pack())
	trx.Put(l.store.Pool.Owners, id.Bytes(), owner.Bytes())
}
