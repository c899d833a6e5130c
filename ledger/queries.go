// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/kittyd/kitty"
	"github.com/bitmark-inc/kittyd/storage"
)

// queries read committed data only

// Details - everything known about one kitty
type Details struct {
	Id      kitty.Id        `json:"id"`
	Kitty   kitty.Kitty     `json:"kitty"`
	Owner   account.Account `json:"owner"`
	Parents *kitty.Parents  `json:"parents,omitempty"`
	Listed  bool            `json:"listed"`
}

// Entry - one item of a listing
type Entry struct {
	Id    kitty.Id    `json:"id"`
	Kitty kitty.Kitty `json:"kitty"`
}

// Kitty - a committed kitty record
func (l *Ledger) Kitty(id kitty.Id) (*kitty.Kitty, bool) {
	buffer := l.store.Pool.Kitties.Get(id.Bytes())
	if nil == buffer {
		return nil, false
	}
	k, err := kitty.Unpack(buffer)
	if nil != err {
		l.log.Errorf("kitty: %d  record: %x  error: %s", id, buffer, err)
		return nil, false
	}
	return k, true
}

// Owner - the committed owner of a kitty
func (l *Ledger) Owner(id kitty.Id) (account.Account, bool) {
	buffer := l.store.Pool.Owners.Get(id.Bytes())
	if nil == buffer {
		return account.Account{}, false
	}
	owner, err := account.FromBytes(buffer)
	if nil != err {
		l.log.Errorf("kitty: %d  owner: %x  error: %s", id, buffer, err)
		return account.Account{}, false
	}
	return owner, true
}

// Parents - the parents of a bred kitty
func (l *Ledger) Parents(id kitty.Id) (*kitty.Parents, bool) {
	buffer := l.store.Pool.Parents.Get(id.Bytes())
	if nil == buffer {
		return nil, false
	}
	parents, err := kitty.UnpackParents(buffer)
	if nil != err {
		l.log.Errorf("kitty: %d  parents: %x  error: %s", id, buffer, err)
		return nil, false
	}
	return parents, true
}

// IsListed - true if the kitty is for sale
func (l *Ledger) IsListed(id kitty.Id) bool {
	return l.store.Pool.Listings.Has(id.Bytes())
}

// NextKittyId - the identifier the next create or breed would receive
func (l *Ledger) NextKittyId() kitty.Id {
	return peekKittyId(func(p *storage.PoolHandle, key []byte) []byte {
		return p.Get(key)
	}, l.store.Pool.NextKittyId)
}

// Details - a consistent view of one kitty
func (l *Ledger) Details(id kitty.Id) (*Details, error) {
	l.Lock()
	defer l.Unlock()

	k, ok := l.Kitty(id)
	if !ok {
		return nil, fault.ErrInvalidIdentifier
	}
	owner, ok := l.Owner(id)
	if !ok {
		return nil, fault.ErrInvalidIdentifier
	}
	parents, _ := l.Parents(id)

	return &Details{
		Id:      id,
		Kitty:   *k,
		Owner:   owner,
		Parents: parents,
		Listed:  l.IsListed(id),
	}, nil
}

// Kitties - up to count kitties in identifier order starting at start
func (l *Ledger) Kitties(start kitty.Id, count int) ([]Entry, error) {
	l.Lock()
	defer l.Unlock()

	cursor := l.store.Pool.Kitties.NewFetchCursor().Seek(start.Bytes())
	elements, err := cursor.Fetch(count)
	if nil != err {
		return nil, err
	}

	entries := make([]Entry, 0, len(elements))
	for _, e := range elements {
		id, err := kitty.IdFromBytes(e.Key)
		if nil != err {
			logger.Criticalf("Kitties: key: %x  error: %s", e.Key, err)
			return nil, err
		}
		k, err := kitty.Unpack(e.Value)
		if nil != err {
			l.log.Errorf("kitty: %d  record: %x  error: %s", id, e.Value, err)
			return nil, err
		}
		entries = append(entries, Entry{
			Id:    id,
			Kitty: *k,
		})
	}
	return entries, nil
}
