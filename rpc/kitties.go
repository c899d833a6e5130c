// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/kittyd/kitty"
	"github.com/bitmark-inc/kittyd/ledger"
)

const (
	rateLimitKitties = 200
	rateBurstKitties = 100

	// limit for count
	maximumKittiesList = 100
)

// Kitties - type for RPC calls
type Kitties struct {
	Log      *logger.L
	Limiter  *rate.Limiter
	Ledger   *ledger.Ledger
	ReadOnly bool
}

// NewKitties - the kitty service over a ledger
func NewKitties(log *logger.L, l *ledger.Ledger, readOnly bool) *Kitties {
	return &Kitties{
		Log:      log,
		Limiter:  rate.NewLimiter(rateLimitKitties, rateBurstKitties),
		Ledger:   l,
		ReadOnly: readOnly,
	}
}

// the zero account is never a valid caller
var noAccount account.Account

// checks common to all mutating calls
func (k *Kitties) mutation(caller account.Account) error {
	if err := rateLimit(k.Limiter); nil != err {
		return err
	}
	if k.ReadOnly {
		return fault.NotAvailableInReadOnlyMode
	}
	if noAccount == caller {
		return fault.MissingParameters
	}
	return nil
}

// ---

// CreateArguments - arguments for create
type CreateArguments struct {
	Caller account.Account `json:"caller"`
	Name   string          `json:"name"`
}

// KittyReply - a newly made kitty
type KittyReply struct {
	Id    kitty.Id    `json:"id"`
	Kitty kitty.Kitty `json:"kitty"`
}

// Create - make a kitty with random DNA
func (k *Kitties) Create(arguments *CreateArguments, reply *KittyReply) error {
	if nil == arguments {
		return fault.MissingParameters
	}
	if err := k.mutation(arguments.Caller); nil != err {
		return err
	}

	name, err := kitty.NewName(arguments.Name)
	if nil != err {
		return err
	}

	k.Log.Infof("Kitties.Create: %+v", arguments)

	id, result, err := k.Ledger.Create(arguments.Caller, name)
	if nil != err {
		return err
	}

	reply.Id = id
	reply.Kitty = *result
	return nil
}

// ---

// BreedArguments - arguments for breed
type BreedArguments struct {
	Caller account.Account `json:"caller"`
	A      kitty.Id        `json:"a"`
	B      kitty.Id        `json:"b"`
	Name   string          `json:"name"`
}

// Breed - make a kitty from two parents
func (k *Kitties) Breed(arguments *BreedArguments, reply *KittyReply) error {
	if nil == arguments {
		return fault.MissingParameters
	}
	if err := k.mutation(arguments.Caller); nil != err {
		return err
	}

	name, err := kitty.NewName(arguments.Name)
	if nil != err {
		return err
	}

	k.Log.Infof("Kitties.Breed: %+v", arguments)

	id, result, err := k.Ledger.Breed(arguments.Caller, arguments.A, arguments.B, name)
	if nil != err {
		return err
	}

	reply.Id = id
	reply.Kitty = *result
	return nil
}

// ---

// TransferArguments - arguments for transfer
type TransferArguments struct {
	Caller account.Account `json:"caller"`
	To     account.Account `json:"to"`
	Id     kitty.Id        `json:"id"`
}

// StatusReply - result of a call that only changes state
type StatusReply struct {
	Id kitty.Id `json:"id"`
}

// Transfer - give a kitty away
func (k *Kitties) Transfer(arguments *TransferArguments, reply *StatusReply) error {
	if nil == arguments {
		return fault.MissingParameters
	}
	if err := k.mutation(arguments.Caller); nil != err {
		return err
	}
	if noAccount == arguments.To {
		return fault.MissingParameters
	}

	k.Log.Infof("Kitties.Transfer: %+v", arguments)

	err := k.Ledger.Transfer(arguments.Caller, arguments.To, arguments.Id)
	if nil != err {
		return err
	}
	reply.Id = arguments.Id
	return nil
}

// ---

// MarketArguments - arguments for list for sale and buy
type MarketArguments struct {
	Caller account.Account `json:"caller"`
	Id     kitty.Id        `json:"id"`
}

// ListForSale - offer a kitty for sale
func (k *Kitties) ListForSale(arguments *MarketArguments, reply *StatusReply) error {
	if nil == arguments {
		return fault.MissingParameters
	}
	if err := k.mutation(arguments.Caller); nil != err {
		return err
	}

	k.Log.Infof("Kitties.ListForSale: %+v", arguments)

	err := k.Ledger.ListForSale(arguments.Caller, arguments.Id)
	if nil != err {
		return err
	}
	reply.Id = arguments.Id
	return nil
}

// Buy - take a listed kitty
func (k *Kitties) Buy(arguments *MarketArguments, reply *StatusReply) error {
	if nil == arguments {
		return fault.MissingParameters
	}
	if err := k.mutation(arguments.Caller); nil != err {
		return err
	}

	k.Log.Infof("Kitties.Buy: %+v", arguments)

	err := k.Ledger.Buy(arguments.Caller, arguments.Id)
	if nil != err {
		return err
	}
	reply.Id = arguments.Id
	return nil
}

// ---

// GetArguments - arguments for get
type GetArguments struct {
	Id kitty.Id `json:"id"`
}

// Get - everything about one kitty
func (k *Kitties) Get(arguments *GetArguments, reply *ledger.Details) error {
	if nil == arguments {
		return fault.MissingParameters
	}
	if err := rateLimit(k.Limiter); nil != err {
		return err
	}

	details, err := k.Ledger.Details(arguments.Id)
	if nil != err {
		return err
	}
	*reply = *details
	return nil
}

// ---

// ListArguments - arguments for list
type ListArguments struct {
	Start kitty.Id `json:"start"`
	Count int      `json:"count"`
}

// ListReply - a page of kitties
type ListReply struct {
	Kitties   []ledger.Entry `json:"kitties"`
	NextStart kitty.Id       `json:"nextStart"`
}

// List - kitties in identifier order
func (k *Kitties) List(arguments *ListArguments, reply *ListReply) error {
	if nil == arguments {
		return fault.MissingParameters
	}
	if err := rateLimitN(k.Limiter, arguments.Count); nil != err {
		return err
	}

	entries, err := k.Ledger.Kitties(arguments.Start, arguments.Count)
	if nil != err {
		return err
	}

	reply.Kitties = entries
	reply.NextStart = arguments.Start
	if n := len(entries); n > 0 && kitty.MaxId != entries[n-1].Id {
		reply.NextStart = entries[n-1].Id + 1
	}
	return nil
}
