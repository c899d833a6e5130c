// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/kitty"
)

// notification commands
const (
	CreatedCommand     = "created"
	BredCommand        = "bred"
	TransferredCommand = "transferred"
	ListedCommand      = "listed"
	BoughtCommand      = "bought"
)

// Created - a kitty was created from nothing
type Created struct {
	Who   account.Account `json:"who"`
	Id    kitty.Id        `json:"id"`
	Kitty kitty.Kitty     `json:"kitty"`
}

// Bred - a kitty was bred from two parents
type Bred struct {
	Who   account.Account `json:"who"`
	Id    kitty.Id        `json:"id"`
	Kitty kitty.Kitty     `json:"kitty"`
}

// Transferred - ownership moved
type Transferred struct {
	Who account.Account `json:"who"`
	To  account.Account `json:"to"`
	Id  kitty.Id        `json:"id"`
}

// Listed - a kitty was offered for sale
type Listed struct {
	Who account.Account `json:"who"`
	Id  kitty.Id        `json:"id"`
}

// Bought - a listed kitty changed hands
type Bought struct {
	Who  account.Account `json:"who"`
	From account.Account `json:"from"`
	Id   kitty.Id        `json:"id"`
}
