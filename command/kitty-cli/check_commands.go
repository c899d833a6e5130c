// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"net"
	"strings"

	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/kittyd/kitty"
)

var (
	ErrRequiredCaller   = fault.InvalidError("caller account is required")
	ErrRequiredConnect  = fault.InvalidError("connect is required")
	ErrRequiredId       = fault.InvalidError("kitty id is required")
	ErrRequiredReceiver = fault.InvalidError("receiver account is required")
	ErrInvalidConnect   = fault.InvalidError("connect must be HOST:PORT")
)

// connect is required and must carry a port
func checkConnect(connect string) (string, error) {
	connect = strings.TrimSpace(connect)
	if "" == connect {
		return "", ErrRequiredConnect
	}

	host, port, err := net.SplitHostPort(connect)
	if nil != err || "" == host || "" == port {
		return "", ErrInvalidConnect
	}
	return connect, nil
}

// caller is required for every mutation
func checkCaller(caller string) (account.Account, error) {
	if "" == caller {
		return account.Account{}, ErrRequiredCaller
	}
	return account.FromBase58(caller)
}

// receiver is required for transfer
func checkReceiver(receiver string) (account.Account, error) {
	if "" == receiver {
		return account.Account{}, ErrRequiredReceiver
	}
	return account.FromBase58(receiver)
}

// decimal kitty identifier
func checkId(id string) (kitty.Id, error) {
	if "" == id {
		return 0, ErrRequiredId
	}
	return kitty.ParseId(id)
}

// the ledger enforces the name length, only check it early here
func checkName(name string) (string, error) {
	if _, err := kitty.NewName(name); nil != err {
		return "", err
	}
	return name, nil
}
