// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/command/kitty-cli/rpccalls"
	"github.com/bitmark-inc/kittyd/kitty"
	"github.com/bitmark-inc/kittyd/rpc"
)

type marketCall func(client *rpccalls.Client, caller account.Account, id kitty.Id) (*rpc.StatusReply, error)

func runListForSale(c *cli.Context) error {
	return runMarket(c, (*rpccalls.Client).ListForSale)
}

func runBuy(c *cli.Context) error {
	return runMarket(c, (*rpccalls.Client).Buy)
}

func runMarket(c *cli.Context, call marketCall) error {

	m := c.App.Metadata["config"].(*metadata)

	caller, err := checkCaller(c.GlobalString("caller"))
	if nil != err {
		return err
	}

	id, err := checkId(c.String("id"))
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "caller: %s\n", caller)
		fmt.Fprintf(m.e, "id: %d\n", id)
	}

	client, err := rpccalls.NewClient(m.connect, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := call(client, caller, id)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}
