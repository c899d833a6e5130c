// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/kittyd/command/kitty-cli/rpccalls"
)

func runTransfer(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	caller, err := checkCaller(c.GlobalString("caller"))
	if nil != err {
		return err
	}

	id, err := checkId(c.String("id"))
	if nil != err {
		return err
	}

	receiver, err := checkReceiver(c.String("receiver"))
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "caller: %s\n", caller)
		fmt.Fprintf(m.e, "id: %d\n", id)
		fmt.Fprintf(m.e, "receiver: %s\n", receiver)
	}

	client, err := rpccalls.NewClient(m.connect, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Transfer(caller, receiver, id)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}
