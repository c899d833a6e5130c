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

func runBreed(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	caller, err := checkCaller(c.GlobalString("caller"))
	if nil != err {
		return err
	}

	first, err := checkId(c.String("first"))
	if nil != err {
		return err
	}

	second, err := checkId(c.String("second"))
	if nil != err {
		return err
	}

	name, err := checkName(c.String("name"))
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "caller: %s\n", caller)
		fmt.Fprintf(m.e, "parents: %d %d\n", first, second)
		fmt.Fprintf(m.e, "name: %q\n", name)
	}

	client, err := rpccalls.NewClient(m.connect, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Breed(caller, first, second, name)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}
