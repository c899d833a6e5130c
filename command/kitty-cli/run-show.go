// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/kittyd/command/kitty-cli/rpccalls"
)

func runShow(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	id, err := checkId(c.String("id"))
	if nil != err {
		return err
	}

	client, err := rpccalls.NewClient(m.connect, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Get(id)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}
