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

func runKitties(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	start, err := checkId(c.String("start"))
	if nil != err {
		return err
	}

	count := c.Int("count")
	if count <= 0 {
		return fmt.Errorf("invalid count: %d", count)
	}

	client, err := rpccalls.NewClient(m.connect, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.List(start, count)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}
