// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"
)

type metadata struct {
	connect string
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	app := newApp()
	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {

	app := cli.NewApp()
	app.Name = "kitty-cli"
	app.Usage = "client for the kittyd ledger"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:   "connect, c",
			Value:  "",
			Usage:  "*kittyd host/IP and port, `HOST:PORT`",
			EnvVar: "KITTYD_CONNECT",
		},
		cli.StringFlag{
			Name:   "caller, a",
			Value:  "",
			Usage:  " base58 `ACCOUNT` performing the operation",
			EnvVar: "KITTY_CALLER",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "create",
			Usage:     "create a new kitty with random dna",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "name, n",
					Value: "",
					Usage: " kitty name `STRING`",
				},
			},
			Action: runCreate,
		},
		{
			Name:      "breed",
			Usage:     "breed a new kitty from two existing kitties",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "first, f",
					Value: "",
					Usage: "*first parent `ID`",
				},
				cli.StringFlag{
					Name:  "second, s",
					Value: "",
					Usage: "*second parent `ID`",
				},
				cli.StringFlag{
					Name:  "name, n",
					Value: "",
					Usage: " kitty name `STRING`",
				},
			},
			Action: runBreed,
		},
		{
			Name:      "transfer",
			Usage:     "transfer a kitty to another account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "id, i",
					Value: "",
					Usage: "*kitty to transfer `ID`",
				},
				cli.StringFlag{
					Name:  "receiver, r",
					Value: "",
					Usage: "*base58 account to receive the kitty `ACCOUNT`",
				},
			},
			Action: runTransfer,
		},
		{
			Name:      "list-for-sale",
			Usage:     "offer an owned kitty for sale",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "id, i",
					Value: "",
					Usage: "*kitty to list `ID`",
				},
			},
			Action: runListForSale,
		},
		{
			Name:      "buy",
			Usage:     "take ownership of a listed kitty",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "id, i",
					Value: "",
					Usage: "*kitty to buy `ID`",
				},
			},
			Action: runBuy,
		},
		{
			Name:      "show",
			Usage:     "display a kitty with its owner, parents and listing",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "id, i",
					Value: "",
					Usage: "*kitty to show `ID`",
				},
			},
			Action: runShow,
		},
		{
			Name:      "kitties",
			Usage:     "list kitties in identifier order",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "start, s",
					Value: "0",
					Usage: " first `ID` to list",
				},
				cli.IntFlag{
					Name:  "count, n",
					Value: 20,
					Usage: " maximum kitties to list `COUNT`",
				},
			},
			Action: runKitties,
		},
		{
			Name:      "info",
			Usage:     "display kittyd status",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{},
			Action:    runInfo,
		},
		{
			Name:      "version",
			Usage:     "display kitty-cli version",
			ArgsUsage: "",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		// version needs no connection
		command := c.Args().Get(0)
		if "version" == command || "" == command || "help" == command {
			return nil
		}

		connect, err := checkConnect(c.GlobalString("connect"))
		if nil != err {
			return err
		}

		if verbose {
			fmt.Fprintf(e, "connect: %s\n", connect)
		}

		c.App.Metadata["config"] = &metadata{
			connect: connect,
			verbose: verbose,
			e:       e,
			w:       w,
		}
		return nil
	}

	return app
}
