// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/kittyd/kitty"
	"github.com/bitmark-inc/kittyd/ledger"
	"github.com/bitmark-inc/kittyd/metrics"
	"github.com/bitmark-inc/kittyd/migration"
	"github.com/bitmark-inc/kittyd/storage"
)

const (
	rpcCertificateKeyFilename = "rpc.crt"
	rpcPrivateKeyFilename     = "rpc.key"

	entropySize  = 32
	dumpPageSize = 100
)

// setup command handler
//
// commands that run to create key and certificate files these
// commands cannot access any internal database or states or the
// configuration file
func processSetupCommand(program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {
	case "gen-rpc-cert", "rpc":
		certificateFilename := getFilenameWithDirectory(arguments, rpcCertificateKeyFilename)
		privateKeyFilename := getFilenameWithDirectory(arguments, rpcPrivateKeyFilename)

		addresses := []string{}
		if len(arguments) >= 2 {
			for _, a := range arguments[1:] {
				if "" != a {
					addresses = append(addresses, a)
				}
			}
		}

		err := makeSelfSignedCertificate("rpc", certificateFilename, privateKeyFilename, 0 != len(addresses), addresses)
		if nil != err {
			exitwithstatus.Message("generate RPC key: %q and certificate: %q error: %s", privateKeyFilename, certificateFilename, err)
		}
		fmt.Printf("generated RPC key: %q and certificate: %q\n", privateKeyFilename, certificateFilename)

	case "gen-entropy", "entropy":
		entropy := make([]byte, entropySize)
		if _, err := rand.Read(entropy); nil != err {
			exitwithstatus.Message("generate entropy error: %s", err)
		}
		fmt.Printf("%s\n", hex.EncodeToString(entropy))

	case "start", "run":
		return false // continue processing

	case "migrate", "dump":
		return false // defer processing until database is loaded

	case "config-test", "cfg":
		return false

	case "version", "v":
		fmt.Printf("%s\n", version)

	default:
		switch command {
		case "help", "h", "?":
		case "", " ":
			fmt.Printf("error: missing command\n")
		default:
			fmt.Printf("error: no such command: %q\n", command)
		}
		fmt.Printf("usage: %s [--help] [--verbose] [--quiet] --config-file=FILE [[command|help] arguments...]\n", program)

		fmt.Printf("supported commands:\n\n")
		fmt.Printf("  help                       (h)       - display this message\n\n")
		fmt.Printf("  version                    (v)       - display version sting\n\n")

		fmt.Printf("  gen-rpc-cert [DIR]         (rpc)     - create private key in:  %q\n", "DIR/"+rpcPrivateKeyFilename)
		fmt.Printf("                                         and the certificate in: %q\n", "DIR/"+rpcCertificateKeyFilename)
		fmt.Printf("\n")

		fmt.Printf("  gen-rpc-cert [DIR] [IPs...]          - create private key in:  %q\n", "DIR/"+rpcPrivateKeyFilename)
		fmt.Printf("                                         and the certificate in: %q\n", "DIR/"+rpcCertificateKeyFilename)
		fmt.Printf("\n")

		fmt.Printf("  gen-entropy                (entropy) - display a random value for the entropy setting\n")
		fmt.Printf("\n")

		fmt.Printf("  start                      (run)     - just run the program, same as no arguments\n")
		fmt.Printf("                                         for convienience when passing script arguments\n")
		fmt.Printf("\n")

		fmt.Printf("  config-test                (cfg)     - just check the configuration file\n")
		fmt.Printf("\n")

		fmt.Printf("  migrate                              - upgrade the database to version: %d and exit\n", migration.CurrentVersion)
		fmt.Printf("\n")

		fmt.Printf("  dump [FILE]                          - dump all kitties as JSON to stdout/file\n")
		fmt.Printf("\n")
		exitwithstatus.Exit(1)
	}

	// indicate processing complete and preform normal exit from main
	return true
}

// configuration file enquiry commands
// have configuration file read and decoded, but nothing else
func processConfigCommand(arguments []string, options *Configuration) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "config-test", "cfg":
		b, err := json.Marshal(options)
		if err != nil {
			exitwithstatus.Message("error: %s", err)
		}
		var out bytes.Buffer
		_ = json.Indent(&out, b, "", "  ")
		_, _ = out.WriteTo(os.Stdout)
		_, _ = os.Stdout.WriteString("\n")

	default: // unknown commands fall through to data command
		return false
	}

	// indicate processing complete and perform normal exit from main
	return true
}

// data command handler
//
// the database is open so these commands can access and/or change it
func processDataCommand(log *logger.L, arguments []string, store *storage.Store, mustMigrate bool, m *metrics.Metrics) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {
	case "start", "run":
		return false // continue processing

	case "migrate":
		weight, err := migration.OnRuntimeUpgrade(logger.New("migrate"), store, m)
		if nil != err {
			exitwithstatus.Message("migrate error: %s", err)
		}
		fmt.Printf("database version: %d  weight: %d\n", migration.CurrentVersion, weight)

	case "dump":
		if mustMigrate {
			exitwithstatus.Message("dump error: %s", fault.ErrMigrationRequired)
		}

		fd := os.Stdout
		if len(arguments) > 0 && "" != arguments[0] && "-" != arguments[0] {
			var err error
			fd, err = os.Create(arguments[0])
			if nil != err {
				exitwithstatus.Message("error: creating: %q error: %s", arguments[0], err)
			}
			defer fd.Close()
		}

		if err := dumpDatabase(fd, log, store, mustMigrate); nil != err {
			exitwithstatus.Message("dump error: %s", err)
		}

	default:
		exitwithstatus.Message("error: no such command: %s", command)
	}

	// indicate processing complete and perform normal exit from main
	return true
}

// dump a store whose records are all in the current layout
func dumpDatabase(w io.Writer, log *logger.L, store *storage.Store, mustMigrate bool) error {
	if mustMigrate {
		return fault.ErrMigrationRequired
	}
	l := ledger.New(log, store, nil, ledger.DefaultPolicy(), nil, nil)
	return dumpKitties(w, l)
}

// all kitties as a JSON array
func dumpKitties(w io.Writer, l *ledger.Ledger) error {
	if _, err := fmt.Fprintf(w, "[\n"); nil != err {
		return err
	}

	separator := ""
	start := kitty.Id(0)
loop:
	for {
		entries, err := l.Kitties(start, dumpPageSize)
		if nil != err {
			return err
		}
		if 0 == len(entries) {
			break loop
		}
		for _, e := range entries {
			details, err := l.Details(e.Id)
			if nil != err {
				return err
			}
			s, err := json.MarshalIndent(details, "  ", "  ")
			if nil != err {
				return err
			}
			fmt.Fprintf(w, "%s  %s", separator, s)
			separator = ",\n"
		}
		last := entries[len(entries)-1].Id
		if kitty.MaxId == last {
			break loop
		}
		start = last + 1
	}

	_, err := fmt.Fprintf(w, "\n]\n")
	return err
}

// get the working directory; if not set in the arguments
// it's set to the current directory
func getFilenameWithDirectory(arguments []string, name string) string {
	dir := "."
	if len(arguments) >= 1 {
		dir = arguments[0]
	}

	return filepath.Join(dir, name)
}
