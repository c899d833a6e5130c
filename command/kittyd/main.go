// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/bitmark-inc/kittyd/background"
	"github.com/bitmark-inc/kittyd/ledger"
	"github.com/bitmark-inc/kittyd/messagebus"
	"github.com/bitmark-inc/kittyd/metrics"
	"github.com/bitmark-inc/kittyd/migration"
	"github.com/bitmark-inc/kittyd/randomness"
	"github.com/bitmark-inc/kittyd/rpc"
	"github.com/bitmark-inc/kittyd/storage"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		processSetupCommand(program, []string{"version"})
		return
	}

	if len(options["help"]) > 0 {
		processSetupCommand(program, []string{"help"})
		return
	}

	// these commands do not require the configuration and
	// process data needed for initial setup
	if len(arguments) > 0 && processSetupCommand(program, arguments) {
		return
	}

	if 1 != len(options["config-file"]) {
		exitwithstatus.Message("%s: only one config-file option is required, %d were detected", program, len(options["config-file"]))
	}

	// read options and parse the configuration file
	configurationFile := options["config-file"][0]
	theConfiguration, err := getConfiguration(configurationFile, map[string]string{
		"program": program,
		"version": version,
	})
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	// these commands require the configuration and
	// perform enquiries on the configuration
	if len(arguments) > 0 && processConfigCommand(arguments, theConfiguration) {
		return
	}

	// start logging
	if len(options["verbose"]) > 0 {
		theConfiguration.Logging.Console = true
	}
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("theConfiguration: %v", theConfiguration)

	// ------------------
	// start of real main
	// ------------------

	// optional PID file
	// use if not running under a supervisor program like daemon(8)
	if "" != theConfiguration.PidFile {
		lockFile, err := os.OpenFile(theConfiguration.PidFile, os.O_WRONLY|os.O_EXCL|os.O_CREATE, os.ModeExclusive|0600)
		if err != nil {
			if os.IsExist(err) {
				exitwithstatus.Message("%s: another instance is already running", program)
			}
			exitwithstatus.Message("%s: PID file: %q creation failed, error: %s", program, theConfiguration.PidFile, err)
		}
		fmt.Fprintf(lockFile, "%d\n", os.Getpid())
		lockFile.Close()
		defer os.Remove(theConfiguration.PidFile)
	}

	// counters are registered before anything can update them
	registry := prometheus.NewRegistry()
	theMetrics, err := metrics.New(registry)
	if nil != err {
		log.Criticalf("metrics initialise error: %s", err)
		exitwithstatus.Message("metrics initialise error: %s", err)
	}

	// general info
	log.Infof("database: %q", theConfiguration.Database)
	log.Infof("read only: %v", theConfiguration.ReadOnly)
	log.Infof("policy: %+v", theConfiguration.Policy)

	// connection info
	log.Debugf("%s = %#v", "ClientRPC", theConfiguration.ClientRPC)
	log.Debugf("%s = %#v", "Metrics", theConfiguration.Metrics)

	// start the data storage
	log.Info("initialise storage")
	store, mustMigrate, err := storage.Open(theConfiguration.Database.Name, theConfiguration.ReadOnly)
	if nil != err {
		log.Criticalf("storage initialise error: %s", err)
		exitwithstatus.Message("storage initialise error: %s", err)
	}
	defer store.Close()

	if mustMigrate {
		log.Warn("kitty database migration required")
	}

	// these commands are allowed to access the internal database
	if len(arguments) > 0 && processDataCommand(log, arguments, store, mustMigrate, theMetrics) {
		return
	}

	// records must be in the current layout before any operation
	if !store.IsReadOnly() {
		weight, err := migration.OnRuntimeUpgrade(logger.New("migrate"), store, theMetrics)
		if nil != err {
			log.Criticalf("database upgrade error: %s", err)
			exitwithstatus.Message("database upgrade error: %s", err)
		}
		log.Infof("database upgrade weight: %d", weight)
	}

	entropy, err := theConfiguration.entropy()
	if nil != err {
		log.Criticalf("entropy error: %s", err)
		exitwithstatus.Message("entropy error: %s", err)
	}

	bus := messagebus.New()

	theLedger := ledger.New(
		logger.New("ledger"),
		store,
		randomness.NewEntropy(entropy),
		theConfiguration.Policy,
		bus,
		theMetrics,
	)

	// background processes
	processes := background.Start(background.Processes{
		newEventLogger(logger.New("events"), bus),
	}, bus)
	defer processes.Stop()

	// start up the rpc listeners
	log.Info("initialise rpc")
	server, err := rpc.New(logger.New("rpc"), theLedger, store, version)
	if nil != err {
		log.Criticalf("rpc initialise error: %s", err)
		exitwithstatus.Message("rpc initialise error: %s", err)
	}
	err = server.Listen(&theConfiguration.ClientRPC)
	if nil != err {
		log.Criticalf("rpc listen error: %s", err)
		exitwithstatus.Message("rpc listen error: %s", err)
	}
	defer server.Close()

	// prometheus scrape endpoint
	if "" != theConfiguration.Metrics.Listen {
		metricsServer := &http.Server{
			Addr:         theConfiguration.Metrics.Listen,
			Handler:      promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
		}
		go func() {
			log.Infof("metrics listener on: %s", theConfiguration.Metrics.Listen)
			err := metricsServer.ListenAndServe()
			if nil != err && http.ErrServerClosed != err {
				log.Errorf("metrics listener error: %s", err)
			}
		}()
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = metricsServer.Shutdown(ctx)
		}()
	}

	// wait for CTRL-C before shutting down to allow manual testing
	if 0 == len(options["quiet"]) {
		fmt.Printf("\n\nWaiting for CTRL-C (SIGINT) or 'kill <pid>' (SIGTERM)…")
	}

	// turn Signals into channel messages
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	sig := <-ch
	log.Infof("received signal: %v", sig)
	if 0 == len(options["quiet"]) {
		fmt.Printf("\nreceived signal: %v\n", sig)
		fmt.Printf("\nshutting down…\n")
	}

	log.Info("shutting down…")
}
