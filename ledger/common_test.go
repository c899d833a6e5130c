// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger_test

import (
	"os"
	"testing"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/kitty"
	"github.com/bitmark-inc/kittyd/ledger"
	"github.com/bitmark-inc/kittyd/messagebus"
	"github.com/bitmark-inc/kittyd/randomness"
	"github.com/bitmark-inc/kittyd/storage"
)

const (
	testingDirName = "testing"
)

var (
	alice = account.Account{1}
	bob   = account.Account{2}
)

func TestMain(m *testing.M) {
	setupTestLogger()
	rc := m.Run()
	teardownTestLogger()
	os.Exit(rc)
}

func setupTestLogger() {
	removeFiles()
	_ = os.Mkdir(testingDirName, 0700)

	logging := logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	_ = logger.Initialise(logging)
}

func teardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	_ = os.RemoveAll(testingDirName)
}

// a seed whose every byte is b
func seedOf(b byte) randomness.Seed {
	var s randomness.Seed
	for i := range s {
		s[i] = b
	}
	return s
}

func mustName(t *testing.T, s string) kitty.Name {
	n, err := kitty.NewName(s)
	if nil != err {
		t.Fatalf("name: %q  error: %s", s, err)
	}
	return n
}

type fixture struct {
	store  *storage.Store
	ledger *ledger.Ledger
	bus    *messagebus.BroadcastQueue
	events <-chan messagebus.Message
}

func (f *fixture) Close() {
	f.bus.Release(f.events)
	f.store.Close()
}

// a ledger on an empty in-memory store
func setup(t *testing.T, random randomness.Provider, policy ledger.Policy) *fixture {
	s, err := storage.OpenMemory()
	if nil != err {
		t.Fatalf("storage open error: %s", err)
	}
	bus := messagebus.New()
	return &fixture{
		store:  s,
		ledger: ledger.New(logger.New("ledger"), s, random, policy, bus, nil),
		bus:    bus,
		events: bus.Chan(100),
	}
}

// next queued event, fails if there is none
func (f *fixture) event(t *testing.T) messagebus.Message {
	select {
	case m := <-f.events:
		return m
	default:
		t.Fatal("no event was sent")
	}
	return messagebus.Message{}
}

// fails if any event is queued
func (f *fixture) noEvent(t *testing.T) {
	select {
	case m := <-f.events:
		t.Errorf("unexpected event: %s", m.Command)
	default:
	}
}

// set the identifier counter directly
func (f *fixture) setNextKittyId(t *testing.T, id kitty.Id) {
	trx, err := f.store.Begin()
	if nil != err {
		t.Fatalf("begin error: %s", err)
	}
	trx.Put(f.store.Pool.NextKittyId, []byte{}, id.Bytes())
	if err := trx.Commit(); nil != err {
		t.Fatalf("commit error: %s", err)
	}
}
