// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/kittyd/fault"
)

const testEntropy = "000102030405060708090a0b0c0d0e0f"

func writeConfiguration(t *testing.T, text string) (string, string) {
	dir, err := ioutil.TempDir("", "kittyd")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	fileName := filepath.Join(dir, "kittyd.conf")
	if err := ioutil.WriteFile(fileName, []byte(text), 0600); nil != err {
		t.Fatalf("write error: %s", err)
	}
	return dir, fileName
}

func TestGetConfiguration(t *testing.T) {
	dir, fileName := writeConfiguration(t, `
return {
    data_directory = ".",
    pidfile = "kittyd.pid",
    entropy = "`+testEntropy+`",
    policy = {
        breed_requires_ownership = true,
    },
    client_rpc = {
        maximum_connections = 7,
        listen = { "127.0.0.1:2130" },
    },
    metrics = {
        listen = "127.0.0.1:2131",
    },
    logging = {
        levels = {
            DEFAULT = "info",
        },
    },
}
`)
	defer os.RemoveAll(dir)

	c, err := getConfiguration(fileName, nil)
	assert.Nil(t, err, "wrong getConfiguration")

	dir, _ = filepath.Abs(dir)

	assert.Equal(t, filepath.Join(dir, "kittyd.pid"), c.PidFile, "wrong pid file")
	assert.Equal(t, filepath.Join(dir, defaultLevelDBDirectory), c.Database.Directory, "wrong database directory")
	assert.Equal(t, filepath.Join(dir, defaultLevelDBDirectory, defaultDatabase), c.Database.Name, "wrong database name")
	assert.Equal(t, filepath.Join(dir, defaultLogDirectory), c.Logging.Directory, "wrong log directory")
	assert.Equal(t, defaultLogFile, c.Logging.File, "wrong log file")
	assert.True(t, c.Policy.BreedRequiresOwnership, "policy not read")
	assert.True(t, c.Policy.TransferClearsListing, "policy default lost")
	assert.Equal(t, uint64(7), c.ClientRPC.MaximumConnections, "wrong connections")
	assert.Equal(t, []string{"127.0.0.1:2130"}, c.ClientRPC.Listen, "wrong listen")
	assert.Equal(t, "127.0.0.1:2131", c.Metrics.Listen, "wrong metrics listen")
	assert.Equal(t, "info", c.Logging.Levels["DEFAULT"], "wrong log level")

	assert.True(t, isDirectory(c.Database.Directory), "database directory not created")
	assert.True(t, isDirectory(c.Logging.Directory), "log directory not created")

	entropy, err := c.entropy()
	assert.Nil(t, err, "entropy error")
	assert.Equal(t, 16, len(entropy), "wrong entropy length")
}

func TestGetConfigurationErrors(t *testing.T) {
	items := []struct {
		text string
		err  error
	}{
		{`return { entropy = "` + testEntropy + `" }`, nil},
		{`return { data_directory = ".", entropy = "0102" }`, fault.ErrInvalidEntropy},
		{`return { data_directory = ".", entropy = "not hex" }`, fault.ErrInvalidEntropy},
		{`return { data_directory = "." }`, fault.ErrInvalidEntropy},
		{`return { data_directory = ".", entropy = "` + testEntropy + `", database = { name = "a/b" } }`, nil},
	}

	for i, item := range items {
		dir, fileName := writeConfiguration(t, item.text)

		_, err := getConfiguration(fileName, nil)
		assert.NotNil(t, err, "%d: invalid configuration accepted", i)
		if nil != item.err {
			assert.Equal(t, item.err, err, "%d: wrong error", i)
		}

		_ = os.RemoveAll(dir)
	}
}

func isDirectory(name string) bool {
	info, err := os.Stat(name)
	return nil == err && info.IsDir()
}
