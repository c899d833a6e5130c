// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/kittyd/configuration"
	"github.com/bitmark-inc/kittyd/fault"
)

type databaseType struct {
	Directory string `gluamapper:"directory"`
	Name      string `gluamapper:"name"`
}

type testConfiguration struct {
	DataDirectory string            `gluamapper:"data_directory"`
	Count         int               `gluamapper:"count"`
	Enabled       bool              `gluamapper:"enabled"`
	Listen        []string          `gluamapper:"listen"`
	Database      databaseType      `gluamapper:"database"`
	Levels        map[string]string `gluamapper:"levels"`
	Variable      string            `gluamapper:"variable"`
}

const testConfigurationText = `
local M = {}

M.data_directory = "."
M.count = 42
M.enabled = true
M.listen = { "127.0.0.1:2150", "[::1]:2150" }
M.database = {
    directory = "data",
    name = "kittyd.leveldb",
}
M.levels = {
    DEFAULT = "info",
    ledger = "debug",
}
M.variable = arg["who"] or "nobody"

return M
`

func writeFile(t *testing.T, text string) (string, func()) {
	dir, err := ioutil.TempDir("", "configuration")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	fileName := filepath.Join(dir, "test.conf")
	if err := ioutil.WriteFile(fileName, []byte(text), 0600); nil != err {
		t.Fatalf("write error: %s", err)
	}
	return fileName, func() { _ = os.RemoveAll(dir) }
}

func TestParseConfigurationFile(t *testing.T) {
	fileName, cleanup := writeFile(t, testConfigurationText)
	defer cleanup()

	config := testConfiguration{}
	err := configuration.ParseConfigurationFile(fileName, &config, map[string]string{"who": "kitty"})
	assert.Nil(t, err, "wrong ParseConfigurationFile")

	assert.Equal(t, testConfiguration{
		DataDirectory: ".",
		Count:         42,
		Enabled:       true,
		Listen:        []string{"127.0.0.1:2150", "[::1]:2150"},
		Database: databaseType{
			Directory: "data",
			Name:      "kittyd.leveldb",
		},
		Levels: map[string]string{
			"DEFAULT": "info",
			"ledger":  "debug",
		},
		Variable: "kitty",
	}, config, "wrong configuration")
}

func TestParseConfigurationFileKeepsDefaults(t *testing.T) {
	fileName, cleanup := writeFile(t, "return { count = 7 }")
	defer cleanup()

	config := testConfiguration{
		DataDirectory: "default",
	}
	err := configuration.ParseConfigurationFile(fileName, &config, nil)
	assert.Nil(t, err, "wrong ParseConfigurationFile")
	assert.Equal(t, 7, config.Count, "wrong count")
	assert.Equal(t, "default", config.DataDirectory, "default overwritten")
}

func TestParseConfigurationFileErrors(t *testing.T) {
	fileName, cleanup := writeFile(t, "return 12")
	defer cleanup()

	config := testConfiguration{}
	err := configuration.ParseConfigurationFile(fileName, &config, nil)
	assert.Equal(t, fault.ErrConfigurationNotTable, err, "non table accepted")

	err = configuration.ParseConfigurationFile(fileName, config, nil)
	assert.Equal(t, fault.ErrInvalidStructPointer, err, "non pointer accepted")

	err = configuration.ParseConfigurationFile(filepath.Join(filepath.Dir(fileName), "missing.conf"), &config, nil)
	assert.NotNil(t, err, "missing file accepted")

	syntax, cleanup2 := writeFile(t, "return {")
	defer cleanup2()
	err = configuration.ParseConfigurationFile(syntax, &config, nil)
	assert.NotNil(t, err, "syntax error accepted")
}
