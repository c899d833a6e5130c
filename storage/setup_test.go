// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/kittyd/storage"
)

func TestOpenTagsEmptyDatabase(t *testing.T) {
	defer os.RemoveAll(databaseFileName)

	s, mustMigrate, err := storage.Open(databaseFileName, storage.ReadWrite)
	assert.Nil(t, err, "open error")
	assert.False(t, mustMigrate, "empty database needs migration")

	version, err := s.Version()
	assert.Nil(t, err, "version error")
	assert.Equal(t, storage.CurrentVersion, version, "empty database not tagged as current")
	s.Close()

	// reopen read only
	s, mustMigrate, err = storage.Open(databaseFileName, storage.ReadOnly)
	assert.Nil(t, err, "read only open error")
	assert.False(t, mustMigrate, "current database needs migration")
	assert.True(t, s.IsReadOnly(), "not read only")

	_, err = s.Begin()
	assert.Equal(t, fault.NotAvailableInReadOnlyMode, err, "read only store allowed a transaction")
	s.Close()
}

func TestOpenOldVersion(t *testing.T) {
	defer os.RemoveAll(databaseFileName)

	s, _, err := storage.Open(databaseFileName, storage.ReadWrite)
	assert.Nil(t, err, "open error")
	err = s.PutVersion(1)
	assert.Nil(t, err, "put version error")
	s.Close()

	_, _, err = storage.Open(databaseFileName, storage.ReadOnly)
	assert.NotNil(t, err, "read only open of an old layout succeeded")

	s, mustMigrate, err := storage.Open(databaseFileName, storage.ReadWrite)
	assert.Nil(t, err, "open error")
	assert.True(t, mustMigrate, "old layout did not report migration")

	version, err := s.Version()
	assert.Nil(t, err, "version error")
	assert.Equal(t, 1, version, "open changed the recorded version")
	s.Close()
}

func TestOpenRefusesDowngrade(t *testing.T) {
	defer os.RemoveAll(databaseFileName)

	s, _, err := storage.Open(databaseFileName, storage.ReadWrite)
	assert.Nil(t, err, "open error")
	err = s.PutVersion(storage.CurrentVersion + 1)
	assert.Nil(t, err, "put version error")
	s.Close()

	_, _, err = storage.Open(databaseFileName, storage.ReadWrite)
	assert.Equal(t, fault.ErrDatabaseVersion, err, "newer database was opened")
}

func TestClosedStore(t *testing.T) {
	s := setup(t)
	s.Close()

	_, err := s.Version()
	assert.Equal(t, fault.ErrNotInitialised, err, "closed store returned a version")
	assert.Nil(t, s.Pool.Kitties.Get([]byte{0}), "closed store returned data")
	assert.False(t, s.Pool.Kitties.Has([]byte{0}), "closed store has data")
}
