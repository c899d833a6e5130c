// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"fmt"
	"reflect"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"
	ldb_storage "github.com/syndtr/goleveldb/leveldb/storage"

	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/logger"
)

// exported storage pools
//
// note all must be exported (i.e. initial capital) or initialisation will panic
type pools struct {
	Kitties     *PoolHandle `prefix:"K"`
	Owners      *PoolHandle `prefix:"O"`
	Parents     *PoolHandle `prefix:"P"`
	Listings    *PoolHandle `prefix:"S"`
	NextKittyId *PoolHandle `prefix:"N"`
	Nonces      *PoolHandle `prefix:"C"`
}

// CurrentVersion - the record layout this program writes
const CurrentVersion = 2

// for database version
var versionKey = []byte{0x00, 'V', 'E', 'R', 'S', 'I', 'O', 'N'}

// pool access modes
const (
	ReadOnly  = true
	ReadWrite = false
)

// holds the database handle
type database struct {
	sync.RWMutex
	db *leveldb.DB
}

// Store - an open kitty database
type Store struct {
	Pool pools

	data     *database
	trx      *transaction
	readOnly bool
}

// Open - open up the database connection
//
// returns true if the stored records are in an older layout and the
// upgrade pipeline must run before the ledger is used
func Open(name string, readOnly bool) (*Store, bool, error) {
	opt := &ldb_opt.Options{
		ErrorIfExist:   false,
		ErrorIfMissing: readOnly,
		ReadOnly:       readOnly,
	}

	db, err := leveldb.OpenFile(name, opt)
	if nil != err {
		return nil, false, err
	}
	return setup(db, readOnly)
}

// OpenMemory - an empty database that is discarded on close
func OpenMemory() (*Store, error) {
	db, err := leveldb.Open(ldb_storage.NewMemStorage(), nil)
	if nil != err {
		return nil, err
	}
	s, _, err := setup(db, ReadWrite)
	return s, err
}

func setup(db *leveldb.DB, readOnly bool) (*Store, bool, error) {
	ok := false
	mustMigrate := false

	defer func() {
		if !ok {
			db.Close()
		}
	}()

	version, err := getVersion(db)
	if nil != err {
		return nil, mustMigrate, err
	}

	// ensure no database downgrade
	if version > CurrentVersion {
		logger.Criticalf("database version: %d > current version: %d", version, CurrentVersion)
		return nil, mustMigrate, fault.ErrDatabaseVersion
	}

	// prevent readOnly from modifying the database
	if readOnly && version != CurrentVersion {
		logger.Criticalf("database is inconsistent: version: %d  current: %d", version, CurrentVersion)
		return nil, mustMigrate, fmt.Errorf("database is inconsistent: version: %d  current: %d", version, CurrentVersion)
	}

	if 0 < version && version < CurrentVersion {

		mustMigrate = true

		logger.Criticalf("database version: %d < current version: %d", version, CurrentVersion)

	} else if 0 == version {

		// database was empty so tag as current version
		err = putVersion(db, CurrentVersion)
		if nil != err {
			return nil, mustMigrate, err
		}
	}

	data := &database{
		db: db,
	}

	s := &Store{
		data:     data,
		trx:      newTransaction(data, newCache()),
		readOnly: readOnly,
	}

	// this will be a struct type
	poolType := reflect.TypeOf(s.Pool)

	// get write access by using pointer + Elem()
	poolValue := reflect.ValueOf(&s.Pool).Elem()

	// scan each field
	for i := 0; i < poolType.NumField(); i += 1 {

		fieldInfo := poolType.Field(i)

		prefixTag := fieldInfo.Tag.Get("prefix")
		if 1 != len(prefixTag) {
			return nil, mustMigrate, fmt.Errorf("pool: %v has invalid prefix: %q", fieldInfo, prefixTag)
		}

		prefix := prefixTag[0]
		limit := []byte(nil)
		if prefix < 255 {
			limit = []byte{prefix + 1}
		}

		p := &PoolHandle{
			prefix: prefix,
			limit:  limit,
			data:   data,
		}
		poolValue.Field(i).Set(reflect.ValueOf(p))
	}

	ok = true // prevent db close
	return s, mustMigrate, nil
}

// Close - close the database connection
func (s *Store) Close() {
	s.data.Lock()
	defer s.data.Unlock()
	if nil != s.data.db {
		s.data.db.Close()
		s.data.db = nil
	}
}

// IsReadOnly - true if opened in read only mode
func (s *Store) IsReadOnly() bool {
	return s.readOnly
}

// Begin - start a transaction
//
// only one transaction may be open at a time
func (s *Store) Begin() (Transaction, error) {
	if s.readOnly {
		return nil, fault.NotAvailableInReadOnlyMode
	}
	err := s.trx.begin()
	if nil != err {
		return nil, err
	}
	return s.trx, nil
}

// Version - the recorded schema version of the stored records
func (s *Store) Version() (int, error) {
	s.data.RLock()
	defer s.data.RUnlock()
	if nil == s.data.db {
		return 0, fault.ErrNotInitialised
	}
	return getVersion(s.data.db)
}

// PutVersion - record the schema version
//
// only the upgrade pipeline calls this, after migration succeeds
func (s *Store) PutVersion(version int) error {
	if s.readOnly {
		return fault.NotAvailableInReadOnlyMode
	}
	s.data.RLock()
	defer s.data.RUnlock()
	if nil == s.data.db {
		return fault.ErrNotInitialised
	}
	return putVersion(s.data.db, version)
}

func getVersion(db *leveldb.DB) (int, error) {
	versionValue, err := db.Get(versionKey, nil)
	if leveldb.ErrNotFound == err {
		return 0, nil
	} else if nil != err {
		return 0, err
	}

	if 4 != len(versionValue) {
		return 0, fmt.Errorf("incompatible database version length: expected: %d  actual: %d", 4, len(versionValue))
	}

	return int(binary.BigEndian.Uint32(versionValue)), nil
}

func putVersion(db *leveldb.DB, version int) error {
	currentVersion := make([]byte, 4)
	binary.BigEndian.PutUint32(currentVersion, uint32(version))

	return db.Put(versionKey, currentVersion, nil)
}
