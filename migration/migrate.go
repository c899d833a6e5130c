// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package migration

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/kittyd/metrics"
	"github.com/bitmark-inc/kittyd/storage"
)

// StorageVersion - layout version recorded in the database
type StorageVersion int

// CurrentVersion - the layout this code reads and writes
const CurrentVersion = StorageVersion(storage.CurrentVersion)

// Weight - cost of a migration
type Weight uint64

// cost of each database access
const (
	ReadWeight  Weight = 25000000
	WriteWeight Weight = 100000000
)

// Migrate - rewrite version 1 records as version 2 records
//
// only a recorded version of 1 with a target of 2 does anything,
// every other combination is a no-op with zero weight.  All rewrites
// are committed together.  The recorded version is not changed.
func Migrate(log *logger.L, store *storage.Store, recorded StorageVersion, target StorageVersion) (Weight, error) {
	_, weight, err := migrate(log, store, recorded, target)
	return weight, err
}

// OnRuntimeUpgrade - migrate to the current version and record it
func OnRuntimeUpgrade(log *logger.L, store *storage.Store, m *metrics.Metrics) (Weight, error) {
	version, err := store.Version()
	if nil != err {
		return 0, err
	}
	recorded := StorageVersion(version)

	records, weight, err := migrate(log, store, recorded, CurrentVersion)
	if nil != err {
		return weight, err
	}
	m.Migrated(records, uint64(weight))

	if recorded == CurrentVersion {
		return weight, nil
	}

	err = store.PutVersion(int(CurrentVersion))
	if nil != err {
		log.Errorf("record version: %d  error: %s", CurrentVersion, err)
		return weight, err
	}
	log.Infof("database version: %d -> %d", recorded, CurrentVersion)
	return weight + WriteWeight, nil
}

func migrate(log *logger.L, store *storage.Store, recorded StorageVersion, target StorageVersion) (uint64, Weight, error) {
	log.Infof("recorded version: %d  target version: %d", recorded, target)

	if 1 != recorded || 2 != target {
		log.Debug("nothing to migrate")
		return 0, 0, nil
	}

	trx, err := store.Begin()
	if nil != err {
		log.Errorf("begin error: %s", err)
		return 0, 0, err
	}

	reads := uint64(0)
	writes := uint64(0)
	err = store.Pool.Kitties.NewFetchCursor().Map(func(key []byte, value []byte) error {
		reads += 1

		old, err := UnpackOld(value)
		if nil != err {
			log.Warnf("skip key: %x  length: %d", key, len(value))
			return nil
		}
		k := Upgrade(*old)
		trx.Put(store.Pool.Kitties, key, k.Pack())
		writes += 1
		return nil
	})
	if nil != err {
		trx.Abort()
		log.Errorf("scan error: %s", err)
		return 0, 0, err
	}

	err = trx.Commit()
	if nil != err {
		log.Errorf("commit error: %s", err)
		return 0, 0, err
	}

	weight := Weight(reads)*ReadWeight + Weight(writes)*WriteWeight
	log.Infof("migrated: %d of %d records  weight: %d", writes, reads, weight)
	return writes, weight, nil
}
