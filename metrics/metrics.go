// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package metrics - prometheus counters for ledger activity
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// result labels
const (
	ResultOk     = "ok"
	ResultFailed = "failed"
)

// Metrics - ledger counters, a nil value records nothing
type Metrics struct {
	Operations      *prometheus.CounterVec
	Kitties         prometheus.Counter
	MigrationWeight prometheus.Counter
	MigratedRecords prometheus.Counter
}

// New - create and register the counters
func New(registerer prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		Operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "kittyd_operations_total",
			Help: "Ledger operations by name and result",
		}, []string{"operation", "result"}),

		Kitties: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "kittyd_kitties_total",
			Help: "Kitties created or bred since start",
		}),

		MigrationWeight: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "kittyd_migration_weight_total",
			Help: "Weight reported by schema migrations",
		}),

		MigratedRecords: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "kittyd_migrated_records_total",
			Help: "Kitty records rewritten by schema migrations",
		}),
	}

	for _, c := range []prometheus.Collector{m.Operations, m.Kitties, m.MigrationWeight, m.MigratedRecords} {
		if err := registerer.Register(c); nil != err {
			return nil, err
		}
	}
	return m, nil
}

// Operation - count one ledger operation
func (m *Metrics) Operation(name string, err error) {
	if nil == m {
		return
	}
	result := ResultOk
	if nil != err {
		result = ResultFailed
	}
	m.Operations.WithLabelValues(name, result).Inc()
}

// NewKitty - a record was added
func (m *Metrics) NewKitty() {
	if nil != m {
		m.Kitties.Inc()
	}
}

// Migrated - a migration pass finished
func (m *Metrics) Migrated(records uint64, weight uint64) {
	if nil != m {
		m.MigratedRecords.Add(float64(records))
		m.MigrationWeight.Add(float64(weight))
	}
}
