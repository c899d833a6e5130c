// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package metrics_test

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/kittyd/metrics"
)

func TestOperationCounts(t *testing.T) {
	m, err := metrics.New(prometheus.NewRegistry())
	assert.Nil(t, err, "register error")

	m.Operation("create", nil)
	m.Operation("create", nil)
	m.Operation("create", errors.New("bad"))

	assert.Equal(t, float64(2), testutil.ToFloat64(m.Operations.WithLabelValues("create", metrics.ResultOk)), "wrong ok count")
	assert.Equal(t, float64(1), testutil.ToFloat64(m.Operations.WithLabelValues("create", metrics.ResultFailed)), "wrong failed count")
}

func TestKittiesAndMigration(t *testing.T) {
	m, err := metrics.New(prometheus.NewRegistry())
	assert.Nil(t, err, "register error")

	m.NewKitty()
	m.Migrated(3, 100)

	assert.Equal(t, float64(1), testutil.ToFloat64(m.Kitties), "wrong kitty count")
	assert.Equal(t, float64(3), testutil.ToFloat64(m.MigratedRecords), "wrong migrated count")
	assert.Equal(t, float64(100), testutil.ToFloat64(m.MigrationWeight), "wrong weight")
}

func TestDuplicateRegistration(t *testing.T) {
	registry := prometheus.NewRegistry()
	_, err := metrics.New(registry)
	assert.Nil(t, err, "register error")

	_, err = metrics.New(registry)
	assert.NotNil(t, err, "duplicate registration accepted")
}

func TestNilMetrics(t *testing.T) {
	var m *metrics.Metrics
	m.Operation("buy", nil)
	m.NewKitty()
	m.Migrated(1, 1)
}
