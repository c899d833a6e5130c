// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc_test

import (
	"testing"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/kittyd/kitty"
	"github.com/bitmark-inc/kittyd/ledger"
	"github.com/bitmark-inc/kittyd/rpc"
	"github.com/bitmark-inc/kittyd/storage"
)

func TestNodeInfo(t *testing.T) {
	s, l := setup(t)
	defer s.Close()

	_, _, _ = l.Create(alice, kitty.Name{})

	n := rpc.NewNode(logger.New(logCategory), time.Now(), "100", l, s, func() uint64 { return 3 })

	var reply rpc.InfoReply
	err := n.Info(&rpc.InfoArguments{}, &reply)
	assert.Nil(t, err, "wrong Info")
	assert.Equal(t, "100", reply.Version, "wrong version")
	assert.False(t, reply.ReadOnly, "read only")
	assert.Equal(t, storage.CurrentVersion, reply.StorageVersion, "wrong storage version")
	assert.Equal(t, kitty.Id(1), reply.NextKittyId, "wrong next id")
	assert.Equal(t, uint64(3), reply.RPCs, "wrong connection count")
	assert.Equal(t, ledger.DefaultPolicy(), reply.Policy, "wrong policy")
	assert.NotEqual(t, "", reply.Uptime, "missing uptime")
}
