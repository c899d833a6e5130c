// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/kittyd/kitty"
	"github.com/bitmark-inc/kittyd/ledger"
	"github.com/bitmark-inc/kittyd/storage"
)

const (
	rateLimitNode = 200
	rateBurstNode = 100
)

// Node - type for RPC calls
type Node struct {
	Log         *logger.L
	Limiter     *rate.Limiter
	Start       time.Time
	Version     string
	Ledger      *ledger.Ledger
	Store       *storage.Store
	connections func() uint64
}

// NewNode - the node information service
func NewNode(log *logger.L, start time.Time, version string, l *ledger.Ledger, store *storage.Store, connections func() uint64) *Node {
	return &Node{
		Log:         log,
		Limiter:     rate.NewLimiter(rateLimitNode, rateBurstNode),
		Start:       start,
		Version:     version,
		Ledger:      l,
		Store:       store,
		connections: connections,
	}
}

// InfoArguments - empty arguments for info request
type InfoArguments struct{}

// InfoReply - results from info request
type InfoReply struct {
	Version        string        `json:"version"`
	Uptime         string        `json:"uptime"`
	ReadOnly       bool          `json:"readOnly"`
	StorageVersion int           `json:"storageVersion"`
	NextKittyId    kitty.Id      `json:"nextKittyId"`
	RPCs           uint64        `json:"rpcs"`
	Policy         ledger.Policy `json:"policy"`
}

// Info - return some information about this node
func (node *Node) Info(_ *InfoArguments, reply *InfoReply) error {

	if err := rateLimit(node.Limiter); nil != err {
		return err
	}

	storageVersion, err := node.Store.Version()
	if nil != err {
		return err
	}

	reply.Version = node.Version
	reply.Uptime = time.Since(node.Start).String()
	reply.ReadOnly = node.Store.IsReadOnly()
	reply.StorageVersion = storageVersion
	reply.NextKittyId = node.Ledger.NextKittyId()
	if nil != node.connections {
		reply.RPCs = node.connections()
	}
	reply.Policy = node.Ledger.Policy()
	return nil
}
