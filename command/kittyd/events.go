// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/kittyd/messagebus"
)

const eventQueueSize = 1000

// eventLogger - write every ledger notification to the log
type eventLogger struct {
	log   *logger.L
	queue <-chan messagebus.Message
	count uint64
}

func newEventLogger(log *logger.L, bus *messagebus.BroadcastQueue) *eventLogger {
	return &eventLogger{
		log:   log,
		queue: bus.Chan(eventQueueSize),
	}
}

// Run - background process loop
func (e *eventLogger) Run(args interface{}, shutdown <-chan struct{}) {
	bus := args.(*messagebus.BroadcastQueue)

	e.log.Info("starting…")

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case m, ok := <-e.queue:
			if !ok {
				break loop
			}
			e.process(m)
		}
	}

	bus.Release(e.queue)
	e.log.Infof("stopped after: %d events", e.count)
}

func (e *eventLogger) process(m messagebus.Message) {
	e.count += 1
	b, err := json.Marshal(m.Parameters)
	if nil != err {
		e.log.Errorf("%s: encode error: %s", m.Command, err)
		return
	}
	e.log.Infof("%s: %s", m.Command, b)
}
