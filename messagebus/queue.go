// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus

import (
	"sync"
)

// Message - a notification
type Message struct {
	Command    string
	Parameters interface{}
}

// BroadcastQueue - every listener gets a copy of each message
type BroadcastQueue struct {
	sync.RWMutex
	listeners map[<-chan Message]chan Message
}

// New - create an empty broadcast queue
func New() *BroadcastQueue {
	return &BroadcastQueue{
		listeners: make(map[<-chan Message]chan Message),
	}
}

// Send - deliver to all current listeners without blocking
//
// messages sent while nothing is listening are dropped
func (queue *BroadcastQueue) Send(command string, parameters interface{}) {
	if nil == queue {
		return
	}
	m := Message{
		Command:    command,
		Parameters: parameters,
	}

	queue.RLock()
	defer queue.RUnlock()
	for _, c := range queue.listeners {
		select {
		case c <- m:
		default:
		}
	}
}

// Chan - register a new listener with a buffer of the given size
func (queue *BroadcastQueue) Chan(size int) <-chan Message {
	if size < 0 {
		size = 0
	}
	c := make(chan Message, size)

	queue.Lock()
	queue.listeners[c] = c
	queue.Unlock()
	return c
}

// Release - unregister a listener and close its channel
func (queue *BroadcastQueue) Release(c <-chan Message) {
	queue.Lock()
	defer queue.Unlock()

	if w, ok := queue.listeners[c]; ok {
		delete(queue.listeners, c)
		close(w)
	}
}
