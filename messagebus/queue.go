// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/kittyd/counter"
)

// DefaultQueueSize - used when a size of zero is given
const DefaultQueueSize = 1000

// Message - an item and the name of its sender
type Message struct {
	From string
	Item interface{}
}

// Bus - where notifications are sent
type Bus interface {
	Send(from string, item interface{})
}

// Queue - a bounded Bus that can be read from
type Queue struct {
	dropped counter.Counter // first for 64 bit alignment
	log     *logger.L
	queue   chan Message
}

// New - create a queue
func New(size int) *Queue {
	if size <= 0 {
		size = DefaultQueueSize
	}
	return &Queue{
		log:   logger.New("messagebus"),
		queue: make(chan Message, size),
	}
}

// Send - data to queue
func (q *Queue) Send(from string, item interface{}) {
	select {
	case q.queue <- Message{
		From: from,
		Item: item,
	}:
	default:
		q.dropped.Increment()
		q.log.Warnf("queue full, dropped message from: %s  item: %+v", from, item)
	}
}

// Chan - channel to read from
func (q *Queue) Chan() <-chan Message {
	return q.queue
}

// Dropped - number of messages lost to a full queue
func (q *Queue) Dropped() uint64 {
	return q.dropped.Uint64()
}
