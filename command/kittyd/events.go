// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/kittyd/kennel"
	"github.com/bitmark-inc/kittyd/messagebus"
	"github.com/bitmark-inc/kittyd/rpc/metrics"
)

// drains the kennel notifications into the log and the event counters
type eventLogger struct {
	queue *messagebus.Queue
}

func (e *eventLogger) Run(args interface{}, shutdown <-chan struct{}) {

	log := logger.New("events")
	log.Info("starting…")

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case item := <-e.queue.Chan():
			name := eventName(item.Item)
			metrics.Event(name)
			log.Infof("from: %s  %s: %+v", item.From, name, item.Item)
		}
	}

	log.Infof("dropped events: %d", e.queue.Dropped())
	log.Info("finished")
}

// label used in the log and the event counter
func eventName(item interface{}) string {
	switch item.(type) {
	case kennel.CreatedEvent, *kennel.CreatedEvent:
		return "created"
	case kennel.BredEvent, *kennel.BredEvent:
		return "bred"
	case kennel.TransferredEvent, *kennel.TransferredEvent:
		return "transferred"
	case kennel.ListedEvent, *kennel.ListedEvent:
		return "listed"
	case kennel.PurchasedEvent, *kennel.PurchasedEvent:
		return "purchased"
	default:
		return "unknown"
	}
}
