// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"time"

	"github.com/bitmark-inc/logger"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/kittyd/counter"
	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/kittyd/kennel"
	"github.com/bitmark-inc/kittyd/kitty"
	"github.com/bitmark-inc/kittyd/rpc/metrics"
	"github.com/bitmark-inc/kittyd/rpc/ratelimit"
	"github.com/bitmark-inc/kittyd/storage"
)

const (
	rateLimitNode = 200
	rateBurstNode = 100
)

// Node - type for RPC calls
type Node struct {
	Log        *logger.L
	Limiter    *rate.Limiter
	Start      time.Time
	Version    string
	Chain      string
	Operations kennel.Operations
	counter    *counter.Counter
}

// New - create the Node RPC service
func New(log *logger.L, chain string, start time.Time, version string, counter *counter.Counter, operations kennel.Operations) *Node {
	return &Node{
		Log:        log,
		Limiter:    ratelimit.New(rateLimitNode, rateBurstNode),
		Start:      start,
		Version:    version,
		Chain:      chain,
		Operations: operations,
		counter:    counter,
	}
}

// InfoArguments - empty arguments for info request
type InfoArguments struct{}

// InfoReply - results from info request
type InfoReply struct {
	Chain         string `json:"chain"`
	Version       string `json:"version"`
	Uptime        string `json:"uptime"`
	SchemaVersion uint16 `json:"schemaVersion"`
	Kitties       uint32 `json:"kitties"`
	Price         uint64 `json:"price"`
	RPCs          uint64 `json:"rpcs"`
}

// Info - return some information about this node
func (node *Node) Info(_ *InfoArguments, reply *InfoReply) error {
	if err := ratelimit.Limit(node.Limiter); nil != err {
		metrics.Observe("Node.Info", err)
		return err
	}

	info, err := node.Gather()
	metrics.Observe("Node.Info", err)
	if nil != err {
		return err
	}

	*reply = *info
	return nil
}

// Gather - current node state, shared with the HTTP details page
func (node *Node) Gather() (*InfoReply, error) {
	if !storage.IsInitialised() {
		return nil, fault.DatabaseIsNotSet
	}

	return &InfoReply{
		Chain:         node.Chain,
		Version:       node.Version,
		Uptime:        time.Since(node.Start).String(),
		SchemaVersion: kitty.SchemaVersion(storage.Direct),
		Kitties:       node.Operations.Count(),
		Price:         node.Operations.Price(),
		RPCs:          node.counter.Uint64(),
	}, nil
}
