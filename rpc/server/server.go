// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/kittyd/chain"
	"github.com/bitmark-inc/kittyd/counter"
	"github.com/bitmark-inc/kittyd/kennel"
	"github.com/bitmark-inc/kittyd/rpc/kitties"
	"github.com/bitmark-inc/kittyd/rpc/node"
)

// Create - an RPC server with the Kitty and Node services registered
//
// the node service is returned so the HTTPS details page can share it
func Create(log *logger.L, chainName string, version string, rpcCount *counter.Counter, operations kennel.Operations) (*rpc.Server, *node.Node) {
	start := time.Now().UTC()

	n := node.New(log, chainName, start, version, rpcCount, operations)

	server := rpc.NewServer()

	_ = server.Register(kitties.New(log, operations, chain.IsTesting(chainName)))
	_ = server.Register(n)

	return server, n
}
