// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node_test

import (
	"testing"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/kittyd/chain"
	"github.com/bitmark-inc/kittyd/counter"
	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/kittyd/fixtures"
	"github.com/bitmark-inc/kittyd/kitty"
	"github.com/bitmark-inc/kittyd/rpc/mocks"
	"github.com/bitmark-inc/kittyd/rpc/node"
	"github.com/bitmark-inc/kittyd/storage"
)

func TestNodeInfo(t *testing.T) {
	err := fixtures.SetupTestStorage()
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}
	defer fixtures.TeardownTestStorage()

	trx, _ := storage.NewDBTransaction()
	kitty.SetSchemaVersion(trx, kitty.CurrentLayout)
	_ = trx.Commit()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	ops := mocks.NewMockOperations(ctl)
	ops.EXPECT().Count().Return(uint32(12)).Times(1)
	ops.EXPECT().Price().Return(uint64(5000)).Times(1)

	c := counter.Counter(5)
	n := node.New(logger.New(fixtures.LogCategory), chain.Testing, time.Now(), "1.0", &c, ops)

	var reply node.InfoReply
	err = n.Info(&node.InfoArguments{}, &reply)
	assert.Nil(t, err, "wrong Info")
	assert.Equal(t, chain.Testing, reply.Chain, "wrong chain")
	assert.Equal(t, "1.0", reply.Version, "wrong version")
	assert.Equal(t, uint16(kitty.CurrentLayout), reply.SchemaVersion, "wrong schema version")
	assert.Equal(t, uint32(12), reply.Kitties, "wrong kitty count")
	assert.Equal(t, uint64(5000), reply.Price, "wrong price")
	assert.Equal(t, c.Uint64(), reply.RPCs, "wrong connection count")
}

func TestNodeInfoWithoutDatabase(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	c := counter.Counter(0)
	n := node.New(logger.New(fixtures.LogCategory), chain.Local, time.Now(), "1.0", &c, mocks.NewMockOperations(ctl))

	var reply node.InfoReply
	err := n.Info(&node.InfoArguments{}, &reply)
	assert.Equal(t, fault.DatabaseIsNotSet, err, "wrong error")
}
