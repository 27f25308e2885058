// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package kitties_test

import (
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/kittyd/fixtures"
	"github.com/bitmark-inc/kittyd/genome"
	"github.com/bitmark-inc/kittyd/kennel"
	"github.com/bitmark-inc/kittyd/kitty"
	"github.com/bitmark-inc/kittyd/rpc/kitties"
	"github.com/bitmark-inc/kittyd/rpc/mocks"
)

func newService(t *testing.T) (*kitties.Kitty, *mocks.MockOperations, func()) {
	fixtures.SetupTestLogger()
	ctl := gomock.NewController(t)
	ops := mocks.NewMockOperations(ctl)
	k := kitties.New(logger.New(fixtures.LogCategory), ops, true)
	return k, ops, func() {
		ctl.Finish()
		fixtures.TeardownTestLogger()
	}
}

func TestCreate(t *testing.T) {
	k, ops, done := newService(t)
	defer done()

	created := &kitty.Kitty{Genome: genome.Genome{1, 2, 3}}
	created.Name, _ = kitty.NameFromString("tom")
	ops.EXPECT().Create(fixtures.Owner1, "tom").Return(kitty.Id(7), created, nil).Times(1)

	var reply kitties.CreateReply
	err := k.Create(&kitties.CreateArguments{Owner: fixtures.Owner1, Name: "tom"}, &reply)
	assert.Nil(t, err, "wrong Create")
	assert.Equal(t, kitty.Id(7), reply.Id, "wrong id")
	assert.Equal(t, *created, reply.Kitty, "wrong kitty")
}

func TestCreateError(t *testing.T) {
	k, ops, done := newService(t)
	defer done()

	ops.EXPECT().Create(fixtures.Owner1, "tom").Return(kitty.Id(0), nil, fault.InsufficientFunds).Times(1)

	var reply kitties.CreateReply
	err := k.Create(&kitties.CreateArguments{Owner: fixtures.Owner1, Name: "tom"}, &reply)
	assert.Equal(t, fault.InsufficientFunds, err, "wrong error")
}

func TestCreateMissingOwner(t *testing.T) {
	k, _, done := newService(t)
	defer done()

	var reply kitties.CreateReply
	err := k.Create(&kitties.CreateArguments{Name: "tom"}, &reply)
	assert.Equal(t, fault.MissingOwner, err, "wrong error")
}

func TestCreateWrongNetwork(t *testing.T) {
	k, _, done := newService(t)
	defer done()

	live := &account.Account{
		AccountInterface: &account.ED25519Account{
			Test:      false,
			PublicKey: fixtures.Owner1.PublicKeyBytes(),
		},
	}

	var reply kitties.CreateReply
	err := k.Create(&kitties.CreateArguments{Owner: live, Name: "tom"}, &reply)
	assert.Equal(t, fault.WrongNetworkForPublicKey, err, "wrong error")
}

func TestBreed(t *testing.T) {
	k, ops, done := newService(t)
	defer done()

	bred := &kitty.Kitty{Genome: genome.Genome{0xff}}
	ops.EXPECT().Breed(fixtures.Owner1, kitty.Id(1), kitty.Id(2), "kit").Return(kitty.Id(3), bred, nil).Times(1)

	var reply kitties.BreedReply
	err := k.Breed(&kitties.BreedArguments{Owner: fixtures.Owner1, ParentA: 1, ParentB: 2, Name: "kit"}, &reply)
	assert.Nil(t, err, "wrong Breed")
	assert.Equal(t, kitty.Id(3), reply.Id, "wrong id")
	assert.Equal(t, kitty.Parents{A: 1, B: 2}, reply.Parents, "wrong parents")
	assert.Equal(t, *bred, reply.Kitty, "wrong kitty")
}

func TestBreedSameParent(t *testing.T) {
	k, ops, done := newService(t)
	defer done()

	ops.EXPECT().Breed(fixtures.Owner1, kitty.Id(1), kitty.Id(1), "").Return(kitty.Id(0), nil, fault.SameParent).Times(1)

	var reply kitties.BreedReply
	err := k.Breed(&kitties.BreedArguments{Owner: fixtures.Owner1, ParentA: 1, ParentB: 1}, &reply)
	assert.Equal(t, fault.SameParent, err, "wrong error")
}

func TestTransfer(t *testing.T) {
	k, ops, done := newService(t)
	defer done()

	ops.EXPECT().Transfer(fixtures.Owner1, fixtures.Owner2, kitty.Id(4)).Return(nil).Times(1)

	var reply kitties.TransferReply
	err := k.Transfer(&kitties.TransferArguments{Caller: fixtures.Owner1, Recipient: fixtures.Owner2, Id: 4}, &reply)
	assert.Nil(t, err, "wrong Transfer")
	assert.Equal(t, kitty.Id(4), reply.Id, "wrong id")
	assert.Equal(t, fixtures.Owner2, reply.Owner, "wrong owner")
}

func TestTransferMissingRecipient(t *testing.T) {
	k, _, done := newService(t)
	defer done()

	var reply kitties.TransferReply
	err := k.Transfer(&kitties.TransferArguments{Caller: fixtures.Owner1, Id: 4}, &reply)
	assert.Equal(t, fault.MissingOwner, err, "wrong error")
}

func TestListAndPurchase(t *testing.T) {
	k, ops, done := newService(t)
	defer done()

	ops.EXPECT().ListForSale(fixtures.Owner1, kitty.Id(5)).Return(nil).Times(1)
	ops.EXPECT().Purchase(fixtures.Owner2, kitty.Id(5)).Return(nil).Times(1)
	ops.EXPECT().Price().Return(uint64(5000)).Times(2)

	var reply kitties.TradeReply
	err := k.List(&kitties.TradeArguments{Caller: fixtures.Owner1, Id: 5}, &reply)
	assert.Nil(t, err, "wrong List")
	assert.True(t, reply.Listed, "not listed")
	assert.Equal(t, uint64(5000), reply.Price, "wrong price")

	err = k.Purchase(&kitties.TradeArguments{Caller: fixtures.Owner2, Id: 5}, &reply)
	assert.Nil(t, err, "wrong Purchase")
	assert.False(t, reply.Listed, "still listed")
	assert.Equal(t, fixtures.Owner2, reply.Owner, "wrong owner")
}

func TestPurchaseNotListed(t *testing.T) {
	k, ops, done := newService(t)
	defer done()

	ops.EXPECT().Purchase(fixtures.Owner2, kitty.Id(5)).Return(fault.NotListed).Times(1)

	var reply kitties.TradeReply
	err := k.Purchase(&kitties.TradeArguments{Caller: fixtures.Owner2, Id: 5}, &reply)
	assert.Equal(t, fault.NotListed, err, "wrong error")
}

func TestGet(t *testing.T) {
	k, ops, done := newService(t)
	defer done()

	info := &kennel.Info{
		Id:      9,
		Owner:   fixtures.Owner3,
		Parents: &kitty.Parents{A: 1, B: 2},
		Listed:  true,
	}
	ops.EXPECT().Info(kitty.Id(9)).Return(info, nil).Times(1)
	ops.EXPECT().Info(kitty.Id(10)).Return(nil, fault.KittyNotFound).Times(1)

	var reply kennel.Info
	err := k.Get(&kitties.GetArguments{Id: 9}, &reply)
	assert.Nil(t, err, "wrong Get")
	assert.Equal(t, *info, reply, "wrong info")

	err = k.Get(&kitties.GetArguments{Id: 10}, &reply)
	assert.Equal(t, fault.KittyNotFound, err, "wrong error")
}

func TestBalance(t *testing.T) {
	k, ops, done := newService(t)
	defer done()

	ops.EXPECT().Balance(fixtures.Owner1).Return(uint64(123)).Times(1)

	var reply kitties.BalanceReply
	err := k.Balance(&kitties.BalanceArguments{Owner: fixtures.Owner1}, &reply)
	assert.Nil(t, err, "wrong Balance")
	assert.Equal(t, uint64(123), reply.Balance, "wrong balance")
}

func TestOwned(t *testing.T) {
	k, ops, done := newService(t)
	defer done()

	ops.EXPECT().Owned(fixtures.Owner1, kitty.Id(0), 10).Return([]kitty.Id{1, 4}, kitty.Id(5), nil).Times(1)

	var reply kitties.PageReply
	err := k.Owned(&kitties.OwnedArguments{Owner: fixtures.Owner1, Count: 10}, &reply)
	assert.Nil(t, err, "wrong Owned")
	assert.Equal(t, []kitty.Id{1, 4}, reply.Kitties, "wrong kitties")
	assert.Equal(t, kitty.Id(5), reply.NextStart, "wrong next start")

	err = k.Owned(&kitties.OwnedArguments{Owner: fixtures.Owner1, Count: 101}, &reply)
	assert.Equal(t, fault.InvalidCount, err, "count above maximum")
}

func TestListed(t *testing.T) {
	k, ops, done := newService(t)
	defer done()

	ops.EXPECT().Listed(kitty.Id(3), 2).Return([]kitty.Id{3, 8}, kitty.Id(9), nil).Times(1)

	var reply kitties.PageReply
	err := k.Listed(&kitties.ListedArguments{Start: 3, Count: 2}, &reply)
	assert.Nil(t, err, "wrong Listed")
	assert.Equal(t, []kitty.Id{3, 8}, reply.Kitties, "wrong kitties")
	assert.Equal(t, kitty.Id(9), reply.NextStart, "wrong next start")

	err = k.Listed(&kitties.ListedArguments{Count: 0}, &reply)
	assert.Equal(t, fault.InvalidCount, err, "zero count")
}
