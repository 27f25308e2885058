// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/kennel"
	"github.com/bitmark-inc/kittyd/kitty"
	"github.com/bitmark-inc/kittyd/rpc/kitties"
)

// Create - mint a new kitty
func (client *Client) Create(owner *account.Account, name string) (*kitties.CreateReply, error) {
	arguments := kitties.CreateArguments{
		Owner: owner,
		Name:  name,
	}
	reply := &kitties.CreateReply{}
	if err := client.call("Kitty.Create", arguments, reply); nil != err {
		return nil, err
	}
	return reply, nil
}

// BreedData - data for a breed request
type BreedData struct {
	Owner   *account.Account
	ParentA kitty.Id
	ParentB kitty.Id
	Name    string
}

// Breed - mint a kitty from two parents
func (client *Client) Breed(breedConfig *BreedData) (*kitties.BreedReply, error) {
	arguments := kitties.BreedArguments{
		Owner:   breedConfig.Owner,
		ParentA: breedConfig.ParentA,
		ParentB: breedConfig.ParentB,
		Name:    breedConfig.Name,
	}
	reply := &kitties.BreedReply{}
	if err := client.call("Kitty.Breed", arguments, reply); nil != err {
		return nil, err
	}
	return reply, nil
}

// Transfer - give a kitty away
func (client *Client) Transfer(caller *account.Account, recipient *account.Account, id kitty.Id) (*kitties.TransferReply, error) {
	arguments := kitties.TransferArguments{
		Caller:    caller,
		Recipient: recipient,
		Id:        id,
	}
	reply := &kitties.TransferReply{}
	if err := client.call("Kitty.Transfer", arguments, reply); nil != err {
		return nil, err
	}
	return reply, nil
}

// List - offer a kitty for sale
func (client *Client) List(caller *account.Account, id kitty.Id) (*kitties.TradeReply, error) {
	return client.trade("Kitty.List", caller, id)
}

// Purchase - buy a listed kitty
func (client *Client) Purchase(caller *account.Account, id kitty.Id) (*kitties.TradeReply, error) {
	return client.trade("Kitty.Purchase", caller, id)
}

func (client *Client) trade(method string, caller *account.Account, id kitty.Id) (*kitties.TradeReply, error) {
	arguments := kitties.TradeArguments{
		Caller: caller,
		Id:     id,
	}
	reply := &kitties.TradeReply{}
	if err := client.call(method, arguments, reply); nil != err {
		return nil, err
	}
	return reply, nil
}

// Get - details of one kitty
func (client *Client) Get(id kitty.Id) (*kennel.Info, error) {
	arguments := kitties.GetArguments{
		Id: id,
	}
	reply := &kennel.Info{}
	if err := client.call("Kitty.Get", arguments, reply); nil != err {
		return nil, err
	}
	return reply, nil
}

// Balance - funds of an account
func (client *Client) Balance(owner *account.Account) (*kitties.BalanceReply, error) {
	arguments := kitties.BalanceArguments{
		Owner: owner,
	}
	reply := &kitties.BalanceReply{}
	if err := client.call("Kitty.Balance", arguments, reply); nil != err {
		return nil, err
	}
	return reply, nil
}

// Owned - one page of the kitties of an owner
func (client *Client) Owned(owner *account.Account, start kitty.Id, count int) (*kitties.PageReply, error) {
	arguments := kitties.OwnedArguments{
		Owner: owner,
		Start: start,
		Count: count,
	}
	reply := &kitties.PageReply{}
	if err := client.call("Kitty.Owned", arguments, reply); nil != err {
		return nil, err
	}
	return reply, nil
}

// Listed - one page of the kitties for sale
func (client *Client) Listed(start kitty.Id, count int) (*kitties.PageReply, error) {
	arguments := kitties.ListedArguments{
		Start: start,
		Count: count,
	}
	reply := &kitties.PageReply{}
	if err := client.call("Kitty.Listed", arguments, reply); nil != err {
		return nil, err
	}
	return reply, nil
}
