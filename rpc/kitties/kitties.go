// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package kitties

import (
	"github.com/bitmark-inc/logger"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/kittyd/kennel"
	"github.com/bitmark-inc/kittyd/kitty"
	"github.com/bitmark-inc/kittyd/rpc/metrics"
	"github.com/bitmark-inc/kittyd/rpc/ratelimit"
)

const (
	rateLimitKitty = 200
	rateBurstKitty = 100

	// limit for Owned and Listed
	maximumCount = 100
)

// Kitty - type for the RPC
type Kitty struct {
	Log            *logger.L
	Limiter        *rate.Limiter
	IsTestingChain bool
	Operations     kennel.Operations
}

// New - create the Kitty RPC service
func New(log *logger.L, operations kennel.Operations, isTestingChain bool) *Kitty {
	return &Kitty{
		Log:            log,
		Limiter:        ratelimit.New(rateLimitKitty, rateBurstKitty),
		IsTestingChain: isTestingChain,
		Operations:     operations,
	}
}

// reject accounts from the other network
func (k *Kitty) checkAccount(a *account.Account) error {
	if nil == a || nil == a.AccountInterface {
		return fault.MissingOwner
	}
	if a.IsTesting() != k.IsTestingChain {
		return fault.WrongNetworkForPublicKey
	}
	return nil
}

// common entry checks for each call
func (k *Kitty) begin(method string, accounts ...*account.Account) error {
	if err := ratelimit.Limit(k.Limiter); nil != err {
		metrics.Observe(method, err)
		return err
	}
	for _, a := range accounts {
		if err := k.checkAccount(a); nil != err {
			metrics.Observe(method, err)
			return err
		}
	}
	return nil
}

// ---

// CreateArguments - arguments for Create
type CreateArguments struct {
	Owner *account.Account `json:"owner"`
	Name  string           `json:"name"`
}

// CreateReply - a new kitty
type CreateReply struct {
	Id    kitty.Id    `json:"id"`
	Kitty kitty.Kitty `json:"kitty"`
}

// Create - mint a kitty with a random genome for the owner
func (k *Kitty) Create(arguments *CreateArguments, reply *CreateReply) error {
	const method = "Kitty.Create"
	if nil == arguments {
		return fault.MissingParameters
	}
	if err := k.begin(method, arguments.Owner); nil != err {
		return err
	}

	k.Log.Infof("%s: owner: %s  name: %q", method, arguments.Owner, arguments.Name)

	id, created, err := k.Operations.Create(arguments.Owner, arguments.Name)
	metrics.Observe(method, err)
	if nil != err {
		return err
	}

	reply.Id = id
	reply.Kitty = *created
	return nil
}

// ---

// BreedArguments - arguments for Breed
type BreedArguments struct {
	Owner   *account.Account `json:"owner"`
	ParentA kitty.Id         `json:"parentA"`
	ParentB kitty.Id         `json:"parentB"`
	Name    string           `json:"name"`
}

// BreedReply - a new kitty and its parents
type BreedReply struct {
	Id      kitty.Id      `json:"id"`
	Kitty   kitty.Kitty   `json:"kitty"`
	Parents kitty.Parents `json:"parents"`
}

// Breed - mint a kitty whose genome mixes two parents
func (k *Kitty) Breed(arguments *BreedArguments, reply *BreedReply) error {
	const method = "Kitty.Breed"
	if nil == arguments {
		return fault.MissingParameters
	}
	if err := k.begin(method, arguments.Owner); nil != err {
		return err
	}

	k.Log.Infof("%s: owner: %s  parents: %d, %d", method, arguments.Owner, arguments.ParentA, arguments.ParentB)

	id, bred, err := k.Operations.Breed(arguments.Owner, arguments.ParentA, arguments.ParentB, arguments.Name)
	metrics.Observe(method, err)
	if nil != err {
		return err
	}

	reply.Id = id
	reply.Kitty = *bred
	reply.Parents = kitty.Parents{A: arguments.ParentA, B: arguments.ParentB}
	return nil
}

// ---

// TransferArguments - arguments for Transfer
type TransferArguments struct {
	Caller    *account.Account `json:"caller"`
	Recipient *account.Account `json:"recipient"`
	Id        kitty.Id         `json:"id"`
}

// TransferReply - the new owner
type TransferReply struct {
	Id    kitty.Id         `json:"id"`
	Owner *account.Account `json:"owner"`
}

// Transfer - give a kitty to another account
func (k *Kitty) Transfer(arguments *TransferArguments, reply *TransferReply) error {
	const method = "Kitty.Transfer"
	if nil == arguments {
		return fault.MissingParameters
	}
	if err := k.begin(method, arguments.Caller, arguments.Recipient); nil != err {
		return err
	}

	k.Log.Infof("%s: id: %d  from: %s  to: %s", method, arguments.Id, arguments.Caller, arguments.Recipient)

	err := k.Operations.Transfer(arguments.Caller, arguments.Recipient, arguments.Id)
	metrics.Observe(method, err)
	if nil != err {
		return err
	}

	reply.Id = arguments.Id
	reply.Owner = arguments.Recipient
	return nil
}

// ---

// TradeArguments - arguments for List and Purchase
type TradeArguments struct {
	Caller *account.Account `json:"caller"`
	Id     kitty.Id         `json:"id"`
}

// TradeReply - state of the kitty after the trade
type TradeReply struct {
	Id     kitty.Id         `json:"id"`
	Owner  *account.Account `json:"owner"`
	Listed bool             `json:"listed"`
	Price  uint64           `json:"price"`
}

// List - offer a kitty for sale at the fixed price
func (k *Kitty) List(arguments *TradeArguments, reply *TradeReply) error {
	const method = "Kitty.List"
	if nil == arguments {
		return fault.MissingParameters
	}
	if err := k.begin(method, arguments.Caller); nil != err {
		return err
	}

	k.Log.Infof("%s: id: %d  owner: %s", method, arguments.Id, arguments.Caller)

	err := k.Operations.ListForSale(arguments.Caller, arguments.Id)
	metrics.Observe(method, err)
	if nil != err {
		return err
	}

	reply.Id = arguments.Id
	reply.Owner = arguments.Caller
	reply.Listed = true
	reply.Price = k.Operations.Price()
	return nil
}

// Purchase - buy a listed kitty at the fixed price
func (k *Kitty) Purchase(arguments *TradeArguments, reply *TradeReply) error {
	const method = "Kitty.Purchase"
	if nil == arguments {
		return fault.MissingParameters
	}
	if err := k.begin(method, arguments.Caller); nil != err {
		return err
	}

	k.Log.Infof("%s: id: %d  buyer: %s", method, arguments.Id, arguments.Caller)

	err := k.Operations.Purchase(arguments.Caller, arguments.Id)
	metrics.Observe(method, err)
	if nil != err {
		return err
	}

	reply.Id = arguments.Id
	reply.Owner = arguments.Caller
	reply.Listed = false
	reply.Price = k.Operations.Price()
	return nil
}

// ---

// GetArguments - arguments for Get
type GetArguments struct {
	Id kitty.Id `json:"id"`
}

// Get - everything known about one kitty
func (k *Kitty) Get(arguments *GetArguments, reply *kennel.Info) error {
	const method = "Kitty.Get"
	if nil == arguments {
		return fault.MissingParameters
	}
	if err := k.begin(method); nil != err {
		return err
	}

	info, err := k.Operations.Info(arguments.Id)
	metrics.Observe(method, err)
	if nil != err {
		return err
	}

	*reply = *info
	return nil
}

// ---

// BalanceArguments - arguments for Balance
type BalanceArguments struct {
	Owner *account.Account `json:"owner"`
}

// BalanceReply - ledger balance of an account
type BalanceReply struct {
	Owner   *account.Account `json:"owner"`
	Balance uint64           `json:"balance"`
}

// Balance - ledger balance of an account
func (k *Kitty) Balance(arguments *BalanceArguments, reply *BalanceReply) error {
	const method = "Kitty.Balance"
	if nil == arguments {
		return fault.MissingParameters
	}
	if err := k.begin(method, arguments.Owner); nil != err {
		return err
	}

	reply.Owner = arguments.Owner
	reply.Balance = k.Operations.Balance(arguments.Owner)
	metrics.Observe(method, nil)
	return nil
}

// ---

// OwnedArguments - arguments for Owned
type OwnedArguments struct {
	Owner *account.Account `json:"owner"`
	Start kitty.Id         `json:"start"`
	Count int              `json:"count"`
}

// PageReply - one page of kitty ids
type PageReply struct {
	Kitties   []kitty.Id `json:"kitties"`
	NextStart kitty.Id   `json:"nextStart"`
}

// Owned - page through the kitties of one owner
func (k *Kitty) Owned(arguments *OwnedArguments, reply *PageReply) error {
	const method = "Kitty.Owned"
	if nil == arguments {
		return fault.MissingParameters
	}
	if err := ratelimit.LimitN(k.Limiter, arguments.Count, maximumCount); nil != err {
		metrics.Observe(method, err)
		return err
	}
	if err := k.checkAccount(arguments.Owner); nil != err {
		metrics.Observe(method, err)
		return err
	}

	ids, next, err := k.Operations.Owned(arguments.Owner, arguments.Start, arguments.Count)
	metrics.Observe(method, err)
	if nil != err {
		return err
	}

	reply.Kitties = ids
	reply.NextStart = next
	return nil
}

// ListedArguments - arguments for Listed
type ListedArguments struct {
	Start kitty.Id `json:"start"`
	Count int      `json:"count"`
}

// Listed - page through the kitties for sale
func (k *Kitty) Listed(arguments *ListedArguments, reply *PageReply) error {
	const method = "Kitty.Listed"
	if nil == arguments {
		return fault.MissingParameters
	}
	if err := ratelimit.LimitN(k.Limiter, arguments.Count, maximumCount); nil != err {
		metrics.Observe(method, err)
		return err
	}

	ids, next, err := k.Operations.Listed(arguments.Start, arguments.Count)
	metrics.Observe(method, err)
	if nil != err {
		return err
	}

	reply.Kitties = ids
	reply.NextStart = next
	return nil
}
