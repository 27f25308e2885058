// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package kennel

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/balance"
	"github.com/bitmark-inc/kittyd/beacon"
	"github.com/bitmark-inc/kittyd/counter"
	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/kittyd/genome"
	"github.com/bitmark-inc/kittyd/kitty"
	"github.com/bitmark-inc/kittyd/market"
	"github.com/bitmark-inc/kittyd/messagebus"
	"github.com/bitmark-inc/kittyd/ownership"
	"github.com/bitmark-inc/kittyd/storage"
)

// Configuration - the collaborators of the kennel
type Configuration struct {
	Price    uint64             // paid for every create, breed and purchase
	Pool     *account.Account   // receives the create and breed price
	Source   beacon.Source      // seeds for genomes and selectors
	Currency balance.Transferer // moves the price
	Bus      messagebus.Bus     // optional, receives events after commit
}

// Operations - the kennel calls available to clients
type Operations interface {
	Create(owner *account.Account, name string) (kitty.Id, *kitty.Kitty, error)
	Breed(owner *account.Account, parentA kitty.Id, parentB kitty.Id, name string) (kitty.Id, *kitty.Kitty, error)
	Transfer(caller *account.Account, recipient *account.Account, id kitty.Id) error
	ListForSale(caller *account.Account, id kitty.Id) error
	Purchase(caller *account.Account, id kitty.Id) error
	Info(id kitty.Id) (*Info, error)
	Balance(owner *account.Account) uint64
	Owned(owner *account.Account, start kitty.Id, count int) ([]kitty.Id, kitty.Id, error)
	Listed(start kitty.Id, count int) ([]kitty.Id, kitty.Id, error)
	Count() uint32
	Price() uint64
}

// Kennel - serialises all kitty operations
type Kennel struct {
	sequence counter.Counter // first for 64 bit alignment
	sync.Mutex
	log      *logger.L
	price    uint64
	pool     *account.Account
	source   beacon.Source
	currency balance.Transferer
	bus      messagebus.Bus
}

// Info - everything known about one kitty
type Info struct {
	Id      kitty.Id         `json:"id"`
	Kitty   kitty.Kitty      `json:"kitty"`
	Owner   *account.Account `json:"owner"`
	Parents *kitty.Parents   `json:"parents,omitempty"`
	Listed  bool             `json:"listed"`
}

// New - create a kennel over an initialised and migrated database
func New(configuration Configuration) (*Kennel, error) {
	if nil == configuration.Pool || nil == configuration.Source || nil == configuration.Currency {
		return nil, fault.MissingParameters
	}
	if !storage.IsInitialised() {
		return nil, fault.DatabaseIsNotSet
	}

	log := logger.New("kennel")

	version := kitty.SchemaVersion(storage.Direct)
	if kitty.CurrentLayout != version {
		log.Criticalf("schema version: %d  expected: %d", version, kitty.CurrentLayout)
		return nil, fault.SchemaMigrationRequired
	}

	log.Infof("price: %d  pool: %s  kitties: %d", configuration.Price, configuration.Pool, kitty.Count(storage.Direct))

	return &Kennel{
		log:      log,
		price:    configuration.Price,
		pool:     configuration.Pool,
		source:   configuration.Source,
		currency: configuration.Currency,
		bus:      configuration.Bus,
	}, nil
}

// Price - the fixed price
func (k *Kennel) Price() uint64 {
	return k.price
}

// run fn inside a transaction, commit only if it succeeds
//
// must hold the lock
func (k *Kennel) transact(operation string, fn func(trx storage.Transaction) error) error {
	trx, err := storage.NewDBTransaction()
	if nil != err {
		k.log.Errorf("%s: cannot start transaction: %s", operation, err)
		return err
	}

	err = fn(trx)
	if nil != err {
		trx.Abort()
		k.log.Debugf("%s: rejected: %s", operation, err)
		return err
	}

	return trx.Commit()
}

// notify after a commit
func (k *Kennel) send(item interface{}) {
	if nil != k.bus {
		k.bus.Send(busName, item)
	}
}

// draw the next genome or selector for an owner
func (k *Kennel) draw(owner *account.Account) genome.Genome {
	return beacon.Draw(k.source.Seed(), owner, k.sequence.Next())
}

// Info - read a kitty and its records
func (k *Kennel) Info(id kitty.Id) (*Info, error) {
	k.Lock()
	defer k.Unlock()

	found, err := kitty.Get(storage.Direct, id)
	if nil != err {
		return nil, err
	}

	owner, ok := ownership.Get(storage.Direct, id)
	if !ok {
		return nil, fault.NoOwner
	}

	info := &Info{
		Id:     id,
		Kitty:  *found,
		Owner:  owner,
		Listed: market.IsListed(storage.Direct, id),
	}
	if parents, ok := kitty.GetParents(storage.Direct, id); ok {
		info.Parents = &parents
	}
	return info, nil
}

// Balance - ledger balance of an account
func (k *Kennel) Balance(owner *account.Account) uint64 {
	k.Lock()
	defer k.Unlock()

	return balance.Get(storage.Direct, owner)
}

// Count - number of kitties created
func (k *Kennel) Count() uint32 {
	k.Lock()
	defer k.Unlock()

	return kitty.Count(storage.Direct)
}

// Owned - page through the kitties of one owner
func (k *Kennel) Owned(owner *account.Account, start kitty.Id, count int) ([]kitty.Id, kitty.Id, error) {
	if nil == owner {
		return nil, 0, fault.MissingOwner
	}
	k.Lock()
	defer k.Unlock()

	return ownership.ListKittiesFor(owner, start, count)
}

// Listed - page through the kitties for sale
func (k *Kennel) Listed(start kitty.Id, count int) ([]kitty.Id, kitty.Id, error) {
	k.Lock()
	defer k.Unlock()

	return market.Listed(start, count)
}
