// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package kennel

import (
	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/kittyd/genome"
	"github.com/bitmark-inc/kittyd/kitty"
	"github.com/bitmark-inc/kittyd/ownership"
	"github.com/bitmark-inc/kittyd/storage"
)

// Create - a new kitty with a random genome, paid for by the owner
func (k *Kennel) Create(owner *account.Account, name string) (kitty.Id, *kitty.Kitty, error) {
	if nil == owner || nil == owner.AccountInterface {
		return 0, nil, fault.MissingOwner
	}
	n, err := kitty.NameFromString(name)
	if nil != err {
		return 0, nil, err
	}

	k.Lock()
	defer k.Unlock()

	var id kitty.Id
	created := &kitty.Kitty{
		Name: n,
	}

	err = k.transact("create", func(trx storage.Transaction) error {
		var err error
		id, err = kitty.NextId(trx)
		if nil != err {
			return err
		}

		created.Genome = k.draw(owner)

		err = k.currency.Transfer(trx, owner, k.pool, k.price)
		if nil != err {
			return err
		}

		kitty.Put(trx, id, created)
		ownership.Set(trx, id, owner)
		return nil
	})
	if nil != err {
		return 0, nil, err
	}

	k.log.Infof("created: %d  genome: %s  owner: %s", id, created.Genome, owner)
	k.send(CreatedEvent{
		Id:    id,
		Kitty: *created,
		Owner: owner,
	})

	return id, created, nil
}

// Breed - a new kitty mixed from two existing ones
//
// each bit of the child genome comes from parent a where the selector
// bit is set, otherwise from parent b
func (k *Kennel) Breed(owner *account.Account, parentA kitty.Id, parentB kitty.Id, name string) (kitty.Id, *kitty.Kitty, error) {
	if parentA == parentB {
		return 0, nil, fault.SameParent
	}
	if nil == owner || nil == owner.AccountInterface {
		return 0, nil, fault.MissingOwner
	}
	n, err := kitty.NameFromString(name)
	if nil != err {
		return 0, nil, err
	}

	k.Lock()
	defer k.Unlock()

	var id kitty.Id
	bred := &kitty.Kitty{
		Name: n,
	}
	parents := kitty.Parents{
		A: parentA,
		B: parentB,
	}

	err = k.transact("breed", func(trx storage.Transaction) error {
		a, err := kitty.Get(trx, parentA)
		if nil != err {
			return err
		}
		b, err := kitty.Get(trx, parentB)
		if nil != err {
			return err
		}

		id, err = kitty.NextId(trx)
		if nil != err {
			return err
		}

		selector := k.draw(owner)
		bred.Genome = genome.Mix(a.Genome, b.Genome, selector)

		err = k.currency.Transfer(trx, owner, k.pool, k.price)
		if nil != err {
			return err
		}

		kitty.Put(trx, id, bred)
		ownership.Set(trx, id, owner)
		return kitty.SetParents(trx, id, parents)
	})
	if nil != err {
		return 0, nil, err
	}

	k.log.Infof("bred: %d  from: %d & %d  genome: %s  owner: %s", id, parentA, parentB, bred.Genome, owner)
	k.send(BredEvent{
		Id:      id,
		Kitty:   *bred,
		Parents: parents,
		Owner:   owner,
	})

	return id, bred, nil
}
