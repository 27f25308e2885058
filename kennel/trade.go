// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package kennel

import (
	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/kittyd/kitty"
	"github.com/bitmark-inc/kittyd/market"
	"github.com/bitmark-inc/kittyd/ownership"
	"github.com/bitmark-inc/kittyd/storage"
)

// the caller must be the recorded owner
func checkOwner(trx storage.Transaction, caller *account.Account, id kitty.Id) (*account.Account, error) {
	owner, found := ownership.Get(trx, id)
	if !found {
		return nil, fault.KittyNotFound
	}
	if !owner.Equal(caller) {
		return nil, fault.NotOwner
	}
	return owner, nil
}

// Transfer - give a kitty away, no currency moves
//
// a listing stays in place and now offers the kitty of the recipient
func (k *Kennel) Transfer(caller *account.Account, recipient *account.Account, id kitty.Id) error {
	if nil == recipient || nil == recipient.AccountInterface {
		return fault.MissingOwner
	}

	k.Lock()
	defer k.Unlock()

	err := k.transact("transfer", func(trx storage.Transaction) error {
		_, err := checkOwner(trx, caller, id)
		if nil != err {
			return err
		}
		ownership.Set(trx, id, recipient)
		return nil
	})
	if nil != err {
		return err
	}

	k.log.Infof("transferred: %d  from: %s  to: %s", id, caller, recipient)
	k.send(TransferredEvent{
		Id:   id,
		From: caller,
		To:   recipient,
	})

	return nil
}

// ListForSale - offer a kitty at the fixed price
func (k *Kennel) ListForSale(caller *account.Account, id kitty.Id) error {
	k.Lock()
	defer k.Unlock()

	err := k.transact("list", func(trx storage.Transaction) error {
		_, err := checkOwner(trx, caller, id)
		if nil != err {
			return err
		}
		if market.IsListed(trx, id) {
			return fault.AlreadyListed
		}
		market.List(trx, id)
		return nil
	})
	if nil != err {
		return err
	}

	k.log.Infof("listed: %d  owner: %s", id, caller)
	k.send(ListedEvent{
		Id:    id,
		Owner: caller,
	})

	return nil
}

// Purchase - buy a listed kitty, the price goes to the seller
func (k *Kennel) Purchase(caller *account.Account, id kitty.Id) error {
	if nil == caller || nil == caller.AccountInterface {
		return fault.MissingOwner
	}

	k.Lock()
	defer k.Unlock()

	var seller *account.Account
	err := k.transact("purchase", func(trx storage.Transaction) error {
		if !kitty.Exists(trx, id) {
			return fault.KittyNotFound
		}

		var found bool
		seller, found = ownership.Get(trx, id)
		if !found {
			return fault.NoOwner
		}
		if seller.Equal(caller) {
			return fault.AlreadyOwned
		}
		if !market.IsListed(trx, id) {
			return fault.NotListed
		}

		err := k.currency.Transfer(trx, caller, seller, k.price)
		if nil != err {
			return err
		}

		market.Unlist(trx, id)
		ownership.Set(trx, id, caller)
		return nil
	})
	if nil != err {
		return err
	}

	k.log.Infof("purchased: %d  seller: %s  buyer: %s  price: %d", id, seller, caller, k.price)
	k.send(PurchasedEvent{
		Id:     id,
		Seller: seller,
		Buyer:  caller,
		Price:  k.price,
	})

	return nil
}
