// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package balance - the currency ledger that pays for kitties
package balance

import (
	"math"

	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/kittyd/storage"
)

// Transferer - moves currency between accounts inside a transaction
type Transferer interface {
	Transfer(trx storage.Transaction, from *account.Account, to *account.Account, amount uint64) error
}

// Ledger - balances kept in the Balances pool
type Ledger struct{}

// Get - the balance of an account, zero if it never held funds
func Get(r storage.Reader, owner *account.Account) uint64 {
	n, _ := r.GetN(storage.Pool.Balances, owner.Bytes())
	return n
}

// Credit - add newly issued funds to an account
func Credit(trx storage.Transaction, owner *account.Account, amount uint64) error {
	n := Get(trx, owner)
	if amount > math.MaxUint64-n {
		return fault.InvalidAmount
	}
	trx.PutN(storage.Pool.Balances, owner.Bytes(), n+amount)
	return nil
}

// Transfer - debit one account and credit another
//
// nothing is written when the payer cannot cover the amount
func (Ledger) Transfer(trx storage.Transaction, from *account.Account, to *account.Account, amount uint64) error {
	if nil == from || nil == to {
		return fault.MissingOwner
	}

	available := Get(trx, from)
	if available < amount {
		return fault.InsufficientFunds
	}
	if from.Equal(to) {
		return nil
	}

	received := Get(trx, to)
	if amount > math.MaxUint64-received {
		return fault.InvalidAmount
	}

	trx.PutN(storage.Pool.Balances, from.Bytes(), available-amount)
	trx.PutN(storage.Pool.Balances, to.Bytes(), received+amount)
	return nil
}
