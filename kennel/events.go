// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package kennel

import (
	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/kitty"
)

// sender name on the message bus
const busName = "kennel"

// CreatedEvent - a new kitty was created
type CreatedEvent struct {
	Id    kitty.Id         `json:"id"`
	Kitty kitty.Kitty      `json:"kitty"`
	Owner *account.Account `json:"owner"`
}

// BredEvent - a kitty was bred from two others
type BredEvent struct {
	Id      kitty.Id         `json:"id"`
	Kitty   kitty.Kitty      `json:"kitty"`
	Parents kitty.Parents    `json:"parents"`
	Owner   *account.Account `json:"owner"`
}

// TransferredEvent - ownership was given away
type TransferredEvent struct {
	Id   kitty.Id         `json:"id"`
	From *account.Account `json:"from"`
	To   *account.Account `json:"to"`
}

// ListedEvent - a kitty was offered for sale
type ListedEvent struct {
	Id    kitty.Id         `json:"id"`
	Owner *account.Account `json:"owner"`
}

// PurchasedEvent - a listed kitty was bought
type PurchasedEvent struct {
	Id     kitty.Id         `json:"id"`
	Seller *account.Account `json:"seller"`
	Buyer  *account.Account `json:"buyer"`
	Price  uint64           `json:"price"`
}
