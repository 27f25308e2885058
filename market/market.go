// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package market - kitties offered for sale at the fixed price
//
//   Listings  id -> (empty)
package market

import (
	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/kittyd/kitty"
	"github.com/bitmark-inc/kittyd/storage"
)

// IsListed - check for a listing
func IsListed(r storage.Reader, id kitty.Id) bool {
	return r.Has(storage.Pool.Listings, id.Bytes())
}

// List - add a listing
func List(trx storage.Transaction, id kitty.Id) {
	trx.Put(storage.Pool.Listings, id.Bytes(), []byte{})
}

// Unlist - remove a listing
func Unlist(trx storage.Transaction, id kitty.Id) {
	trx.Delete(storage.Pool.Listings, id.Bytes())
}

// Listed - committed listings in id order starting from an id
//
// returns the ids found and the id to start the next call from
func Listed(start kitty.Id, count int) ([]kitty.Id, kitty.Id, error) {
	if count <= 0 {
		return nil, start, fault.InvalidCount
	}

	items, err := storage.Pool.Listings.NewFetchCursor().Seek(start.Bytes()).Fetch(count)
	if nil != err {
		return nil, start, err
	}

	ids := make([]kitty.Id, 0, len(items))
	next := start
	for _, item := range items {
		id, err := kitty.IdFromBytes(item.Key)
		if nil != err {
			return nil, start, err
		}
		ids = append(ids, id)
		next = id + 1
	}
	return ids, next, nil
}
