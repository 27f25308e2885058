// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ownership

import (
	"bytes"

	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/kittyd/kitty"
	"github.com/bitmark-inc/kittyd/storage"
)

// number of records read from the pool at a time
const pageSize = 100

// ListKittiesFor - committed kitties of an owner starting from an id
//
// returns the ids found and the id to start the next call from
func ListKittiesFor(owner *account.Account, start kitty.Id, count int) ([]kitty.Id, kitty.Id, error) {
	if count <= 0 {
		return nil, start, fault.InvalidCount
	}

	ownerBytes := owner.Bytes()
	cursor := storage.Pool.Owners.NewFetchCursor().Seek(start.Bytes())

	ids := make([]kitty.Id, 0, count)
	next := start

loop:
	for {
		items, err := cursor.Fetch(pageSize)
		if nil != err {
			return nil, start, err
		}
		if 0 == len(items) {
			break loop
		}

		for _, item := range items {
			id, err := kitty.IdFromBytes(item.Key)
			if nil != err {
				return nil, start, err
			}
			next = id + 1

			if bytes.Equal(ownerBytes, item.Value) {
				ids = append(ids, id)
				if len(ids) >= count {
					break loop
				}
			}
		}
	}

	return ids, next, nil
}
