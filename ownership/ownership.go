// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ownership - the current owner of each kitty
//
//   Owners  id -> owner account bytes
//
// every kitty has exactly one record, written when the kitty is
// created or bred and repointed on transfer or purchase
package ownership

import (
	"bytes"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/kitty"
	"github.com/bitmark-inc/kittyd/storage"
)

// Get - the owner of a kitty, second value false if there is no record
func Get(r storage.Reader, id kitty.Id) (*account.Account, bool) {
	buffer := r.Get(storage.Pool.Owners, id.Bytes())
	if nil == buffer {
		return nil, false
	}
	owner, err := account.AccountFromBytes(buffer)
	if nil != err {
		logger.Panicf("ownership.Get: corrupt owner for: %d  error: %s", id, err)
	}
	return owner, true
}

// IsOwner - check a caller against the record
func IsOwner(r storage.Reader, id kitty.Id, caller *account.Account) bool {
	buffer := r.Get(storage.Pool.Owners, id.Bytes())
	if nil == buffer || nil == caller || nil == caller.AccountInterface {
		return false
	}
	return bytes.Equal(buffer, caller.Bytes())
}

// Set - point a kitty at a new owner
func Set(trx storage.Transaction, id kitty.Id, owner *account.Account) {
	trx.Put(storage.Pool.Owners, id.Bytes(), owner.Bytes())
}
