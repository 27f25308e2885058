// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package kitty

import (
	"encoding/binary"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/kittyd/storage"
)

// Parents - the pair a kitty was bred from, in the order given
type Parents struct {
	A Id `json:"a"`
	B Id `json:"b"`
}

// SetParents - record the parentage of a newly bred kitty
//
// a record is never overwritten
func SetParents(trx storage.Transaction, child Id, parents Parents) error {
	if trx.Has(storage.Pool.Parents, child.Bytes()) {
		return fault.ParentageAlreadyRecorded
	}

	buffer := make([]byte, 8)
	binary.BigEndian.PutUint32(buffer[:4], uint32(parents.A))
	binary.BigEndian.PutUint32(buffer[4:], uint32(parents.B))
	trx.Put(storage.Pool.Parents, child.Bytes(), buffer)

	return nil
}

// GetParents - second value is false for a created kitty
func GetParents(r storage.Reader, child Id) (Parents, bool) {
	buffer := r.Get(storage.Pool.Parents, child.Bytes())
	if nil == buffer {
		return Parents{}, false
	}
	if 8 != len(buffer) {
		logger.Panicf("kitty: corrupt parentage record: %d: %x", child, buffer)
	}
	return Parents{
		A: Id(binary.BigEndian.Uint32(buffer[:4])),
		B: Id(binary.BigEndian.Uint32(buffer[4:])),
	}, true
}
